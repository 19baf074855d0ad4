package analytics

import "github.com/matzehuels/ghinsight/pkg/integrations/github"

// Report bundles every analytics view for one user.
type Report struct {
	Grid      ContributionGrid     `json:"grid"`
	Languages LanguageDistribution `json:"languages"`
	Feed      []FeedItem           `json:"feed"`
	Insights  *Insights            `json:"insights,omitempty"` // nil when there are no pushes
	Repos     RepoStats            `json:"repos"`
}

// BuildReport derives all views from a user's events and language
// breakdown.
func BuildReport(events []github.Event, breakdown github.LanguageBreakdown, opts Options) Report {
	r := Report{
		Grid:      BuildContributionGrid(events, opts),
		Languages: BuildLanguageDistribution(breakdown.Languages),
		Feed:      BuildActivityFeed(events),
		Repos:     BuildRepoStats(breakdown.Repos),
	}
	if in, ok := BuildProductivityInsights(events, opts); ok {
		r.Insights = &in
	}
	return r
}
