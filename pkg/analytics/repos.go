package analytics

import (
	"sort"

	"github.com/matzehuels/ghinsight/pkg/integrations/github"
)

const (
	topRepoCount  = 5
	topTopicCount = 10
)

// NameCount pairs a label with how many repositories carry it.
type NameCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// RepoStats aggregates a repository list.
type RepoStats struct {
	Repos         int                 `json:"repos"`
	TotalStars    int                 `json:"total_stars"`
	TotalForks    int                 `json:"total_forks"`
	TotalWatchers int                 `json:"total_watchers"`
	TotalIssues   int                 `json:"total_issues"`
	AvgStars      float64             `json:"avg_stars"`
	AvgForks      float64             `json:"avg_forks"`
	Languages     []NameCount         `json:"languages"`
	Topics        []NameCount         `json:"topics"`
	MostStarred   []github.Repository `json:"most_starred"`
	MostForked    []github.Repository `json:"most_forked"`
	MostRecent    []github.Repository `json:"most_recent"`
	MostUpdated   []github.Repository `json:"most_updated"`
}

// BuildRepoStats computes totals, averages, per-language repository
// counts, the ten most used topics and top-five rankings. The input
// slice is not reordered.
func BuildRepoStats(repos []github.Repository) RepoStats {
	stats := RepoStats{Repos: len(repos)}
	languages := make(map[string]int)
	topics := make(map[string]int)
	for _, r := range repos {
		stats.TotalStars += r.Stars
		stats.TotalForks += r.Forks
		stats.TotalWatchers += r.Watchers
		stats.TotalIssues += r.OpenIssues
		if r.Language != "" {
			languages[r.Language]++
		}
		for _, t := range r.Topics {
			topics[t]++
		}
	}
	if len(repos) > 0 {
		stats.AvgStars = float64(stats.TotalStars) / float64(len(repos))
		stats.AvgForks = float64(stats.TotalForks) / float64(len(repos))
	}

	stats.Languages = rankCounts(languages, 0)
	stats.Topics = rankCounts(topics, topTopicCount)

	stats.MostStarred = topRepos(repos, func(a, b github.Repository) bool { return a.Stars > b.Stars })
	stats.MostForked = topRepos(repos, func(a, b github.Repository) bool { return a.Forks > b.Forks })
	stats.MostRecent = topRepos(repos, func(a, b github.Repository) bool { return a.CreatedAt.After(b.CreatedAt) })
	stats.MostUpdated = topRepos(repos, func(a, b github.Repository) bool { return a.UpdatedAt.After(b.UpdatedAt) })
	return stats
}

// rankCounts sorts counts descending with names ascending on ties.
// A limit of 0 keeps everything.
func rankCounts(counts map[string]int, limit int) []NameCount {
	out := make([]NameCount, 0, len(counts))
	for name, n := range counts {
		out = append(out, NameCount{Name: name, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func topRepos(repos []github.Repository, less func(a, b github.Repository) bool) []github.Repository {
	sorted := make([]github.Repository, len(repos))
	copy(sorted, repos)
	sort.SliceStable(sorted, func(i, j int) bool { return less(sorted[i], sorted[j]) })
	if len(sorted) > topRepoCount {
		sorted = sorted[:topRepoCount]
	}
	return sorted
}
