package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/ghinsight/pkg/analytics"
	"github.com/matzehuels/ghinsight/pkg/integrations/github"
	"github.com/matzehuels/ghinsight/pkg/profile"
)

// show runs fetch behind a spinner and prints the result as JSON or
// through render.
func show[T any](c *CLI, cmd *cobra.Command, message string, fetch func(context.Context) profile.Result[T], render func(T) string) error {
	prog := newProgress(c.Logger)
	res := withSpinner(c, cmd.Context(), message, fetch)
	if !res.OK() {
		return c.fail(res.Err)
	}
	prog.done(message)
	if c.jsonOut {
		return c.printJSON(res.Data)
	}
	_, err := fmt.Fprint(c.Out, render(res.Data))
	return err
}

// userCommand creates the user command.
func (c *CLI) userCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "user <login>",
		Short: "Show a user's profile and recent repositories",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := c.newService()
			return show(c, cmd, "Loading profile", func(ctx context.Context) profile.Result[profile.Profile] {
				return svc.LoadProfile(ctx, args[0])
			}, func(p profile.Profile) string {
				return renderUser(p.User) + "\n" + renderRepos(p.Repos, time.Now())
			})
		},
	}
}

// reposCommand creates the repos command.
func (c *CLI) reposCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "repos <login>",
		Short: "List a user's most recently created repositories",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := c.newService()
			return show(c, cmd, "Loading repositories", func(ctx context.Context) profile.Result[[]github.Repository] {
				return svc.GetRepos(ctx, args[0])
			}, func(repos []github.Repository) string {
				return renderRepos(repos, time.Now())
			})
		},
	}
}

// eventsCommand creates the events command.
func (c *CLI) eventsCommand() *cobra.Command {
	var perPage int

	cmd := &cobra.Command{
		Use:   "events <login>",
		Short: "Show a user's recent public activity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := c.newService()
			return show(c, cmd, "Loading activity", func(ctx context.Context) profile.Result[[]analytics.FeedItem] {
				return derive(svc.GetUserEvents(ctx, args[0], perPage), analytics.BuildActivityFeed)
			}, func(items []analytics.FeedItem) string {
				return renderFeed(items, time.Now())
			})
		},
	}

	cmd.Flags().IntVar(&perPage, "per-page", profile.DefaultEventsPageSize, "number of events to request (1-100)")
	return cmd
}

// heatmapCommand creates the heatmap command.
func (c *CLI) heatmapCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "heatmap <login>",
		Short: "Draw a user's contribution heatmap for the last year",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := c.newService()
			return show(c, cmd, "Loading contributions", func(ctx context.Context) profile.Result[analytics.ContributionGrid] {
				return derive(svc.GetUserEvents(ctx, args[0], 0), func(events []github.Event) analytics.ContributionGrid {
					return analytics.BuildContributionGrid(events, svc.Analytics)
				})
			}, renderHeatmap)
		},
	}
}

// languagesCommand creates the languages command.
func (c *CLI) languagesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "languages <login>",
		Short: "Show the language breakdown across a user's repositories",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := c.newService()
			return show(c, cmd, "Loading languages", func(ctx context.Context) profile.Result[analytics.LanguageDistribution] {
				return derive(svc.GetLanguageBreakdown(ctx, args[0]), func(b github.LanguageBreakdown) analytics.LanguageDistribution {
					return analytics.BuildLanguageDistribution(b.Languages)
				})
			}, renderLanguages)
		},
	}
}

// insightsCommand creates the insights command.
func (c *CLI) insightsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "insights <login>",
		Short: "Show when a user pushes commits",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := c.newService()
			return show(c, cmd, "Loading insights", func(ctx context.Context) profile.Result[*analytics.Insights] {
				return derive(svc.GetUserEvents(ctx, args[0], 0), func(events []github.Event) *analytics.Insights {
					if in, ok := analytics.BuildProductivityInsights(events, svc.Analytics); ok {
						return &in
					}
					return nil
				})
			}, renderInsights)
		},
	}
}

// analyticsCommand creates the analytics command.
func (c *CLI) analyticsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "analytics <login>",
		Short: "Show every analytics view for a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := c.newService()
			return show(c, cmd, "Loading analytics", func(ctx context.Context) profile.Result[analytics.Report] {
				return svc.LoadAnalytics(ctx, args[0])
			}, func(r analytics.Report) string {
				now := time.Now()
				return renderHeatmap(r.Grid) + "\n" +
					renderLanguages(r.Languages) + "\n" +
					renderInsights(r.Insights) + "\n" +
					renderRepoStats(r.Repos) + "\n" +
					renderFeed(r.Feed, now)
			})
		},
	}
}

// derive maps a successful result through fn and passes failures along.
func derive[T, U any](res profile.Result[T], fn func(T) U) profile.Result[U] {
	if !res.OK() {
		return profile.Result[U]{Err: res.Err}
	}
	return profile.Result[U]{Data: fn(res.Data)}
}
