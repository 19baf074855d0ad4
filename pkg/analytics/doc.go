// Package analytics derives view models from raw GitHub event and
// repository data.
//
// # Overview
//
// Every builder is a pure function over already-fetched data. None of
// them touch the network, and results are freshly allocated so callers
// may keep or mutate them freely:
//
//   - [BuildContributionGrid]: 365-day heatmap grouped into Sunday weeks
//   - [BuildLanguageDistribution]: top-10 languages by bytes with colors
//   - [BuildActivityFeed]: the 20 most recent displayable events
//   - [BuildProductivityInsights]: commit histograms by weekday and hour
//   - [BuildRepoStats]: totals and rankings over a repository list
//
// [BuildReport] runs all of them at once.
//
// # Time
//
// Calendar days and hours are computed in [Options.Location] relative to
// [Options.Now]. Both default to the local clock, and tests pin them:
//
//	opts := analytics.Options{
//	    Now:      func() time.Time { return time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC) },
//	    Location: time.UTC,
//	}
//	grid := analytics.BuildContributionGrid(events, opts)
package analytics
