package analytics

import (
	"time"

	"github.com/matzehuels/ghinsight/pkg/integrations/github"
)

// WindowDays is the length of the contribution window, ending today.
const WindowDays = 365

// ContributionDay is one cell of the contribution grid.
type ContributionDay struct {
	Date      time.Time    `json:"date"`
	Count     int          `json:"count"`
	Level     int          `json:"level"`
	DayOfWeek time.Weekday `json:"day_of_week"`
	InWindow  bool         `json:"in_window"`
}

// MonthLabel marks the week column where a month starts.
type MonthLabel struct {
	Week  int    `json:"week"`
	Label string `json:"label"`
}

// ContributionGrid is a year of activity laid out as Sunday-to-Saturday
// weeks.
type ContributionGrid struct {
	Days        []ContributionDay   `json:"days"`  // exactly WindowDays entries, oldest first
	Weeks       [][]ContributionDay `json:"weeks"` // whole weeks, padded outside the window
	MonthLabels []MonthLabel        `json:"month_labels"`
	Total       int                 `json:"total"`
	MaxStreak   int                 `json:"max_streak"`
	Empty       bool                `json:"empty"`
}

// ContributionUnits returns how many units e adds to its calendar day.
// Pushes count their commits, pull requests, issues and reviews count
// once, and everything else counts zero.
func ContributionUnits(e github.Event) int {
	switch e.Type {
	case github.EventPush:
		if e.Payload.Size > 0 {
			return e.Payload.Size
		}
		if n := len(e.Payload.Commits); n > 0 {
			return n
		}
		return 1
	case github.EventPullRequest, github.EventIssues, github.EventPullRequestReview:
		return 1
	default:
		return 0
	}
}

// Level buckets a day's unit count into the five heatmap intensities.
func Level(count int) int {
	switch {
	case count <= 0:
		return 0
	case count <= 2:
		return 1
	case count <= 5:
		return 2
	case count <= 10:
		return 3
	default:
		return 4
	}
}

type dayKey struct {
	y int
	m time.Month
	d int
}

func keyOf(t time.Time) dayKey {
	y, m, d := t.Date()
	return dayKey{y, m, d}
}

// BuildContributionGrid buckets events into the 365 calendar days ending
// today. Events outside the window are ignored.
func BuildContributionGrid(events []github.Event, opts Options) ContributionGrid {
	loc := opts.location()
	y, m, d := opts.now().Date()
	// Walk the calendar in UTC so every step is exactly one civil day.
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	start := today.AddDate(0, 0, -(WindowDays - 1))

	counts := make(map[dayKey]int)
	for _, e := range events {
		counts[keyOf(e.CreatedAt.In(loc))] += ContributionUnits(e)
	}

	// Pad back to the Sunday on or before start and forward to the
	// Saturday on or after today.
	lead := int(start.Weekday())
	cells := lead + WindowDays + int(time.Saturday-today.Weekday())
	y, m, d = start.Date()

	grid := ContributionGrid{Days: make([]ContributionDay, 0, WindowDays)}
	var week []ContributionDay
	streak := 0
	for i := 0; i < cells; i++ {
		cal := time.Date(y, m, d+i-lead, 0, 0, 0, 0, time.UTC)
		inWindow := i >= lead && i < lead+WindowDays
		cell := ContributionDay{Date: startOfDay(keyOf(cal), loc), DayOfWeek: cal.Weekday(), InWindow: inWindow}
		if inWindow {
			cell.Count = counts[keyOf(cal)]
			cell.Level = Level(cell.Count)
			grid.Days = append(grid.Days, cell)
			grid.Total += cell.Count
			if cell.Count > 0 {
				streak++
				grid.MaxStreak = max(grid.MaxStreak, streak)
			} else {
				streak = 0
			}
		}

		if i%7 == 0 {
			w := len(grid.Weeks)
			prev := cal.AddDate(0, 0, -7)
			if w == 0 || cal.Month() != prev.Month() {
				grid.MonthLabels = append(grid.MonthLabels, MonthLabel{Week: w, Label: cal.Format("Jan")})
			}
		}
		week = append(week, cell)
		if len(week) == 7 {
			grid.Weeks = append(grid.Weeks, week)
			week = nil
		}
	}
	grid.Empty = grid.Total == 0
	return grid
}
