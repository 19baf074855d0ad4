package analytics

import (
	"sort"
	"time"

	"github.com/matzehuels/ghinsight/pkg/integrations/github"
)

// TopHourCount is the number of busiest hours reported.
const TopHourCount = 5

// HourCount pairs an hour of the day with its commit total.
type HourCount struct {
	Hour    int `json:"hour"`
	Commits int `json:"commits"`
}

// Insights summarizes when a user pushes commits.
type Insights struct {
	ByDay           [7]int       `json:"by_day"` // Sunday first
	ByHour          [24]int      `json:"by_hour"`
	PeakDay         time.Weekday `json:"peak_day"`
	PeakHour        int          `json:"peak_hour"`
	TotalCommits    int          `json:"total_commits"`
	TotalPushEvents int          `json:"total_push_events"`
	TopHours        []HourCount  `json:"top_hours"`
}

// pushCommits is the commit weight of a push: its commit list length,
// or 1 when the list is empty.
func pushCommits(e github.Event) int {
	if n := len(e.Payload.Commits); n > 0 {
		return n
	}
	return 1
}

// BuildProductivityInsights builds weekday and hour histograms over push
// events. It returns false when there are no push events to analyze.
func BuildProductivityInsights(events []github.Event, opts Options) (Insights, bool) {
	loc := opts.location()
	var in Insights
	for _, e := range events {
		if e.Type != github.EventPush {
			continue
		}
		t := e.CreatedAt.In(loc)
		n := pushCommits(e)
		in.ByDay[t.Weekday()] += n
		in.ByHour[t.Hour()] += n
		in.TotalCommits += n
		in.TotalPushEvents++
	}
	if in.TotalPushEvents == 0 {
		return Insights{}, false
	}

	in.PeakDay = time.Weekday(argmax(in.ByDay[:]))
	in.PeakHour = argmax(in.ByHour[:])

	for h, c := range in.ByHour {
		if c > 0 {
			in.TopHours = append(in.TopHours, HourCount{Hour: h, Commits: c})
		}
	}
	sort.SliceStable(in.TopHours, func(i, j int) bool {
		return in.TopHours[i].Commits > in.TopHours[j].Commits
	})
	if len(in.TopHours) > TopHourCount {
		in.TopHours = in.TopHours[:TopHourCount]
	}
	return in, true
}

// argmax returns the first index holding the maximum value.
func argmax(xs []int) int {
	best := 0
	for i, x := range xs {
		if x > xs[best] {
			best = i
		}
	}
	return best
}
