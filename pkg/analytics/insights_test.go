package analytics

import (
	"testing"
	"time"

	"github.com/matzehuels/ghinsight/pkg/integrations/github"
)

func TestBuildProductivityInsights(t *testing.T) {
	monday9 := time.Date(2024, 3, 11, 9, 0, 0, 0, time.UTC)
	events := []github.Event{
		pushAt(monday9, 0, 3),
		pushAt(monday9.Add(5*time.Hour), 0, 0),
		pushAt(monday9.Add(48*time.Hour), 0, 2),
		{Type: github.EventPullRequest, CreatedAt: monday9},
	}

	in, ok := BuildProductivityInsights(events, fixedOptions(monday9))
	if !ok {
		t.Fatal("BuildProductivityInsights() ok = false, want true")
	}
	if in.ByDay[time.Monday] != 4 || in.ByDay[time.Wednesday] != 2 {
		t.Errorf("ByDay = %v", in.ByDay)
	}
	if in.ByHour[9] != 5 || in.ByHour[14] != 1 {
		t.Errorf("ByHour = %v", in.ByHour)
	}
	if in.PeakDay != time.Monday {
		t.Errorf("PeakDay = %v, want Monday", in.PeakDay)
	}
	if in.PeakHour != 9 {
		t.Errorf("PeakHour = %d, want 9", in.PeakHour)
	}
	if in.TotalCommits != 6 || in.TotalPushEvents != 3 {
		t.Errorf("totals = %d commits / %d pushes, want 6 / 3", in.TotalCommits, in.TotalPushEvents)
	}
	want := []HourCount{{9, 5}, {14, 1}}
	if len(in.TopHours) != len(want) {
		t.Fatalf("TopHours = %v, want %v", in.TopHours, want)
	}
	for i := range want {
		if in.TopHours[i] != want[i] {
			t.Errorf("TopHours[%d] = %v, want %v", i, in.TopHours[i], want[i])
		}
	}
}

func TestBuildProductivityInsights_NoPushes(t *testing.T) {
	events := []github.Event{{Type: github.EventWatch}, {Type: github.EventIssues}}
	if _, ok := BuildProductivityInsights(events, Options{}); ok {
		t.Error("ok = true, want false without push events")
	}
	if _, ok := BuildProductivityInsights(nil, Options{}); ok {
		t.Error("ok = true, want false for nil events")
	}
}

func TestBuildProductivityInsights_TiesPickFirst(t *testing.T) {
	sunday := time.Date(2024, 3, 10, 3, 0, 0, 0, time.UTC)
	events := []github.Event{
		// Tuesday 04:00, then Sunday 03:00
		pushAt(sunday.Add(2*24*time.Hour+time.Hour), 0, 1),
		pushAt(sunday, 0, 1),
	}
	in, _ := BuildProductivityInsights(events, fixedOptions(sunday))
	if in.PeakDay != time.Sunday {
		t.Errorf("PeakDay = %v, want Sunday", in.PeakDay)
	}
	if in.PeakHour != 3 {
		t.Errorf("PeakHour = %d, want 3", in.PeakHour)
	}
}

func TestBuildProductivityInsights_TopHoursLimit(t *testing.T) {
	base := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	var events []github.Event
	for h := 0; h < 8; h++ {
		events = append(events, pushAt(base.Add(time.Duration(h)*time.Hour), 0, h+1))
	}
	in, _ := BuildProductivityInsights(events, fixedOptions(base))
	if len(in.TopHours) != TopHourCount {
		t.Fatalf("len(TopHours) = %d, want %d", len(in.TopHours), TopHourCount)
	}
	if in.TopHours[0].Hour != 7 {
		t.Errorf("TopHours[0] = %v, want hour 7", in.TopHours[0])
	}
}
