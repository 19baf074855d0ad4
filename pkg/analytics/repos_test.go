package analytics

import (
	"testing"
	"time"

	"github.com/matzehuels/ghinsight/pkg/integrations/github"
)

func TestBuildRepoStats(t *testing.T) {
	day := func(n int) time.Time { return time.Date(2024, 1, n, 0, 0, 0, 0, time.UTC) }
	repos := []github.Repository{
		{Name: "a", Stars: 10, Forks: 1, Watchers: 10, OpenIssues: 2, Language: "Go",
			Topics: []string{"cli", "go"}, CreatedAt: day(1), UpdatedAt: day(20)},
		{Name: "b", Stars: 30, Forks: 5, Watchers: 30, Language: "Go",
			Topics: []string{"go"}, CreatedAt: day(5), UpdatedAt: day(6)},
		{Name: "c", Stars: 2, Forks: 9, Watchers: 2, OpenIssues: 1, Language: "Rust",
			CreatedAt: day(3), UpdatedAt: day(25)},
		{Name: "d", CreatedAt: day(2), UpdatedAt: day(2)},
	}

	s := BuildRepoStats(repos)

	if s.Repos != 4 || s.TotalStars != 42 || s.TotalForks != 15 || s.TotalWatchers != 42 || s.TotalIssues != 3 {
		t.Errorf("totals = %+v", s)
	}
	if s.AvgStars != 10.5 || s.AvgForks != 3.75 {
		t.Errorf("averages = %v / %v, want 10.5 / 3.75", s.AvgStars, s.AvgForks)
	}
	if len(s.Languages) != 2 || s.Languages[0] != (NameCount{"Go", 2}) || s.Languages[1] != (NameCount{"Rust", 1}) {
		t.Errorf("Languages = %v", s.Languages)
	}
	if len(s.Topics) != 2 || s.Topics[0] != (NameCount{"go", 2}) {
		t.Errorf("Topics = %v", s.Topics)
	}

	names := func(rs []github.Repository) string {
		out := ""
		for _, r := range rs {
			out += r.Name
		}
		return out
	}
	if got := names(s.MostStarred); got != "bacd" {
		t.Errorf("MostStarred = %s, want bacd", got)
	}
	if got := names(s.MostForked); got != "cbad" {
		t.Errorf("MostForked = %s, want cbad", got)
	}
	if got := names(s.MostRecent); got != "bcda" {
		t.Errorf("MostRecent = %s, want bcda", got)
	}
	if got := names(s.MostUpdated); got != "cabd" {
		t.Errorf("MostUpdated = %s, want cabd", got)
	}
	if repos[0].Name != "a" {
		t.Error("BuildRepoStats should not reorder its input")
	}
}

func TestBuildRepoStats_Limits(t *testing.T) {
	var repos []github.Repository
	for i := 0; i < 12; i++ {
		repos = append(repos, github.Repository{
			Name:   string(rune('a' + i)),
			Stars:  i,
			Topics: []string{string(rune('A' + i))},
		})
	}
	s := BuildRepoStats(repos)
	if len(s.MostStarred) != 5 {
		t.Errorf("len(MostStarred) = %d, want 5", len(s.MostStarred))
	}
	if len(s.Topics) != 10 {
		t.Errorf("len(Topics) = %d, want 10", len(s.Topics))
	}
}

func TestBuildRepoStats_Empty(t *testing.T) {
	s := BuildRepoStats(nil)
	if s.Repos != 0 || s.AvgStars != 0 || len(s.MostStarred) != 0 {
		t.Errorf("BuildRepoStats(nil) = %+v", s)
	}
}
