package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/ghinsight/pkg/analytics"
	"github.com/matzehuels/ghinsight/pkg/integrations/github"
)

const barWidth = 30

var weekdayLabels = [7]string{"", "Mon", "", "Wed", "", "Fri", ""}

// =============================================================================
// Profile
// =============================================================================

func renderUser(u github.User) string {
	var b strings.Builder
	b.WriteString(StyleTitle.Render(u.DisplayName()))
	if u.Name != "" {
		b.WriteString(" " + StyleDim.Render("@"+u.Login))
	}
	b.WriteString("\n")
	if u.Bio != "" {
		b.WriteString(u.Bio + "\n")
	}
	b.WriteString("\n")

	b.WriteString(keyValue("Followers", analytics.FormatNumber(u.Followers)) + "\n")
	b.WriteString(keyValue("Following", analytics.FormatNumber(u.Following)) + "\n")
	b.WriteString(keyValue("Repos", analytics.FormatNumber(u.PublicRepos)) + "\n")
	for _, kv := range [][2]string{
		{"Location", u.Location},
		{"Company", u.Company},
		{"Email", u.Email},
	} {
		if kv[1] != "" {
			b.WriteString(keyValue(kv[0], kv[1]) + "\n")
		}
	}
	if blog := analytics.FormatURL(u.Blog); blog != "" {
		b.WriteString(styleKey.Render("Blog") + " " + StyleLink.Render(blog) + "\n")
	}
	if !u.CreatedAt.IsZero() {
		b.WriteString(keyValue("Joined", u.CreatedAt.Format("Jan 2, 2006")) + "\n")
	}
	if u.HTMLURL != "" {
		b.WriteString(styleKey.Render("Profile") + " " + StyleLink.Render(u.HTMLURL) + "\n")
	}
	return b.String()
}

func renderRepos(repos []github.Repository, now time.Time) string {
	if len(repos) == 0 {
		return StyleDim.Render("No public repositories") + "\n"
	}

	rows := make([][]string, 0, len(repos))
	for _, r := range repos {
		lang := r.Language
		if lang == "" {
			lang = "—"
		}
		rows = append(rows, []string{
			r.Name,
			lang,
			analytics.FormatNumber(r.Stars),
			analytics.FormatNumber(r.Forks),
			formatRelativeTime(r.CreatedAt, now),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Repository", "Lang", "Stars", "Forks", "Created").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader
			}
			if col == 0 {
				return lipgloss.NewStyle().Foreground(colorGreen)
			}
			return lipgloss.NewStyle().Foreground(colorGray)
		})
	return t.Render() + "\n"
}

func renderCandidates(candidates []github.SearchCandidate) string {
	if len(candidates) == 0 {
		return StyleDim.Render("No users found") + "\n"
	}
	var b strings.Builder
	for _, c := range candidates {
		b.WriteString(StyleValue.Render(c.Name))
		if c.Name != c.Login {
			b.WriteString(" " + StyleDim.Render("@"+c.Login))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// =============================================================================
// Analytics
// =============================================================================

func renderFeed(items []analytics.FeedItem, now time.Time) string {
	var b strings.Builder
	b.WriteString(section("Recent Activity"))
	if len(items) == 0 {
		b.WriteString(StyleDim.Render("No recent public activity") + "\n")
		return b.String()
	}
	for _, it := range items {
		fmt.Fprintf(&b, "%s %s %s in %s %s\n",
			it.Icon,
			StyleValue.Render(it.Action),
			it.Description,
			StyleHighlight.Render(it.Repo),
			StyleDim.Render(formatRelativeTime(it.Date, now)),
		)
		if it.Message != "" {
			msg, _, _ := strings.Cut(it.Message, "\n")
			b.WriteString("   " + StyleDim.Render(msg) + "\n")
		}
	}
	return b.String()
}

func renderHeatmap(g analytics.ContributionGrid) string {
	var b strings.Builder
	b.WriteString(section("Contributions"))
	if g.Empty {
		b.WriteString(StyleDim.Render("No public contributions in the last year") + "\n")
		return b.String()
	}

	// Each week is two columns wide behind a four-column weekday gutter.
	months := []rune(strings.Repeat(" ", len(g.Weeks)*2))
	next := 0
	for _, m := range g.MonthLabels {
		pos := m.Week * 2
		if pos < next || pos+len(m.Label) > len(months) {
			continue
		}
		copy(months[pos:], []rune(m.Label))
		next = pos + len(m.Label) + 1
	}
	b.WriteString("    " + StyleDim.Render(strings.TrimRight(string(months), " ")) + "\n")

	cells := make([]lipgloss.Style, len(heatLevels))
	for i, c := range heatLevels {
		cells[i] = lipgloss.NewStyle().Foreground(c)
	}
	for d := 0; d < 7; d++ {
		b.WriteString(StyleDim.Render(fmt.Sprintf("%-4s", weekdayLabels[d])))
		for _, week := range g.Weeks {
			if d >= len(week) || !week[d].InWindow {
				b.WriteString("  ")
				continue
			}
			b.WriteString(cells[week[d].Level].Render(iconCell) + " ")
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "%s contributions in the last year %s longest streak %s %s\n",
		StyleNumber.Render(analytics.FormatNumber(g.Total)),
		StyleDim.Render("·"),
		StyleNumber.Render(strconv.Itoa(g.MaxStreak)),
		dayWord(g.MaxStreak),
	)

	b.WriteString(StyleDim.Render("Less "))
	for _, s := range cells {
		b.WriteString(s.Render(iconCell) + " ")
	}
	b.WriteString(StyleDim.Render("More") + "\n")
	return b.String()
}

func renderLanguages(d analytics.LanguageDistribution) string {
	var b strings.Builder
	b.WriteString(section("Languages"))
	if len(d.Languages) == 0 {
		b.WriteString(StyleDim.Render("No language data") + "\n")
		return b.String()
	}

	name := lipgloss.NewStyle().Foreground(colorWhite).Width(14)
	for _, l := range d.Languages {
		n := int(l.Percent/100*barWidth + 0.5)
		if n == 0 && l.Bytes > 0 {
			n = 1
		}
		bar := lipgloss.NewStyle().Foreground(lipgloss.Color(l.Color)).Render(strings.Repeat(iconBar, n))
		fmt.Fprintf(&b, "%s %s%s %5.1f%%  %s\n",
			name.Render(l.Name),
			bar,
			strings.Repeat(" ", barWidth-n),
			l.Percent,
			StyleDim.Render(analytics.FormatBytes(l.Bytes)),
		)
	}
	if d.Truncated {
		fmt.Fprintf(&b, "\n%s\n", StyleDim.Render(fmt.Sprintf("Top %d of %s total",
			len(d.Languages), analytics.FormatBytes(d.GrandTotal))))
	}
	return b.String()
}

func renderInsights(in *analytics.Insights) string {
	var b strings.Builder
	b.WriteString(section("Productivity"))
	if in == nil {
		b.WriteString(StyleDim.Render("No recent pushes") + "\n")
		return b.String()
	}

	peak := 0
	for _, n := range in.ByDay {
		peak = max(peak, n)
	}
	day := lipgloss.NewStyle().Foreground(colorGray).Width(5)
	for i, n := range in.ByDay {
		w := 0
		if peak > 0 {
			w = n * barWidth / peak
		}
		style := StyleDim
		if time.Weekday(i) == in.PeakDay {
			style = StyleHighlight
		}
		fmt.Fprintf(&b, "%s %s %d\n", day.Render(time.Weekday(i).String()[:3]), style.Render(strings.Repeat(iconBar, w)), n)
	}

	b.WriteString("\n")
	b.WriteString(keyValue("Commits", analytics.FormatNumber(in.TotalCommits)) + "\n")
	b.WriteString(keyValue("Pushes", analytics.FormatNumber(in.TotalPushEvents)) + "\n")
	b.WriteString(keyValue("Peak day", in.PeakDay.String()) + "\n")
	b.WriteString(keyValue("Peak hour", formatHour(in.PeakHour)) + "\n")

	hours := make([]string, len(in.TopHours))
	for i, h := range in.TopHours {
		hours[i] = fmt.Sprintf("%s (%d)", formatHour(h.Hour), h.Commits)
	}
	b.WriteString(keyValue("Top hours", strings.Join(hours, ", ")) + "\n")
	return b.String()
}

func renderRepoStats(s analytics.RepoStats) string {
	var b strings.Builder
	b.WriteString(section("Repositories"))
	if s.Repos == 0 {
		b.WriteString(StyleDim.Render("No public repositories") + "\n")
		return b.String()
	}
	b.WriteString(keyValue("Repos", analytics.FormatNumber(s.Repos)) + "\n")
	b.WriteString(keyValue("Stars", fmt.Sprintf("%s (avg %.1f)", analytics.FormatNumber(s.TotalStars), s.AvgStars)) + "\n")
	b.WriteString(keyValue("Forks", fmt.Sprintf("%s (avg %.1f)", analytics.FormatNumber(s.TotalForks), s.AvgForks)) + "\n")
	if len(s.MostStarred) > 0 {
		top := s.MostStarred[0]
		b.WriteString(keyValue("Top repo", fmt.Sprintf("%s ★ %s", top.Name, analytics.FormatNumber(top.Stars))) + "\n")
	}
	if len(s.Topics) > 0 {
		names := make([]string, len(s.Topics))
		for i, t := range s.Topics {
			names[i] = t.Name
		}
		b.WriteString(keyValue("Topics", strings.Join(names, ", ")) + "\n")
	}
	return b.String()
}

// =============================================================================
// Helpers
// =============================================================================

func formatRelativeTime(t, now time.Time) string {
	if t.IsZero() {
		return "—"
	}
	diff := now.Sub(t)
	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	case diff < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(diff.Hours()/24))
	default:
		return t.Format("Jan 2, 2006")
	}
}

func formatHour(h int) string {
	return fmt.Sprintf("%02d:00", h)
}

func dayWord(n int) string {
	if n == 1 {
		return "day"
	}
	return "days"
}
