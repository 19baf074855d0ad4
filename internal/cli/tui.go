package cli

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/ghinsight/pkg/integrations/github"
	"github.com/matzehuels/ghinsight/pkg/profile"
	"github.com/matzehuels/ghinsight/pkg/suggest"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	listErrorStyle    = lipgloss.NewStyle().Foreground(colorRed)
)

// =============================================================================
// SearchModel - Interactive user search
// =============================================================================

// searchFunc looks up suggestions for a query.
type searchFunc func(ctx context.Context, query string) profile.Result[[]github.SearchCandidate]

// suggestionsMsg delivers the results of one debounced lookup.
type suggestionsMsg struct {
	gen    uint64
	result profile.Result[[]github.SearchCandidate]
}

// searchRuntime is shared by every copy of the model. send is set once the
// program exists.
type searchRuntime struct {
	ctx      context.Context
	search   searchFunc
	debounce *suggest.Debouncer
	gen      suggest.Generation
	send     func(tea.Msg)
}

// SearchModel is the bubbletea model for type-ahead user search.
//
// Each keystroke restarts the debounce timer and bumps the generation;
// results from older generations are dropped when they arrive.
type SearchModel struct {
	rt *searchRuntime

	Query    string
	Results  []github.SearchCandidate
	Cursor   int
	Loading  bool
	Err      string
	Selected *github.SearchCandidate
}

// NewSearchModel creates a search model. Call Attach with the program's
// Send before the first keystroke.
func NewSearchModel(ctx context.Context, search searchFunc, debounce *suggest.Debouncer) SearchModel {
	return SearchModel{rt: &searchRuntime{ctx: ctx, search: search, debounce: debounce}}
}

// Attach sets the function used to deliver results back to the program.
func (m SearchModel) Attach(send func(tea.Msg)) {
	m.rt.send = send
}

func (m SearchModel) Init() tea.Cmd {
	return nil
}

func (m SearchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.rt.debounce.Cancel()
			return m, tea.Quit
		case tea.KeyUp:
			if m.Cursor > 0 {
				m.Cursor--
			}
			return m, nil
		case tea.KeyDown:
			if m.Cursor < len(m.Results)-1 {
				m.Cursor++
			}
			return m, nil
		case tea.KeyEnter:
			if len(m.Results) == 0 {
				return m, nil
			}
			m.rt.debounce.Cancel()
			sel := m.Results[m.Cursor]
			m.Selected = &sel
			return m, tea.Quit
		case tea.KeyBackspace:
			if r := []rune(m.Query); len(r) > 0 {
				m.Query = string(r[:len(r)-1])
			}
		case tea.KeySpace:
			m.Query += " "
		case tea.KeyRunes:
			m.Query += string(msg.Runes)
		default:
			return m, nil
		}
		return m.queryChanged(), nil

	case suggestionsMsg:
		if !m.rt.gen.IsCurrent(msg.gen) {
			return m, nil
		}
		m.Loading = false
		m.Cursor = 0
		if !msg.result.OK() {
			m.Results, m.Err = nil, msg.result.Message()
		} else {
			m.Results, m.Err = msg.result.Data, ""
		}
	}
	return m, nil
}

// queryChanged starts a new generation and schedules a lookup for the
// current query. A blank query clears the list without a lookup.
func (m SearchModel) queryChanged() SearchModel {
	gen := m.rt.gen.Next()
	q := m.Query
	if strings.TrimSpace(q) == "" {
		m.rt.debounce.Cancel()
		m.Results, m.Err, m.Loading, m.Cursor = nil, "", false, 0
		return m
	}
	m.Loading = true
	rt := m.rt
	rt.debounce.Schedule(func() {
		res := rt.search(rt.ctx, q)
		if rt.send != nil {
			rt.send(suggestionsMsg{gen: gen, result: res})
		}
	})
	return m
}

func (m SearchModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Search GitHub Users"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("type to search  ↑/↓ navigate  ⏎ select  esc quit"))
	b.WriteString("\n\n")

	b.WriteString(StyleHighlight.Render("› ") + m.Query + listDimStyle.Render("▏"))
	b.WriteString("\n\n")

	switch {
	case m.Err != "":
		b.WriteString(listErrorStyle.Render(m.Err))
		b.WriteString("\n")
	case m.Loading && len(m.Results) == 0:
		b.WriteString(listDimStyle.Render("Searching..."))
		b.WriteString("\n")
	case strings.TrimSpace(m.Query) != "" && len(m.Results) == 0:
		b.WriteString(listDimStyle.Render("No users found"))
		b.WriteString("\n")
	}

	for i, c := range m.Results {
		cursor := "  "
		style := listNormalStyle
		if i == m.Cursor {
			cursor = "▸ "
			style = listSelectedStyle
		}
		line := cursor + c.Name
		if c.Name != c.Login {
			line += " " + listDimStyle.Render("@"+c.Login)
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	return b.String()
}
