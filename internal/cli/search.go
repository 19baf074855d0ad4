package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/ghinsight/pkg/integrations/github"
	"github.com/matzehuels/ghinsight/pkg/profile"
	"github.com/matzehuels/ghinsight/pkg/suggest"
)

// searchCommand creates the search command.
func (c *CLI) searchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "search [query]",
		Short: "Find GitHub users by name or login",
		Long: `Find GitHub users by name or login.

With a query, prints up to six matches. Without one, opens an interactive
search that suggests users as you type; selecting a user shows their profile.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := c.newService()
			if len(args) > 0 {
				query := strings.Join(args, " ")
				return show(c, cmd, "Searching", func(ctx context.Context) profile.Result[[]github.SearchCandidate] {
					return svc.SearchUsers(ctx, query)
				}, renderCandidates)
			}
			return c.runInteractiveSearch(cmd, svc)
		},
	}
}

func (c *CLI) runInteractiveSearch(cmd *cobra.Command, svc *profile.Service) error {
	ctx := cmd.Context()
	debounce := suggest.NewDebouncer(c.settings().Search.Debounce)
	model := NewSearchModel(ctx, svc.SearchUsers, debounce)

	p := tea.NewProgram(model, tea.WithContext(ctx))
	model.Attach(p.Send)

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("search: %w", err)
	}
	m, ok := final.(SearchModel)
	if !ok || m.Selected == nil {
		printInfo("No user selected")
		return nil
	}

	login := m.Selected.Login
	return show(c, cmd, "Loading profile", func(ctx context.Context) profile.Result[profile.Profile] {
		return svc.LoadProfile(ctx, login)
	}, func(p profile.Profile) string {
		return renderUser(p.User) + "\n" + renderRepos(p.Repos, time.Now())
	})
}
