package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/ghinsight/internal/server"
)

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the JSON API",
		Long: `Serve profile lookups and analytics over HTTP.

Endpoints:
  GET /healthz
  GET /api/users/{login}
  GET /api/users/{login}/repos
  GET /api/users/{login}/events?per_page=N
  GET /api/users/{login}/languages
  GET /api/users/{login}/analytics
  GET /api/users/{login}/profile
  GET /api/search?q=QUERY`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = c.settings().Server.Addr
			}
			srv := server.New(c.newService(), loggerFromContext(cmd.Context()))
			return srv.ListenAndServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from server.addr)")
	return cmd
}
