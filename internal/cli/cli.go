// Package cli implements the ghinsight command-line interface.
package cli

import (
	"encoding/json"
	"errors"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/ghinsight/internal/config"
	"github.com/matzehuels/ghinsight/pkg/buildinfo"
	"github.com/matzehuels/ghinsight/pkg/cache"
	apperrors "github.com/matzehuels/ghinsight/pkg/errors"
	"github.com/matzehuels/ghinsight/pkg/integrations"
	"github.com/matzehuels/ghinsight/pkg/integrations/github"
	"github.com/matzehuels/ghinsight/pkg/observability"
	"github.com/matzehuels/ghinsight/pkg/profile"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "ghinsight"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Out receives command output.
	Out io.Writer

	// Err receives spinners.
	Err io.Writer

	configPath string
	token      string
	noCache    bool
	jsonOut    bool

	cfg *config.Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Out:    os.Stdout,
		Err:    os.Stderr,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "ghinsight explores GitHub profiles from the terminal",
		Long:         `ghinsight looks up GitHub users and derives a contribution heatmap, language breakdown, activity feed and productivity insights from their public data.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	flags := root.PersistentFlags()
	flags.StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/ghinsight/config.toml)")
	flags.StringVar(&c.token, "token", "", "GitHub token (overrides GITHUB_TOKEN)")
	flags.BoolVar(&c.noCache, "no-cache", false, "disable the response cache")
	flags.BoolVar(&c.jsonOut, "json", false, "print results as JSON")

	root.AddCommand(c.userCommand())
	root.AddCommand(c.reposCommand())
	root.AddCommand(c.searchCommand())
	root.AddCommand(c.eventsCommand())
	root.AddCommand(c.heatmapCommand())
	root.AddCommand(c.languagesCommand())
	root.AddCommand(c.insightsCommand())
	root.AddCommand(c.analyticsCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// setup loads configuration, applies flag overrides and attaches the
// logger to the command context.
func (c *CLI) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	if c.token != "" {
		cfg.API.Token = c.token
	}
	if c.noCache {
		cfg.Cache.Enabled = false
	}
	c.cfg = cfg

	hooks := newLogHooks(c.Logger)
	observability.SetCacheHooks(hooks)
	observability.SetHTTPHooks(hooks)
	observability.SetRetryHooks(hooks)

	cmd.SetContext(withLogger(cmd.Context(), c.Logger))
	return nil
}

// settings returns the loaded configuration, or the defaults before setup.
func (c *CLI) settings() *config.Config {
	if c.cfg == nil {
		return config.Default()
	}
	return c.cfg
}

// =============================================================================
// Service Factory
// =============================================================================

// newService creates the profile facade for CLI and server use.
func (c *CLI) newService() *profile.Service {
	cfg := c.settings()

	gh := github.NewClient(cfg.API.Token,
		integrations.WithBaseURL(cfg.API.BaseURL),
		integrations.WithAttemptTimeout(cfg.API.Timeout),
	)

	store := cache.NewNullCache()
	if cfg.Cache.Enabled {
		store = cache.NewMemoryCache(cfg.Cache.TTL)
	}

	var keyer cache.Keyer
	if cfg.API.Token != "" {
		keyer = cache.NewScopedKeyer(nil, cache.TokenScope(cfg.API.Token))
	}

	svc := profile.NewService(gh, store, keyer, cfg.Cache.TTL, c.Logger)
	svc.Repos = cfg.ReposOptions()
	return svc
}

// =============================================================================
// Output Helpers
// =============================================================================

// fail logs the cause of a facade error and returns its user message.
func (c *CLI) fail(err *apperrors.Error) error {
	c.Logger.Debug("request failed", "code", err.Code, "error", err)
	return errors.New(err.UserMessage())
}

// printJSON writes v as indented JSON to the command output.
func (c *CLI) printJSON(v any) error {
	enc := json.NewEncoder(c.Out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
