// Package config loads ghinsight settings.
//
// Settings are layered, lowest to highest precedence:
//
//  1. built-in defaults
//  2. a TOML file ($XDG_CONFIG_HOME/ghinsight/config.toml, or --config)
//  3. a .env file in the working directory
//  4. process environment variables
//
// Example config.toml:
//
//	[api]
//	base_url = "https://api.github.com"
//	timeout = "5s"
//
//	[cache]
//	ttl = "10m"
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	apperrors "github.com/matzehuels/ghinsight/pkg/errors"
	"github.com/matzehuels/ghinsight/pkg/integrations/github"
)

const appName = "ghinsight"

// Config holds all settings for the CLI and the API server.
type Config struct {
	API    APIConfig    `toml:"api"`
	Repos  ReposConfig  `toml:"repos"`
	Cache  CacheConfig  `toml:"cache"`
	Search SearchConfig `toml:"search"`
	Server ServerConfig `toml:"server"`
}

// APIConfig configures the GitHub API client.
type APIConfig struct {
	BaseURL string        `toml:"base_url"`
	Timeout time.Duration `toml:"timeout"` // per attempt
	Token   string        `toml:"token"`
}

// ReposConfig configures the recent-repositories listing.
type ReposConfig struct {
	PerPage   int    `toml:"per_page"`
	Sort      string `toml:"sort"`
	Direction string `toml:"direction"`
}

// CacheConfig configures the response cache.
type CacheConfig struct {
	TTL     time.Duration `toml:"ttl"`
	Enabled bool          `toml:"enabled"`
}

// SearchConfig configures interactive search.
type SearchConfig struct {
	Debounce time.Duration `toml:"debounce"`
}

// ServerConfig configures the JSON API server.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		API: APIConfig{
			BaseURL: github.DefaultBaseURL,
			Timeout: 5 * time.Second,
		},
		Repos: ReposConfig{
			PerPage:   github.DefaultReposOptions.PerPage,
			Sort:      github.DefaultReposOptions.Sort,
			Direction: github.DefaultReposOptions.Direction,
		},
		Cache: CacheConfig{
			TTL:     5 * time.Minute,
			Enabled: true,
		},
		Search: SearchConfig{
			Debounce: 150 * time.Millisecond,
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
	}
}

// Load builds a Config from every layer. An empty path selects the default
// config file, which may be absent; an explicit path must exist.
func Load(path string) (*Config, error) {
	return load(path, ".env", os.LookupEnv)
}

func load(path, envFile string, lookup func(string) (string, bool)) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	if path != "" {
		if err := cfg.readFile(path); err != nil {
			if explicit || !errors.Is(err, fs.ErrNotExist) {
				return nil, err
			}
		}
	}

	dotenv, err := godotenv.Read(envFile)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("read %s: %w", envFile, err)
	}
	env := func(key string) (string, bool) {
		if v, ok := lookup(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}
	if err := cfg.applyEnv(env); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// DefaultPath returns $XDG_CONFIG_HOME/ghinsight/config.toml, falling back
// to ~/.config. It returns "" when no home directory is known.
func DefaultPath() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName, "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appName, "config.toml")
}

func (c *Config) readFile(path string) error {
	if _, err := toml.DecodeFile(path, c); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return err
		}
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv(env func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := env(key); ok && v != "" {
			*dst = v
		}
	}
	dur := func(key string, dst *time.Duration) error {
		v, ok := env(key)
		if !ok || v == "" {
			return nil
		}
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		*dst = d
		return nil
	}

	str("GHINSIGHT_API_BASE_URL", &c.API.BaseURL)
	str("GITHUB_TOKEN", &c.API.Token)
	str("GHINSIGHT_TOKEN", &c.API.Token)
	str("GHINSIGHT_REPOS_SORT", &c.Repos.Sort)
	str("GHINSIGHT_REPOS_DIRECTION", &c.Repos.Direction)
	str("GHINSIGHT_SERVER_ADDR", &c.Server.Addr)

	if err := dur("GHINSIGHT_API_TIMEOUT", &c.API.Timeout); err != nil {
		return err
	}
	if err := dur("GHINSIGHT_CACHE_TTL", &c.Cache.TTL); err != nil {
		return err
	}
	if err := dur("GHINSIGHT_SEARCH_DEBOUNCE", &c.Search.Debounce); err != nil {
		return err
	}

	if v, ok := env("GHINSIGHT_REPOS_PER_PAGE"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("GHINSIGHT_REPOS_PER_PAGE: %w", err)
		}
		c.Repos.PerPage = n
	}
	if v, ok := env("GHINSIGHT_CACHE_ENABLED"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("GHINSIGHT_CACHE_ENABLED: %w", err)
		}
		c.Cache.Enabled = b
	}
	return nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if err := apperrors.ValidateURL(c.API.BaseURL); err != nil {
		return fmt.Errorf("api.base_url: %w", err)
	}
	if c.API.Timeout <= 0 {
		return fmt.Errorf("api.timeout must be positive, got %s", c.API.Timeout)
	}
	if c.Repos.PerPage < 1 || c.Repos.PerPage > 100 {
		return fmt.Errorf("repos.per_page must be between 1 and 100, got %d", c.Repos.PerPage)
	}
	if c.Repos.Direction != "asc" && c.Repos.Direction != "desc" {
		return fmt.Errorf("repos.direction must be asc or desc, got %q", c.Repos.Direction)
	}
	if c.Cache.TTL <= 0 {
		return fmt.Errorf("cache.ttl must be positive, got %s", c.Cache.TTL)
	}
	if c.Search.Debounce < 0 {
		return fmt.Errorf("search.debounce must not be negative, got %s", c.Search.Debounce)
	}
	return nil
}

// ReposOptions returns the listing options for the GitHub client.
func (c *Config) ReposOptions() github.ReposOptions {
	return github.ReposOptions{
		PerPage:   c.Repos.PerPage,
		Sort:      c.Repos.Sort,
		Direction: c.Repos.Direction,
	}
}
