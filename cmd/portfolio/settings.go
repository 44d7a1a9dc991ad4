package main

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jonathan/portfolio-hydrator/internal/config"
	"github.com/jonathan/portfolio-hydrator/internal/logging"
)

// flagFields maps command flags onto config fields. Only flags the user set
// explicitly override the config file.
var flagFields = map[string]func(c *config.Config, v string) error{
	"page":       func(c *config.Config, v string) error { c.Page = v; return nil },
	"base":       func(c *config.Config, v string) error { c.Base = v; return nil },
	"out":        func(c *config.Config, v string) error { c.Output = v; return nil },
	"log-format": func(c *config.Config, v string) error { c.LogFormat = v; return nil },
	"log-level":  func(c *config.Config, v string) error { c.LogLevel = v; return nil },
	"port": func(c *config.Config, v string) error {
		port, err := strconv.Atoi(v)
		c.Port = port
		return err
	},
	"fetch-timeout": func(c *config.Config, v string) error {
		secs, err := strconv.Atoi(v)
		c.FetchTimeoutSeconds = secs
		return err
	},
}

// resolveSettings builds the effective configuration for cmd. Precedence is
// flags, then the --config file, then the environment, then defaults. An
// unset base resolves to the page's directory. When requirePage is false the
// page is neither defaulted nor checked.
func resolveSettings(cmd *cobra.Command, requirePage bool) (config.Config, *slog.Logger, error) {
	cfg := &config.Config{}
	if f := cmd.Flags().Lookup("config"); f != nil && f.Value.String() != "" {
		loaded, err := config.LoadConfig(f.Value.String())
		if err != nil {
			return config.Config{}, nil, err
		}
		cfg = loaded
	}

	for name, set := range flagFields {
		f := cmd.Flags().Lookup(name)
		if f == nil || !f.Changed {
			continue
		}
		if err := set(cfg, f.Value.String()); err != nil {
			return config.Config{}, nil, fmt.Errorf("invalid --%s: %w", name, err)
		}
	}

	cfg.ApplyEnv()

	defaults := config.Defaults()
	page := cfg.Page
	if page == "" {
		page = defaults.Page
	}
	defaults.Base = filepath.Dir(page)

	merged := cfg.MergeWithDefaults(defaults)
	if !requirePage {
		merged.Page = ""
	}
	if err := merged.Validate(); err != nil {
		return config.Config{}, nil, err
	}

	logger := logging.New(merged.LogFormat, merged.LogLevel, cmd.ErrOrStderr())
	return merged, logger, nil
}
