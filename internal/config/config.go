// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config represents the CLI configuration that can be loaded from a JSON or YAML file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Page   string `json:"page,omitempty" yaml:"page,omitempty"`     // Path to the HTML page to hydrate
	Base   string `json:"base,omitempty" yaml:"base,omitempty"`     // Directory or http(s) URL holding data.json
	Output string `json:"output,omitempty" yaml:"output,omitempty"` // Path to write the hydrated page

	// Server
	Port int `json:"port,omitempty" yaml:"port,omitempty" validate:"omitempty,min=1,max=65535"`

	// Behavior
	FetchTimeoutSeconds int    `json:"fetch_timeout_seconds,omitempty" yaml:"fetch_timeout_seconds,omitempty" validate:"gte=0"`
	LogFormat           string `json:"log_format,omitempty" yaml:"log_format,omitempty" validate:"omitempty,oneof=text json"`
	LogLevel            string `json:"log_level,omitempty" yaml:"log_level,omitempty" validate:"omitempty,oneof=debug info warn warning error"`
}

// Defaults returns the values used when neither a config file, the
// environment nor a flag provides one.
func Defaults() Config {
	return Config{
		Page:                "index.html",
		Base:                ".",
		Port:                8080,
		FetchTimeoutSeconds: 30,
		LogFormat:           "text",
		LogLevel:            "info",
	}
}

// LoadConfig loads configuration from a JSON or YAML file, chosen by extension.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	return &cfg, nil
}

// ApplyEnv fills empty fields from PORTFOLIO_PAGE, PORTFOLIO_BASE,
// PORTFOLIO_OUTPUT, PORT, LOG_FORMAT and LOG_LEVEL.
func (c *Config) ApplyEnv() {
	setFromEnv(&c.Page, "PORTFOLIO_PAGE")
	setFromEnv(&c.Base, "PORTFOLIO_BASE")
	setFromEnv(&c.Output, "PORTFOLIO_OUTPUT")
	setFromEnv(&c.LogFormat, "LOG_FORMAT")
	setFromEnv(&c.LogLevel, "LOG_LEVEL")

	if c.Port == 0 {
		if port, err := strconv.Atoi(os.Getenv("PORT")); err == nil {
			c.Port = port
		}
	}
}

func setFromEnv(field *string, key string) {
	if *field == "" {
		*field = os.Getenv(key)
	}
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return fmt.Errorf("config error: '%s' failed '%s' check (value %v)", jsonName(fe.StructField()), fe.Tag(), fe.Value())
		}
		return fmt.Errorf("config error: %w", err)
	}

	// Validate file paths exist (if specified)
	if c.Page != "" {
		if _, err := os.Stat(c.Page); os.IsNotExist(err) {
			return fmt.Errorf("config error: page file not found: %s", c.Page)
		}
	}

	return nil
}

// jsonName maps a struct field to its config file key.
func jsonName(field string) string {
	switch field {
	case "FetchTimeoutSeconds":
		return "fetch_timeout_seconds"
	case "LogFormat":
		return "log_format"
	case "LogLevel":
		return "log_level"
	default:
		return strings.ToLower(field)
	}
}

// FetchTimeout returns the fetch timeout as a duration. Zero means the fetch default.
func (c *Config) FetchTimeout() time.Duration {
	return time.Duration(c.FetchTimeoutSeconds) * time.Second
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Page == "" {
		result.Page = defaults.Page
	}
	if result.Base == "" {
		result.Base = defaults.Base
	}
	if result.Output == "" {
		result.Output = defaults.Output
	}
	if result.LogFormat == "" {
		result.LogFormat = defaults.LogFormat
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}

	// Int fields: use default if zero
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.FetchTimeoutSeconds == 0 {
		result.FetchTimeoutSeconds = defaults.FetchTimeoutSeconds
	}

	return result
}
