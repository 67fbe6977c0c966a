// Package config provides configuration loading and validation for the
// gateway and the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Config is the CLI/gateway configuration, loadable from a JSON file.
// All fields are optional; missing values use defaults or come from
// environment variables and CLI flags.
type Config struct {
	// Upstream
	UpstreamURL    string `json:"upstream_url,omitempty"`    // Base URL of the legacy Talento-Hub backend
	TimeoutSeconds int    `json:"timeout_seconds,omitempty"` // HTTP timeout for upstream calls

	// Gateway
	Port        int    `json:"port,omitempty"`         // Gateway listen port
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL (session store)

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

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
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv fills a config from environment variables.
func FromEnv() Config {
	return Config{
		UpstreamURL: os.Getenv("UPSTREAM_URL"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
	}
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.UpstreamURL != "" && !strings.HasPrefix(c.UpstreamURL, "http") {
		return fmt.Errorf("config error: 'upstream_url' must be an http(s) URL")
	}
	if c.TimeoutSeconds < 0 {
		return fmt.Errorf("config error: 'timeout_seconds' must be non-negative")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be a valid TCP port")
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. Used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.UpstreamURL == "" {
		result.UpstreamURL = defaults.UpstreamURL
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.TimeoutSeconds == 0 {
		result.TimeoutSeconds = defaults.TimeoutSeconds
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
