// Package config loads clockface configuration from a YAML file with
// environment variable overrides. A missing file is not an error; every
// field has a usable default.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"clockface/internal/clock"
)

// Config holds all clockface configuration.
type Config struct {
	// Time display format: "12h" or "24h".
	Format string `yaml:"format"`

	// Refresh period as a duration string (e.g. "1s", "500ms").
	TickInterval string `yaml:"tick_interval"`

	// TUI theme: "light", "dark" or "auto".
	Theme string `yaml:"theme"`

	// Account page settings.
	Account AccountConfig `yaml:"account"`
}

// AccountConfig configures the account page backed by the platform client.
type AccountConfig struct {
	Enabled bool   `yaml:"enabled"`
	User    string `yaml:"user"`
}

// Default returns the configuration used when no file and no environment
// overrides are present.
func Default() Config {
	return Config{
		Format:       "12h",
		TickInterval: "1s",
		Theme:        "auto",
		Account: AccountConfig{
			Enabled: true,
			User:    "local",
		},
	}
}

// Load reads the config file at path, applies environment overrides and
// validates the result. A missing file yields the defaults (plus any
// environment overrides).
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// Defaults apply.
	case err != nil:
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Environment overrides beat file values. Empty variables are ignored.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("CLOCKFACE_FORMAT"); v != "" {
		c.Format = v
	}
	if v := os.Getenv("CLOCKFACE_TICK_INTERVAL"); v != "" {
		c.TickInterval = v
	}
	if v := os.Getenv("CLOCKFACE_THEME"); v != "" {
		c.Theme = v
	}
	if v := os.Getenv("CLOCKFACE_ACCOUNT_USER"); v != "" {
		c.Account.User = v
	}
}

// Validate rejects values the rest of the app cannot act on.
func (c *Config) Validate() error {
	if _, err := clock.ParseMode(c.Format); err != nil {
		return err
	}
	if _, err := c.Interval(); err != nil {
		return err
	}
	switch c.Theme {
	case "light", "dark", "auto":
	default:
		return fmt.Errorf("unknown theme %q (want \"light\", \"dark\" or \"auto\")", c.Theme)
	}
	return nil
}

// Mode returns the configured display mode.
func (c *Config) Mode() (clock.Mode, error) {
	return clock.ParseMode(c.Format)
}

// Interval returns the configured refresh period.
func (c *Config) Interval() (time.Duration, error) {
	d, err := time.ParseDuration(c.TickInterval)
	if err != nil {
		return 0, fmt.Errorf("invalid tick_interval %q: %w", c.TickInterval, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("tick_interval must be positive, got %q", c.TickInterval)
	}
	return d, nil
}
