// Package config assembles runtime settings for the portal client from
// layered sources: built-in defaults, then a JSON file (-c/-config), then
// environment variables (optionally loaded from .env), then command-line
// flags. Later sources take precedence.
package config

import "time"

// Config holds runtime settings for the portal CLI.
type Config struct {
	// ServerBaseURL is the root URL of the InternHub service.
	ServerBaseURL string

	// RequestTimeout bounds every API call.
	RequestTimeout time.Duration

	// StageInterval is the fixed delay between parse progress stages.
	StageInterval time.Duration

	// UIStateDBPath locates the local SQLite database for persisted UI
	// state. Empty means in-memory only (state lost on exit).
	UIStateDBPath string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://localhost:8000"
	c.RequestTimeout = 30 * time.Second
	c.StageInterval = 600 * time.Millisecond
	c.UIStateDBPath = "portal_ui.db"
}

// LoadConfig constructs a Config by applying all layers in order.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
