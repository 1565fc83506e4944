// Package config loads runtime settings for the medreport CLI.
package config

import "time"

// Config holds runtime settings.
//
// Fields:
//   - APIBaseURL: root of the report service's REST API, with the /api/ path.
//   - SessionDBPath: where the session database (token pair) lives.
//   - UndoGrace: how long a removed report waits before the server delete
//     actually fires; the removal can be undone during this window.
type Config struct {
	APIBaseURL    string
	SessionDBPath string
	UndoGrace     time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:8000/api/"
	c.SessionDBPath = "medreport.db"
	c.UndoGrace = 6 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if a config file is given) and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}
