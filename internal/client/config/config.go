package config

import "time"

// Config holds runtime settings for the crewdesk client.
type Config struct {
	// APIBaseURL is the base URL of the workforce REST backend.
	APIBaseURL string
	// RequestTimeout is the fixed upper bound on every backend call.
	RequestTimeout time.Duration
	// DatabasePath is the sqlite file holding persisted session and
	// preference state.
	DatabasePath string
	// TokenSecret signs session tokens; TokenValidity bounds their lifetime.
	TokenSecret   string
	TokenValidity time.Duration
}

// LoadDefaults populates c with sensible defaults for local development.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8083"
	c.RequestTimeout = 8 * time.Second
	c.DatabasePath = "crewdesk.db"
	c.TokenSecret = "crewdesk-dev-secret"
	c.TokenValidity = 24 * time.Hour
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and command-line flags. Later sources win.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
