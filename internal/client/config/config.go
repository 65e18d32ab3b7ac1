package config

import "time"

// Config holds runtime settings for the book club CLI.
//
// Fields:
//   - APIBaseURL: base URL of the backend REST API including the version
//     prefix (e.g. http://localhost:3000/api/v1).
//   - StoragePath: path of the SQLite file holding the persisted session.
//   - RequestTimeout: per-request deadline applied by the API gateway.
type Config struct {
	APIBaseURL     string
	StoragePath    string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:3000/api/v1"
	c.StoragePath = "bookclub.db"
	c.RequestTimeout = 10 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment, a JSON file (if present) and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
