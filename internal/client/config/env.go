package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Environment variable names recognized by parseEnv.
const (
	envAPIBaseURL     = "BOOKCLUB_API_BASE_URL"
	envStoragePath    = "BOOKCLUB_STORAGE_PATH"
	envRequestTimeout = "BOOKCLUB_REQUEST_TIMEOUT"
)

// parseEnv overlays Config with values from the environment. A .env file in
// the working directory is loaded first when present; variables already set
// in the process environment win over the file.
//
// BOOKCLUB_REQUEST_TIMEOUT accepts time.ParseDuration syntax ("10s", "1m").
// Unparseable values are ignored rather than fatal; the previous value
// stands.
func parseEnv(cfg *Config) {
	// Missing .env is the normal case, not an error.
	_ = godotenv.Load()

	if v := os.Getenv(envAPIBaseURL); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv(envStoragePath); v != "" {
		cfg.StoragePath = v
	}
	if v := os.Getenv(envRequestTimeout); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
}
