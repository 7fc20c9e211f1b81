package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Environment variable names. A .env file in the working directory is
// loaded first when present; real environment variables win over it.
const (
	envServerBaseURL  = "INTERNHUB_SERVER_URL"
	envRequestTimeout = "INTERNHUB_REQUEST_TIMEOUT"
	envStageInterval  = "INTERNHUB_STAGE_INTERVAL"
	envUIStateDBPath  = "INTERNHUB_UI_DB"
)

// parseEnv overlays cfg with environment values. Durations use the
// time.ParseDuration syntax ("30s", "600ms"); malformed values are ignored.
func parseEnv(cfg *Config) {
	// Missing .env is the normal case, not an error.
	_ = godotenv.Load()
	applyEnv(cfg, os.Getenv)
}

func applyEnv(cfg *Config, getenv func(string) string) {
	if v := getenv(envServerBaseURL); v != "" {
		cfg.ServerBaseURL = v
	}
	if v := getenv(envRequestTimeout); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
	if v := getenv(envStageInterval); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.StageInterval = d
		}
	}
	if v := getenv(envUIStateDBPath); v != "" {
		cfg.UIStateDBPath = v
	}
}
