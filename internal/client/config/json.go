package config

import (
	"encoding/json"
	"os"

	"github.com/dkravets/internhub/internal/flagx"
	"github.com/dkravets/internhub/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Durations
// accept either strings like "600ms" or integer nanoseconds.
type JsonConfig struct {
	ServerBaseURL  string         `json:"server_base_url"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	StageInterval  timex.Duration `json:"stage_interval"`
	UIStateDBPath  string         `json:"ui_state_db_path"`
}

// parseJson overlays cfg with values from the JSON file named by the
// -c/-config flag, if any. Absent fields leave the current value in place.
func parseJson(cfg *Config) {
	path := flagx.JsonConfigFlags()
	if path == "" {
		return
	}
	if err := loadJsonFile(cfg, path); err != nil {
		panic(err)
	}
}

func loadJsonFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return err
	}

	if jc.ServerBaseURL != "" {
		cfg.ServerBaseURL = jc.ServerBaseURL
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.StageInterval.Duration != 0 {
		cfg.StageInterval = jc.StageInterval.Duration
	}
	if jc.UIStateDBPath != "" {
		cfg.UIStateDBPath = jc.UIStateDBPath
	}
	return nil
}
