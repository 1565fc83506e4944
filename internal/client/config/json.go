package config

import (
	"encoding/json"
	"os"

	"medreport/internal/flagx"
	"medreport/internal/timex"
)

// jsonConfig is a DTO used only for JSON unmarshalling. timex.Duration
// lets a config file write the grace window as "6s" or as integer
// nanoseconds.
type jsonConfig struct {
	APIBaseURL    string         `json:"api_base_url"`
	SessionDBPath string         `json:"session_db_path"`
	UndoGrace     timex.Duration `json:"undo_grace"`
}

// parseJSON overlays cfg with values from the JSON file named by the
// -c/-config flags. No flag, no file, no effect. Read or unmarshal
// failures panic; config problems should stop the program at startup.
func parseJSON(cfg *Config) {
	path := flagx.ConfigFileFlags()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.SessionDBPath != "" {
		cfg.SessionDBPath = jc.SessionDBPath
	}
	if jc.UndoGrace.Duration != 0 {
		cfg.UndoGrace = jc.UndoGrace.Duration
	}
}
