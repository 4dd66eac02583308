package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dkovalenko/crewdesk/internal/flagx"
	"github.com/dkovalenko/crewdesk/internal/timex"
)

// JsonConfig is the DTO for JSON unmarshalling. Durations accept either
// strings like "8s" or integer nanoseconds (timex.Duration). Absent fields
// leave the current Config value untouched.
type JsonConfig struct {
	APIBaseURL     string          `json:"api_base_url"`
	RequestTimeout *timex.Duration `json:"request_timeout"`
	DatabasePath   string          `json:"database_path"`
	TokenSecret    string          `json:"token_secret"`
	TokenValidity  *timex.Duration `json:"token_validity"`
}

// parseJson overlays cfg with values from the JSON file named by -c/-config.
// No flag, no file, no overlay. Read or parse errors panic; configuration is
// resolved once at startup and a broken file should stop the program.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.TokenSecret != "" {
		cfg.TokenSecret = jc.TokenSecret
	}
	if jc.TokenValidity != nil {
		cfg.TokenValidity = time.Duration(jc.TokenValidity.Duration)
	}
}
