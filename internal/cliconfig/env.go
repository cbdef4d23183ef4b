package cliconfig

import (
	"os"
	"time"
)

// Environment variable names. None are required; each overrides the
// matching default when set.
const (
	EnvAPIURL      = "SEEDCTL_API_URL"
	EnvTimeout     = "SEEDCTL_TIMEOUT"
	EnvFixturesDir = "SEEDCTL_FIXTURES_DIR"
	EnvLogLevel    = "SEEDCTL_LOG_LEVEL"
	EnvLogFormat   = "SEEDCTL_LOG_FORMAT"
	EnvNoColor     = "SEEDCTL_NO_COLOR"
)

// ApplyEnv overlays environment variable values onto cfg.
// It only touches fields whose variable is present and parseable.
func ApplyEnv(cfg *Config) {
	if cfg.Sources == nil {
		cfg.Sources = make(map[string]string)
	}

	if v := os.Getenv(EnvAPIURL); v != "" {
		cfg.APIURL = v
		cfg.Sources["apiUrl"] = SourceEnv
	}

	// SEEDCTL_TIMEOUT takes a Go duration string ("45s", "2m").
	if v := os.Getenv(EnvTimeout); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.Timeout = d
			cfg.Sources["timeout"] = SourceEnv
		}
	}

	if v := os.Getenv(EnvFixturesDir); v != "" {
		cfg.FixturesDir = v
		cfg.Sources["fixturesDir"] = SourceEnv
	}

	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
		cfg.Sources["logLevel"] = SourceEnv
	}

	if v := os.Getenv(EnvLogFormat); v != "" {
		cfg.LogFormat = v
		cfg.Sources["logFormat"] = SourceEnv
	}

	if v := os.Getenv(EnvNoColor); v != "" {
		cfg.NoColor = v == "true" || v == "1" || v == "yes"
		cfg.Sources["noColor"] = SourceEnv
	}
}
