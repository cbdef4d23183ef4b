package cliconfig

import "time"

// DefaultAPIURL is the base URL used when neither --api-url nor
// SEEDCTL_API_URL is set.
const DefaultAPIURL = "http://localhost:8000"

// DefaultTimeout is the per-request timeout for API calls.
const DefaultTimeout = 30 * time.Second

// DefaultHealthPath is the path probed by the readiness check.
const DefaultHealthPath = "/"

// DefaultHealthRetries is how many times the readiness probe polls
// before giving up.
const DefaultHealthRetries = 30

// DefaultHealthDelay is the pause between readiness probe attempts.
const DefaultHealthDelay = 1 * time.Second

// Config value sources, tracked per field for debugging.
const (
	SourceDefault = "default"
	SourceEnv     = "env"
	SourceFlag    = "flag"
)

// Config holds the resolved CLI configuration.
type Config struct {
	// APIURL is the base URL of the API being seeded.
	APIURL string

	// Timeout is the per-request timeout for API calls.
	Timeout time.Duration

	// FixturesDir is an optional directory scanned for fixture data files.
	FixturesDir string

	// LogLevel is the minimum log level (debug, info, warn, error).
	LogLevel string

	// LogFormat is the log output format (text, json).
	LogFormat string

	// NoColor disables styled console output.
	NoColor bool

	// Sources records where each field's value came from,
	// keyed by field name.
	Sources map[string]string
}

// NewDefault creates a Config with default values.
func NewDefault() *Config {
	return &Config{
		APIURL:  DefaultAPIURL,
		Timeout: DefaultTimeout,
		Sources: map[string]string{
			"apiUrl":  SourceDefault,
			"timeout": SourceDefault,
		},
	}
}

// Load builds the configuration from defaults overlaid with any SEEDCTL_*
// environment variables. Flag values are applied by the command layer on
// top of the result.
func Load() *Config {
	cfg := NewDefault()
	ApplyEnv(cfg)
	return cfg
}
