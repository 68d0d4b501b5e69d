// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - Load() layers defaults, an optional YAML file, and environment variables.
// - External errors are wrapped via this package's sentinel kinds.
package config

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// MatchesPath and DeliveriesPath locate the two input CSV files.
	MatchesPath    string `koanf:"matches_path"`
	DeliveriesPath string `koanf:"deliveries_path"`

	// DefaultLimit is the ranking length used when a request omits ?limit.
	DefaultLimit int `koanf:"default_limit"`

	// MaxLimit caps ?limit on ranking endpoints.
	MaxLimit int `koanf:"max_limit"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:       "info",
		Addr:           ":9080",
		MatchesPath:    "data/matches.csv",
		DeliveriesPath: "data/deliveries.csv",
		DefaultLimit:   10,
		MaxLimit:       100,
	}
}
