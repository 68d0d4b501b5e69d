package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if PAVILION_CONFIG is set
//  3. env (prefix PAVILION_)
func Load(ctx context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("PAVILION_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: PAVILION_ADDR, PAVILION_MATCHES_PATH, ...
	// Map env keys like PAVILION_MAX_LIMIT -> max_limit (flat keys).
	// Underscores are preserved to match the koanf tags on the struct.
	envProvider := env.Provider("PAVILION_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "pavilion_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func validate(cfg *Config) error {
	switch {
	case cfg.Addr == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case cfg.MatchesPath == "":
		return fmt.Errorf("%w: matches_path must not be empty", ErrInvalidConfig)
	case cfg.DeliveriesPath == "":
		return fmt.Errorf("%w: deliveries_path must not be empty", ErrInvalidConfig)
	case cfg.DefaultLimit < 1:
		return fmt.Errorf("%w: default_limit must be positive", ErrInvalidConfig)
	case cfg.MaxLimit < cfg.DefaultLimit:
		return fmt.Errorf("%w: max_limit must be >= default_limit", ErrInvalidConfig)
	}
	return nil
}
