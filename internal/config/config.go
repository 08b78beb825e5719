// Package config loads zcohort's settings from the environment, command-line
// flags and YAML profile files.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"
)

// ErrInvalidConfig is returned for malformed settings.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds process-wide settings.
type Config struct {
	// Seed makes output reproducible. Zero seeds from the OS.
	Seed     int64      `env:"ZCOHORT_SEED"`
	Profile  string     `env:"ZCOHORT_PROFILE"`
	Domain   string     `env:"ZCOHORT_DOMAIN"`
	LogLevel slog.Level `env:"ZCOHORT_LOG_LEVEL" envDefault:"info"`
}

// Load reads the process environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// LoadFrom reads settings from environ instead of the process environment.
func LoadFrom(environ map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// ParseArgs strips the global flags --seed, --profile and --domain from
// args, applies them over cfg and returns the remaining arguments. Flags
// take either "--flag value" or "--flag=value".
func ParseArgs(cfg Config, args []string) (Config, []string, error) {
	rest := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		name, value, inline := strings.Cut(args[i], "=")
		switch strings.ToLower(name) {
		case "--seed", "--profile", "--domain":
		default:
			rest = append(rest, args[i])
			continue
		}

		if !inline {
			if i+1 >= len(args) {
				return cfg, nil, fmt.Errorf("%s: missing value: %w", name, ErrInvalidConfig)
			}
			i++
			value = args[i]
		}

		switch strings.ToLower(name) {
		case "--seed":
			seed, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return cfg, nil, fmt.Errorf("--seed %q: %w", value, ErrInvalidConfig)
			}
			cfg.Seed = seed
		case "--profile":
			cfg.Profile = value
		case "--domain":
			cfg.Domain = value
		}
	}
	return cfg, rest, nil
}
