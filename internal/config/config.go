// Package config loads CLI settings from the environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Prefix is prepended to every environment variable name.
const Prefix = "PHYSRISK_"

// Output selects how reports are written.
type Output string

const (
	// OutputAuto renders markdown on terminals and plain text elsewhere.
	OutputAuto     Output = "auto"
	OutputMarkdown Output = "markdown"
	OutputPlain    Output = "plain"
	OutputJSON     Output = "json"
)

// ErrInvalid is returned when a setting holds an unsupported value.
var ErrInvalid = errors.New("invalid configuration")

// Config holds the CLI settings.
type Config struct {
	LogLevel  slog.Level `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string     `env:"LOG_FORMAT" envDefault:"text"`
	Output    Output     `env:"OUTPUT" envDefault:"auto"`
}

// Load reads the process environment. A .env file in the working
// directory, when present, fills variables that are not already set.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to read .env: %w", err)
	}
	return parse(env.Options{Prefix: Prefix})
}

// LoadFrom reads settings from the given variables instead of the process
// environment. Keys carry the PHYSRISK_ prefix.
func LoadFrom(vars map[string]string) (Config, error) {
	return parse(env.Options{Prefix: Prefix, Environment: vars})
}

// LoadFile reads variables from a dotenv file, layered over the process
// environment.
func LoadFile(path string) (Config, error) {
	vars, err := godotenv.Read(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	merged := env.ToMap(os.Environ())
	for k, v := range vars {
		if _, set := merged[k]; !set {
			merged[k] = v
		}
	}
	return LoadFrom(merged)
}

func parse(opts env.Options) (Config, error) {
	cfg, err := env.ParseAsWithOptions[Config](opts)
	if err != nil {
		return Config{}, errors.Join(ErrInvalid, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the enumerated settings.
func (c Config) Validate() error {
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log format %q (want text or json)", ErrInvalid, c.LogFormat)
	}
	switch c.Output {
	case OutputAuto, OutputMarkdown, OutputPlain, OutputJSON:
	default:
		return fmt.Errorf("%w: output %q (want auto, markdown, plain or json)", ErrInvalid, c.Output)
	}
	return nil
}
