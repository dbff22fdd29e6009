package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// ErrInvalidConfig indicates a config value outside its allowed range.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the settings shared by all commands. It can be loaded from a
// YAML file; command-line flags override file values.
type Config struct {
	Edges     int    `yaml:"edges"`
	Workers   int    `yaml:"workers"`
	TopK      int    `yaml:"top_k"`
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
}

// DefaultConfig returns the settings used when neither file nor flags set a value.
func DefaultConfig() Config {
	return Config{
		Edges:     1000,
		Workers:   1,
		TopK:      3,
		LogLevel:  "warn",
		LogFormat: "console",
	}
}

// LoadConfig reads path on top of DefaultConfig. Keys missing from the file
// keep their defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks ranges and enum values.
func (c Config) Validate() error {
	switch {
	case c.Edges < 0:
		return fmt.Errorf("%w: edges must be >= 0, got %d", ErrInvalidConfig, c.Edges)
	case c.Workers < 1:
		return fmt.Errorf("%w: workers must be >= 1, got %d", ErrInvalidConfig, c.Workers)
	case c.TopK < 1:
		return fmt.Errorf("%w: top_k must be >= 1, got %d", ErrInvalidConfig, c.TopK)
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("%w: log_format must be console or json, got %q", ErrInvalidConfig, c.LogFormat)
	}

	return nil
}
