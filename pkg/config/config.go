// Package config loads the optional defaults file that pre-seeds the
// chart flags.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds chart defaults that flags can override per invocation.
type Config struct {
	// Width is the maximum rendered line width, in characters.
	Width int `yaml:"width"`
	// Intervals is the number of histogram buckets.
	Intervals int `yaml:"intervals"`
	// Height is the number of rows in xy plots.
	Height int `yaml:"height"`
	// Lines is the number of terms shown by common-terms.
	Lines int `yaml:"lines"`
	// Color is the output color mode: auto, yes or no.
	Color string `yaml:"color"`
}

// DefaultConfig returns the built-in defaults used when no config file
// is given.
func DefaultConfig() *Config {
	return &Config{
		Width:     110,
		Intervals: 20,
		Height:    40,
		Lines:     10,
		Color:     "auto",
	}
}

// Load reads and validates a defaults file, with built-in defaults for
// any omitted key.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Validate checks a configuration for errors.
func Validate(cfg *Config) error {
	if cfg.Width < 1 {
		return errors.New("width: must be at least 1")
	}
	if cfg.Intervals < 1 {
		return errors.New("intervals: must be at least 1")
	}
	if cfg.Height < 1 {
		return errors.New("height: must be at least 1")
	}
	if cfg.Lines < 1 {
		return errors.New("lines: must be at least 1")
	}
	switch cfg.Color {
	case "auto", "yes", "no":
	default:
		return fmt.Errorf("color: invalid mode %q (must be auto, yes, or no)", cfg.Color)
	}
	return nil
}
