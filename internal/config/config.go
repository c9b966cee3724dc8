// Package config loads the arith CLI's settings from the environment.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// Prefix is prepended to every variable name: ARITH_LOG_LEVEL, ARITH_TYPE, ...
const Prefix = "arith"

// Config holds all CLI configuration. Command-line flags override it.
type Config struct {
	LogLevel  string  `envconfig:"LOG_LEVEL" default:"info"`
	Format    string  `envconfig:"FORMAT" default:"text"`
	Type      string  `envconfig:"TYPE" default:"int"`
	Tolerance float64 `envconfig:"TOLERANCE" default:"1e-9"`
}

// ValidFormats are the accepted output formats.
var ValidFormats = []string{"text", "json", "yaml"}

// ValidTypes are the numeric types the CLI can evaluate in.
var ValidTypes = []string{"int", "int64", "uint64", "float64", "float32"}

// Load loads configuration from environment variables and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the configuration used when the environment is empty.
func Default() *Config {
	return &Config{
		LogLevel:  "info",
		Format:    "text",
		Type:      "int",
		Tolerance: 1e-9,
	}
}

// Validate rejects unknown formats, types, levels and negative tolerances.
func (c *Config) Validate() error {
	if !contains(ValidFormats, c.Format) {
		return fmt.Errorf("invalid format %q: must be one of %v", c.Format, ValidFormats)
	}
	if !contains(ValidTypes, c.Type) {
		return fmt.Errorf("invalid type %q: must be one of %v", c.Type, ValidTypes)
	}
	if c.Tolerance < 0 {
		return fmt.Errorf("invalid tolerance %v: must be >= 0", c.Tolerance)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Level returns the configured slog level. Validate has already checked it.
func (c *Config) Level() slog.Level {
	lvl, _ := ParseLevel(c.LogLevel)
	return lvl
}

// ParseLevel maps debug|info|warn|error to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return lvl, nil
}

func contains(values []string, s string) bool {
	for _, v := range values {
		if v == s {
			return true
		}
	}
	return false
}
