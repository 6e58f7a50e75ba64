// Package config loads seqgen settings from a YAML file and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/jacoelho/seqbuf"
)

// DefaultPath is the config file read when no --config flag is given.
const DefaultPath = "seqgen.yaml"

// Environment variables that override file values.
const (
	EnvCount     = "SEQGEN_COUNT"
	EnvCapacity  = "SEQGEN_CAPACITY"
	EnvLogLevel  = "SEQGEN_LOG_LEVEL"
	EnvLogFormat = "SEQGEN_LOG_FORMAT"
)

// Config holds all seqgen settings.
type Config struct {
	// Count is how many values are generated.
	Count int `yaml:"count"`
	// Capacity is the number of buffer slots.
	Capacity int `yaml:"capacity"`

	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
}

// DefaultConfig returns the settings that reproduce the classic ten-line output.
func DefaultConfig() *Config {
	return &Config{
		Count:    seqbuf.DefaultCapacity,
		Capacity: seqbuf.DefaultCapacity,
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads the config at path on top of the defaults, then applies
// environment overrides. A missing file is not an error.
// The result is not validated; callers apply their own overrides first
// and then call Validate.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv(EnvCount); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvCount, err)
		}
		c.Count = n
	}
	if v := os.Getenv(EnvCapacity); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvCapacity, err)
		}
		c.Capacity = n
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.Logging.Format = v
	}
	return nil
}

// Validate checks each field on its own. Count is not checked here: a count
// outside [0, capacity] is left for the generator to reject.
func (c *Config) Validate() error {
	var errs []error
	if c.Capacity <= 0 {
		errs = append(errs, fmt.Errorf("capacity must be > 0, got %d", c.Capacity))
	}
	if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
		errs = append(errs, fmt.Errorf("logging.level: %w", err))
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		errs = append(errs, fmt.Errorf("logging.format must be json or console, got %q", c.Logging.Format))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
