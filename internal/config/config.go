// Package config loads runtime settings for the command line tool and the
// suite runner from a YAML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"seq-rebuild/node"
)

// Config holds tool settings. Zero fields are filled by defaults.
type Config struct {
	// Workers bounds how many suite cases are evaluated at once.
	Workers int `yaml:"workers"`
	// MaxNesting rejects values nested deeper than this.
	MaxNesting int `yaml:"maxNesting"`
	// DefaultDepth is the flatten budget used when a call omits one.
	DefaultDepth int `yaml:"defaultDepth"`
	// LogLevel is a zap level name: debug, info, warn, error.
	LogLevel string `yaml:"logLevel"`
}

// Default returns the built-in configuration.
func Default() *Config {
	c := &Config{}
	applyDefaults(c)

	return c
}

// LoadFile loads and parses a YAML config file from the given path.
// An empty path yields Default().
func LoadFile(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Config, applies defaults and validates it.
func Parse(data []byte) (*Config, error) {
	var c Config

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&c)

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(c *Config) {
	if c.Workers == 0 {
		c.Workers = runtime.GOMAXPROCS(0)
	}

	if c.MaxNesting == 0 {
		c.MaxNesting = node.DefaultMaxNesting
	}

	if c.DefaultDepth == 0 {
		c.DefaultDepth = 1
	}

	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// Validate reports every out-of-range setting.
func (c *Config) Validate() error {
	var errs []error

	if c.Workers < 1 {
		errs = append(errs, fmt.Errorf("workers must be positive, got %d", c.Workers))
	}

	if c.MaxNesting < 1 {
		errs = append(errs, fmt.Errorf("maxNesting must be positive, got %d", c.MaxNesting))
	}

	if c.DefaultDepth < 0 {
		errs = append(errs, fmt.Errorf("defaultDepth must not be negative, got %d", c.DefaultDepth))
	}

	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}

	return nil
}

// Level returns LogLevel as a zap level.
func (c *Config) Level() (zapcore.Level, error) {
	lvl, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("logLevel: %w", err)
	}

	return lvl, nil
}
