// Package config loads lvnum settings from LVNUM_* environment variables.
package config

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/lvnum/derivative"
	"github.com/katalvlaran/lvnum/internal/logging"
	"github.com/katalvlaran/lvnum/quadrature"
	"github.com/kelseyhightower/envconfig"
)

// Prefix is the environment variable prefix.
const Prefix = "LVNUM"

// Numeric backend names.
const (
	BackendFloat64  = "float64"
	BackendBigFloat = "bigfloat"
	BackendDecimal  = "decimal"
)

// MaxPrecision bounds Precision for both high-precision backends.
const MaxPrecision = 1 << 16

// Backends lists the accepted backend names.
var Backends = []string{BackendFloat64, BackendBigFloat, BackendDecimal}

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds the command defaults. Command-line flags override it.
type Config struct {
	Backend string `envconfig:"BACKEND" default:"float64"`
	// Precision is BigFloat mantissa bits or Decimal division digits;
	// 0 keeps the backend default.
	Precision   uint      `envconfig:"PRECISION" default:"0"`
	Accuracy    int       `envconfig:"ACCURACY" default:"2"`
	Method      string    `envconfig:"METHOD" default:"simpson"`
	Concurrency int       `envconfig:"CONCURRENCY" default:"1"`
	Log         LogConfig `envconfig:"LOG"`
}

// LogConfig holds logging configuration (LVNUM_LOG_LEVEL, LVNUM_LOG_DEV).
type LogConfig struct {
	Level       string `envconfig:"LEVEL" default:"warn"`
	Development bool   `envconfig:"DEV" default:"false"`
}

// Load reads the environment and validates the result.
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

// Default returns the configuration used when no variable is set.
func Default() *Config {
	return &Config{
		Backend:     BackendFloat64,
		Accuracy:    int(derivative.H2),
		Method:      quadrature.Simpson.String(),
		Concurrency: 1,
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// Validate checks enumerations and ranges.
func (c *Config) Validate() error {
	if !slices.Contains(Backends, c.Backend) {
		return fmt.Errorf("%w: backend %q (want one of %v)", ErrInvalidConfig, c.Backend, Backends)
	}
	if c.Precision > MaxPrecision {
		return fmt.Errorf("%w: precision %d (max %d)", ErrInvalidConfig, c.Precision, MaxPrecision)
	}
	if acc := derivative.Accuracy(c.Accuracy); acc != derivative.H2 && acc != derivative.H4 {
		return fmt.Errorf("%w: accuracy %d (want 2 or 4)", ErrInvalidConfig, c.Accuracy)
	}
	if _, err := quadrature.ParseMethod(c.Method); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.Concurrency < 1 {
		return fmt.Errorf("%w: concurrency %d (want >= 1)", ErrInvalidConfig, c.Concurrency)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// Logging converts the log section to a logging.Config.
func (c *Config) Logging() logging.Config {
	cfg := logging.DefaultConfig()
	cfg.Level = c.Log.Level
	cfg.Development = c.Log.Development

	return cfg
}
