// SPDX-License-Identifier: MIT

// Package config loads sqmat command defaults from the environment.
// Command-line flags override every value loaded here.
package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// ErrInvalidConfig is returned when an environment value parses but is out of range.
var ErrInvalidConfig = errors.New("config: invalid value")

// Config holds the defaults shared by all subcommands.
type Config struct {
	// LogLevel is a zap level name.
	LogLevel string `env:"SQMAT_LOG_LEVEL" envDefault:"info"`
	// Seed drives the demo matrix; 0 means "derive from the clock".
	Seed int64 `env:"SQMAT_SEED" envDefault:"0"`
	// Size is the demo matrix size.
	Size int `env:"SQMAT_SIZE" envDefault:"3"`
	// CellWidth and Precision control grid rendering.
	CellWidth int `env:"SQMAT_CELL_WIDTH" envDefault:"8"`
	Precision int `env:"SQMAT_PRECISION" envDefault:"2"`
}

// ParseEnv loads environment variables into target.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	return nil
}

// Load returns the Config built from defaults and SQMAT_* variables.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks the numeric fields.
func (c Config) Validate() error {
	switch {
	case c.Size <= 0:
		return fmt.Errorf("%w: SQMAT_SIZE=%d must be > 0", ErrInvalidConfig, c.Size)
	case c.CellWidth <= 0:
		return fmt.Errorf("%w: SQMAT_CELL_WIDTH=%d must be > 0", ErrInvalidConfig, c.CellWidth)
	case c.Precision < 0:
		return fmt.Errorf("%w: SQMAT_PRECISION=%d must be >= 0", ErrInvalidConfig, c.Precision)
	}

	return nil
}
