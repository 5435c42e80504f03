// SPDX-License-Identifier: MIT

package bench

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/tinylr/pivot"
)

// Defaults: seed 123, dynamic storage, absmax pivoting
// with an inverted diagonal.
const (
	DefaultSize           = 16
	DefaultIterations     = 10000
	DefaultSeed           = 123
	DefaultStrategy       = pivot.AbsMax
	DefaultInvertDiagonal = true
)

var (
	// ErrBadSize is returned for a negative matrix size.
	ErrBadSize = errors.New("bench: size must be non-negative")

	// ErrBadIterations is returned when fewer than one iteration is requested.
	ErrBadIterations = errors.New("bench: iterations must be positive")
)

// Config describes one benchmark run.
type Config struct {
	Size           int            `json:"size"`
	Fixed          bool           `json:"fixed"` // use a dim.Fixed extent when one matches Size
	Iterations     int            `json:"iterations"`
	Strategy       pivot.Strategy `json:"-"`
	InvertDiagonal bool           `json:"invert_diagonal"`
	Seed           int64          `json:"seed"`
	Solve          bool           `json:"solve"`
	Multiply       bool           `json:"multiply"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Size:           DefaultSize,
		Iterations:     DefaultIterations,
		Strategy:       DefaultStrategy,
		InvertDiagonal: DefaultInvertDiagonal,
		Seed:           DefaultSeed,
	}
}

// Validate checks the configuration before any work is done.
func (c Config) Validate() error {
	if c.Size < 0 {
		return fmt.Errorf("size %d: %w", c.Size, ErrBadSize)
	}
	if c.Iterations < 1 {
		return fmt.Errorf("iterations %d: %w", c.Iterations, ErrBadIterations)
	}

	return c.Strategy.Validate()
}
