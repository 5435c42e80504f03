// SPDX-License-Identifier: MIT

package lr

import "github.com/katalvlaran/tinylr/pivot"

// Defaults applied when no Option overrides them.
const (
	// DefaultPivot is partial pivoting through an indirection table.
	DefaultPivot = pivot.AbsMax

	// DefaultInvertDiagonal stores reciprocal pivots on the diagonal.
	DefaultInvertDiagonal = true

	// DefaultFiniteCheck leaves Solve/Multiply results unchecked.
	DefaultFiniteCheck = false
)

// Option mutates construction-time configuration.
type Option func(*Options)

// Options is the resolved configuration of a Matrix. Fields are unexported; build it
// with NewOptions or pass Option values to New.
type Options struct {
	strategy    pivot.Strategy // DefaultPivot
	invert      bool           // DefaultInvertDiagonal
	finiteCheck bool           // DefaultFiniteCheck
}

// WithPivot selects the pivot strategy. Unknown values are rejected by New with
// pivot.ErrUnknownStrategy rather than here, so a bad value read from configuration
// surfaces as an error instead of a panic.
func WithPivot(s pivot.Strategy) Option {
	return func(o *Options) { o.strategy = s }
}

// WithInvertDiagonal stores 1/pivot on the diagonal (the default).
func WithInvertDiagonal() Option {
	return func(o *Options) { o.invert = true }
}

// WithoutInvertDiagonal keeps the literal pivot value on the diagonal.
func WithoutInvertDiagonal() Option {
	return func(o *Options) { o.invert = false }
}

// WithFiniteCheck makes Solve and Multiply return ErrNonFinite when a result
// element is NaN or ±Inf.
func WithFiniteCheck() Option {
	return func(o *Options) { o.finiteCheck = true }
}

// NewOptions resolves opts on top of the defaults.
func NewOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// Strategy returns the configured pivot strategy.
func (o Options) Strategy() pivot.Strategy { return o.strategy }

// InvertDiagonal reports whether reciprocal pivots are stored.
func (o Options) InvertDiagonal() bool { return o.invert }

// FiniteCheck reports whether Solve/Multiply validate their results.
func (o Options) FiniteCheck() bool { return o.finiteCheck }

func defaultOptions() Options {
	return Options{
		strategy:    DefaultPivot,
		invert:      DefaultInvertDiagonal,
		finiteCheck: DefaultFiniteCheck,
	}
}
