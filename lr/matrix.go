// SPDX-License-Identifier: MIT

package lr

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/tinylr/dim"
	"github.com/katalvlaran/tinylr/pivot"
	"golang.org/x/exp/constraints"
)

// State is the lifecycle marker of a Matrix.
type State int

const (
	// Unfactored: the buffer holds A.
	Unfactored State = iota
	// Factored: the buffer holds the packed L and U factors.
	Factored
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case Unfactored:
		return "unfactored"
	case Factored:
		return "factored"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Matrix is a square matrix with in-place LU factorization.
// A Matrix is not safe for concurrent mutation; independent matrices share nothing.
type Matrix[T constraints.Float] struct {
	d     dim.Dimension
	n     int
	data  []T // row-major, len n*n
	piv   pivot.Engine[T]
	opts  Options
	state State
}

// New allocates a zero-filled Unfactored matrix of dimension d.
//
// Errors:
//   - ErrNilDimension when d is nil.
//   - pivot.ErrUnknownStrategy when WithPivot received a value outside the closed set.
//
// Complexity: O(n²) zeroing.
func New[T constraints.Float](d dim.Dimension, opts ...Option) (*Matrix[T], error) {
	if d == nil {
		return nil, lrErrorf(opNew, ErrNilDimension)
	}
	o := NewOptions(opts...)
	piv, err := pivot.New[T](o.strategy, d)
	if err != nil {
		return nil, lrErrorf(opNew, err)
	}

	return &Matrix[T]{
		d:    d,
		n:    d.Size(),
		data: dim.MatrixBuffer[T](d),
		piv:  piv,
		opts: o,
	}, nil
}

// NewFromRows builds a dynamic-size matrix and copies rows into it.
// Every row must have len(rows) entries; otherwise ErrNonSquare is returned.
func NewFromRows[T constraints.Float](rows [][]T, opts ...Option) (*Matrix[T], error) {
	n := len(rows)
	for i := range rows {
		if len(rows[i]) != n {
			return nil, lrErrorf(opNewFromRows, fmt.Errorf("row %d has %d entries, want %d: %w", i, len(rows[i]), n, ErrNonSquare))
		}
	}
	m, err := New[T](dim.NewDynamic(n), opts...)
	if err != nil {
		return nil, err
	}
	for i := range rows {
		copy(m.data[i*n:(i+1)*n], rows[i])
	}

	return m, nil
}

// NewLike returns a zero-filled Unfactored matrix with m's dimension and options.
//
// Errors: ErrNilDimension when m was not built by a constructor.
func NewLike[T constraints.Float](m *Matrix[T]) (*Matrix[T], error) {
	if m.d == nil {
		return nil, lrErrorf(opNewLike, ErrNilDimension)
	}
	piv, err := pivot.New[T](m.opts.strategy, m.d)
	if err != nil {
		return nil, lrErrorf(opNewLike, err)
	}

	return &Matrix[T]{
		d:    m.d,
		n:    m.n,
		data: dim.MatrixBuffer[T](m.d),
		piv:  piv,
		opts: m.opts,
	}, nil
}

// Size returns n for an n×n matrix.
func (m *Matrix[T]) Size() int { return m.n }

// Dimension returns the dimension strategy the matrix was built with.
func (m *Matrix[T]) Dimension() dim.Dimension { return m.d }

// Strategy returns the pivot strategy.
func (m *Matrix[T]) Strategy() pivot.Strategy { return m.opts.strategy }

// InvertDiagonal reports whether Factorize stores reciprocal pivots.
func (m *Matrix[T]) InvertDiagonal() bool { return m.opts.invert }

// Options returns the resolved configuration.
func (m *Matrix[T]) Options() Options { return m.opts }

// State reports whether Factorize has run.
func (m *Matrix[T]) State() State { return m.state }

// At returns the element at logical row i, column j (through the pivot permutation).
// Indices are not checked.
func (m *Matrix[T]) At(i, j int) T {
	return m.data[m.piv.Row(i)*m.n+j]
}

// Set writes v at logical row i, column j. Indices are not checked.
func (m *Matrix[T]) Set(i, j int, v T) {
	m.data[m.piv.Row(i)*m.n+j] = v
}

// RawAt returns the physically stored element at (i, j), bypassing the permutation.
// After Factorize with pivot.AbsMax the physical layout is not in logical order.
func (m *Matrix[T]) RawAt(i, j int) T {
	return m.data[i*m.n+j]
}

// SetRaw writes v at physical position (i, j).
func (m *Matrix[T]) SetRaw(i, j int, v T) {
	m.data[i*m.n+j] = v
}

// SwapRawRows exchanges physical rows a and b. It is used by pivot.AbsMaxSwap.
func (m *Matrix[T]) SwapRawRows(a, b int) {
	ra := m.data[a*m.n : (a+1)*m.n]
	rb := m.data[b*m.n : (b+1)*m.n]
	for j := range ra {
		ra[j], rb[j] = rb[j], ra[j]
	}
}

// Pivot returns the original row index now seen at logical row i.
func (m *Matrix[T]) Pivot(i int) int { return m.piv.Origin(i) }

// Permutation returns a copy of the original-row order of all logical rows.
func (m *Matrix[T]) Permutation() []int { return m.piv.Permutation() }

// Raw returns the underlying row-major buffer. Writes through it bypass the lifecycle.
func (m *Matrix[T]) Raw() []T { return m.data }

// Load copies a row-major buffer into an Unfactored matrix.
// It returns ErrDimensionMismatch when len(src) != n*n.
func (m *Matrix[T]) Load(src []T) error {
	if len(src) != len(m.data) {
		return lrErrorf("Load", ErrDimensionMismatch)
	}
	copy(m.data, src)

	return nil
}

// Clone returns an independent deep copy including pivot state and lifecycle.
func (m *Matrix[T]) Clone() *Matrix[T] {
	c := &Matrix[T]{
		d:     m.d,
		n:     m.n,
		data:  append([]T(nil), m.data...),
		piv:   m.piv.Clone(),
		opts:  m.opts,
		state: m.state,
	}

	return c
}

// String renders logical rows, one per line, like "[1, 2]\n[3, 4]\n".
func (m *Matrix[T]) String() string {
	var sb strings.Builder
	for i := 0; i < m.n; i++ {
		sb.WriteByte('[')
		for j := 0; j < m.n; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", m.At(i, j))
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
