// SPDX-License-Identifier: MIT

package pivot

import (
	"math"

	"github.com/katalvlaran/tinylr/dim"
	"golang.org/x/exp/constraints"
)

// Grid is the view of the matrix under factorization that an Engine needs.
// RawAt addresses physical rows; SwapRawRows exchanges two physical rows in place.
type Grid[T constraints.Float] interface {
	Size() int
	RawAt(i, j int) T
	SwapRawRows(a, b int)
}

// Engine tracks the row permutation of one matrix.
type Engine[T constraints.Float] interface {
	// Pivot selects the pivot row for column col, records it and applies any
	// physical reordering. It returns the logical row that was chosen.
	Pivot(col int, g Grid[T]) int

	// Row maps logical row i to the physical row that backs it.
	Row(i int) int

	// Origin returns the original row index now seen at logical row i.
	Origin(i int) int

	// Permutation returns a copy of the original-row order (Origin for every i).
	Permutation() []int

	// Strategy reports the strategy the engine was built with.
	Strategy() Strategy

	// Clone returns an independent engine with the same recorded pivots.
	Clone() Engine[T]
}

// New builds the Engine for strategy s over dimension d.
// Unknown strategies fail here rather than at first use.
func New[T constraints.Float](s Strategy, d dim.Dimension) (Engine[T], error) {
	if d == nil {
		return nil, ErrNilDimension
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	switch s {
	case AbsMax:
		return &indirect[T]{perm: dim.Identity(d)}, nil
	case AbsMaxSwap:
		return &swapping[T]{origin: dim.Identity(d)}, nil
	default:
		return &identity[T]{n: d.Size()}, nil
	}
}

// selectRow scans logical rows col..n-1 of column col and returns the first row with
// the strictly largest magnitude; row(i) maps logical to physical rows.
func selectRow[T constraints.Float](col int, g Grid[T], row func(int) int) int {
	best := math.Abs(float64(g.RawAt(row(col), col)))
	choice := col
	n := g.Size()
	var v float64
	for i := col + 1; i < n; i++ {
		v = math.Abs(float64(g.RawAt(row(i), col)))
		if v > best {
			best = v
			choice = i
		}
	}

	return choice
}

// identity implements None.
type identity[T constraints.Float] struct {
	n int
}

func (e *identity[T]) Pivot(col int, _ Grid[T]) int { return col }
func (e *identity[T]) Row(i int) int                 { return i }
func (e *identity[T]) Origin(i int) int              { return i }
func (e *identity[T]) Strategy() Strategy            { return None }

func (e *identity[T]) Clone() Engine[T] { return &identity[T]{n: e.n} }

func (e *identity[T]) Permutation() []int {
	return dim.Identity(dim.NewDynamic(e.n))
}

// indirect implements AbsMax: perm[i] is the physical (and original) row behind logical row i.
type indirect[T constraints.Float] struct {
	perm []int
}

func (e *indirect[T]) Pivot(col int, g Grid[T]) int {
	choice := selectRow(col, g, e.Row)
	if choice != col {
		e.perm[col], e.perm[choice] = e.perm[choice], e.perm[col]
	}

	return choice
}

func (e *indirect[T]) Row(i int) int      { return e.perm[i] }
func (e *indirect[T]) Origin(i int) int   { return e.perm[i] }
func (e *indirect[T]) Strategy() Strategy { return AbsMax }

func (e *indirect[T]) Clone() Engine[T] { return &indirect[T]{perm: e.Permutation()} }

func (e *indirect[T]) Permutation() []int {
	return append([]int(nil), e.perm...)
}

// swapping implements AbsMaxSwap: rows move in the buffer, origin remembers where they came from.
type swapping[T constraints.Float] struct {
	origin []int
}

func (e *swapping[T]) Pivot(col int, g Grid[T]) int {
	choice := selectRow(col, g, e.Row)
	if choice != col {
		g.SwapRawRows(col, choice)
		e.origin[col], e.origin[choice] = e.origin[choice], e.origin[col]
	}

	return choice
}

func (e *swapping[T]) Row(i int) int      { return i }
func (e *swapping[T]) Origin(i int) int   { return e.origin[i] }
func (e *swapping[T]) Strategy() Strategy { return AbsMaxSwap }

func (e *swapping[T]) Clone() Engine[T] { return &swapping[T]{origin: e.Permutation()} }

func (e *swapping[T]) Permutation() []int {
	return append([]int(nil), e.origin...)
}

// Parity returns +1 for an even permutation and -1 for an odd one.
// perm must be a bijection on [0, len(perm)); it is not modified.
// Complexity: O(n) time, O(n) space.
func Parity(perm []int) int {
	seen := make([]bool, len(perm))
	sign := 1
	var j, length int
	for i := range perm {
		if seen[i] {
			continue
		}
		// walk the cycle starting at i; a cycle of length L contributes L-1 transpositions
		length = 0
		for j = i; !seen[j]; j = perm[j] {
			seen[j] = true
			length++
		}
		if length%2 == 0 {
			sign = -sign
		}
	}

	return sign
}

// IsPermutation reports whether perm is a bijection on [0, len(perm)).
func IsPermutation(perm []int) bool {
	seen := make([]bool, len(perm))
	for _, p := range perm {
		if p < 0 || p >= len(perm) || seen[p] {
			return false
		}
		seen[p] = true
	}

	return true
}
