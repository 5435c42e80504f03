// SPDX-License-Identifier: MIT

package dim

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

const panicNegativeSize = "dim: NewDynamic: size must be non-negative"

// Dimension reports the active matrix size n (an n×n matrix, vectors of length n).
// Implementations must return the same value for their whole lifetime.
type Dimension interface {
	Size() int
}

// Extent is a zero-size marker type that bakes a size into a Fixed dimension.
// Declare your own when the predefined extents do not cover a size:
//
//	type N5 struct{}
//	func (N5) Size() int { return 5 }
type Extent interface {
	Size() int
}

// Predefined extents.
type (
	N1  struct{}
	N2  struct{}
	N3  struct{}
	N4  struct{}
	N5  struct{}
	N6  struct{}
	N7  struct{}
	N8  struct{}
	N16 struct{}
	N32 struct{}
	N64 struct{}
)

func (N1) Size() int  { return 1 }
func (N2) Size() int  { return 2 }
func (N3) Size() int  { return 3 }
func (N4) Size() int  { return 4 }
func (N5) Size() int  { return 5 }
func (N6) Size() int  { return 6 }
func (N7) Size() int  { return 7 }
func (N8) Size() int  { return 8 }
func (N16) Size() int { return 16 }
func (N32) Size() int { return 32 }
func (N64) Size() int { return 64 }

// Fixed is a Dimension whose size is determined by its type parameter.
// The zero value is ready to use.
type Fixed[E Extent] struct{}

// Size returns E's size.
// Complexity: O(1).
func (Fixed[E]) Size() int {
	var e E

	return e.Size()
}

// String implements fmt.Stringer.
func (f Fixed[E]) String() string { return fmt.Sprintf("fixed(%d)", f.Size()) }

// Dynamic is a Dimension whose size is chosen at run time.
type Dynamic struct {
	n int // immutable after NewDynamic
}

// NewDynamic returns a Dynamic dimension of size n.
// It panics when n < 0: a negative size is a programmer error, not an input error.
func NewDynamic(n int) Dynamic {
	if n < 0 {
		panic(panicNegativeSize)
	}

	return Dynamic{n: n}
}

// Size returns the size supplied to NewDynamic.
// Complexity: O(1).
func (d Dynamic) Size() int { return d.n }

// String implements fmt.Stringer.
func (d Dynamic) String() string { return fmt.Sprintf("dynamic(%d)", d.n) }

// MatrixBuffer allocates zero-filled row-major storage for an n×n matrix (len n*n).
// Complexity: O(n²) zeroing by the runtime.
func MatrixBuffer[T constraints.Float](d Dimension) []T {
	n := d.Size()

	return make([]T, n*n)
}

// VectorBuffer allocates zero-filled storage for a vector of length n.
// Complexity: O(n).
func VectorBuffer[T constraints.Float](d Dimension) []T {
	return make([]T, d.Size())
}

// Identity returns the identity permutation [0, 1, ..., n-1].
// Complexity: O(n).
func Identity(d Dimension) []int {
	p := make([]int, d.Size())
	for i := range p {
		p[i] = i
	}

	return p
}

// Equal reports whether a and b describe the same size, regardless of strategy.
func Equal(a, b Dimension) bool {
	if a == nil || b == nil {
		return a == b
	}

	return a.Size() == b.Size()
}
