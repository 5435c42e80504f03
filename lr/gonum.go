// SPDX-License-Identifier: MIT

package lr

import (
	"fmt"

	"github.com/katalvlaran/tinylr/dim"
	"golang.org/x/exp/constraints"
	"gonum.org/v1/gonum/mat"
)

// FromGonum copies a square gonum matrix into a new Unfactored Matrix.
// Errors: ErrNonSquare for non-square input, plus New's errors.
func FromGonum(a mat.Matrix, opts ...Option) (*Matrix[float64], error) {
	r, c := a.Dims()
	if r != c {
		return nil, lrErrorf(opFromGonum, fmt.Errorf("%dx%d: %w", r, c, ErrNonSquare))
	}
	m, err := New[float64](dim.NewDynamic(r), opts...)
	if err != nil {
		return nil, err
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			m.data[i*r+j] = a.At(i, j)
		}
	}

	return m, nil
}

// ToGonum returns a copy of the logical (pivoted) view of m as a *mat.Dense.
// Before Factorize this is A; afterwards it is the packed L/U buffer in pivot order.
// An empty matrix returns nil because gonum has no 0×0 Dense.
func ToGonum[T constraints.Float](m *Matrix[T]) *mat.Dense {
	if m.n == 0 {
		return nil
	}
	out := mat.NewDense(m.n, m.n, nil)
	for i := 0; i < m.n; i++ {
		for j := 0; j < m.n; j++ {
			out.Set(i, j, float64(m.At(i, j)))
		}
	}

	return out
}
