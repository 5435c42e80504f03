// SPDX-License-Identifier: MIT

package lr

import "github.com/katalvlaran/tinylr/pivot"

// Determinant returns the product of the pivots stored on the diagonal.
//
// The sign of the row permutation is NOT applied, so under pivoting the result may
// differ from det(A) by a factor of -1. Use SignedDeterminant for det(A).
// An empty matrix yields 1.
//
// Errors: ErrNotFactored.
func (m *Matrix[T]) Determinant() (T, error) {
	if m.state != Factored {
		return 0, lrErrorf(opDeterminant, ErrNotFactored)
	}
	p := m.diagProduct()
	if m.opts.invert {
		return 1 / p, nil
	}

	return p, nil
}

// InverseDeterminant returns 1/Determinant without dividing when the diagonal
// already holds reciprocals.
//
// Errors: ErrNotFactored.
func (m *Matrix[T]) InverseDeterminant() (T, error) {
	if m.state != Factored {
		return 0, lrErrorf(opInverseDeterminant, ErrNotFactored)
	}
	p := m.diagProduct()
	if m.opts.invert {
		return p, nil
	}

	return 1 / p, nil
}

// SignedDeterminant returns det(A): Determinant times the parity of the row permutation.
//
// Errors: ErrNotFactored.
func (m *Matrix[T]) SignedDeterminant() (T, error) {
	if m.state != Factored {
		return 0, lrErrorf(opSignedDeterminant, ErrNotFactored)
	}
	d, _ := m.Determinant()
	if pivot.Parity(m.piv.Permutation()) < 0 {
		return -d, nil
	}

	return d, nil
}

// diagProduct multiplies the stored diagonal entries in logical order.
func (m *Matrix[T]) diagProduct() T {
	var p T = 1
	for i := 0; i < m.n; i++ {
		p *= m.At(i, i)
	}

	return p
}
