// SPDX-License-Identifier: MIT

package lr

import (
	"fmt"

	"github.com/katalvlaran/tinylr/dim"
)

// SolveTo solves A·x = b with the stored factors and writes x into dst.
// dst and b may alias. Both must have length n and the matrix must be Factored;
// neither is checked. Each call uses its own scratch vector.
//
// Implementation:
//   - Stage 1: y = P·b (gather b through the pivot origins).
//   - Stage 2: forward substitution L·y' = y (multiplying by the inverted diagonal).
//   - Stage 3: backward substitution U·x = y' (U has unit diagonal).
//
// Complexity: O(n²) time, O(n) scratch.
func (m *Matrix[T]) SolveTo(dst, b []T) {
	n := m.n
	tmp := dim.VectorBuffer[T](m.d)
	for i := 0; i < n; i++ {
		tmp[i] = b[m.piv.Origin(i)]
	}

	var i, j int
	for i = 0; i < n; i++ {
		tmp[i] *= m.invDiag(i)
		for j = i + 1; j < n; j++ {
			tmp[j] -= tmp[i] * m.At(j, i)
		}
	}

	for i = n - 1; i > 0; i-- {
		for j = 0; j < i; j++ {
			tmp[j] -= tmp[i] * m.At(j, i)
		}
	}

	copy(dst, tmp)
}

// MultiplyTo computes y = A·x from the packed factors (A is never re-expanded) and
// writes it into dst. dst and x may alias. Lengths and lifecycle are not checked.
//
// Implementation:
//   - Stage 1: t = U·x (unit diagonal, strictly-upper entries).
//   - Stage 2: t = L·t bottom-up in place (diagonal honoring the invert flag).
//   - Stage 3: y[origin(i)] = t[i], undoing the row permutation.
//
// Complexity: O(n²) time, O(n) scratch.
func (m *Matrix[T]) MultiplyTo(dst, x []T) {
	n := m.n
	tmp := dim.VectorBuffer[T](m.d)

	var i, j int
	var sum T
	for i = 0; i < n; i++ {
		sum = x[i]
		for j = i + 1; j < n; j++ {
			sum += m.At(i, j) * x[j]
		}
		tmp[i] = sum
	}

	for i = n - 1; i >= 0; i-- {
		sum = m.diag(i) * tmp[i]
		for j = 0; j < i; j++ {
			sum += m.At(i, j) * tmp[j]
		}
		tmp[i] = sum
	}

	for i = 0; i < n; i++ {
		dst[m.piv.Origin(i)] = tmp[i]
	}
}

// Solve returns x with A·x = b.
//
// Errors:
//   - ErrNotFactored when Factorize has not run.
//   - ErrDimensionMismatch when len(b) != n.
//   - ErrNonFinite when WithFiniteCheck is set and x holds NaN/Inf.
func (m *Matrix[T]) Solve(b []T) ([]T, error) {
	if err := m.requireVector(b); err != nil {
		return nil, lrErrorf(opSolve, err)
	}
	x := dim.VectorBuffer[T](m.d)
	m.SolveTo(x, b)
	if m.opts.finiteCheck {
		if err := checkFinite(x); err != nil {
			return nil, lrErrorf(opSolve, err)
		}
	}

	return x, nil
}

// Multiply returns A·x computed from the packed factors.
// Errors mirror Solve.
func (m *Matrix[T]) Multiply(x []T) ([]T, error) {
	if err := m.requireVector(x); err != nil {
		return nil, lrErrorf(opMultiply, err)
	}
	y := dim.VectorBuffer[T](m.d)
	m.MultiplyTo(y, x)
	if m.opts.finiteCheck {
		if err := checkFinite(y); err != nil {
			return nil, lrErrorf(opMultiply, err)
		}
	}

	return y, nil
}

// requireVector validates lifecycle then length.
func (m *Matrix[T]) requireVector(v []T) error {
	if m.state != Factored {
		return ErrNotFactored
	}
	if len(v) != m.n {
		return fmt.Errorf("len %d, want %d: %w", len(v), m.n, ErrDimensionMismatch)
	}

	return nil
}
