// SPDX-License-Identifier: MIT

package lrtest

import (
	"fmt"
	"io"
	"math"
	"math/rand"

	"github.com/katalvlaran/tinylr/lr"
	"golang.org/x/exp/constraints"
)

// Expand rebuilds A = Pᵀ·L·U from the packed buffer of a Factored matrix.
//
// L[i][k] is At(i, k) for k < i and the (possibly inverted) diagonal for k == i;
// U[k][j] is At(k, j) for j > k and 1 on the diagonal. Row i of L·U is written to
// physical row Pivot(i) of the result, so the returned Unfactored matrix (same
// dimension and options as m) holds A in its original row order.
//
// Errors: lr.ErrNotFactored.
// Complexity: O(n³).
func Expand[T constraints.Float](m *lr.Matrix[T]) (*lr.Matrix[T], error) {
	if m.State() != lr.Factored {
		return nil, fmt.Errorf("Expand: %w", lr.ErrNotFactored)
	}
	out, err := lr.NewLike(m)
	if err != nil {
		return nil, fmt.Errorf("Expand: %w", err)
	}
	n := m.Size()

	var (
		i, j, k int
		acc     T
		l, u    T
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			acc = 0
			for k = 0; k <= i && k <= j; k++ {
				l = m.At(i, k)
				if k == i && m.InvertDiagonal() {
					l = 1 / l
				}
				u = 1
				if k != j {
					u = m.At(k, j)
				}
				acc += l * u
			}
			out.SetRaw(m.Pivot(i), j, acc)
		}
	}

	return out, nil
}

// Print writes the pivot order and the physical buffer, one row per line:
//
//	Pivots:  1  0  2
//	LR
//	  1  1  5
//	  ...
func Print[T constraints.Float](w io.Writer, m *lr.Matrix[T]) error {
	n := m.Size()
	if _, err := io.WriteString(w, "Pivots:"); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		if _, err := fmt.Fprintf(w, "  %d", m.Pivot(i)); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, "\nLR\n"); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if _, err := fmt.Fprintf(w, "  %g", m.RawAt(i, j)); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}

	return nil
}

// FillNormal overwrites the physical buffer with standard-normal samples from rng.
func FillNormal[T constraints.Float](m *lr.Matrix[T], rng *rand.Rand) {
	n := m.Size()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			m.SetRaw(i, j, T(rng.NormFloat64()))
		}
	}
}

// NormalVector returns n standard-normal samples from rng.
func NormalVector[T constraints.Float](n int, rng *rand.Rand) []T {
	v := make([]T, n)
	for i := range v {
		v[i] = T(rng.NormFloat64())
	}

	return v
}

// MaxAbsDiff returns max |a[i,j] − b[i,j]| over the physical buffers.
// It returns +Inf when the sizes differ and NaN if any difference is NaN.
func MaxAbsDiff[T constraints.Float](a, b *lr.Matrix[T]) float64 {
	if a.Size() != b.Size() {
		return math.Inf(1)
	}
	ra, rb := a.Raw(), b.Raw()

	return MaxAbsDiffVec(ra, rb)
}

// MaxAbsDiffVec returns max |a[i] − b[i]|, +Inf on length mismatch.
func MaxAbsDiffVec[T constraints.Float](a, b []T) float64 {
	if len(a) != len(b) {
		return math.Inf(1)
	}
	worst := 0.0
	var d float64
	for i := range a {
		d = math.Abs(float64(a[i]) - float64(b[i]))
		if math.IsNaN(d) {
			return d
		}
		if d > worst {
			worst = d
		}
	}

	return worst
}
