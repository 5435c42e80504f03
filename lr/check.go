// SPDX-License-Identifier: MIT

package lr

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// CheckFinite scans the buffer and returns ErrNonFinite (with the first logical
// position) when any element is NaN or ±Inf. Valid in both lifecycle states.
// Complexity: O(n²).
func (m *Matrix[T]) CheckFinite() error {
	var v float64
	for i := 0; i < m.n; i++ {
		for j := 0; j < m.n; j++ {
			v = float64(m.At(i, j))
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return lrErrorf(opCheckFinite, fmt.Errorf("at (%d,%d): %w", i, j, ErrNonFinite))
			}
		}
	}

	return nil
}

// checkFinite returns ErrNonFinite for the first NaN/Inf entry in v.
func checkFinite[T constraints.Float](v []T) error {
	var f float64
	for i := range v {
		f = float64(v[i])
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Errorf("element %d: %w", i, ErrNonFinite)
		}
	}

	return nil
}
