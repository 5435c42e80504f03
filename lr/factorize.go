// SPDX-License-Identifier: MIT

package lr

// Factorize runs the in-place LU decomposition with the configured pivot strategy.
//
// For step = 0..n-1:
//  1. the pivot engine selects (and records, or physically applies) the pivot row;
//  2. invlead = 1/At(step, step); entries right of the diagonal in the pivot row are scaled
//     by invlead, and the diagonal becomes invlead when the diagonal is inverted;
//  3. every row below subtracts lead·(pivot row) over columns step+1..n-1, where lead is the
//     row's entry in column step. Because the pivot row is pre-scaled no division is needed.
//
// Afterwards At(i, j) holds L for j ≤ i (diagonal possibly inverted) and unit-diagonal U
// for j > i. Zero entries are skipped in step 2 and zero multipliers skip step 3.
//
// Factorize does not check the lifecycle: a second call re-factorizes the packed data,
// which is meaningless. Zero pivots are not detected.
//
// Complexity: O(n³) time, no allocations.
func (m *Matrix[T]) Factorize() {
	for step := 0; step < m.n; step++ {
		m.eliminate(step)
	}
	m.state = Factored
}

// eliminate performs one step of the factorization.
func (m *Matrix[T]) eliminate(step int) {
	n := m.n
	m.piv.Pivot(step, m)

	prow := m.row(step)
	invlead := 1 / prow[step]
	for col := step + 1; col < n; col++ {
		if prow[col] != 0 {
			prow[col] *= invlead
		}
	}
	if m.opts.invert {
		prow[step] = invlead
	}

	var (
		r, col int
		row    []T
		lead   T
	)
	for r = step + 1; r < n; r++ {
		row = m.row(r)
		lead = row[step]
		if lead == 0 {
			continue
		}
		for col = step + 1; col < n; col++ {
			if prow[col] != 0 {
				row[col] -= lead * prow[col]
			}
		}
	}
}

// row returns the storage backing logical row i.
func (m *Matrix[T]) row(i int) []T {
	off := m.piv.Row(i) * m.n

	return m.data[off : off+m.n]
}

// diag returns L[i][i] regardless of the invert-diagonal setting.
func (m *Matrix[T]) diag(i int) T {
	if m.opts.invert {
		return 1 / m.At(i, i)
	}

	return m.At(i, i)
}

// invDiag returns 1/L[i][i] regardless of the invert-diagonal setting.
func (m *Matrix[T]) invDiag(i int) T {
	if m.opts.invert {
		return m.At(i, i)
	}

	return 1 / m.At(i, i)
}
