// SPDX-License-Identifier: MIT

// Package tinylr is a small, allocation-free LU ("LR") decomposition library for dense
// square matrices, with selectable storage and pivoting.
//
// The work is split into subpackages:
//
//	dim/     - dimension strategies: compile-time extents (Fixed[N8]) or runtime sizes (Dynamic)
//	pivot/   - pivot engines: none, absmax by row indirection, absmax by physical row swap
//	lr/      - the Matrix: in-place Factorize, Solve/Multiply, determinants, gonum interop
//	lrtest/  - verification helpers: Expand (rebuild A from L·U), Print, random fills
//	bench/   - timing harness with JSON and plot export
//
// Commands:
//
//	cmd/tinylr        - factorizes a 3×3 example and checks the solve/multiply round trips
//	cmd/tinylr-bench  - times factorization over a sweep of sizes
//
// Quick start:
//
//	m, _ := lr.NewFromRows([][]float64{{0, 1, 0}, {1, 1, 5}, {0, 0, -1}})
//	m.Factorize()
//	x, _ := m.Solve([]float64{1, 2, 16}) // x = [81 1 -16]
package tinylr
