// SPDX-License-Identifier: MIT

// Package dim supplies the storage sizing strategy for tinylr matrices.
//
// A Dimension reports the number of rows (and columns) of a square matrix and is the
// single source of truth for buffer lengths. Two interchangeable strategies exist:
//
//   - Fixed[E]: the size is part of the type (E is a zero-size Extent such as N3).
//     Values carry no state, so a Fixed dimension costs nothing to copy or store.
//   - Dynamic: the size is supplied once, at construction, and never changes.
//
// Both strategies hand out buffers through the same helpers:
//
//	d := dim.Fixed[dim.N3]{}
//	a := dim.MatrixBuffer[float64](d) // len 9, zero-filled, row-major
//	v := dim.VectorBuffer[float64](d) // len 3, zero-filled
//	p := dim.Identity(d)              // [0 1 2]
//
// Matrices built on either strategy behave identically; only the way the size is
// known differs.
package dim
