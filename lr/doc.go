// SPDX-License-Identifier: MIT

// Package lr computes an in-place LU ("LR") decomposition of a square matrix and reuses
// the packed factors to solve linear systems, multiply and take determinants.
//
// What & Why:
//
//	A Matrix owns one row-major buffer. Callers fill it with A, call Factorize once, and
//	the same memory then holds L and U interleaved: L strictly below the diagonal, U
//	strictly above it (U has an implicit unit diagonal), and the L diagonal on the
//	diagonal itself, stored as its reciprocal when the invert-diagonal option is on so
//	later solves multiply instead of divide. Any number of Solve/Multiply calls can
//	follow a single Factorize.
//
// Configuration (construction time only):
//
//   - element type T: float32 or float64 (constraints.Float);
//   - dimension: dim.Fixed[E] or dim.Dynamic;
//   - pivot strategy: pivot.None, pivot.AbsMax (indirection), pivot.AbsMaxSwap (physical);
//   - invert diagonal: WithInvertDiagonal / WithoutInvertDiagonal.
//
// Lifecycle:
//
//	Unfactored --Factorize--> Factored
//
//	In Unfactored, Set/At/RawAt address A. In Factored, At addresses the packed factors
//	through the pivot permutation; RawAt exposes physical storage, which under AbsMax is
//	not in logical row order.
//
// Numeric policy:
//
//	Zero or tiny pivots are not detected. They yield ±Inf/NaN that propagate through later
//	steps and solves. Exactly-zero entries are skipped during scaling and elimination, so
//	regions that start at zero and are never touched by a non-zero multiplier stay zero.
//	Use CheckFinite or WithFiniteCheck to surface ErrNonFinite.
//
// Hot path vs checked API:
//
//	At/Set/RawAt/SetRaw, Factorize, SolveTo and MultiplyTo do no bounds or state checks.
//	Solve, Multiply and the determinant methods validate state and lengths and return
//	sentinel errors (match with errors.Is).
//
// Complexity:
//
//	Factorize O(n³); Solve/Multiply O(n²); Determinant O(n).
package lr
