// SPDX-License-Identifier: MIT

// Package pivot selects and records row pivots for in-place LU factorization.
//
// Three strategies are available and fixed at construction:
//
//   - None:       no pivoting; logical row i is physical row i.
//   - AbsMax:     partial pivoting by largest magnitude. Rows are exchanged through an
//     indirection table; the buffer is never reordered.
//   - AbsMaxSwap: same selection rule, but the two rows are physically exchanged in the
//     buffer. The engine still remembers which original row ended up where.
//
// Selection rule (AbsMax, AbsMaxSwap): for column col, scan logical rows col..n-1 and pick
// the first row with the strictly largest |value|. The current row wins ties, so an
// all-equal or all-zero column causes no exchange. A zero pivot column is not reported;
// the factorization simply produces non-finite values.
//
// Complexity: Pivot is O(n − col) comparisons plus O(n) for a physical row swap.
package pivot
