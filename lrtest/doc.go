// SPDX-License-Identifier: MIT

// Package lrtest provides verification helpers for tinylr matrices: rebuilding the dense
// product of the packed factors, printing the packed buffer, and random fills.
//
// It is meant for tests, demos and benchmarks; production code never needs it.
package lrtest
