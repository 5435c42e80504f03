// SPDX-License-Identifier: MIT

// Package bench times tinylr factorizations on randomly filled matrices.
//
// Each iteration builds a fresh matrix of the configured size, fills it with standard
// normal samples from a seeded generator, and times Factorize (plus, optionally,
// SolveTo and MultiplyTo against a random vector). Results are averaged into
// nanoseconds per iteration. Sweep repeats a run over several sizes; WriteJSON and
// Plot export the results.
//
//	cfg := bench.DefaultConfig()
//	cfg.Size = 64
//	res, err := bench.Run(ctx, cfg)
package bench
