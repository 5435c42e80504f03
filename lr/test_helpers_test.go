// SPDX-License-Identifier: MIT
// Package lr_test contains shared fixtures for the lr tests.

package lr_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/tinylr/dim"
	"github.com/katalvlaran/tinylr/lr"
	"github.com/katalvlaran/tinylr/lrtest"
	"github.com/katalvlaran/tinylr/pivot"
	"github.com/stretchr/testify/require"
)

// strategies lists every pivot strategy.
var strategies = []pivot.Strategy{pivot.None, pivot.AbsMax, pivot.AbsMaxSwap}

// config is one point of the configuration grid (strategy × invert × dimension kind).
type config struct {
	strategy pivot.Strategy
	invert   bool
	fixed    bool
}

func (c config) String() string {
	kind := "dynamic"
	if c.fixed {
		kind = "fixed"
	}

	return fmt.Sprintf("%v/invert=%t/%s", c.strategy, c.invert, kind)
}

func (c config) options() []lr.Option {
	opts := []lr.Option{lr.WithPivot(c.strategy), lr.WithoutInvertDiagonal()}
	if c.invert {
		opts[1] = lr.WithInvertDiagonal()
	}

	return opts
}

// dimension returns a size-8 dimension of the configured kind.
func (c config) dimension() dim.Dimension {
	if c.fixed {
		return dim.Fixed[dim.N8]{}
	}

	return dim.NewDynamic(8)
}

// allConfigs enumerates the full grid.
func allConfigs() []config {
	var out []config
	for _, s := range strategies {
		for _, inv := range []bool{true, false} {
			for _, fixed := range []bool{true, false} {
				out = append(out, config{strategy: s, invert: inv, fixed: fixed})
			}
		}
	}

	return out
}

// mustNew builds a matrix or fails the test.
func mustNew(t testing.TB, d dim.Dimension, opts ...lr.Option) *lr.Matrix[float64] {
	t.Helper()
	m, err := lr.New[float64](d, opts...)
	require.NoError(t, err)

	return m
}

// mustRows builds a matrix from literal rows or fails the test.
func mustRows(t testing.TB, rows [][]float64, opts ...lr.Option) *lr.Matrix[float64] {
	t.Helper()
	m, err := lr.NewFromRows(rows, opts...)
	require.NoError(t, err)

	return m
}

// randomFill fills m with standard-normal values; when dominant is set, n is added to
// the diagonal so that unpivoted elimination stays well conditioned.
func randomFill(m *lr.Matrix[float64], seed int64, dominant bool) {
	lrtest.FillNormal(m, rand.New(rand.NewSource(seed)))
	if dominant {
		n := m.Size()
		for i := 0; i < n; i++ {
			m.SetRaw(i, i, m.RawAt(i, i)+float64(n))
		}
	}
}

// example3x3 is the walkthrough matrix from the demo driver.
func example3x3() [][]float64 {
	return [][]float64{
		{0, 1, 0},
		{1, 1, 5},
		{0, 0, -1},
	}
}
