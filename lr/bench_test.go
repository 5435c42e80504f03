// SPDX-License-Identifier: MIT

// Package lr_test provides benchmarks for factorization and the substitution kernels,
// using deterministic random fill.
package lr_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/tinylr/dim"
	"github.com/katalvlaran/tinylr/lr"
	"github.com/katalvlaran/tinylr/lrtest"
	"github.com/katalvlaran/tinylr/pivot"
)

// benchSizes are the matrix sizes to benchmark.
var benchSizes = []int{8, 64, 256}

// sinks to defeat dead-code elimination
var (
	sinkF float64
	sinkV []float64
)

func BenchmarkFactorize(b *testing.B) {
	b.ReportAllocs()
	for _, s := range strategies {
		for _, n := range benchSizes {
			b.Run(fmt.Sprintf("%v/n=%d", s, n), func(b *testing.B) {
				src := mustNew(b, dim.NewDynamic(n), lr.WithPivot(s))
				randomFill(src, 1337, true)
				m := mustNew(b, dim.NewDynamic(n), lr.WithPivot(s))
				var err error
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					b.StopTimer()
					if m, err = lr.NewLike(src); err != nil {
						b.Fatal(err)
					}
					_ = m.Load(src.Raw())
					b.StartTimer()
					m.Factorize()
				}
				sinkF = m.RawAt(n-1, n-1)
			})
		}
	}
}

// BenchmarkFactorize_Fixed compares the fixed strategy against BenchmarkFactorize.
func BenchmarkFactorize_Fixed(b *testing.B) {
	b.ReportAllocs()
	src := mustNew(b, dim.Fixed[dim.N64]{})
	randomFill(src, 1337, true)
	var (
		m   *lr.Matrix[float64]
		err error
	)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		if m, err = lr.NewLike(src); err != nil {
			b.Fatal(err)
		}
		_ = m.Load(src.Raw())
		b.StartTimer()
		m.Factorize()
	}
	sinkF = m.RawAt(63, 63)
}

func BenchmarkSolveTo(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			m := mustNew(b, dim.NewDynamic(n), lr.WithPivot(pivot.AbsMax))
			randomFill(m, 4242, false)
			m.Factorize()
			rhs := lrtest.NormalVector[float64](n, rand.New(rand.NewSource(1)))
			x := make([]float64, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m.SolveTo(x, rhs)
			}
			sinkV = x
		})
	}
}

func BenchmarkMultiplyTo(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			m := mustNew(b, dim.NewDynamic(n), lr.WithPivot(pivot.AbsMax))
			randomFill(m, 11, false)
			m.Factorize()
			x := lrtest.NormalVector[float64](n, rand.New(rand.NewSource(2)))
			y := make([]float64, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m.MultiplyTo(y, x)
			}
			sinkV = y
		})
	}
}
