// SPDX-License-Identifier: MIT

package bench

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	logging "github.com/ipfs/go-log/v2"
	"github.com/katalvlaran/tinylr/dim"
	"github.com/katalvlaran/tinylr/lr"
	"github.com/katalvlaran/tinylr/lrtest"
)

var log = logging.Logger("bench")

// Result holds per-iteration averages of one run.
type Result struct {
	Config    Config        `json:"config"`
	Strategy  string        `json:"strategy"`
	Dimension string        `json:"dimension"`
	Factorize time.Duration `json:"factorize_ns"`
	Solve     time.Duration `json:"solve_ns"`
	Multiply  time.Duration `json:"multiply_ns"`
	Checksum  float64       `json:"checksum"` // keeps the measured work observable
}

// Run executes cfg.Iterations timed iterations. It checks ctx between iterations and
// returns ctx.Err() when cancelled.
func Run(ctx context.Context, cfg Config) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}
	d := Dimension(cfg.Size, cfg.Fixed)
	opts := []lr.Option{lr.WithPivot(cfg.Strategy), lr.WithoutInvertDiagonal()}
	if cfg.InvertDiagonal {
		opts[1] = lr.WithInvertDiagonal()
	}

	log.Debugf("run: size=%d dim=%v strategy=%v iterations=%d", cfg.Size, d, cfg.Strategy, cfg.Iterations)

	rng := rand.New(rand.NewSource(cfg.Seed))
	var (
		factorize, solve, multiply time.Duration
		sum                        float64
		start                      time.Time
	)
	for it := 0; it < cfg.Iterations; it++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		m, err := lr.New[float64](d, opts...)
		if err != nil {
			return Result{}, fmt.Errorf("bench: %w", err)
		}
		lrtest.FillNormal(m, rng)

		start = time.Now()
		m.Factorize()
		factorize += time.Since(start)

		v := lrtest.NormalVector[float64](cfg.Size, rng)
		v2 := dim.VectorBuffer[float64](d)
		v3 := dim.VectorBuffer[float64](d)
		if cfg.Multiply {
			start = time.Now()
			m.MultiplyTo(v2, v)
			multiply += time.Since(start)
		}
		if cfg.Solve {
			start = time.Now()
			m.SolveTo(v3, v)
			solve += time.Since(start)
		}

		for i := range v {
			sum += v[i] + v2[i] + v3[i]
		}
		for _, x := range m.Raw() {
			sum += x
		}
	}

	iters := time.Duration(cfg.Iterations)
	res := Result{
		Config:    cfg,
		Strategy:  cfg.Strategy.String(),
		Dimension: fmt.Sprint(d),
		Factorize: factorize / iters,
		Solve:     solve / iters,
		Multiply:  multiply / iters,
		Checksum:  sum,
	}
	log.Infof("size=%d %s factorize=%dns solve=%dns multiply=%dns",
		cfg.Size, res.Strategy, res.Factorize.Nanoseconds(), res.Solve.Nanoseconds(), res.Multiply.Nanoseconds())

	return res, nil
}

// Sweep runs cfg once per size, in order, stopping at the first error.
func Sweep(ctx context.Context, cfg Config, sizes []int) ([]Result, error) {
	out := make([]Result, 0, len(sizes))
	for _, n := range sizes {
		c := cfg
		c.Size = n
		r, err := Run(ctx, c)
		if err != nil {
			return out, fmt.Errorf("size %d: %w", n, err)
		}
		out = append(out, r)
	}

	return out, nil
}

// Dimension picks the storage strategy for size n. With fixed set and a predefined
// extent of that size a dim.Fixed is returned; otherwise a dim.Dynamic.
func Dimension(n int, fixed bool) dim.Dimension {
	if fixed {
		switch n {
		case 1:
			return dim.Fixed[dim.N1]{}
		case 2:
			return dim.Fixed[dim.N2]{}
		case 3:
			return dim.Fixed[dim.N3]{}
		case 4:
			return dim.Fixed[dim.N4]{}
		case 5:
			return dim.Fixed[dim.N5]{}
		case 6:
			return dim.Fixed[dim.N6]{}
		case 7:
			return dim.Fixed[dim.N7]{}
		case 8:
			return dim.Fixed[dim.N8]{}
		case 16:
			return dim.Fixed[dim.N16]{}
		case 32:
			return dim.Fixed[dim.N32]{}
		case 64:
			return dim.Fixed[dim.N64]{}
		}
		log.Warnf("no fixed extent for size %d; falling back to dynamic storage", n)
	}

	return dim.NewDynamic(n)
}
