// SPDX-License-Identifier: MIT

// Command tinylr factorizes a 3×3 example system with the strategy chosen by -pivot,
// prints the pivots and the packed LU, and checks the round trips
// A·(A⁻¹·b) = b and A⁻¹·(A·b) = b for b = [1 2 16].
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	logging "github.com/ipfs/go-log/v2"
	"github.com/katalvlaran/tinylr/lr"
	"github.com/katalvlaran/tinylr/lrtest"
	"github.com/katalvlaran/tinylr/pivot"
)

var log = logging.Logger("tinylr")

func main() {
	var (
		strategy = pivot.AbsMax
		invert   = flag.Bool("invert", true, "store reciprocals on the diagonal of L")
		logLevel = flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	)
	flag.Var(&strategy, "pivot", "pivot strategy (none, absmax, absmax-swap)")
	flag.Parse()

	level, err := logging.LevelFromString(*logLevel)
	if err != nil {
		level = logging.LevelInfo
	}
	logging.SetAllLoggers(level)

	if err := run(os.Stdout, strategy, *invert); err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
}

func run(w io.Writer, s pivot.Strategy, invert bool) error {
	opts := []lr.Option{lr.WithPivot(s), lr.WithoutInvertDiagonal()}
	if invert {
		opts[1] = lr.WithInvertDiagonal()
	}
	m, err := lr.NewFromRows([][]float64{
		{0, 1, 0},
		{1, 1, 5},
		{0, 0, -1},
	}, opts...)
	if err != nil {
		return err
	}
	fmt.Fprint(w, "A\n", m)

	m.Factorize()
	if err := m.CheckFinite(); err != nil {
		log.Warnf("%v: %v", s, err)
	}
	if err := lrtest.Print(w, m); err != nil {
		return err
	}

	back, err := lrtest.Expand(m)
	if err != nil {
		return err
	}
	fmt.Fprint(w, "L·U\n", back)

	det, err := m.SignedDeterminant()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "det(A) = %g\n", det)

	b := []float64{1, 2, 16}
	x, err := m.Solve(b)
	if err != nil {
		return err
	}
	ax, err := m.Multiply(x)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "b = %v\nA⁻¹·b = %v\nA·(A⁻¹·b) = %v\n", b, x, ax)

	y, err := m.Multiply(b)
	if err != nil {
		return err
	}
	z, err := m.Solve(y)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "A·b = %v\nA⁻¹·(A·b) = %v\n", y, z)

	log.Infof("%v: residuals %g, %g", s, lrtest.MaxAbsDiffVec(ax, b), lrtest.MaxAbsDiffVec(z, b))

	return nil
}
