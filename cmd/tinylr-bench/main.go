// SPDX-License-Identifier: MIT

// Command tinylr-bench times factorization of random matrices and optionally writes
// the results as JSON and a PNG/SVG plot.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"

	logging "github.com/ipfs/go-log/v2"
	"github.com/katalvlaran/tinylr/bench"
)

var log = logging.Logger("tinylr-bench")

func main() {
	cfg := bench.DefaultConfig()
	flag.IntVar(&cfg.Size, "size", cfg.Size, "matrix size n")
	flag.BoolVar(&cfg.Fixed, "fixed", cfg.Fixed, "use compile-time extents when one matches the size")
	flag.IntVar(&cfg.Iterations, "iterations", cfg.Iterations, "iterations per size")
	flag.Var(&cfg.Strategy, "pivot", "pivot strategy (none, absmax, absmax-swap)")
	flag.BoolVar(&cfg.InvertDiagonal, "invert", cfg.InvertDiagonal, "store reciprocals on the diagonal of L")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed")
	flag.BoolVar(&cfg.Solve, "solve", cfg.Solve, "also time SolveTo")
	flag.BoolVar(&cfg.Multiply, "multiply", cfg.Multiply, "also time MultiplyTo")
	var (
		sizes    = flag.String("sizes", "", "comma-separated sizes to sweep (overrides -size)")
		output   = flag.String("output", "", "write results as JSON to this file")
		plotPath = flag.String("plot", "", "write a plot of the results to this file")
		logLevel = flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	)
	flag.Parse()

	level, err := logging.LevelFromString(*logLevel)
	if err != nil {
		level = logging.LevelInfo
	}
	logging.SetAllLoggers(level)

	ns := []int{cfg.Size}
	if *sizes != "" {
		if ns, err = parseSizes(*sizes); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(2)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results, err := bench.Sweep(ctx, cfg, ns)
	if err != nil {
		log.Errorf("benchmark failed: %v", err)
		os.Exit(1)
	}

	fmt.Printf("%6s  %-12s  %-12s  %14s  %14s  %14s\n", "n", "dimension", "pivot", "factorize ns", "solve ns", "multiply ns")
	for _, r := range results {
		fmt.Printf("%6d  %-12s  %-12s  %14d  %14d  %14d\n", r.Config.Size, r.Dimension, r.Strategy,
			r.Factorize.Nanoseconds(), r.Solve.Nanoseconds(), r.Multiply.Nanoseconds())
	}

	if *output != "" {
		if err := writeJSON(*output, results); err != nil {
			log.Errorf("%v", err)
			os.Exit(1)
		}
		log.Infof("results written to %s", *output)
	}
	if *plotPath != "" {
		if err := bench.Plot(results, *plotPath); err != nil {
			log.Errorf("%v", err)
			os.Exit(1)
		}
		log.Infof("plot written to %s", *plotPath)
	}
}

func parseSizes(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("bad size %q: %w", p, err)
		}
		out = append(out, n)
	}

	return out, nil
}

func writeJSON(path string, results []bench.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := bench.WriteJSON(f, results); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
