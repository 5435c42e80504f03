// SPDX-License-Identifier: MIT

package bench

import (
	"encoding/json"
	"fmt"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// WriteJSON encodes results as an indented JSON array.
func WriteJSON(w io.Writer, results []Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(results)
}

// Plot renders ns/iteration against matrix size, one line per measured operation,
// and saves it to path. The format follows the extension (.png, .svg, .pdf, ...).
// Operations that were never timed (all zero) are omitted.
func Plot(results []Result, path string) error {
	p := plot.New()
	p.Title.Text = "tinylr"
	p.X.Label.Text = "n"
	p.Y.Label.Text = "ns/iteration"

	series := []struct {
		name string
		get  func(Result) float64
	}{
		{"factorize", func(r Result) float64 { return float64(r.Factorize.Nanoseconds()) }},
		{"solve", func(r Result) float64 { return float64(r.Solve.Nanoseconds()) }},
		{"multiply", func(r Result) float64 { return float64(r.Multiply.Nanoseconds()) }},
	}

	var args []interface{}
	for _, s := range series {
		pts := make(plotter.XYs, len(results))
		timed := false
		for i, r := range results {
			pts[i].X = float64(r.Config.Size)
			pts[i].Y = s.get(r)
			timed = timed || pts[i].Y != 0
		}
		if timed {
			args = append(args, s.name, pts)
		}
	}
	if len(args) > 0 {
		if err := plotutil.AddLinePoints(p, args...); err != nil {
			return fmt.Errorf("bench: plot: %w", err)
		}
	}

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("bench: save %s: %w", path, err)
	}

	return nil
}
