//go:build gnuplot

package main

import (
	"github.com/Arafatk/glot"
	"github.com/pkg/errors"
)

// Preview renders the rank-frequency curve of freqs through gnuplot into
// path, on log-log axes. glot looks gnuplot up when the package loads, so
// this file only builds with -tags gnuplot.
func Preview(
	title string,
	freqs Frequencies,
	path string,
) (
	err error,
) {
	dimensions := 2
	persist := false
	debug := false
	plot, err := glot.NewPlot(dimensions, persist, debug)
	if err != nil {
		return errors.Wrap(err, "gnuplot")
	}
	defer func() {
		if cerr := plot.Close(); err == nil && cerr != nil {
			err = errors.Wrap(cerr, "gnuplot close")
		}
	}()

	rank := make([]float64, len(freqs))
	count := make([]float64, len(freqs))
	for i, fr := range freqs {
		rank[i] = float64(i + 1)
		count[i] = float64(fr.Count)
	}

	if err := plot.SetTitle(title); err != nil {
		return errors.Wrap(err, "gnuplot title")
	}
	if err := plot.SetXLabel("Rank"); err != nil {
		return errors.Wrap(err, "gnuplot xlabel")
	}
	if err := plot.SetYLabel("Frequency"); err != nil {
		return errors.Wrap(err, "gnuplot ylabel")
	}
	if err := plot.Cmd("set logscale xy"); err != nil {
		return errors.Wrap(err, "gnuplot logscale")
	}

	if err := plot.AddPointGroup(title, "points", [][]float64{rank, count}); err != nil {
		return errors.Wrap(err, "gnuplot points")
	}

	if err := plot.SavePlot(path); err != nil {
		return errors.Wrapf(err, "save %s", path)
	}
	return nil
}
