package main

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"sort"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Frequency is how often one exact value occurs in a series.
type Frequency struct {
	Value float64
	Count int
}

// Frequencies are sorted by descending Count.
type Frequencies []Frequency

// Count tallies exact values of s and sorts them by descending count.
// Values with equal counts keep the order they first appeared in.
func Count(
	s Series,
) (
	Frequencies,
) {
	index := map[float64]int{}
	var freqs Frequencies
	for _, v := range s {
		if i, ok := index[v]; ok {
			freqs[i].Count++
			continue
		}
		index[v] = len(freqs)
		freqs = append(freqs, Frequency{Value: v, Count: 1})
	}

	sort.SliceStable(freqs, func(i, j int) bool {
		return freqs[i].Count > freqs[j].Count
	})
	return freqs
}

// Counts returns the counts in order.
func (f Frequencies) Counts() []int {
	counts := make([]int, len(f))
	for i, fr := range f {
		counts[i] = fr.Count
	}
	return counts
}

// Values returns the distinct values in order.
func (f Frequencies) Values() []float64 {
	values := make([]float64, len(f))
	for i, fr := range f {
		values[i] = fr.Value
	}
	return values
}

// Expand rebuilds a series holding every value Count times.
func (f Frequencies) Expand() Series {
	var s Series
	for _, fr := range f {
		for i := 0; i < fr.Count; i++ {
			s = append(s, fr.Value)
		}
	}
	return s
}

// Head returns at most n leading counts.
func (f Frequencies) Head(n int) []int {
	counts := f.Counts()
	if n < len(counts) {
		counts = counts[:n]
	}
	return counts
}

// frequencyBars draws one bar per distinct value, centred on the value.
// plotter.BarChart anchors bars at zero, which a log axis cannot place,
// so bars here start at floor instead.
type frequencyBars struct {
	freqs Frequencies

	// Width is the bar width in data units.
	Width float64

	// Floor is the data value bars are drawn up from.
	Floor float64

	Color color.Color
	draw.LineStyle
}

func newFrequencyBars(
	freqs Frequencies,
) (
	*frequencyBars, error,
) {
	if len(freqs) == 0 {
		return nil, plotter.ErrNoData
	}
	for _, fr := range freqs {
		if err := plotter.CheckFloats(fr.Value); err != nil {
			return nil, err
		}
	}
	return &frequencyBars{
		freqs:     freqs,
		Width:     0.8,
		Floor:     0.5,
		Color:     skyBlue,
		LineStyle: edgeStyle,
	}, nil
}

// Plot implements the plot.Plotter interface.
func (b *frequencyBars) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)

	for _, fr := range b.freqs {
		left := trX(fr.Value - b.Width/2)
		right := trX(fr.Value + b.Width/2)
		bottom := trY(b.Floor)
		top := trY(float64(fr.Count))

		pts := []vg.Point{
			{X: left, Y: bottom},
			{X: left, Y: top},
			{X: right, Y: top},
			{X: right, Y: bottom},
		}
		if b.Color != nil {
			c.FillPolygon(b.Color, c.ClipPolygonY(pts))
		}
		outline := c.ClipLinesY(append(pts, pts[0]))
		c.StrokeLines(b.LineStyle, outline...)
	}
}

// DataRange implements the plot.DataRanger interface.
func (b *frequencyBars) DataRange() (xmin, xmax, ymin, ymax float64) {
	xmin, xmax = math.Inf(1), math.Inf(-1)
	ymin, ymax = b.Floor, b.Floor
	for _, fr := range b.freqs {
		xmin = math.Min(xmin, fr.Value-b.Width/2)
		xmax = math.Max(xmax, fr.Value+b.Width/2)
		ymax = math.Max(ymax, float64(fr.Count))
	}
	return xmin, xmax, ymin, ymax
}

// FrequencyPanel builds a bar chart of exact-value frequencies on a log
// axis and writes the leading counts to trace.
func FrequencyPanel(
	s Series,
	title string,
	cfg PanelConfig,
	trace io.Writer,
) (
	*plot.Plot, Frequencies, error,
) {
	data := s.Filter()
	if len(data) == 0 {
		return nil, nil, errors.Wrap(ErrEmptySeries, title)
	}

	freqs := Count(data)

	p := prepPanel(title, cfg)
	p.Y.Scale = plot.LogScale{}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Y.AutoRescale = true

	grid := plotter.NewGrid()
	grid.Vertical.Color = nil
	grid.Horizontal.Color = lightGray
	grid.Horizontal.Dashes = []vg.Length{vg.Points(3), vg.Points(2)}

	bars, err := newFrequencyBars(freqs)
	if err != nil {
		return nil, nil, errors.Wrap(err, title)
	}
	p.Add(grid, bars)

	if trace != nil {
		fmt.Fprintln(trace, freqs.Head(cfg.Trace))
	}

	return p, freqs, nil
}
