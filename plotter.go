package main

import (
	"image/color"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	skyBlue   = color.RGBA{R: 135, G: 206, B: 235, A: 255}
	lightGray = color.RGBA{R: 176, G: 176, B: 176, A: 191}
	edgeStyle = draw.LineStyle{Color: color.Black, Width: vg.Points(0.5)}
)

// PanelConfig styles a single subplot.
type PanelConfig struct {
	Bins  int // histogram bins
	Trace int // frequency counts echoed per value panel

	FontSize font.Length
}

func DefaultPanelConfig() PanelConfig {
	return PanelConfig{
		Bins:     10,
		Trace:    10,
		FontSize: 8,
	}
}

func prepPanel(
	title string,
	cfg PanelConfig,
) (
	*plot.Plot,
) {
	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Size = cfg.FontSize * 1.25
	p.Title.Padding = font.Length(4)

	p.X.Label.Text = "Value"
	p.X.Label.TextStyle.Font.Size = cfg.FontSize
	p.X.Tick.Label.Font.Size = cfg.FontSize * 0.8

	p.Y.Label.Text = "Frequency"
	p.Y.Label.TextStyle.Font.Size = cfg.FontSize
	p.Y.Tick.Label.Font.Size = cfg.FontSize * 0.8

	return p
}

// HistogramPanel bins the non-sentinel samples of s into cfg.Bins bars.
// The histogram is returned alongside the plot it was added to.
func HistogramPanel(
	s Series,
	title string,
	cfg PanelConfig,
) (
	*plot.Plot, *plotter.Histogram, error,
) {
	data := s.Filter()
	if len(data) == 0 {
		return nil, nil, errors.Wrap(ErrEmptySeries, title)
	}

	p := prepPanel(title, cfg)

	hist, err := plotter.NewHist(plotter.Values(data), cfg.Bins)
	if err != nil {
		return nil, nil, errors.Wrap(err, title)
	}
	hist.FillColor = skyBlue
	hist.LineStyle = edgeStyle

	grid := plotter.NewGrid()
	grid.Vertical.Color = nil
	grid.Horizontal.Color = lightGray

	p.Add(grid, hist)

	return p, hist, nil
}
