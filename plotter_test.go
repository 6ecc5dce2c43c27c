package main

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistogramPanel(t *testing.T) {
	s := Series{-1, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9, -1}

	p, _, err := HistogramPanel(s, "Node timestamps", DefaultPanelConfig())
	require.NoError(t, err)

	assert.Equal(t, "Node timestamps", p.Title.Text)
	assert.Equal(t, "Value", p.X.Label.Text)
	assert.Equal(t, "Frequency", p.Y.Label.Text)
	assert.InDelta(t, 0., p.X.Min, 1e-9)
	assert.InDelta(t, 9., p.X.Max, 1e-9)
}

func TestHistogramPanelBins(t *testing.T) {
	data := Series{1, 1, 2, 3, 5, 8, 13, 21, 34, 55}
	cfg := DefaultPanelConfig()

	p, hist, err := HistogramPanel(data, "Query timestamps", cfg)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Len(t, hist.Bins, 10)
	assert.InDelta(t, 5.4, hist.Width, 1e-12)

	total := 0.
	for _, bin := range hist.Bins {
		total += bin.Weight
	}
	assert.Equal(t, float64(data.Len()), total)
}

func TestHistogramPanelSingleValue(t *testing.T) {
	_, _, err := HistogramPanel(Series{42, 42, -1}, "Query timestamps", DefaultPanelConfig())
	assert.NoError(t, err)
}

func TestHistogramPanelEmpty(t *testing.T) {
	_, _, err := HistogramPanel(Series{-1}, "Node timestamps", DefaultPanelConfig())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrEmptySeries))
}

func TestHistogramPanelBadBins(t *testing.T) {
	cfg := DefaultPanelConfig()
	cfg.Bins = 0
	_, _, err := HistogramPanel(Series{1, 2}, "Node timestamps", cfg)
	assert.Error(t, err)
}
