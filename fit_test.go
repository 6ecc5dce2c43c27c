package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFitZipfRecoversPowerLaw(t *testing.T) {
	var freqs Frequencies
	for rank := 1; rank <= 20; rank++ {
		count := math.Round(1000 * math.Pow(float64(rank), -1.2))
		freqs = append(freqs, Frequency{Value: float64(rank * 7), Count: int(count)})
	}

	fit, err := FitZipf(freqs)
	require.NoError(t, err)
	assert.InDelta(t, 1.2, fit.Exponent, 0.05)
	assert.InEpsilon(t, 1000, fit.Amp, 0.05)
	assert.InEpsilon(t, 1000, fit.Model(1), 0.05)
}

func TestFitZipfFlat(t *testing.T) {
	freqs := Count(Series{1, 2, 3, 4, 5, 6})

	fit, err := FitZipf(freqs)
	require.NoError(t, err)
	assert.InDelta(t, 0, fit.Exponent, 1e-3)
	assert.InDelta(t, 1, fit.Amp, 1e-3)
}

func TestFitZipfTooFewPoints(t *testing.T) {
	_, err := FitZipf(Count(Series{4, 4, 4}))
	assert.ErrorIs(t, err, ErrTooFewPoints)

	_, err = FitZipf(nil)
	assert.ErrorIs(t, err, ErrTooFewPoints)
}
