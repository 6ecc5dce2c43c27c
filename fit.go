package main

import (
	"math"

	"github.com/maorshutman/lm"
	"github.com/pkg/errors"
)

// ErrTooFewPoints is returned when a fit has fewer points than parameters.
var ErrTooFewPoints = errors.New("not enough distinct values to fit")

// ZipfFit is count ≈ Amp * rank^-Exponent over the rank-frequency curve.
type ZipfFit struct {
	Amp      float64
	Exponent float64
}

// Model evaluates the fitted curve at rank (1-based).
func (z ZipfFit) Model(rank float64) float64 {
	return z.Amp * math.Pow(rank, -z.Exponent)
}

// FitZipf fits a power law to the sorted frequencies. The residuals are
// taken in log space so the long tail of single occurrences weighs as much
// as the head.
func FitZipf(
	freqs Frequencies,
) (
	ZipfFit, error,
) {
	if len(freqs) < 2 {
		return ZipfFit{}, ErrTooFewPoints
	}

	logRank := make([]float64, len(freqs))
	logCount := make([]float64, len(freqs))
	for i, fr := range freqs {
		logRank[i] = math.Log(float64(i + 1))
		logCount[i] = math.Log(float64(fr.Count))
	}

	f := func(dst, guess []float64) {
		logAmp, s := guess[0], guess[1]
		for i := range logRank {
			dst[i] = logAmp - s*logRank[i] - logCount[i]
		}
	}

	jacobian := lm.NumJac{Func: f}

	toBeSolved := lm.LMProblem{
		Dim:        2,
		Size:       len(freqs),
		Func:       f,
		Jac:        jacobian.Jac,
		InitParams: []float64{logCount[0], 1},
		Tau:        1e-6,
		Eps1:       1e-8,
		Eps2:       1e-8,
	}

	results, err := lm.LM(toBeSolved, &lm.Settings{Iterations: 100, ObjectiveTol: 1e-16})
	if err != nil {
		return ZipfFit{}, errors.Wrap(err, "zipf fit")
	}

	return ZipfFit{
		Amp:      math.Exp(results.X[0]),
		Exponent: results.X[1],
	}, nil
}
