package main

import (
	"sort"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary describes a filtered series.
type Summary struct {
	N       int
	Removed int // sentinels dropped
	Min     float64
	Max     float64
	Mean    float64
	StdDev  float64
	Median  float64
	P95     float64
	P99     float64
}

// Summarize filters s and describes what remains. An empty result has
// only N and Removed set.
func Summarize(s Series) Summary {
	data := s.Filter()
	sum := Summary{N: len(data), Removed: len(s) - len(data)}
	if len(data) == 0 {
		return sum
	}

	sorted := make([]float64, len(data))
	copy(sorted, data)
	sort.Float64s(sorted)

	sum.Min = floats.Min(sorted)
	sum.Max = floats.Max(sorted)
	sum.Mean, sum.StdDev = stat.MeanStdDev(sorted, nil)
	sum.Median = stat.Quantile(0.5, stat.Empirical, sorted, nil)
	sum.P95 = stat.Quantile(0.95, stat.Empirical, sorted, nil)
	sum.P99 = stat.Quantile(0.99, stat.Empirical, sorted, nil)
	return sum
}

// Fields renders the summary as structured log fields.
func (s Summary) Fields() []zap.Field {
	return []zap.Field{
		zap.Int("n", s.N),
		zap.Int("removed", s.Removed),
		zap.Float64("min", s.Min),
		zap.Float64("max", s.Max),
		zap.Float64("mean", s.Mean),
		zap.Float64("stddev", s.StdDev),
		zap.Float64("median", s.Median),
		zap.Float64("p95", s.P95),
		zap.Float64("p99", s.P99),
	}
}
