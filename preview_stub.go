//go:build !gnuplot

package main

import "github.com/pkg/errors"

// ErrPreviewUnavailable is returned by Preview in builds without gnuplot.
var ErrPreviewUnavailable = errors.New("gnuplot preview not built in (rebuild with -tags gnuplot)")

func Preview(
	title string,
	freqs Frequencies,
	path string,
) (
	error,
) {
	return ErrPreviewUnavailable
}
