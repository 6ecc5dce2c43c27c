package main

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Sentinel marks a missing or invalid sample in the exported columns.
const Sentinel = -1.

// ErrEmptySeries is returned when nothing is left to plot after filtering.
var ErrEmptySeries = errors.New("series is empty after removing sentinels")

// Series is one exported column, in file order.
type Series []float64

func (s Series) Len() int { return len(s) }

// Filter returns a copy of s without sentinel values.
func (s Series) Filter() Series {
	out := make(Series, 0, len(s))
	for _, v := range s {
		if v != Sentinel {
			out = append(out, v)
		}
	}
	return out
}

// Concat returns s followed by other. Neither input is modified.
func (s Series) Concat(
	other Series,
) (
	Series,
) {
	out := make(Series, 0, len(s)+len(other))
	out = append(out, s...)
	return append(out, other...)
}

// ReadSeries reads the numeric row of a single-row CSV export.
func ReadSeries(
	path string,
) (
	Series, error,
) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open series")
	}
	defer file.Close()

	s, err := ParseSeries(file)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	return s, nil
}

// ParseSeries parses CSV rows of floats. Only the last row is kept, so a
// multi-row file yields the values of its final line.
func ParseSeries(
	r io.Reader,
) (
	Series, error,
) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var data Series
	line := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "csv")
		}
		line++

		// Convert
		data = make(Series, 0, len(row))
		for col, field := range row {
			field = strings.TrimSpace(field)
			if field == "" {
				continue
			}
			value, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d, column %d", line, col+1)
			}
			data = append(data, value)
		}
	}

	return data, nil
}
