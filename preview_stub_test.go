//go:build !gnuplot

package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestRunPreviewWithoutGnuplot(t *testing.T) {
	dir := t.TempDir()
	writeInputs(t, dir)

	core, logs := observer.New(zap.DebugLevel)

	cfg := DefaultConfig()
	cfg.Dir = dir
	cfg.Output = filepath.Join(dir, defaultOutput)
	cfg.Preview = true
	cfg.Logger = zap.New(core)

	var stdout bytes.Buffer
	require.NoError(t, Run(cfg, &stdout))

	skipped := logs.FilterMessage("preview skipped").All()
	require.Len(t, skipped, 2)
	assert.Equal(t, "Node values", skipped[0].ContextMap()["title"])
	assert.Equal(t, "Query values", skipped[1].ContextMap()["title"])
	assert.Zero(t, logs.FilterMessage("preview saved").Len())
	assert.NoFileExists(t, previewPath(cfg.Output, "Node values"))

	file, err := os.Open(cfg.Output)
	require.NoError(t, err)
	defer file.Close()
	_, err = png.DecodeConfig(file)
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "Histogram saved as "+cfg.Output)
}

func TestPreviewUnavailable(t *testing.T) {
	err := Preview("Node values", Count(Series{1, 1, 2}), filepath.Join(t.TempDir(), "p.png"))
	assert.ErrorIs(t, err, ErrPreviewUnavailable)
}
