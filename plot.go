package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Column exports written by the benchmark extractor.
const (
	nodeTimestampsCSV   = "node_timestamps.csv"
	queryTimestampsLCSV = "query_timestamps_l.csv"
	queryTimestampsRCSV = "query_timestamps_r.csv"
	nodeValuesCSV       = "node_values.csv"
	queryValuesCSV      = "query_values.csv"

	defaultOutput = "data_distribution.png"
)

const gridRows, gridCols = 2, 2

// Config holds everything a run needs.
type Config struct {
	Dir    string
	Output string

	Width, Height vg.Length
	DPI           int

	Panel PanelConfig

	Fit     bool
	Preview bool

	Logger *zap.Logger
}

func DefaultConfig() Config {
	return Config{
		Dir:    ".",
		Output: defaultOutput,
		Width:  6 * vg.Inch,
		Height: 5 * vg.Inch,
		DPI:    100,
		Panel:  DefaultPanelConfig(),
	}
}

func (c Config) validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return errors.Errorf("figure size must be positive, got %vx%v", c.Width, c.Height)
	case c.DPI <= 0:
		return errors.Errorf("dpi must be positive, got %d", c.DPI)
	case c.Panel.Bins <= 0:
		return errors.Errorf("bins must be positive, got %d", c.Panel.Bins)
	case c.Panel.Trace < 0:
		return errors.Errorf("trace must not be negative, got %d", c.Panel.Trace)
	}
	return nil
}

type panelKind int

const (
	histogramPanel panelKind = iota
	frequencyPanel
)

// Panel is one slot of the 2x2 figure, numbered 1..4 row-major.
type Panel struct {
	Slot   int
	Title  string
	Kind   panelKind
	Series Series
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := DefaultConfig()
	var width, height float64
	var verbose bool

	cmd := &cobra.Command{
		Use:   "datadist",
		Short: "Plot the distribution of exported node and query columns",
		Long: `datadist reads the single-row CSV column exports (node_timestamps.csv,
query_timestamps_l.csv, query_timestamps_r.csv, node_values.csv,
query_values.csv) and draws timestamp histograms and log-scale value
frequencies into one 2x2 figure.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(verbose)
			if err != nil {
				return errors.Wrap(err, "logger")
			}
			defer logger.Sync()

			cfg.Width = vg.Length(width) * vg.Inch
			cfg.Height = vg.Length(height) * vg.Inch
			cfg.Logger = logger
			return Run(cfg, cmd.OutOrStdout())
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&cfg.Dir, "dir", cfg.Dir, "directory holding the input CSVs")
	flags.StringVarP(&cfg.Output, "output", "o", cfg.Output, "figure path; the extension picks the format (png, svg, pdf, ...)")
	flags.IntVar(&cfg.Panel.Bins, "bins", cfg.Panel.Bins, "histogram bins")
	flags.IntVar(&cfg.Panel.Trace, "trace", cfg.Panel.Trace, "frequency counts printed per value panel")
	flags.Float64Var(&width, "width", 6, "figure width in inches")
	flags.Float64Var(&height, "height", 5, "figure height in inches")
	flags.IntVar(&cfg.DPI, "dpi", cfg.DPI, "raster resolution")
	flags.BoolVar(&cfg.Fit, "fit", false, "fit a power law to each value panel's rank-frequency curve")
	flags.BoolVar(&cfg.Preview, "preview", false, "also render rank-frequency previews with gnuplot (needs a -tags gnuplot build)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	return cmd
}

// Run reads the exports under cfg.Dir, renders the four panels and saves
// the figure to cfg.Output.
func Run(
	cfg Config,
	stdout io.Writer,
) (
	error,
) {
	if err := cfg.validate(); err != nil {
		return err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	read := func(name string) (Series, error) {
		path := filepath.Join(cfg.Dir, name)
		s, err := ReadSeries(path)
		if err != nil {
			return nil, err
		}
		logger.Debug("read series", zap.String("path", path), zap.Int("samples", len(s)))
		return s, nil
	}

	nodeTimestamps, err := read(nodeTimestampsCSV)
	if err != nil {
		return err
	}
	queryTimestampsL, err := read(queryTimestampsLCSV)
	if err != nil {
		return err
	}
	queryTimestampsR, err := read(queryTimestampsRCSV)
	if err != nil {
		return err
	}
	nodeValues, err := read(nodeValuesCSV)
	if err != nil {
		return err
	}
	queryValues, err := read(queryValuesCSV)
	if err != nil {
		return err
	}

	panels := []Panel{
		{Slot: 1, Title: "Node timestamps", Kind: histogramPanel, Series: nodeTimestamps},
		{Slot: 2, Title: "Query timestamps", Kind: histogramPanel, Series: queryTimestampsL.Concat(queryTimestampsR)},
		{Slot: 3, Title: "Node values", Kind: frequencyPanel, Series: nodeValues},
		{Slot: 4, Title: "Query values", Kind: frequencyPanel, Series: queryValues},
	}

	plots := make([][]*plot.Plot, gridRows)
	for i := range plots {
		plots[i] = make([]*plot.Plot, gridCols)
	}

	for _, panel := range panels {
		fields := append([]zap.Field{zap.Int("slot", panel.Slot), zap.String("title", panel.Title)},
			Summarize(panel.Series).Fields()...)
		logger.Info("panel", fields...)

		p, err := renderPanel(panel, cfg, stdout, logger)
		if err != nil {
			return err
		}
		row, col := (panel.Slot-1)/gridCols, (panel.Slot-1)%gridCols
		plots[row][col] = p
	}

	if err := SaveFigure(cfg.Output, plots, cfg.Width, cfg.Height, cfg.DPI); err != nil {
		return err
	}
	logger.Info("figure saved", zap.String("path", cfg.Output))

	fmt.Fprintf(stdout, "Histogram saved as %s\n", cfg.Output)
	return nil
}

func renderPanel(
	panel Panel,
	cfg Config,
	stdout io.Writer,
	logger *zap.Logger,
) (
	*plot.Plot, error,
) {
	if panel.Kind == histogramPanel {
		p, hist, err := HistogramPanel(panel.Series, panel.Title, cfg.Panel)
		if err != nil {
			return nil, err
		}
		logger.Debug("histogram",
			zap.String("title", panel.Title),
			zap.Int("bins", len(hist.Bins)),
			zap.Float64("width", hist.Width))
		return p, nil
	}

	p, freqs, err := FrequencyPanel(panel.Series, panel.Title, cfg.Panel, stdout)
	if err != nil {
		return nil, err
	}
	logger.Debug("frequencies", zap.String("title", panel.Title), zap.Int("distinct", len(freqs)))

	if cfg.Fit {
		fit, err := FitZipf(freqs)
		if err != nil {
			return nil, errors.Wrap(err, panel.Title)
		}
		logger.Info("rank-frequency fit",
			zap.String("title", panel.Title),
			zap.Float64("amp", fit.Amp),
			zap.Float64("exponent", fit.Exponent))
		fmt.Fprintf(stdout, "zipf %s: A=%.4g s=%.4g\n", panel.Title, fit.Amp, fit.Exponent)
	}

	if cfg.Preview {
		path := previewPath(cfg.Output, panel.Title)
		if err := Preview(panel.Title, freqs, path); err != nil {
			logger.Warn("preview skipped", zap.String("title", panel.Title), zap.Error(err))
		} else {
			logger.Info("preview saved", zap.String("path", path))
		}
	}

	return p, nil
}

// previewPath places a panel preview next to the figure:
// out/data_distribution.png, "Node values" -> out/data_distribution_node_values.png
func previewPath(
	output, title string,
) (
	string,
) {
	base := strings.TrimSuffix(output, filepath.Ext(output))
	slug := strings.ReplaceAll(strings.ToLower(title), " ", "_")
	return base + "_" + slug + ".png"
}

// SaveFigure lays plots out as a grid on one canvas and writes it to path.
func SaveFigure(
	path string,
	plots [][]*plot.Plot,
	w, h vg.Length,
	dpi int,
) (
	error,
) {
	if len(plots) == 0 || len(plots[0]) == 0 {
		return errors.New("figure has no panels")
	}

	format := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))

	var c vg.CanvasWriterTo
	switch format {
	case "":
		return errors.Errorf("no image extension on %q", path)
	case "png":
		c = vgimg.PngCanvas{Canvas: vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(dpi))}
	default:
		var err error
		c, err = draw.NewFormattedCanvas(w, h, format)
		if err != nil {
			return errors.Wrap(err, path)
		}
	}

	tiles := draw.Tiles{
		Rows:      len(plots),
		Cols:      len(plots[0]),
		PadX:      vg.Millimeter * 4,
		PadY:      vg.Millimeter * 4,
		PadTop:    vg.Millimeter * 2,
		PadBottom: vg.Millimeter * 2,
		PadLeft:   vg.Millimeter * 2,
		PadRight:  vg.Millimeter * 2,
	}

	dc := draw.New(c)
	canvases := plot.Align(plots, tiles, dc)
	for j := range plots {
		for i := range plots[j] {
			if plots[j][i] != nil {
				plots[j][i].Draw(canvases[j][i])
			}
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create figure")
	}

	if _, err := c.WriteTo(file); err != nil {
		file.Close()
		return errors.Wrapf(err, "write %s", path)
	}
	return errors.Wrapf(file.Close(), "close %s", path)
}
