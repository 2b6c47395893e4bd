// Command flowlines fills a canvas with evenly spaced streamlines of a flow
// field and writes them as PNG, SVG or GeoJSON.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"gonum.org/v1/gonum/stat"

	"honnef.co/go/flowfield"
	"honnef.co/go/flowfield/internal/config"
	"honnef.co/go/flowfield/internal/export"
	"honnef.co/go/flowfield/internal/fields"
	"honnef.co/go/flowfield/internal/frame"
	"honnef.co/go/flowfield/internal/preview"
	"honnef.co/go/flowfield/internal/render"
)

var (
	configFlag   = flag.String("config", "", "YAML configuration `file`; defaults apply to everything it omits")
	outFlag      = flag.String("o", "flowlines.png", "output `file`, - for stdout")
	formatFlag   = flag.String("format", "", "output format: png, svg or geojson (default: from the output file name)")
	seedFlag     = flag.Uint64("seed", 0, "random seed, 0 to use the configured one or a random seed")
	linesFlag    = flag.Int("lines", -1, "maximum number of lines, overriding the configuration")
	tuiFlag      = flag.Bool("tui", false, "watch the lines being placed in the terminal")
	debugFlag    = flag.Bool("debug", false, "log every seed and growth pass")
	simplifyFlag = flag.Float64("simplify", 0, "Douglas-Peucker tolerance for geojson output")
	smoothFlag   = flag.Int("smooth", 0, "rounds of corner cutting for geojson output")
)

func main() {
	flag.Parse()

	level := slog.LevelInfo
	if *debugFlag {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(log); err != nil {
		log.Error("flowlines failed", "err", err)
		os.Exit(1)
	}
}

func loadConfig() (config.Config, error) {
	cfg := config.Default()
	if *configFlag != "" {
		var err error
		if cfg, err = config.Load(*configFlag); err != nil {
			return config.Config{}, err
		}
	}
	if *linesFlag >= 0 {
		cfg.Lines.MaxCount = *linesFlag
	}
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}
	if cfg.Seed == 0 {
		cfg.Seed = rand.Uint64()
	}
	return cfg, cfg.Validate()
}

func outputFormat() (string, error) {
	format := *formatFlag
	if format == "" {
		format = strings.TrimPrefix(filepath.Ext(*outFlag), ".")
	}
	switch format = strings.ToLower(format); format {
	case "png", "svg", "geojson":
		return format, nil
	case "json":
		return "geojson", nil
	case "":
		return "png", nil
	default:
		return "", fmt.Errorf("unknown output format %q", format)
	}
}

func run(log *slog.Logger) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	format, err := outputFormat()
	if err != nil {
		return err
	}
	log.Info("generating",
		"seed", cfg.Seed,
		"field", cfg.Field.Type,
		"canvas", cfg.Canvas.Size(),
		"lines", cfg.Lines.MaxCount)

	fn, err := fields.New(cfg, int64(cfg.Seed))
	if err != nil {
		return err
	}
	ff := flowfield.New(fn)
	if err := ff.Initialize(cfg.Canvas.Width, cfg.Canvas.Height, cfg.Lines.CellSize()); err != nil {
		return err
	}
	rnd := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15))

	var lines []flowfield.Streamline
	if cfg.Lines.Lattice {
		flowfield.SeedLattice(ff, cfg.Lines.SegmentLength, max(cfg.Lines.MinThickness, 1))
	} else {
		lines, err = sample(log, cfg, ff, rnd)
		if err != nil {
			return err
		}
	}
	summarize(log, ff, lines)

	return writeOutput(log, format, func(w io.Writer) error {
		switch format {
		case "geojson":
			fc := export.Collection(ff, lines, export.Options{Tolerance: *simplifyFlag, Smooth: *smoothFlag})
			return export.Write(w, fc)
		default:
			return draw(w, format, cfg, ff, rnd)
		}
	})
}

func sample(log *slog.Logger, cfg config.Config, ff *flowfield.FlowField, rnd *rand.Rand) ([]flowfield.Streamline, error) {
	scfg := cfg.Lines.Sampler(log, rnd)
	scfg.Debug = *debugFlag
	if cfg.Framing.Border.Clip {
		scfg.InBounds = frame.New(cfg.Framing.Border, cfg.Canvas.Size()).Contains
	}
	if *tuiFlag {
		// Log lines would tear the preview.
		scfg.Logger = nil
	}
	s, err := flowfield.NewSampler(ff, scfg)
	if err != nil {
		return nil, err
	}

	if !*tuiFlag {
		s.Run()
		return s.Streamlines(), nil
	}

	m, err := tea.NewProgram(preview.New(ff, s, cfg.Lines.MaxCount), tea.WithAltScreen()).Run()
	if err != nil {
		return nil, fmt.Errorf("preview: %w", err)
	}
	if pm, ok := m.(preview.Model); ok && !pm.Done() {
		log.Info("preview closed early, keeping the lines placed so far")
	}
	return s.Streamlines(), nil
}

func summarize(log *slog.Logger, ff *flowfield.FlowField, lines []flowfield.Streamline) {
	if len(lines) == 0 {
		log.Info("summary", "samples", ff.Len())
		return
	}
	counts := make([]float64, len(lines))
	for i, l := range lines {
		counts[i] = float64(l.Len())
	}
	mean, std := stat.MeanStdDev(counts, nil)
	widths := make([]float64, ff.Len())
	for i, s := range ff.Samples() {
		widths[i] = s.Width
	}
	log.Info("summary",
		"lines", len(lines),
		"samples", ff.Len(),
		"samplesPerLine", fmt.Sprintf("%.1f±%.1f", mean, std),
		"meanWidth", fmt.Sprintf("%.2f", stat.Mean(widths, nil)))
}

func draw(w io.Writer, format string, cfg config.Config, ff *flowfield.FlowField, rnd *rand.Rand) error {
	scene, err := render.NewScene(cfg, rnd)
	if err != nil {
		return err
	}
	width := int(math.Ceil(cfg.Canvas.Width))
	height := int(math.Ceil(cfg.Canvas.Height))

	if format == "svg" {
		v := render.NewVector(w, width, height)
		scene.Draw(v, ff.Samples())
		v.Close()
		return nil
	}
	r := render.NewRaster(width, height)
	scene.Draw(r, ff.Samples())
	if err := r.EncodePNG(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

func writeOutput(log *slog.Logger, format string, fn func(io.Writer) error) (err error) {
	if *outFlag == "-" {
		return fn(os.Stdout)
	}
	f, err := os.Create(*outFlag)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()
	if err := fn(f); err != nil {
		return err
	}
	log.Info("wrote output", "file", *outFlag, "format", format)
	return nil
}
