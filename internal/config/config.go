// Package config holds the generator configuration: the canvas, the field
// function, the line parameters, rendering and framing. Configurations are
// read from YAML on top of [Default], so a file only needs to name the values
// it changes.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"honnef.co/go/flowfield"
)

// ErrInvalid is wrapped by all validation errors.
var ErrInvalid = errors.New("invalid configuration")

type FieldType string

const (
	Perlin   FieldType = "perlin"
	Radial   FieldType = "radial"
	Constant FieldType = "constant"
	Grid     FieldType = "grid"
)

type LineStyle string

const (
	Solid  LineStyle = "solid"
	Dotted LineStyle = "dotted"
)

type Shape string

const (
	Rectangle Shape = "rectangle"
	Circle    Shape = "circle"
)

// Vec is a pair of numbers, written as {x: …, y: …}.
type Vec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func (v Vec) Vec2() flowfield.Vec2 { return flowfield.Vec(v.X, v.Y) }

type Config struct {
	// Seed drives every random choice of a run. Zero picks a random seed.
	Seed      uint64    `yaml:"seed"`
	Canvas    Canvas    `yaml:"canvas"`
	Field     Field     `yaml:"field"`
	Lines     Lines     `yaml:"lines"`
	Rendering Rendering `yaml:"rendering"`
	Framing   Framing   `yaml:"framing"`
}

type Canvas struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

func (c Canvas) Size() flowfield.Size { return flowfield.Sz(c.Width, c.Height) }

type Field struct {
	Type     FieldType     `yaml:"type"`
	Perlin   PerlinField   `yaml:"perlin"`
	Radial   RadialField   `yaml:"radial"`
	Constant ConstantField `yaml:"constant"`
	Grid     GridField     `yaml:"grid"`
}

type PerlinField struct {
	Scale  float64 `yaml:"scale"`
	Offset Vec     `yaml:"offset"`
	// Alpha, Beta and Octaves shape the noise; see the noise library.
	Alpha   float64 `yaml:"alpha"`
	Beta    float64 `yaml:"beta"`
	Octaves int     `yaml:"octaves"`
}

type RadialField struct {
	CenterOffset Vec     `yaml:"centerOffset"`
	CurveFactor  float64 `yaml:"curveFactor"`
}

type ConstantField struct {
	Angle float64 `yaml:"angle"`
}

type GridField struct {
	CellSize float64 `yaml:"cellSize"`
	// Cells overrides the angle of individual cells; the rest keep the
	// default angle.
	Cells []GridCell `yaml:"cells"`
}

type GridCell struct {
	I     int     `yaml:"i"`
	J     int     `yaml:"j"`
	Angle float64 `yaml:"angle"`
}

type Lines struct {
	MaxCount int `yaml:"maxCount"`
	// MaxLength is the number of samples a line may grow in each direction.
	// Zero leaves the sampler's default of 200.
	MaxLength      int     `yaml:"maxLength"`
	MinThickness   float64 `yaml:"minThickness"`
	MaxThickness   float64 `yaml:"maxThickness"`
	SegmentLength  float64 `yaml:"segmentLength"`
	DistanceFactor float64 `yaml:"distanceFactor"`
	// WidthAwareSpacing keeps wide lines further apart.
	WidthAwareSpacing bool `yaml:"widthAwareSpacing"`
	// Lattice replaces the streamlines by one sample per grid node, for
	// inspecting the field.
	Lattice bool `yaml:"lattice"`
}

type Rendering struct {
	LineStyle       LineStyle `yaml:"lineStyle"`
	BorderColor     string    `yaml:"borderColor"`
	BackgroundColor string    `yaml:"backgroundColor"`
	// SegmentedRatio is the share of lines whose samples get random palette
	// colors instead of one color per line.
	SegmentedRatio float64  `yaml:"segmentedRatio"`
	Palette        []string `yaml:"palette"`
}

type Framing struct {
	Border     Frame `yaml:"border"`
	Background Frame `yaml:"background"`
}

type Frame struct {
	Shape Shape `yaml:"shape"`
	// Scale is relative to the canvas. Circles use only X.
	Scale Vec `yaml:"scale"`
	// Clip keeps the sampler inside the frame instead of only hiding the
	// samples outside of it. Only used for the border.
	Clip bool `yaml:"clip"`
}

// Default returns the configuration of a 1024×1024 radial flow field. Its line
// parameters match the generator's shipped settings: spacing accounts for line
// widths, and each growth pass is capped at 200 samples.
func Default() Config {
	return Config{
		Canvas: Canvas{Width: 1024, Height: 1024},
		Field: Field{
			Type: Radial,
			Perlin: PerlinField{
				Scale:   1,
				Alpha:   2,
				Beta:    2,
				Octaves: 3,
			},
			Radial: RadialField{
				CenterOffset: Vec{0.5, 0.5},
				CurveFactor:  1,
			},
			Grid: GridField{CellSize: 128},
		},
		Lines: Lines{
			MaxCount:          250,
			MinThickness:      2,
			MaxThickness:      20,
			SegmentLength:     5,
			DistanceFactor:    1,
			WidthAwareSpacing: true,
		},
		Rendering: Rendering{
			LineStyle:       Solid,
			BorderColor:     "#FFFFFF",
			BackgroundColor: "#000000",
			Palette:         []string{"#FF0000", "#00FF00", "#0000FF"},
		},
		Framing: Framing{
			Border:     Frame{Shape: Rectangle, Scale: Vec{1, 1}},
			Background: Frame{Shape: Rectangle, Scale: Vec{1, 1}},
		},
	}
}

// Parse decodes YAML on top of the default configuration and validates the
// result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads the configuration file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}

func positive(v float64) bool { return v > 0 && !math.IsInf(v, 0) }

// Validate reports the first inconsistency of cfg.
func (cfg Config) Validate() error {
	if !positive(cfg.Canvas.Width) || !positive(cfg.Canvas.Height) {
		return invalid("canvas size %g×%g must be positive", cfg.Canvas.Width, cfg.Canvas.Height)
	}

	switch cfg.Field.Type {
	case Perlin:
		if cfg.Field.Perlin.Octaves <= 0 {
			return invalid("perlin octaves must be positive, got %d", cfg.Field.Perlin.Octaves)
		}
	case Radial, Constant:
	case Grid:
		if !positive(cfg.Field.Grid.CellSize) {
			return invalid("grid cell size must be positive, got %g", cfg.Field.Grid.CellSize)
		}
	default:
		return invalid("unknown field type %q", cfg.Field.Type)
	}

	l := cfg.Lines
	switch {
	case l.MaxCount < 0:
		return invalid("line count must not be negative, got %d", l.MaxCount)
	case l.MaxLength < 0:
		return invalid("line length must not be negative, got %d", l.MaxLength)
	case !positive(l.MaxThickness):
		return invalid("maximum thickness must be positive, got %g", l.MaxThickness)
	case !(l.MinThickness > 0) || l.MinThickness > l.MaxThickness:
		return invalid("minimum thickness %g must lie in (0, %g]", l.MinThickness, l.MaxThickness)
	case !positive(l.SegmentLength):
		return invalid("segment length must be positive, got %g", l.SegmentLength)
	case !positive(l.DistanceFactor):
		return invalid("distance factor must be positive, got %g", l.DistanceFactor)
	}

	r := cfg.Rendering
	switch r.LineStyle {
	case Solid, Dotted:
	default:
		return invalid("unknown line style %q", r.LineStyle)
	}
	if len(r.Palette) == 0 {
		return invalid("palette is empty")
	}
	if r.SegmentedRatio < 0 || r.SegmentedRatio > 1 {
		return invalid("segmented ratio must lie in [0, 1], got %g", r.SegmentedRatio)
	}

	frames := []struct {
		name string
		f    Frame
	}{
		{"border", cfg.Framing.Border},
		{"background", cfg.Framing.Background},
	}
	for _, fr := range frames {
		switch fr.f.Shape {
		case Rectangle, Circle:
		default:
			return invalid("unknown %s shape %q", fr.name, fr.f.Shape)
		}
		if fr.f.Scale.X < 0 || fr.f.Scale.Y < 0 {
			return invalid("%s scale must not be negative", fr.name)
		}
	}
	return nil
}
