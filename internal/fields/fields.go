// Package fields builds the field functions a generator configuration can
// select.
package fields

import (
	"fmt"
	"math"

	"github.com/aquilax/go-perlin"

	"honnef.co/go/flowfield"
	"honnef.co/go/flowfield/internal/config"
)

// New returns the field function selected by cfg. The seed only affects
// noise based fields.
func New(cfg config.Config, seed int64) (flowfield.FieldFunc, error) {
	size := cfg.Canvas.Size()
	switch cfg.Field.Type {
	case config.Perlin:
		return Perlin(size, cfg.Field.Perlin, seed), nil
	case config.Radial:
		return Radial(size, cfg.Field.Radial), nil
	case config.Constant:
		return Constant(cfg.Field.Constant.Angle), nil
	case config.Grid:
		gf, err := Grid(size, cfg.Field.Grid)
		if err != nil {
			return nil, err
		}
		return gf.Angle, nil
	default:
		return nil, fmt.Errorf("unknown field type %q", cfg.Field.Type)
	}
}

// Perlin returns a field whose angle follows 2D Perlin noise over the
// canvas, normalized to [0, 1] in both directions and then scaled and offset.
// Noise values in [-1, 1] map to angles in [0, 2π].
func Perlin(canvas flowfield.Size, p config.PerlinField, seed int64) flowfield.FieldFunc {
	noise := perlin.NewPerlin(p.Alpha, p.Beta, int32(p.Octaves), seed)
	return func(pt flowfield.Point) float64 {
		x := p.Offset.X + pt.X/canvas.Width*p.Scale
		y := p.Offset.Y + pt.Y/canvas.Height*p.Scale
		return (noise.Noise2D(x, y) + 1) * math.Pi
	}
}

// Radial returns a field that swirls around a center given relative to the
// canvas. The further from the center, the more the direction is turned, by
// up to curveFactor half turns per canvas size.
func Radial(canvas flowfield.Size, r config.RadialField) flowfield.FieldFunc {
	return func(pt flowfield.Point) float64 {
		n := flowfield.Vec(pt.X/canvas.Width, pt.Y/canvas.Height).Sub(r.CenterOffset.Vec2())
		return n.Angle() + math.Pi*n.Hypot()*r.CurveFactor
	}
}

// Constant returns a field that points in the same direction everywhere.
func Constant(angle float64) flowfield.FieldFunc {
	return func(flowfield.Point) float64 { return angle }
}

// Grid returns a grid field covering the canvas with the configured cell
// overrides applied.
func Grid(canvas flowfield.Size, g config.GridField) (*flowfield.GridField, error) {
	gf, err := flowfield.NewGridField(canvas.Width, canvas.Height, g.CellSize)
	if err != nil {
		return nil, err
	}
	for _, c := range g.Cells {
		gf.SetCell(c.I, c.J, c.Angle)
	}
	return gf, nil
}
