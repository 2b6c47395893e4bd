// Package render draws populated flow fields as raster or vector images.
package render

import (
	"fmt"
	"image/color"
	"math/rand/v2"

	"honnef.co/go/flowfield"
	"honnef.co/go/flowfield/internal/config"
	"honnef.co/go/flowfield/internal/frame"
)

// Canvas is a drawing surface. Coordinates are in canvas pixels.
type Canvas interface {
	// Fill paints the whole canvas.
	Fill(c color.RGBA)
	FillRect(r flowfield.MBR, c color.RGBA)
	FillCircle(circ flowfield.Circle, c color.RGBA)
	StrokeLine(l flowfield.Line, width float64, c color.RGBA)
}

// Scene holds everything needed to draw a set of samples besides the samples
// themselves.
type Scene struct {
	Style          config.LineStyle
	Border         color.RGBA
	Background     color.RGBA
	Palette        Palette
	SegmentedRatio float64
	BorderFrame    frame.Frame
	BackgroundArea frame.Frame
	// Rand picks the colors of segmented lines.
	Rand *rand.Rand
}

// NewScene resolves the rendering and framing configuration of cfg.
func NewScene(cfg config.Config, rnd *rand.Rand) (*Scene, error) {
	r := cfg.Rendering
	border, err := ParseColor(r.BorderColor)
	if err != nil {
		return nil, fmt.Errorf("border color: %w", err)
	}
	bg, err := ParseColor(r.BackgroundColor)
	if err != nil {
		return nil, fmt.Errorf("background color: %w", err)
	}
	p, err := ParsePalette(r.Palette)
	if err != nil {
		return nil, err
	}
	if rnd == nil {
		rnd = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	size := cfg.Canvas.Size()
	return &Scene{
		Style:          r.LineStyle,
		Border:         border,
		Background:     bg,
		Palette:        p,
		SegmentedRatio: r.SegmentedRatio,
		BorderFrame:    frame.New(cfg.Framing.Border, size),
		BackgroundArea: frame.New(cfg.Framing.Background, size),
		Rand:           rnd,
	}, nil
}

// Draw paints the border color over the whole canvas, the background frame on
// top of it and then every sample inside the border frame.
func (sc *Scene) Draw(cv Canvas, samples []flowfield.Sample) {
	cv.Fill(sc.Border)
	switch sc.BackgroundArea.Shape() {
	case config.Circle:
		cv.FillCircle(sc.BackgroundArea.Circle(), sc.Background)
	default:
		cv.FillRect(sc.BackgroundArea.Rect(), sc.Background)
	}

	for _, s := range samples {
		if !sc.BorderFrame.Contains(s.Point) {
			continue
		}
		c := sc.Palette.LineColor(s.LineID, sc.SegmentedRatio, sc.Rand)
		switch sc.Style {
		case config.Dotted:
			cv.FillCircle(flowfield.Circle{Center: s.Point, Radius: s.Width / 2}, c)
		default:
			cv.StrokeLine(s.Segment(), s.Width, c)
		}
	}
}
