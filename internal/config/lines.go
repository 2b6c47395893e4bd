package config

import (
	"log/slog"
	"math/rand/v2"

	"honnef.co/go/flowfield"
)

// widthLevels is the number of distinct line widths between the minimum and
// the maximum thickness.
const widthLevels = 100

// StepLength returns the step length of every sample.
func (l Lines) StepLength(flowfield.Sample) float64 {
	return l.SegmentLength
}

// StepWidth returns the width of a sample's line. Widths vary from line to
// line in a fixed pseudo-random order.
func (l Lines) StepWidth(s flowfield.Sample) float64 {
	ratio := float64((s.LineID+17)*19%widthLevels) / widthLevels
	return l.MinThickness + (l.MaxThickness-l.MinThickness)*ratio
}

// CellSize returns the grid cell size of the flow field. Lines never come
// closer than the maximum thickness, so a cell of that size holds few
// samples.
func (l Lines) CellSize() float64 {
	return l.MaxThickness
}

// Sampler returns the sampler configuration for these line parameters.
func (l Lines) Sampler(log *slog.Logger, rnd *rand.Rand) flowfield.Config {
	return flowfield.Config{
		MaxLineCount:      l.MaxCount,
		DSep:              l.MaxThickness,
		DTest:             l.MaxThickness * l.DistanceFactor,
		WidthAwareSpacing: l.WidthAwareSpacing,
		MaxSteps:          l.MaxLength,
		Jitter:            flowfield.DefaultJitter,
		StepLength:        l.StepLength,
		StepWidth:         l.StepWidth,
		Logger:            log,
		Rand:              rnd,
	}
}
