// Package export writes committed streamlines as GeoJSON line strings in
// canvas coordinates.
package export

import (
	"fmt"
	"io"
	"math"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/planar"
	"gonum.org/v1/gonum/stat"

	"honnef.co/go/flowfield"
)

type Options struct {
	// Tolerance simplifies each line with Douglas-Peucker before export.
	// Zero keeps every sample.
	Tolerance float64
	// Smooth is the number of rounds of corner cutting applied after
	// simplification.
	Smooth int
	// RunID tags the collection and its features. Empty generates a new one.
	RunID string
}

// LineString converts a curve to an orb line string.
func LineString(c flowfield.Curve) orb.LineString {
	ls := make(orb.LineString, len(c))
	for i, pt := range c {
		ls[i] = orb.Point{pt.X, pt.Y}
	}
	return ls
}

// Collection returns one feature per streamline of ff with at least two
// samples. Every feature carries the line ID, its sample count, its mean width
// and the length of the exported geometry.
func Collection(ff *flowfield.FlowField, lines []flowfield.Streamline, opts Options) *geojson.FeatureCollection {
	run := opts.RunID
	if run == "" {
		run = uuid.New().String()
	}

	fc := geojson.NewFeatureCollection()
	fc.ExtraMembers = geojson.Properties{"run": run}
	bound := orb.Bound{Min: orb.Point{math.Inf(1), math.Inf(1)}, Max: orb.Point{math.Inf(-1), math.Inf(-1)}}

	for _, l := range lines {
		samples := l.Samples(ff)
		if len(samples) < 2 {
			continue
		}
		c := make(flowfield.Curve, len(samples))
		widths := make([]float64, len(samples))
		for i, s := range samples {
			c[i] = s.Point
			widths[i] = s.Width
		}
		if opts.Tolerance > 0 {
			c = c.Subsample(opts.Tolerance, math.MaxInt)
		}
		for range opts.Smooth {
			c = c.Chaikin(false)
		}

		ls := LineString(c)
		feature := geojson.NewFeature(ls)
		feature.ID = l.ID
		feature.Properties = geojson.Properties{
			"run":     run,
			"line":    l.ID,
			"samples": len(samples),
			"width":   stat.Mean(widths, nil),
			"length":  planar.Length(ls),
		}
		fc.Append(feature)
		bound = bound.Union(ls.Bound())
	}

	if len(fc.Features) > 0 {
		fc.BBox = geojson.NewBBox(bound)
	}
	return fc
}

// Write encodes fc to w.
func Write(w io.Writer, fc *geojson.FeatureCollection) error {
	data, err := fc.MarshalJSON()
	if err != nil {
		return fmt.Errorf("encode geojson: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write geojson: %w", err)
	}
	return nil
}
