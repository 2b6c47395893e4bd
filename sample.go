package flowfield

import "fmt"

const (
	// DefaultSampleLength is the step length of a freshly taken sample.
	DefaultSampleLength = 10
	// DefaultSampleWidth is the width of a freshly taken sample.
	DefaultSampleWidth = 2
)

// A FieldFunc maps a position to the direction of the field there, in
// radians. It must return a finite angle for every position inside the
// domain of the [FlowField] it is used with.
type FieldFunc func(Point) float64

// Sample is the field direction observed at a point, along with the step that
// leads from it to the next sample of its streamline.
type Sample struct {
	Point
	// Angle is the direction of the field at Point, in radians.
	Angle float64
	// Length is the distance to the next sample along the line.
	Length float64
	// Width is the thickness of the line at this sample.
	Width float64
	// LineID identifies the streamline the sample belongs to.
	LineID int
}

func (s Sample) String() string {
	return fmt.Sprintf("%s∠%g (len %g, width %g, line %d)", s.Point, s.Angle, s.Length, s.Width, s.LineID)
}

// Vector returns the step from s to the next sample: Length along Angle.
func (s Sample) Vector() Vec2 {
	return Polar(s.Length, s.Angle)
}

// EndPoint returns the position reached by taking the sample's step.
func (s Sample) EndPoint() Point {
	return s.Translate(s.Vector())
}

// Segment returns the stroke a sample is drawn as: its step vector, centered
// on the sample and extended by the same amount backward.
func (s Sample) Segment() Line {
	v := s.Vector()
	return Line{P0: s.Translate(v.Negate()), P1: s.Translate(v)}
}
