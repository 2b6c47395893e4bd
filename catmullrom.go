package flowfield

import "math"

// DefaultTension is the tension of the classical Catmull-Rom spline.
const DefaultTension = 0.5

// CatmullRom is a cardinal spline through a sequence of control points.
//
// Segment i is the cubic between control points i+1 and i+2, shaped by points
// i and i+3. Control point indices wrap around, so a spline over n points can
// be evaluated for u ∈ [0, n).
type CatmullRom struct {
	Points  []Point
	Tension float64
}

// NewCatmullRom returns a spline with the default tension.
func NewCatmullRom(pts []Point) CatmullRom {
	return CatmullRom{Points: pts, Tension: DefaultTension}
}

// blend returns the four basis weights at local parameter u ∈ [0, 1).
func (cr CatmullRom) blend(u float64) [4]float64 {
	tau := cr.Tension
	u2 := u * u
	u3 := u2 * u
	return [4]float64{
		-tau*u + 2*tau*u2 - tau*u3,
		1 + (tau-3)*u2 + (2-tau)*u3,
		tau*u + (3-2*tau)*u2 + (tau-2)*u3,
		-tau*u2 + tau*u3,
	}
}

// Eval returns the point of the spline at parameter u. The integer part of u
// selects the segment and the fractional part the position within it.
// Negative parameters are clamped to 0. Eval panics if the spline has no
// control points.
func (cr CatmullRom) Eval(u float64) Point {
	n := len(cr.Points)
	if n == 0 {
		panic("flowfield: CatmullRom.Eval on spline without control points")
	}
	u = max(u, 0)
	fi, frac := math.Modf(u)
	i := int(fi)
	b := cr.blend(frac)
	var x, y float64
	for k := range 4 {
		p := cr.Points[(i+k)%n]
		x += p.X * b[k]
		y += p.Y * b[k]
	}
	return Point{X: x, Y: y}
}
