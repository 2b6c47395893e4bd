package flowfield

import (
	"fmt"
	"math"
)

type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (pt Point) Splat() (float64, float64) {
	return pt.X, pt.Y
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

// Translate returns pt moved by v.
func (pt Point) Translate(v Vec2) Point {
	return Point{X: pt.X + v.X, Y: pt.Y + v.Y}
}

// Sub computes pt−o.
func (pt Point) Sub(o Point) Vec2 {
	return Vec2{X: pt.X - o.X, Y: pt.Y - o.Y}
}

// Lerp returns pt·(1−t) + o·t. This is the "mix" of two points.
func (pt Point) Lerp(o Point, t float64) Point {
	return Point(Vec2(pt).Lerp(Vec2(o), t))
}

// Midpoint returns the midpoint of two points.
func (pt Point) Midpoint(o Point) Point {
	return Point{
		X: 0.5 * (pt.X + o.X),
		Y: 0.5 * (pt.Y + o.Y),
	}
}

// Distance returns the euclidean distance between two points.
func (pt Point) Distance(o Point) float64 {
	return math.Hypot(pt.X-o.X, pt.Y-o.Y)
}

// DistanceSquared returns the squared euclidean distance between two points.
func (pt Point) DistanceSquared(o Point) float64 {
	x := pt.X - o.X
	y := pt.Y - o.Y
	return x*x + y*y
}

// minSegmentLength is the length below which a segment is treated as a single
// point by [Point.DistanceToSegment].
const minSegmentLength = 1e-5

// DistanceToSegment returns the distance from pt to the segment pq.
//
// Segments shorter than 1e-5 degenerate to the point p, so the result is
// always finite for finite inputs.
func (pt Point) DistanceToSegment(p, q Point) float64 {
	s := p.Distance(q)
	if s < minSegmentLength {
		return pt.Distance(p)
	}
	dir := q.Sub(p).Mul(1 / s)
	d := pt.Sub(p).Dot(dir)
	switch {
	case d < 0:
		return pt.Distance(p)
	case d > s:
		return pt.Distance(q)
	default:
		return p.Lerp(q, d/s).Distance(pt)
	}
}

// Transform applies aff to pt, including its translation.
func (pt Point) Transform(aff Affine) Point {
	return Point{
		X: aff.N0*pt.X + aff.N2*pt.Y + aff.N4,
		Y: aff.N1*pt.X + aff.N3*pt.Y + aff.N5,
	}
}

// Floor returns a new point with x and y rounded down to the nearest integers.
func (pt Point) Floor() Point {
	return Point{
		X: math.Floor(pt.X),
		Y: math.Floor(pt.Y),
	}
}

// IsInf reports whether at least one of x and y is infinite.
func (pt Point) IsInf() bool {
	return math.IsInf(pt.X, 0) || math.IsInf(pt.Y, 0)
}

// IsNaN reports whether at least one of x and y is NaN.
func (pt Point) IsNaN() bool {
	return math.IsNaN(pt.X) || math.IsNaN(pt.Y)
}

// det3 returns the determinant of the 3×3 matrix given in row-major order.
func det3(
	t00, t01, t02,
	t10, t11, t12,
	t20, t21, t22 float64,
) float64 {
	return t00*(t11*t22-t12*t21) +
		t01*(t12*t20-t10*t22) +
		t02*(t10*t21-t11*t20)
}

// Orient returns the orientation of the triangle (a, b, c): +1 if the
// vertices turn counter-clockwise in y-up space, -1 if clockwise and 0 if
// they are collinear.
func Orient(a, b, c Point) int {
	d := det3(
		1, 1, 1,
		a.X, b.X, c.X,
		a.Y, b.Y, c.Y,
	)
	switch {
	case d > 0:
		return 1
	case d < 0:
		return -1
	default:
		return 0
	}
}
