package flowfield

import (
	"math"
)

// Ray is the parametric line P + t·V.
type Ray struct {
	P Point
	V Vec2
}

// At returns the point at parameter t.
func (r Ray) At(t float64) Point {
	return r.P.Translate(r.V.Mul(t))
}

// IntersectRay solves r.At(t) == o.At(u) for t and u. It reports false if
// the rays are parallel, that is if the determinant of the system is within
// machine epsilon of zero.
func (r Ray) IntersectRay(o Ray) (t, u float64, ok bool) {
	den := r.V.X*o.V.Y - r.V.Y*o.V.X
	if math.Abs(den) <= epsilon || math.IsNaN(den) {
		return 0, 0, false
	}
	dx := o.P.X - r.P.X
	dy := o.P.Y - r.P.Y
	t = (o.V.Y*dx - o.V.X*dy) / den
	u = (r.V.Y*dx - r.V.X*dy) / den
	return t, u, true
}

// IntersectSegment intersects the ray with the segment ab and returns the
// ray's parameter at the crossing. Only crossings strictly in front of the
// ray's origin (t > 0) and within the segment count. On a miss, including the
// parallel case, it returns -1 and false.
func (r Ray) IntersectSegment(a, b Point) (float64, bool) {
	t, u, ok := r.IntersectRay(Ray{P: a, V: b.Sub(a)})
	if !ok || t <= 0 || u < 0 || u > 1 {
		return -1, false
	}
	return t, true
}

// epsilon is the difference between 1 and the next representable float64.
const epsilon = 0x1p-52
