package flowfield

import "math"

// Line represents a line segment.
type Line struct {
	// The line's start point.
	P0 Point
	// The line's end point.
	P1 Point
}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

// Computes the point where two lines, if extended to infinity, would cross.
func (l Line) CrossingPoint(o Line) (Point, bool) {
	ab := l.P1.Sub(l.P0)
	cd := o.P1.Sub(o.P0)
	pcd := ab.Cross(cd)
	if pcd == 0 {
		return Point{}, false
	}
	h := ab.Cross(l.P0.Sub(o.P0)) / pcd
	return o.P0.Translate(cd.Mul(h)), true
}

// Intersect returns the point where the two segments cross. Parallel segments
// never intersect.
func (l Line) Intersect(o Line) (Point, bool) {
	r := l.Ray()
	t, u, ok := r.IntersectRay(o.Ray())
	if !ok || t < 0 || t > 1 || u < 0 || u > 1 {
		return Point{}, false
	}
	return r.At(t), true
}

// Ray returns the ray starting at P0 whose direction vector reaches P1 at
// parameter 1.
func (l Line) Ray() Ray {
	return Ray{P: l.P0, V: l.P1.Sub(l.P0)}
}

func (l Line) IsInf() bool {
	return l.P0.IsInf() || l.P1.IsInf()
}

func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

// Nearest returns the squared distance from pt to the closest point on the
// segment and that point's parameter.
func (l Line) Nearest(pt Point) (distSq, t float64) {
	d := l.P1.Sub(l.P0)
	dotp := d.Dot(pt.Sub(l.P0))
	dSquared := d.Dot(d)
	if dotp <= 0.0 {
		return pt.Sub(l.P0).Hypot2(), 0.0
	} else if dotp >= dSquared {
		return pt.Sub(l.P1).Hypot2(), 1.0
	} else {
		t := dotp / dSquared
		dist := pt.Sub(l.Eval(t)).Hypot2()
		return dist, t
	}
}

// Distance returns the distance from pt to the segment.
func (l Line) Distance(pt Point) float64 {
	d, _ := l.Nearest(pt)
	return math.Sqrt(d)
}
