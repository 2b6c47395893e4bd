package flowfield

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Curve is a polyline: an ordered sequence of points. Whether it is closed is
// decided by the caller and passed to the methods that care; the curve does
// not store it.
//
// Methods never modify the receiver. Those that produce a new curve return a
// freshly allocated one.
type Curve []Point

// Blob returns a closed curve approximating a circle of the given radius
// around origin with the given number of vertices.
func Blob(origin Point, radius float64, segments int) Curve {
	c := make(Curve, 0, max(segments, 0))
	for i := range segments {
		th := float64(i) * 2 * math.Pi / float64(segments)
		c = append(c, origin.Translate(Polar(radius, th)))
	}
	return c
}

// Clone returns a copy of c.
func (c Curve) Clone() Curve {
	if c == nil {
		return nil
	}
	return append(Curve(nil), c...)
}

// ArcLength returns, for every vertex, the length of the polyline from the
// first vertex up to it. The first element is always 0.
func (c Curve) ArcLength() []float64 {
	if len(c) == 0 {
		return nil
	}
	seg := make([]float64, len(c))
	for i := 1; i < len(c); i++ {
		seg[i] = c[i].Distance(c[i-1])
	}
	return floats.CumSum(make([]float64, len(seg)), seg)
}

// Perimeter returns the total length of the polyline. Curves with fewer than
// two points have length 0.
func (c Curve) Perimeter() float64 {
	if len(c) == 0 {
		return 0
	}
	al := c.ArcLength()
	return al[len(al)-1]
}

// Area returns twice the signed area enclosed by the curve, treated as closed,
// as given by the shoelace formula. The sign encodes the winding direction.
func (c Curve) Area() float64 {
	var s float64
	for i := range c {
		j := (i + 1) % len(c)
		s += c[i].X*c[j].Y - c[i].Y*c[j].X
	}
	return s
}

// Centroid returns the arithmetic mean of the vertices. It reports false for
// an empty curve.
func (c Curve) Centroid() (Point, bool) {
	if len(c) == 0 {
		return Point{}, false
	}
	var p Point
	for _, q := range c {
		p.X += q.X
		p.Y += q.Y
	}
	n := float64(len(c))
	return Point{X: p.X / n, Y: p.Y / n}, true
}

// MBR returns the bounding rectangle of the vertices.
func (c Curve) MBR() MBR {
	return NewMBR(c...)
}

// Contains reports whether pt lies inside the curve, treated as a closed
// simple polygon, using the even-odd rule.
func (c Curve) Contains(pt Point) bool {
	if len(c) == 0 {
		return false
	}
	inside := false
	q := c[len(c)-1]
	for _, p := range c {
		if (p.Y > pt.Y) != (q.Y > pt.Y) &&
			pt.X < (q.X-p.X)*(pt.Y-p.Y)/(q.Y-p.Y)+p.X {
			inside = !inside
		}
		q = p
	}
	return inside
}

// Subsample simplifies the curve with the Douglas-Peucker algorithm. Vertices
// farther than tol from the simplified curve are kept, up to a total of count
// vertices, in the order the algorithm would include them. The first and last
// vertices are always kept when count ≥ 2.
//
// Use math.MaxInt as count to simplify by tolerance alone, and 0 as tol to
// simplify by count alone.
func (c Curve) Subsample(tol float64, count int) Curve {
	rank := c.DouglasPeuckerRank(tol)
	var out Curve
	for i, r := range rank {
		if r >= 0 && r < count {
			out = append(out, c[i])
		}
	}
	return out
}

// dpSpan is a span of a polyline together with its vertex farthest from the
// chord connecting the span's ends.
type dpSpan struct {
	first, last int
	farthest    int
	dist        float64
}

func newDPSpan(c Curve, first, last int) dpSpan {
	span := dpSpan{first: first, last: last, farthest: first + 1}
	a, b := c[first], c[last]
	for i := first + 1; i < last; i++ {
		if d := c[i].DistanceToSegment(a, b); d > span.dist {
			span.dist = d
			span.farthest = i
		}
	}
	return span
}

// DouglasPeuckerRank returns, for every vertex, its rank in the order of
// inclusion imposed by the Douglas-Peucker algorithm: the vertex with rank k
// is the (k+1)th one to be included in a simplification. The endpoints have
// ranks 0 and 1. Vertices that are closer than tol to the simplified curve are
// never included and have rank -1.
func (c Curve) DouglasPeuckerRank(tol float64) []int {
	if len(c) == 0 {
		return nil
	}
	rank := make([]int, len(c))
	for i := range rank {
		rank[i] = -1
	}
	rank[0] = 0
	if len(c) == 1 {
		return rank
	}
	rank[len(c)-1] = 1
	if len(c) == 2 {
		return rank
	}

	pq := NewBinaryHeap(func(s dpSpan) float64 { return -s.dist })
	pq.Push(newDPSpan(c, 0, len(c)-1))
	next := 2
	for {
		span, ok := pq.Pop()
		if !ok || span.dist < tol {
			break
		}
		rank[span.farthest] = next
		next++
		if span.farthest > span.first+1 {
			pq.Push(newDPSpan(c, span.first, span.farthest))
		}
		if span.last > span.farthest+1 {
			pq.Push(newDPSpan(c, span.farthest, span.last))
		}
	}
	return rank
}

// Chaikin performs one round of Chaikin corner cutting: every edge is replaced
// by the points at ¼ and ¾ of its length. Open curves keep their first and
// last vertex.
func (c Curve) Chaikin(closed bool) Curve {
	if len(c) < 2 {
		return c.Clone()
	}
	out := make(Curve, 0, 2*len(c))
	q, i := c[0], 1
	if closed {
		q, i = c[len(c)-1], 0
	}
	for ; i < len(c); i++ {
		p := c[i]
		if closed || i != 1 {
			out = append(out, q.Lerp(p, 0.25))
		} else {
			out = append(out, q)
		}
		if closed || i+1 < len(c) {
			out = append(out, q.Lerp(p, 0.75))
		} else {
			out = append(out, p)
		}
		q = p
	}
	return out
}

// Resample returns n points spaced evenly by arc length along the curve. For
// open curves the first and last points coincide with those of c. For closed
// curves the closing edge is included and the duplicate end point is dropped.
func (c Curve) Resample(n int, closed bool) Curve {
	if n <= 0 || len(c) == 0 {
		return nil
	}
	if len(c) == 1 || n == 1 {
		out := make(Curve, n)
		for i := range out {
			out[i] = c[0]
		}
		return out
	}

	src := c
	if closed {
		n++
		src = append(c.Clone(), c[0])
	}
	per := src.ArcLength()
	step := per[len(per)-1] / float64(n-1)

	out := make(Curve, 0, n)
	out = append(out, src[0])
	j := 0
	for i := 1; i < n; i++ {
		d := step * float64(i)
		for j+1 < len(src)-1 && per[j+1] < d {
			j++
		}
		rate := per[j+1] - per[j]
		alpha := 0.0
		if rate != 0 {
			alpha = (d - per[j]) / rate
		}
		out = append(out, src[j].Lerp(src[j+1], alpha))
	}
	if closed {
		out = out[:len(out)-1]
	}
	return out
}

// SplineResample returns n points sampled uniformly in parameter space from a
// Catmull-Rom spline that uses the vertices of c as control points. For open
// curves the first and last vertex are doubled so that the spline passes
// through them; closed curves wrap around.
func (c Curve) SplineResample(n int, closed bool, tension float64) Curve {
	if n <= 0 || len(c) == 0 {
		return nil
	}
	ctrl := c
	span := float64(len(c))
	if !closed {
		ctrl = make(Curve, 0, len(c)+2)
		ctrl = append(ctrl, c[0])
		ctrl = append(ctrl, c...)
		ctrl = append(ctrl, c[len(c)-1])
		span = float64(len(c) - 1)
	}
	cr := CatmullRom{Points: ctrl, Tension: tension}
	if n == 1 {
		return Curve{cr.Eval(0)}
	}
	f := span / float64(n-1)
	out := make(Curve, n)
	for i := range out {
		out[i] = cr.Eval(float64(i) * f)
	}
	return out
}
