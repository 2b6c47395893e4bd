package flowfield

import (
	"fmt"
	"math"
)

// Vec2 is a displacement in the plane. Points and vectors are kept apart so
// that translating a position always reads as Point.Translate(Vec2).
type Vec2 struct {
	X float64
	Y float64
}

// Vec returns the vector ⟨x, y⟩.
func Vec(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// VecFromAngle returns a unit vector of the given angle, in radians. With θ = 0
// the result is ⟨1, 0⟩; at π/2 it is ⟨0, 1⟩, which is a clockwise turn on a
// y-down canvas.
func VecFromAngle(th float64) Vec2 {
	y, x := math.Sincos(th)
	return Vec2{X: x, Y: y}
}

// Polar returns the vector of length r pointing at angle th.
func Polar(r, th float64) Vec2 {
	return VecFromAngle(th).Mul(r)
}

func (v Vec2) Splat() (float64, float64) {
	return v.X, v.Y
}

func (v Vec2) String() string {
	return fmt.Sprintf("⟨%g, %g⟩", v.X, v.Y)
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Mul scales v by f.
func (v Vec2) Mul(f float64) Vec2 {
	return Vec2{X: v.X * f, Y: v.Y * f}
}

// Negate returns ⟨-x, -y⟩.
func (v Vec2) Negate() Vec2 {
	return Vec2{X: -v.X, Y: -v.Y}
}

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Cross returns the z component of the cross product of v and o.
func (v Vec2) Cross(o Vec2) float64 {
	return v.X*o.Y - v.Y*o.X
}

// Hypot returns the magnitude of the vector.
func (v Vec2) Hypot() float64 {
	return math.Hypot(v.X, v.Y)
}

// Hypot2 returns the squared magnitude of the vector.
func (v Vec2) Hypot2() float64 {
	return v.Dot(v)
}

// Angle returns atan2(y, x).
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// Normalize returns the unit vector with the same direction as v. It reports
// false for the zero vector, in which case the zero vector is returned.
func (v Vec2) Normalize() (Vec2, bool) {
	h := v.Hypot()
	if h == 0 || math.IsInf(h, 0) || math.IsNaN(h) {
		return Vec2{}, false
	}
	return v.Mul(1 / h), true
}

// Rotate returns v rotated by th radians.
func (v Vec2) Rotate(th float64) Vec2 {
	s, c := math.Sincos(th)
	return Vec2{
		X: c*v.X - s*v.Y,
		Y: s*v.X + c*v.Y,
	}
}

// Perp returns v rotated by a quarter turn.
func (v Vec2) Perp() Vec2 {
	return Vec2{X: -v.Y, Y: v.X}
}

// Lerp returns v·(1−t) + o·t.
func (v Vec2) Lerp(o Vec2, t float64) Vec2 {
	return Vec2{
		X: v.X*(1-t) + o.X*t,
		Y: v.Y*(1-t) + o.Y*t,
	}
}

// AngleBetween returns the unsigned angle between v and o, in [0, π]. Zero
// vectors yield 0.
func (v Vec2) AngleBetween(o Vec2) float64 {
	den := v.Hypot() * o.Hypot()
	if den == 0 {
		return 0
	}
	return math.Acos(min(max(v.Dot(o)/den, -1), 1))
}

// SignedAngle returns the angle by which v has to be rotated to become
// collinear with o.
func (v Vec2) SignedAngle(o Vec2) float64 {
	a := v.AngleBetween(o)
	if Orient(Point{}, Point(v), Point(o)) < 0 {
		return -a
	}
	return a
}

// IsInf reports whether at least one of x and y is infinite.
func (v Vec2) IsInf() bool {
	return math.IsInf(v.X, 0) || math.IsInf(v.Y, 0)
}

// IsNaN reports whether at least one of x and y is NaN.
func (v Vec2) IsNaN() bool {
	return math.IsNaN(v.X) || math.IsNaN(v.Y)
}
