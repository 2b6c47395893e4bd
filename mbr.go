package flowfield

import (
	"fmt"
	"math"
)

// MBR is a minimum bounding rectangle.
//
// The zero value is a degenerate box at the origin. Use [EmptyMBR] to start
// accumulating points: an empty MBR has Min = +∞ and Max = −∞ and is not
// [MBR.Valid] until at least one point has been added.
type MBR struct {
	Min Point
	Max Point
}

// EmptyMBR returns an MBR that contains nothing.
func EmptyMBR() MBR {
	return MBR{
		Min: Pt(math.Inf(1), math.Inf(1)),
		Max: Pt(math.Inf(-1), math.Inf(-1)),
	}
}

// NewMBR returns the bounding rectangle of pts. It is invalid if pts is empty.
func NewMBR(pts ...Point) MBR {
	r := EmptyMBR()
	for _, pt := range pts {
		r = r.Add(pt)
	}
	return r
}

func (r MBR) String() string {
	return fmt.Sprintf("[%s, %s]", r.Min, r.Max)
}

// Valid reports whether Min ≤ Max in both dimensions.
func (r MBR) Valid() bool {
	return r.Min.X <= r.Max.X && r.Min.Y <= r.Max.Y
}

// Size returns the extent of the box.
func (r MBR) Size() Size {
	return Size{
		Width:  r.Max.X - r.Min.X,
		Height: r.Max.Y - r.Min.Y,
	}
}

func (r MBR) Center() Point {
	return r.Min.Midpoint(r.Max)
}

// Add returns the bounding rectangle of r and pt.
func (r MBR) Add(pt Point) MBR {
	return MBR{
		Min: Pt(min(r.Min.X, pt.X), min(r.Min.Y, pt.Y)),
		Max: Pt(max(r.Max.X, pt.X), max(r.Max.Y, pt.Y)),
	}
}

// Contains reports whether the circle of the given radius around pt overlaps
// the box. With a radius of 0 this is a half-open point containment test.
func (r MBR) Contains(pt Point, radius float64) bool {
	return pt.X+radius >= r.Min.X &&
		pt.Y+radius >= r.Min.Y &&
		pt.X-radius < r.Max.X &&
		pt.Y-radius < r.Max.Y
}

// PointDistance returns the distance from pt to the closest point of the box.
// Points inside the box have distance 0.
func (r MBR) PointDistance(pt Point) float64 {
	dx := max(r.Min.X-pt.X, 0, pt.X-r.Max.X)
	dy := max(r.Min.Y-pt.Y, 0, pt.Y-r.Max.Y)
	return math.Hypot(dx, dy)
}

// Intersects reports whether r and o overlap with a non-zero area.
func (r MBR) Intersects(o MBR) bool {
	if max(r.Min.X, o.Min.X) >= min(r.Max.X, o.Max.X) {
		return false
	}
	return max(r.Min.Y, o.Min.Y) < min(r.Max.Y, o.Max.Y)
}

// Intersection returns the overlap of r and o. The result is invalid if they
// do not overlap.
func (r MBR) Intersection(o MBR) MBR {
	return MBR{
		Min: Pt(max(r.Min.X, o.Min.X), max(r.Min.Y, o.Min.Y)),
		Max: Pt(min(r.Max.X, o.Max.X), min(r.Max.Y, o.Max.Y)),
	}
}

// Union returns the smallest box enclosing r and o.
func (r MBR) Union(o MBR) MBR {
	return MBR{
		Min: Pt(min(r.Min.X, o.Min.X), min(r.Min.Y, o.Min.Y)),
		Max: Pt(max(r.Max.X, o.Max.X), max(r.Max.Y, o.Max.Y)),
	}
}

// Transform maps the two corners of r through aff and returns their bounding
// box. This is exact for scales and translations; under rotation or shear it
// is the box of the two mapped corners, not of the whole mapped rectangle.
func (r MBR) Transform(aff Affine) MBR {
	return NewMBR(r.Min.Transform(aff), r.Max.Transform(aff))
}
