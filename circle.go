package flowfield

import "math"

// Circle is a disc given by its center and radius. A negative radius describes
// the same disc as its absolute value.
type Circle struct {
	Center Point
	Radius float64
}

// Contains reports whether pt lies strictly inside the circle.
func (c Circle) Contains(pt Point) bool {
	return pt.Sub(c.Center).Hypot2() < c.Radius*c.Radius
}

func (c Circle) Area() float64 {
	return math.Pi * c.Radius * c.Radius
}

func (c Circle) MBR() MBR {
	r := math.Abs(c.Radius)
	return MBR{
		Min: Pt(c.Center.X-r, c.Center.Y-r),
		Max: Pt(c.Center.X+r, c.Center.Y+r),
	}
}

// Polygon approximates the circle by a closed curve with the given number of
// vertices, starting at angle 0.
func (c Circle) Polygon(segments int) Curve {
	return Blob(c.Center, math.Abs(c.Radius), segments)
}
