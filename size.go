package flowfield

import "fmt"

type Size struct {
	Width  float64
	Height float64
}

// Sz returns the size w×h.
func Sz(w, h float64) Size {
	return Size{Width: w, Height: h}
}

func (sz Size) String() string {
	return fmt.Sprintf("%g×%g", sz.Width, sz.Height)
}

// MinSide returns the shorter of width and height.
func (sz Size) MinSide() float64 {
	return min(sz.Width, sz.Height)
}

// Center returns the center of the box spanning from the origin to sz.
func (sz Size) Center() Point {
	return Point{X: sz.Width / 2, Y: sz.Height / 2}
}
