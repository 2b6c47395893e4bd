// Package frame implements the rectangular and circular frames that bound the
// visible part of a flow field.
package frame

import (
	"honnef.co/go/flowfield"
	"honnef.co/go/flowfield/internal/config"
)

// Frame is a shape centered on the canvas and scaled relative to it.
//
// Containment is tested in normalized canvas coordinates, where the canvas
// spans [0, 1] in both directions. On a canvas that isn't square, a circular
// frame therefore admits an ellipse of samples, while it is drawn as a circle
// fitting the shorter side.
type Frame struct {
	shape  config.Shape
	scale  config.Vec
	canvas flowfield.Size
}

func New(f config.Frame, canvas flowfield.Size) Frame {
	return Frame{shape: f.Shape, scale: f.Scale, canvas: canvas}
}

func (f Frame) Shape() config.Shape { return f.shape }

// Normalize maps pt from canvas to normalized coordinates.
func (f Frame) Normalize(pt flowfield.Point) flowfield.Point {
	return flowfield.Pt(pt.X/f.canvas.Width, pt.Y/f.canvas.Height)
}

// Contains reports whether pt, in canvas coordinates, is inside the frame.
// The edges of a rectangle are inside, the edge of a circle is not.
func (f Frame) Contains(pt flowfield.Point) bool {
	n := f.Normalize(pt)
	switch f.shape {
	case config.Circle:
		return flowfield.Circle{Center: flowfield.Pt(0.5, 0.5), Radius: f.scale.X / 2}.Contains(n)
	default:
		lo := flowfield.Pt((1-f.scale.X)/2, (1-f.scale.Y)/2)
		hi := flowfield.Pt(1-lo.X, 1-lo.Y)
		return flowfield.MBR{Min: lo, Max: hi}.PointDistance(n) == 0
	}
}

// Rect returns the rectangle covered by a rectangular frame, in canvas
// coordinates.
func (f Frame) Rect() flowfield.MBR {
	w, h := f.canvas.Width*f.scale.X, f.canvas.Height*f.scale.Y
	min := flowfield.Pt((f.canvas.Width-w)/2, (f.canvas.Height-h)/2)
	return flowfield.MBR{Min: min, Max: flowfield.Pt(min.X+w, min.Y+h)}
}

// Circle returns the circle drawn for a circular frame, in canvas
// coordinates.
func (f Frame) Circle() flowfield.Circle {
	return flowfield.Circle{
		Center: f.canvas.Center(),
		Radius: f.canvas.MinSide() / 2 * f.scale.X,
	}
}
