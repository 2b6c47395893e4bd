package render

import (
	"fmt"
	"image/color"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"

	"honnef.co/go/flowfield"
)

// svgUnits is the number of user units per canvas pixel. The SVG writer only
// accepts integer coordinates, so drawing happens on a finer grid that the
// view box scales back down.
const svgUnits = 100

// Vector writes the drawing as SVG. Call Close to finish the document.
type Vector struct {
	svg           *svg.SVG
	width, height int
}

func NewVector(w io.Writer, width, height int) *Vector {
	s := svg.New(w)
	s.Startview(width, height, 0, 0, width*svgUnits, height*svgUnits)
	return &Vector{svg: s, width: width, height: height}
}

func units(v float64) int { return int(math.Round(v * svgUnits)) }

func rgb(c color.RGBA) string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}

func fill(c color.RGBA) string {
	s := "fill:" + rgb(c)
	if c.A != 0xff {
		s += fmt.Sprintf(";fill-opacity:%.3g", float64(c.A)/0xff)
	}
	return s
}

func (v *Vector) Fill(c color.RGBA) {
	v.svg.Rect(0, 0, v.width*svgUnits, v.height*svgUnits, fill(c))
}

func (v *Vector) FillRect(b flowfield.MBR, c color.RGBA) {
	sz := b.Size()
	v.svg.Rect(units(b.Min.X), units(b.Min.Y), units(sz.Width), units(sz.Height), fill(c))
}

func (v *Vector) FillCircle(circ flowfield.Circle, c color.RGBA) {
	v.svg.Circle(units(circ.Center.X), units(circ.Center.Y), units(math.Abs(circ.Radius)), fill(c))
}

func (v *Vector) StrokeLine(l flowfield.Line, width float64, c color.RGBA) {
	style := fmt.Sprintf("stroke:%s;stroke-width:%d", rgb(c), units(width))
	if c.A != 0xff {
		style += fmt.Sprintf(";stroke-opacity:%.3g", float64(c.A)/0xff)
	}
	v.svg.Line(units(l.P0.X), units(l.P0.Y), units(l.P1.X), units(l.P1.Y), style)
}

func (v *Vector) Close() { v.svg.End() }
