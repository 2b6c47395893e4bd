package render

import (
	"image"
	"image/color"
	"io"

	"github.com/fogleman/gg"

	"honnef.co/go/flowfield"
)

// Raster is an antialiased pixel canvas.
type Raster struct {
	ctx *gg.Context
}

func NewRaster(width, height int) *Raster {
	ctx := gg.NewContext(width, height)
	ctx.SetLineCapButt()
	return &Raster{ctx: ctx}
}

func (r *Raster) Fill(c color.RGBA) {
	r.ctx.SetColor(c)
	r.ctx.Clear()
}

func (r *Raster) FillRect(b flowfield.MBR, c color.RGBA) {
	sz := b.Size()
	r.ctx.SetColor(c)
	r.ctx.DrawRectangle(b.Min.X, b.Min.Y, sz.Width, sz.Height)
	r.ctx.Fill()
}

func (r *Raster) FillCircle(circ flowfield.Circle, c color.RGBA) {
	r.ctx.SetColor(c)
	r.ctx.DrawCircle(circ.Center.X, circ.Center.Y, circ.Radius)
	r.ctx.Fill()
}

func (r *Raster) StrokeLine(l flowfield.Line, width float64, c color.RGBA) {
	r.ctx.SetColor(c)
	r.ctx.SetLineWidth(width)
	r.ctx.DrawLine(l.P0.X, l.P0.Y, l.P1.X, l.P1.Y)
	r.ctx.Stroke()
}

func (r *Raster) Image() image.Image { return r.ctx.Image() }

func (r *Raster) EncodePNG(w io.Writer) error { return r.ctx.EncodePNG(w) }
