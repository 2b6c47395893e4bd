package preview

import "strings"

// dotBits maps a dot within a braille cell, by column and row, to its bit in
// the Unicode braille pattern.
var dotBits = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// dots is a canvas of braille cells, each holding 2×4 dots.
type dots struct {
	w, h  int // in cells
	cells []uint8
}

func newDots(w, h int) *dots {
	return &dots{w: max(w, 0), h: max(h, 0), cells: make([]uint8, max(w, 0)*max(h, 0))}
}

// set turns on the dot at (x, y) in dot coordinates. Dots outside the canvas
// are ignored.
func (d *dots) set(x, y int) {
	if x < 0 || y < 0 || x >= 2*d.w || y >= 4*d.h {
		return
	}
	d.cells[(y/4)*d.w+x/2] |= dotBits[x%2][y%4]
}

// line draws a Bresenham line between two dots, both included.
func (d *dots) line(x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := sign(x1-x0), sign(y1-y0)
	err := dx + dy
	for {
		d.set(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func (d *dots) String() string {
	var sb strings.Builder
	for y := range d.h {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, m := range d.cells[y*d.w : (y+1)*d.w] {
			if m == 0 {
				sb.WriteByte(' ')
			} else {
				sb.WriteRune(rune(0x2800 + int(m)))
			}
		}
	}
	return sb.String()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	if v < 0 {
		return -1
	}
	return 1
}
