package render

import (
	"fmt"
	"image/color"
	"math/rand/v2"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// ParseColor parses a color written as #RGB, #RRGGBB, #RRGGBBAA or as an SVG
// color name such as "tomato".
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	hex, ok := strings.CutPrefix(s, "#")
	if !ok {
		if c, ok := colornames.Map[strings.ToLower(s)]; ok {
			return c, nil
		}
		return color.RGBA{}, fmt.Errorf("unknown color %q", s)
	}

	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("malformed color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("malformed color %q", s)
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// Palette is the list of colors lines are drawn with.
type Palette []color.RGBA

func ParsePalette(names []string) (Palette, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("empty palette")
	}
	p := make(Palette, len(names))
	for i, name := range names {
		c, err := ParseColor(name)
		if err != nil {
			return nil, fmt.Errorf("palette entry %d: %w", i, err)
		}
		p[i] = c
	}
	return p, nil
}

// Segmented reports whether the line with the given ID picks a new random
// color for every sample. Roughly the given ratio of all lines is segmented.
func Segmented(lineID int, ratio float64) bool {
	if ratio <= 0 {
		return false
	}
	return float64((lineID+3)*13%100)/100 < ratio
}

// LineColor returns the color of a sample of the given line. Segmented lines
// draw a random entry for each call; all other lines cycle through the
// palette by ID.
func (p Palette) LineColor(lineID int, ratio float64, rnd *rand.Rand) color.RGBA {
	if Segmented(lineID, ratio) {
		return p[rnd.IntN(len(p))]
	}
	return p[lineID%len(p)]
}
