package render

import (
	"bytes"
	"image/color"
	"image/png"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/colornames"

	"honnef.co/go/flowfield"
	"honnef.co/go/flowfield/internal/config"
)

var (
	red   = color.RGBA{0xff, 0, 0, 0xff}
	green = color.RGBA{0, 0xff, 0, 0xff}
	blue  = color.RGBA{0, 0, 0xff, 0xff}
	black = color.RGBA{0, 0, 0, 0xff}
	white = color.RGBA{0xff, 0xff, 0xff, 0xff}
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
	}{
		{"#FF0000", red},
		{"#0f0", green},
		{" #0000ff ", blue},
		{"#11223344", color.RGBA{0x11, 0x22, 0x33, 0x44}},
		{"Tomato", colornames.Tomato},
		{"black", black},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	for _, in := range []string{"#12", "#GGGGGG", "nocolor", ""} {
		_, err := ParseColor(in)
		assert.Error(t, err, in)
	}
}

func TestParsePalette(t *testing.T) {
	p, err := ParsePalette(config.Default().Rendering.Palette)
	require.NoError(t, err)
	require.Equal(t, Palette{red, green, blue}, p)

	_, err = ParsePalette(nil)
	require.Error(t, err)
	_, err = ParsePalette([]string{"red", "#zz"})
	require.ErrorContains(t, err, "palette entry 1")
}

func TestLineColor(t *testing.T) {
	p := Palette{red, green, blue}
	rnd := rand.New(rand.NewPCG(1, 1))
	for id, want := range []color.RGBA{red, green, blue, red} {
		assert.Equal(t, want, p.LineColor(id, 0, rnd))
	}

	// (0+3)·13 mod 100 = 39 and (1+3)·13 mod 100 = 52.
	assert.True(t, Segmented(0, 0.5))
	assert.False(t, Segmented(1, 0.5))
	assert.False(t, Segmented(0, 0))
	for id := range 100 {
		assert.True(t, Segmented(id, 1))
	}

	// A segmented line still only uses palette colors.
	for range 20 {
		assert.Contains(t, p, p.LineColor(0, 1, rnd))
	}
}

type op struct {
	kind  string
	color color.RGBA
	rect  flowfield.MBR
	circ  flowfield.Circle
	line  flowfield.Line
	width float64
}

type recorder struct{ ops []op }

func (r *recorder) Fill(c color.RGBA) { r.ops = append(r.ops, op{kind: "fill", color: c}) }
func (r *recorder) FillRect(b flowfield.MBR, c color.RGBA) {
	r.ops = append(r.ops, op{kind: "rect", rect: b, color: c})
}
func (r *recorder) FillCircle(circ flowfield.Circle, c color.RGBA) {
	r.ops = append(r.ops, op{kind: "circle", circ: circ, color: c})
}
func (r *recorder) StrokeLine(l flowfield.Line, width float64, c color.RGBA) {
	r.ops = append(r.ops, op{kind: "line", line: l, width: width, color: c})
}

func testConfig() config.Config {
	cfg := config.Default()
	cfg.Canvas = config.Canvas{Width: 100, Height: 100}
	cfg.Framing.Border = config.Frame{Shape: config.Rectangle, Scale: config.Vec{X: 0.5, Y: 0.5}}
	cfg.Framing.Background = config.Frame{Shape: config.Circle, Scale: config.Vec{X: 0.8}}
	return cfg
}

func testSamples() []flowfield.Sample {
	return []flowfield.Sample{
		{Point: flowfield.Pt(50, 50), Angle: 0, Length: 5, Width: 4, LineID: 0},
		{Point: flowfield.Pt(10, 10), Angle: 0, Length: 5, Width: 4, LineID: 0},
		{Point: flowfield.Pt(60, 40), Angle: 0, Length: 2, Width: 6, LineID: 1},
	}
}

func TestSceneSolid(t *testing.T) {
	sc, err := NewScene(testConfig(), nil)
	require.NoError(t, err)

	var rec recorder
	sc.Draw(&rec, testSamples())
	want := []op{
		{kind: "fill", color: white},
		{kind: "circle", circ: flowfield.Circle{Center: flowfield.Pt(50, 50), Radius: 40}, color: black},
		{kind: "line", line: flowfield.Line{P0: flowfield.Pt(45, 50), P1: flowfield.Pt(55, 50)}, width: 4, color: red},
		// The sample at (10, 10) lies outside the border frame.
		{kind: "line", line: flowfield.Line{P0: flowfield.Pt(58, 40), P1: flowfield.Pt(62, 40)}, width: 6, color: green},
	}
	require.Equal(t, want, rec.ops)
}

func TestSceneDotted(t *testing.T) {
	cfg := testConfig()
	cfg.Rendering.LineStyle = config.Dotted
	cfg.Framing.Background = config.Frame{Shape: config.Rectangle, Scale: config.Vec{X: 1, Y: 0.5}}
	sc, err := NewScene(cfg, rand.New(rand.NewPCG(3, 4)))
	require.NoError(t, err)

	var rec recorder
	sc.Draw(&rec, testSamples())
	require.Len(t, rec.ops, 4)
	require.Equal(t, op{kind: "rect", rect: flowfield.MBR{Min: flowfield.Pt(0, 25), Max: flowfield.Pt(100, 75)}, color: black}, rec.ops[1])
	require.Equal(t, op{kind: "circle", circ: flowfield.Circle{Center: flowfield.Pt(50, 50), Radius: 2}, color: red}, rec.ops[2])
	require.Equal(t, op{kind: "circle", circ: flowfield.Circle{Center: flowfield.Pt(60, 40), Radius: 3}, color: green}, rec.ops[3])
}

func TestNewSceneErrors(t *testing.T) {
	cfg := testConfig()
	cfg.Rendering.BorderColor = "#nope"
	_, err := NewScene(cfg, nil)
	require.ErrorContains(t, err, "border color")

	cfg = testConfig()
	cfg.Rendering.BackgroundColor = "mauve-ish"
	_, err = NewScene(cfg, nil)
	require.ErrorContains(t, err, "background color")
}

func TestRaster(t *testing.T) {
	r := NewRaster(20, 20)
	r.Fill(red)
	r.FillRect(flowfield.MBR{Min: flowfield.Pt(5, 5), Max: flowfield.Pt(15, 15)}, green)
	r.StrokeLine(flowfield.Line{P0: flowfield.Pt(2, 10), P1: flowfield.Pt(18, 10)}, 4, blue)

	img := r.Image()
	assert.Equal(t, color.RGBAModel.Convert(red), color.RGBAModel.Convert(img.At(0, 0)))
	assert.Equal(t, color.RGBAModel.Convert(green), color.RGBAModel.Convert(img.At(6, 6)))
	assert.Equal(t, color.RGBAModel.Convert(blue), color.RGBAModel.Convert(img.At(10, 10)))

	var buf bytes.Buffer
	require.NoError(t, r.EncodePNG(&buf))
	dec, err := png.Decode(&buf)
	require.NoError(t, err)
	require.Equal(t, 20, dec.Bounds().Dx())
	require.Equal(t, 20, dec.Bounds().Dy())
}

func TestVector(t *testing.T) {
	var buf bytes.Buffer
	v := NewVector(&buf, 20, 10)
	v.Fill(white)
	v.FillCircle(flowfield.Circle{Center: flowfield.Pt(10, 5), Radius: 2.5}, color.RGBA{0, 0, 0, 0x80})
	v.StrokeLine(flowfield.Line{P0: flowfield.Pt(1, 1), P1: flowfield.Pt(3.25, 1)}, 0.5, blue)
	v.Close()

	out := buf.String()
	for _, s := range []string{
		`viewBox="0 0 2000 1000"`,
		`style="fill:rgb(255,255,255)"`,
		`fill:rgb(0,0,0);fill-opacity:0.502`,
		`r="250"`,
		`x2="325"`,
		`style="stroke:rgb(0,0,255);stroke-width:50"`,
		"</svg>",
	} {
		assert.True(t, strings.Contains(out, s), "missing %s in\n%s", s, out)
	}
}
