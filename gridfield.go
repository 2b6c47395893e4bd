package flowfield

import (
	"fmt"
	"math"
)

// DefaultGridAngle is the angle every cell of a new [GridField] starts with.
const DefaultGridAngle = math.Pi / 4

// AngleLerp interpolates between the angles a0 and a1 along the shorter arc of
// the circle. t = 0 yields a0 and t = 1 an angle equivalent to a1.
func AngleLerp(a0, a1, t float64) float64 {
	return a0 + shortAngleDist(a0, a1)*t
}

func shortAngleDist(a0, a1 float64) float64 {
	d := a1 - a0
	sign := 1.0
	if d < 0 {
		sign = -1
	} else if d == 0 {
		return 0
	}
	da := sign * math.Mod(math.Abs(d), 2*math.Pi)
	return sign*math.Mod(2*math.Abs(da), 2*math.Pi) - da
}

// GridField is a field function defined by a grid of angles, one per cell,
// interpolated bilinearly in between.
type GridField struct {
	width, height float64
	cellSize      float64
	nx, ny        int
	// angles[i*ny+j] is the angle of column i, row j.
	angles []float64
}

// NewGridField returns a grid of round(width/cellSize) × round(height/cellSize)
// cells, but at least one in each direction, all set to [DefaultGridAngle].
func NewGridField(width, height, cellSize float64) (*GridField, error) {
	if !(cellSize > 0) || math.IsInf(cellSize, 0) {
		return nil, fmt.Errorf("%w: got %g", ErrInvalidCellSize, cellSize)
	}
	if !(width >= 0) || !(height >= 0) || math.IsInf(width, 0) || math.IsInf(height, 0) {
		return nil, fmt.Errorf("%w: got %g×%g", ErrInvalidDomain, width, height)
	}
	nx, ny := max(math.Round(width/cellSize), 1), max(math.Round(height/cellSize), 1)
	if nx*ny > MaxGridCells {
		return nil, fmt.Errorf("%w: %g×%g cells of size %g exceed the limit of %d cells",
			ErrInvalidCellSize, nx, ny, cellSize, MaxGridCells)
	}
	gf := &GridField{
		width:    width,
		height:   height,
		cellSize: cellSize,
		nx:       int(nx),
		ny:       int(ny),
	}
	gf.angles = make([]float64, gf.nx*gf.ny)
	for i := range gf.angles {
		gf.angles[i] = DefaultGridAngle
	}
	return gf, nil
}

// Clone returns an independent copy of gf.
func (gf *GridField) Clone() *GridField {
	c := *gf
	c.angles = append([]float64(nil), gf.angles...)
	return &c
}

// GridSize returns the number of columns and rows.
func (gf *GridField) GridSize() (nx, ny int) { return gf.nx, gf.ny }

// CellSize returns the edge length of a cell.
func (gf *GridField) CellSize() float64 { return gf.cellSize }

// Cell returns the angle of column i, row j. Indices outside the grid are
// clamped to the nearest cell.
func (gf *GridField) Cell(i, j int) float64 {
	i = min(gf.nx-1, max(0, i))
	j = min(gf.ny-1, max(0, j))
	return gf.angles[i*gf.ny+j]
}

// SetCell sets the angle of column i, row j. Indices outside the grid are
// ignored.
func (gf *GridField) SetCell(i, j int, angle float64) {
	if i < 0 || i >= gf.nx || j < 0 || j >= gf.ny {
		return
	}
	gf.angles[i*gf.ny+j] = angle
}

// CellIndex returns the column and row of the cell containing pt, truncated
// toward zero.
func (gf *GridField) CellIndex(pt Point) (i, j int) {
	return int(pt.X / gf.cellSize), int(pt.Y / gf.cellSize)
}

// Angle returns the field direction at pt. It can be used as a [FieldFunc].
func (gf *GridField) Angle(pt Point) float64 {
	i, j := gf.CellIndex(pt)
	ax := math.Mod(pt.X, gf.cellSize) / gf.cellSize
	ay := math.Mod(pt.Y, gf.cellSize) / gf.cellSize
	return AngleLerp(
		AngleLerp(gf.Cell(i, j), gf.Cell(i+1, j), ax),
		AngleLerp(gf.Cell(i, j+1), gf.Cell(i+1, j+1), ax),
		ay,
	)
}

func (gf *GridField) step(pt Point, length float64) Point {
	return pt.Translate(Polar(length, gf.Angle(pt)))
}

// Trace follows the field from origin for n steps of the given length and
// returns the points reached. The origin itself is not part of the curve.
func (gf *GridField) Trace(origin Point, length float64, n int) Curve {
	c := make(Curve, 0, max(n, 0))
	pt := origin
	for range n {
		pt = gf.step(pt, length)
		c = append(c, pt)
	}
	return c
}

// AdvectCurve moves every vertex of c along the field for n steps of the given
// length and returns the displaced curve.
func (gf *GridField) AdvectCurve(c Curve, length float64, n int) Curve {
	out := c.Clone()
	for i, pt := range out {
		for range n {
			pt = gf.step(pt, length)
		}
		out[i] = pt
	}
	return out
}
