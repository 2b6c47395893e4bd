package flowfield

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidCellSize is returned when a grid cell size is not positive.
	ErrInvalidCellSize = errors.New("flowfield: cell size must be positive")
	// ErrInvalidDomain is returned when a domain has a negative or non-finite
	// extent.
	ErrInvalidDomain = errors.New("flowfield: domain size must be finite and non-negative")
)

// MaxGridCells is the largest number of grid cells a [FlowField] or
// [GridField] may have.
const MaxGridCells = 1 << 24

// FlowField stores samples of a field function over the rectangle
// [0, width) × [0, height) and indexes them with a uniform grid, so that the
// samples near a position can be found without scanning all of them.
//
// Samples live in a single slice in insertion order; their index in that
// slice is their identity. Every grid cell holds the indices of the samples
// whose positions fall into it. Samples are never moved or removed
// individually, so each index stays in the cell it was first put in.
//
// A FlowField must not be modified concurrently. Queries may run concurrently
// with each other as long as no sample is being added.
type FlowField struct {
	width, height float64
	cellSize      float64
	nx, ny        int

	field   FieldFunc
	samples []Sample
	// cells[i*ny+j] lists the samples in column i, row j.
	cells [][]int
}

// New returns a flow field for fn with an empty domain. Call
// [FlowField.Initialize] before adding samples. A nil fn is treated as the
// constant field of angle 0.
func New(fn FieldFunc) *FlowField {
	ff := &FlowField{}
	ff.SetFieldFunc(fn)
	return ff
}

// SetFieldFunc replaces the field function used by [FlowField.Sample].
// Existing samples are kept.
func (ff *FlowField) SetFieldFunc(fn FieldFunc) {
	if fn == nil {
		fn = func(Point) float64 { return 0 }
	}
	ff.field = fn
}

// Initialize sets the domain size and the grid cell size, and discards all
// samples. The grid has ⌈width/cellSize⌉ × ⌈height/cellSize⌉ cells.
func (ff *FlowField) Initialize(width, height, cellSize float64) error {
	if !(cellSize > 0) || math.IsInf(cellSize, 0) {
		return fmt.Errorf("%w: got %g", ErrInvalidCellSize, cellSize)
	}
	if !(width >= 0) || !(height >= 0) || math.IsInf(width, 0) || math.IsInf(height, 0) {
		return fmt.Errorf("%w: got %g×%g", ErrInvalidDomain, width, height)
	}
	nx, ny := math.Ceil(width/cellSize), math.Ceil(height/cellSize)
	if nx*ny > MaxGridCells {
		return fmt.Errorf("%w: %g×%g cells of size %g exceed the limit of %d cells",
			ErrInvalidCellSize, nx, ny, cellSize, MaxGridCells)
	}
	ff.width = width
	ff.height = height
	ff.cellSize = cellSize
	ff.nx = int(nx)
	ff.ny = int(ny)
	ff.Clear()
	return nil
}

// Clear discards all samples but keeps the domain and grid geometry.
func (ff *FlowField) Clear() {
	ff.samples = nil
	ff.cells = make([][]int, ff.nx*ff.ny)
}

// Clone returns a deep copy of ff that shares only the field function.
func (ff *FlowField) Clone() *FlowField {
	c := *ff
	c.samples = append([]Sample(nil), ff.samples...)
	c.cells = make([][]int, len(ff.cells))
	for i, cell := range ff.cells {
		c.cells[i] = append([]int(nil), cell...)
	}
	return &c
}

// Size returns the extent of the domain.
func (ff *FlowField) Size() Size { return Sz(ff.width, ff.height) }

// CellSize returns the edge length of a grid cell.
func (ff *FlowField) CellSize() float64 { return ff.cellSize }

// GridSize returns the number of grid columns and rows.
func (ff *FlowField) GridSize() (nx, ny int) { return ff.nx, ff.ny }

// Len returns the number of samples.
func (ff *FlowField) Len() int { return len(ff.samples) }

// At returns the sample with index i.
func (ff *FlowField) At(i int) Sample { return ff.samples[i] }

// Samples returns all samples in insertion order. The slice is owned by ff
// and must not be modified.
func (ff *FlowField) Samples() []Sample { return ff.samples }

// InBounds reports whether pt lies inside the half-open domain
// [0, width) × [0, height).
func (ff *FlowField) InBounds(pt Point) bool {
	return pt.X >= 0 && pt.X < ff.width &&
		pt.Y >= 0 && pt.Y < ff.height
}

// Sample evaluates the field function at pt. The returned sample has the
// default length and width and belongs to line 0. It is not added to ff.
func (ff *FlowField) Sample(pt Point) Sample {
	return Sample{
		Point:  pt,
		Angle:  ff.field(pt),
		Length: DefaultSampleLength,
		Width:  DefaultSampleWidth,
	}
}

// CellIndex returns the column and row of the cell containing pt. The result
// may lie outside the grid for positions outside the domain.
func (ff *FlowField) CellIndex(pt Point) (i, j int) {
	return int(math.Floor(pt.X / ff.cellSize)), int(math.Floor(pt.Y / ff.cellSize))
}

func (ff *FlowField) validCell(i, j int) bool {
	return i >= 0 && i < ff.nx && j >= 0 && j < ff.ny
}

// AddSample appends s and indexes it by position. It returns the index of the
// new sample.
//
// Callers must only add samples whose position lies in a cell of the grid;
// AddSample panics otherwise.
func (ff *FlowField) AddSample(s Sample) int {
	i, j := ff.CellIndex(s.Point)
	if !ff.validCell(i, j) {
		panic(fmt.Sprintf("flowfield: sample at %s lies outside the %d×%d grid", s.Point, ff.nx, ff.ny))
	}
	idx := len(ff.samples)
	ff.samples = append(ff.samples, s)
	ff.cells[i*ff.ny+j] = append(ff.cells[i*ff.ny+j], idx)
	return idx
}

// AddSamples adds each of samples in order.
func (ff *FlowField) AddSamples(samples []Sample) {
	for _, s := range samples {
		ff.AddSample(s)
	}
}

// CellSamples returns the indices of the samples in column i, row j, in
// insertion order. It returns nil for cells outside the grid.
func (ff *FlowField) CellSamples(i, j int) []int {
	if !ff.validCell(i, j) {
		return nil
	}
	return ff.cells[i*ff.ny+j]
}

// SamplesInCell returns the samples in the cell containing pt.
func (ff *FlowField) SamplesInCell(pt Point) []Sample {
	idx := ff.CellSamples(ff.CellIndex(pt))
	out := make([]Sample, len(idx))
	for k, i := range idx {
		out[k] = ff.samples[i]
	}
	return out
}

// NeighboringSamples returns the samples in all cells within a Chebyshev
// distance of radius cells from the cell containing pt. This over-approximates
// the samples within radius·cellSize of pt; it does not filter by distance.
func (ff *FlowField) NeighboringSamples(pt Point, radius int) []Sample {
	var out []Sample
	ff.eachNeighbor(pt, radius, func(s Sample) {
		out = append(out, s)
	})
	return out
}

func (ff *FlowField) eachNeighbor(pt Point, radius int, fn func(Sample)) {
	ci, cj := ff.CellIndex(pt)
	for i := max(ci-radius, 0); i <= min(ci+radius, ff.nx-1); i++ {
		for j := max(cj-radius, 0); j <= min(cj+radius, ff.ny-1); j++ {
			for _, idx := range ff.cells[i*ff.ny+j] {
				fn(ff.samples[idx])
			}
		}
	}
}

// ClosestSample returns the sample closest to pt among
// [FlowField.NeighboringSamples](pt, radius). It reports false if there are no
// samples in that neighborhood. Samples outside the neighborhood are not
// considered even if they are closer than every sample within it; a radius of
// 1 is the cheap default.
func (ff *FlowField) ClosestSample(pt Point, radius int) (Sample, bool) {
	var (
		best  Sample
		bestD = math.Inf(1)
		found bool
	)
	ff.eachNeighbor(pt, radius, func(s Sample) {
		if d := s.DistanceSquared(pt); !found || d < bestD {
			best, bestD, found = s, d, true
		}
	})
	return best, found
}

// ClosestSampleWithinRadius returns the sample closest to pt if its distance
// to pt is less than radius.
//
// The search covers ⌈radius/cellSize⌉ cells around pt, which contains every
// sample within radius, and then filters by the true distance.
func (ff *FlowField) ClosestSampleWithinRadius(pt Point, radius float64) (Sample, bool) {
	if !(radius > 0) || ff.cellSize == 0 || math.IsNaN(pt.X) || math.IsNaN(pt.Y) {
		return Sample{}, false
	}
	cells := min(math.Ceil(radius/ff.cellSize), math.MaxInt32)
	s, ok := ff.ClosestSample(pt, int(cells))
	if !ok || s.Distance(pt) >= radius {
		return Sample{}, false
	}
	return s, true
}
