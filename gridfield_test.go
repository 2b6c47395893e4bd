package flowfield

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
	"gonum.org/v1/gonum/floats/scalar"
)

func TestAngleLerp(t *testing.T) {
	tests := []struct {
		a0, a1, t float64
		want      float64
	}{
		{0, math.Pi / 2, 0.5, math.Pi / 4},
		{math.Pi / 2, 0, 0.5, math.Pi / 4},
		// The short way from 0 to 3π/2 goes backward.
		{0, 3 * math.Pi / 2, 1, -math.Pi / 2},
		{0, 3 * math.Pi / 2, 0.5, -math.Pi / 4},
		{1, 1, 0.7, 1},
		{0.3, 2, 0, 0.3},
	}
	for _, tt := range tests {
		if got := AngleLerp(tt.a0, tt.a1, tt.t); !scalar.EqualWithinAbs(got, tt.want, 1e-12) {
			t.Errorf("AngleLerp(%g, %g, %g) = %g, want %g", tt.a0, tt.a1, tt.t, got, tt.want)
		}
	}
}

func TestGridFieldCells(t *testing.T) {
	gf, err := NewGridField(100, 100, 30)
	if err != nil {
		t.Fatal(err)
	}
	if nx, ny := gf.GridSize(); nx != 3 || ny != 3 {
		t.Fatalf("got %d×%d grid, want 3×3", nx, ny)
	}
	if a := gf.Cell(1, 1); a != DefaultGridAngle {
		t.Errorf("got default angle %v, want %v", a, DefaultGridAngle)
	}

	gf.SetCell(2, 0, 1.5)
	gf.SetCell(5, 5, 9)
	if a := gf.Cell(7, -3); a != 1.5 {
		t.Errorf("clamped lookup got %v, want 1.5", a)
	}
	if a := gf.Cell(2, 2); a != DefaultGridAngle {
		t.Errorf("setting a cell outside the grid changed (2, 2) to %v", a)
	}

	c := gf.Clone()
	c.SetCell(0, 0, 2)
	if gf.Cell(0, 0) != DefaultGridAngle {
		t.Error("modifying the clone modified the original")
	}

	if _, err := NewGridField(100, 100, 0); !errors.Is(err, ErrInvalidCellSize) {
		t.Errorf("got %v, want %v", err, ErrInvalidCellSize)
	}
	if _, err := NewGridField(1e12, 1e12, 1e-3); !errors.Is(err, ErrInvalidCellSize) {
		t.Errorf("got %v for an oversized grid, want %v", err, ErrInvalidCellSize)
	}
	if _, err := NewGridField(-5, 100, 10); !errors.Is(err, ErrInvalidDomain) {
		t.Errorf("got %v, want %v", err, ErrInvalidDomain)
	}
	if gf, _ := NewGridField(1, 1, 10); gf.Cell(0, 0) != DefaultGridAngle {
		t.Error("a domain smaller than a cell has no cell")
	}
}

func TestGridFieldAngle(t *testing.T) {
	gf, err := NewGridField(60, 60, 30)
	if err != nil {
		t.Fatal(err)
	}
	gf.SetCell(0, 0, 0)
	gf.SetCell(1, 0, math.Pi/2)
	gf.SetCell(0, 1, 0)
	gf.SetCell(1, 1, math.Pi/2)

	if a := gf.Angle(Pt(0, 0)); a != 0 {
		t.Errorf("got %v at a cell corner, want 0", a)
	}
	if a := gf.Angle(Pt(15, 10)); !scalar.EqualWithinAbs(a, math.Pi/4, 1e-12) {
		t.Errorf("got %v halfway between cells, want π/4", a)
	}
	// Beyond the last cell the clamped neighbor equals the cell itself.
	if a := gf.Angle(Pt(45, 45)); !scalar.EqualWithinAbs(a, math.Pi/2, 1e-12) {
		t.Errorf("got %v in the last cell, want π/2", a)
	}
}

func TestGridFieldTrace(t *testing.T) {
	gf, err := NewGridField(100, 100, 10)
	if err != nil {
		t.Fatal(err)
	}
	nx, ny := gf.GridSize()
	for i := range nx {
		for j := range ny {
			gf.SetCell(i, j, 0)
		}
	}

	diff(t, Curve{Pt(5, 0), Pt(10, 0), Pt(15, 0)}, gf.Trace(Pt(0, 0), 5, 3))
	if c := gf.Trace(Pt(0, 0), 5, 0); len(c) != 0 {
		t.Errorf("got %d points for zero steps", len(c))
	}

	blob := Blob(Pt(50, 50), 10, 8)
	moved := gf.AdvectCurve(blob, 2, 5)
	want := make(Curve, len(blob))
	for i, pt := range blob {
		want[i] = pt.Translate(Vec(10, 0))
	}
	diff(t, want, moved, cmpopts.EquateApprox(0, 1e-9))
	if blob[0] == moved[0] {
		t.Error("advection modified the original curve")
	}

	// A grid field drives a flow field.
	ff := newTestField(t, 100, 100, 10, gf.Angle)
	if a := ff.Sample(Pt(42, 17)).Angle; a != 0 {
		t.Errorf("got angle %v, want 0", a)
	}
}
