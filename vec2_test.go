package flowfield

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
	"gonum.org/v1/gonum/floats/scalar"
)

func TestVec2Arithmetic(t *testing.T) {
	diff(t, Vec(1, 2).Add(Vec(3, 4)), Vec(4, 6))
	diff(t, Vec(1, 2).Sub(Vec(3, 4)), Vec(-2, -2))
	diff(t, Vec(1, 2).Mul(3), Vec(3, 6))
	diff(t, Vec(1, -2).Negate(), Vec(-1, 2))
	diff(t, Vec(3, 4).Perp(), Vec(-4, 3))
	diff(t, Vec(0, 0).Lerp(Vec(10, 20), 0.25), Vec(2.5, 5))

	if d := Vec(1, 2).Dot(Vec(3, 4)); d != 11 {
		t.Errorf("got dot product %v, want 11", d)
	}
	if c := Vec(1, 0).Cross(Vec(0, 1)); c != 1 {
		t.Errorf("got cross product %v, want 1", c)
	}
	if h := Vec(3, 4).Hypot(); h != 5 {
		t.Errorf("got length %v, want 5", h)
	}
}

func TestVec2Polar(t *testing.T) {
	opt := cmpopts.EquateApprox(0, 1e-12)
	diff(t, Vec(0, 1), VecFromAngle(math.Pi/2), opt)
	diff(t, Vec(-2, 0), Polar(2, math.Pi), opt)
	diff(t, Vec(0, -1), Vec(1, 0).Rotate(-math.Pi/2), opt)
	if a := Vec(-1, 0).Angle(); a != math.Pi {
		t.Errorf("got angle %v, want π", a)
	}
}

func TestVec2Normalize(t *testing.T) {
	v, ok := Vec(3, 4).Normalize()
	if !ok {
		t.Fatal("normalizing a non-zero vector failed")
	}
	diff(t, Vec(0.6, 0.8), v, cmpopts.EquateApprox(0, 1e-15))

	if v, ok := (Vec2{}).Normalize(); ok || v != (Vec2{}) {
		t.Errorf("got (%v, %t), want the zero vector and false", v, ok)
	}
}

func TestVec2Angles(t *testing.T) {
	tests := []struct {
		v, o    Vec2
		between float64
		signed  float64
	}{
		{Vec(1, 0), Vec(0, 1), math.Pi / 2, math.Pi / 2},
		{Vec(0, 1), Vec(1, 0), math.Pi / 2, -math.Pi / 2},
		{Vec(1, 0), Vec(-1, 0), math.Pi, math.Pi},
		{Vec(1, 1), Vec(2, 2), 0, 0},
		{Vec(0, 0), Vec(1, 0), 0, 0},
	}
	for _, tt := range tests {
		if got := tt.v.AngleBetween(tt.o); !scalar.EqualWithinAbs(got, tt.between, 1e-7) {
			t.Errorf("%s.AngleBetween(%s) = %v, want %v", tt.v, tt.o, got, tt.between)
		}
		if got := tt.v.SignedAngle(tt.o); !scalar.EqualWithinAbs(got, tt.signed, 1e-7) {
			t.Errorf("%s.SignedAngle(%s) = %v, want %v", tt.v, tt.o, got, tt.signed)
		}
	}

	// Rotating by the signed angle aligns the vectors.
	v, o := Vec(2, 1), Vec(-1, 3)
	r, _ := v.Rotate(v.SignedAngle(o)).Normalize()
	want, _ := o.Normalize()
	diff(t, want, r, cmpopts.EquateApprox(0, 1e-9))
}

func TestVec2IsInfNaN(t *testing.T) {
	if Vec(1, 2).IsInf() || Vec(1, 2).IsNaN() {
		t.Error("finite vector reported as infinite or NaN")
	}
	if !Vec(math.Inf(-1), 0).IsInf() {
		t.Error("infinite vector not reported as infinite")
	}
	if !Vec(0, math.NaN()).IsNaN() {
		t.Error("NaN vector not reported as NaN")
	}
}
