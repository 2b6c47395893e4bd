package flowfield

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func randomCurve(r *rand.Rand, n int) Curve {
	c := make(Curve, n)
	for i := range c {
		c[i] = Pt(float64(i)*10, r.Float64()*50)
	}
	return c
}

func TestCurveMeasures(t *testing.T) {
	c := Curve{Pt(0, 0), Pt(3, 4), Pt(3, 10)}
	diff(t, []float64{0, 5, 11}, c.ArcLength())
	if p := c.Perimeter(); p != 11 {
		t.Errorf("got perimeter %v, want 11", p)
	}
	if p := (Curve{}).Perimeter(); p != 0 {
		t.Errorf("got perimeter %v for the empty curve, want 0", p)
	}

	square := Curve{Pt(0, 0), Pt(4, 0), Pt(4, 4), Pt(0, 4)}
	if a := square.Area(); a != 32 {
		t.Errorf("got doubled area %v, want 32", a)
	}
	reversed := Curve{Pt(0, 4), Pt(4, 4), Pt(4, 0), Pt(0, 0)}
	if a := reversed.Area(); a != -32 {
		t.Errorf("got doubled area %v, want -32", a)
	}
	if ctr, ok := square.Centroid(); !ok || ctr != Pt(2, 2) {
		t.Errorf("got centroid (%s, %t), want ((2, 2), true)", ctr, ok)
	}
	if _, ok := (Curve{}).Centroid(); ok {
		t.Error("empty curve has a centroid")
	}
	diff(t, MBR{Min: Pt(0, 0), Max: Pt(4, 4)}, square.MBR())

	if !square.Contains(Pt(1, 3)) {
		t.Error("square does not contain an interior point")
	}
	if square.Contains(Pt(5, 1)) || square.Contains(Pt(-1, 2)) {
		t.Error("square contains an exterior point")
	}
}

func TestBlob(t *testing.T) {
	b := Blob(Pt(10, 10), 5, 4)
	want := Curve{Pt(15, 10), Pt(10, 15), Pt(5, 10), Pt(10, 5)}
	diff(t, want, b, cmpopts.EquateApprox(0, 1e-12))

	if b := Blob(Pt(0, 0), 1, 0); len(b) != 0 {
		t.Errorf("got %d vertices, want 0", len(b))
	}

	c := Curve{Pt(1, 1)}
	cl := c.Clone()
	cl[0] = Pt(2, 2)
	if c[0] != Pt(1, 1) {
		t.Error("modifying the clone modified the original")
	}
}

func TestDouglasPeuckerCollinear(t *testing.T) {
	c := Curve{Pt(0, 0), Pt(1, 0), Pt(2, 0), Pt(3, 0), Pt(4, 0)}
	diff(t, []int{0, -1, -1, -1, 1}, c.DouglasPeuckerRank(0.1))
	diff(t, Curve{Pt(0, 0), Pt(4, 0)}, c.Subsample(0.1, math.MaxInt))
}

func TestDouglasPeuckerRank(t *testing.T) {
	c := Curve{Pt(0, 0), Pt(1, 3), Pt(2, 0), Pt(3, 1), Pt(4, 0)}
	diff(t, []int{0, 2, 3, 4, 1}, c.DouglasPeuckerRank(0.5))
	diff(t, []int{0, 2, 3, -1, 1}, c.DouglasPeuckerRank(1.2))

	diff(t, Curve{Pt(0, 0), Pt(1, 3), Pt(2, 0), Pt(4, 0)}, c.Subsample(1.2, math.MaxInt))
	diff(t, Curve{Pt(0, 0), Pt(1, 3), Pt(4, 0)}, c.Subsample(0, 3))
	diff(t, Curve{Pt(0, 0)}, c.Subsample(0, 1))

	diff(t, []int(nil), (Curve{}).DouglasPeuckerRank(1))
	diff(t, []int{0}, (Curve{Pt(1, 1)}).DouglasPeuckerRank(1))
	diff(t, []int{0, 1}, (Curve{Pt(1, 1), Pt(2, 2)}).DouglasPeuckerRank(1))
}

func TestSubsampleMonotonic(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 11))
	c := randomCurve(r, 60)
	prev := c.Subsample(0, math.MaxInt)
	if len(prev) != len(c) {
		t.Fatalf("simplification without tolerance dropped vertices: got %d, want %d", len(prev), len(c))
	}
	for _, tol := range []float64{0.5, 1, 2, 4, 8, 16, 32, 64} {
		cur := c.Subsample(tol, math.MaxInt)
		if len(cur) > len(prev) {
			t.Errorf("tolerance %g kept %d vertices, more than the %d of a smaller tolerance", tol, len(cur), len(prev))
		}
		kept := make(map[Point]bool, len(prev))
		for _, pt := range prev {
			kept[pt] = true
		}
		for _, pt := range cur {
			if !kept[pt] {
				t.Errorf("tolerance %g kept %s, which a smaller tolerance dropped", tol, pt)
			}
		}
		if cur[0] != c[0] || cur[len(cur)-1] != c[len(c)-1] {
			t.Errorf("tolerance %g dropped an endpoint", tol)
		}
		prev = cur
	}
}

func TestSubsampleIdempotent(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 5))
	c := randomCurve(r, 40)
	once := c.Subsample(5, math.MaxInt)
	twice := once.Subsample(5, math.MaxInt)
	diff(t, once, twice)
}

func TestChaikin(t *testing.T) {
	open := Curve{Pt(0, 0), Pt(4, 0), Pt(4, 4)}
	diff(t, Curve{Pt(0, 0), Pt(3, 0), Pt(4, 1), Pt(4, 4)}, open.Chaikin(false))

	square := Curve{Pt(0, 0), Pt(4, 0), Pt(4, 4), Pt(0, 4)}
	want := Curve{
		Pt(0, 3), Pt(0, 1),
		Pt(1, 0), Pt(3, 0),
		Pt(4, 1), Pt(4, 3),
		Pt(3, 4), Pt(1, 4),
	}
	diff(t, want, square.Chaikin(true))

	diff(t, Curve{Pt(1, 1)}, (Curve{Pt(1, 1)}).Chaikin(false))
}

func TestResample(t *testing.T) {
	c := Curve{Pt(0, 0), Pt(10, 0), Pt(10, 10)}
	want := Curve{Pt(0, 0), Pt(5, 0), Pt(10, 0), Pt(10, 5), Pt(10, 10)}
	diff(t, want, c.Resample(5, false))

	square := Curve{Pt(0, 0), Pt(4, 0), Pt(4, 4), Pt(0, 4)}
	diff(t, square, square.Resample(4, true))
	if got := square.Resample(8, true); len(got) != 8 || got[1] != Pt(2, 0) {
		t.Errorf("got %v, want 8 points with (2, 0) second", got)
	}

	diff(t, Curve(nil), c.Resample(0, false))
	diff(t, Curve(nil), (Curve{}).Resample(3, false))
	diff(t, Curve{Pt(1, 1), Pt(1, 1)}, (Curve{Pt(1, 1)}).Resample(2, false))
}

func TestResampleSpacing(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 1))
	c := randomCurve(r, 20)
	const n = 50
	out := c.Resample(n, false)
	if len(out) != n {
		t.Fatalf("got %d points, want %d", len(out), n)
	}
	diff(t, c[0], out[0])
	diff(t, c[len(c)-1], out[n-1], cmpopts.EquateApprox(0, 1e-9))

	step := c.Perimeter() / (n - 1)
	for i := 1; i < n; i++ {
		// A chord is never longer than the arc it spans.
		if d := out[i].Distance(out[i-1]); d > step+1e-9 {
			t.Errorf("points %d and %d are %v apart, more than the step %v", i-1, i, d, step)
		}
	}
}

func TestSplineResample(t *testing.T) {
	opt := cmpopts.EquateApprox(0, 1e-12)
	c := Curve{Pt(0, 0), Pt(1, 2), Pt(3, 3), Pt(4, 0)}

	out := c.SplineResample(7, false, DefaultTension)
	if len(out) != 7 {
		t.Fatalf("got %d points, want 7", len(out))
	}
	// Integer parameters hit the control points.
	diff(t, Curve{c[0], c[1], c[2], c[3]}, Curve{out[0], out[2], out[4], out[6]}, opt)

	closed := c.SplineResample(5, true, DefaultTension)
	diff(t, Curve{c[1], c[2], c[3], c[0], c[1]}, closed, opt)

	diff(t, Curve{c[0]}, c.SplineResample(1, false, DefaultTension), opt)
	diff(t, Curve(nil), (Curve{}).SplineResample(4, false, DefaultTension))
}

func TestCatmullRomMidpoint(t *testing.T) {
	// On evenly spaced collinear points the spline is the line itself.
	cr := NewCatmullRom([]Point{Pt(0, 0), Pt(1, 0), Pt(2, 0), Pt(3, 0)})
	diff(t, Pt(1.5, 0), cr.Eval(0.5), cmpopts.EquateApprox(0, 1e-12))
	diff(t, Pt(1, 0), cr.Eval(-3), cmpopts.EquateApprox(0, 1e-12))
}
