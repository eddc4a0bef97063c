package geom

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestCurveStraightMidpoint(t *testing.T) {
	tests := []struct {
		name   string
		p0, p1 Point
	}{
		{"horizontal", Pt(0, 0), Pt(10, 0)},
		{"diagonal", Pt(-3, 4), Pt(7, -2)},
		{"degenerate", Pt(5, 5), Pt(5, 5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Curve
			c.SampleLine([]Point{tt.p0, tt.p1})

			want := Pt((tt.p0.X+tt.p1.X)/2, (tt.p0.Y+tt.p1.Y)/2)
			if got := c.PointAt(0.5); !Near(got, want, eps) {
				t.Errorf("PointAt(0.5) = %v, want %v", got, want)
			}

			chord := tt.p1.Sub(tt.p0)
			for _, p := range []float64{0, 0.25, 0.5, 1} {
				if got := c.TangentAt(p); got != chord {
					t.Errorf("TangentAt(%v) = %v, want %v", p, got, chord)
				}
			}
		})
	}
}

func TestCurveQuadraticEndpoints(t *testing.T) {
	var c Curve
	c.SampleLine([]Point{Pt(1, 2), Pt(9, 4), Pt(3, -7)})

	if !c.HasControl {
		t.Fatal("HasControl = false, want true")
	}
	if got := c.PointAt(0); got != c.P0 {
		t.Errorf("PointAt(0) = %v, want %v", got, c.P0)
	}
	if got := c.PointAt(1); got != c.P1 {
		t.Errorf("PointAt(1) = %v, want %v", got, c.P1)
	}
}

func TestCurveQuadraticTangent(t *testing.T) {
	var c Curve
	c.SampleLine([]Point{Pt(0, 0), Pt(10, 0), Pt(5, 10)})

	if got, want := c.TangentAt(0), Pt(10, 20); !Near(got, want, eps) {
		t.Errorf("TangentAt(0) = %v, want %v", got, want)
	}
	if got, want := c.TangentAt(1), Pt(10, -20); !Near(got, want, eps) {
		t.Errorf("TangentAt(1) = %v, want %v", got, want)
	}
	// The apex of a symmetric curve is horizontal.
	if got := c.TangentAt(0.5); math.Abs(got.Y) > eps {
		t.Errorf("TangentAt(0.5).Y = %v, want 0", got.Y)
	}
}

func TestSampleLineResetsProgress(t *testing.T) {
	c := Curve{Progress: 0.3}
	c.SampleLine([]Point{Pt(0, 0), Pt(1, 1), Pt(2, 0)})
	if c.Progress != 1 {
		t.Errorf("Progress = %v, want 1", c.Progress)
	}

	c.SampleLine([]Point{Pt(0, 0), Pt(1, 1)})
	if c.HasControl {
		t.Error("HasControl = true after two-point SampleLine, want false")
	}
}

func TestSampleLineRoundTrip(t *testing.T) {
	g := []Point{Pt(2, 3), Pt(20, 11), Pt(8, -4)}

	var a Curve
	a.SampleLine(g)
	var b Curve
	b.SampleLine(a.Points())

	for _, p := range []float64{0, 0.3, 0.5, 0.9, 1} {
		if a.PointAt(p) != b.PointAt(p) {
			t.Errorf("PointAt(%v) differs: %v vs %v", p, a.PointAt(p), b.PointAt(p))
		}
		if a.TangentAt(p) != b.TangentAt(p) {
			t.Errorf("TangentAt(%v) differs: %v vs %v", p, a.TangentAt(p), b.TangentAt(p))
		}
	}
}

func TestTruncatedFollowsCurve(t *testing.T) {
	var c Curve
	c.SampleLine([]Point{Pt(0, 0), Pt(10, 0), Pt(5, 10)})
	c.Progress = 0.4

	v := c.Truncated()
	if v.P0 != c.P0 {
		t.Errorf("Truncated start = %v, want %v", v.P0, c.P0)
	}
	// Any point of the truncated curve at s lies on the original at s*0.4.
	for _, s := range []float64{0.25, 0.5, 1} {
		if got, want := v.PointAt(s), c.PointAt(s*0.4); !Near(got, want, 1e-9) {
			t.Errorf("Truncated.PointAt(%v) = %v, want %v", s, got, want)
		}
	}
}

func TestOutlinePathData(t *testing.T) {
	var c Curve
	c.SampleLine([]Point{Pt(0, 0), Pt(10, 0)})
	if got, want := c.Outline().PathData(), "M0.00,0.00 L10.00,0.00"; got != want {
		t.Errorf("PathData() = %q, want %q", got, want)
	}

	c.SampleLine([]Point{Pt(0, 0), Pt(10, 0), Pt(5, 5)})
	if got, want := c.Outline().PathData(), "M0.00,0.00 Q5.00,5.00 10.00,0.00"; got != want {
		t.Errorf("PathData() = %q, want %q", got, want)
	}
}

func TestControlFromCurveness(t *testing.T) {
	p0, p1 := Pt(0, 0), Pt(10, 0)
	if got := ControlFromCurveness(p0, p1, 0); got != Pt(5, 0) {
		t.Errorf("curveness 0 = %v, want chord midpoint", got)
	}
	if got := ControlFromCurveness(p0, p1, 0.2); !Near(got, Pt(5, -2), eps) {
		t.Errorf("curveness 0.2 = %v, want (5,-2)", got)
	}
}

func TestMatrixRotateConvention(t *testing.T) {
	// Rotating "up" by -pi/2 points it right on a y-down canvas.
	got := Rotate(-math.Pi / 2).Apply(Pt(0, -1))
	if !Near(got, Pt(1, 0), eps) {
		t.Errorf("Rotate(-pi/2)(0,-1) = %v, want (1,0)", got)
	}

	m := Translate(5, 5).Mul(Scale(2, 2))
	if got := m.Apply(Pt(1, 1)); got != Pt(7, 7) {
		t.Errorf("Translate·Scale(1,1) = %v, want (7,7)", got)
	}
}

func TestTruncatedQuadratic(t *testing.T) {
	c := Curve{P0: Pt(0, 0), Control: Pt(5, -8), P1: Pt(10, 0), HasControl: true, Progress: 0.6}

	v := c.Truncated()
	want := Curve{P0: Pt(0, 0), Control: Pt(3, -4.8), P1: Pt(6, -3.84), HasControl: true, Progress: 1}
	if !Near(v.P0, want.P0, eps) || !Near(v.Control, want.Control, eps) || !Near(v.P1, want.P1, eps) {
		t.Errorf("Truncated() = %+v, want %+v", v, want)
	}
	if !v.HasControl || v.Progress != 1 {
		t.Errorf("Truncated() = %+v, want a fully drawn quadratic", v)
	}
}
