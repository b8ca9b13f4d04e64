package cutquote

import (
	"math"
	"testing"
)

var testParams = NewCostParams(0.1, 0.3, 0.5, 0.01)

func TestLineLength(t *testing.T) {
	l := NewLine(Pt(0.0, 0.0), Pt(1.0, 1.0))
	want := math.Sqrt(2.0)
	if d := math.Abs(l.Length() - want); d > 1e-9 {
		t.Errorf("%g > %g", d, 1e-9)
	}
}

func TestLineBoundingBox(t *testing.T) {
	l := NewLine(Pt(0, 1), Pt(2, 0))
	if got, want := l.BoundingBox(), (Rect{0, 0, 2, 1}); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestLineTimeCost(t *testing.T) {
	l := NewLine(Pt(0, 1), Pt(2, 0))
	want := (math.Sqrt(5) / 0.5) * 0.01
	if got := l.TimeCost(testParams); math.Abs(got-want) > 1e-9 {
		t.Errorf("got time cost %v, want %v", got, want)
	}
	if got := l.Speed(testParams); got != testParams.BaseSpeed {
		t.Errorf("got speed %v, want %v", got, testParams.BaseSpeed)
	}
}

func TestLineRotate(t *testing.T) {
	l := NewLine(Pt(1, 0), Pt(0, 1))
	if got, want := l.BoundingBox(), (Rect{0, 0, 1, 1}); !got.ApproxEqual(want, DefaultTolerance) {
		t.Errorf("got %v, want %v", got, want)
	}

	a := math.Sqrt(0.5)
	got := l.Rotate(2 * math.Pi / 8).BoundingBox()
	if want := (Rect{-a, a, a, a}); !got.ApproxEqual(want, DefaultTolerance) {
		t.Errorf("got %v, want %v", got, want)
	}

	diff(t, l, l.Rotate(1.234).Rotate(-1.234), approx)
}

func TestLineAngle(t *testing.T) {
	if got := NewLine(Pt(1, 1), Pt(1, 3)).Angle(); math.Abs(got-math.Pi/2) > 1e-12 {
		t.Errorf("got angle %v, want π/2", got)
	}
}

func TestLineValidate(t *testing.T) {
	if err := NewLine(Pt(0, 0), Pt(1, 0)).Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := NewLine(Pt(0, math.NaN()), Pt(1, 0)).Validate(); err != ErrNonFinite {
		t.Errorf("got %v, want %v", err, ErrNonFinite)
	}
	if err := NewLine(Pt(0, 0), Pt(math.Inf(1), 0)).Validate(); err != ErrNonFinite {
		t.Errorf("got %v, want %v", err, ErrNonFinite)
	}
}
