package cutquote

import (
	"math"
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	diff(t, Pt(0, 0).Translate(Vec2{X: -10}), Pt(-10, 0))
	diff(t, Pt(3, 1).Sub(Pt(1, 1)), Vec2{X: 2})
	diff(t, Pt(1, 2).Translate(VecFromAngle(math.Pi/2).Mul(3)), Pt(1, 5), approx)
	if h := Pt(4, 6).Sub(Pt(1, 2)).Hypot(); h != 5 {
		t.Errorf("got length %v, want 5", h)
	}
}

func TestPointDistance(t *testing.T) {
	p1 := Pt(0, 10)
	p2 := Pt(0, 5)
	if d := p1.Distance(p2); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}

	p3 := Pt(-11, 1)
	p4 := Pt(-7, -2)
	if d := p3.Distance(p4); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
}

func TestPointRotateRoundTrip(t *testing.T) {
	const epsilon = 1e-9
	for _, th := range []float64{0, 0.3, math.Pi / 4, math.Pi, -2.5, 7} {
		p := Pt(1.5, -0.25)
		if got := p.Rotate(th).Rotate(-th); !got.ApproxEqual(p, epsilon) {
			t.Errorf("rotating by %v and back: got %v, want %v", th, got, p)
		}
	}
}

func TestVecAngle(t *testing.T) {
	const epsilon = 1e-12
	for _, th := range []float64{0, math.Pi / 2, -math.Pi / 2, 3} {
		if got := VecFromAngle(th).Angle(); math.Abs(got-th) > epsilon {
			t.Errorf("got angle %v, want %v", got, th)
		}
	}
}
