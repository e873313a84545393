package geom

import (
	"math"
	"testing"
)

func TestVecOps(t *testing.T) {
	a := Vec2{3, 4}
	b := Vec2{1, -2}

	if got := a.Add(b); got != (Vec2{4, 2}) {
		t.Errorf("Add: got %v", got)
	}
	if got := a.Sub(b); got != (Vec2{2, 6}) {
		t.Errorf("Sub: got %v", got)
	}
	if got := a.Scale(2); got != (Vec2{6, 8}) {
		t.Errorf("Scale: got %v", got)
	}
	if got := a.Len(); got != 5 {
		t.Errorf("Len: got %f", got)
	}
	if got := a.Dot(b); got != -5 {
		t.Errorf("Dot: got %f", got)
	}
}

func TestNormalize(t *testing.T) {
	n := Vec2{0, 3}.Normalize()
	if n != (Vec2{0, 1}) {
		t.Errorf("expected unit y, got %v", n)
	}

	if z := (Vec2{}).Normalize(); z != (Vec2{}) {
		t.Errorf("zero vector should normalize to zero, got %v", z)
	}
}

func TestLerp(t *testing.T) {
	a := Vec2{0, 0}
	b := Vec2{10, -4}

	if got := a.Lerp(b, 0); got != a {
		t.Errorf("t=0 should return start, got %v", got)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Errorf("t=1 should return end, got %v", got)
	}
	if got := a.Lerp(b, 0.5); got != (Vec2{5, -2}) {
		t.Errorf("midpoint: got %v", got)
	}
}

func TestWrapAngle(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{math.Pi, math.Pi},
		{-math.Pi, math.Pi},
		{3 * math.Pi, math.Pi},
		{2 * math.Pi, 0},
		{-0.5, -0.5},
	}

	for _, tt := range tests {
		if got := WrapAngle(tt.in); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("WrapAngle(%f): got %f, want %f", tt.in, got, tt.want)
		}
	}
}

func TestLerpAngleShortestArc(t *testing.T) {
	// 3.1 -> -3.1 crosses the pi boundary; halfway should sit near pi.
	mid := LerpAngle(3.1, -3.1, 0.5)
	if math.Abs(WrapAngle(mid-math.Pi)) > 1e-9 {
		t.Errorf("expected midpoint near pi, got %f", mid)
	}

	if got := LerpAngle(0.5, 1.0, 0.5); math.Abs(got-0.75) > 1e-12 {
		t.Errorf("plain interpolation: got %f", got)
	}
}
