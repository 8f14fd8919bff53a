package nn

import (
	"math"
	"testing"
)

// TestSigmoidValues tests the logistic function at known points.
func TestSigmoidValues(t *testing.T) {
	tests := []struct {
		x, want float64
	}{
		{0, 0.5},
		{1, 0.7310585786300049},
		{-1, 0.2689414213699951},
		{2, 0.8807970779778823},
	}

	for _, tt := range tests {
		if got := Sigmoid(tt.x); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("Sigmoid(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}
}

// TestSigmoidStrictRange checks the output never reaches 0 or 1.
func TestSigmoidStrictRange(t *testing.T) {
	for _, x := range []float64{-1e300, -1000, -40, -30, 30, 40, 1000, 1e300, math.Inf(1), math.Inf(-1)} {
		y := Sigmoid(x)
		if !(y > 0 && y < 1) {
			t.Errorf("Sigmoid(%v) = %v, want value in (0, 1)", x, y)
		}
	}
}

// TestSigmoidSymmetry checks σ(-x) = 1 - σ(x).
func TestSigmoidSymmetry(t *testing.T) {
	for _, x := range []float64{0.1, 0.5, 3, 12} {
		if d := Sigmoid(-x) - (1 - Sigmoid(x)); math.Abs(d) > 1e-12 {
			t.Errorf("σ(-%v) differs from 1-σ(%v) by %v", x, x, d)
		}
	}
}

// TestSigmoidDerivativeFromOutput compares y(1-y) with a finite difference.
func TestSigmoidDerivativeFromOutput(t *testing.T) {
	const h = 1e-6
	for _, x := range []float64{-2, -0.5, 0, 0.5, 2} {
		numeric := (Sigmoid(x+h) - Sigmoid(x-h)) / (2 * h)
		analytic := SigmoidDerivativeFromOutput(Sigmoid(x))
		if math.Abs(numeric-analytic) > 1e-6 {
			t.Errorf("σ'(%v): analytic %v, numeric %v", x, analytic, numeric)
		}
	}

	if got := SigmoidDerivativeFromOutput(0.5); got != 0.25 {
		t.Errorf("SigmoidDerivativeFromOutput(0.5) = %v, want 0.25", got)
	}
}

// TestSigmoidLayer tests the elementwise module.
func TestSigmoidLayer(t *testing.T) {
	act := NewSigmoidLayer()
	in := []float64{-1, 0, 1}

	out := act.Forward(in)
	if len(out) != 3 || out[1] != 0.5 {
		t.Fatalf("Forward(%v) = %v", in, out)
	}
	if in[0] != -1 {
		t.Error("Forward must not modify its input")
	}

	d := act.Derivative(out)
	if d[1] != 0.25 {
		t.Errorf("Derivative at 0.5 = %v, want 0.25", d[1])
	}

	if act.Parameters() != nil {
		t.Error("sigmoid should have no parameters")
	}
}
