package vle

import (
	"errors"
	"math"
	"testing"

	"github.com/danmuck/chemctl/internal/testutil/testlog"
)

func TestCurveEndpointsAndMonotonicity(t *testing.T) {
	testlog.Start(t)

	for _, alpha := range []float64{1.01, 2.5, 18.478, 100} {
		curve := Curve{Alpha: alpha}
		if y := curve.Y(0); y != 0 {
			t.Fatalf("alpha=%g: f(0)=%g, want 0", alpha, y)
		}
		if y := curve.Y(1); math.Abs(y-1) > 1e-12 {
			t.Fatalf("alpha=%g: f(1)=%g, want 1", alpha, y)
		}
		prev := curve.Y(0)
		for i := 1; i <= 200; i++ {
			x := float64(i) / 200
			y := curve.Y(x)
			if y <= prev {
				t.Fatalf("alpha=%g: curve not strictly increasing at x=%g (%g <= %g)", alpha, x, y, prev)
			}
			prev = y
		}
	}
}

func TestCurveLiesAboveDiagonal(t *testing.T) {
	testlog.Start(t)

	curve := Curve{Alpha: 3}
	for i := 1; i < 100; i++ {
		x := float64(i) / 100
		if curve.Y(x) <= x {
			t.Fatalf("curve at or below diagonal at x=%g", x)
		}
	}
}

func TestRelativeVolatilityFromAntoineData(t *testing.T) {
	testlog.Start(t)

	first := Antoine{A: 4.35576, B: 1175.581, C: -2.071}
	second := Antoine{A: 4.02832, B: 1268.636, C: -56.199}

	alpha, err := RelativeVolatility(first, second, 350)
	if err != nil {
		t.Fatalf("relative volatility: %v", err)
	}
	if math.Abs(alpha-18.47802272970141) > 1e-9 {
		t.Fatalf("unexpected alpha: %.12f", alpha)
	}

	// Argument order must not matter: alpha is max over min.
	swapped, err := RelativeVolatility(second, first, 350)
	if err != nil {
		t.Fatalf("relative volatility swapped: %v", err)
	}
	if swapped != alpha {
		t.Fatalf("alpha depends on argument order: %g vs %g", swapped, alpha)
	}
}

func TestRelativeVolatilityRejectsDegeneratePressure(t *testing.T) {
	testlog.Start(t)

	// T + C = 0 blows up the Antoine exponent.
	bad := Antoine{A: 4.0, B: 1200, C: -350}
	good := Antoine{A: 4.0, B: 1200, C: -56}
	if _, err := RelativeVolatility(bad, good, 350); !errors.Is(err, ErrNonPositivePressure) {
		t.Fatalf("expected ErrNonPositivePressure, got %v", err)
	}
}

func TestNewCurveRejectsAlphaBelowOne(t *testing.T) {
	testlog.Start(t)

	if _, err := NewCurve(0.8); !errors.Is(err, ErrVolatilityOrder) {
		t.Fatalf("expected ErrVolatilityOrder, got %v", err)
	}
	if _, err := NewCurve(1.0); err != nil {
		t.Fatalf("alpha=1 should be accepted, got %v", err)
	}
}
