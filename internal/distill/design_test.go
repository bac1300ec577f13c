package distill

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/danmuck/chemctl/internal/testutil/testlog"
	"github.com/danmuck/chemctl/internal/vle"
)

// Benzene/toluene-like Antoine pair used across the tests.
var testAntoine = [2]vle.Antoine{
	{A: 4.35576, B: 1175.581, C: -2.071},
	{A: 4.02832, B: 1268.636, C: -56.199},
}

func baseInput() Input {
	return Input{
		Temperature:  350,
		Xb:           0.1,
		Xf:           0.5,
		Xd:           0.99,
		Q:            0.5,
		Antoine:      testAntoine,
		RefluxFactor: 1.1,
	}
}

func TestDesignReferenceScenario(t *testing.T) {
	testlog.Start(t)

	result, err := Design(baseInput())
	if err != nil {
		t.Fatalf("design: %v", err)
	}

	if math.Abs(result.Alpha-18.47802272970141) > 1e-9 {
		t.Fatalf("unexpected alpha: %.12f", result.Alpha)
	}
	if math.Abs(result.MinimumReflux-0.28709510094) > 1e-6 {
		t.Fatalf("unexpected minimum reflux: %.12f", result.MinimumReflux)
	}
	if math.Abs(result.RefluxRatio-1.1*result.MinimumReflux) > 1e-12 {
		t.Fatalf("reflux ratio %.12f is not 1.1 x Rmin %.12f", result.RefluxRatio, result.MinimumReflux)
	}
	if result.Stages != 6 {
		t.Fatalf("unexpected stage count: %d", result.Stages)
	}
	if result.FeedStage != 2 {
		t.Fatalf("unexpected feed stage: %d", result.FeedStage)
	}
}

func TestDesignStaircaseShape(t *testing.T) {
	testlog.Start(t)

	in := baseInput()
	result, err := Design(in)
	if err != nil {
		t.Fatalf("design: %v", err)
	}
	points := result.Staircase

	// One seed point plus a vertical/horizontal pair per stage.
	if len(points) != 2*result.Stages+1 {
		t.Fatalf("sequence length %d does not match 2*stages+1 for %d stages", len(points), result.Stages)
	}
	if points[0] != (Point{X: in.Xb, Y: in.Xb}) {
		t.Fatalf("staircase must seed at (xb, xb), got %+v", points[0])
	}
	last := points[len(points)-1]
	if last != (Point{X: in.Xd, Y: in.Xd}) {
		t.Fatalf("staircase must terminate clamped at (xd, xd), got %+v", last)
	}
	// The final point is clamped down to the diagonal, so monotone y
	// holds for everything before it.
	for i := 1; i < len(points)-1; i++ {
		if points[i].Y < points[i-1].Y {
			t.Fatalf("staircase y regressed at index %d: %+v -> %+v", i, points[i-1], points[i])
		}
	}
}

func TestDesignIdempotent(t *testing.T) {
	testlog.Start(t)

	a, err := Design(baseInput())
	if err != nil {
		t.Fatalf("first design: %v", err)
	}
	b, err := Design(baseInput())
	if err != nil {
		t.Fatalf("second design: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("identical inputs produced different results:\n%+v\n%+v", a, b)
	}
}

func TestDesignStagesMonotoneInRefluxFactor(t *testing.T) {
	testlog.Start(t)

	prev := math.MaxInt
	for _, factor := range []float64{1.1, 1.2, 1.5, 2.0, 3.0} {
		in := baseInput()
		in.RefluxFactor = factor
		result, err := Design(in)
		if err != nil {
			t.Fatalf("design at factor %g: %v", factor, err)
		}
		if result.Stages > prev {
			t.Fatalf("stage count increased with reflux factor %g: %d > %d", factor, result.Stages, prev)
		}
		prev = result.Stages
	}
}

func TestDesignSaturatedLiquidFeedBypassesRootFind(t *testing.T) {
	testlog.Start(t)

	curve := vle.Curve{Alpha: 18.47802272970141}
	feed := FeedLine{Q: 1, Xf: 0.5}

	// No root find runs for q=1: the pinch is xf bit-exactly.
	xi, err := PinchPoint(curve, feed)
	if err != nil {
		t.Fatalf("pinch point: %v", err)
	}
	if xi != 0.5 {
		t.Fatalf("expected pinch exactly at xf, got %v", xi)
	}

	rect := RectifyingLine(0.10135491453138945, 0.99)
	xu, yu, err := upperBreakpoint(rect, feed)
	if err != nil {
		t.Fatalf("upper breakpoint: %v", err)
	}
	if xu != 0.5 {
		t.Fatalf("expected breakpoint exactly at xf, got %v", xu)
	}
	if yu != rect.Y(0.5) {
		t.Fatalf("breakpoint y %v off the rectifying line %v", yu, rect.Y(0.5))
	}

	in := baseInput()
	in.Q = 1
	result, err := Design(in)
	if err != nil {
		t.Fatalf("design: %v", err)
	}
	if math.Abs(result.MinimumReflux-0.09214083139217222) > 1e-12 {
		t.Fatalf("unexpected minimum reflux for q=1: %.15f", result.MinimumReflux)
	}
	if result.Stages != 8 {
		t.Fatalf("unexpected stage count for q=1: %d", result.Stages)
	}
}

func TestDesignFeasibilityBoundaryOnDistillate(t *testing.T) {
	testlog.Start(t)

	// Pinch for the base feed line sits at y_i = f(x_i).
	const yi = 0.8112711535193045

	in := baseInput()
	in.Xd = yi + 1e-3
	if _, err := Design(in); err != nil {
		t.Fatalf("xd above the pinch vapor composition must be feasible: %v", err)
	}

	in.Xd = yi - 1e-3
	if _, err := Design(in); !errors.Is(err, ErrInfeasibleDesign) {
		t.Fatalf("xd below the pinch vapor composition: expected ErrInfeasibleDesign, got %v", err)
	}
}

func TestDesignFeasibilityBoundaryOnBottoms(t *testing.T) {
	testlog.Start(t)

	const xi = 0.18872884648069554

	in := baseInput()
	in.Xb = xi - 1e-3
	if _, err := Design(in); err != nil {
		t.Fatalf("xb below the pinch must be feasible: %v", err)
	}

	in.Xb = xi + 1e-3
	if _, err := Design(in); !errors.Is(err, ErrInfeasibleDesign) {
		t.Fatalf("xb above the pinch: expected ErrInfeasibleDesign, got %v", err)
	}
}

func TestDesignRejectsMalformedInput(t *testing.T) {
	testlog.Start(t)

	cases := []struct {
		name   string
		mutate func(*Input)
	}{
		{"xb out of range", func(in *Input) { in.Xb = 0 }},
		{"xd out of range", func(in *Input) { in.Xd = 1 }},
		{"compositions out of order", func(in *Input) { in.Xb, in.Xd = in.Xd, in.Xb }},
		{"q above one", func(in *Input) { in.Q = 1.5 }},
		{"non-positive temperature", func(in *Input) { in.Temperature = 0 }},
		{"non-positive reflux factor", func(in *Input) { in.RefluxFactor = 0 }},
	}
	for _, tc := range cases {
		in := baseInput()
		tc.mutate(&in)
		if _, err := Design(in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("%s: expected ErrInvalidInput, got %v", tc.name, err)
		}
	}
}

func TestDesignRejectsDegenerateAntoineData(t *testing.T) {
	testlog.Start(t)

	in := baseInput()
	in.Antoine[0] = vle.Antoine{A: 4.0, B: 1200, C: -350}
	if _, err := Design(in); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestStaircaseStepBound(t *testing.T) {
	testlog.Start(t)

	// A stripping line almost parallel to a near-diagonal curve makes
	// progress per step vanish without ever crossing the breakpoint.
	curve := vle.Curve{Alpha: 1 + 1e-9}
	rect := RectifyingLine(1, 0.99)
	strip := Line{Slope: 1 - 1e-9, Intercept: 0}
	_, err := newStairBuilder(curve, rect, strip, 0.9, 0.1, 0.99).build()
	if !errors.Is(err, ErrStepBound) {
		t.Fatalf("expected ErrStepBound, got %v", err)
	}
}
