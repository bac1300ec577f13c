// Package distill sizes a binary distillation column by the
// McCabe-Thiele construction: relative volatility from Antoine data,
// minimum reflux from the pinch point, operating lines, and a staircase
// of theoretical stages from bottoms to distillate composition.
package distill

import (
	"fmt"

	"github.com/danmuck/chemctl/internal/vle"
)

// Input collects the caller-supplied design parameters.
type Input struct {
	// Temperature in Kelvin at which the separation runs.
	Temperature float64
	// Bottoms, feed and distillate molar fractions of the more volatile
	// component, ordered Xb < Xf < Xd, each inside (0,1).
	Xb, Xf, Xd float64
	// Q is the feed quality, at most 1. Q = 1 is saturated liquid feed.
	Q float64
	// Antoine coefficients for the two components.
	Antoine [2]vle.Antoine
	// RefluxFactor multiplies the minimum reflux ratio to give the
	// applied reflux ratio. Conventionally 1.1 to 1.5.
	RefluxFactor float64
}

// Result is one completed distillation design.
type Result struct {
	Alpha         float64 `json:"alpha"`
	MinimumReflux float64 `json:"minimum_reflux"`
	RefluxRatio   float64 `json:"reflux_ratio"`
	Stages        int     `json:"number_of_stages"`
	FeedStage     int     `json:"feed_stage"`
	Staircase     []Point `json:"stage_sequence"`
	UpperBreak    Point   `json:"upper_breakpoint"`
	Rectifying    Line    `json:"-"`
	Stripping     Line    `json:"-"`
}

// Design runs the full construction for one set of parameters. It is
// deterministic: identical inputs yield identical stage sequences.
func Design(in Input) (Result, error) {
	if err := validate(in); err != nil {
		return Result{}, err
	}

	alpha, err := vle.RelativeVolatility(in.Antoine[0], in.Antoine[1], in.Temperature)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	curve := vle.Curve{Alpha: alpha}
	feed := FeedLine{Q: in.Q, Xf: in.Xf}

	rmin, xi, err := MinimumReflux(curve, feed, in.Xd)
	if err != nil {
		return Result{}, err
	}
	if err := checkFeasible(curve, xi, in.Xb, in.Xd); err != nil {
		return Result{}, err
	}
	if rmin <= 0 {
		return Result{}, fmt.Errorf("%w: minimum reflux %.6f not positive", ErrInfeasibleDesign, rmin)
	}

	refluxRatio := in.RefluxFactor * rmin
	rect := RectifyingLine(refluxRatio, in.Xd)

	xu, yu, err := upperBreakpoint(rect, feed)
	if err != nil {
		return Result{}, err
	}
	if xu <= in.Xb || yu <= in.Xb {
		return Result{}, fmt.Errorf(
			"%w: operating lines meet at (%.6f, %.6f), not above bottoms xb=%.6f",
			ErrInfeasibleDesign, xu, yu, in.Xb,
		)
	}
	strip := StrippingLine(in.Xb, xu, yu)

	stair, err := newStairBuilder(curve, rect, strip, yu, in.Xb, in.Xd).build()
	if err != nil {
		return Result{}, err
	}

	return Result{
		Alpha:         alpha,
		MinimumReflux: rmin,
		RefluxRatio:   refluxRatio,
		Stages:        stair.Stages,
		FeedStage:     stair.FeedStage,
		Staircase:     stair.Points,
		UpperBreak:    Point{X: xu, Y: yu},
		Rectifying:    rect,
		Stripping:     strip,
	}, nil
}

func validate(in Input) error {
	for _, c := range []struct {
		name  string
		value float64
	}{
		{"xb", in.Xb},
		{"xf", in.Xf},
		{"xd", in.Xd},
	} {
		if c.value <= 0 || c.value >= 1 {
			return fmt.Errorf("%w: %s=%g outside (0,1)", ErrInvalidInput, c.name, c.value)
		}
	}
	if !(in.Xb < in.Xf && in.Xf < in.Xd) {
		return fmt.Errorf("%w: compositions must satisfy xb < xf < xd, got xb=%g xf=%g xd=%g",
			ErrInvalidInput, in.Xb, in.Xf, in.Xd)
	}
	if in.Q > 1+saturatedLiquidEps {
		return fmt.Errorf("%w: feed quality q=%g above 1", ErrInvalidInput, in.Q)
	}
	if in.Temperature <= 0 {
		return fmt.Errorf("%w: temperature %gK not positive", ErrInvalidInput, in.Temperature)
	}
	if in.RefluxFactor <= 0 {
		return fmt.Errorf("%w: reflux factor %g not positive", ErrInvalidInput, in.RefluxFactor)
	}
	return nil
}
