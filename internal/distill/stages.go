package distill

import (
	"fmt"

	"github.com/danmuck/chemctl/internal/vle"
)

// Phase tracks staircase construction progress. Transitions are one-way:
// stripping -> rectifying when a vertical step crosses the upper
// breakpoint, rectifying -> done when one crosses the distillate
// composition.
type Phase string

const (
	PhaseStripping  Phase = "stripping"
	PhaseRectifying Phase = "rectifying"
	PhaseDone       Phase = "done"
)

// maxStaircaseSteps bounds the construction loop. A feasible design
// converges in far fewer steps; hitting the bound means the operating
// lines or curve were malformed.
const maxStaircaseSteps = 1000

// Point is one staircase vertex on the equilibrium diagram.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Staircase is the ordered stage sequence produced by the stepping
// construction. Stages counts vertical (equilibrium) steps; FeedStage is
// the stage whose vertical step crossed the upper breakpoint.
type Staircase struct {
	Points    []Point
	Stages    int
	FeedStage int
}

// stairBuilder steps between the operating lines and the equilibrium
// curve, seeded at (xb, xb).
type stairBuilder struct {
	curve  vle.Curve
	rect   Line
	strip  Line
	yUpper float64
	xd     float64

	phase  Phase
	x      float64
	result Staircase
}

func newStairBuilder(curve vle.Curve, rect, strip Line, yUpper, xb, xd float64) *stairBuilder {
	b := &stairBuilder{
		curve:  curve,
		rect:   rect,
		strip:  strip,
		yUpper: yUpper,
		xd:     xd,
		phase:  PhaseStripping,
		x:      xb,
	}
	b.result.Points = append(b.result.Points, Point{X: xb, Y: xb})
	return b
}

// build runs the construction to completion or the step bound.
func (b *stairBuilder) build() (Staircase, error) {
	for i := 0; i < maxStaircaseSteps; i++ {
		switch b.phase {
		case PhaseStripping:
			b.stepStripping()
		case PhaseRectifying:
			b.stepRectifying()
		case PhaseDone:
			return b.result, nil
		}
	}
	return Staircase{}, fmt.Errorf("%w: %d steps without reaching xd=%.6f", ErrStepBound, maxStaircaseSteps, b.xd)
}

// stepStripping performs one vertical step to the equilibrium curve and
// one horizontal step back, onto the stripping line while below the
// upper breakpoint, onto the rectifying line once across it.
func (b *stairBuilder) stepStripping() {
	y := b.riser()
	if y > b.yUpper {
		b.result.FeedStage = b.result.Stages
		b.phase = PhaseRectifying
		b.run(b.rect, y)
		return
	}
	b.run(b.strip, y)
}

// stepRectifying performs one vertical step and either terminates
// clamped at (xd, xd) or steps back onto the rectifying line.
func (b *stairBuilder) stepRectifying() {
	y := b.riser()
	if y > b.xd {
		b.result.Points = append(b.result.Points, Point{X: b.xd, Y: b.xd})
		b.phase = PhaseDone
		return
	}
	b.run(b.rect, y)
}

// riser records the vertical step from the current x up to the
// equilibrium curve and counts it as one stage.
func (b *stairBuilder) riser() float64 {
	y := b.curve.Y(b.x)
	b.result.Points = append(b.result.Points, Point{X: b.x, Y: y})
	b.result.Stages++
	return y
}

// run records the horizontal step from the current y across to the given
// operating line.
func (b *stairBuilder) run(line Line, y float64) {
	b.x = line.XAt(y)
	b.result.Points = append(b.result.Points, Point{X: b.x, Y: y})
}
