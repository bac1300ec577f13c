package distill

import (
	"fmt"
	"math"

	"github.com/danmuck/chemctl/internal/solve"
	"github.com/danmuck/chemctl/internal/vle"
)

// Line is the straight line y = Slope*x + Intercept.
type Line struct {
	Slope     float64
	Intercept float64
}

// Y evaluates the line at x.
func (l Line) Y(x float64) float64 {
	return l.Slope*x + l.Intercept
}

// XAt solves the line for the x that yields y.
func (l Line) XAt(y float64) float64 {
	return (y - l.Intercept) / l.Slope
}

// saturatedLiquidEps bounds the q window treated as saturated liquid,
// where the q line degenerates to the vertical x = xf.
const saturatedLiquidEps = 1e-9

// FeedLine is the q line through (xf, xf) with slope -q/(1-q).
type FeedLine struct {
	Q  float64
	Xf float64
}

// Vertical reports whether the feed is saturated liquid (q = 1).
func (f FeedLine) Vertical() bool {
	return math.Abs(1-f.Q) < saturatedLiquidEps
}

// Line returns the sloped form of the q line. Callers must check
// Vertical first; at q = 1 the slope is undefined.
func (f FeedLine) Line() Line {
	return Line{
		Slope:     -f.Q / (1 - f.Q),
		Intercept: f.Xf / (1 - f.Q),
	}
}

// RectifyingLine builds the upper operating line through (xd, xd) for
// reflux ratio R.
func RectifyingLine(refluxRatio, xd float64) Line {
	return Line{
		Slope:     refluxRatio / (refluxRatio + 1),
		Intercept: xd / (refluxRatio + 1),
	}
}

// StrippingLine builds the lower operating line through (xb, xb) and the
// upper breakpoint (xu, yu).
func StrippingLine(xb, xu, yu float64) Line {
	slope := (yu - xb) / (xu - xb)
	return Line{
		Slope:     slope,
		Intercept: xb - slope*xb,
	}
}

// intersectionTolerance is the bracket width at which line/curve
// intersection root finds stop.
const intersectionTolerance = 1e-9

// PinchPoint returns the x coordinate of the feed-line/equilibrium-curve
// intersection. For saturated liquid feed it is xf exactly; no root find
// runs in that case.
func PinchPoint(curve vle.Curve, feed FeedLine) (float64, error) {
	if feed.Vertical() {
		return feed.Xf, nil
	}
	line := feed.Line()
	root, err := solve.Bisect(func(x float64) float64 {
		return curve.Y(x) - line.Y(x)
	}, 0, feed.Xf, intersectionTolerance, solve.DefaultMaxIter)
	if err != nil {
		return 0, fmt.Errorf("%w: feed line vs equilibrium: %v", ErrNoConvergence, err)
	}
	return root, nil
}

// upperBreakpoint returns the intersection of the rectifying line with
// the feed line. For saturated liquid feed it sits at x = xf exactly.
func upperBreakpoint(rect Line, feed FeedLine) (x, y float64, err error) {
	if feed.Vertical() {
		return feed.Xf, rect.Y(feed.Xf), nil
	}
	line := feed.Line()
	root, err := solve.Bisect(func(x float64) float64 {
		return rect.Y(x) - line.Y(x)
	}, 0, 1, intersectionTolerance, solve.DefaultMaxIter)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: rectifying line vs feed line: %v", ErrNoConvergence, err)
	}
	return root, rect.Y(root), nil
}
