package distill

import (
	"fmt"

	"github.com/danmuck/chemctl/internal/vle"
)

// feasibilitySlack lets a design sit exactly on the pinch boundary
// without tripping the infeasibility checks on float noise.
const feasibilitySlack = 1e-12

// MinimumReflux computes R_min from the pinch point, the intersection of
// the feed line with the equilibrium curve. It returns R_min together
// with the pinch x coordinate.
func MinimumReflux(curve vle.Curve, feed FeedLine, xd float64) (rmin, xi float64, err error) {
	xi, err = PinchPoint(curve, feed)
	if err != nil {
		return 0, 0, err
	}
	rmin = (xd/xi - curve.Alpha*(1-xd)/(1-xi)) / (curve.Alpha - 1)
	return rmin, xi, nil
}

// checkFeasible verifies that the pinch point lies between the bottoms
// and distillate compositions. Outside that window no finite reflux can
// realize the split.
func checkFeasible(curve vle.Curve, xi, xb, xd float64) error {
	yi := curve.Y(xi)
	if yi > xd+feasibilitySlack {
		return fmt.Errorf("%w: pinch y=%.6f above distillate xd=%.6f", ErrInfeasibleDesign, yi, xd)
	}
	if xi < xb-feasibilitySlack {
		return fmt.Errorf("%w: pinch x=%.6f below bottoms xb=%.6f", ErrInfeasibleDesign, xi, xb)
	}
	return nil
}
