package distill

import "errors"

var (
	// ErrInvalidInput indicates malformed design parameters: compositions
	// outside (0,1) or out of order, bad Antoine data, or a feed quality
	// above one.
	ErrInvalidInput = errors.New("distill: invalid input")

	// ErrInfeasibleDesign indicates the requested split cannot be realized
	// by any positive finite reflux.
	ErrInfeasibleDesign = errors.New("distill: infeasible design")

	// ErrNoConvergence indicates an intersection root find failed within
	// its tolerance and iteration cap.
	ErrNoConvergence = errors.New("distill: intersection did not converge")

	// ErrStepBound indicates the staircase construction exceeded its step
	// bound before reaching the distillate composition.
	ErrStepBound = errors.New("distill: staircase exceeded step bound")
)
