// Package solve holds the single-variable root finder used to locate
// line/curve intersections on the equilibrium diagram.
package solve

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrNoConvergence = errors.New("solve: root find did not converge")
	ErrBadBracket    = errors.New("solve: no sign change over bracket")
)

const (
	DefaultTolerance = 1e-9
	DefaultMaxIter   = 200
)

// Bisect finds a root of f on [lo, hi] by interval halving. The bracket
// must straddle a sign change. It stops once the bracket width falls
// below tol and returns ErrNoConvergence if the iteration cap is hit
// first.
func Bisect(f func(float64) float64, lo, hi, tol float64, maxIter int) (float64, error) {
	if tol <= 0 {
		tol = DefaultTolerance
	}
	if maxIter <= 0 {
		maxIter = DefaultMaxIter
	}
	if hi < lo {
		lo, hi = hi, lo
	}

	flo := f(lo)
	fhi := f(hi)
	if flo == 0 {
		return lo, nil
	}
	if fhi == 0 {
		return hi, nil
	}
	if math.IsNaN(flo) || math.IsNaN(fhi) || flo*fhi > 0 {
		return 0, fmt.Errorf("%w: f(%g)=%g f(%g)=%g", ErrBadBracket, lo, flo, hi, fhi)
	}

	for i := 0; i < maxIter; i++ {
		mid := lo + (hi-lo)/2
		fmid := f(mid)
		if fmid == 0 || hi-lo < tol {
			return mid, nil
		}
		if flo*fmid < 0 {
			hi = mid
		} else {
			lo = mid
			flo = fmid
		}
	}
	return 0, fmt.Errorf("%w: bracket [%g,%g] after %d iterations", ErrNoConvergence, lo, hi, maxIter)
}
