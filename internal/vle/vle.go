// Package vle provides vapor-liquid equilibrium primitives for an ideal
// binary mixture: Antoine vapor pressures, relative volatility, and the
// equilibrium curve y = alpha*x / (1 + (alpha-1)*x).
package vle

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrNonPositivePressure = errors.New("vle: non-positive vapor pressure")
	ErrVolatilityOrder     = errors.New("vle: relative volatility below one")
)

// Antoine holds one component's Antoine coefficients for
// log10(P) = a - b/(T+c) with T in Kelvin.
type Antoine struct {
	A float64 `toml:"a" json:"a"`
	B float64 `toml:"b" json:"b"`
	C float64 `toml:"c" json:"c"`
}

// VaporPressure evaluates the Antoine equation at temperature T [K].
func (an Antoine) VaporPressure(T float64) float64 {
	return math.Pow(10, an.A-an.B/(T+an.C))
}

// RelativeVolatility computes alpha as the ratio of the larger to the
// smaller pure-component vapor pressure at temperature T [K].
func RelativeVolatility(first, second Antoine, T float64) (float64, error) {
	p1 := first.VaporPressure(T)
	p2 := second.VaporPressure(T)
	if !validPressure(p1) || !validPressure(p2) {
		return 0, fmt.Errorf("%w: p1=%g p2=%g at T=%gK", ErrNonPositivePressure, p1, p2, T)
	}
	alpha := math.Max(p1, p2) / math.Min(p1, p2)
	if alpha < 1 {
		return 0, fmt.Errorf("%w: alpha=%g", ErrVolatilityOrder, alpha)
	}
	return alpha, nil
}

func validPressure(p float64) bool {
	return p > 0 && !math.IsInf(p, 1) && !math.IsNaN(p)
}

// Curve is the equilibrium curve of the more volatile component.
// It maps a liquid molar fraction x to the vapor fraction y in
// equilibrium with it. For alpha > 1 the curve is strictly increasing
// with f(0)=0 and f(1)=1.
type Curve struct {
	Alpha float64
}

// NewCurve validates alpha before building a curve.
func NewCurve(alpha float64) (Curve, error) {
	if alpha < 1 || math.IsInf(alpha, 1) || math.IsNaN(alpha) {
		return Curve{}, fmt.Errorf("%w: alpha=%g", ErrVolatilityOrder, alpha)
	}
	return Curve{Alpha: alpha}, nil
}

// Y evaluates the equilibrium vapor fraction at liquid fraction x.
func (c Curve) Y(x float64) float64 {
	return c.Alpha * x / (1 + (c.Alpha-1)*x)
}
