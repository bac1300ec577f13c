// Package absorb sizes a gas absorption column under Henry's law. The
// vapor-liquid equilibrium model is valid for dilute gas concentrations
// in a water solvent.
package absorb

import (
	"errors"
	"fmt"
	"math"
)

var ErrInvalidInput = errors.New("absorb: invalid input")

// referenceTemperature is the standard-state temperature [K] at which
// the tabulated Henry constant applies.
const referenceTemperature = 298.15

// Input collects the caller-supplied column parameters.
type Input struct {
	// Temperature in Kelvin and total pressure in bar.
	Temperature float64
	Pressure    float64
	// HenryStandard is the Henry constant at 298.15K [mol/(kg*bar)];
	// HenryTempCoeff its temperature dependence [K].
	HenryStandard  float64
	HenryTempCoeff float64
	// Gas-phase inlet concentration and outlet threshold [ppm], and the
	// solute concentration already present in the inlet solvent [ppm].
	GasInlet    float64
	GasOutlet   float64
	LiquidInlet float64
	// GasMolarWeight in g/mol, GasInflow in m3/h.
	GasMolarWeight float64
	GasInflow      float64
}

// Result is one completed column sizing.
type Result struct {
	HenryConstant   float64 `json:"henry_constant"`
	LiquidOutletMax float64 `json:"liquid_outlet_max"`
	EquilibriumK    float64 `json:"equilibrium_k"`
	MinSolventFlow  float64 `json:"minimum_solvent_flow"`
}

// HenryConstant adjusts the standard Henry constant to temperature T [K].
func HenryConstant(standard, tempCoeff, T float64) float64 {
	return standard * math.Exp(tempCoeff*(1/T-1/referenceTemperature))
}

// MolarRatio converts a molar fraction x to the molar ratio x/(1-x).
func MolarRatio(fraction float64) (float64, error) {
	if fraction < 0 || fraction >= 1 {
		return 0, fmt.Errorf("%w: molar fraction %g outside [0,1)", ErrInvalidInput, fraction)
	}
	return fraction / (1 - fraction), nil
}

// Size computes the minimum solvent flow from the overall mass balance,
// assuming the liquid leaves the column bottom saturated.
func Size(in Input) (Result, error) {
	if err := validate(in); err != nil {
		return Result{}, err
	}

	henry := HenryConstant(in.HenryStandard, in.HenryTempCoeff, in.Temperature)
	liquidOutletMax := in.Pressure * henry * in.GasMolarWeight * 1000
	k := in.GasInlet / liquidOutletMax

	denominator := in.GasInlet/k - in.LiquidInlet
	if denominator <= 0 {
		return Result{}, fmt.Errorf(
			"%w: inlet solvent concentration %g ppm at or above equilibrium %g ppm",
			ErrInvalidInput, in.LiquidInlet, in.GasInlet/k,
		)
	}

	return Result{
		HenryConstant:   henry,
		LiquidOutletMax: liquidOutletMax,
		EquilibriumK:    k,
		MinSolventFlow:  in.GasInflow * (in.GasInlet - in.GasOutlet) / denominator,
	}, nil
}

func validate(in Input) error {
	for _, c := range []struct {
		name  string
		value float64
	}{
		{"temperature_k", in.Temperature},
		{"pressure_bar", in.Pressure},
		{"henry_standard", in.HenryStandard},
		{"gas_molar_weight", in.GasMolarWeight},
		{"gas_inflow", in.GasInflow},
		{"gas_inlet", in.GasInlet},
	} {
		if c.value <= 0 {
			return fmt.Errorf("%w: %s=%g not positive", ErrInvalidInput, c.name, c.value)
		}
	}
	if in.GasOutlet < 0 || in.GasOutlet >= in.GasInlet {
		return fmt.Errorf("%w: gas outlet %g ppm must sit in [0, inlet %g ppm)",
			ErrInvalidInput, in.GasOutlet, in.GasInlet)
	}
	if in.LiquidInlet < 0 {
		return fmt.Errorf("%w: liquid inlet %g ppm negative", ErrInvalidInput, in.LiquidInlet)
	}
	return nil
}
