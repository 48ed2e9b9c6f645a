package brayton

import "math"

const (
	// fuelAirDenomFloor replaces a non-positive fuel-air denominator.
	// Machine epsilon keeps the quotient very large but finite; a
	// subnormal floor would overflow the ratio to +Inf.
	fuelAirDenomFloor = 2.220446049250313e-16
	// thrustFloor guards the TSFC division when the specific thrust
	// vanishes or goes negative.
	thrustFloor = 1e-9
)

// safePow returns base^exp, degrading to zero for a non-positive base
// instead of letting math.Pow return NaN.
func safePow(base, exp float64) float64 {
	if base <= 0 {
		return 0
	}
	return math.Pow(base, exp)
}

// stagnationRatio returns Tt/T for the given Mach number.
func stagnationRatio(mach, γ float64) float64 {
	return 1 + (γ-1)/2*mach*mach
}

// isentropicTempRatio returns the stagnation temperature ratio across an
// isentropic process with pressure ratio π.
func isentropicTempRatio(π, γ float64) float64 {
	return safePow(π, (γ-1)/γ)
}

// isentropicPressureRatio returns the stagnation pressure ratio across an
// isentropic process with temperature ratio τ.
func isentropicPressureRatio(τ, γ float64) float64 {
	return safePow(τ, γ/(γ-1))
}

// fuelAirDenominator returns the guarded denominator of the combustion
// energy balance, and whether the requested exit temperature is actually
// deliverable by this fuel and efficiency. An infeasible combination gets
// the epsilon floor, so the resulting fuel-air ratio is huge but finite.
func fuelAirDenominator(η, heatingValue, cp, exitTemp float64) (denom float64, feasible bool) {
	denom = η*heatingValue - cp*exitTemp
	if denom <= 0 {
		return fuelAirDenomFloor, false
	}
	return denom, true
}
