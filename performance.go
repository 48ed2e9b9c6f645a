package brayton

import (
	"fmt"
	"strings"
)

// Performance is the derived summary of one run, never mutated after the
// run which computed it. Fuel-air ratios and specific thrust are normalized
// to the engine's reference mass flow: core air for the turbojet, total
// (core plus bypass) air for the turbofan.
type Performance struct {
	FlightVelocity     float64 // V0, m/s
	ExitVelocity       float64 // V9, m/s
	FuelAirBurner      float64 // combustor fuel-air ratio
	FuelAirAfterburner float64 // afterburner fuel-air ratio
	FuelAirOverall     float64 // total fuel over reference inlet air
	SpecificThrust     float64 // N per kg/s of reference mass flow
	TSFC               float64 // fuel mass flow per Newton, kg/(s.N)
	// Infeasible reports that a fuel-air denominator was floored: the
	// requested temperature exceeds what the fuel can thermodynamically
	// deliver, and the huge fuel-air ratios are not a usable design point.
	Infeasible bool
	// ThrustFloored reports that the specific thrust sat at or below the
	// TSFC division floor, i.e. the cycle produced no usable thrust.
	ThrustFloored bool
}

// String implements the Stringer interface.
func (p Performance) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "V0: %.4f m/s\n", p.FlightVelocity)
	fmt.Fprintf(&b, "V9: %.4f m/s\n", p.ExitVelocity)
	fmt.Fprintf(&b, "f_comb: %.4f  f_ab: %.4f  f_total: %.4f\n", p.FuelAirBurner, p.FuelAirAfterburner, p.FuelAirOverall)
	fmt.Fprintf(&b, "Specific Thrust: %.4f N/(kg/s)\n", p.SpecificThrust)
	fmt.Fprintf(&b, "TSFC: %.4f mg/s/N", p.TSFC*1e6)
	if p.Infeasible {
		b.WriteString("\nWARNING: fuel-air solve infeasible, ratios are not a design point")
	}
	if p.ThrustFloored {
		b.WriteString("\nWARNING: specific thrust at floor")
	}
	return b.String()
}

// tsfc returns the guarded thrust-specific fuel consumption and whether the
// floor kicked in.
func tsfc(fOverall, specificThrust float64) (float64, bool) {
	if specificThrust <= thrustFloor {
		return fOverall / thrustFloor, true
	}
	return fOverall / specificThrust, false
}

// Report is everything one run produces.
type Report struct {
	Engine      EngineType
	Stations    Stations
	Performance Performance
	// Trace holds one record per executed stage, in pipeline order. It is
	// nil unless tracing was enabled on the engine.
	Trace []StageRecord
}
