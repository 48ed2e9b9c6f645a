package brayton

import (
	"fmt"
	"math"
	"strings"
)

// EngineType defines the supported cycle variants.
type EngineType uint8

const (
	// TypeTurbojet is the afterburning turbojet.
	TypeTurbojet EngineType = iota + 1
	// TypeTurbofan is the mixed-exhaust afterburning turbofan.
	TypeTurbofan
)

// String implements the Stringer interface.
func (t EngineType) String() string {
	switch t {
	case TypeTurbojet:
		return "turbojet"
	case TypeTurbofan:
		return "turbofan"
	default:
		panic("unknown engine type")
	}
}

// Engine is one cycle variant, configured and ready to run.
type Engine interface {
	// Run performs the full station analysis and returns its report.
	// Run is pure given the parameters: every call allocates a fresh
	// station record, so repeated and concurrent runs are independent.
	Run() (*Report, error)
	// Type returns which variant this is.
	Type() EngineType
}

// EngineFromString returns the engine from its name.
func EngineFromString(name string, p Parameters) (Engine, error) {
	switch strings.ToLower(name) {
	case "turbojet", "jet":
		return NewTurbojet(p), nil
	case "turbofan", "fan":
		return NewTurbofan(p), nil
	default:
		return nil, fmt.Errorf("undefined engine '%s'", name)
	}
}

/* Shared station transitions. Both variants are built from these. */

// inlet returns the flight velocity and the freestream stagnation state.
// The inlet recovery factor applies to the pressure only, the temperature
// passes through unchanged (adiabatic deceleration).
func inlet(p Parameters) (v0, tt0, pt0 float64) {
	v0 = p.Mach * p.Air.SpeedOfSound(p.Ambient.Temperature)
	τ := stagnationRatio(p.Mach, p.Air.Gamma)
	tt0 = p.Ambient.Temperature * τ
	pt0 = p.Ambient.Pressure * isentropicPressureRatio(τ, p.Air.Gamma)
	return
}

// compress drives one compression stage (fan, core compressor or jet
// compressor): exit pressure by the design ratio, exit temperature by
// inflating the isentropic rise by 1/η. Also returns the specific work
// absorbed per unit mass passing through the stage.
func compress(ttIn, ptIn, ratio, η float64, gas Gas) (ttOut, ptOut, work float64) {
	ptOut = ptIn * ratio
	ttIsen := ttIn * isentropicTempRatio(ratio, gas.Gamma)
	ttOut = ttIn + (ttIsen-ttIn)/η
	work = gas.Cp * (ttOut - ttIn)
	return
}

// burn drives one combustion stage (combustor or afterburner). The exit
// temperature is pinned at the design limit and the fuel-air ratio solved
// from the steady-state energy balance: the fuel release, net of the
// enthalpy the fuel itself carries out, covers the stream's enthalpy rise.
// cpIn is the heat capacity of the incoming stream (air for the combustor,
// burned gas for the afterburner).
func burn(ttIn, ptIn, ttLimit, cpIn, η, loss float64, p Parameters) (f, ptOut float64, feasible bool) {
	var denom float64
	denom, feasible = fuelAirDenominator(η, p.Fuel.LHV, p.Exhaust.Cp, ttLimit)
	f = (p.Exhaust.Cp*ttLimit - cpIn*ttIn) / denom
	ptOut = ptIn * loss
	return
}

// expand drives the turbine: the exit temperature comes from the shaft work
// balance (turbine work per unit post-combustion flow equals the demanded
// shaft work), the exit pressure from the η-adjusted isentropic drop.
func expand(ttIn, ptIn, shaftWork, massFlow, η float64, gas Gas) (ttOut, ptOut float64) {
	ttOut = ttIn - shaftWork/(massFlow*gas.Cp)
	ttIsen := ttIn - (ttIn-ttOut)/η
	ptOut = ptIn * isentropicPressureRatio(ttIsen/ttIn, gas.Gamma)
	return
}

// nozzleExit expands the stream down to (at least) ambient pressure and
// returns the exit stagnation state and exit velocity. The max guard keeps
// an under-expanded exit from driving the enthalpy drop negative.
func nozzleExit(ttIn, ptIn, ambientP, η float64, gas Gas) (tt9, pt9, v9 float64) {
	pt9 = math.Max(ptIn, ambientP)
	tt9 = ttIn
	tIsen := tt9 * isentropicTempRatio(ambientP/pt9, gas.Gamma)
	tActual := tt9 - η*(tt9-tIsen)
	v9 = math.Sqrt(2 * gas.Cp * (tt9 - tActual))
	return
}
