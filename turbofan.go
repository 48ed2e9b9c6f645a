package brayton

import "fmt"

// Turbofan is the mixed-exhaust afterburning turbofan cycle. All inlet air
// passes the fan; the bypass stream rejoins the core stream in the mixer
// ahead of the afterburner. Its performance figures are normalized per unit
// of total (core plus bypass) inlet air.
type Turbofan struct {
	Params Parameters
	tracing
}

// NewTurbofan returns a turbofan engine for the given parameters.
func NewTurbofan(p Parameters) *Turbofan {
	return &Turbofan{Params: p}
}

// Type implements the Engine interface.
func (e *Turbofan) Type() EngineType {
	return TypeTurbofan
}

// Run implements the Engine interface. The pipeline is strictly linear:
// inlet, fan, core compressor, combustor, turbine, mixer, afterburner,
// nozzle, each exactly once.
func (e *Turbofan) Run() (*Report, error) {
	p := e.Params
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if p.Eta.Fan <= 0 {
		return nil, fmt.Errorf("inputs not initialized: η fan must be positive (got %v)", p.Eta.Fan)
	}
	if p.Loss.Mixer <= 0 {
		return nil, fmt.Errorf("inputs not initialized: mixer pressure loss must be positive (got %v)", p.Loss.Mixer)
	}
	if p.Fan.BypassRatio < 0 {
		return nil, fmt.Errorf("inputs not initialized: bypass ratio must not be negative (got %v)", p.Fan.BypassRatio)
	}
	if p.Fan.FanRatio <= 0 || p.Fan.CompressorRatio <= 0 {
		return nil, fmt.Errorf("inputs not initialized: turbofan pressure ratios must be positive (fan=%v, compressor=%v)", p.Fan.FanRatio, p.Fan.CompressorRatio)
	}
	trace := newTracer(e.tracing, "turbofan")
	stations := make(Stations, 0, 10)

	v0, tt0, pt0 := inlet(p)
	stations = append(stations, StationState{Ambient, tt0, pt0})
	st2 := StationState{InletExit, tt0, pt0 * p.Eta.Inlet}
	stations = append(stations, st2)
	trace.record("inlet", st2, 0, 0)

	// The fan processes all inlet air; its specific work is per unit mass
	// through the fan. The fan exit feeds both the bypass duct and the
	// core compressor.
	tt13, pt13, workF := compress(st2.Tt, st2.Pt, p.Fan.FanRatio, p.Eta.Fan, p.Air)
	st13 := StationState{FanExit, tt13, pt13}
	stations = append(stations, st13)
	trace.record("fan", st13, workF, 0)
	st25 := StationState{CompressorInlet, tt13, pt13}
	stations = append(stations, st25)

	tt3, pt3, workC := compress(st25.Tt, st25.Pt, p.Fan.CompressorRatio, p.Eta.Compressor, p.Air)
	st3 := StationState{CompressorExit, tt3, pt3}
	stations = append(stations, st3)
	trace.record("compressor", st3, workC, 0)

	fComb, pt4, combFeasible := burn(tt3, pt3, p.Limits.TurbineInlet, p.Air.Cp, p.Eta.Burner, p.Loss.Burner, p)
	st4 := StationState{TurbineInlet, p.Limits.TurbineInlet, pt4}
	stations = append(stations, st4)
	trace.record("combustor", st4, 0, fComb)

	// Shaft balance: the turbine drives the fan, which processes the
	// bypass-plus-core flow, and the core compressor, per unit of
	// post-combustion core flow.
	shaftWork := (1+p.Fan.BypassRatio)*workF + workC
	tt5, pt5 := expand(st4.Tt, st4.Pt, shaftWork, 1+fComb, p.Eta.Turbine, p.Exhaust)
	st5 := StationState{TurbineExit, tt5, pt5}
	stations = append(stations, st5)
	trace.record("turbine", st5, shaftWork, 0)

	// Mass-weighted energy balance of the bypass and core streams.
	mBypass := p.Fan.BypassRatio
	mCore := 1 + fComb
	tt6 := (mBypass*p.Air.Cp*tt13 + mCore*p.Exhaust.Cp*tt5) / ((mBypass + mCore) * p.Exhaust.Cp)
	pt6 := pt13 * p.Loss.Mixer
	st6 := StationState{MixerExit, tt6, pt6}
	stations = append(stations, st6)
	trace.record("mixer", st6, 0, 0)

	// The afterburner heats the mixed stream, referenced to the mixer exit.
	fAB, pt7, abFeasible := burn(tt6, pt6, p.Limits.AfterburnerExit, p.Exhaust.Cp, p.Eta.Afterburner, p.Loss.Afterburner, p)
	st7 := StationState{AfterburnerExit, p.Limits.AfterburnerExit, pt7}
	stations = append(stations, st7)
	trace.record("afterburner", st7, 0, fAB)

	tt9, pt9, v9 := nozzleExit(st7.Tt, st7.Pt, p.Ambient.Pressure, p.Eta.Nozzle, p.Exhaust)
	st9 := StationState{NozzleExit, tt9, pt9}
	stations = append(stations, st9)
	trace.record("nozzle", st9, 0, 0)

	// Mass-flow bookkeeping over a reference core flow of 1: the combustor
	// fuels the core only, the afterburner fuels the whole mixed stream,
	// and everything is normalized to total inlet air.
	mInlet := 1 + p.Fan.BypassRatio
	mFuelComb := fComb
	mMixed := mInlet + mFuelComb
	mFuelAB := mMixed * fAB
	mExit := mMixed + mFuelAB
	fOverall := (mFuelComb + mFuelAB) / mInlet
	specificThrust := (mExit*v9 - mInlet*v0) / mInlet
	tsfcVal, floored := tsfc(fOverall, specificThrust)

	perf := Performance{
		FlightVelocity:     v0,
		ExitVelocity:       v9,
		FuelAirBurner:      fComb,
		FuelAirAfterburner: fAB,
		FuelAirOverall:     fOverall,
		SpecificThrust:     specificThrust,
		TSFC:               tsfcVal,
		Infeasible:         !combFeasible || !abFeasible,
		ThrustFloored:      floored,
	}
	return &Report{TypeTurbofan, stations, perf, trace.records}, nil
}
