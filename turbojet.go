package brayton

import "fmt"

// Turbojet is the afterburning turbojet cycle. Its performance figures are
// normalized per unit of core inlet air.
type Turbojet struct {
	Params Parameters
	tracing
}

// NewTurbojet returns a turbojet engine for the given parameters.
func NewTurbojet(p Parameters) *Turbojet {
	return &Turbojet{Params: p}
}

// Type implements the Engine interface.
func (e *Turbojet) Type() EngineType {
	return TypeTurbojet
}

// Run implements the Engine interface. The pipeline is strictly linear:
// inlet, compressor, combustor, turbine, afterburner, nozzle, each exactly
// once. Degenerate physics never aborts a started run, it degrades locally
// and is flagged on the performance record.
func (e *Turbojet) Run() (*Report, error) {
	p := e.Params
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if p.Jet.CompressorRatio <= 0 {
		return nil, fmt.Errorf("inputs not initialized: turbojet compressor ratio must be positive (got %v)", p.Jet.CompressorRatio)
	}
	trace := newTracer(e.tracing, "turbojet")
	stations := make(Stations, 0, 7)

	v0, tt0, pt0 := inlet(p)
	stations = append(stations, StationState{Ambient, tt0, pt0})
	st2 := StationState{InletExit, tt0, pt0 * p.Eta.Inlet}
	stations = append(stations, st2)
	trace.record("inlet", st2, 0, 0)

	tt3, pt3, workC := compress(st2.Tt, st2.Pt, p.Jet.CompressorRatio, p.Eta.Compressor, p.Air)
	st3 := StationState{CompressorExit, tt3, pt3}
	stations = append(stations, st3)
	trace.record("compressor", st3, workC, 0)

	fComb, pt4, combFeasible := burn(tt3, pt3, p.Limits.TurbineInlet, p.Air.Cp, p.Eta.Burner, p.Loss.Burner, p)
	st4 := StationState{TurbineInlet, p.Limits.TurbineInlet, pt4}
	stations = append(stations, st4)
	trace.record("combustor", st4, 0, fComb)

	// Shaft balance: the turbine drives the compressor, per unit of
	// post-combustion mass flow.
	tt5, pt5 := expand(st4.Tt, st4.Pt, workC, 1+fComb, p.Eta.Turbine, p.Exhaust)
	st5 := StationState{TurbineExit, tt5, pt5}
	stations = append(stations, st5)
	trace.record("turbine", st5, workC, 0)

	fAB, pt7, abFeasible := burn(tt5, pt5, p.Limits.AfterburnerExit, p.Exhaust.Cp, p.Eta.Afterburner, p.Loss.Afterburner, p)
	st7 := StationState{AfterburnerExit, p.Limits.AfterburnerExit, pt7}
	stations = append(stations, st7)
	trace.record("afterburner", st7, 0, fAB)

	tt9, pt9, v9 := nozzleExit(st7.Tt, st7.Pt, p.Ambient.Pressure, p.Eta.Nozzle, p.Exhaust)
	st9 := StationState{NozzleExit, tt9, pt9}
	stations = append(stations, st9)
	trace.record("nozzle", st9, 0, 0)

	// The afterburner fuels the already-fueled core stream.
	fTotal := fComb + (1+fComb)*fAB
	specificThrust := (1+fTotal)*v9 - v0
	tsfcVal, floored := tsfc(fTotal, specificThrust)

	perf := Performance{
		FlightVelocity:     v0,
		ExitVelocity:       v9,
		FuelAirBurner:      fComb,
		FuelAirAfterburner: fAB,
		FuelAirOverall:     fTotal,
		SpecificThrust:     specificThrust,
		TSFC:               tsfcVal,
		Infeasible:         !combFeasible || !abFeasible,
		ThrustFloored:      floored,
	}
	return &Report{TypeTurbojet, stations, perf, trace.records}, nil
}
