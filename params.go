package brayton

import "fmt"

// Efficiencies groups the component effectivenesses. Each is a fraction,
// nominally in (0,1]; the engines do not clamp them.
type Efficiencies struct {
	Inlet, Compressor, Fan, Burner, Turbine, Afterburner, Nozzle float64
}

// PressureLosses groups the fractional retained-pressure ratios across the
// burning and mixing components.
type PressureLosses struct {
	Burner, Afterburner, Mixer float64
}

// TemperatureLimits groups the design temperature caps in Kelvin. Both must
// exceed their upstream temperatures for the fuel-air solves to make sense.
type TemperatureLimits struct {
	TurbineInlet    float64 // combustor exit cap, T_t4
	AfterburnerExit float64 // afterburner exit cap, T_t7
}

// TurbojetDesign holds the turbojet-specific design choice.
type TurbojetDesign struct {
	CompressorRatio float64
}

// TurbofanDesign holds the turbofan-specific design choices.
type TurbofanDesign struct {
	BypassRatio     float64
	FanRatio        float64
	CompressorRatio float64 // core compressor, downstream of the fan
}

// Parameters is the immutable snapshot of every input to one analysis run.
// A zero value is not usable: Validate rejects it before any stage runs.
type Parameters struct {
	Air     Gas // cold-section working fluid
	Exhaust Gas // hot-section working fluid
	Fuel    Fuel
	Mach    float64
	Ambient Atmosphere
	Eta     Efficiencies
	Loss    PressureLosses
	Limits  TemperatureLimits
	Jet     TurbojetDesign
	Fan     TurbofanDesign
}

// Validate checks the engine-agnostic inputs and returns a descriptive error
// for the first precondition violated. The fan efficiency, mixer loss and
// the per-engine design blocks are checked by the engine which uses them, so
// a turbojet run never demands a bypass ratio.
func (p Parameters) Validate() error {
	if p.Air.Gamma <= 1 || p.Exhaust.Gamma <= 1 {
		return fmt.Errorf("inputs not initialized: γ must exceed 1 (air=%v, gas=%v)", p.Air.Gamma, p.Exhaust.Gamma)
	}
	if p.Air.Cp <= 0 || p.Exhaust.Cp <= 0 {
		return fmt.Errorf("inputs not initialized: cp must be positive (air=%v, gas=%v)", p.Air.Cp, p.Exhaust.Cp)
	}
	if p.Air.R <= 0 {
		return fmt.Errorf("inputs not initialized: R must be positive (got %v)", p.Air.R)
	}
	if p.Fuel.LHV <= 0 {
		return fmt.Errorf("inputs not initialized: fuel heating value must be positive (got %v)", p.Fuel.LHV)
	}
	if p.Mach < 0 {
		return fmt.Errorf("inputs not initialized: Mach must not be negative (got %v)", p.Mach)
	}
	if p.Ambient.Temperature <= 0 || p.Ambient.Pressure <= 0 {
		return fmt.Errorf("inputs not initialized: ambient conditions must be positive (T=%v, P=%v)", p.Ambient.Temperature, p.Ambient.Pressure)
	}
	etas := []struct {
		name string
		val  float64
	}{
		{"inlet", p.Eta.Inlet},
		{"compressor", p.Eta.Compressor},
		{"burner", p.Eta.Burner},
		{"turbine", p.Eta.Turbine},
		{"afterburner", p.Eta.Afterburner},
		{"nozzle", p.Eta.Nozzle},
	}
	for _, η := range etas {
		if η.val <= 0 {
			return fmt.Errorf("inputs not initialized: η %s must be positive (got %v)", η.name, η.val)
		}
	}
	if p.Loss.Burner <= 0 || p.Loss.Afterburner <= 0 {
		return fmt.Errorf("inputs not initialized: pressure losses must be positive (burner=%v, afterburner=%v)", p.Loss.Burner, p.Loss.Afterburner)
	}
	if p.Limits.TurbineInlet <= 0 || p.Limits.AfterburnerExit <= 0 {
		return fmt.Errorf("inputs not initialized: temperature limits must be positive (T_t4=%v, T_t7=%v)", p.Limits.TurbineInlet, p.Limits.AfterburnerExit)
	}
	return nil
}
