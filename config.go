package brayton

import "github.com/spf13/viper"

// LoadParameters reads a TOML cycle deck into a Parameters snapshot. Keys
// map one-to-one onto the Parameters fields. [fuel] accepts either a
// catalog `name` or an explicit `heating_value`; [flight] accepts either
// explicit `temperature`/`pressure` or an ISA `altitude` in meters. The
// returned snapshot is not validated: Validate remains the caller's gate,
// so the precondition message stays uniform across front ends.
func LoadParameters(path string) (Parameters, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return Parameters{}, err
	}
	var p Parameters
	rAir := v.GetFloat64("gas.r_air")
	p.Air = Gas{v.GetFloat64("gas.gamma_air"), v.GetFloat64("gas.cp_air"), rAir}
	p.Exhaust = Gas{v.GetFloat64("gas.gamma_gas"), v.GetFloat64("gas.cp_gas"), rAir}
	if v.IsSet("fuel.name") {
		fuel, err := FuelFromString(v.GetString("fuel.name"))
		if err != nil {
			return Parameters{}, err
		}
		p.Fuel = fuel
	} else {
		p.Fuel = Fuel{"custom", v.GetFloat64("fuel.heating_value")}
	}
	p.Mach = v.GetFloat64("flight.mach")
	if v.IsSet("flight.altitude") {
		p.Ambient = AtmosphereAt(v.GetFloat64("flight.altitude"))
	} else {
		p.Ambient = Atmosphere{v.GetFloat64("flight.temperature"), v.GetFloat64("flight.pressure")}
	}
	p.Eta = Efficiencies{
		Inlet:       v.GetFloat64("efficiency.inlet"),
		Compressor:  v.GetFloat64("efficiency.compressor"),
		Fan:         v.GetFloat64("efficiency.fan"),
		Burner:      v.GetFloat64("efficiency.burner"),
		Turbine:     v.GetFloat64("efficiency.turbine"),
		Afterburner: v.GetFloat64("efficiency.afterburner"),
		Nozzle:      v.GetFloat64("efficiency.nozzle"),
	}
	p.Loss = PressureLosses{
		Burner:      v.GetFloat64("loss.burner"),
		Afterburner: v.GetFloat64("loss.afterburner"),
		Mixer:       v.GetFloat64("loss.mixer"),
	}
	p.Limits = TemperatureLimits{
		TurbineInlet:    v.GetFloat64("limits.turbine_inlet"),
		AfterburnerExit: v.GetFloat64("limits.afterburner_exit"),
	}
	p.Jet = TurbojetDesign{v.GetFloat64("turbojet.compressor_ratio")}
	p.Fan = TurbofanDesign{
		BypassRatio:     v.GetFloat64("turbofan.bypass_ratio"),
		FanRatio:        v.GetFloat64("turbofan.fan_ratio"),
		CompressorRatio: v.GetFloat64("turbofan.compressor_ratio"),
	}
	return p, nil
}
