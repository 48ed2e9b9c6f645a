package brayton

import (
	"fmt"
	"math"
	"strings"
)

// Gas holds the calorically perfect gas properties the cycle relations need.
type Gas struct {
	Gamma float64 // ratio of specific heats
	Cp    float64 // specific heat at constant pressure, J/(kg.K)
	R     float64 // specific gas constant, J/(kg.K)
}

// SpeedOfSound returns the speed of sound in m/s at the given static
// temperature in Kelvin.
func (g Gas) SpeedOfSound(temp float64) float64 {
	return math.Sqrt(g.Gamma * g.R * temp)
}

/* Available gases */

// Air is the cold-section working fluid.
var Air = Gas{1.4, 1005, 287}

// BurnedGas is the hot-section working fluid downstream of the combustor.
var BurnedGas = Gas{1.333, 1148, 287}

// Fuel defines a fuel by its lower heating value.
type Fuel struct {
	Name string
	LHV  float64 // lower heating value, J/kg
}

// String implements the Stringer interface.
func (f Fuel) String() string {
	return fmt.Sprintf("%s (%.1f MJ/kg)", f.Name, f.LHV/1e6)
}

/* Available fuels */

// JetA is the standard commercial kerosene.
var JetA = Fuel{"Jet-A", 43.1e6}

// JP4 is the wide-cut military blend.
var JP4 = Fuel{"JP-4", 42.8e6}

// Hydrogen burns light and very hot.
var Hydrogen = Fuel{"Hydrogen", 120.0e6}

// FuelFromString returns the fuel from its name.
func FuelFromString(name string) (Fuel, error) {
	switch strings.ToLower(name) {
	case "jet-a", "jeta":
		return JetA, nil
	case "jp-4", "jp4":
		return JP4, nil
	case "hydrogen", "h2":
		return Hydrogen, nil
	default:
		return Fuel{}, fmt.Errorf("undefined fuel '%s'", name)
	}
}

// Atmosphere is a static ambient condition.
type Atmosphere struct {
	Temperature float64 // K
	Pressure    float64 // Pa
}

/* Reference atmospheres */

// SeaLevelStandard is the ISA sea-level condition.
var SeaLevelStandard = Atmosphere{288.15, 101325}

// Tropopause is the ISA condition at 11 km, where supersonic cruise lives.
var Tropopause = Atmosphere{216.65, 22632}

const (
	isaLapseRate   = 0.0065  // K/m in the troposphere
	isaGravity     = 9.80665 // m/s^2
	isaAirR        = 287.058 // J/(kg.K)
	tropopauseAltM = 11000.0
)

// AtmosphereAt returns the ISA condition at the given geopotential altitude
// in meters, covering the troposphere and the isothermal lower stratosphere.
// Negative altitudes degrade to sea level.
func AtmosphereAt(altMeters float64) Atmosphere {
	if altMeters <= 0 {
		return SeaLevelStandard
	}
	if altMeters <= tropopauseAltM {
		temp := SeaLevelStandard.Temperature - isaLapseRate*altMeters
		press := SeaLevelStandard.Pressure * math.Pow(temp/SeaLevelStandard.Temperature, isaGravity/(isaAirR*isaLapseRate))
		return Atmosphere{temp, press}
	}
	base := AtmosphereAt(tropopauseAltM)
	press := base.Pressure * math.Exp(-isaGravity*(altMeters-tropopauseAltM)/(isaAirR*base.Temperature))
	return Atmosphere{base.Temperature, press}
}
