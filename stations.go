package brayton

import "fmt"

// Station identifies a flow station, in the ARP-755 style numbering shared
// by both engine variants.
type Station uint8

const (
	// Ambient is the freestream, station 0.
	Ambient Station = iota
	// InletExit is station 2.
	InletExit
	// FanExit is station 13 (turbofan only).
	FanExit
	// CompressorInlet is station 25 (turbofan only, equal to the fan exit).
	CompressorInlet
	// CompressorExit is station 3.
	CompressorExit
	// TurbineInlet is station 4, the combustor exit.
	TurbineInlet
	// TurbineExit is station 5.
	TurbineExit
	// MixerExit is station 6 (turbofan only).
	MixerExit
	// AfterburnerExit is station 7.
	AfterburnerExit
	// NozzleExit is station 9.
	NozzleExit
)

// Number returns the station number.
func (s Station) Number() uint8 {
	switch s {
	case Ambient:
		return 0
	case InletExit:
		return 2
	case FanExit:
		return 13
	case CompressorInlet:
		return 25
	case CompressorExit:
		return 3
	case TurbineInlet:
		return 4
	case TurbineExit:
		return 5
	case MixerExit:
		return 6
	case AfterburnerExit:
		return 7
	case NozzleExit:
		return 9
	default:
		panic("unknown station")
	}
}

// String implements the Stringer interface.
func (s Station) String() string {
	switch s {
	case Ambient:
		return "0 (ambient)"
	case InletExit:
		return "2 (inlet exit)"
	case FanExit:
		return "13 (fan exit)"
	case CompressorInlet:
		return "25 (compressor inlet)"
	case CompressorExit:
		return "3 (compressor exit)"
	case TurbineInlet:
		return "4 (turbine inlet)"
	case TurbineExit:
		return "5 (turbine exit)"
	case MixerExit:
		return "6 (mixer exit)"
	case AfterburnerExit:
		return "7 (afterburner exit)"
	case NozzleExit:
		return "9 (nozzle exit)"
	default:
		panic("unknown station")
	}
}

// StationState is the stagnation state at one station. A station's state
// exists only once its computing stage has run.
type StationState struct {
	Station Station
	Tt      float64 // stagnation temperature, K
	Pt      float64 // stagnation pressure, Pa
}

// Stations is the station record of one run, in pipeline order.
type Stations []StationState

// At returns the state at the given station.
func (s Stations) At(station Station) (StationState, error) {
	for _, state := range s {
		if state.Station == station {
			return state, nil
		}
	}
	return StationState{}, fmt.Errorf("station %s not computed", station)
}
