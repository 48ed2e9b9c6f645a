package brayton

import (
	"testing"

	"github.com/gonum/floats"
)

func TestLoadParametersDeck(t *testing.T) {
	params, err := LoadParameters("testdata/tropopause.toml")
	if err != nil {
		t.Fatal(err)
	}
	if err = params.Validate(); err != nil {
		t.Fatal(err)
	}
	if params != tropopauseCruise() {
		t.Fatalf("deck does not round-trip the cruise point:\n%+v\n%+v", params, tropopauseCruise())
	}
	// The deck must drive the engines exactly like the in-code snapshot.
	fromDeck, err := NewTurbojet(params).Run()
	if err != nil {
		t.Fatal(err)
	}
	direct, err := NewTurbojet(tropopauseCruise()).Run()
	if err != nil {
		t.Fatal(err)
	}
	if fromDeck.Performance != direct.Performance {
		t.Fatal("deck-driven run differs from the direct run")
	}
}

func TestLoadParametersAltitude(t *testing.T) {
	params, err := LoadParameters("testdata/altitude.toml")
	if err != nil {
		t.Fatal(err)
	}
	if params.Fuel.Name != "custom" || params.Fuel.LHV != 43.1e6 {
		t.Fatalf("explicit heating value not honored: %s", params.Fuel)
	}
	isa := AtmosphereAt(11000)
	if !floats.EqualWithinAbs(params.Ambient.Temperature, isa.Temperature, 1e-9) {
		t.Fatalf("altitude not resolved through ISA: T=%f", params.Ambient.Temperature)
	}
	if !floats.EqualWithinAbs(params.Ambient.Pressure, isa.Pressure, 1e-6) {
		t.Fatalf("altitude not resolved through ISA: P=%f", params.Ambient.Pressure)
	}
	if err = params.Validate(); err != nil {
		t.Fatal(err)
	}
}

func TestLoadParametersMissingDeck(t *testing.T) {
	if _, err := LoadParameters("testdata/no-such-deck.toml"); err == nil {
		t.Fatal("a missing deck must error out")
	}
}

func TestLoadParametersBadFuel(t *testing.T) {
	if _, err := LoadParameters("testdata/badfuel.toml"); err == nil {
		t.Fatal("an unknown fuel name must error out")
	}
}
