package brayton

import (
	"math"
	"reflect"
	"testing"

	"github.com/gonum/floats"
)

func TestTurbojetTropopauseCruise(t *testing.T) {
	report, err := NewTurbojet(tropopauseCruise()).Run()
	if err != nil {
		t.Fatal(err)
	}
	if report.Engine != TypeTurbojet {
		t.Fatal("wrong engine type on the report")
	}
	stationCases := []struct {
		station Station
		tt, pt  float64
	}{
		{Ambient, 248.013150, 36297.626209},
		{InletExit, 248.013150, 35571.673685},
		{CompressorExit, 700.670094, 1067150.210539},
		{TurbineInlet, 1700, 1024464.202118},
		{TurbineExit, 1315.507417, 331119.319184},
		{AfterburnerExit, 2000, 311252.160033},
		{NozzleExit, 2000, 311252.160033},
	}
	for _, exp := range stationCases {
		state, serr := report.Stations.At(exp.station)
		if serr != nil {
			t.Fatal(serr)
		}
		if !floats.EqualWithinAbs(state.Tt, exp.tt, 1e-4) {
			t.Fatalf("station %s: Tt=%f, expected %f", exp.station, state.Tt, exp.tt)
		}
		if !floats.EqualWithinAbs(state.Pt, exp.pt, 1e-2) {
			t.Fatalf("station %s: Pt=%f, expected %f", exp.station, state.Pt, exp.pt)
		}
	}
	perf := report.Performance
	if !floats.EqualWithinAbs(perf.FlightVelocity, 250.814909, 1e-4) {
		t.Fatalf("V0=%f", perf.FlightVelocity)
	}
	if !floats.EqualWithinAbs(perf.ExitVelocity, 1470.429260, 1e-4) {
		t.Fatalf("V9=%f", perf.ExitVelocity)
	}
	if perf.ExitVelocity <= perf.FlightVelocity {
		t.Fatal("the exhaust must be faster than the freestream")
	}
	if !floats.EqualWithinAbs(perf.FuelAirBurner, 0.03063620, 1e-7) {
		t.Fatalf("f_comb=%f", perf.FuelAirBurner)
	}
	if !floats.EqualWithinAbs(perf.FuelAirAfterburner, 0.01988807, 1e-7) {
		t.Fatalf("f_ab=%f", perf.FuelAirAfterburner)
	}
	if !floats.EqualWithinAbs(perf.FuelAirOverall, 0.05113357, 1e-7) {
		t.Fatalf("f_total=%f", perf.FuelAirOverall)
	}
	if !floats.EqualWithinAbs(perf.SpecificThrust, 1294.802645, 1e-4) {
		t.Fatalf("specific thrust=%f", perf.SpecificThrust)
	}
	if !floats.EqualWithinAbsOrRel(perf.TSFC, 3.9491398539e-5, 1e-12, 1e-8) {
		t.Fatalf("TSFC=%e", perf.TSFC)
	}
	if perf.Infeasible || perf.ThrustFloored {
		t.Fatal("a nominal cruise point must not be flagged")
	}
	if report.Trace != nil {
		t.Fatal("trace must stay nil unless enabled")
	}
}

func TestTurbojetMissingInputs(t *testing.T) {
	if _, err := NewTurbojet(Parameters{}).Run(); err == nil {
		t.Fatal("a zero parameter set must be rejected before any stage")
	}
	p := tropopauseCruise()
	p.Jet.CompressorRatio = 0
	if _, err := NewTurbojet(p).Run(); err == nil {
		t.Fatal("a missing compressor ratio must be rejected")
	}
}

func TestTurbojetCombustorMonotonicity(t *testing.T) {
	prev := -1.0
	for _, tt4 := range []float64{1500, 1600, 1700, 1800, 1900} {
		p := tropopauseCruise()
		p.Limits.TurbineInlet = tt4
		report, err := NewTurbojet(p).Run()
		if err != nil {
			t.Fatal(err)
		}
		if report.Performance.Infeasible {
			t.Fatalf("T_t4=%f should be feasible with Jet-A", tt4)
		}
		if report.Performance.FuelAirBurner <= prev {
			t.Fatalf("f_comb must strictly increase with T_t4, got %f after %f", report.Performance.FuelAirBurner, prev)
		}
		prev = report.Performance.FuelAirBurner
	}
}

func TestTurbojetWorkBalance(t *testing.T) {
	p := tropopauseCruise()
	report, err := NewTurbojet(p).Run()
	if err != nil {
		t.Fatal(err)
	}
	st2, _ := report.Stations.At(InletExit)
	st3, _ := report.Stations.At(CompressorExit)
	st4, _ := report.Stations.At(TurbineInlet)
	st5, _ := report.Stations.At(TurbineExit)
	workCompressor := p.Air.Cp * (st3.Tt - st2.Tt)
	workTurbine := (1 + report.Performance.FuelAirBurner) * p.Exhaust.Cp * (st4.Tt - st5.Tt)
	if !floats.EqualWithinAbsOrRel(workTurbine, workCompressor, 1e-6, 1e-12) {
		t.Fatalf("shaft imbalance: turbine %f vs compressor %f", workTurbine, workCompressor)
	}
}

func TestTurbojetDegenerateFuelStaysFinite(t *testing.T) {
	p := tropopauseCruise()
	p.Fuel = Fuel{"sawdust", 1e3}
	report, err := NewTurbojet(p).Run()
	if err != nil {
		t.Fatal(err)
	}
	perf := report.Performance
	if !perf.Infeasible {
		t.Fatal("an undeliverable temperature rise must be flagged")
	}
	for name, val := range map[string]float64{
		"f_comb":          perf.FuelAirBurner,
		"f_ab":            perf.FuelAirAfterburner,
		"f_total":         perf.FuelAirOverall,
		"specific thrust": perf.SpecificThrust,
		"TSFC":            perf.TSFC,
	} {
		if math.IsNaN(val) || math.IsInf(val, 0) {
			t.Fatalf("%s is not finite: %v", name, val)
		}
	}
}

func TestTurbojetStaticRun(t *testing.T) {
	p := tropopauseCruise()
	p.Mach = 0
	report, err := NewTurbojet(p).Run()
	if err != nil {
		t.Fatal(err)
	}
	if report.Performance.FlightVelocity != 0 {
		t.Fatal("static thrust must see zero flight velocity")
	}
	st0, _ := report.Stations.At(Ambient)
	if !floats.EqualWithinAbs(st0.Tt, p.Ambient.Temperature, 1e-9) || !floats.EqualWithinAbs(st0.Pt, p.Ambient.Pressure, 1e-6) {
		t.Fatal("static stagnation state must reduce to ambient")
	}
	if report.Performance.SpecificThrust <= 0 {
		t.Fatal("static specific thrust must be positive")
	}
}

func TestTurbojetIdempotence(t *testing.T) {
	engine := NewTurbojet(tropopauseCruise())
	first, err := engine.Run()
	if err != nil {
		t.Fatal(err)
	}
	second, err := engine.Run()
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatal("identical runs must produce bit-identical reports")
	}
}
