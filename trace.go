package brayton

import kitlog "github.com/go-kit/kit/log"

// StageRecord is one per-stage diagnostic sample. Work is only set by
// compression and expansion stages, FuelAir only by combustion stages.
type StageRecord struct {
	Stage   string
	Station Station
	Tt      float64 // K
	Pt      float64 // Pa
	Work    float64 // J/kg
	FuelAir float64
}

// Traceable is implemented by engines which support per-stage tracing.
type Traceable interface {
	EnableTrace(kitlog.Logger)
}

// tracing is the per-engine diagnostic configuration. It replaces a global
// debug toggle: each engine decides for itself, and tracing is purely
// observational, it never perturbs the computed results.
type tracing struct {
	traceOn bool
	logger  kitlog.Logger
}

// EnableTrace turns on per-stage tracing. A nil logger collects the records
// on the report without streaming them.
func (t *tracing) EnableTrace(logger kitlog.Logger) {
	t.traceOn = true
	t.logger = logger
}

// tracer accumulates the stage records of a single run.
type tracer struct {
	cfg     tracing
	subsys  string
	records []StageRecord
}

func newTracer(cfg tracing, subsys string) *tracer {
	return &tracer{cfg: cfg, subsys: subsys}
}

func (t *tracer) record(stage string, state StationState, work, fuelAir float64) {
	if !t.cfg.traceOn {
		return
	}
	t.records = append(t.records, StageRecord{stage, state.Station, state.Tt, state.Pt, work, fuelAir})
	if t.cfg.logger != nil {
		t.cfg.logger.Log("subsys", t.subsys, "stage", stage, "station", state.Station, "Tt(K)", state.Tt, "Pt(Pa)", state.Pt, "work(J/kg)", work, "f", fuelAir)
	}
}
