package bench

import (
	"sort"
	"testing"

	"github.com/coresim/pwrsim/internal/core"
)

func TestRegistry(t *testing.T) {
	r := NewRegistry()

	names := r.List()
	if len(names) != 6 {
		t.Fatalf("got %d scenarios, want 6: %v", len(names), names)
	}
	if !sort.StringsAreSorted(names) {
		t.Errorf("List not sorted: %v", names)
	}

	for _, name := range names {
		s, err := r.Get(name)
		if err != nil {
			t.Errorf("Get(%q) failed: %v", name, err)
		}
		if s.Duration <= 0 || s.Dt <= 0 || s.Setup == nil {
			t.Errorf("scenario %q incompletely defined: %+v", name, s)
		}
	}

	if _, err := r.Get("meltdown"); err == nil {
		t.Error("unknown scenario accepted")
	}
}

func runScenario(t *testing.T, name string) ([]core.Record, Summary) {
	t.Helper()
	records, summary, err := NewRegistry().Run(name, core.Default(), core.DefaultSimConfig())
	if err != nil {
		t.Fatalf("scenario %q failed: %v", name, err)
	}
	if len(records) == 0 {
		t.Fatalf("scenario %q produced no records", name)
	}
	return records, summary
}

func TestSteadyHold(t *testing.T) {
	_, s := runScenario(t, "steady-hold")
	if s.PMin < 0.99 || s.PMax > 1.01 {
		t.Errorf("power left the 1%% band: min=%g max=%g", s.PMin, s.PMax)
	}
}

func TestRodInsertionLowersPower(t *testing.T) {
	_, s := runScenario(t, "rod-insertion")
	if s.PFinal >= 0.99 {
		t.Errorf("final power %g after insertion, want a clear drop", s.PFinal)
	}
	if s.PMin <= 0 {
		t.Errorf("power collapsed to %g, insertion should only reduce it", s.PMin)
	}
}

func TestRodWithdrawalRaisesPower(t *testing.T) {
	_, s := runScenario(t, "rod-withdrawal")
	if s.PMax <= 1.01 {
		t.Errorf("peak power %g after withdrawal, want a clear rise", s.PMax)
	}
	// Temperature feedback must arrest the excursion well below the
	// clamp ceiling.
	if s.PMax >= 12.0 {
		t.Errorf("power ran to the clamp: %g", s.PMax)
	}
}

func TestScramShutdown(t *testing.T) {
	_, s := runScenario(t, "scram")
	if s.FirstBelowFifth < 5 {
		t.Errorf("power below 0.2 at t=%g, before the trip", s.FirstBelowFifth)
	}
	if s.FirstBelowFifth > 15 {
		t.Errorf("power still above 0.2 at t=%g, scram too slow", s.FirstBelowFifth)
	}
	if s.PFinal > 0.1 {
		t.Errorf("final power %g a minute after scram, want < 0.1", s.PFinal)
	}
	if s.ReturnedAboveNominal {
		t.Error("power recovered past nominal after a scram")
	}
}

func TestPumpTrip(t *testing.T) {
	records, s := runScenario(t, "pump-trip")

	// Coolant heats up once forced circulation is lost; the negative
	// feedback then walks power down without a trip.
	if s.TcMax <= 596 {
		t.Errorf("coolant peaked at %g K, expected heating after the trip", s.TcMax)
	}
	if s.PFinal >= 0.95 {
		t.Errorf("final power %g, feedback should have cut it back", s.PFinal)
	}
	for _, r := range records {
		if r.T > 5 && r.PumpOn {
			t.Fatalf("pump still on at t=%g", r.T)
		}
	}
}

func TestStartup(t *testing.T) {
	_, s := runScenario(t, "startup")
	if s.PMax < 1.0 {
		t.Errorf("peak power %g, withdrawal should drive the core through criticality", s.PMax)
	}
	if s.PFinal < 0.5 {
		t.Errorf("final power %g, core should settle at appreciable power", s.PFinal)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize("empty", nil)
	if s.Samples != 0 || s.FirstBelowFifth != -1 {
		t.Errorf("zero summary malformed: %+v", s)
	}
}

func TestSummarize(t *testing.T) {
	records := []core.Record{
		{T: 0, P: 1.0, Tf: 895, Tc: 595},
		{T: 1, P: 0.4, Tf: 900, Tc: 600},
		{T: 2, P: 0.15, Tf: 880, Tc: 590},
		{T: 3, P: 1.1, Tf: 870, Tc: 585, Rho: 0.001},
	}
	s := Summarize("synthetic", records)

	if s.Samples != 4 {
		t.Errorf("Samples = %d, want 4", s.Samples)
	}
	if s.PMin != 0.15 || s.PMax != 1.1 || s.PFinal != 1.1 {
		t.Errorf("power figures wrong: %+v", s)
	}
	if s.TfMax != 900 || s.TcMax != 600 {
		t.Errorf("temperature figures wrong: %+v", s)
	}
	if s.FirstBelowFifth != 2 {
		t.Errorf("FirstBelowFifth = %g, want 2", s.FirstBelowFifth)
	}
	if !s.ReturnedAboveNominal {
		t.Error("recovery above nominal not detected")
	}
	if s.RhoFinal != 0.001 {
		t.Errorf("RhoFinal = %g, want 0.001", s.RhoFinal)
	}
}
