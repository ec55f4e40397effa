package core

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestValidateTimestep(t *testing.T) {
	p := Default()
	tests := []struct {
		name   string
		dt     float64
		method Method
		ok     bool
	}{
		{"rk4 at limit", 0.05, MethodRK4, true},
		{"rk4 above limit", 0.051, MethodRK4, false},
		{"euler at limit", 0.01, MethodEuler, true},
		{"euler above limit", 0.05, MethodEuler, false},
		{"below dt min", 1e-9, MethodRK4, false},
		{"zero", 0, MethodRK4, false},
		{"negative", -0.01, MethodRK4, false},
		{"nan", math.NaN(), MethodRK4, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTimestep(tt.dt, tt.method, &p)
			if tt.ok && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tt.ok {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !errors.Is(err, ErrInvalidTimestep) {
					t.Errorf("error %v does not wrap ErrInvalidTimestep", err)
				}
			}
		})
	}
}

func TestValidateControls(t *testing.T) {
	tests := []struct {
		name string
		c    Controls
		ok   bool
	}{
		{"inserted", Controls{Rod: 0}, true},
		{"withdrawn", Controls{Rod: 1}, true},
		{"mid with scram", Controls{Rod: 0.5, Scram: true}, true},
		{"below range", Controls{Rod: -0.01}, false},
		{"above range", Controls{Rod: 1.01}, false},
		{"nan", Controls{Rod: math.NaN()}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateControls(tt.c)
			if tt.ok && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalidControls) {
				t.Errorf("got %v, want ErrInvalidControls", err)
			}
		})
	}
}

func TestValidateState(t *testing.T) {
	p := Default()
	good := State{P: 1, Tf: 900, Tc: 590}

	if err := ValidateState(good, &p); err != nil {
		t.Fatalf("valid state rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*State)
	}{
		{"nan power", func(s *State) { s.P = math.NaN() }},
		{"negative power", func(s *State) { s.P = -0.1 }},
		{"negative precursor", func(s *State) { s.C[3] = -1 }},
		{"negative xenon", func(s *State) { s.Xe135 = -1 }},
		{"zero fuel temp", func(s *State) { s.Tf = 0 }},
		{"negative coolant temp", func(s *State) { s.Tc = -10 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := good
			tt.mutate(&s)
			err := ValidateState(s, &p)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, ErrInvalidState) {
				t.Errorf("error %v does not wrap ErrInvalidState", err)
			}
		})
	}
}

type spySink struct {
	msgs []string
}

func (s *spySink) Warn(msg string) { s.msgs = append(s.msgs, msg) }

func TestClampState(t *testing.T) {
	p := Default()
	sink := &spySink{}
	cfg := SimConfig{WarnOnClamp: true, Warn: sink}

	s := State{
		T:     3.0,
		P:     20.0, // above PMax
		Tf:    100,  // below TempMin
		Tc:    5000, // above TempMax
		I135:  -1,
		Xe135: -2,
	}
	s.C[1] = -0.5

	got := ClampState(s, &p, cfg)

	if got.P != p.PMax {
		t.Errorf("P = %g, want clamp to %g", got.P, p.PMax)
	}
	if got.Tf != p.TempMin {
		t.Errorf("Tf = %g, want clamp to %g", got.Tf, p.TempMin)
	}
	if got.Tc != p.TempMax {
		t.Errorf("Tc = %g, want clamp to %g", got.Tc, p.TempMax)
	}
	if got.C[1] != 0 || got.I135 != 0 || got.Xe135 != 0 {
		t.Errorf("negative inventories not zeroed: C[1]=%g I=%g Xe=%g",
			got.C[1], got.I135, got.Xe135)
	}
	if len(sink.msgs) != 6 {
		t.Errorf("expected 6 warnings, got %d: %v", len(sink.msgs), sink.msgs)
	}
	for _, msg := range sink.msgs {
		if !strings.Contains(msg, "t=3.000s") {
			t.Errorf("warning missing timestamp: %q", msg)
		}
	}
}

func TestClampStateInRange(t *testing.T) {
	p := Default()
	sink := &spySink{}
	cfg := SimConfig{WarnOnClamp: true, Warn: sink}

	s := State{P: 1, Tf: 895, Tc: 595, I135: 2100, Xe135: 1171}
	got := ClampState(s, &p, cfg)
	if got != s {
		t.Errorf("in-range state modified: %+v", got)
	}
	if len(sink.msgs) != 0 {
		t.Errorf("unexpected warnings: %v", sink.msgs)
	}
}

func TestClampStateSilentByDefault(t *testing.T) {
	p := Default()
	sink := &spySink{}
	cfg := SimConfig{Warn: sink} // WarnOnClamp off

	got := ClampState(State{P: 20, Tf: 900, Tc: 590}, &p, cfg)
	if got.P != p.PMax {
		t.Errorf("P = %g, want clamp to %g", got.P, p.PMax)
	}
	if len(sink.msgs) != 0 {
		t.Errorf("warnings emitted with WarnOnClamp off: %v", sink.msgs)
	}
}

func TestClampStateNilSink(t *testing.T) {
	p := Default()
	// A zero SimConfig must not panic even when warnings fire.
	got := ClampState(State{P: 20, Tf: 900, Tc: 590}, &p, SimConfig{WarnOnClamp: true})
	if got.P != p.PMax {
		t.Errorf("P = %g, want clamp to %g", got.P, p.PMax)
	}
}
