package core

import (
	"errors"
	"math"
	"testing"
)

func TestDefaultValidates(t *testing.T) {
	p := Default()
	if err := p.Validate(); err != nil {
		t.Fatalf("default parameter pack failed validation: %v", err)
	}
}

func TestBetaTotal(t *testing.T) {
	p := Default()
	got := p.BetaTotal()
	want := 0.006502
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("BetaTotal = %g, want %g", got, want)
	}
}

func TestHCool(t *testing.T) {
	p := Default()
	if got := p.HCool(true); got != p.HCoolPumpOn {
		t.Errorf("HCool(true) = %g, want %g", got, p.HCoolPumpOn)
	}
	if got := p.HCool(false); got != p.HCoolPumpOff {
		t.Errorf("HCool(false) = %g, want %g", got, p.HCoolPumpOff)
	}
}

func TestWithOverride(t *testing.T) {
	p, err := With(func(p *Params) {
		p.ScramTau = 2.5
	})
	if err != nil {
		t.Fatalf("With failed: %v", err)
	}
	if p.ScramTau != 2.5 {
		t.Errorf("override not applied: ScramTau = %g", p.ScramTau)
	}

	// The copy must not alias the default pack's slices.
	p.Beta[0] = 99
	if Default().Beta[0] == 99 {
		t.Error("With aliases the default pack's Beta slice")
	}
}

func TestWithInvalidOverride(t *testing.T) {
	_, err := With(func(p *Params) {
		p.GenTime = -1
	})
	if err == nil {
		t.Fatal("expected error for negative generation time")
	}
	if !errors.Is(err, ErrInvalidParams) {
		t.Errorf("error %v does not wrap ErrInvalidParams", err)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Params)
	}{
		{"short beta", func(p *Params) { p.Beta = p.Beta[:5] }},
		{"negative beta", func(p *Params) { p.Beta[2] = -0.001 }},
		{"zero decay const", func(p *Params) { p.DecayConst[0] = 0 }},
		{"zero gen time", func(p *Params) { p.GenTime = 0 }},
		{"zero rod worth", func(p *Params) { p.RodWorthMax = 0 }},
		{"negative margin", func(p *Params) { p.ShutdownMargin = -0.01 }},
		{"positive scram worth", func(p *Params) { p.ScramWorth = 0.09 }},
		{"zero scram tau", func(p *Params) { p.ScramTau = 0 }},
		{"zero nominal power", func(p *Params) { p.PowerNominal = 0 }},
		{"zero fuel mass", func(p *Params) { p.MassFuel = 0 }},
		{"negative yield", func(p *Params) { p.YieldI = -0.01 }},
		{"zero xenon decay", func(p *Params) { p.DecayXe = 0 }},
		{"zero xenon speedup", func(p *Params) { p.XenonSpeedup = 0 }},
		{"dt min above euler max", func(p *Params) { p.DtMin = 0.02 }},
		{"euler max above rk4 max", func(p *Params) { p.DtMaxEuler = 0.1 }},
		{"p min above p max", func(p *Params) { p.PMin = 20 }},
		{"temp min above temp max", func(p *Params) { p.TempMin = 4000 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Default()
			p.Beta = append([]float64(nil), p.Beta...)
			p.DecayConst = append([]float64(nil), p.DecayConst...)
			tt.mutate(&p)
			err := p.Validate()
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !errors.Is(err, ErrInvalidParams) {
				t.Errorf("error %v does not wrap ErrInvalidParams", err)
			}
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Errorf("error %v is not a *ValidationError", err)
			}
		})
	}
}
