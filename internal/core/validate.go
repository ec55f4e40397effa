package core

import (
	"fmt"
	"math"
)

// ValidateTimestep checks dt against the method-specific bounds.
func ValidateTimestep(dt float64, method Method, p *Params) error {
	if math.IsNaN(dt) || dt <= 0 {
		return validationErr(ErrInvalidTimestep, "dt", dt, "timestep must be positive")
	}
	if dt < p.DtMin {
		return validationErr(ErrInvalidTimestep, "dt", dt,
			fmt.Sprintf("below dt_min=%g", p.DtMin))
	}
	if max := method.MaxDt(p); dt > max {
		return validationErr(ErrInvalidTimestep, "dt", dt,
			fmt.Sprintf("above %s limit %g", method, max))
	}
	return nil
}

// ValidateControls checks operator inputs. Controls are validated on the
// way in and never silently adjusted.
func ValidateControls(c Controls) error {
	if math.IsNaN(c.Rod) || c.Rod < 0 || c.Rod > 1 {
		return validationErr(ErrInvalidControls, "rod", c.Rod,
			"rod position must lie in [0,1]")
	}
	return nil
}

// ValidateState checks an initial state for structural soundness and
// physical plausibility.
func ValidateState(s State, p *Params) error {
	if !s.IsValid() {
		return validationErr(ErrInvalidState, "state", math.NaN(), "NaN or Inf field")
	}
	if s.P < 0 {
		return validationErr(ErrInvalidState, "P", s.P, "power cannot be negative")
	}
	for i, c := range s.C {
		if c < 0 {
			return validationErr(ErrInvalidState, fmt.Sprintf("C[%d]", i), c,
				"precursor concentration cannot be negative")
		}
	}
	if s.I135 < 0 || s.Xe135 < 0 {
		return validationErr(ErrInvalidState, "I135/Xe135", s.I135,
			"poison inventory cannot be negative")
	}
	if s.Tf <= 0 || s.Tc <= 0 {
		return validationErr(ErrInvalidState, "Tf/Tc", s.Tf,
			"temperatures must be positive kelvin")
	}
	return nil
}

// ClampState bounds a post-integration state. Out-of-range results are a
// recoverable safety condition: values are pulled back into range and,
// when WarnOnClamp is set, reported through the configured sink. ClampState
// never fails.
func ClampState(s State, p *Params, cfg SimConfig) State {
	warn := func(field string, from, to float64) {
		if cfg.WarnOnClamp {
			cfg.sink().Warn(fmt.Sprintf("clamp at t=%.3fs: %s %g -> %g", s.T, field, from, to))
		}
	}
	if s.P < p.PMin {
		warn("P", s.P, p.PMin)
		s.P = p.PMin
	} else if s.P > p.PMax {
		warn("P", s.P, p.PMax)
		s.P = p.PMax
	}
	for i := range s.C {
		if s.C[i] < 0 {
			warn(fmt.Sprintf("C[%d]", i), s.C[i], 0)
			s.C[i] = 0
		}
	}
	if s.Tf < p.TempMin {
		warn("Tf", s.Tf, p.TempMin)
		s.Tf = p.TempMin
	} else if s.Tf > p.TempMax {
		warn("Tf", s.Tf, p.TempMax)
		s.Tf = p.TempMax
	}
	if s.Tc < p.TempMin {
		warn("Tc", s.Tc, p.TempMin)
		s.Tc = p.TempMin
	} else if s.Tc > p.TempMax {
		warn("Tc", s.Tc, p.TempMax)
		s.Tc = p.TempMax
	}
	if s.I135 < 0 {
		warn("I135", s.I135, 0)
		s.I135 = 0
	}
	if s.Xe135 < 0 {
		warn("Xe135", s.Xe135, 0)
		s.Xe135 = 0
	}
	return s
}
