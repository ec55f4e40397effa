package bench

import "github.com/coresim/pwrsim/internal/core"

// Summary condenses a recorded trajectory into the handful of figures the
// bench table prints and the regression tests assert against.
type Summary struct {
	Name    string
	Samples int

	PMin, PMax, PFinal float64
	TfMax, TcMax       float64
	RhoFinal           float64

	// FirstBelowFifth is the first time P dropped below 0.2, or -1 if it
	// never did. ReturnedAboveNominal reports whether P climbed back over
	// 1.0 after first falling below 0.5.
	FirstBelowFifth      float64
	ReturnedAboveNominal bool
}

// Summarize scans a recorded trajectory. An empty slice yields a zero
// summary so a failed run still prints.
func Summarize(name string, records []core.Record) Summary {
	s := Summary{Name: name, Samples: len(records), FirstBelowFifth: -1}
	if len(records) == 0 {
		return s
	}
	s.PMin, s.PMax = records[0].P, records[0].P
	droppedBelowHalf := false
	for _, r := range records {
		if r.P < s.PMin {
			s.PMin = r.P
		}
		if r.P > s.PMax {
			s.PMax = r.P
		}
		if r.Tf > s.TfMax {
			s.TfMax = r.Tf
		}
		if r.Tc > s.TcMax {
			s.TcMax = r.Tc
		}
		if s.FirstBelowFifth < 0 && r.P < 0.2 {
			s.FirstBelowFifth = r.T
		}
		if r.P < 0.5 {
			droppedBelowHalf = true
		} else if droppedBelowHalf && r.P > 1.0 {
			s.ReturnedAboveNominal = true
		}
	}
	last := records[len(records)-1]
	s.PFinal = last.P
	s.RhoFinal = last.Rho
	return s
}
