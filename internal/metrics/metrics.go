// Package metrics summarizes recorded trajectories in an observer style:
// each metric folds over the records of a run and yields one figure.
package metrics

import "github.com/coresim/pwrsim/internal/core"

// Metric observes each record of a run and reduces it to a single value.
type Metric interface {
	Name() string
	Observe(r core.Record)
	Value() float64
	Reset()
}

// Apply runs every metric over the records and collects the results.
func Apply(records []core.Record, ms ...Metric) map[string]float64 {
	for _, m := range ms {
		m.Reset()
	}
	for _, r := range records {
		for _, m := range ms {
			m.Observe(r)
		}
	}
	out := make(map[string]float64, len(ms))
	for _, m := range ms {
		out[m.Name()] = m.Value()
	}
	return out
}

// Defaults returns the metric set the run command reports.
func Defaults(p *core.Params) []Metric {
	return []Metric{
		NewPowerBand(1.0, 0.01),
		NewPeakPower(),
		NewTempMargin(p.TempMax),
	}
}
