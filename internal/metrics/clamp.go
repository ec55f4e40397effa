package metrics

import "github.com/coresim/pwrsim/internal/core"

// ClampCounter counts safety-clamp events. It plugs into the kernel as a
// core.WarnSink and into run summaries as a Metric, so the run command
// can report how often the clamp fired without the kernel knowing about
// metrics at all.
type ClampCounter struct {
	count int
}

func NewClampCounter() *ClampCounter { return &ClampCounter{} }

// Warn implements core.WarnSink.
func (c *ClampCounter) Warn(string) { c.count++ }

func (c *ClampCounter) Name() string { return "clamp_events" }

// Observe implements Metric; clamp events arrive through Warn instead.
func (c *ClampCounter) Observe(core.Record) {}

func (c *ClampCounter) Value() float64 { return float64(c.count) }

func (c *ClampCounter) Reset() { c.count = 0 }
