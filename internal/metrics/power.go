package metrics

import (
	"math"

	"github.com/coresim/pwrsim/internal/core"
)

// PowerBand measures the fraction of samples whose power stays within
// ±band of the target level.
type PowerBand struct {
	target, band float64
	inBand       int
	samples      int
}

func NewPowerBand(target, band float64) *PowerBand {
	return &PowerBand{target: target, band: band}
}

func (p *PowerBand) Name() string { return "power_band" }

func (p *PowerBand) Observe(r core.Record) {
	p.samples++
	if math.Abs(r.P-p.target) <= p.band {
		p.inBand++
	}
}

func (p *PowerBand) Value() float64 {
	if p.samples == 0 {
		return 0
	}
	return float64(p.inBand) / float64(p.samples)
}

func (p *PowerBand) Reset() {
	p.inBand = 0
	p.samples = 0
}

// PeakPower tracks the maximum normalized power seen during a run.
type PeakPower struct {
	peak float64
}

func NewPeakPower() *PeakPower { return &PeakPower{} }

func (p *PeakPower) Name() string { return "peak_power" }

func (p *PeakPower) Observe(r core.Record) {
	if r.P > p.peak {
		p.peak = r.P
	}
}

func (p *PeakPower) Value() float64 { return p.peak }

func (p *PeakPower) Reset() { p.peak = 0 }

// TempMargin tracks the smallest margin between fuel temperature and the
// configured ceiling, in kelvin.
type TempMargin struct {
	limit  float64
	margin float64
	seen   bool
}

func NewTempMargin(limit float64) *TempMargin { return &TempMargin{limit: limit} }

func (t *TempMargin) Name() string { return "fuel_temp_margin" }

func (t *TempMargin) Observe(r core.Record) {
	m := t.limit - r.Tf
	if !t.seen || m < t.margin {
		t.margin = m
		t.seen = true
	}
}

func (t *TempMargin) Value() float64 {
	if !t.seen {
		return t.limit
	}
	return t.margin
}

func (t *TempMargin) Reset() {
	t.margin = 0
	t.seen = false
}
