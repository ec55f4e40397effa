package reactor

import (
	"fmt"
	"math"

	"github.com/coresim/pwrsim/internal/core"
	"github.com/coresim/pwrsim/internal/integrators"
	"github.com/coresim/pwrsim/internal/physics"
)

// Model owns one reactor state plus the scram-timing bookkeeping layered
// on top of it. All fields are private; state leaves only as copies.
type Model struct {
	state   core.State
	params  core.Params
	cfg     core.SimConfig
	stepper integrators.Stepper

	scramStart  float64
	scramActive bool
}

// New validates the parameter pack and initial state, takes defensive
// copies of both, and returns a model configured per cfg (zero cfg means
// RK4 with clamp warnings off).
func New(initial core.State, params core.Params, cfg core.SimConfig) (*Model, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if err := core.ValidateState(initial, &params); err != nil {
		return nil, err
	}
	if cfg.Method == "" {
		cfg.Method = core.MethodRK4
	}
	if cfg.Warn == nil {
		cfg.Warn = core.NopSink{}
	}
	stepper, err := integrators.ForMethod(cfg.Method)
	if err != nil {
		return nil, err
	}
	// Params carries slices; copy them so a caller mutating its pack
	// cannot reach inside the model.
	params.Beta = append([]float64(nil), params.Beta...)
	params.DecayConst = append([]float64(nil), params.DecayConst...)
	return &Model{state: initial, params: params, cfg: cfg, stepper: stepper}, nil
}

// Step advances the state by dt under the given controls and returns a
// copy of the committed state. It is the only mutator of model state.
func (m *Model) Step(dt float64, c core.Controls) (core.State, error) {
	if err := core.ValidateTimestep(dt, m.cfg.Method, &m.params); err != nil {
		return core.State{}, err
	}
	if err := core.ValidateControls(c); err != nil {
		return core.State{}, err
	}

	// Scram bookkeeping: the rising edge pins the initiation time, the
	// falling edge clears it.
	if c.Scram && !m.scramActive {
		m.scramStart = m.state.T
		m.scramActive = true
	} else if !c.Scram && m.scramActive {
		m.scramStart = 0
		m.scramActive = false
	}

	rho := physics.TotalReactivity(m.state, c, m.scramStart, &m.params)

	// Reactivity and pump state are frozen across the integrator's
	// substages; one evaluation per outer step.
	f := func(x core.Vector, t float64) core.Vector {
		return physics.Derivatives(core.Unpack(x, t), rho.Total, c.PumpOn, &m.params)
	}
	next := core.Unpack(m.stepper.Step(f, m.state.Pack(), m.state.T, dt), m.state.T+dt)
	next = core.ClampState(next, &m.params, m.cfg)

	m.state = next
	return m.state, nil
}

// GetState returns a copy of the current state.
func (m *Model) GetState() core.State { return m.state }

// GetReactivity decomposes the reactivity the given controls would see
// right now. It reads the scram bookkeeping but never mutates it: a scram
// demand with no recorded initiation evaluates at Δt = 0.
func (m *Model) GetReactivity(c core.Controls) core.Reactivity {
	start := m.scramStart
	if c.Scram && !m.scramActive {
		start = m.state.T
	}
	return physics.TotalReactivity(m.state, c, start, &m.params)
}

// Params returns a copy of the model's parameter pack.
func (m *Model) Params() core.Params {
	p := m.params
	p.Beta = append([]float64(nil), p.Beta...)
	p.DecayConst = append([]float64(nil), p.DecayConst...)
	return p
}

// Run steps the model for the given duration at fixed dt, drawing
// controls from src and recording every recordEvery-th sample. The first
// and final samples are always recorded. The step count is duration/dt
// rounded to the nearest whole step. The returned slice is plain
// serializable data.
func (m *Model) Run(duration, dt float64, src core.ControlSource, recordEvery int) ([]core.Record, error) {
	if err := core.ValidateTimestep(dt, m.cfg.Method, &m.params); err != nil {
		return nil, err
	}
	if duration <= 0 {
		return nil, fmt.Errorf("run duration must be positive, got %g", duration)
	}
	if recordEvery <= 0 {
		recordEvery = 1
	}
	steps := int(math.Round(duration / dt))
	records := make([]core.Record, 0, steps/recordEvery+2)

	c := src.At(m.state.T)
	records = append(records, core.Snapshot(m.state, m.GetReactivity(c).Total, c))

	for i := 1; i <= steps; i++ {
		c = src.At(m.state.T)
		if _, err := m.Step(dt, c); err != nil {
			return records, err
		}
		if i%recordEvery == 0 || i == steps {
			records = append(records, core.Snapshot(m.state, m.GetReactivity(c).Total, c))
		}
	}
	return records, nil
}

// Reset replaces the state wholesale and clears the scram bookkeeping.
// The parameter pack is not re-validated; the new state is.
func (m *Model) Reset(newState core.State) error {
	if err := core.ValidateState(newState, &m.params); err != nil {
		return err
	}
	m.state = newState
	m.scramStart = 0
	m.scramActive = false
	return nil
}
