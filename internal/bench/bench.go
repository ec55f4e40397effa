// Package bench provides named benchmark scenarios that exercise the
// reactor model and summarize the resulting trajectories. The harness is
// a consumer of the physics kernel, not part of it; it is what the run
// and bench commands execute and what the qualitative regression tests
// assert against.
package bench

import (
	"fmt"
	"sort"

	"github.com/coresim/pwrsim/internal/core"
	"github.com/coresim/pwrsim/internal/physics"
	"github.com/coresim/pwrsim/internal/reactor"
)

// Scenario is one named transient: an initial condition plus a scripted
// control source.
type Scenario struct {
	Name        string
	Description string
	Duration    float64 // s
	Dt          float64 // s
	RecordEvery int

	// Setup builds the initial state and control program for the given
	// parameter pack.
	Setup func(p core.Params) (core.State, core.ControlSource, error)
}

// Registry maps scenario names to their definitions.
type Registry struct {
	scenarios map[string]Scenario
}

// NewRegistry returns the registry with all built-in scenarios.
func NewRegistry() *Registry {
	r := &Registry{scenarios: make(map[string]Scenario)}
	for _, s := range builtins() {
		r.scenarios[s.Name] = s
	}
	return r
}

// Get looks up a scenario by name.
func (r *Registry) Get(name string) (Scenario, error) {
	s, ok := r.scenarios[name]
	if !ok {
		return Scenario{}, fmt.Errorf("unknown scenario: %s (available: %v)", name, r.List())
	}
	return s, nil
}

// List returns the scenario names in sorted order.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.scenarios))
	for name := range r.scenarios {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Run executes a scenario and summarizes its trajectory.
func (r *Registry) Run(name string, params core.Params, cfg core.SimConfig) ([]core.Record, Summary, error) {
	s, err := r.Get(name)
	if err != nil {
		return nil, Summary{}, err
	}
	initial, src, err := s.Setup(params)
	if err != nil {
		return nil, Summary{}, err
	}
	m, err := reactor.New(initial, params, cfg)
	if err != nil {
		return nil, Summary{}, err
	}
	records, err := m.Run(s.Duration, s.Dt, src, s.RecordEvery)
	if err != nil {
		return records, Summary{}, err
	}
	return records, Summarize(s.Name, records), nil
}

func builtins() []Scenario {
	return []Scenario{
		{
			Name:        "steady-hold",
			Description: "hold critical at nominal power",
			Duration:    60, Dt: 0.05, RecordEvery: 20,
			Setup: func(p core.Params) (core.State, core.ControlSource, error) {
				s, rod, err := physics.CriticalSteadyState(1.0, &p, true)
				if err != nil {
					return core.State{}, nil, err
				}
				return s, core.Constant{Rod: rod, PumpOn: true}, nil
			},
		},
		{
			Name:        "rod-insertion",
			Description: "step the bank in by 5% of travel at t=5s",
			Duration:    60, Dt: 0.05, RecordEvery: 20,
			Setup: func(p core.Params) (core.State, core.ControlSource, error) {
				s, rod, err := physics.CriticalSteadyState(1.0, &p, true)
				if err != nil {
					return core.State{}, nil, err
				}
				return s, core.Schedule(func(t float64) core.Controls {
					c := core.Controls{Rod: rod, PumpOn: true}
					if t >= 5 {
						c.Rod = rod - 0.05
					}
					return c
				}), nil
			},
		},
		{
			Name:        "rod-withdrawal",
			Description: "step the bank out by 2% of travel at t=5s",
			Duration:    60, Dt: 0.05, RecordEvery: 20,
			Setup: func(p core.Params) (core.State, core.ControlSource, error) {
				s, rod, err := physics.CriticalSteadyState(1.0, &p, true)
				if err != nil {
					return core.State{}, nil, err
				}
				return s, core.Schedule(func(t float64) core.Controls {
					c := core.Controls{Rod: rod, PumpOn: true}
					if t >= 5 {
						c.Rod = rod + 0.02
					}
					return c
				}), nil
			},
		},
		{
			Name:        "scram",
			Description: "trip the reactor at t=5s from nominal power",
			Duration:    60, Dt: 0.05, RecordEvery: 20,
			Setup: func(p core.Params) (core.State, core.ControlSource, error) {
				s, rod, err := physics.CriticalSteadyState(1.0, &p, true)
				if err != nil {
					return core.State{}, nil, err
				}
				return s, core.Schedule(func(t float64) core.Controls {
					return core.Controls{Rod: rod, PumpOn: true, Scram: t >= 5}
				}), nil
			},
		},
		{
			Name:        "pump-trip",
			Description: "lose forced circulation at t=5s",
			Duration:    120, Dt: 0.05, RecordEvery: 40,
			Setup: func(p core.Params) (core.State, core.ControlSource, error) {
				s, rod, err := physics.CriticalSteadyState(1.0, &p, true)
				if err != nil {
					return core.State{}, nil, err
				}
				return s, core.Schedule(func(t float64) core.Controls {
					return core.Controls{Rod: rod, PumpOn: t < 5}
				}), nil
			},
		},
		{
			Name:        "startup",
			Description: "withdraw from source range through criticality",
			Duration:    120, Dt: 0.05, RecordEvery: 40,
			Setup: func(p core.Params) (core.State, core.ControlSource, error) {
				s, err := physics.SteadyState(1e-6, &p, true)
				if err != nil {
					return core.State{}, nil, err
				}
				const (
					rodFrom = 0.20
					rodTo   = 0.45
					rampEnd = 60.0
				)
				return s, core.Schedule(func(t float64) core.Controls {
					rod := rodTo
					if t < rampEnd {
						rod = rodFrom + (rodTo-rodFrom)*t/rampEnd
					}
					return core.Controls{Rod: rod, PumpOn: true}
				}), nil
			},
		},
	}
}
