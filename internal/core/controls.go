package core

// Controls are the operator inputs applied over one step. Rod position
// runs from 0 (fully inserted) to 1 (fully withdrawn). Scram timing is
// derived by the reactor model; only the demand flag travels here.
type Controls struct {
	Rod    float64
	PumpOn bool
	Scram  bool
}

// ControlSource yields the controls to apply at simulation time t.
// It replaces the untyped "record or function" union of a scripted run
// with two explicit variants, Constant and Schedule.
type ControlSource interface {
	At(t float64) Controls
}

// Constant holds the same controls for the whole run.
type Constant Controls

// At implements ControlSource.
func (c Constant) At(t float64) Controls { return Controls(c) }

// Schedule derives controls from simulation time, supporting scripted
// transients such as a delayed scram or a rod ramp.
type Schedule func(t float64) Controls

// At implements ControlSource.
func (f Schedule) At(t float64) Controls { return f(t) }
