// Package integrators provides the fixed-step ODE step operators used by
// the reactor model. Both operators are generic over a derivative
// closure, so reactivity and pump state are frozen for the duration of a
// single outer step.
package integrators

import (
	"fmt"

	"github.com/coresim/pwrsim/internal/core"
)

// Deriv evaluates the system right-hand side at state x and time t.
type Deriv func(x core.Vector, t float64) core.Vector

// Stepper advances a state vector by one timestep.
type Stepper interface {
	Step(f Deriv, x core.Vector, t, dt float64) core.Vector
	Method() core.Method
}

// ForMethod returns the stepper implementing the selected method.
func ForMethod(m core.Method) (Stepper, error) {
	switch m {
	case core.MethodEuler:
		return NewEuler(), nil
	case core.MethodRK4, "":
		return NewRK4(), nil
	default:
		return nil, fmt.Errorf("unknown integration method: %q", m)
	}
}
