package integrators

import "github.com/coresim/pwrsim/internal/core"

// Euler is the explicit first-order step x' = x + dt·f(x, t). The stiff
// prompt-kinetics mode limits it to very small dt; the validator holds it
// to the tighter dt_max_euler bound.
type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Method() core.Method { return core.MethodEuler }

func (e *Euler) Step(f Deriv, x core.Vector, t, dt float64) core.Vector {
	dx := f(x, t)
	result := make(core.Vector, len(x))
	for i := range x {
		result[i] = x[i] + dt*dx[i]
	}
	return result
}
