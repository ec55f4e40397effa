package integrators

import "github.com/coresim/pwrsim/internal/core"

// RK4 is the classical four-stage Runge–Kutta step. It is the default
// method and tolerates timesteps up to dt_max_rk4.
type RK4 struct {
	k1, k2, k3, k4 core.Vector
	scratch        core.Vector
}

func NewRK4() *RK4 {
	return &RK4{}
}

func (r *RK4) Method() core.Method { return core.MethodRK4 }

func (r *RK4) ensureScratch(n int) {
	if len(r.k1) != n {
		r.k1 = make(core.Vector, n)
		r.k2 = make(core.Vector, n)
		r.k3 = make(core.Vector, n)
		r.k4 = make(core.Vector, n)
		r.scratch = make(core.Vector, n)
	}
}

func (r *RK4) Step(f Deriv, x core.Vector, t, dt float64) core.Vector {
	n := len(x)
	r.ensureScratch(n)

	copy(r.k1, f(x, t))

	for i := 0; i < n; i++ {
		r.scratch[i] = x[i] + dt*0.5*r.k1[i]
	}
	copy(r.k2, f(r.scratch, t+dt*0.5))

	for i := 0; i < n; i++ {
		r.scratch[i] = x[i] + dt*0.5*r.k2[i]
	}
	copy(r.k3, f(r.scratch, t+dt*0.5))

	for i := 0; i < n; i++ {
		r.scratch[i] = x[i] + dt*r.k3[i]
	}
	copy(r.k4, f(r.scratch, t+dt))

	result := make(core.Vector, n)
	dt6 := dt / 6.0
	for i := 0; i < n; i++ {
		result[i] = x[i] + dt6*(r.k1[i]+2*r.k2[i]+2*r.k3[i]+r.k4[i])
	}

	return result
}
