package core

import "math"

// PrecursorGroups is the number of lumped delayed-neutron precursor
// families carried by the kinetics model.
const PrecursorGroups = 6

// StateDim is the length of the flat vector produced by State.Pack.
const StateDim = 5 + PrecursorGroups

// State is the full reactor state at one instant. Power is normalized
// (1.0 = nominal thermal power); precursor and poison concentrations are
// normalized, non-negative quantities; temperatures are in kelvin.
type State struct {
	T     float64                  // simulation time, s
	P     float64                  // normalized power
	C     [PrecursorGroups]float64 // delayed-neutron precursor concentrations
	Tf    float64                  // fuel temperature, K
	Tc    float64                  // coolant temperature, K
	I135  float64                  // iodine-135 inventory
	Xe135 float64                  // xenon-135 inventory
}

// Vector is a flat state representation stepped by the integrators.
type Vector []float64

// Layout of the packed vector. Time is carried outside the vector; it is
// not a dynamical variable of the ODE system.
const (
	idxP  = 0
	idxC0 = 1
	idxTf = idxC0 + PrecursorGroups
	idxTc = idxTf + 1
	idxI  = idxTc + 1
	idxXe = idxI + 1
)

// Pack flattens the state into a fresh vector.
func (s State) Pack() Vector {
	v := make(Vector, StateDim)
	v[idxP] = s.P
	for i := 0; i < PrecursorGroups; i++ {
		v[idxC0+i] = s.C[i]
	}
	v[idxTf] = s.Tf
	v[idxTc] = s.Tc
	v[idxI] = s.I135
	v[idxXe] = s.Xe135
	return v
}

// Unpack rebuilds a state from a packed vector, stamping it with time t.
func Unpack(v Vector, t float64) State {
	s := State{T: t, P: v[idxP], Tf: v[idxTf], Tc: v[idxTc], I135: v[idxI], Xe135: v[idxXe]}
	for i := 0; i < PrecursorGroups; i++ {
		s.C[i] = v[idxC0+i]
	}
	return s
}

// Clone returns an independent copy of the vector.
func (v Vector) Clone() Vector {
	c := make(Vector, len(v))
	copy(c, v)
	return c
}

// IsValid reports whether the vector is free of NaN and Inf entries.
func (v Vector) IsValid() bool {
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}

// IsValid reports whether every state field is finite.
func (s State) IsValid() bool {
	return s.Pack().IsValid() && !math.IsNaN(s.T) && !math.IsInf(s.T, 0)
}

// Reactivity decomposes the total reactivity into its physical
// contributions. All fields are dimensionless (Δk/k). Total is the
// arithmetic sum of the other four.
type Reactivity struct {
	Ext       float64 // rods, scram, shutdown margin
	Doppler   float64 // fuel temperature feedback
	Moderator float64 // coolant temperature feedback
	Xenon     float64 // xenon-135 poisoning
	Total     float64
}

// Pcm converts a Δk/k reactivity to pcm for display.
func Pcm(rho float64) float64 { return rho * 1e5 }
