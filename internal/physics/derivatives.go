package physics

import "github.com/coresim/pwrsim/internal/core"

// Derivatives evaluates the right-hand side of the coupled ODE system at
// state s under total reactivity rho. The returned vector shares the
// packed state layout: entry i is the time-derivative of state entry i.
//
// Reactivity arrives pre-computed; the kernel itself is linear in P for
// fixed rho, which is what makes freezing rho across an integrator's
// substages a well-posed simplification.
func Derivatives(s core.State, rho float64, pumpOn bool, p *core.Params) core.Vector {
	var d core.State

	// Point kinetics. (rho − β)/Λ is the stiff prompt term.
	beta := p.BetaTotal()
	delayed := 0.0
	for i := 0; i < core.PrecursorGroups; i++ {
		delayed += p.DecayConst[i] * s.C[i]
	}
	d.P = (rho-beta)/p.GenTime*s.P + delayed

	for i := 0; i < core.PrecursorGroups; i++ {
		d.C[i] = p.Beta[i]/p.GenTime*s.P - p.DecayConst[i]*s.C[i]
	}

	// Lumped energy balances; the heat sink depends on pump state.
	q := s.P * p.PowerNominal
	transfer := p.HFuelCoolant * (s.Tf - s.Tc)
	d.Tf = (q - transfer) / (p.MassFuel * p.CpFuel)
	d.Tc = (transfer - p.HCool(pumpOn)*(s.Tc-p.TcInlet)) / (p.MassCoolant * p.CpCoolant)

	// Iodine/xenon chain: direct yield + iodine decay feed xenon; decay
	// and power-proportional burnout deplete it. The speedup factor
	// compresses the whole chain uniformly.
	k := p.XenonSpeedup
	d.I135 = k * (p.YieldI*s.P - p.DecayI*s.I135)
	d.Xe135 = k * (p.YieldXe*s.P + p.DecayI*s.I135 - (p.DecayXe+p.XeBurnNominal*s.P)*s.Xe135)

	return d.Pack()
}
