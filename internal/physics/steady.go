package physics

import (
	"fmt"

	"github.com/coresim/pwrsim/internal/core"
)

// bisectIters bounds the rod-position search; 50 halvings of [0,1]
// resolve the position far below any physical tolerance.
const bisectIters = 50

// SteadyState builds the self-consistent equilibrium at normalized power
// level P. Precursors and poisons take their equilibrium inventories and
// the temperatures are walked back from the heat sink:
//
//	C_i = β_i/(Λ·λ_i)·P
//	Tc  = Tc_inlet + Q/h_cool,  Tf = Tc + Q/h_fc,  Q = P·P_nominal
func SteadyState(power float64, p *core.Params, pumpOn bool) (core.State, error) {
	if power < 0 {
		return core.State{}, &core.ValidationError{
			Field: "P", Value: power, Reason: "steady-state power cannot be negative",
			Kind: core.ErrInvalidState,
		}
	}
	s := core.State{P: power}
	for i := 0; i < core.PrecursorGroups; i++ {
		s.C[i] = p.Beta[i] / (p.GenTime * p.DecayConst[i]) * power
	}
	q := power * p.PowerNominal
	s.Tc = p.TcInlet + q/p.HCool(pumpOn)
	s.Tf = s.Tc + q/p.HFuelCoolant
	s.I135 = p.YieldI * power / p.DecayI
	s.Xe135 = (p.YieldXe + p.YieldI) * power / (p.DecayXe + p.XeBurnNominal*power)
	return s, nil
}

// CriticalRodPosition solves for the rod position making total
// reactivity zero at the given temperatures and xenon inventory. The
// monotone rod-worth shape is inverted by bisection. ok is false when the
// required worth falls outside [0, rodWorthMax]; that is a valid negative
// result, not an error.
func CriticalRodPosition(tf, tc, xe135 float64, p *core.Params) (pos float64, ok bool) {
	// Worth the rods must supply to cancel margin and feedback.
	needed := p.ShutdownMargin - DopplerReactivity(tf, p) - ModeratorReactivity(tc, p) - XenonReactivity(xe135, p)
	target := needed / p.RodWorthMax
	if target < 0 || target > 1 {
		return 0, false
	}
	lo, hi := 0.0, 1.0
	for i := 0; i < bisectIters; i++ {
		mid := 0.5 * (lo + hi)
		if RodWorthShape(mid) < target {
			lo = mid
		} else {
			hi = mid
		}
	}
	return 0.5 * (lo + hi), true
}

// CriticalSteadyState composes SteadyState and CriticalRodPosition,
// returning the equilibrium state together with the rod position that
// holds it critical. Infeasibility escalates to an error here because no
// meaningful state can be returned.
func CriticalSteadyState(power float64, p *core.Params, pumpOn bool) (core.State, float64, error) {
	s, err := SteadyState(power, p, pumpOn)
	if err != nil {
		return core.State{}, 0, err
	}
	rod, ok := CriticalRodPosition(s.Tf, s.Tc, s.Xe135, p)
	if !ok {
		return core.State{}, 0, fmt.Errorf("%w: P=%g Tf=%.1fK Tc=%.1fK", core.ErrNoCriticalRod, power, s.Tf, s.Tc)
	}
	return s, rod, nil
}
