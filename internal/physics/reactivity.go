package physics

import (
	"math"

	"github.com/coresim/pwrsim/internal/core"
)

// RodWorthShape maps rod position x in [0,1] to the fraction of total
// bank worth inserted. The S-curve x − sin(2πx)/(2π) is monotone on
// [0,1], runs from 0 to 1, and has zero slope at both ends, so
// differential worth peaks at mid-travel.
func RodWorthShape(x float64) float64 {
	return x - math.Sin(2*math.Pi*x)/(2*math.Pi)
}

// ExternalReactivity is the rod-bank contribution plus the scram term.
// With rods fully inserted and no scram the core sits subcritical by the
// shutdown margin. An active scram approaches its full (negative) worth
// exponentially from scramStart; Δt < 0 contributes nothing.
func ExternalReactivity(rod float64, scram bool, scramStart, now float64, p *core.Params) float64 {
	rho := p.RodWorthMax*RodWorthShape(rod) - p.ShutdownMargin
	if scram {
		rho += ScramContribution(now-scramStart, p)
	}
	return rho
}

// ScramContribution is the scram worth inserted Δt seconds after
// initiation: scramWorth·(1 − e^(−Δt/τ)).
func ScramContribution(dt float64, p *core.Params) float64 {
	if dt < 0 {
		return 0
	}
	return p.ScramWorth * (1 - math.Exp(-dt/p.ScramTau))
}

// DopplerReactivity is the fuel-temperature feedback α_f·(Tf − Tf_ref).
func DopplerReactivity(tf float64, p *core.Params) float64 {
	return p.AlphaFuel * (tf - p.TfRef)
}

// ModeratorReactivity is the coolant-temperature feedback α_m·(Tc − Tc_ref).
func ModeratorReactivity(tc float64, p *core.Params) float64 {
	return p.AlphaMod * (tc - p.TcRef)
}

// XenonReactivity is the poisoning worth of the current xenon-135
// inventory, always ≤ 0.
func XenonReactivity(xe135 float64, p *core.Params) float64 {
	return -p.XenonWorth * xe135
}

// TotalReactivity decomposes and sums every active component. Total is
// the plain arithmetic sum, so identical inputs reproduce it bit for bit.
func TotalReactivity(s core.State, c core.Controls, scramStart float64, p *core.Params) core.Reactivity {
	r := core.Reactivity{
		Ext:       ExternalReactivity(c.Rod, c.Scram, scramStart, s.T, p),
		Doppler:   DopplerReactivity(s.Tf, p),
		Moderator: ModeratorReactivity(s.Tc, p),
		Xenon:     XenonReactivity(s.Xe135, p),
	}
	r.Total = r.Ext + r.Doppler + r.Moderator + r.Xenon
	return r
}
