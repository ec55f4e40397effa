// Package physics implements the reactor physics proper: the reactivity
// feedback model, the coupled point-kinetics/thermal-hydraulic derivative
// kernel, and the steady-state solvers.
//
// Everything here is a pure function of its inputs. No clamping, no
// validation, no hidden state; safety enforcement belongs to the core
// package and is applied strictly after integration.
//
// The neutron population follows six-group point kinetics,
//
//	dP/dt   = ((ρ − β)/Λ)·P + Σ λ_i·C_i
//	dC_i/dt = (β_i/Λ)·P − λ_i·C_i
//
// coupled to lumped fuel and coolant energy balances and to the
// iodine-135/xenon-135 poison chain.
package physics
