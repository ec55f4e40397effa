// Package core provides the shared types of the reactor physics kernel.
//
// The package defines the data model exchanged between the physics
// functions, the integrators, and the reactor orchestrator:
//
//   - [State]: reactor state vector (power, precursors, temperatures, poisons)
//   - [Controls]: per-step operator inputs (rod, pump, scram)
//   - [Reactivity]: decomposed reactivity components (Δk/k)
//   - [Params]: immutable physical parameter pack
//   - [SimConfig]: integration method and clamp diagnostics
//   - [Record]: flattened snapshot for logging and benchmarks
//
// It also owns input validation and the post-step safety clamp. Input
// validation returns typed errors and never mutates its arguments;
// clamping applies only to post-integration state and never fails.
//
// # Thread Safety
//
// Nothing in this package synchronizes. A single reactor model instance
// must not be stepped from two goroutines; separate instances share no
// mutable state and may run in parallel.
package core
