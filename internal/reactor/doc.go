// Package reactor provides the stateful model that owns a reactor state
// and advances it through validated, clamped integration steps.
//
// A [Model] is a deterministic single-threaded state machine: Step is the
// only mutator, so a fixed initial state and control sequence replay to
// bit-identical trajectories. Instances share no mutable data; run one
// per simulation session and never step one concurrently.
//
// Run is a blocking convenience loop for scripted transients. A caller
// needing cancellation or real-time pacing drives Step directly inside
// its own loop, the way the live terminal view does.
package reactor
