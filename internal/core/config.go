package core

// Method selects the numerical integrator.
type Method string

const (
	MethodRK4   Method = "rk4"
	MethodEuler Method = "euler"
)

// MaxDt returns the largest timestep the method tolerates under the
// given parameter pack.
func (m Method) MaxDt(p *Params) float64 {
	if m == MethodEuler {
		return p.DtMaxEuler
	}
	return p.DtMaxRK4
}

// WarnSink receives clamp diagnostics. Clamping is a recoverable safety
// action, so it is reported rather than raised; both the no-op and the
// custom sink are first-class implementations.
type WarnSink interface {
	Warn(msg string)
}

// NopSink discards all warnings.
type NopSink struct{}

// Warn implements WarnSink.
func (NopSink) Warn(string) {}

// FuncSink adapts a plain function to WarnSink.
type FuncSink func(msg string)

// Warn implements WarnSink.
func (f FuncSink) Warn(msg string) { f(msg) }

// SimConfig selects the integration method and clamp diagnostics for one
// reactor model instance.
type SimConfig struct {
	Method      Method
	WarnOnClamp bool
	Warn        WarnSink
}

// DefaultSimConfig returns the recommended configuration: RK4, clamp
// warnings off.
func DefaultSimConfig() SimConfig {
	return SimConfig{Method: MethodRK4, Warn: NopSink{}}
}

// sink returns the configured sink, falling back to NopSink so a zero
// SimConfig stays usable.
func (c SimConfig) sink() WarnSink {
	if c.Warn == nil {
		return NopSink{}
	}
	return c.Warn
}
