package core

import (
	"errors"
	"fmt"
)

// Domain errors for kernel operations.
var (
	// ErrInvalidParams indicates a physically implausible parameter pack.
	ErrInvalidParams = errors.New("core: invalid reactor parameters")

	// ErrInvalidState indicates a malformed or non-physical initial state.
	ErrInvalidState = errors.New("core: invalid reactor state")

	// ErrInvalidTimestep indicates dt outside the method-specific bounds.
	ErrInvalidTimestep = errors.New("core: timestep out of bounds")

	// ErrInvalidControls indicates control inputs outside their ranges.
	ErrInvalidControls = errors.New("core: invalid control inputs")

	// ErrNoCriticalRod indicates no rod position in [0,1] can make the
	// core critical under the requested conditions.
	ErrNoCriticalRod = errors.New("core: no critical rod position exists")
)

// ValidationError reports which quantity failed validation and why.
// It wraps one of the sentinel errors above so callers can branch with
// errors.Is while still surfacing a descriptive message.
type ValidationError struct {
	Field  string
	Value  float64
	Reason string
	Kind   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%v: %s=%g (%s)", e.Kind, e.Field, e.Value, e.Reason)
}

func (e *ValidationError) Unwrap() error { return e.Kind }

func validationErr(kind error, field string, value float64, reason string) error {
	return &ValidationError{Field: field, Value: value, Reason: reason, Kind: kind}
}
