package sim

import "errors"

// Domain errors for simulation operations. Malformed input is rejected at
// the call that introduced it and never mutates simulation state.
var (
	// ErrNegativeTimestep indicates Advance was called with a negative day count.
	ErrNegativeTimestep = errors.New("sim: requested timestep must not be negative")

	// ErrInvalidConfig wraps a configuration rejected at setup or reset.
	ErrInvalidConfig = errors.New("sim: invalid configuration")
)
