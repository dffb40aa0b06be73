package orbit

import (
	"errors"
	"fmt"
)

// Domain errors for body construction.
var (
	// ErrNonPositiveMass indicates a body with zero or negative mass.
	ErrNonPositiveMass = errors.New("orbit: body mass must be positive")

	// ErrNonFiniteState indicates a NaN or infinite position/velocity component.
	ErrNonFiniteState = errors.New("orbit: body state must be finite")
)

// Body is a gravitating point mass. Mass is constant after creation;
// Name, Color, Radius and Ring exist only for the rendering layer and
// never influence the physics.
type Body struct {
	Name string
	Mass float64 // solar masses
	Pos  Vec2    // AU
	Vel  Vec2    // AU/day

	Color  string  // hex, e.g. "#C88B3A"
	Radius float64 // display radius, arbitrary units
	Ring   bool    // draw a ring around the body
}

func (b Body) Validate() error {
	if b.Mass <= 0 {
		return fmt.Errorf("%w: %q has mass %g", ErrNonPositiveMass, b.Name, b.Mass)
	}
	if !b.Pos.IsFinite() || !b.Vel.IsFinite() {
		return fmt.Errorf("%w: %q", ErrNonFiniteState, b.Name)
	}
	return nil
}

// Kinetic returns the body's kinetic energy 0.5*m*|v|².
func (b Body) Kinetic() float64 {
	return 0.5 * b.Mass * b.Vel.Len2()
}
