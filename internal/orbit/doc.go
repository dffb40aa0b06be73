// Package orbit provides the gravitational physics core of the simulator.
//
// Positions are measured in astronomical units, velocities in AU per day
// and masses in solar masses. With those units the gravitational constant
// [G] makes a body on a circular orbit of semi-major axis a move at
// 2π/sqrt(a) AU per year, so no unit conversion is needed downstream.
//
//   - [Body]: point mass with rendering attributes
//   - [Accelerations]: pairwise softened-gravity force evaluator
//   - [Verlet]: velocity-Verlet integration step
//   - [Energy], [Momentum], [AngularMomentum]: conserved-quantity diagnostics
package orbit
