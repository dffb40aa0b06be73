// Package sim owns the live state of one star-system simulation: the body
// registry, the per-body position trails and the simulation clock.
//
// A [Simulation] is an explicit context object; nothing in this package is
// global, so independent instances can run side by side and tests can seed
// the orbital phases deterministically.
//
// Each call to [Simulation.Advance] decomposes the requested number of days
// into at most MaxSubSteps velocity-Verlet sub-steps so that high playback
// speeds cannot destabilize the integration. All sub-steps of a call
// complete before it returns, so readers always observe the state after the
// last sub-step of a frame.
package sim
