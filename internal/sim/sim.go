package sim

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/Storm00212/Solar-system/internal/config"
	"github.com/Storm00212/Solar-system/internal/orbit"
)

// Simulation is one running star system. It is not safe for concurrent
// use: one goroutine drives Advance and reads snapshots between frames.
type Simulation struct {
	cfg     config.System
	params  orbit.Params
	bodies  []orbit.Body
	trails  []*Trail // index-aligned with bodies; nil for untrailed bodies
	verlet  *orbit.Verlet
	elapsed float64 // days since last reset
	paused  bool
	rng     *rand.Rand
}

// New validates cfg and builds the initial body registry. The registry's
// membership is fixed until the next Reset.
func New(cfg *config.System) (*Simulation, error) {
	s := &Simulation{verlet: orbit.NewVerlet()}
	if err := s.rebuild(cfg); err != nil {
		return nil, err
	}
	return s, nil
}

// rebuild constructs the whole new state in temporaries and swaps it in at
// the end, so a rejected configuration leaves the simulation untouched and
// no reader can observe a partially-reset state.
func (s *Simulation) rebuild(cfg *config.System) error {
	c := *cfg
	c.Bodies = append([]config.BodySpec(nil), cfg.Bodies...)
	c.Normalize()
	if err := c.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	bodies, trailed, err := buildBodies(&c, rng)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	trails := make([]*Trail, len(bodies))
	for i, ok := range trailed {
		if ok {
			trails[i] = NewTrail(c.TrailCapacity)
		}
	}

	s.cfg = c
	s.params = orbit.Params{GravityScale: c.GravityScale, Softening: c.Softening}
	s.bodies = bodies
	s.trails = trails
	s.rng = rng
	s.elapsed = 0
	return nil
}

// Reset rebuilds the registry from cfg, clears every trail and zeroes the
// clock, atomically from the caller's perspective. With a zero seed the
// orbital phases are re-rolled, so two consecutive resets produce different
// but structurally equivalent systems.
func (s *Simulation) Reset(cfg *config.System) error {
	return s.rebuild(cfg)
}

// Advance runs one frame's worth of sub-stepped integration. A zero
// request or a paused simulation is an identity step: no state changes at
// all. Negative requests are rejected without touching state.
func (s *Simulation) Advance(requestedDt float64) error {
	if requestedDt < 0 {
		return fmt.Errorf("%w: got %g days", ErrNegativeTimestep, requestedDt)
	}
	if s.paused || requestedDt == 0 {
		return nil
	}

	count, subDt := planSubSteps(requestedDt, s.cfg.SubStepCeiling, s.cfg.MaxSubSteps)
	for i := 0; i < count; i++ {
		s.verlet.Step(s.bodies, subDt, s.params)
		s.elapsed += subDt
		for j, tr := range s.trails {
			if tr != nil {
				tr.Push(s.bodies[j].Pos)
			}
		}
	}
	return nil
}

// Bodies returns a snapshot copy of the registry in setup order.
func (s *Simulation) Bodies() []orbit.Body {
	out := make([]orbit.Body, len(s.bodies))
	copy(out, s.bodies)
	return out
}

func (s *Simulation) BodyCount() int { return len(s.bodies) }

// Trail returns the recorded positions of body i oldest first, or nil for
// untrailed bodies and out-of-range indices.
func (s *Simulation) Trail(i int) []orbit.Vec2 {
	if i < 0 || i >= len(s.trails) || s.trails[i] == nil {
		return nil
	}
	return s.trails[i].Points()
}

// ElapsedDays reports the simulation clock: the exact sum of all sub-step
// sizes applied since the last reset.
func (s *Simulation) ElapsedDays() float64 { return s.elapsed }

// Energy reports the kinetic/potential/total energy diagnostic.
func (s *Simulation) Energy() orbit.EnergyBreakdown {
	return orbit.Energy(s.bodies, s.params)
}

func (s *Simulation) Momentum() orbit.Vec2 {
	return orbit.Momentum(s.bodies)
}

func (s *Simulation) AngularMomentum() float64 {
	return orbit.AngularMomentum(s.bodies)
}

func (s *Simulation) Paused() bool     { return s.paused }
func (s *Simulation) SetPaused(p bool) { s.paused = p }
func (s *Simulation) TogglePause()     { s.paused = !s.paused }

// Config returns a copy of the active configuration, normalized.
func (s *Simulation) Config() config.System {
	c := s.cfg
	c.Bodies = append([]config.BodySpec(nil), s.cfg.Bodies...)
	return c
}

func (s *Simulation) Params() orbit.Params { return s.params }
