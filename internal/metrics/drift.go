// Package metrics tracks conserved-quantity drift over a simulation run.
// Drift is observed and reported only; the core never enforces it.
package metrics

import (
	"math"

	"github.com/Storm00212/Solar-system/internal/sim"
)

// Metric observes a simulation between frames and reduces what it saw to a
// single value.
type Metric interface {
	Name() string
	Observe(s *sim.Simulation)
	Value() float64
	Reset()
}

// EnergyDrift reports the maximum relative deviation of total energy from
// its first observed value. Large values indicate the timestep/sub-step
// settings are too coarse for the system.
type EnergyDrift struct {
	initial  float64
	maxDrift float64
	samples  int
}

func NewEnergyDrift() *EnergyDrift {
	return &EnergyDrift{}
}

func (e *EnergyDrift) Name() string { return "energy_drift" }

func (e *EnergyDrift) Observe(s *sim.Simulation) {
	total := s.Energy().Total

	if e.samples == 0 {
		e.initial = total
	}
	e.samples++

	if e.initial != 0 {
		drift := math.Abs(total-e.initial) / math.Abs(e.initial)
		e.maxDrift = math.Max(e.maxDrift, drift)
	}
}

func (e *EnergyDrift) Value() float64 { return e.maxDrift }

func (e *EnergyDrift) Reset() {
	e.initial = 0
	e.maxDrift = 0
	e.samples = 0
}

// MomentumBalance reports the largest total linear momentum magnitude seen.
// After momentum zeroing at setup this should stay at floating-point noise.
type MomentumBalance struct {
	max float64
}

func NewMomentumBalance() *MomentumBalance {
	return &MomentumBalance{}
}

func (m *MomentumBalance) Name() string { return "momentum" }

func (m *MomentumBalance) Observe(s *sim.Simulation) {
	m.max = math.Max(m.max, s.Momentum().Len())
}

func (m *MomentumBalance) Value() float64 { return m.max }

func (m *MomentumBalance) Reset() { m.max = 0 }

// AngularMomentumDrift reports the maximum relative deviation of total
// angular momentum from its first observed value.
type AngularMomentumDrift struct {
	initial  float64
	maxDrift float64
	samples  int
}

func NewAngularMomentumDrift() *AngularMomentumDrift {
	return &AngularMomentumDrift{}
}

func (a *AngularMomentumDrift) Name() string { return "angular_momentum_drift" }

func (a *AngularMomentumDrift) Observe(s *sim.Simulation) {
	L := s.AngularMomentum()

	if a.samples == 0 {
		a.initial = L
	}
	a.samples++

	if a.initial != 0 {
		drift := math.Abs(L-a.initial) / math.Abs(a.initial)
		a.maxDrift = math.Max(a.maxDrift, drift)
	}
}

func (a *AngularMomentumDrift) Value() float64 { return a.maxDrift }

func (a *AngularMomentumDrift) Reset() {
	a.initial = 0
	a.maxDrift = 0
	a.samples = 0
}
