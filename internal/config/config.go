package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Defaults applied by Normalize when a tunable is left at its zero value.
const (
	DefaultTrailCapacity  = 400
	DefaultGravityScale   = 1.0
	DefaultSoftening      = 1e-12
	DefaultMaxSubSteps    = 6
	DefaultSubStepCeiling = 0.9 // days per sub-step
	DefaultDaysPerFrame   = 1.0
)

// Body generation strategies.
const (
	KindStar   = "star"   // central body, placed at the origin at rest
	KindPlanet = "planet" // single body on a near-circular orbit
	KindRing   = "ring"   // cluster of low-mass bodies sharing an orbit
)

// System describes one simulated star system: the force-law tunables, the
// stepping limits and the body generation table.
type System struct {
	Name string `yaml:"name"`

	// TrailCapacity bounds the per-body position history (FIFO eviction).
	TrailCapacity int `yaml:"trail_capacity"`

	// GravityScale multiplies the gravitational constant; purely aesthetic.
	GravityScale float64 `yaml:"gravity_scale"`

	// Softening is the additive term in squared pair distances.
	Softening float64 `yaml:"softening"`

	// MaxSubSteps caps the number of integrator calls per frame.
	MaxSubSteps int `yaml:"max_substeps"`

	// SubStepCeiling is the target maximum days advanced per sub-step.
	SubStepCeiling float64 `yaml:"substep_ceiling"`

	// DaysPerFrame is the initial playback speed.
	DaysPerFrame float64 `yaml:"days_per_frame"`

	// Seed makes the random orbital phases reproducible. Zero keeps the
	// original behavior: a fresh random phase on every setup and reset.
	Seed int64 `yaml:"seed"`

	Bodies []BodySpec `yaml:"bodies"`
}

// BodySpec is one row of the generation table. Kind selects the strategy:
// a star sits at the origin, a planet is a single orbiting body, a ring is
// a cluster of Count near-massless bodies jittered around a shared orbit.
type BodySpec struct {
	Name          string  `yaml:"name"`
	Kind          string  `yaml:"kind"`
	Mass          float64 `yaml:"mass"`            // solar masses (per member for rings)
	SemiMajorAxis float64 `yaml:"semi_major_axis"` // AU; ignored for stars
	Color         string  `yaml:"color"`
	Radius        float64 `yaml:"radius"` // display radius
	Ring          bool    `yaml:"ring"`   // draw a planetary ring (visual only)

	// Ring-cluster options.
	Count  int     `yaml:"count"`  // cluster population
	Spread float64 `yaml:"spread"` // radial jitter, AU
}

// Default returns the full solar-system configuration.
func Default() *System {
	return GetPreset("full")
}

// Normalize fills zero-valued tunables with defaults. Explicitly negative
// values are left in place for Validate to reject; absence and invalidity
// are different things.
func (c *System) Normalize() {
	if c.TrailCapacity == 0 {
		c.TrailCapacity = DefaultTrailCapacity
	}
	if c.GravityScale == 0 {
		c.GravityScale = DefaultGravityScale
	}
	if c.Softening == 0 {
		c.Softening = DefaultSoftening
	}
	if c.MaxSubSteps == 0 {
		c.MaxSubSteps = DefaultMaxSubSteps
	}
	if c.SubStepCeiling == 0 {
		c.SubStepCeiling = DefaultSubStepCeiling
	}
	if c.DaysPerFrame == 0 {
		c.DaysPerFrame = DefaultDaysPerFrame
	}
	for i := range c.Bodies {
		if c.Bodies[i].Kind == "" {
			c.Bodies[i].Kind = KindPlanet
		}
	}
}

func (c *System) Validate() error {
	if len(c.Bodies) == 0 {
		return fmt.Errorf("config: system %q has no bodies", c.Name)
	}
	if c.TrailCapacity < 0 {
		return fmt.Errorf("config: trail_capacity must be non-negative, got %d", c.TrailCapacity)
	}
	if c.GravityScale < 0 {
		return fmt.Errorf("config: gravity_scale must be positive, got %g", c.GravityScale)
	}
	if c.Softening < 0 {
		return fmt.Errorf("config: softening must be non-negative, got %g", c.Softening)
	}
	if c.MaxSubSteps < 1 {
		return fmt.Errorf("config: max_substeps must be at least 1, got %d", c.MaxSubSteps)
	}
	if c.SubStepCeiling <= 0 {
		return fmt.Errorf("config: substep_ceiling must be positive, got %g", c.SubStepCeiling)
	}
	if c.DaysPerFrame < 0 {
		return fmt.Errorf("config: days_per_frame must be positive, got %g", c.DaysPerFrame)
	}
	for _, b := range c.Bodies {
		if b.Mass <= 0 {
			return fmt.Errorf("config: body %q mass must be positive, got %g", b.Name, b.Mass)
		}
		switch b.Kind {
		case KindStar:
		case KindPlanet, KindRing:
			if b.SemiMajorAxis <= 0 {
				return fmt.Errorf("config: body %q needs a positive semi_major_axis", b.Name)
			}
			if b.Kind == KindRing && b.Count < 1 {
				return fmt.Errorf("config: ring %q needs a positive count", b.Name)
			}
		default:
			return fmt.Errorf("config: body %q has unknown kind %q", b.Name, b.Kind)
		}
	}
	return nil
}

// BodyCount returns the number of simulated bodies the table expands to,
// counting every ring member.
func (c *System) BodyCount() int {
	n := 0
	for _, b := range c.Bodies {
		if b.Kind == KindRing {
			n += b.Count
		} else {
			n++
		}
	}
	return n
}

func Load(path string) (*System, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := &System{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	cfg.Normalize()
	return cfg, nil
}

func Save(path string, cfg *System) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
