package sim

import (
	"math"
	"math/rand"

	"github.com/Storm00212/Solar-system/internal/config"
	"github.com/Storm00212/Solar-system/internal/orbit"
)

// minRingRadius keeps jittered ring members from spawning inside the star.
const minRingRadius = 0.05

// circularSpeed returns the near-circular orbital speed at semi-major axis
// a in AU/day: 2π/sqrt(a) AU per year, corrected for the gravity scale so
// the orbit stays near-circular when the attraction is tuned up or down.
func circularSpeed(a, gravityScale float64) float64 {
	return 2 * math.Pi / math.Sqrt(a) * math.Sqrt(gravityScale) / orbit.DaysPerYear
}

// orbitingBody places one body on a circle of the given radius at a random
// phase angle, moving tangentially (counter-clockwise).
func orbitingBody(spec config.BodySpec, radius, angle, gravityScale float64) orbit.Body {
	dir := orbit.Vec2{X: math.Cos(angle), Y: math.Sin(angle)}
	speed := circularSpeed(radius, gravityScale)
	return orbit.Body{
		Name:   spec.Name,
		Mass:   spec.Mass,
		Pos:    dir.Scale(radius),
		Vel:    dir.Perp().Scale(speed),
		Color:  spec.Color,
		Radius: spec.Radius,
		Ring:   spec.Ring,
	}
}

// buildBodies expands the generation table into the body registry. The
// structure is deterministic; only the phase angles come from rng. The
// returned trailed flags mark which bodies receive a history trail: ring
// members skip theirs purely to bound memory, they are ordinary bodies to
// the physics.
func buildBodies(cfg *config.System, rng *rand.Rand) ([]orbit.Body, []bool, error) {
	bodies := make([]orbit.Body, 0, cfg.BodyCount())
	trailed := make([]bool, 0, cfg.BodyCount())

	for _, spec := range cfg.Bodies {
		switch spec.Kind {
		case config.KindStar:
			bodies = append(bodies, orbit.Body{
				Name:   spec.Name,
				Mass:   spec.Mass,
				Color:  spec.Color,
				Radius: spec.Radius,
				Ring:   spec.Ring,
			})
			trailed = append(trailed, true)

		case config.KindPlanet:
			angle := rng.Float64() * 2 * math.Pi
			bodies = append(bodies, orbitingBody(spec, spec.SemiMajorAxis, angle, cfg.GravityScale))
			trailed = append(trailed, true)

		case config.KindRing:
			for k := 0; k < spec.Count; k++ {
				radius := spec.SemiMajorAxis + (rng.Float64()*2-1)*spec.Spread
				if radius < minRingRadius {
					radius = minRingRadius
				}
				angle := rng.Float64() * 2 * math.Pi
				bodies = append(bodies, orbitingBody(spec, radius, angle, cfg.GravityScale))
				trailed = append(trailed, false)
			}
		}
	}

	for i := range bodies {
		if err := bodies[i].Validate(); err != nil {
			return nil, nil, err
		}
	}

	zeroMomentum(bodies)
	return bodies, trailed, nil
}

// zeroMomentum adjusts the most massive body's velocity so the total linear
// momentum vanishes, keeping the system from drifting off-frame over long
// runs.
func zeroMomentum(bodies []orbit.Body) {
	if len(bodies) == 0 {
		return
	}
	heaviest := 0
	for i := range bodies {
		if bodies[i].Mass > bodies[heaviest].Mass {
			heaviest = i
		}
	}
	p := orbit.Momentum(bodies)
	b := &bodies[heaviest]
	b.Vel.X -= p.X / b.Mass
	b.Vel.Y -= p.Y / b.Mass
}
