package orbit

import "math"

// EnergyBreakdown reports the system's kinetic, potential and total energy.
// A large growth of |Total| over a run indicates the timestep settings are
// too coarse; the core only exposes this, it never enforces it.
type EnergyBreakdown struct {
	Kinetic   float64
	Potential float64
	Total     float64
}

// Energy computes the total kinetic plus pairwise gravitational potential
// energy of the system, using the same softened distance as the force law.
func Energy(bodies []Body, p Params) EnergyBreakdown {
	var e EnergyBreakdown
	gs := G * p.GravityScale

	for i := range bodies {
		e.Kinetic += bodies[i].Kinetic()

		for j := i + 1; j < len(bodies); j++ {
			d := bodies[j].Pos.Sub(bodies[i].Pos)
			r := math.Sqrt(d.Len2() + p.Softening)
			e.Potential -= gs * bodies[i].Mass * bodies[j].Mass / r
		}
	}

	e.Total = e.Kinetic + e.Potential
	return e
}

// Momentum returns the total linear momentum Σ m·v.
func Momentum(bodies []Body) Vec2 {
	var p Vec2
	for i := range bodies {
		p.X += bodies[i].Mass * bodies[i].Vel.X
		p.Y += bodies[i].Mass * bodies[i].Vel.Y
	}
	return p
}

// AngularMomentum returns the total angular momentum Σ m·(x·vy − y·vx)
// about the origin.
func AngularMomentum(bodies []Body) float64 {
	L := 0.0
	for i := range bodies {
		b := bodies[i]
		L += b.Mass * (b.Pos.X*b.Vel.Y - b.Pos.Y*b.Vel.X)
	}
	return L
}
