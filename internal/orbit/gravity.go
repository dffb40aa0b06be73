package orbit

import "math"

// G is the gravitational constant in AU³/(solar mass · day²), the square
// of the Gaussian gravitational constant k = 0.01720209895.
const G = 2.9591220828559115e-4

// DaysPerYear converts the AU/year speeds of Kepler's third law into the
// AU/day velocities the integrator works with.
const DaysPerYear = 365.25

// Params are the simulation-wide force-law tunables.
type Params struct {
	// GravityScale multiplies every pairwise attraction. 1.0 is Keplerian;
	// larger values tighten orbits for visual effect.
	GravityScale float64

	// Softening is added to every squared pair distance so that
	// near-coincident bodies never divide by zero.
	Softening float64
}

func DefaultParams() Params {
	return Params{GravityScale: 1.0, Softening: 1e-12}
}

// Accelerations computes the net gravitational acceleration on every body
// and stores it in acc, which must have len(bodies) entries. Each unordered
// pair is evaluated once and applied symmetrically to both members, so the
// contributions obey Newton's third law exactly. Pure: bodies are not
// modified.
func Accelerations(bodies []Body, acc []Vec2, p Params) {
	for i := range acc {
		acc[i] = Vec2{}
	}

	gs := G * p.GravityScale

	for i := 0; i < len(bodies); i++ {
		pi := bodies[i].Pos
		for j := i + 1; j < len(bodies); j++ {
			d := bodies[j].Pos.Sub(pi)
			r2 := d.Len2() + p.Softening

			rInv := 1.0 / math.Sqrt(r2)
			r3Inv := rInv * rInv * rInv

			fij := gs * bodies[j].Mass * r3Inv
			acc[i].X += fij * d.X
			acc[i].Y += fij * d.Y

			fji := gs * bodies[i].Mass * r3Inv
			acc[j].X -= fji * d.X
			acc[j].Y -= fji * d.Y
		}
	}
}
