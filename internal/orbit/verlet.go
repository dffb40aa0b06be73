package orbit

// Verlet advances bodies with the velocity-Verlet scheme. It keeps two
// acceleration buffers so repeated stepping allocates nothing.
type Verlet struct {
	a0 []Vec2
	a1 []Vec2
}

func NewVerlet() *Verlet {
	return &Verlet{}
}

func (v *Verlet) ensureScratch(n int) {
	if len(v.a0) != n {
		v.a0 = make([]Vec2, n)
		v.a1 = make([]Vec2, n)
	}
}

// Step advances every body by dt days in place. The velocity update uses
// the average of the accelerations before and after the position update;
// using either alone degrades the scheme to first order and accumulates
// visible orbital drift. Callers must supply dt > 0.
func (v *Verlet) Step(bodies []Body, dt float64, p Params) {
	v.ensureScratch(len(bodies))

	Accelerations(bodies, v.a0, p)

	dt2 := dt * dt
	for i := range bodies {
		b := &bodies[i]
		b.Pos.X += b.Vel.X*dt + 0.5*v.a0[i].X*dt2
		b.Pos.Y += b.Vel.Y*dt + 0.5*v.a0[i].Y*dt2
	}

	Accelerations(bodies, v.a1, p)

	halfDt := 0.5 * dt
	for i := range bodies {
		b := &bodies[i]
		b.Vel.X += (v.a0[i].X + v.a1[i].X) * halfDt
		b.Vel.Y += (v.a0[i].Y + v.a1[i].Y) * halfDt
	}
}
