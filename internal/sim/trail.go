package sim

import "github.com/Storm00212/Solar-system/internal/orbit"

// Trail is a bounded FIFO of past positions for one body. Once full, every
// push evicts the oldest point. It is derived state only; the physics never
// reads it.
type Trail struct {
	buf   []orbit.Vec2
	start int
	n     int
}

func NewTrail(capacity int) *Trail {
	return &Trail{buf: make([]orbit.Vec2, capacity)}
}

func (t *Trail) Push(p orbit.Vec2) {
	if len(t.buf) == 0 {
		return
	}
	if t.n < len(t.buf) {
		t.buf[(t.start+t.n)%len(t.buf)] = p
		t.n++
		return
	}
	t.buf[t.start] = p
	t.start = (t.start + 1) % len(t.buf)
}

func (t *Trail) Len() int { return t.n }

// Points returns the recorded positions oldest first.
func (t *Trail) Points() []orbit.Vec2 {
	out := make([]orbit.Vec2, t.n)
	for i := 0; i < t.n; i++ {
		out[i] = t.buf[(t.start+i)%len(t.buf)]
	}
	return out
}

func (t *Trail) Clear() {
	t.start = 0
	t.n = 0
}
