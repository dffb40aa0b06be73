package sim

import (
	"testing"

	"github.com/Storm00212/Solar-system/internal/orbit"
)

func TestTrailBoundedFIFO(t *testing.T) {
	tr := NewTrail(3)

	for i := 0; i < 10; i++ {
		tr.Push(orbit.Vec2{X: float64(i)})
		if tr.Len() > 3 {
			t.Fatalf("trail length %d exceeds cap 3", tr.Len())
		}
	}

	pts := tr.Points()
	if len(pts) != 3 {
		t.Fatalf("expected 3 points, got %d", len(pts))
	}
	// Oldest entries evicted first: 7, 8, 9 remain in order.
	for i, want := range []float64{7, 8, 9} {
		if pts[i].X != want {
			t.Errorf("point %d = %g, want %g", i, pts[i].X, want)
		}
	}
}

func TestTrailPartialFill(t *testing.T) {
	tr := NewTrail(5)
	tr.Push(orbit.Vec2{X: 1})
	tr.Push(orbit.Vec2{X: 2})

	pts := tr.Points()
	if len(pts) != 2 || pts[0].X != 1 || pts[1].X != 2 {
		t.Errorf("unexpected points %+v", pts)
	}
}

func TestTrailClear(t *testing.T) {
	tr := NewTrail(4)
	tr.Push(orbit.Vec2{X: 1})
	tr.Clear()
	if tr.Len() != 0 {
		t.Errorf("length %d after clear, want 0", tr.Len())
	}
}

func TestTrailZeroCapacity(t *testing.T) {
	tr := NewTrail(0)
	tr.Push(orbit.Vec2{X: 1})
	if tr.Len() != 0 {
		t.Errorf("zero-capacity trail recorded a point")
	}
}
