package orbit

import (
	"math"
	"testing"
)

func TestEnergyTwoBodyBreakdown(t *testing.T) {
	bodies := []Body{
		{Mass: 1.0, Pos: Vec2{0, 0}},
		{Mass: 2e-3, Pos: Vec2{1, 0}, Vel: Vec2{0, 0.017}},
	}
	p := Params{GravityScale: 1.0, Softening: 0}

	e := Energy(bodies, p)

	wantK := 0.5 * 2e-3 * 0.017 * 0.017
	wantU := -G * 1.0 * 2e-3 / 1.0

	if math.Abs(e.Kinetic-wantK) > 1e-15 {
		t.Errorf("kinetic %g, want %g", e.Kinetic, wantK)
	}
	if math.Abs(e.Potential-wantU) > 1e-15 {
		t.Errorf("potential %g, want %g", e.Potential, wantU)
	}
	if math.Abs(e.Total-(wantK+wantU)) > 1e-15 {
		t.Errorf("total %g, want %g", e.Total, wantK+wantU)
	}
}

func TestMomentumSum(t *testing.T) {
	bodies := []Body{
		{Mass: 2.0, Vel: Vec2{1, -1}},
		{Mass: 0.5, Vel: Vec2{-4, 4}},
	}
	mom := Momentum(bodies)
	if mom.Len() > 1e-15 {
		t.Errorf("momentum %+v, want zero", mom)
	}
}

func TestAngularMomentumCircular(t *testing.T) {
	// Counter-clockwise circular motion has positive angular momentum.
	b := []Body{{Mass: 1.0, Pos: Vec2{1, 0}, Vel: Vec2{0, 0.5}}}
	if L := AngularMomentum(b); math.Abs(L-0.5) > 1e-15 {
		t.Errorf("angular momentum %g, want 0.5", L)
	}
}

func TestBodyValidate(t *testing.T) {
	tests := []struct {
		name    string
		body    Body
		wantErr bool
	}{
		{"valid", Body{Name: "earth", Mass: 3e-6, Pos: Vec2{1, 0}}, false},
		{"zero mass", Body{Name: "ghost", Mass: 0}, true},
		{"negative mass", Body{Name: "ghost", Mass: -1}, true},
		{"nan position", Body{Name: "lost", Mass: 1, Pos: Vec2{math.NaN(), 0}}, true},
		{"infinite velocity", Body{Name: "fast", Mass: 1, Vel: Vec2{math.Inf(1), 0}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.body.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
