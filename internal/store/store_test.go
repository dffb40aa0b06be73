package store

import (
	"math"
	"testing"
	"time"

	"github.com/Storm00212/Solar-system/internal/orbit"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	s := New(t.TempDir())
	if err := s.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}

	samples := []Sample{
		{Day: 0, Kinetic: 1.5e-7, Potential: -4.1e-7, Total: -2.6e-7,
			Positions: []orbit.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}}},
		{Day: 0.9, Kinetic: 1.4e-7, Potential: -4.0e-7, Total: -2.6e-7,
			Positions: []orbit.Vec2{{X: 0.001, Y: 0}, {X: 0.99, Y: 0.015}}},
	}

	meta := RunMetadata{
		System:       "inner",
		Timestamp:    time.Now(),
		Seed:         42,
		DaysPerFrame: 0.9,
		Days:         1.8,
		Bodies:       2,
		Metrics:      map[string]float64{"energy_drift": 1.2e-5},
	}

	id, err := s.Save(meta, samples)
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := s.Load(id)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.System != "inner" || loaded.Seed != 42 || loaded.Bodies != 2 {
		t.Errorf("metadata mismatch: %+v", loaded)
	}
	if loaded.Metrics["energy_drift"] != 1.2e-5 {
		t.Errorf("metrics not preserved: %+v", loaded.Metrics)
	}

	got, err := s.LoadSamples(id)
	if err != nil {
		t.Fatalf("load samples: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d samples, want 2", len(got))
	}
	if math.Abs(got[1].Positions[1].Y-0.015) > 1e-12 {
		t.Errorf("position not preserved: %+v", got[1].Positions[1])
	}
	if math.Abs(got[0].Total-(-2.6e-7)) > 1e-18 {
		t.Errorf("energy not preserved: %g", got[0].Total)
	}
}

func TestListEmptyAndSorted(t *testing.T) {
	s := New(t.TempDir())

	runs, err := s.List()
	if err != nil {
		t.Fatalf("list on missing dir: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}

	if err := s.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	if _, err := s.Save(RunMetadata{System: "a", Timestamp: time.Now().Add(-time.Hour)}, nil); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := s.Save(RunMetadata{System: "b", Timestamp: time.Now()}, nil); err != nil {
		t.Fatalf("save: %v", err)
	}

	runs, err = s.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("got %d runs, want 2", len(runs))
	}
	if runs[0].System != "a" || runs[1].System != "b" {
		t.Errorf("runs not sorted by timestamp: %s, %s", runs[0].System, runs[1].System)
	}
}
