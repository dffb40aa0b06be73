// Package store persists recorded headless runs: metadata plus sampled
// body positions and energy. A run record is an immutable export for
// plotting and analysis; live simulation state is never persisted or
// resumed from it.
package store

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/Storm00212/Solar-system/internal/orbit"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID           string             `json:"id"`
	System       string             `json:"system"`
	Timestamp    time.Time          `json:"timestamp"`
	Seed         int64              `json:"seed"`
	DaysPerFrame float64            `json:"days_per_frame"`
	Days         float64            `json:"days"`
	Bodies       int                `json:"bodies"`
	Metrics      map[string]float64 `json:"metrics"`
}

// Sample is one recorded frame: the clock, the energy breakdown and every
// body position.
type Sample struct {
	Day       float64
	Kinetic   float64
	Potential float64
	Total     float64
	Positions []orbit.Vec2
}

// Save writes a run directory containing metadata.json and samples.csv and
// returns the assigned run ID.
func (s *Store) Save(meta RunMetadata, samples []Sample) (string, error) {
	meta.ID = fmt.Sprintf("%s_%d", meta.System, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, meta.ID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "samples.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if len(samples) == 0 {
		return meta.ID, nil
	}

	header := []string{"day", "kinetic", "potential", "total"}
	for i := range samples[0].Positions {
		header = append(header, fmt.Sprintf("x%d", i), fmt.Sprintf("y%d", i))
	}
	if err := w.Write(header); err != nil {
		return "", err
	}

	for _, sample := range samples {
		row := []string{
			formatFloat(sample.Day),
			formatFloat(sample.Kinetic),
			formatFloat(sample.Potential),
			formatFloat(sample.Total),
		}
		for _, p := range sample.Positions {
			row = append(row, formatFloat(p.X), formatFloat(p.Y))
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return meta.ID, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 12, 64)
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}
	meta := &RunMetadata{}
	if err := json.Unmarshal(data, meta); err != nil {
		return nil, fmt.Errorf("store: corrupt metadata for %s: %w", runID, err)
	}
	return meta, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		meta, err := s.Load(e.Name())
		if err != nil {
			continue // skip foreign or half-written directories
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) LoadSamples(runID string) ([]Sample, error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, "samples.csv"))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("store: corrupt samples for %s: %w", runID, err)
	}
	if len(records) < 2 {
		return nil, nil
	}

	samples := make([]Sample, 0, len(records)-1)
	for _, rec := range records[1:] {
		if len(rec) < 4 {
			return nil, fmt.Errorf("store: malformed sample row in %s", runID)
		}
		vals := make([]float64, len(rec))
		for i, cell := range rec {
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("store: malformed sample row in %s: %w", runID, err)
			}
			vals[i] = v
		}

		sample := Sample{Day: vals[0], Kinetic: vals[1], Potential: vals[2], Total: vals[3]}
		for i := 4; i+1 < len(vals); i += 2 {
			sample.Positions = append(sample.Positions, orbit.Vec2{X: vals[i], Y: vals[i+1]})
		}
		samples = append(samples, sample)
	}
	return samples, nil
}
