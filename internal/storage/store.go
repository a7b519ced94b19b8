// Package storage keeps simulation runs on disk, one directory per run with
// a metadata.json and a positions.csv.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/san-kum/resonancex/internal/dynamo"
	"github.com/san-kum/resonancex/internal/orbits"
)

const DefaultDir = ".resonancex"

const (
	metadataFile  = "metadata.json"
	positionsFile = "positions.csv"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Dir() string { return s.baseDir }

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID            string    `json:"id"`
	Host          string    `json:"host"`
	Timestamp     time.Time `json:"timestamp"`
	Planets       []string  `json:"planets"`
	Periods       []float64 `json:"periods"`
	Masses        []float64 `json:"masses"`
	Duration      float64   `json:"duration_days"`
	StarMass      float64   `json:"star_mass"`
	Steps         int       `json:"steps"`
	Integrator    string    `json:"integrator"`
	Chain         bool      `json:"resonant_chain"`
	EnergyDrift   float64   `json:"energy_drift"`
	MomentumDrift float64   `json:"momentum_drift"`
	MaxExcursion  float64   `json:"max_excursion"`
}

// Save writes traj under a fresh run directory and returns the run ID.
func (s *Store) Save(host, integrator string, traj *orbits.Trajectory) (string, error) {
	now := time.Now()
	runID := fmt.Sprintf("%s_%d", slug(host), now.UnixMilli())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:            runID,
		Host:          host,
		Timestamp:     now,
		Planets:       traj.Names,
		Periods:       traj.Periods,
		Masses:        traj.Masses,
		Duration:      traj.Duration,
		StarMass:      traj.StarMass,
		Steps:         len(traj.Times),
		Integrator:    integrator,
		Chain:         traj.Chain != nil,
		EnergyDrift:   traj.EnergyDrift,
		MomentumDrift: traj.MomentumDrift,
		MaxExcursion:  traj.MaxExcursion,
	}

	if err := writeMetadata(filepath.Join(runDir, metadataFile), meta); err != nil {
		return "", err
	}
	if err := writePositions(filepath.Join(runDir, positionsFile), traj); err != nil {
		return "", err
	}
	return runID, nil
}

func writeMetadata(path string, meta RunMetadata) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return fmt.Errorf("encode metadata: %w", err)
	}
	return nil
}

func writePositions(path string, traj *orbits.Trajectory) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)

	header := []string{"time"}
	for i := 0; i < traj.NumPlanets(); i++ {
		header = append(header, fmt.Sprintf("x%d", i), fmt.Sprintf("y%d", i))
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for k, snap := range traj.Positions {
		row := make([]string, 0, len(header))
		row = append(row, strconv.FormatFloat(traj.Times[k], 'g', -1, 64))
		for _, p := range snap {
			row = append(row,
				strconv.FormatFloat(p.X, 'g', -1, 64),
				strconv.FormatFloat(p.Y, 'g', -1, 64))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

// List returns every readable run, newest first. Directories without valid
// metadata are skipped.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.SliceStable(runs, func(i, j int) bool { return runs[i].Timestamp.After(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("run %s: %w", runID, err)
	}
	return &meta, nil
}

// LoadTrajectory rebuilds a stored trajectory. Diagnostics and planet data
// come from the metadata; the chain structure itself is not persisted.
func (s *Store) LoadTrajectory(runID string) (*orbits.Trajectory, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(filepath.Join(s.baseDir, runID, positionsFile))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("run %s: %w", runID, err)
	}
	if len(records) < 2 {
		return nil, dynamo.Invalid("run %s: no positions recorded", runID)
	}

	n := (len(records[0]) - 1) / 2
	if n != len(meta.Periods) {
		return nil, dynamo.Invalid("run %s: %d planets in positions, %d in metadata", runID, n, len(meta.Periods))
	}

	traj := &orbits.Trajectory{
		Times:         make([]float64, 0, len(records)-1),
		Positions:     make([][]orbits.Vec2, 0, len(records)-1),
		Masses:        meta.Masses,
		Periods:       meta.Periods,
		Names:         meta.Planets,
		Duration:      meta.Duration,
		StarMass:      meta.StarMass,
		EnergyDrift:   meta.EnergyDrift,
		MomentumDrift: meta.MomentumDrift,
		MaxExcursion:  meta.MaxExcursion,
	}

	for line, record := range records[1:] {
		vals := make([]float64, len(record))
		for j, cell := range record {
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, dynamo.Invalid("run %s line %d: %v", runID, line+2, err)
			}
			vals[j] = v
		}

		snap := make([]orbits.Vec2, n)
		for i := range snap {
			snap[i] = orbits.Vec2{X: vals[1+2*i], Y: vals[2+2*i]}
		}
		traj.Times = append(traj.Times, vals[0])
		traj.Positions = append(traj.Positions, snap)
	}

	return traj, nil
}

func slug(host string) string {
	s := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			return r
		case r >= 'A' && r <= 'Z':
			return r + 'a' - 'A'
		default:
			return '_'
		}
	}, strings.TrimSpace(host))
	if s == "" {
		return "run"
	}
	return s
}
