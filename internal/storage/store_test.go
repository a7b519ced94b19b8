package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/san-kum/resonancex/internal/orbits"
)

func simulate(t *testing.T) *orbits.Trajectory {
	t.Helper()
	traj, err := orbits.Simulate(orbits.Params{
		Periods:      []float64{10, 15},
		Masses:       []float64{1e-5, 2e-5},
		DurationDays: 20,
		Steps:        50,
		Names:        []string{"b", "c"},
	})
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	return traj
}

func TestStoreSaveLoad(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	traj := simulate(t)
	runID, err := st.Save("Kepler-223", "leapfrog", traj)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if runID == "" {
		t.Error("expected non-empty run id")
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.Host != "Kepler-223" {
		t.Errorf("expected host Kepler-223, got %q", meta.Host)
	}
	if meta.Steps != 50 || meta.Integrator != "leapfrog" || meta.Chain {
		t.Errorf("unexpected metadata %+v", meta)
	}
	if meta.StarMass != traj.StarMass || meta.MomentumDrift != traj.MomentumDrift {
		t.Errorf("star mass %g / momentum drift %g not stored", meta.StarMass, meta.MomentumDrift)
	}
	if meta.EnergyDrift != traj.EnergyDrift {
		t.Errorf("energy drift %g, want %g", meta.EnergyDrift, traj.EnergyDrift)
	}

	got, err := st.LoadTrajectory(runID)
	if err != nil {
		t.Fatalf("load trajectory failed: %v", err)
	}
	if len(got.Times) != 50 || len(got.Positions) != 50 {
		t.Fatalf("expected 50 snapshots, got %d", len(got.Times))
	}
	for k := range traj.Positions {
		if got.Times[k] != traj.Times[k] {
			t.Fatalf("time %d: %g != %g", k, got.Times[k], traj.Times[k])
		}
		for i := range traj.Positions[k] {
			if got.Positions[k][i] != traj.Positions[k][i] {
				t.Fatalf("position %d/%d not preserved", k, i)
			}
		}
	}
	if got.Names[1] != "c" || got.Masses[1] != 2e-5 {
		t.Errorf("planet data not restored: %v %v", got.Names, got.Masses)
	}
}

func TestStorePositionsHeader(t *testing.T) {
	st := New(t.TempDir())
	runID, err := st.Save("TOI 178", "rk4", simulate(t))
	if err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(filepath.Join(st.Dir(), runID, "positions.csv"))
	if err != nil {
		t.Fatal(err)
	}
	want := "time,x0,y0,x1,y1\n"
	if string(data[:len(want)]) != want {
		t.Errorf("unexpected header %q", string(data[:len(want)]))
	}
}

func TestStoreList(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected 0 runs, got %d", len(runs))
	}

	traj := simulate(t)
	if _, err := st.Save("first", "leapfrog", traj); err != nil {
		t.Fatal(err)
	}
	time.Sleep(5 * time.Millisecond)
	if _, err := st.Save("second", "leapfrog", traj); err != nil {
		t.Fatal(err)
	}
	os.Mkdir(filepath.Join(st.Dir(), "junk"), 0755)

	runs, err = st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].Host != "second" {
		t.Errorf("expected newest first, got %s", runs[0].Host)
	}
}

func TestStoreListMissingDir(t *testing.T) {
	st := New(filepath.Join(t.TempDir(), "nope"))
	runs, err := st.List()
	if err != nil || len(runs) != 0 {
		t.Errorf("expected empty list, got %v, %v", runs, err)
	}
}

func TestStoreLoadMissing(t *testing.T) {
	st := New(t.TempDir())
	if _, err := st.Load("nonexistent"); err == nil {
		t.Error("expected error for missing run")
	}
	if _, err := st.LoadTrajectory("nonexistent"); err == nil {
		t.Error("expected error for missing run")
	}
}

func TestSlug(t *testing.T) {
	tests := map[string]string{
		"Kepler-223": "kepler-223",
		"TOI 178":    "toi_178",
		"  ":         "run",
		"HD 110067":  "hd_110067",
	}
	for in, want := range tests {
		if got := slug(in); got != want {
			t.Errorf("slug(%q) = %q, want %q", in, got, want)
		}
	}
}
