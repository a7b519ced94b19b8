package export

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/san-kum/resonancex/internal/orbits"
	"github.com/san-kum/resonancex/internal/resonance"
)

func testTrajectory(t *testing.T) *orbits.Trajectory {
	t.Helper()
	traj, err := orbits.Simulate(orbits.Params{
		Periods:       []float64{10, 20.2},
		Masses:        []float64{1e-5, 1e-5},
		DurationDays:  40,
		Steps:         200,
		ResonantChain: true,
		Names:         []string{"b", "c"},
	})
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	return traj
}

func TestTrajectorySVG(t *testing.T) {
	svg := TrajectorySVG(testTrajectory(t), 400, 300)

	if !strings.HasPrefix(svg, "<?xml") || !strings.HasSuffix(svg, "</svg>") {
		t.Fatal("output is not a complete svg document")
	}
	if n := strings.Count(svg, "<path"); n != 2 {
		t.Errorf("expected one path per planet, got %d", n)
	}
	if !strings.Contains(svg, ">c</text>") {
		t.Error("expected planet labels")
	}
	if !strings.Contains(svg, `cx="200.0" cy="150.0"`) {
		t.Error("expected the star at the centre")
	}
}

func TestTracksSVGEmpty(t *testing.T) {
	if TracksSVG(nil, nil, 100, 100) != "" {
		t.Error("expected empty output for no tracks")
	}
	if TrajectorySVG(nil, 100, 100) != "" {
		t.Error("expected empty output for nil trajectory")
	}
}

func TestTrajectoryJSON(t *testing.T) {
	traj := testTrajectory(t)

	var buf bytes.Buffer
	if err := TrajectoryJSON(&buf, traj); err != nil {
		t.Fatalf("TrajectoryJSON: %v", err)
	}

	var data TrajectoryData
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if data.Steps != 200 || len(data.Positions) != 200 || len(data.Positions[0]) != 2 {
		t.Errorf("unexpected shape: steps=%d positions=%d", data.Steps, len(data.Positions))
	}
	if len(data.Chain) != 1 || data.Chain[0] != "b-c 2:1" {
		t.Errorf("unexpected chain %v", data.Chain)
	}
	if data.Positions[5][1][0] != traj.Positions[5][1].X {
		t.Error("positions not preserved")
	}
}

func TestResonanceWorkbook(t *testing.T) {
	matches := []resonance.Match{
		{System: "A", PeriodA: 1, PeriodB: 2, P: 2, Q: 1},
		{System: "A", PeriodA: 2, PeriodB: 3, P: 3, Q: 2},
		{System: "B", PeriodA: 5, PeriodB: 10.1, P: 2, Q: 1},
	}
	summary := resonance.Summarize(matches, 10)

	path := filepath.Join(t.TempDir(), "resonances.xlsx")
	if err := WriteResonanceWorkbook(path, matches, summary); err != nil {
		t.Fatalf("write: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 3 || sheets[0] != SheetResonances {
		t.Fatalf("unexpected sheets %v", sheets)
	}

	rows, err := f.GetRows(SheetResonances)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 4 {
		t.Fatalf("expected header plus 3 pairs, got %d rows", len(rows))
	}
	if rows[2][0] != "A" || rows[2][3] != "3:2" {
		t.Errorf("unexpected pair row %v", rows[2])
	}

	rows, err = f.GetRows(SheetSystems)
	if err != nil {
		t.Fatal(err)
	}
	if rows[1][0] != "A" || rows[1][1] != "2" {
		t.Errorf("expected A ranked first with 2 pairs, got %v", rows[1])
	}

	rows, err = f.GetRows(SheetRatios)
	if err != nil {
		t.Fatal(err)
	}
	if rows[1][0] != "2:1" || rows[1][1] != "2" {
		t.Errorf("expected 2:1 counted twice, got %v", rows[1])
	}
}
