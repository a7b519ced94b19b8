package analysis

import (
	"math"
	"testing"

	"github.com/san-kum/resonancex/internal/dynamo"
	"github.com/san-kum/resonancex/internal/integrators"
)

func TestFFTPads(t *testing.T) {
	out := FFT(make([]float64, 100))
	if len(out) != 128 {
		t.Errorf("expected padding to 128, got %d", len(out))
	}
}

func TestPowerSpectrumPeak(t *testing.T) {
	n := 64
	data := make([]float64, n)
	for i := range data {
		data[i] = math.Sin(2 * math.Pi * 4 * float64(i) / float64(n))
	}
	ps := PowerSpectrum(data)

	best := 0
	for k := range ps {
		if ps[k] > ps[best] {
			best = k
		}
	}
	if best != 4 {
		t.Errorf("expected peak in bin 4, got %d", best)
	}
}

func TestDominantPeriod(t *testing.T) {
	tests := []struct {
		period, dt float64
		n          int
	}{
		{10, 0.1, 1000},
		{1.51, 0.01, 3000},
		{37, 0.5, 512},
	}

	for _, tt := range tests {
		data := make([]float64, tt.n)
		for i := range data {
			data[i] = 0.3 + math.Cos(2*math.Pi*float64(i)*tt.dt/tt.period)
		}
		got := DominantPeriod(data, tt.dt)
		if math.Abs(got-tt.period)/tt.period > 0.03 {
			t.Errorf("period %g: got %g", tt.period, got)
		}
	}
}

func TestDominantPeriodDegenerate(t *testing.T) {
	if DominantPeriod([]float64{1, 2}, 1) != 0 {
		t.Error("too few samples should give 0")
	}
	if DominantPeriod([]float64{3, 3, 3, 3, 3}, 1) != 0 {
		t.Error("a constant signal has no period")
	}
}

type growth struct{}

func (growth) Derive(x dynamo.State, _ float64) dynamo.State { return dynamo.State{x[0]} }
func (growth) StateDim() int                                 { return 1 }

type rotation struct{}

func (rotation) Derive(x dynamo.State, _ float64) dynamo.State { return dynamo.State{x[1], -x[0]} }
func (rotation) StateDim() int                                 { return 2 }

func TestLyapunovExponent(t *testing.T) {
	// dx/dt = x separates nearby solutions at exactly e^t.
	lambda := LyapunovExponent(growth{}, integrators.NewRK4(), dynamo.State{1}, 0.01, 5, 1e-6)
	if math.Abs(lambda-1) > 1e-3 {
		t.Errorf("expected exponent 1, got %f", lambda)
	}

	// Rotation preserves distances.
	lambda = LyapunovExponent(rotation{}, integrators.NewRK4(), dynamo.State{1, 0}, 0.01, 50, 1e-8)
	if math.Abs(lambda) > 1e-3 {
		t.Errorf("expected exponent near 0, got %f", lambda)
	}

	if LyapunovExponent(growth{}, integrators.NewRK4(), nil, 0.01, 1, 1e-8) != 0 {
		t.Error("empty state should give 0")
	}
}
