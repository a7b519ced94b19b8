package metrics

import (
	"math"
	"testing"

	"github.com/san-kum/resonancex/internal/dynamo"
)

type kinetic struct{}

func (kinetic) Energy(x dynamo.State) float64 { return 0.5 * x[0] * x[0] }

func TestEnergyDrift(t *testing.T) {
	m := NewEnergyDrift(kinetic{})

	m.Observe(dynamo.State{2}, 0)   // E = 2
	m.Observe(dynamo.State{2.2}, 1) // E = 2.42
	m.Observe(dynamo.State{2.1}, 2) // E = 2.205

	if math.Abs(m.Value()-0.21) > 1e-12 {
		t.Errorf("expected max drift 0.21, got %f", m.Value())
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("expected zero drift after reset")
	}

	m.Observe(dynamo.State{1}, 0)
	if m.Value() != 0 {
		t.Errorf("first sample defines the baseline, got drift %f", m.Value())
	}
}

func TestEnergyDriftZeroBaseline(t *testing.T) {
	m := NewEnergyDrift(kinetic{})
	m.Observe(dynamo.State{0}, 0)
	m.Observe(dynamo.State{1}, 1)
	if m.Value() != 0 {
		t.Errorf("zero baseline should not produce a relative drift, got %f", m.Value())
	}
}

func TestRadialExcursion(t *testing.T) {
	radius := func(x dynamo.State, i int) float64 { return math.Abs(x[i]) }
	m := NewRadialExcursion([]int{0, 1}, radius)

	m.Observe(dynamo.State{1, 2}, 0)
	m.Observe(dynamo.State{1.05, 2}, 1)
	m.Observe(dynamo.State{1, 1.6}, 2)

	if math.Abs(m.Value()-0.2) > 1e-12 {
		t.Errorf("expected 0.2, got %f", m.Value())
	}
	if m.Name() != "radial_excursion" {
		t.Errorf("unexpected name %q", m.Name())
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("expected zero after reset")
	}
}

type spin struct{}

func (spin) AngularMomentum(x dynamo.State) float64 { return x[0] }

func TestMomentumDrift(t *testing.T) {
	m := NewMomentumDrift(spin{})
	m.Observe(dynamo.State{-2}, 0)
	m.Observe(dynamo.State{-2.1}, 1)
	m.Observe(dynamo.State{-1.96}, 2)

	if math.Abs(m.Value()-0.05) > 1e-12 {
		t.Errorf("expected max drift 0.05, got %f", m.Value())
	}
	m.Reset()
	if m.Value() != 0 {
		t.Error("expected zero drift after reset")
	}

	var _ Metric = m
}
