package integrators

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/resonancex/internal/dynamo"
)

func TestRK45_Step(t *testing.T) {
	integrator := NewRK45()
	dyn := &oscillator{}

	x := dynamo.State{1.0, 0.0}
	dt := 0.01

	for i := 0; i < 1000; i++ {
		x = integrator.Step(dyn, x, float64(i)*dt, dt)
	}

	if !x.IsValid() {
		t.Error("RK45 produced invalid state")
	}
}

func TestRK45_EnergyConservation(t *testing.T) {
	integrator := NewRK45()
	dyn := &oscillator{}
	x0 := dynamo.State{1.0, 0.0}

	initialEnergy := dyn.Energy(x0)
	x := x0.Clone()
	dt := 0.01

	for i := 0; i < 10000; i++ {
		x = integrator.Step(dyn, x, float64(i)*dt, dt)
	}

	drift := math.Abs(dyn.Energy(x)-initialEnergy) / initialEnergy
	if drift > 1e-6 {
		t.Errorf("RK45 energy drift too high: %e", drift)
	}
}

func TestRK45_AdaptiveStep(t *testing.T) {
	integrator := NewRK45()
	dyn := &oscillator{}
	x0 := dynamo.State{1.0, 0.0}

	x, newDt, accepted := integrator.StepAdaptive(dyn, x0, 0, 0.1, 1e-6)
	if !accepted {
		t.Fatal("a 0.1 step on the unit oscillator should pass 1e-6")
	}
	if !x.IsValid() {
		t.Error("StepAdaptive produced invalid state")
	}
	if newDt <= 0 {
		t.Errorf("StepAdaptive returned invalid dt: %f", newDt)
	}

	x, shrunk, accepted := integrator.StepAdaptive(dyn, x0, 0, 2.0, 1e-12)
	if accepted {
		t.Fatal("a 2.0 step should be rejected at 1e-12")
	}
	if shrunk >= 2.0 {
		t.Errorf("rejected step should shrink dt, got %f", shrunk)
	}
	if x[0] != x0[0] || x[1] != x0[1] {
		t.Error("rejected step must return the input state")
	}
}

func TestSolveDenseOutput(t *testing.T) {
	dyn := &oscillator{}
	opts := DefaultSolveOptions()
	opts.Tolerance = 1e-10

	sol, err := Solve(dyn, NewRK45(), dynamo.State{1, 0}, 0, 20, opts)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}

	if sol.Start() != 0 || sol.End() != 20 {
		t.Errorf("interval [%g, %g], want [0, 20]", sol.Start(), sol.End())
	}
	if sol.Steps() < 10 {
		t.Errorf("suspiciously few steps: %d", sol.Steps())
	}

	for _, tm := range []float64{0, 0.123, 3.3, 9.99, 17.5, 20} {
		x, err := sol.At(tm)
		if err != nil {
			t.Fatalf("At(%g): %v", tm, err)
		}
		if math.Abs(x[0]-math.Cos(tm)) > 1e-5 {
			t.Errorf("At(%g) = %.8f, want %.8f", tm, x[0], math.Cos(tm))
		}
	}

	for _, tm := range []float64{-0.1, 20.01, math.NaN()} {
		if _, err := sol.At(tm); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("At(%g): expected ErrOutOfRange, got %v", tm, err)
		}
	}
}

// blowup is x' = x^2, which reaches infinity at t = 1 from x(0) = 1.
type blowup struct{}

func (b *blowup) Derive(x dynamo.State, t float64) dynamo.State { return dynamo.State{x[0] * x[0]} }
func (b *blowup) StateDim() int                                 { return 1 }

func TestSolveReportsDivergence(t *testing.T) {
	opts := DefaultSolveOptions()
	opts.Tolerance = 1e-8
	opts.MinDt = 1e-9

	_, err := Solve(&blowup{}, NewRK45(), dynamo.State{1}, 0, 2, opts)
	if !errors.Is(err, dynamo.ErrNumericalDivergence) {
		t.Fatalf("expected divergence, got %v", err)
	}
	var de *dynamo.DivergenceError
	if errors.As(err, &de) && de.Time > 1.0001 {
		t.Errorf("divergence reported past the singularity: t=%g", de.Time)
	}
}

func TestSolveRejectsBadInput(t *testing.T) {
	opts := DefaultSolveOptions()
	if _, err := Solve(&oscillator{}, NewRK45(), dynamo.State{1, 0}, 1, 1, opts); !errors.Is(err, dynamo.ErrData) {
		t.Errorf("empty interval: expected ErrData, got %v", err)
	}
	if _, err := Solve(&oscillator{}, NewRK45(), dynamo.State{1}, 0, 1, opts); !errors.Is(err, dynamo.ErrData) {
		t.Errorf("wrong dimension: expected ErrData, got %v", err)
	}
}
