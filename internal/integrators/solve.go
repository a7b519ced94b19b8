package integrators

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/san-kum/resonancex/internal/dynamo"
)

// ErrOutOfRange is returned when a Solution is evaluated outside the
// interval it was integrated over.
var ErrOutOfRange = errors.New("integrators: time outside integrated interval")

type SolveOptions struct {
	Tolerance float64 // relative local error per step
	InitialDt float64
	MinDt     float64
	MaxDt     float64
	MaxSteps  int
}

func DefaultSolveOptions() SolveOptions {
	return SolveOptions{
		Tolerance: 1e-9,
		InitialDt: 1e-3,
		MinDt:     1e-12,
		MaxDt:     math.Inf(1),
		MaxSteps:  5_000_000,
	}
}

// Solution is the dense output of an adaptive integration: the accepted
// steps plus a cubic Hermite interpolant between them. It is read-only once
// Solve returns.
type Solution struct {
	times  []float64
	states []dynamo.State
	derivs []dynamo.State
}

func (s *Solution) Start() float64 { return s.times[0] }
func (s *Solution) End() float64   { return s.times[len(s.times)-1] }

// Steps is the number of accepted steps.
func (s *Solution) Steps() int { return len(s.times) - 1 }

// At evaluates the state at time t.
func (s *Solution) At(t float64) (dynamo.State, error) {
	if math.IsNaN(t) || t < s.Start() || t > s.End() {
		return nil, fmt.Errorf("%w: t=%g not in [%g, %g]", ErrOutOfRange, t, s.Start(), s.End())
	}

	i := sort.SearchFloat64s(s.times, t)
	if s.times[i] == t {
		return s.states[i].Clone(), nil
	}

	t0, t1 := s.times[i-1], s.times[i]
	x0, x1 := s.states[i-1], s.states[i]
	f0, f1 := s.derivs[i-1], s.derivs[i]

	h := t1 - t0
	u := (t - t0) / h
	u2 := u * u
	u3 := u2 * u
	h00 := 2*u3 - 3*u2 + 1
	h10 := u3 - 2*u2 + u
	h01 := -2*u3 + 3*u2
	h11 := u3 - u2

	out := make(dynamo.State, len(x0))
	for k := range out {
		out[k] = h00*x0[k] + h10*h*f0[k] + h01*x1[k] + h11*h*f1[k]
	}
	return out, nil
}

// Solve integrates dyn from t0 to t1 with error control and records dense
// output. A step size collapsing below MinDt, or any non-finite accepted
// state, is reported as a *dynamo.DivergenceError.
func Solve(dyn dynamo.System, stepper dynamo.AdaptiveIntegrator, x0 dynamo.State, t0, t1 float64, opts SolveOptions) (*Solution, error) {
	if !(t1 > t0) {
		return nil, dynamo.Invalid("solve interval [%g, %g] is empty", t0, t1)
	}
	if len(x0) != dyn.StateDim() {
		return nil, dynamo.Invalid("state has %d components, system expects %d", len(x0), dyn.StateDim())
	}
	if opts.Tolerance <= 0 {
		return nil, dynamo.Invalid("tolerance must be positive, got %g", opts.Tolerance)
	}

	sol := &Solution{}
	x := x0.Clone()
	t := t0
	sol.record(dyn, x, t)

	dt := opts.InitialDt
	if dt <= 0 {
		dt = (t1 - t0) * 1e-3
	}

	for step := 0; t < t1; step++ {
		if opts.MaxSteps > 0 && step >= opts.MaxSteps {
			return nil, fmt.Errorf("integrators: step budget of %d exhausted at t=%g", opts.MaxSteps, t)
		}

		dt = math.Min(dt, opts.MaxDt)
		last := false
		if t+dt >= t1 {
			dt = t1 - t
			last = true
		}

		next, dtNext, accepted := stepper.StepAdaptive(dyn, x, t, dt, opts.Tolerance)
		if !accepted {
			if dtNext < opts.MinDt {
				return nil, &dynamo.DivergenceError{Step: sol.Steps(), Time: t}
			}
			dt = dtNext
			continue
		}
		if !next.IsValid() {
			return nil, &dynamo.DivergenceError{Step: sol.Steps(), Time: t + dt}
		}

		x = next
		if last {
			t = t1
		} else {
			t += dt
		}
		sol.record(dyn, x, t)

		dt = dtNext
		if t < t1 && dt < opts.MinDt {
			return nil, &dynamo.DivergenceError{Step: sol.Steps(), Time: t}
		}
	}

	return sol, nil
}

func (s *Solution) record(dyn dynamo.System, x dynamo.State, t float64) {
	s.times = append(s.times, t)
	s.states = append(s.states, x)
	s.derivs = append(s.derivs, dyn.Derive(x, t))
}
