package dynamo

import "math"

// State is a flat phase-space vector. Models in this module lay it out as
// all position components first, then all velocity components, which is the
// split the leapfrog and Verlet steppers rely on.
type State []float64

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (s State) Norm() float64 {
	sum := 0.0
	for _, v := range s {
		sum += v * v
	}
	return math.Sqrt(sum)
}

func (s State) Sub(other State) State {
	result := make(State, len(s))
	for i := range s {
		if i < len(other) {
			result[i] = s[i] - other[i]
		} else {
			result[i] = s[i]
		}
	}
	return result
}

type System interface {
	Derive(x State, t float64) State
	StateDim() int
}

type Hamiltonian interface {
	Energy(x State) float64
}

type Integrator interface {
	Step(dyn System, x State, t, dt float64) State
}

// AdaptiveIntegrator takes one trial step and reports the error-controlled
// step size to use next. accepted is false when the trial exceeded tol and
// the caller should retry with the returned dt.
type AdaptiveIntegrator interface {
	Integrator
	StepAdaptive(dyn System, x State, t, dt, tol float64) (next State, dtNext float64, accepted bool)
}

// Observer is notified after every accepted step.
type Observer interface {
	Observe(x State, t float64)
}
