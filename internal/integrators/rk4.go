package integrators

import "github.com/san-kum/resonancex/internal/dynamo"

// RK4 is the classical fourth-order Runge-Kutta method. It is accurate over
// a few orbits but not symplectic, so energy drifts slowly on long runs;
// the leapfrog is the default for that reason.
//
// The stage buffers are reused between steps, so an RK4 value must not be
// shared between goroutines.
type RK4 struct {
	k1, k2, k3, k4 dynamo.State
	stage          dynamo.State
}

func NewRK4() *RK4 {
	return &RK4{}
}

func (r *RK4) resize(n int) {
	if len(r.k1) == n {
		return
	}
	r.k1 = make(dynamo.State, n)
	r.k2 = make(dynamo.State, n)
	r.k3 = make(dynamo.State, n)
	r.k4 = make(dynamo.State, n)
	r.stage = make(dynamo.State, n)
}

func (r *RK4) Step(dyn dynamo.System, x dynamo.State, t, dt float64) dynamo.State {
	n := len(x)
	r.resize(n)
	half := dt / 2

	copy(r.k1, dyn.Derive(x, t))
	axpy(r.stage, x, half, r.k1)
	copy(r.k2, dyn.Derive(r.stage, t+half))
	axpy(r.stage, x, half, r.k2)
	copy(r.k3, dyn.Derive(r.stage, t+half))
	axpy(r.stage, x, dt, r.k3)
	copy(r.k4, dyn.Derive(r.stage, t+dt))

	next := make(dynamo.State, n)
	for i := range next {
		next[i] = x[i] + dt/6*(r.k1[i]+2*r.k2[i]+2*r.k3[i]+r.k4[i])
	}
	return next
}
