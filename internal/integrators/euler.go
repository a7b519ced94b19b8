package integrators

import "github.com/san-kum/resonancex/internal/dynamo"

// Euler is the explicit first-order method. On Kepler orbits it gains
// energy every step and planets spiral outward, so it only serves as the
// low-order reference in convergence comparisons.
type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Step(dyn dynamo.System, x dynamo.State, t, dt float64) dynamo.State {
	next := make(dynamo.State, len(x))
	axpy(next, x, dt, dyn.Derive(x, t))
	return next
}

// axpy sets dst = x + a*k.
func axpy(dst, x dynamo.State, a float64, k dynamo.State) {
	for i := range dst {
		dst[i] = x[i] + a*k[i]
	}
}
