// Package dynamo provides the simulation primitives shared by the orbital
// engines.
//
// The package defines the state vector and the interfaces the integrators
// and gravity models agree on:
//
//   - [State]: flat vector of positions followed by velocities
//   - [System]: interface for ODE systems (dX/dt = f(X, t))
//   - [Integrator]: fixed-step numerical integrator
//   - [AdaptiveIntegrator]: error-controlled integrator
//
// It also owns the two error kinds the core reports, [ErrData] and
// [ErrNumericalDivergence]. Callers branch on them with errors.Is:
//
//	traj, err := orbits.Simulate(params)
//	if errors.Is(err, dynamo.ErrNumericalDivergence) {
//	    // retry with more steps or a shorter duration
//	}
package dynamo
