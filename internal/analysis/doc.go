// Package analysis provides signal and stability tools for sampled orbits.
//
//   - [DominantPeriod]: strongest period in an evenly sampled signal
//   - [LyapunovExponent]: largest Lyapunov exponent via trajectory separation
//
// # Chaos Detection
//
// A clearly positive largest Lyapunov exponent indicates chaotic dynamics;
// regular orbits give values that shrink toward zero as the run grows:
//
//	lambda := analysis.LyapunovExponent(dyn, integ, x0, dt, duration, 1e-9)
//	if lambda*duration > 10 {
//	    // separation grew by more than e^10: chaotic
//	}
package analysis
