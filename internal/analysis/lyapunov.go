package analysis

import (
	"math"

	"github.com/san-kum/resonancex/internal/dynamo"
)

// LyapunovExponent estimates the largest Lyapunov exponent, in inverse time
// units, using the trajectory separation method.
//
// Algorithm:
// 1. Run two trajectories starting perturbation apart in x[0]
// 2. After every step accumulate ln(|δx|/δ0)
// 3. Pull the shadow trajectory back to distance δ0 along δx
// 4. λ ≈ Σ ln(|δx|/δ0) / t
func LyapunovExponent(
	dyn dynamo.System,
	integ dynamo.Integrator,
	x0 dynamo.State,
	dt, duration float64,
	perturbation float64,
) float64 {
	if len(x0) == 0 || perturbation <= 0 || dt <= 0 {
		return 0
	}

	x := x0.Clone()
	xp := x0.Clone()
	xp[0] += perturbation
	d0 := perturbation

	steps := int(math.Round(duration / dt))
	t := 0.0
	sumLog := 0.0

	for k := 0; k < steps; k++ {
		x = integ.Step(dyn, x, t, dt)
		xp = integ.Step(dyn, xp, t, dt)
		t += dt

		sep := xp.Sub(x).Norm()
		if sep == 0 || math.IsNaN(sep) || math.IsInf(sep, 0) {
			break
		}
		sumLog += math.Log(sep / d0)

		scale := d0 / sep
		for i := range xp {
			xp[i] = x[i] + (xp[i]-x[i])*scale
		}
	}

	if t == 0 {
		return 0
	}
	return sumLog / t
}
