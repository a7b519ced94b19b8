package orbits

import "github.com/san-kum/resonancex/internal/analysis"

// DefaultPerturbation is the initial separation in AU used by Lyapunov.
const DefaultPerturbation = 1e-9

// Lyapunov estimates the largest Lyapunov exponent (per day) of the system
// Simulate would integrate for p, using the same initial conditions, step
// and integrator. Non-positive perturbation selects DefaultPerturbation.
func Lyapunov(p Params, perturbation float64) (float64, error) {
	p, _, grav, x, integ, err := setup(p)
	if err != nil {
		return 0, err
	}
	if perturbation <= 0 {
		perturbation = DefaultPerturbation
	}

	dt := p.DurationDays / float64(p.Steps)
	return analysis.LyapunovExponent(grav, integ, x, dt, p.DurationDays, perturbation), nil
}

// SpectralPeriod estimates planet i's period from the spectrum of its x
// coordinate.
func (tr *Trajectory) SpectralPeriod(i int) float64 {
	if len(tr.Times) < 2 {
		return 0
	}
	xs := make([]float64, len(tr.Positions))
	for k, snap := range tr.Positions {
		xs[k] = snap[i].X
	}
	dt := tr.Times[1] - tr.Times[0]
	return analysis.DominantPeriod(xs, dt)
}
