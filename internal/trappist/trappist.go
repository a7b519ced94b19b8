// Package trappist simulates the seven-planet TRAPPIST-1 system from fixed
// literature values (Agol et al. 2021) with an adaptive Dormand-Prince
// integrator.
package trappist

import (
	"math"

	"github.com/san-kum/resonancex/internal/integrators"
	"github.com/san-kum/resonancex/internal/physics"
	"github.com/san-kum/resonancex/internal/units"
)

const (
	// StarMass is TRAPPIST-1's mass in solar masses.
	StarMass = 0.0898

	// Duration covers more than five orbits of h and about 66 of b.
	Duration = 100.0

	Tolerance = 1e-9
)

type Planet struct {
	Name       string
	PeriodDays float64
	MassEarth  float64
}

// Mass returns the planet mass in solar masses.
func (p Planet) Mass() float64 { return units.EarthToSolar(p.MassEarth) }

var planets = []Planet{
	{"b", 1.510826, 1.374},
	{"c", 2.421937, 1.308},
	{"d", 4.049219, 0.388},
	{"e", 6.101013, 0.692},
	{"f", 9.207540, 1.039},
	{"g", 12.352446, 1.321},
	{"h", 18.772866, 0.326},
}

// Planets returns a copy of the planet table, innermost first.
func Planets() []Planet {
	out := make([]Planet, len(planets))
	copy(out, planets)
	return out
}

func Masses() []float64 {
	out := make([]float64, len(planets))
	for i, p := range planets {
		out[i] = p.Mass()
	}
	return out
}

func Periods() []float64 {
	out := make([]float64, len(planets))
	for i, p := range planets {
		out[i] = p.PeriodDays
	}
	return out
}

// Simulate integrates the system over Duration days. It panics if the
// integration diverges: every input is a constant, so that is a bug.
func Simulate() (*Solution, []float64, []float64) {
	sol, err := Integrate(Duration, Tolerance)
	if err != nil {
		panic(err)
	}
	return sol, Masses(), Periods()
}

// Integrate is Simulate with an explicit span and relative tolerance.
func Integrate(duration, tol float64) (*Solution, error) {
	circ := make([]physics.Circular, len(planets))
	for i, p := range planets {
		m := p.Mass()
		circ[i] = physics.Circular{
			Mass:          m,
			SemiMajorAxis: units.SemiMajorAxis(p.PeriodDays, StarMass+m),
			Phase:         2 * math.Pi * float64(i) / float64(len(planets)),
		}
	}
	masses, x0 := physics.CircularState(StarMass, circ)
	grav := physics.NewGravity(masses)

	opts := integrators.DefaultSolveOptions()
	opts.Tolerance = tol
	// A fraction of b's orbit; RK45 shrinks it on the first step if needed.
	opts.InitialDt = planets[0].PeriodDays / 100

	dense, err := integrators.Solve(grav, integrators.NewRK45(), x0, 0, duration, opts)
	if err != nil {
		return nil, err
	}
	return &Solution{dense: dense, grav: grav}, nil
}
