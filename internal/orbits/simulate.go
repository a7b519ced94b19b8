package orbits

import (
	"math"
	"strconv"

	"github.com/san-kum/resonancex/internal/dynamo"
	"github.com/san-kum/resonancex/internal/integrators"
	"github.com/san-kum/resonancex/internal/metrics"
	"github.com/san-kum/resonancex/internal/physics"
)

// Simulate integrates the star and planets for p.Steps fixed steps of
// p.DurationDays/p.Steps and records heliocentric planet positions after
// every step. Invalid parameters return an error wrapping dynamo.ErrData; a
// non-finite state returns a *dynamo.DivergenceError and no trajectory.
func Simulate(p Params) (*Trajectory, error) {
	p, l, grav, x, integ, err := setup(p)
	if err != nil {
		return nil, err
	}

	n := len(p.Periods)
	bodies := make([]int, n)
	for i := range bodies {
		bodies[i] = i + 1
	}
	drift := metrics.NewEnergyDrift(grav)
	excursion := metrics.NewRadialExcursion(bodies, func(x dynamo.State, i int) float64 {
		dx, dy := grav.Position(x, i, 0)
		return math.Hypot(dx, dy)
	})
	momentum := metrics.NewMomentumDrift(grav)
	observers := []metrics.Metric{drift, momentum, excursion}

	traj := &Trajectory{
		Times:     make([]float64, p.Steps),
		Positions: make([][]Vec2, p.Steps),
		Masses:    l.masses,
		Periods:   l.periods,
		Names:     labels(p.Names, n),
		Duration:  p.DurationDays,
		StarMass:  p.StarMass,
		Chain:     l.chain,
		start:     heliocentric(grav, x, n),
	}

	for _, m := range observers {
		m.Observe(x, 0)
	}

	dt := p.DurationDays / float64(p.Steps)
	t := 0.0
	for k := 0; k < p.Steps; k++ {
		x = integ.Step(grav, x, t, dt)
		t = p.DurationDays * float64(k+1) / float64(p.Steps)

		if !x.IsValid() {
			return nil, &dynamo.DivergenceError{Step: k, Time: t}
		}

		traj.Times[k] = t
		traj.Positions[k] = heliocentric(grav, x, n)
		for _, m := range observers {
			m.Observe(x, t)
		}
	}

	traj.EnergyDrift = drift.Value()
	traj.MomentumDrift = momentum.Value()
	traj.MaxExcursion = excursion.Value()
	return traj, nil
}

// setup validates p and builds the initial system shared by Simulate and
// Lyapunov.
func setup(p Params) (Params, layout, *physics.Gravity, dynamo.State, dynamo.Integrator, error) {
	p = p.withDefaults()
	if err := p.validate(); err != nil {
		return p, layout{}, nil, nil, nil, err
	}

	l := newLayout(p)
	masses, x := physics.CircularState(p.StarMass, l.circular(p.StarMass))
	grav := physics.NewGravity(masses)

	integ, err := integrators.ByName(p.Integrator)
	if err != nil {
		return p, layout{}, nil, nil, nil, err
	}
	return p, l, grav, x, integ, nil
}

func heliocentric(grav *physics.Gravity, x dynamo.State, n int) []Vec2 {
	out := make([]Vec2, n)
	for i := range out {
		out[i].X, out[i].Y = grav.Position(x, i+1, 0)
	}
	return out
}

func labels(names []string, n int) []string {
	out := make([]string, n)
	for i := range out {
		if i < len(names) && names[i] != "" {
			out[i] = names[i]
			continue
		}
		if 'b'+i <= 'z' {
			out[i] = string(rune('b' + i))
		} else {
			out[i] = strconv.Itoa(i)
		}
	}
	return out
}
