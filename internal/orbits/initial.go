package orbits

import (
	"math"

	"github.com/san-kum/resonancex/internal/physics"
	"github.com/san-kum/resonancex/internal/resonance"
	"github.com/san-kum/resonancex/internal/units"
)

// layout is the resolved initial configuration: effective periods, masses
// and phases per planet, in input order.
type layout struct {
	periods []float64
	masses  []float64
	phases  []float64
	chain   *resonance.Chain
}

func newLayout(p Params) layout {
	n := len(p.Periods)
	l := layout{
		periods: make([]float64, n),
		masses:  make([]float64, n),
		phases:  make([]float64, n),
	}
	copy(l.periods, p.Periods)
	for i, m := range p.Masses {
		l.masses[i] = units.Mass(m)
	}
	for i := range l.phases {
		l.phases[i] = 2 * math.Pi * float64(i) / float64(n)
	}

	if !p.ResonantChain {
		return l
	}

	det := resonance.Detector{Tolerance: p.Tolerance, MaxOrder: p.MaxOrder}
	chain := det.Chain(p.Periods)
	if !chain.Locked() {
		return l
	}
	l.chain = &chain
	l.periods = chain.LockedPeriods(p.Periods)

	// A 1:1 dominant ratio would stack planets on the same longitude.
	d := chain.Dominant
	if d.P > d.Q {
		step := 2 * math.Pi * float64(d.Q) / float64(d.P)
		for k, i := range chain.Order {
			l.phases[i] = math.Mod(float64(k)*step, 2*math.Pi)
		}
	}
	return l
}

func (l layout) circular(starMass float64) []physics.Circular {
	planets := make([]physics.Circular, len(l.periods))
	for i := range planets {
		planets[i] = physics.Circular{
			Mass:          l.masses[i],
			SemiMajorAxis: units.SemiMajorAxis(l.periods[i], starMass+l.masses[i]),
			Phase:         l.phases[i],
		}
	}
	return planets
}
