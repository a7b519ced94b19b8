package orbits

import (
	"math"
	"sort"

	"github.com/san-kum/resonancex/internal/integrators"
	"github.com/san-kum/resonancex/internal/physics"
	"github.com/san-kum/resonancex/internal/resonance"
	"github.com/san-kum/resonancex/internal/units"
)

type Vec2 = physics.Vec2

// Trajectory is the sampled result of Simulate. Positions[k][i] is planet i
// at Times[k], relative to the star, in AU.
type Trajectory struct {
	Times     []float64
	Positions [][]Vec2
	Masses    []float64 // solar masses, after fallback substitution
	Periods   []float64 // days, after chain locking
	Names     []string
	Duration  float64
	StarMass  float64 // solar masses

	// Chain is set when resonant-chain locking was applied.
	Chain *resonance.Chain

	EnergyDrift   float64
	MomentumDrift float64
	MaxExcursion  float64

	start []Vec2
}

func (tr *Trajectory) NumPlanets() int { return len(tr.Periods) }

// Track returns planet i's positions in time order.
func (tr *Trajectory) Track(i int) []Vec2 {
	out := make([]Vec2, len(tr.Positions))
	for k, snap := range tr.Positions {
		out[k] = snap[i]
	}
	return out
}

// SweptAngle returns planet i's unwrapped heliocentric longitude at every
// snapshot, measured from its initial longitude. Steps must resolve each
// orbit with more than two samples for the unwrapping to hold.
func (tr *Trajectory) SweptAngle(i int) []float64 {
	out := make([]float64, len(tr.Positions))
	prev := tr.initial(i).Angle()
	total := 0.0
	for k, snap := range tr.Positions {
		a := snap[i].Angle()
		d := a - prev
		for d > math.Pi {
			d -= 2 * math.Pi
		}
		for d < -math.Pi {
			d += 2 * math.Pi
		}
		total += d
		out[k] = total
		prev = a
	}
	return out
}

// MeasuredPeriod estimates planet i's orbital period in days from a least
// squares fit of swept angle against time.
func (tr *Trajectory) MeasuredPeriod(i int) float64 {
	w := tr.meanMotion(i)
	if w == 0 {
		return math.Inf(1)
	}
	return 2 * math.Pi / math.Abs(w)
}

// KeplerPeriod is the period Kepler's third law assigns to planet i's mean
// heliocentric radius. It matches Periods[i] while the orbit stays circular.
func (tr *Trajectory) KeplerPeriod(i int) float64 {
	if len(tr.Positions) == 0 || !(tr.StarMass > 0) {
		return math.NaN()
	}
	r := 0.0
	for _, snap := range tr.Positions {
		r += snap[i].Norm()
	}
	r /= float64(len(tr.Positions))
	return units.OrbitalPeriod(r, tr.StarMass+tr.Masses[i])
}

// AngleRatio is the ratio of total angle swept by planet i to that swept by
// planet j. For a p:q resonance with i inner this approaches p/q.
func (tr *Trajectory) AngleRatio(i, j int) float64 {
	si, sj := tr.SweptAngle(i), tr.SweptAngle(j)
	if len(si) == 0 {
		return math.NaN()
	}
	return si[len(si)-1] / sj[len(sj)-1]
}

func (tr *Trajectory) meanMotion(i int) float64 {
	angles := tr.SweptAngle(i)
	n := float64(len(angles) + 1)

	// The initial sample sits at t=0 with zero swept angle.
	var st, sa, stt, sta float64
	for k, a := range angles {
		t := tr.Times[k]
		st += t
		sa += a
		stt += t * t
		sta += t * a
	}
	den := n*stt - st*st
	if den == 0 {
		return 0
	}
	return (n*sta - st*sa) / den
}

func (tr *Trajectory) initial(i int) Vec2 {
	if tr.start != nil {
		return tr.start[i]
	}
	if len(tr.Positions) > 0 {
		return tr.Positions[0][i]
	}
	return Vec2{}
}

// Span, Frame and Labels let a trajectory drive the terminal viewer.

func (tr *Trajectory) Span() float64 { return tr.Duration }

func (tr *Trajectory) Labels() []string { return tr.Names }

// Frame interpolates planet positions linearly between snapshots. Before the
// first snapshot it interpolates from the initial configuration when known.
func (tr *Trajectory) Frame(t float64) ([]Vec2, error) {
	if t < 0 || t > tr.Duration || math.IsNaN(t) || len(tr.Times) == 0 {
		return nil, integrators.ErrOutOfRange
	}

	k := sort.SearchFloat64s(tr.Times, t)
	if k >= len(tr.Times) {
		k = len(tr.Times) - 1
	}

	var t0 float64
	var p0 []Vec2
	if k == 0 {
		p0 = make([]Vec2, tr.NumPlanets())
		for i := range p0 {
			p0[i] = tr.initial(i)
		}
	} else {
		t0, p0 = tr.Times[k-1], tr.Positions[k-1]
	}
	t1, p1 := tr.Times[k], tr.Positions[k]

	s := 1.0
	if t1 > t0 {
		s = (t - t0) / (t1 - t0)
	}
	out := make([]Vec2, len(p1))
	for i := range out {
		out[i] = Vec2{
			X: p0[i].X + s*(p1[i].X-p0[i].X),
			Y: p0[i].Y + s*(p1[i].Y-p0[i].Y),
		}
	}
	return out, nil
}
