package metrics

import (
	"math"

	"github.com/san-kum/resonancex/internal/dynamo"
)

// Radius reports the distance of body i from the reference body in a state.
type Radius func(x dynamo.State, i int) float64

// RadialExcursion tracks how far orbits wander from their starting radius:
// the largest |r(t) - r(0)| / r(0) over all tracked bodies.
type RadialExcursion struct {
	bodies  []int
	radius  Radius
	initial []float64
	max     float64
	samples int
}

func NewRadialExcursion(bodies []int, radius Radius) *RadialExcursion {
	return &RadialExcursion{bodies: bodies, radius: radius}
}

func (s *RadialExcursion) Name() string { return "radial_excursion" }

func (s *RadialExcursion) Observe(x dynamo.State, t float64) {
	if s.samples == 0 {
		s.initial = make([]float64, len(s.bodies))
		for k, i := range s.bodies {
			s.initial[k] = s.radius(x, i)
		}
	}
	s.samples++

	for k, i := range s.bodies {
		r0 := s.initial[k]
		if r0 == 0 {
			continue
		}
		s.max = math.Max(s.max, math.Abs(s.radius(x, i)-r0)/r0)
	}
}

func (s *RadialExcursion) Value() float64 {
	return s.max
}

func (s *RadialExcursion) Reset() {
	s.initial = nil
	s.max = 0
	s.samples = 0
}
