package trappist

import (
	"github.com/san-kum/resonancex/internal/dynamo"
	"github.com/san-kum/resonancex/internal/integrators"
	"github.com/san-kum/resonancex/internal/physics"
)

// Solution is the continuous TRAPPIST-1 trajectory over [0, Duration]. It is
// immutable and safe to share between goroutines.
type Solution struct {
	dense *integrators.Solution
	grav  *physics.Gravity
}

// State is the full barycentric state (star first) at time t.
func (s *Solution) State(t float64) (dynamo.State, error) {
	return s.dense.At(t)
}

// Positions returns the planets' star-centred positions in AU, in the order
// of Planets().
func (s *Solution) Positions(t float64) ([]physics.Vec2, error) {
	x, err := s.dense.At(t)
	if err != nil {
		return nil, err
	}
	out := make([]physics.Vec2, s.grav.NumBodies()-1)
	for i := range out {
		out[i].X, out[i].Y = s.grav.Position(x, i+1, 0)
	}
	return out, nil
}

// Velocities returns the planets' star-relative velocities in AU/day.
func (s *Solution) Velocities(t float64) ([]physics.Vec2, error) {
	x, err := s.dense.At(t)
	if err != nil {
		return nil, err
	}
	out := make([]physics.Vec2, s.grav.NumBodies()-1)
	for i := range out {
		out[i].X, out[i].Y = s.grav.Velocity(x, i+1, 0)
	}
	return out, nil
}

// Energy is the total energy at t, for drift checks.
func (s *Solution) Energy(t float64) (float64, error) {
	x, err := s.dense.At(t)
	if err != nil {
		return 0, err
	}
	return s.grav.Energy(x), nil
}

func (s *Solution) Span() float64 { return s.dense.End() }

// Steps is the number of accepted integrator steps.
func (s *Solution) Steps() int { return s.dense.Steps() }

func (s *Solution) Frame(t float64) ([]physics.Vec2, error) { return s.Positions(t) }

func (s *Solution) Labels() []string {
	out := make([]string, len(planets))
	for i, p := range planets {
		out[i] = p.Name
	}
	return out
}
