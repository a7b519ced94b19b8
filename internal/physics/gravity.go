package physics

import (
	"math"

	"github.com/san-kum/resonancex/internal/dynamo"
	"github.com/san-kum/resonancex/internal/units"
)

// DefaultSoftening is the softening length in AU. It is far below the
// closest star-planet distance in any catalog system, so it only matters
// during close planet-planet encounters.
const DefaultSoftening = 1e-5

// Gravity is planar N-body gravity with softened pairwise forces.
//
// State layout for n bodies: [x0, y0, ..., x(n-1), y(n-1), vx0, vy0, ...,
// vx(n-1), vy(n-1)]. Body 0 is the star by convention but is not treated
// specially.
type Gravity struct {
	Masses    []float64
	G         float64
	Softening float64
}

func NewGravity(masses []float64) *Gravity {
	m := make([]float64, len(masses))
	copy(m, masses)
	return &Gravity{
		Masses:    m,
		G:         units.G,
		Softening: DefaultSoftening,
	}
}

func (g *Gravity) NumBodies() int { return len(g.Masses) }
func (g *Gravity) StateDim() int  { return len(g.Masses) * 4 }

func (g *Gravity) Derive(x dynamo.State, _ float64) dynamo.State {
	n := len(g.Masses)
	half := n * 2
	dx := make(dynamo.State, len(x))

	copy(dx[:half], x[half:])
	g.accelerations(x, dx[half:])
	return dx
}

// accelerations writes the pairwise accelerations into acc, which has
// length 2n and must be zeroed.
func (g *Gravity) accelerations(x dynamo.State, acc []float64) {
	n := len(g.Masses)
	eps2 := g.Softening * g.Softening

	for i := 0; i < n; i++ {
		xi, yi := x[i*2], x[i*2+1]

		for j := i + 1; j < n; j++ {
			rx := x[j*2] - xi
			ry := x[j*2+1] - yi
			r2 := rx*rx + ry*ry + eps2

			rInv := 1.0 / math.Sqrt(r2)
			r3Inv := rInv * rInv * rInv

			fij := g.G * g.Masses[j] * r3Inv
			acc[i*2] += fij * rx
			acc[i*2+1] += fij * ry

			fji := g.G * g.Masses[i] * r3Inv
			acc[j*2] -= fji * rx
			acc[j*2+1] -= fji * ry
		}
	}
}

func (g *Gravity) Energy(x dynamo.State) float64 {
	n := len(g.Masses)
	half := n * 2
	ke := 0.0
	pe := 0.0
	eps2 := g.Softening * g.Softening

	for i := 0; i < n; i++ {
		vx, vy := x[half+i*2], x[half+i*2+1]
		ke += 0.5 * g.Masses[i] * (vx*vx + vy*vy)

		for j := i + 1; j < n; j++ {
			rx := x[j*2] - x[i*2]
			ry := x[j*2+1] - x[i*2+1]
			r := math.Sqrt(rx*rx + ry*ry + eps2)
			pe -= g.G * g.Masses[i] * g.Masses[j] / r
		}
	}

	return ke + pe
}

func (g *Gravity) Momentum(x dynamo.State) (px, py float64) {
	half := len(g.Masses) * 2
	for i, m := range g.Masses {
		px += m * x[half+i*2]
		py += m * x[half+i*2+1]
	}
	return
}

func (g *Gravity) AngularMomentum(x dynamo.State) float64 {
	half := len(g.Masses) * 2
	L := 0.0
	for i, m := range g.Masses {
		xi, yi := x[i*2], x[i*2+1]
		vx, vy := x[half+i*2], x[half+i*2+1]
		L += m * (xi*vy - yi*vx)
	}
	return L
}

// Position returns body i's coordinates relative to body ref.
func (g *Gravity) Position(x dynamo.State, i, ref int) (float64, float64) {
	return x[i*2] - x[ref*2], x[i*2+1] - x[ref*2+1]
}

// Velocity returns body i's velocity relative to body ref.
func (g *Gravity) Velocity(x dynamo.State, i, ref int) (float64, float64) {
	half := len(g.Masses) * 2
	return x[half+i*2] - x[half+ref*2], x[half+i*2+1] - x[half+ref*2+1]
}
