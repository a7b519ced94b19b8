package physics

import (
	"math"

	"github.com/san-kum/resonancex/internal/dynamo"
	"github.com/san-kum/resonancex/internal/units"
)

// Circular describes a planet on a circular orbit around the central body.
type Circular struct {
	Mass          float64 // solar masses
	SemiMajorAxis float64 // AU
	Phase         float64 // radians, measured from +x
}

// CircularState places the star at the origin and every planet on a prograde
// circular orbit, then shifts the whole system into the barycentric frame so
// total momentum is zero.
func CircularState(starMass float64, planets []Circular) ([]float64, dynamo.State) {
	n := len(planets) + 1
	half := n * 2
	masses := make([]float64, n)
	x := make(dynamo.State, n*4)

	masses[0] = starMass
	for k, p := range planets {
		i := k + 1
		masses[i] = p.Mass
		v := units.CircularSpeed(p.SemiMajorAxis, starMass+p.Mass)
		sin, cos := math.Sincos(p.Phase)

		x[i*2] = p.SemiMajorAxis * cos
		x[i*2+1] = p.SemiMajorAxis * sin
		x[half+i*2] = -v * sin
		x[half+i*2+1] = v * cos
	}

	toBarycentre(masses, x)
	return masses, x
}

func toBarycentre(masses []float64, x dynamo.State) {
	half := len(masses) * 2
	var total, cx, cy, cvx, cvy float64
	for i, m := range masses {
		total += m
		cx += m * x[i*2]
		cy += m * x[i*2+1]
		cvx += m * x[half+i*2]
		cvy += m * x[half+i*2+1]
	}
	cx, cy, cvx, cvy = cx/total, cy/total, cvx/total, cvy/total

	for i := range masses {
		x[i*2] -= cx
		x[i*2+1] -= cy
		x[half+i*2] -= cvx
		x[half+i*2+1] -= cvy
	}
}

// Vec2 is a point or vector in the orbital plane, in AU.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Angle() float64 { return math.Atan2(v.Y, v.X) }
func (v Vec2) Norm() float64  { return math.Hypot(v.X, v.Y) }
