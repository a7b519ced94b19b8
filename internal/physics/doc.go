// Package physics holds the gravity model used by both simulators.
//
// [Gravity] implements [dynamo.System] and [dynamo.Hamiltonian] for planar
// N-body systems in simulation units (AU, days, solar masses). Forces are
// softened by [DefaultSoftening] so close encounters stay finite.
//
// [CircularState] builds initial conditions: every planet on a prograde
// circular orbit about the star, shifted so the barycentre is at rest at the
// origin.
//
//	masses, x0 := physics.CircularState(1.0, []physics.Circular{
//	    {Mass: 3e-6, SemiMajorAxis: 1},
//	    {Mass: 1e-3, SemiMajorAxis: 5.2, Phase: math.Pi},
//	})
//	grav := physics.NewGravity(masses)
package physics
