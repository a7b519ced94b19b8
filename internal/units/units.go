// Package units converts catalog quantities into simulation units.
//
// Simulation units are astronomical units, days and solar masses. Catalog
// masses arrive in Jupiter masses (NASA archive) or Earth masses (TRAPPIST-1
// literature) and periods in days.
package units

import "math"

const (
	// G is the gravitational constant in AU^3 / (Msun day^2).
	G = 2.959122082855911e-4

	// JupiterMass is one Jupiter mass in solar masses.
	JupiterMass = 0.0009543

	// EarthMass is one Earth mass in solar masses.
	EarthMass = 3.003e-6

	// FallbackMass replaces missing or non-positive planet masses.
	FallbackMass = 0.001

	// ReferenceStarMass is the central mass assumed when a catalog row
	// carries no stellar mass.
	ReferenceStarMass = 1.0

	twoPi = 2 * math.Pi
)

// JupiterToSolar converts Jupiter masses to solar masses.
func JupiterToSolar(mj float64) float64 {
	return mj * JupiterMass
}

// EarthToSolar converts Earth masses to solar masses.
func EarthToSolar(me float64) float64 {
	return me * EarthMass
}

// PlanetMass converts a catalog mass in Jupiter masses into solar masses,
// substituting FallbackMass when the value is missing (NaN) or not positive.
func PlanetMass(mj float64) float64 {
	if !Positive(mj) {
		return FallbackMass
	}
	return JupiterToSolar(mj)
}

// Mass returns m unchanged when it is a usable simulation mass and
// FallbackMass otherwise.
func Mass(m float64) float64 {
	if !Positive(m) {
		return FallbackMass
	}
	return m
}

// SemiMajorAxis applies Kepler's third law, a^3 = G M P^2 / (4 pi^2), for a
// period in days around centralMass solar masses. The result is in AU.
func SemiMajorAxis(periodDays, centralMass float64) float64 {
	return math.Cbrt(G * centralMass * periodDays * periodDays / (twoPi * twoPi))
}

// OrbitalPeriod inverts SemiMajorAxis, returning days.
func OrbitalPeriod(a, centralMass float64) float64 {
	return twoPi * math.Sqrt(a*a*a/(G*centralMass))
}

// CircularSpeed is the speed in AU/day of a circular orbit of radius a.
func CircularSpeed(a, centralMass float64) float64 {
	return math.Sqrt(G * centralMass / a)
}

// Positive reports whether v is finite and greater than zero.
func Positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
