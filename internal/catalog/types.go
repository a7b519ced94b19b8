package catalog

import (
	"math"

	"github.com/san-kum/resonancex/internal/units"
)

// Row is one validated catalog record. Missing numeric cells are NaN
// (period, mass) or zero (year).
type Row struct {
	Host            string
	Letter          string
	PeriodDays      float64
	MassJup         float64
	DiscoveryMethod string
	DiscoveryYear   int
}

// HasPeriod reports whether the row carries a usable orbital period.
func (r Row) HasPeriod() bool {
	return units.Positive(r.PeriodDays)
}

// Planet is a planet in simulation units.
type Planet struct {
	Letter        string
	PeriodDays    float64
	Mass          float64 // solar masses
	SemiMajorAxis float64 // AU
}

// NewPlanet builds a Planet from a period in days and a mass already in
// solar masses, deriving the semi-major axis around starMass.
func NewPlanet(letter string, periodDays, mass, starMass float64) Planet {
	if !units.Positive(starMass) {
		starMass = units.ReferenceStarMass
	}
	return Planet{
		Letter:        letter,
		PeriodDays:    periodDays,
		Mass:          units.Mass(mass),
		SemiMajorAxis: units.SemiMajorAxis(periodDays, starMass),
	}
}

// System is a host star with its planets in catalog order.
type System struct {
	Host    string
	Planets []Planet
}

func (s System) Periods() []float64 {
	out := make([]float64, len(s.Planets))
	for i, p := range s.Planets {
		out[i] = p.PeriodDays
	}
	return out
}

func (s System) Masses() []float64 {
	out := make([]float64, len(s.Planets))
	for i, p := range s.Planets {
		out[i] = p.Mass
	}
	return out
}

func (s System) Letters() []string {
	out := make([]string, len(s.Planets))
	for i, p := range s.Planets {
		out[i] = p.Letter
	}
	return out
}

// Resonant reports whether the system qualifies for resonance analysis.
func (s System) Resonant() bool {
	return len(s.Planets) >= 2
}

// Subset keeps only the planets whose letter is listed, preserving catalog
// order. An empty list keeps every planet.
func (s System) Subset(letters []string) System {
	if len(letters) == 0 {
		return s
	}
	want := make(map[string]bool, len(letters))
	for _, l := range letters {
		want[l] = true
	}
	out := System{Host: s.Host}
	for _, p := range s.Planets {
		if want[p.Letter] {
			out.Planets = append(out.Planets, p)
		}
	}
	return out
}

func nan() float64 { return math.NaN() }
