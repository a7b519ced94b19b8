// Package orbits simulates planetary systems on initially circular orbits
// with planar N-body gravity.
package orbits

import (
	"github.com/san-kum/resonancex/internal/dynamo"
	"github.com/san-kum/resonancex/internal/integrators"
	"github.com/san-kum/resonancex/internal/resonance"
	"github.com/san-kum/resonancex/internal/units"
)

const DefaultIntegrator = "leapfrog"

// Params describes one simulation. Periods are in days and masses in solar
// masses; both are indexed by planet in the order the caller supplies.
type Params struct {
	Periods       []float64
	Masses        []float64
	DurationDays  float64
	Steps         int
	ResonantChain bool

	// Optional. Zero values select the defaults.
	StarMass   float64
	Tolerance  float64
	MaxOrder   int
	Integrator string
	Names      []string
}

func (p Params) withDefaults() Params {
	if p.StarMass == 0 {
		p.StarMass = units.ReferenceStarMass
	}
	if p.Tolerance == 0 {
		p.Tolerance = resonance.DefaultTolerance
	}
	if p.MaxOrder == 0 {
		p.MaxOrder = resonance.DefaultMaxOrder
	}
	if p.Integrator == "" {
		p.Integrator = DefaultIntegrator
	}
	return p
}

func (p Params) validate() error {
	if len(p.Periods) != len(p.Masses) {
		return dynamo.Invalid("%d periods but %d masses", len(p.Periods), len(p.Masses))
	}
	if len(p.Periods) < 2 {
		return dynamo.Invalid("need at least 2 planets, got %d", len(p.Periods))
	}
	for i, period := range p.Periods {
		if !units.Positive(period) {
			return dynamo.Invalid("planet %d: period must be finite and positive, got %g", i, period)
		}
	}
	if !units.Positive(p.DurationDays) {
		return dynamo.Invalid("duration must be positive, got %g", p.DurationDays)
	}
	if p.Steps <= 0 {
		return dynamo.Invalid("steps must be positive, got %d", p.Steps)
	}
	if !units.Positive(p.StarMass) {
		return dynamo.Invalid("star mass must be positive, got %g", p.StarMass)
	}
	if p.Names != nil && len(p.Names) != len(p.Periods) {
		return dynamo.Invalid("%d names for %d planets", len(p.Names), len(p.Periods))
	}
	if p.ResonantChain && !(p.Tolerance > 0 && p.Tolerance < 1) {
		return dynamo.Invalid("tolerance must be in (0,1), got %g", p.Tolerance)
	}
	if p.ResonantChain && p.MaxOrder < 1 {
		return dynamo.Invalid("max order must be positive, got %d", p.MaxOrder)
	}
	if !integrators.Known(p.Integrator) {
		return dynamo.Invalid("unknown integrator: %s (available: %v)", p.Integrator, integrators.Names())
	}
	return nil
}
