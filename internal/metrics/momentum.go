package metrics

import (
	"math"

	"github.com/san-kum/resonancex/internal/dynamo"
)

// Rotating is a system with a conserved planar angular momentum.
type Rotating interface {
	AngularMomentum(x dynamo.State) float64
}

// MomentumDrift tracks the largest relative deviation of angular momentum
// from its first observed value.
type MomentumDrift struct {
	initial  float64
	maxDrift float64
	samples  int
	dyn      Rotating
}

func NewMomentumDrift(dyn Rotating) *MomentumDrift {
	return &MomentumDrift{dyn: dyn}
}

func (m *MomentumDrift) Name() string { return "momentum_drift" }

func (m *MomentumDrift) Observe(x dynamo.State, t float64) {
	L := m.dyn.AngularMomentum(x)
	if m.samples == 0 {
		m.initial = L
	}
	m.samples++

	if m.initial != 0 {
		m.maxDrift = math.Max(m.maxDrift, math.Abs(L-m.initial)/math.Abs(m.initial))
	}
}

func (m *MomentumDrift) Value() float64 { return m.maxDrift }

func (m *MomentumDrift) Reset() {
	m.initial = 0
	m.maxDrift = 0
	m.samples = 0
}
