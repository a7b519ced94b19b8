package resonance

import (
	"fmt"
	"math"

	"github.com/san-kum/resonancex/internal/catalog"
	"github.com/san-kum/resonancex/internal/dynamo"
	"github.com/san-kum/resonancex/internal/units"
)

const (
	DefaultMaxOrder  = 10
	DefaultTolerance = 0.05

	tieEpsilon = 1e-12
)

// Match is one resonant pair. PeriodA and PeriodB keep the order in which
// the periods were supplied; P >= Q always, so the ratio reads outer:inner.
type Match struct {
	System  string
	PeriodA float64
	PeriodB float64
	P, Q    int
}

func (m Match) Ratio() string {
	return fmt.Sprintf("%d:%d", m.P, m.Q)
}

// Value is P/Q as a float.
func (m Match) Value() float64 {
	return float64(m.P) / float64(m.Q)
}

// Deviation is the relative distance between the observed period ratio and
// P/Q.
func (m Match) Deviation() float64 {
	r := math.Max(m.PeriodA, m.PeriodB) / math.Min(m.PeriodA, m.PeriodB)
	return math.Abs(r-m.Value()) / m.Value()
}

// Detector carries the matching parameters. The zero value is not usable;
// use New or fill both fields.
type Detector struct {
	Tolerance float64
	MaxOrder  int
}

func New(tolerance float64) Detector {
	return Detector{Tolerance: tolerance, MaxOrder: DefaultMaxOrder}
}

func (d Detector) validate() error {
	if !(d.Tolerance > 0 && d.Tolerance < 1) {
		return dynamo.Invalid("tolerance must be in (0,1), got %g", d.Tolerance)
	}
	if d.MaxOrder < 1 {
		return dynamo.Invalid("max order must be positive, got %d", d.MaxOrder)
	}
	return nil
}

// Detect matches every unordered pair of periods. Non-finite and
// non-positive periods are ignored.
func Detect(periods []float64, tolerance float64) []Match {
	return New(tolerance).Detect(periods)
}

func (d Detector) Detect(periods []float64) []Match {
	return d.detect("", periods)
}

func (d Detector) detect(system string, periods []float64) []Match {
	valid := make([]float64, 0, len(periods))
	for _, p := range periods {
		if units.Positive(p) {
			valid = append(valid, p)
		}
	}

	var matches []Match
	for i := 0; i < len(valid); i++ {
		for j := i + 1; j < len(valid); j++ {
			r := math.Max(valid[i], valid[j]) / math.Min(valid[i], valid[j])
			p, q, ok := d.nearest(r)
			if !ok {
				continue
			}
			matches = append(matches, Match{
				System:  system,
				PeriodA: valid[i],
				PeriodB: valid[j],
				P:       p,
				Q:       q,
			})
		}
	}
	return matches
}

// nearest finds the reduced fraction p/q closest to r in relative terms.
// Ties go to the smaller q, then to the smaller p-q.
func (d Detector) nearest(r float64) (int, int, bool) {
	bestP, bestQ := 0, 0
	bestDev := math.Inf(1)

	for q := 1; q <= d.MaxOrder; q++ {
		for p := q; p <= d.MaxOrder; p++ {
			if gcd(p, q) != 1 {
				continue
			}
			target := float64(p) / float64(q)
			dev := math.Abs(r-target) / target

			if dev < bestDev-tieEpsilon || (dev <= bestDev+tieEpsilon && better(p, q, bestP, bestQ)) {
				bestP, bestQ, bestDev = p, q, dev
			}
		}
	}

	if bestQ == 0 || bestDev > d.Tolerance {
		return 0, 0, false
	}
	return bestP, bestQ, true
}

func better(p, q, bestP, bestQ int) bool {
	if q != bestQ {
		return q < bestQ
	}
	return p-q < bestP-bestQ
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// DetectInSystems runs the pairwise search inside each host system, never
// across systems. Hosts with fewer than two valid periods are skipped.
func DetectInSystems(rows []catalog.Row, tolerance float64) ([]Match, error) {
	return New(tolerance).DetectInSystems(rows)
}

func (d Detector) DetectInSystems(rows []catalog.Row) ([]Match, error) {
	if len(rows) == 0 {
		return nil, dynamo.Invalid("no catalog rows")
	}
	if err := d.validate(); err != nil {
		return nil, err
	}

	hosts, byHost := catalog.Group(rows)

	var matches []Match
	for _, host := range hosts {
		periods := make([]float64, 0, len(byHost[host]))
		for _, r := range byHost[host] {
			if r.HasPeriod() {
				periods = append(periods, r.PeriodDays)
			}
		}
		if len(periods) < 2 {
			continue
		}
		matches = append(matches, d.detect(host, periods)...)
	}
	return matches, nil
}
