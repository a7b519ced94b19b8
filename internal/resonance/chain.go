package resonance

import (
	"sort"

	"github.com/san-kum/resonancex/internal/units"
)

// Link describes the relation between two period-adjacent planets.
// Locked links carry the exact P:Q the pair was matched to.
type Link struct {
	Inner, Outer int // indices into the original periods slice
	Locked       bool
	P, Q         int
}

// Chain is the integer ratio chain derived from a set of periods.
type Chain struct {
	Order    []int // planet indices sorted by period, innermost first
	Links    []Link
	Dominant Match // most frequent ratio among all matches; zero when none
}

// Locked reports whether at least one consecutive pair matched.
func (c Chain) Locked() bool {
	for _, l := range c.Links {
		if l.Locked {
			return true
		}
	}
	return false
}

// LockedPeriods rewrites the periods so that every locked link holds its
// exact ratio, propagating outward from the innermost planet. Unlocked links
// keep their nominal ratio.
func (c Chain) LockedPeriods(periods []float64) []float64 {
	out := make([]float64, len(periods))
	copy(out, periods)
	for _, l := range c.Links {
		if l.Locked {
			out[l.Outer] = out[l.Inner] * float64(l.P) / float64(l.Q)
		} else {
			out[l.Outer] = out[l.Inner] * periods[l.Outer] / periods[l.Inner]
		}
	}
	return out
}

// Chain runs the detector over periods and derives the resonant chain:
// consecutive pairs in period order that matched become locked links, and
// the most common matched ratio becomes the dominant one.
func (d Detector) Chain(periods []float64) Chain {
	order := make([]int, 0, len(periods))
	for i, p := range periods {
		if units.Positive(p) {
			order = append(order, i)
		}
	}
	sort.SliceStable(order, func(a, b int) bool { return periods[order[a]] < periods[order[b]] })

	chain := Chain{Order: order}
	for k := 1; k < len(order); k++ {
		inner, outer := order[k-1], order[k]
		link := Link{Inner: inner, Outer: outer}
		if p, q, ok := d.nearest(periods[outer] / periods[inner]); ok {
			link.Locked, link.P, link.Q = true, p, q
		}
		chain.Links = append(chain.Links, link)
	}

	if counts := Histogram(d.Detect(periods)); len(counts) > 0 {
		chain.Dominant = counts[0].Example
	}
	return chain
}
