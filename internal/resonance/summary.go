package resonance

import "sort"

type SystemCount struct {
	System string
	Pairs  int
}

// Summary is what the analysis view reports after a detection run.
type Summary struct {
	Pairs   int
	Systems int
	Top     []SystemCount
}

// Summarize ranks systems by number of resonant pairs, keeping the first
// top entries (all when top <= 0). Ties keep first-appearance order.
func Summarize(matches []Match, top int) Summary {
	var order []string
	counts := make(map[string]int)
	for _, m := range matches {
		if _, seen := counts[m.System]; !seen {
			order = append(order, m.System)
		}
		counts[m.System]++
	}

	ranked := make([]SystemCount, len(order))
	for i, s := range order {
		ranked[i] = SystemCount{System: s, Pairs: counts[s]}
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Pairs > ranked[j].Pairs })

	if top > 0 && len(ranked) > top {
		ranked = ranked[:top]
	}
	return Summary{Pairs: len(matches), Systems: len(order), Top: ranked}
}

type RatioCount struct {
	Ratio   string
	Count   int
	Example Match
}

// Histogram counts matches per ratio, most frequent first; equal counts keep
// first-seen order.
func Histogram(matches []Match) []RatioCount {
	var out []RatioCount
	index := make(map[string]int)
	for _, m := range matches {
		r := m.Ratio()
		if i, ok := index[r]; ok {
			out[i].Count++
			continue
		}
		index[r] = len(out)
		out = append(out, RatioCount{Ratio: r, Count: 1, Example: m})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}
