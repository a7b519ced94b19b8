// Package resonance finds near-integer orbital period ratios.
//
// Matching is purely arithmetic: for every pair of periods the ratio of the
// longer to the shorter is compared against every reduced fraction p/q with
// 1 <= q <= p <= MaxOrder, and the closest fraction is kept when its
// relative deviation is within the tolerance.
//
//	matches := resonance.Detect([]float64{1.0, 2.0}, 0.05)
//	// matches[0].Ratio() == "2:1"
package resonance
