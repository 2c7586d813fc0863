package detect

import (
	"math"
	"sort"
)

// DefaultDedupThreshold is the proximity below which two same-page
// candidates are considered duplicates, in points, applied to each axis
// independently.
const DefaultDedupThreshold = 30.0

// Deduplicate collapses near-coincident candidates. The input is ranked by
// descending score (stable, so equal scores keep their detection order) and
// accepted greedily: a candidate is dropped when an already-accepted
// candidate on the same page lies strictly within threshold of it on both
// axes. The returned slice keeps the descending-score order.
//
// Running Deduplicate on its own output is a no-op.
func Deduplicate(candidates []Candidate, threshold float64) []Candidate {
	ranked := make([]Candidate, len(candidates))
	copy(ranked, candidates)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	out := make([]Candidate, 0, len(ranked))
	for _, c := range ranked {
		duplicate := false
		for _, kept := range out {
			if kept.Page == c.Page &&
				math.Abs(c.X-kept.X) < threshold &&
				math.Abs(c.Y-kept.Y) < threshold {
				duplicate = true
				break
			}
		}
		if !duplicate {
			out = append(out, c)
		}
	}
	return out
}
