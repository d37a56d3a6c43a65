package similarity

import (
	"github.com/NLeSC/massmatch/core"
)

// IntersectMz scores two spectra by the overlap of their m/z values
// alone, ignoring intensities: the number of one-to-one peak matches
// within tolerance divided by the size of the union of both peak sets
// (a Jaccard index). Useful as a cheap pre-filter before the weighted
// cosine measures.
type IntersectMz struct {
	Tolerance Tolerance
}

// DefaultIntersectMz returns an IntersectMz with a 0.1 Da tolerance.
func DefaultIntersectMz() IntersectMz {
	return IntersectMz{Tolerance: Absolute(0.1)}
}

// Pair scores spectra a and b by shared m/z values.
func (m IntersectMz) Pair(a, b *core.Spectrum) Result {
	pa, pb := a.Peaks(), b.Peaks()
	if pa.Len() == 0 || pb.Len() == 0 {
		return Result{}
	}

	// Unit weights: every candidate pair counts the same, and the greedy
	// tie-break keeps the accepted set deterministic.
	ones := make([]float64, pa.Len())
	for i := range ones {
		ones[i] = 1
	}
	onesB := ones
	if pb.Len() != pa.Len() {
		onesB = make([]float64, pb.Len())
		for i := range onesB {
			onesB[i] = 1
		}
	}

	cands := collectCandidates(nil, pa.Mz(), ones, pb.Mz(), onesB, 0, m.Tolerance, 0, 1)
	_, matches := assignGreedy(cands, pa.Len(), pb.Len())

	union := pa.Len() + pb.Len() - matches
	return Result{
		Score:   clampUnit(float64(matches) / float64(union)),
		Matches: matches,
	}
}

// Symmetric reports true; the overlap count does not depend on argument
// order.
func (m IntersectMz) Symmetric() bool {
	return true
}
