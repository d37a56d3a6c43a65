package similarity

import (
	"math"

	"github.com/NLeSC/massmatch/core"
)

// CosineGreedy scores two spectra with cosine similarity over greedily
// matched peak pairs. Peaks match when their m/z values fall within
// Tolerance; each peak joins at most one pair. The score is the summed
// weight of accepted pairs normalized by the full weighted norms of both
// spectra, giving a value in [0, 1].
//
// MzPower and IntensityPower control the weighting of each peak,
// mz^MzPower * intensity^IntensityPower. The defaults (0, 1) weight by raw
// intensity only; there is no universally agreed-on choice, so both are
// explicit fields rather than hidden constants.
type CosineGreedy struct {
	Tolerance      Tolerance
	MzPower        float64
	IntensityPower float64
}

// DefaultCosineGreedy returns a CosineGreedy with a 0.1 Da tolerance and
// intensity-only weighting.
func DefaultCosineGreedy() CosineGreedy {
	return CosineGreedy{
		Tolerance:      Absolute(0.1),
		MzPower:        0,
		IntensityPower: 1,
	}
}

// Pair scores spectra a and b. An empty spectrum on either side yields
// score 0 and no matches; that result is well-defined, not a failure.
func (c CosineGreedy) Pair(a, b *core.Spectrum) Result {
	return scoreShifted(a, b, 0, false, c.Tolerance, c.MzPower, c.IntensityPower)
}

// Symmetric reports true: peak matching and normalization are symmetric
// in the two spectra, so Pair(a, b) == Pair(b, a) exactly.
func (c CosineGreedy) Symmetric() bool {
	return true
}

// scoreShifted is the shared scoring path of CosineGreedy and
// ModifiedCosine. When withShift is set, candidates are collected at both
// the zero shift and the given mass shift, deduplicated, and resolved in
// one greedy pass, so a peak can match at its native or shifted position
// but never both.
func scoreShifted(a, b *core.Spectrum, shift float64, withShift bool, tol Tolerance, mzPower, intensityPower float64) Result {
	pa, pb := a.Peaks(), b.Peaks()
	if pa.Len() == 0 || pb.Len() == 0 {
		return Result{}
	}

	mzA, intA := pa.Mz(), pa.Intensities()
	mzB, intB := pb.Mz(), pb.Intensities()

	normA := spectrumNorm(mzA, intA, mzPower, intensityPower)
	normB := spectrumNorm(mzB, intB, mzPower, intensityPower)
	if normA == 0 || normB == 0 {
		return Result{}
	}

	cands := collectCandidates(nil, mzA, intA, mzB, intB, 0, tol, mzPower, intensityPower)
	if withShift && shift != 0 {
		seen := make(map[int]struct{}, len(cands))
		for _, c := range cands {
			seen[c.a*pb.Len()+c.b] = struct{}{}
		}
		shifted := collectCandidates(nil, mzA, intA, mzB, intB, shift, tol, mzPower, intensityPower)
		for _, c := range shifted {
			if _, dup := seen[c.a*pb.Len()+c.b]; !dup {
				cands = append(cands, c)
			}
		}
	}

	weightSum, matches := assignGreedy(cands, pa.Len(), pb.Len())
	score := clampUnit(weightSum / math.Sqrt(normA*normB))
	return Result{Score: score, Matches: matches}
}
