package similarity

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// candidate is one potential peak pairing between two spectra: indices
// into the A and B peak columns plus the pairing's weight.
type candidate struct {
	a, b   int
	weight float64
}

// peakWeight computes the weighted contribution of one peak,
// mz^mzPower * intensity^intensityPower. The default weighting
// (mzPower 0, intensityPower 1) reduces to the raw intensity and skips
// the Pow calls.
func peakWeight(mz, intensity, mzPower, intensityPower float64) float64 {
	if mzPower == 0 && intensityPower == 1 {
		return intensity
	}
	return math.Pow(mz, mzPower) * math.Pow(intensity, intensityPower)
}

// spectrumNorm returns the squared-weight sum of a whole peak column,
// the per-spectrum term of the cosine denominator.
func spectrumNorm(mz, intensities []float64, mzPower, intensityPower float64) float64 {
	if mzPower == 0 && intensityPower == 1 {
		return floats.Dot(intensities, intensities)
	}
	var sum float64
	for i := range mz {
		w := peakWeight(mz[i], intensities[i], mzPower, intensityPower)
		sum += w * w
	}
	return sum
}

// collectCandidates appends to dst every (a, b) pair for which
// |mzA[a] - (mzB[b] + shift)| falls within tolerance, weighted by the
// product of the two peak weights. Both columns are sorted by m/z, so a
// sliding window over B suffices instead of a full cross product. Peaks
// sharing an m/z are all considered; disambiguation is left to the greedy
// assignment.
func collectCandidates(dst []candidate, mzA, intA, mzB, intB []float64, shift float64, tol Tolerance, mzPower, intensityPower float64) []candidate {
	lo := 0
	for ia, ma := range mzA {
		// Shifted B peaks below the window cannot match this or any later
		// A peak.
		for lo < len(mzB) && mzB[lo]+shift < ma-tol.Window(ma) {
			lo++
		}
		wa := peakWeight(ma, intA[ia], mzPower, intensityPower)
		for ib := lo; ib < len(mzB); ib++ {
			mb := mzB[ib] + shift
			if mb-tol.Window(mb) > ma {
				break
			}
			if !tol.Match(ma, mb) {
				continue
			}
			dst = append(dst, candidate{
				a:      ia,
				b:      ib,
				weight: wa * peakWeight(mzB[ib], intB[ib], mzPower, intensityPower),
			})
		}
	}
	return dst
}

// assignGreedy consumes candidates in descending weight order, accepting a
// pair only while both of its peaks are still unused, so every peak joins
// at most one accepted pair. Equal weights are broken by (A index, B index)
// ascending; the ordering is a total order, making the accepted set and
// score identical across repeated runs on the same input.
func assignGreedy(cands []candidate, lenA, lenB int) (weightSum float64, matches int) {
	sort.Slice(cands, func(i, j int) bool {
		ci, cj := cands[i], cands[j]
		if ci.weight != cj.weight {
			return ci.weight > cj.weight
		}
		if ci.a != cj.a {
			return ci.a < cj.a
		}
		return ci.b < cj.b
	})

	usedA := make([]bool, lenA)
	usedB := make([]bool, lenB)
	for _, c := range cands {
		if usedA[c.a] || usedB[c.b] {
			continue
		}
		usedA[c.a] = true
		usedB[c.b] = true
		weightSum += c.weight
		matches++
	}
	return weightSum, matches
}

// clampUnit clamps floating error out of the [0, 1] score range.
func clampUnit(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}
