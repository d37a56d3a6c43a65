package similarity

import (
	"github.com/NLeSC/massmatch/core"
)

// ModifiedCosine scores two spectra like CosineGreedy but additionally
// lets peaks match at a fixed m/z offset, typically the difference of the
// two precursor masses. A peak in B matches a peak in A when either its
// native mass or its mass plus MassShift falls within tolerance of the A
// peak; both hypotheses feed one greedy assignment, so each peak is still
// consumed at most once. This captures fragment pairs related by a shared
// neutral loss.
//
// The caller supplies MassShift explicitly; the measure reads nothing
// from spectrum metadata.
type ModifiedCosine struct {
	Tolerance      Tolerance
	MzPower        float64
	IntensityPower float64
	MassShift      float64
}

// DefaultModifiedCosine returns a ModifiedCosine with a 0.1 Da tolerance,
// intensity-only weighting, and the given mass shift.
func DefaultModifiedCosine(massShift float64) ModifiedCosine {
	return ModifiedCosine{
		Tolerance:      Absolute(0.1),
		MzPower:        0,
		IntensityPower: 1,
		MassShift:      massShift,
	}
}

// Pair scores spectra a and b, matching B peaks at their native mass or
// shifted by MassShift.
func (m ModifiedCosine) Pair(a, b *core.Spectrum) Result {
	return scoreShifted(a, b, m.MassShift, true, m.Tolerance, m.MzPower, m.IntensityPower)
}

// Symmetric reports true only for a zero shift. With a nonzero MassShift
// the shifted window is applied to the second spectrum's peaks, so
// swapping the arguments flips the sign of the effective shift and the
// results may differ.
func (m ModifiedCosine) Symmetric() bool {
	return m.MassShift == 0
}
