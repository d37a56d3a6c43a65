package core

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// PeakSet is an immutable ordered collection of peaks, stored as parallel
// m/z and intensity columns sorted by non-decreasing m/z. Every
// transformation returns a new PeakSet; the underlying arrays are never
// modified after construction.
type PeakSet struct {
	mz          []float64
	intensities []float64
}

// NewPeakSet validates and copies the given columns into a new PeakSet.
// Peaks are sorted into non-decreasing m/z order (a stable sort, so peaks
// sharing an m/z keep their input order). Returns ErrInvalidPeaks when the
// columns differ in length, any mass is non-positive or non-finite, or any
// intensity is negative or non-finite.
func NewPeakSet(mz, intensities []float64) (*PeakSet, error) {
	if len(mz) != len(intensities) {
		return nil, fmt.Errorf("%w: mz and intensity lengths must match: %d != %d",
			ErrInvalidPeaks, len(mz), len(intensities))
	}

	for i, m := range mz {
		if math.IsNaN(m) || math.IsInf(m, 0) {
			return nil, fmt.Errorf("%w: non-finite mass at index %d", ErrInvalidPeaks, i)
		}
		if m <= 0 {
			return nil, fmt.Errorf("%w: mass must be positive, got %v at index %d", ErrInvalidPeaks, m, i)
		}
	}
	for i, in := range intensities {
		if math.IsNaN(in) || math.IsInf(in, 0) {
			return nil, fmt.Errorf("%w: non-finite intensity at index %d", ErrInvalidPeaks, i)
		}
		if in < 0 {
			return nil, fmt.Errorf("%w: intensity must be non-negative, got %v at index %d", ErrInvalidPeaks, in, i)
		}
	}

	ps := &PeakSet{
		mz:          append([]float64(nil), mz...),
		intensities: append([]float64(nil), intensities...),
	}
	if !sort.Float64sAreSorted(ps.mz) {
		sortPeaksByMz(ps.mz, ps.intensities)
	}
	return ps, nil
}

// sortPeaksByMz stable-sorts both columns by m/z, keeping pairs aligned.
func sortPeaksByMz(mz, intensities []float64) {
	idx := make([]int, len(mz))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return mz[idx[a]] < mz[idx[b]] })

	sortedMz := make([]float64, len(mz))
	sortedInt := make([]float64, len(intensities))
	for i, j := range idx {
		sortedMz[i] = mz[j]
		sortedInt[i] = intensities[j]
	}
	copy(mz, sortedMz)
	copy(intensities, sortedInt)
}

// Len returns the number of peaks.
func (p *PeakSet) Len() int {
	return len(p.mz)
}

// Peak returns the i-th peak in m/z order.
func (p *PeakSet) Peak(i int) Peak {
	return Peak{Mz: p.mz[i], Intensity: p.intensities[i]}
}

// Mz returns a read-only view of the m/z column. Callers must not modify
// the returned slice.
func (p *PeakSet) Mz() []float64 {
	return p.mz
}

// Intensities returns a read-only view of the intensity column. Callers
// must not modify the returned slice.
func (p *PeakSet) Intensities() []float64 {
	return p.intensities
}

// MaxIntensity returns the largest intensity, or 0 for an empty set.
func (p *PeakSet) MaxIntensity() float64 {
	if len(p.intensities) == 0 {
		return 0
	}
	return floats.Max(p.intensities)
}

// NormalizeIntensities returns a new PeakSet with every intensity divided
// by the maximum intensity, so the strongest peak has intensity 1.0.
// Returns ErrEmptySpectrum when the set is empty or all intensities are
// zero, since the operation is undefined there.
func (p *PeakSet) NormalizeIntensities() (*PeakSet, error) {
	if len(p.mz) == 0 {
		return nil, fmt.Errorf("%w: cannot normalize intensities of an empty peak set", ErrEmptySpectrum)
	}
	max := floats.Max(p.intensities)
	if max <= 0 {
		return nil, fmt.Errorf("%w: cannot normalize intensities when all are zero", ErrEmptySpectrum)
	}

	normalized := append([]float64(nil), p.intensities...)
	floats.Scale(1/max, normalized)
	return &PeakSet{
		mz:          p.mz,
		intensities: normalized,
	}, nil
}
