package filters

import (
	"sort"

	"github.com/NLeSC/massmatch/core"
)

// NormalizeIntensities scales peak intensities so the strongest peak has
// intensity 1.0. Spectra where normalization is undefined (no peaks, or
// all intensities zero) are rejected.
func NormalizeIntensities() Filter {
	return func(s *core.Spectrum) *core.Spectrum {
		if s == nil {
			return nil
		}
		normalized, err := s.Peaks().NormalizeIntensities()
		if err != nil {
			return nil
		}
		return s.WithPeaks(normalized)
	}
}

// SelectByMz keeps only peaks whose m/z lies in [from, to].
func SelectByMz(from, to float64) Filter {
	return selectPeaks(func(p core.Peak) bool {
		return from <= p.Mz && p.Mz <= to
	})
}

// SelectByRelativeIntensity keeps only peaks whose intensity relative to
// the strongest peak lies in [from, to]. A spectrum with no peaks passes
// through unchanged.
func SelectByRelativeIntensity(from, to float64) Filter {
	return func(s *core.Spectrum) *core.Spectrum {
		if s == nil {
			return nil
		}
		max := s.Peaks().MaxIntensity()
		if max <= 0 {
			return s
		}
		return selectPeaks(func(p core.Peak) bool {
			rel := p.Intensity / max
			return from <= rel && rel <= to
		})(s)
	}
}

// ReduceToNumberOfPeaks keeps the n most intense peaks, preserving m/z
// order among the kept ones. Spectra with at most n peaks pass through
// unchanged.
func ReduceToNumberOfPeaks(n int) Filter {
	return func(s *core.Spectrum) *core.Spectrum {
		if s == nil {
			return nil
		}
		ps := s.Peaks()
		if ps.Len() <= n {
			return s
		}

		idx := make([]int, ps.Len())
		for i := range idx {
			idx[i] = i
		}
		intensities := ps.Intensities()
		// Intensity descending, position ascending on ties.
		sort.Slice(idx, func(a, b int) bool {
			if intensities[idx[a]] != intensities[idx[b]] {
				return intensities[idx[a]] > intensities[idx[b]]
			}
			return idx[a] < idx[b]
		})
		idx = idx[:n]
		sort.Ints(idx)

		mz := make([]float64, 0, n)
		kept := make([]float64, 0, n)
		for _, i := range idx {
			p := ps.Peak(i)
			mz = append(mz, p.Mz)
			kept = append(kept, p.Intensity)
		}
		return withSelectedPeaks(s, mz, kept)
	}
}

// RequireMinimumNumberOfPeaks rejects spectra carrying fewer than n peaks.
func RequireMinimumNumberOfPeaks(n int) Filter {
	return func(s *core.Spectrum) *core.Spectrum {
		if s == nil || s.Peaks().Len() < n {
			return nil
		}
		return s
	}
}

// selectPeaks builds a filter keeping peaks matching the predicate.
func selectPeaks(keep func(core.Peak) bool) Filter {
	return func(s *core.Spectrum) *core.Spectrum {
		if s == nil {
			return nil
		}
		ps := s.Peaks()
		mz := make([]float64, 0, ps.Len())
		intensities := make([]float64, 0, ps.Len())
		for i := 0; i < ps.Len(); i++ {
			p := ps.Peak(i)
			if keep(p) {
				mz = append(mz, p.Mz)
				intensities = append(intensities, p.Intensity)
			}
		}
		if len(mz) == ps.Len() {
			return s
		}
		return withSelectedPeaks(s, mz, intensities)
	}
}

// withSelectedPeaks rebuilds the spectrum around a subset of its peaks.
// The subset comes from an already-validated set in m/z order, so
// construction cannot fail.
func withSelectedPeaks(s *core.Spectrum, mz, intensities []float64) *core.Spectrum {
	ps, err := core.NewPeakSet(mz, intensities)
	if err != nil {
		return nil
	}
	return s.WithPeaks(ps)
}
