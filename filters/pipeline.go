// Package filters provides pure spectrum transformations composable into
// pipelines. A filter maps a spectrum to a transformed copy, or to nil to
// signal that the spectrum is rejected; rejection is an ordinary result,
// not an error, and short-circuits the remaining pipeline.
package filters

import (
	"github.com/NLeSC/massmatch/core"
)

// Filter transforms a spectrum without mutating it. A nil result rejects
// the spectrum. Filters must also accept a nil input and pass it through,
// so pipelines compose without nil checks at every stage.
type Filter func(*core.Spectrum) *core.Spectrum

// Pipeline composes filters left to right into a single filter. The first
// stage returning nil stops the chain.
func Pipeline(stages ...Filter) Filter {
	return func(s *core.Spectrum) *core.Spectrum {
		for _, stage := range stages {
			if s == nil {
				return nil
			}
			s = stage(s)
		}
		return s
	}
}

// Apply runs a filter over a collection, dropping rejected spectra. The
// input slice is left untouched.
func Apply(spectra []*core.Spectrum, f Filter) []*core.Spectrum {
	kept := make([]*core.Spectrum, 0, len(spectra))
	for _, s := range spectra {
		if out := f(s); out != nil {
			kept = append(kept, out)
		}
	}
	return kept
}
