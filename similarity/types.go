// Package similarity implements spectral similarity measures: greedy
// cosine matching with mass tolerance, the modified cosine with mass-shift
// support, and a plain m/z overlap metric.
package similarity

import (
	"github.com/NLeSC/massmatch/core"
)

// Result is the outcome of comparing two spectra: a similarity score and
// the number of peak pairs the score is built from. Results are values and
// are never mutated after creation.
type Result struct {
	Score   float64 `json:"score"`
	Matches int     `json:"matches"`
}

// Measure computes a similarity result for a pair of spectra. Pair must be
// a pure function of its inputs with no side effects; it is invoked once
// per matrix cell from multiple goroutines.
//
// Symmetric reports whether Pair(a, b) == Pair(b, a) holds exactly, which
// lets aggregation over a collection against itself compute only one
// triangle of the matrix and mirror the rest.
type Measure interface {
	Pair(a, b *core.Spectrum) Result
	Symmetric() bool
}

// MeasureFunc adapts a plain function to the Measure interface. Adapted
// functions are never assumed symmetric; wrap a type implementing Measure
// when the symmetric-mode optimization is wanted.
type MeasureFunc func(a, b *core.Spectrum) Result

// Pair invokes the wrapped function.
func (f MeasureFunc) Pair(a, b *core.Spectrum) Result {
	return f(a, b)
}

// Symmetric always reports false for adapted functions.
func (f MeasureFunc) Symmetric() bool {
	return false
}
