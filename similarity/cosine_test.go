package similarity

import (
	"math"
	"testing"

	"github.com/NLeSC/massmatch/core"
)

// spectrum builds a test spectrum from (mz, intensity) pairs.
func spectrum(t *testing.T, peaks ...[2]float64) *core.Spectrum {
	t.Helper()
	mz := make([]float64, len(peaks))
	intensities := make([]float64, len(peaks))
	for i, p := range peaks {
		mz[i] = p[0]
		intensities[i] = p[1]
	}
	ps, err := core.NewPeakSet(mz, intensities)
	if err != nil {
		t.Fatalf("NewPeakSet() error = %v", err)
	}
	return core.NewSpectrum(ps, nil)
}

func TestCosineGreedyPair(t *testing.T) {
	tests := []struct {
		name        string
		a, b        [][2]float64
		tolerance   float64
		wantScore   float64
		wantMatches int
	}{
		{
			name:        "close peaks match one to one",
			a:           [][2]float64{{100.0, 1.0}, {150.0, 0.5}},
			b:           [][2]float64{{100.01, 0.8}, {150.02, 0.4}},
			tolerance:   0.05,
			wantScore:   1.0, // B is a scaled copy of A
			wantMatches: 2,
		},
		{
			name:        "disjoint mass ranges",
			a:           [][2]float64{{100.0, 1.0}},
			b:           [][2]float64{{200.0, 1.0}},
			tolerance:   0.05,
			wantScore:   0.0,
			wantMatches: 0,
		},
		{
			name:        "partial overlap",
			a:           [][2]float64{{100.0, 1.0}, {150.0, 1.0}},
			b:           [][2]float64{{100.0, 1.0}},
			tolerance:   0.1,
			wantScore:   1.0 / math.Sqrt2,
			wantMatches: 1,
		},
		{
			name:        "duplicate mass consumes only one pair",
			a:           [][2]float64{{100.0, 1.0}, {100.0, 0.5}},
			b:           [][2]float64{{100.0, 0.9}},
			tolerance:   0.1,
			wantScore:   0.9 / math.Sqrt(1.25*0.81),
			wantMatches: 1,
		},
		{
			name:        "empty query spectrum",
			a:           [][2]float64{{100.0, 1.0}},
			b:           nil,
			tolerance:   0.1,
			wantScore:   0.0,
			wantMatches: 0,
		},
		{
			name:        "both spectra empty",
			a:           nil,
			b:           nil,
			tolerance:   0.1,
			wantScore:   0.0,
			wantMatches: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cos := DefaultCosineGreedy()
			cos.Tolerance = Absolute(tt.tolerance)

			got := cos.Pair(spectrum(t, tt.a...), spectrum(t, tt.b...))
			if math.Abs(got.Score-tt.wantScore) > 1e-9 {
				t.Errorf("Pair() score = %v, want %v", got.Score, tt.wantScore)
			}
			if got.Matches != tt.wantMatches {
				t.Errorf("Pair() matches = %d, want %d", got.Matches, tt.wantMatches)
			}
		})
	}
}

func TestCosineGreedySelfSimilarity(t *testing.T) {
	a := spectrum(t, [2]float64{100.0, 1.0}, [2]float64{150.0, 0.5}, [2]float64{200.0, 0.1})

	got := DefaultCosineGreedy().Pair(a, a)
	if got.Score != 1.0 {
		t.Errorf("self similarity score = %v, want exactly 1.0", got.Score)
	}
	if got.Matches != a.Peaks().Len() {
		t.Errorf("self similarity matches = %d, want %d", got.Matches, a.Peaks().Len())
	}
}

func TestCosineGreedySymmetry(t *testing.T) {
	a := spectrum(t, [2]float64{100.0, 0.7}, [2]float64{150.04, 0.2}, [2]float64{300.0, 1.0})
	b := spectrum(t, [2]float64{100.03, 0.6}, [2]float64{150.0, 0.9}, [2]float64{299.98, 0.3})

	cos := DefaultCosineGreedy()
	ab := cos.Pair(a, b)
	ba := cos.Pair(b, a)
	if ab != ba {
		t.Errorf("Pair(a, b) = %+v but Pair(b, a) = %+v, want identical", ab, ba)
	}
	if !cos.Symmetric() {
		t.Error("Symmetric() = false, want true")
	}
}

func TestCosineGreedyDeterminism(t *testing.T) {
	// Equal weights force the tie-break path: both A peaks pair with the
	// single B peak at identical weight.
	a := spectrum(t, [2]float64{100.0, 1.0}, [2]float64{100.02, 1.0})
	b := spectrum(t, [2]float64{100.01, 1.0})

	cos := DefaultCosineGreedy()
	cos.Tolerance = Absolute(0.05)

	first := cos.Pair(a, b)
	if first.Matches != 1 {
		t.Fatalf("Pair() matches = %d, want 1", first.Matches)
	}
	for i := 0; i < 50; i++ {
		if got := cos.Pair(a, b); got != first {
			t.Fatalf("run %d: Pair() = %+v, want %+v (bit-identical)", i, got, first)
		}
	}
}

func TestCosineGreedyWeighting(t *testing.T) {
	// With mz weighting the heavier peak dominates the norm.
	a := spectrum(t, [2]float64{100.0, 1.0}, [2]float64{200.0, 1.0})
	b := spectrum(t, [2]float64{100.0, 1.0})

	cos := CosineGreedy{Tolerance: Absolute(0.1), MzPower: 1, IntensityPower: 1}
	got := cos.Pair(a, b)

	// weights: A peaks 100 and 200, B peak 100; matched sum 100*100.
	want := 10000.0 / math.Sqrt((10000.0+40000.0)*10000.0)
	if math.Abs(got.Score-want) > 1e-9 {
		t.Errorf("Pair() score = %v, want %v", got.Score, want)
	}
	if got.Matches != 1 {
		t.Errorf("Pair() matches = %d, want 1", got.Matches)
	}
}

func TestCosineGreedyZeroIntensityNorm(t *testing.T) {
	a := spectrum(t, [2]float64{100.0, 0.0})
	b := spectrum(t, [2]float64{100.0, 1.0})

	got := DefaultCosineGreedy().Pair(a, b)
	if got.Score != 0 || got.Matches != 0 {
		t.Errorf("Pair() with zero-norm spectrum = %+v, want zero result", got)
	}
}
