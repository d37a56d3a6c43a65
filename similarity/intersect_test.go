package similarity

import (
	"math"
	"testing"
)

func TestIntersectMzPair(t *testing.T) {
	tests := []struct {
		name        string
		a, b        [][2]float64
		wantScore   float64
		wantMatches int
	}{
		{
			name:        "identical mz sets",
			a:           [][2]float64{{100.0, 1.0}, {150.0, 0.5}},
			b:           [][2]float64{{100.0, 0.1}, {150.0, 0.9}},
			wantScore:   1.0,
			wantMatches: 2,
		},
		{
			name:        "half overlap",
			a:           [][2]float64{{100.0, 1.0}, {150.0, 1.0}},
			b:           [][2]float64{{100.0, 1.0}, {300.0, 1.0}},
			wantScore:   1.0 / 3.0, // 1 shared of 3 distinct
			wantMatches: 1,
		},
		{
			name:        "no overlap",
			a:           [][2]float64{{100.0, 1.0}},
			b:           [][2]float64{{200.0, 1.0}},
			wantScore:   0.0,
			wantMatches: 0,
		},
		{
			name:        "empty side",
			a:           [][2]float64{{100.0, 1.0}},
			b:           nil,
			wantScore:   0.0,
			wantMatches: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DefaultIntersectMz().Pair(spectrum(t, tt.a...), spectrum(t, tt.b...))
			if math.Abs(got.Score-tt.wantScore) > 1e-12 {
				t.Errorf("Pair() score = %v, want %v", got.Score, tt.wantScore)
			}
			if got.Matches != tt.wantMatches {
				t.Errorf("Pair() matches = %d, want %d", got.Matches, tt.wantMatches)
			}
		})
	}
}

func TestIntersectMzIgnoresIntensity(t *testing.T) {
	a := spectrum(t, [2]float64{100.0, 0.001}, [2]float64{150.0, 1.0})
	b := spectrum(t, [2]float64{100.0, 1.0}, [2]float64{150.0, 0.001})

	got := DefaultIntersectMz().Pair(a, b)
	if got.Score != 1.0 || got.Matches != 2 {
		t.Errorf("Pair() = %+v, want full overlap regardless of intensities", got)
	}
}
