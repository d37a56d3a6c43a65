package similarity

import "testing"

func TestToleranceWindow(t *testing.T) {
	tests := []struct {
		name string
		tol  Tolerance
		mz   float64
		want float64
	}{
		{name: "absolute only", tol: Absolute(0.1), mz: 500.0, want: 0.1},
		{name: "relative only", tol: Relative(10), mz: 500.0, want: 0.005},
		{name: "relative below absolute", tol: Tolerance{Da: 0.01, PPM: 10}, mz: 100.0, want: 0.01},
		{name: "relative above absolute", tol: Tolerance{Da: 0.001, PPM: 10}, mz: 500.0, want: 0.005},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tol.Window(tt.mz); got != tt.want {
				t.Errorf("Window(%v) = %v, want %v", tt.mz, got, tt.want)
			}
		})
	}
}

func TestToleranceMatch(t *testing.T) {
	ppm := Relative(10)
	if !ppm.Match(500.0, 500.004) {
		t.Error("Match(500.0, 500.004) = false, want true at 10 ppm")
	}
	if ppm.Match(500.0, 500.006) {
		t.Error("Match(500.0, 500.006) = true, want false at 10 ppm")
	}

	// Symmetric in its arguments.
	if ppm.Match(500.004, 500.0) != ppm.Match(500.0, 500.004) {
		t.Error("Match is not symmetric")
	}
}
