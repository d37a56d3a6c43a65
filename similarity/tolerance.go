package similarity

import "math"

// Tolerance defines the maximum m/z difference for two peaks to be
// considered matching candidates. It combines an absolute window in Dalton
// with a relative window in parts-per-million; the effective window at a
// given mass is the larger of the two, so a zero field simply disables
// that component.
type Tolerance struct {
	Da  float64 // absolute window in Dalton
	PPM float64 // relative window in parts-per-million of the reference mass
}

// Absolute returns a tolerance with a fixed window in Dalton.
func Absolute(da float64) Tolerance {
	return Tolerance{Da: da}
}

// Relative returns a tolerance scaling with mass, in parts-per-million.
func Relative(ppm float64) Tolerance {
	return Tolerance{PPM: ppm}
}

// Window returns the effective m/z window at the given reference mass.
func (t Tolerance) Window(mz float64) float64 {
	w := t.Da
	if r := mz * t.PPM * 1e-6; r > w {
		w = r
	}
	return w
}

// Match reports whether two masses fall within tolerance of each other.
// The relative window is evaluated at the larger mass, keeping the
// predicate symmetric in its arguments.
func (t Tolerance) Match(a, b float64) bool {
	return math.Abs(a-b) <= t.Window(math.Max(a, b))
}
