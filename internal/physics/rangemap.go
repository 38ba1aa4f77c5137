// Package physics maps financial metrics to visual/kinematic particle
// properties and evolves particle positions under attraction forces with
// elastic boundary collisions. All functions are pure: they consume a stock
// collection and return a new one, never mutating their input.
package physics

// Normalize rescales value from [srcMin, srcMax] to [dstMin, dstMax].
// A degenerate source range (srcMax == srcMin) returns dstMin rather than
// dividing by zero.
func Normalize(value, srcMin, srcMax, dstMin, dstMax float64) float64 {
	if srcMax == srcMin {
		return dstMin
	}
	t := (value - srcMin) / (srcMax - srcMin)
	return dstMin + t*(dstMax-dstMin)
}

// NormalizeUnit rescales value from [srcMin, srcMax] to [0, 1].
func NormalizeUnit(value, srcMin, srcMax float64) float64 {
	return Normalize(value, srcMin, srcMax, 0, 1)
}
