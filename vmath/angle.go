package vmath

import "math"

// NormalizeDelta folds an angle difference into (-180, 180]
// A drag from 170 to -170 is +20, never -340
func NormalizeDelta(deg float64) float64 {
	d := math.Mod(deg, 360)
	if d <= -180 {
		d += 360
	} else if d > 180 {
		d -= 360
	}
	return d
}

// AngleDelta returns the signed shortest rotation from one heading to another
func AngleDelta(from, to float64) float64 {
	return NormalizeDelta(to - from)
}

// WrapDegrees folds an absolute angle into [0, 360)
func WrapDegrees(deg float64) float64 {
	d := math.Mod(deg, 360)
	if d < 0 {
		d += 360
	}
	// -0 and values within float error of 360 fold to 0
	if d == 0 || d >= 360 {
		return 0
	}
	return d
}

// Round rounds f to the given number of decimals
// Negative zero is returned as zero so equal layouts compare bit-identical
func Round(f float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	r := math.Round(f*p) / p
	if r == 0 {
		return 0
	}
	return r
}

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
