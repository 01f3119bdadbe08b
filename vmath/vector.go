package vmath

import "math"

// Vec2 is a point or displacement in anchor-relative pixels, y grows downward
type Vec2 struct {
	X, Y float64
}

// Sub returns v - o
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Magnitude returns Euclidean length
func (v Vec2) Magnitude() float64 {
	return math.Hypot(v.X, v.Y)
}

// Angle returns the direction of v in degrees within (-180, 180]
// Zero vector reports 0
func (v Vec2) Angle() float64 {
	if v.X == 0 && v.Y == 0 {
		return 0
	}
	return NormalizeDelta(math.Atan2(v.Y, v.X) * 180 / math.Pi)
}

// IsFinite reports whether both components are real numbers
func (v Vec2) IsFinite() bool {
	return isFinite(v.X) && isFinite(v.Y)
}

// Distance returns the Euclidean distance between two points
func Distance(a, b Vec2) float64 {
	return a.Sub(b).Magnitude()
}

// Polar converts an angle in degrees and a radius into cartesian coordinates
func Polar(angleDeg, radius float64) Vec2 {
	rad := angleDeg * math.Pi / 180
	return Vec2{X: math.Cos(rad) * radius, Y: math.Sin(rad) * radius}
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
