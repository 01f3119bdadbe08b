package input

import "github.com/lixenwraith/orbital/vmath"

// Direction is a 90° release sector
type Direction uint8

const (
	DirectionNone Direction = iota
	DirectionRight
	DirectionDown
	DirectionLeft
	DirectionUp
)

// String returns the direction name
func (d Direction) String() string {
	switch d {
	case DirectionRight:
		return "right"
	case DirectionDown:
		return "down"
	case DirectionLeft:
		return "left"
	case DirectionUp:
		return "up"
	default:
		return "none"
	}
}

// BucketDirection classifies a net displacement into four sectors centered on the axes
// Returns DirectionNone when the displacement does not exceed threshold
func BucketDirection(displacement vmath.Vec2, threshold float64) Direction {
	if displacement.Magnitude() <= threshold {
		return DirectionNone
	}
	a := displacement.Angle() // (-180, 180], screen y down
	switch {
	case a > -45 && a <= 45:
		return DirectionRight
	case a > 45 && a <= 135:
		return DirectionDown
	case a > -135 && a <= -45:
		return DirectionUp
	default:
		return DirectionLeft
	}
}

// SwipePolicy maps directions to secondary surface names
// A direction absent from the table fires nothing
type SwipePolicy map[Direction]string

// Surface returns the surface mapped to d
func (p SwipePolicy) Surface(d Direction) (string, bool) {
	s, ok := p[d]
	if !ok || s == "" {
		return "", false
	}
	return s, true
}
