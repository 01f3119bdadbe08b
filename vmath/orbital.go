package vmath

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/orbital/constant"
)

// ErrInvalidGeometry reports layout inputs that indicate a caller bug
var ErrInvalidGeometry = errors.New("invalid geometry")

// Position is one placed item, immutable per layout pass
// X and Y are relative to the anchor (circle layout) or to the corner point (arc layout)
type Position struct {
	X     float64
	Y     float64
	Angle float64 // degrees, before rounding
	Index int
}

// Point returns the position as a vector
func (p Position) Point() Vec2 {
	return Vec2{X: p.X, Y: p.Y}
}

// Circle spaces itemCount items evenly around a full circle
// Index 0 sits at startAngleDeg+rotationOffsetDeg; -90 is "up" in screen coordinates
// Order follows input order, never sorted by angle
func Circle(itemCount int, radius, startAngleDeg, rotationOffsetDeg float64) ([]Position, error) {
	if err := validate(itemCount, radius, startAngleDeg, rotationOffsetDeg); err != nil {
		return nil, err
	}
	if itemCount == 0 {
		return []Position{}, nil
	}

	step := 360 / float64(itemCount)
	base := startAngleDeg + rotationOffsetDeg
	positions := make([]Position, itemCount)
	for i := range positions {
		positions[i] = place(i, base+float64(i)*step, radius)
	}
	return positions, nil
}

// Arc spaces itemCount items across a bounded arc of arcRangeDeg
// Items are anchored to a corner point; step divides by max(itemCount-1, 1)
func Arc(itemCount int, radius, startAngleDeg, arcRangeDeg, rotationOffsetDeg float64) ([]Position, error) {
	if err := validate(itemCount, radius, startAngleDeg, rotationOffsetDeg); err != nil {
		return nil, err
	}
	if !isFinite(arcRangeDeg) || arcRangeDeg < 0 || arcRangeDeg > 360 {
		return nil, fmt.Errorf("%w: arc range %v outside [0, 360]", ErrInvalidGeometry, arcRangeDeg)
	}
	if itemCount == 0 {
		return []Position{}, nil
	}

	divisor := itemCount - 1
	if divisor < 1 {
		divisor = 1
	}
	step := arcRangeDeg / float64(divisor)
	base := startAngleDeg + rotationOffsetDeg
	positions := make([]Position, itemCount)
	for i := range positions {
		positions[i] = place(i, base+float64(i)*step, radius)
	}
	return positions, nil
}

func place(index int, angle, radius float64) Position {
	p := Polar(angle, radius)
	return Position{
		X:     Round(p.X, constant.PositionPrecision),
		Y:     Round(p.Y, constant.PositionPrecision),
		Angle: angle,
		Index: index,
	}
}

func validate(itemCount int, radius, startAngleDeg, rotationOffsetDeg float64) error {
	switch {
	case itemCount < 0:
		return fmt.Errorf("%w: negative item count %d", ErrInvalidGeometry, itemCount)
	case !isFinite(radius):
		return fmt.Errorf("%w: radius %v", ErrInvalidGeometry, radius)
	case radius < 0:
		return fmt.Errorf("%w: negative radius %v", ErrInvalidGeometry, radius)
	case !isFinite(startAngleDeg) || !isFinite(rotationOffsetDeg):
		return fmt.Errorf("%w: angle start=%v offset=%v", ErrInvalidGeometry, startAngleDeg, rotationOffsetDeg)
	}
	return nil
}
