package constant

import "time"

// Ring geometry defaults
const (
	// DefaultRadius is the anchor-to-item distance in pixels
	DefaultRadius = 80.0

	// DefaultButtonSize is the rendered hub button diameter; hit radius is half of it
	DefaultButtonSize = 48.0

	// MinRadius and MaxRadius bound pinch and keyboard zoom
	MinRadius = 40.0
	MaxRadius = 120.0

	// DefaultStartAngle places index 0 straight up (screen y grows downward)
	DefaultStartAngle = -90.0

	// CornerArcRange is the quarter-circle spread used by the corner layout
	CornerArcRange = 90.0

	// WideArcRange is the spread used by the extended corner layout
	WideArcRange = 216.0

	// PositionPrecision is the number of decimals kept on rendered coordinates
	PositionPrecision = 2
)

// Gesture timing and distance thresholds
const (
	// LongPressDuration is the hold time that promotes a press to long-press
	LongPressDuration = 800 * time.Millisecond

	// DoubleTapWindow is the maximum gap between two tap releases on one target
	DoubleTapWindow = 300 * time.Millisecond

	// DragThreshold is the travel in pixels before a drag is recognized (mobile-tuned)
	DragThreshold = 40.0

	// JitterTolerance is the travel in pixels tolerated without cancelling tap/long-press
	JitterTolerance = 10.0

	// AnnulusInner and AnnulusOuter scale the radius to form the rotate-drag arming band
	AnnulusInner = 0.7
	AnnulusOuter = 1.4
)

// Disclosure timing
const (
	// InactivityTimeout collapses an expanded hub after no interaction
	InactivityTimeout = 10 * time.Second
)

// Keyboard steps
const (
	// RotationStep is the offset change per arrow key in degrees
	RotationStep = 30.0

	// RadiusStep is the radius change per arrow key in pixels
	RadiusStep = 10.0

	// RadiusStepLarge is the radius change per +/- key in pixels
	RadiusStepLarge = 15.0

	// MaxDigitShortcut is the highest digit key that jumps to an item
	MaxDigitShortcut = 6
)
