package input

import (
	"github.com/google/uuid"
)

// IntentKind is the single classification a gesture session resolves to
type IntentKind uint8

const (
	IntentNone IntentKind = iota
	IntentTap
	IntentDoubleTap
	IntentLongPress
	IntentRotateDrag
	IntentPinchResize
	IntentSwipe // carousel variant only
)

// String returns the classification name
func (k IntentKind) String() string {
	switch k {
	case IntentTap:
		return "tap"
	case IntentDoubleTap:
		return "double-tap"
	case IntentLongPress:
		return "long-press"
	case IntentRotateDrag:
		return "rotate-drag"
	case IntentPinchResize:
		return "pinch-resize"
	case IntentSwipe:
		return "swipe"
	default:
		return "none"
	}
}

// Stage distinguishes discrete intents from the begin/update/end of continuous ones
type Stage uint8

const (
	StageDiscrete Stage = iota
	StageBegin
	StageUpdate
	StageEnd
)

// TargetKind identifies what a contact landed on
type TargetKind uint8

const (
	TargetNone TargetKind = iota
	TargetAnchor
	TargetHub
	TargetItem
	TargetAction
)

// String returns the target kind name
func (k TargetKind) String() string {
	switch k {
	case TargetAnchor:
		return "anchor"
	case TargetHub:
		return "hub"
	case TargetItem:
		return "item"
	case TargetAction:
		return "action"
	default:
		return "none"
	}
}

// Target is the logical element hit by a contact
// Index is the position in the visible item list, -1 for the anchor or nothing
type Target struct {
	Kind  TargetKind
	ID    string
	Index int
}

// NoTarget is the zero hit
var NoTarget = Target{Kind: TargetNone, Index: -1}

// Tappable reports whether tap, double-tap and long-press apply to the target
func (t Target) Tappable() bool {
	return t.Kind != TargetNone
}

// Same reports whether two targets are the same logical element
func (t Target) Same(o Target) bool {
	return t.Kind == o.Kind && t.ID == o.ID
}

// Intent is a classified gesture outcome
// Pure data struct with no function pointers or engine dependencies
type Intent struct {
	Kind      IntentKind
	Stage     Stage
	Target    Target
	SessionID uuid.UUID

	// Rotate-drag: normalized angular change since the previous sample, degrees in (-180, 180]
	Delta float64
	// Rotate-drag: running sum of Delta for this session
	Accumulated float64
	// Rotate-drag: set on the sample where the rotation direction reversed
	DirectionChanged bool

	// Pinch-resize: current spread over initial spread, applied to StartRadius
	Scale       float64
	StartRadius float64

	// Swipe: bucketed release direction
	Direction Direction
}
