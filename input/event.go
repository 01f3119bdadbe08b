package input

import (
	"time"

	"github.com/lixenwraith/orbital/vmath"
)

// PointerKind is the phase of a raw pointer/touch sample
type PointerKind uint8

const (
	PointerNone PointerKind = iota
	PointerDown
	PointerMove
	PointerUp
	PointerCancel // contact left the tracking area or the surface went away
)

// PointerEvent is one timestamped contact sample
// Pos is relative to the ring anchor, in pixels, y growing downward
type PointerEvent struct {
	Kind    PointerKind
	Pointer int // contact id; mouse is 0, touches are distinct ids
	Pos     vmath.Vec2
	At      time.Time
}

// String returns a short name for logs and replay output
func (k PointerKind) String() string {
	switch k {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	case PointerCancel:
		return "cancel"
	default:
		return "none"
	}
}

// PointerKindByName resolves the names produced by String
func PointerKindByName(name string) (PointerKind, bool) {
	for k := PointerDown; k <= PointerCancel; k++ {
		if k.String() == name {
			return k, true
		}
	}
	return PointerNone, false
}

// KeyEvent is one discrete key press
type KeyEvent struct {
	Key   Key
	Rune  rune // set when Key == KeyRune
	Shift bool
	At    time.Time
}
