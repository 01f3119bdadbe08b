package terminal

import (
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/orbital/input"
	"github.com/lixenwraith/orbital/vmath"
)

// Terminal cells are roughly twice as tall as wide; pointer math runs in pixel space
const (
	CellWidth  = 8.0
	CellHeight = 16.0
)

// Viewport maps between screen cells and anchor-relative pixels
type Viewport struct {
	CenterX, CenterY int
}

// NewViewport centers the anchor on a w×h screen
func NewViewport(w, h int) Viewport {
	return Viewport{CenterX: w / 2, CenterY: h / 2}
}

// ToPoint converts a cell to anchor-relative pixels
func (v Viewport) ToPoint(x, y int) vmath.Vec2 {
	return vmath.Vec2{
		X: float64(x-v.CenterX) * CellWidth,
		Y: float64(y-v.CenterY) * CellHeight,
	}
}

// ToCell converts anchor-relative pixels to the nearest cell
func (v Viewport) ToCell(p vmath.Vec2) (int, int) {
	return v.CenterX + int(math.Round(p.X/CellWidth)), v.CenterY + int(math.Round(p.Y/CellHeight))
}

// MouseTracker turns tcell's button-state mouse events into down/move/up samples
// Only the primary button drives a contact
type MouseTracker struct {
	down    bool
	lastX   int
	lastY   int
	Pointer int
}

// Translate returns the pointer sample for ev, if any
// Wheel events are reported separately as zoom key presses
func (m *MouseTracker) Translate(ev *tcell.EventMouse, vp Viewport) (input.PointerEvent, bool) {
	x, y := ev.Position()
	pressed := ev.Buttons()&tcell.Button1 != 0
	pe := input.PointerEvent{Pointer: m.Pointer, Pos: vp.ToPoint(x, y), At: ev.When()}

	switch {
	case pressed && !m.down:
		m.down = true
		pe.Kind = input.PointerDown
	case pressed && m.down:
		if x == m.lastX && y == m.lastY {
			return input.PointerEvent{}, false
		}
		pe.Kind = input.PointerMove
	case !pressed && m.down:
		m.down = false
		pe.Kind = input.PointerUp
	default:
		return input.PointerEvent{}, false
	}
	m.lastX, m.lastY = x, y
	return pe, true
}

// Down reports whether the primary button is held
func (m *MouseTracker) Down() bool {
	return m.down
}

// Wheel maps scroll events to zoom keys
func Wheel(ev *tcell.EventMouse) (input.KeyEvent, bool) {
	b := ev.Buttons()
	switch {
	case b&tcell.WheelUp != 0:
		return input.KeyEvent{Key: input.KeyUp, At: ev.When()}, true
	case b&tcell.WheelDown != 0:
		return input.KeyEvent{Key: input.KeyDown, At: ev.When()}, true
	}
	return input.KeyEvent{}, false
}

var keyMap = map[tcell.Key]input.Key{
	tcell.KeyTab:     input.KeyTab,
	tcell.KeyBacktab: input.KeyBacktab,
	tcell.KeyEnter:   input.KeyEnter,
	tcell.KeyEscape:  input.KeyEscape,
	tcell.KeyUp:      input.KeyUp,
	tcell.KeyDown:    input.KeyDown,
	tcell.KeyLeft:    input.KeyLeft,
	tcell.KeyRight:   input.KeyRight,
	tcell.KeyHome:    input.KeyHome,
	tcell.KeyEnd:     input.KeyEnd,
}

// TranslateKey maps a tcell key event into the engine's key model
func TranslateKey(ev *tcell.EventKey) (input.KeyEvent, bool) {
	at := ev.When()
	if at.IsZero() {
		at = time.Now()
	}
	shift := ev.Modifiers()&tcell.ModShift != 0
	if ev.Key() == tcell.KeyRune {
		return input.KeyEvent{Key: input.KeyRune, Rune: ev.Rune(), Shift: shift, At: at}, true
	}
	k, ok := keyMap[ev.Key()]
	if !ok {
		return input.KeyEvent{}, false
	}
	return input.KeyEvent{Key: k, Shift: shift, At: at}, true
}
