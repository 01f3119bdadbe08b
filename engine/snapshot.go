package engine

import (
	"github.com/lixenwraith/orbital/engine/fsm"
	"github.com/lixenwraith/orbital/input"
)

// Snapshot is a read-only view of controller state for renderers
type Snapshot struct {
	State    fsm.State
	Rotation float64
	Radius   float64
	Dragging bool
	Focus    int // -1 when nothing is focusable
	Phase    input.SessionPhase
	Visible  bool
	Alive    bool
}

// Snapshot returns the current state without mutating it
func (c *Controller) Snapshot() Snapshot {
	return Snapshot{
		State:    c.disclosure.State(),
		Rotation: c.disclosure.Rotation(),
		Radius:   c.disclosure.Radius(),
		Dragging: c.disclosure.Dragging(),
		Focus:    c.nav.Cursor(),
		Phase:    c.classifier.Phase(),
		Visible:  c.visible,
		Alive:    c.alive,
	}
}
