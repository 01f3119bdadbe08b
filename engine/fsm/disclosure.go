package fsm

import (
	"github.com/lixenwraith/orbital/effect"
	"github.com/lixenwraith/orbital/registry"
	"github.com/lixenwraith/orbital/vmath"
)

// Disclosure is the expand/collapse machine plus the ring's continuous state
// Rotation and radius are independent of the disclosure tag
// Every mutation path (pointer or keyboard) goes through these methods
type Disclosure struct {
	state    State
	rotation float64 // degrees, [0, 360)
	radius   float64
	bounds   Bounds
	dragging bool
}

// NewDisclosure returns a machine in Collapsed with rotation 0
func NewDisclosure(radius float64, bounds Bounds) *Disclosure {
	return &Disclosure{
		state:  Collapsed(),
		radius: bounds.Clamp(radius),
		bounds: bounds,
	}
}

func (d *Disclosure) State() State        { return d.state }
func (d *Disclosure) Rotation() float64   { return d.rotation }
func (d *Disclosure) Radius() float64     { return d.radius }
func (d *Disclosure) Dragging() bool      { return d.dragging }
func (d *Disclosure) SetDragging(on bool) { d.dragging = on }

// Tap navigates to the hub; disclosure state is unchanged
func (d *Disclosure) Tap(hub registry.Hub) []effect.Effect {
	return []effect.Effect{effect.NewNavigate(hub.ID, "", hub.Target)}
}

// LongPress expands a hub from Collapsed, toggles the same hub back, and switches between hubs
// A switch moves Expanded(prev) to Expanded(hub) directly, emitting Collapse(prev) before Expand(hub)
func (d *Disclosure) LongPress(hubID string) []effect.Effect {
	switch {
	case !d.state.IsExpanded():
		d.state = Expanded(hubID)
		return []effect.Effect{effect.NewExpand(hubID)}
	case d.state.HubID == hubID:
		d.state = Collapsed()
		return []effect.Effect{effect.NewCollapse(hubID, effect.ReasonToggle)}
	default:
		prev := d.state.HubID
		d.state = Expanded(hubID)
		return []effect.Effect{
			effect.NewCollapse(prev, effect.ReasonSwitch),
			effect.NewExpand(hubID),
		}
	}
}

// DoubleTap runs the hub's first quick action if it reports one
func (d *Disclosure) DoubleTap(hubID string, actions []registry.Action) []effect.Effect {
	if len(actions) == 0 {
		return nil
	}
	return []effect.Effect{effect.NewQuickAction(hubID, actions[0].ID)}
}

// AutoCollapse handles the inactivity timer
func (d *Disclosure) AutoCollapse() []effect.Effect {
	if !d.state.IsExpanded() {
		return nil
	}
	hubID := d.state.HubID
	d.state = Collapsed()
	return []effect.Effect{effect.NewAutoCollapse(hubID)}
}

// Escape collapses an expanded hub, or asks the host to close the surface
func (d *Disclosure) Escape() []effect.Effect {
	return d.dismiss(effect.ReasonEscape)
}

// Dismiss is Escape caused by an outside press
func (d *Disclosure) Dismiss() []effect.Effect {
	return d.dismiss(effect.ReasonDismiss)
}

func (d *Disclosure) dismiss(reason string) []effect.Effect {
	if !d.state.IsExpanded() {
		return []effect.Effect{effect.NewCloseSurface()}
	}
	return d.ForceCollapse(reason)
}

// ForceCollapse collapses without the toggle semantics; no-op when collapsed
func (d *Disclosure) ForceCollapse(reason string) []effect.Effect {
	if !d.state.IsExpanded() {
		return nil
	}
	hubID := d.state.HubID
	d.state = Collapsed()
	return []effect.Effect{effect.NewCollapse(hubID, reason)}
}

// RotateBy adds delta degrees to the offset, wrapping into [0, 360)
func (d *Disclosure) RotateBy(delta float64) []effect.Effect {
	if delta == 0 {
		return nil
	}
	d.rotation = vmath.WrapDegrees(d.rotation + delta)
	return []effect.Effect{effect.NewRotateTo(d.rotation)}
}

// ResizeTo sets the radius clamped to bounds; emits only when the radius changes
func (d *Disclosure) ResizeTo(radius float64) []effect.Effect {
	r := d.bounds.Clamp(radius)
	if r == d.radius {
		return nil
	}
	d.radius = r
	return []effect.Effect{effect.NewResizeTo(r)}
}

// ResizeBy steps the radius by delta pixels
func (d *Disclosure) ResizeBy(delta float64) []effect.Effect {
	return d.ResizeTo(d.radius + delta)
}

// SetBounds updates the radius bounds and re-clamps the current radius
// Emits ResizeTo only when the radius had to move
func (d *Disclosure) SetBounds(b Bounds) []effect.Effect {
	d.bounds = b
	return d.ResizeTo(d.radius)
}

// Reset returns to the initial state; used on dispose
func (d *Disclosure) Reset(radius float64) {
	d.state = Collapsed()
	d.rotation = 0
	d.radius = d.bounds.Clamp(radius)
	d.dragging = false
}
