package fsm

import "github.com/lixenwraith/orbital/vmath"

// StateKind is the disclosure tag
type StateKind uint8

const (
	StateCollapsed StateKind = iota
	StateExpanded
)

// State is a tagged union: HubID is meaningful only when Kind == StateExpanded
type State struct {
	Kind  StateKind
	HubID string
}

// Collapsed returns the collapsed state
func Collapsed() State {
	return State{Kind: StateCollapsed}
}

// Expanded returns the expanded state for hubID
func Expanded(hubID string) State {
	return State{Kind: StateExpanded, HubID: hubID}
}

// IsExpanded reports whether any hub is expanded
func (s State) IsExpanded() bool {
	return s.Kind == StateExpanded
}

// String returns "collapsed" or "expanded(<hub>)"
func (s State) String() string {
	if s.Kind == StateExpanded {
		return "expanded(" + s.HubID + ")"
	}
	return "collapsed"
}

// Bounds clamps the continuous radius state
type Bounds struct {
	MinRadius float64
	MaxRadius float64
}

// Clamp limits r to [MinRadius, MaxRadius]; every radius change goes through it
func (b Bounds) Clamp(r float64) float64 {
	return vmath.Clamp(r, b.MinRadius, b.MaxRadius)
}
