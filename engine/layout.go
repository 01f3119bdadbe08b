package engine

import (
	"github.com/lixenwraith/orbital/constant"
	"github.com/lixenwraith/orbital/effect"
	"github.com/lixenwraith/orbital/input"
	"github.com/lixenwraith/orbital/registry"
	"github.com/lixenwraith/orbital/vmath"
)

// Element is one visible ring entry as rendered for the current frame
type Element struct {
	Kind   input.TargetKind
	ID     string
	Label  string
	Icon   string
	Target string // navigation target; empty for quick actions
}

// Placement is an element with its computed position
type Placement struct {
	Element  Element
	Position vmath.Position
}

// Target returns the hit target for the placement
func (p Placement) Target() input.Target {
	return input.Target{Kind: p.Element.Kind, ID: p.Element.ID, Index: p.Position.Index}
}

// visibleElements queries the registry for the list matching the disclosure state
// A vanished expanded hub forces a collapse and falls back to the hub list
func (c *Controller) visibleElements() ([]Element, string, []effect.Effect) {
	var effs []effect.Effect
	state := c.disclosure.State()
	if state.IsExpanded() {
		if _, ok := registry.Lookup(c.reg, state.HubID); ok {
			return c.expandedElements(state.HubID), "hub:" + state.HubID, nil
		}
		c.log.Warn().Str("hub", state.HubID).Msg("expanded hub no longer reported, collapsing")
		effs = c.decorate(c.disclosure.ForceCollapse(effect.ReasonHubMissing))
	}

	hubs := c.reg.ActiveHubs()
	elems := make([]Element, 0, len(hubs))
	for _, h := range hubs {
		elems = append(elems, Element{Kind: input.TargetHub, ID: h.ID, Label: h.Label, Icon: h.Icon, Target: h.Target})
	}
	return elems, "hubs", effs
}

func (c *Controller) expandedElements(hubID string) []Element {
	items := c.reg.SubItems(hubID)
	actions := c.reg.QuickActions(hubID)
	elems := make([]Element, 0, len(items)+len(actions))
	for _, it := range items {
		elems = append(elems, Element{Kind: input.TargetItem, ID: it.ID, Label: it.Label, Target: it.Target})
	}
	for _, a := range actions {
		elems = append(elems, Element{Kind: input.TargetAction, ID: a.ID, Label: a.Label})
	}
	return elems
}

// place runs the configured geometry for n items at the current radius and rotation
func (c *Controller) place(n int) ([]vmath.Position, error) {
	radius := c.disclosure.Radius()
	rotation := c.disclosure.Rotation()
	if c.cfg.Layout == constant.LayoutArc {
		return vmath.Arc(n, radius, c.cfg.StartAngle, c.cfg.ArcRange, rotation)
	}
	return vmath.Circle(n, radius, c.cfg.StartAngle, rotation)
}

// layout rebuilds the placement cache and keeps the focus cursor in sync with the list identity
func (c *Controller) layout() []effect.Effect {
	elems, listID, effs := c.visibleElements()

	positions, err := c.place(len(elems))
	if err != nil {
		effs = append(effs, c.report("geometry", err)...)
		elems, positions = nil, nil
	}

	placements := make([]Placement, len(positions))
	for i, p := range positions {
		placements[i] = Placement{Element: elems[i], Position: p}
	}
	c.placements = placements
	c.nav.Sync(listID, len(placements))
	return effs
}

// hitTest resolves an anchor-relative point to the closest element within ButtonSize/2
// Ring items win over the anchor when both overlap
func (c *Controller) hitTest(p vmath.Vec2) input.Target {
	hit := c.cfg.ButtonSize / 2
	best := -1
	bestDist := 0.0
	for i, pl := range c.placements {
		d := vmath.Distance(p, pl.Position.Point())
		if d <= hit && (best < 0 || d < bestDist) {
			best, bestDist = i, d
		}
	}
	if best >= 0 {
		return c.placements[best].Target()
	}
	if p.Magnitude() <= hit {
		return input.Target{Kind: input.TargetAnchor, ID: "anchor", Index: -1}
	}
	return input.NoTarget
}

// focusedTarget returns the keyboard cursor's element
func (c *Controller) focusedTarget() (input.Target, bool) {
	i := c.nav.Cursor()
	if i < 0 || i >= len(c.placements) {
		return input.NoTarget, false
	}
	return c.placements[i].Target(), true
}

func (c *Controller) element(t input.Target) (Element, bool) {
	if t.Index >= 0 && t.Index < len(c.placements) {
		if e := c.placements[t.Index].Element; e.Kind == t.Kind && e.ID == t.ID {
			return e, true
		}
	}
	for _, pl := range c.placements {
		if pl.Element.Kind == t.Kind && pl.Element.ID == t.ID {
			return pl.Element, true
		}
	}
	return Element{}, false
}
