package engine

import (
	"fmt"

	"github.com/lixenwraith/orbital/effect"
	"github.com/lixenwraith/orbital/input"
	"github.com/lixenwraith/orbital/registry"
)

// applyIntent maps one classified intent to effects; keyboard actions share activate, disclose and the fsm mutators
func (c *Controller) applyIntent(in input.Intent) []effect.Effect {
	c.log.Debug().
		Stringer("intent", in.Kind).
		Stringer("target", in.Target.Kind).
		Str("id", in.Target.ID).
		Msg("intent resolved")

	var effs []effect.Effect
	switch in.Kind {
	case input.IntentTap:
		if out := c.activate(in.Target); len(out) > 0 {
			effs = append(c.haptic(effect.IntensityLight), out...)
		}

	case input.IntentDoubleTap:
		if out := c.doubleTap(in.Target); len(out) > 0 {
			effs = append(c.haptic(effect.IntensityMedium), out...)
		}

	case input.IntentLongPress:
		if out := c.disclose(in.Target); len(out) > 0 {
			effs = append(c.haptic(effect.IntensityHeavy), out...)
		}

	case input.IntentRotateDrag:
		switch in.Stage {
		case input.StageBegin:
			c.disclosure.SetDragging(true)
			effs = append(effs, c.haptic(effect.IntensityLight)...)
		case input.StageEnd:
			c.disclosure.SetDragging(false)
			return append(effs, c.feedback("rotate", "offset", c.disclosure.Rotation())...)
		}
		if in.DirectionChanged {
			effs = append(effs, c.haptic(effect.IntensityLight)...)
		}
		effs = append(effs, c.disclosure.RotateBy(in.Delta)...)

	case input.IntentPinchResize:
		switch in.Stage {
		case input.StageBegin:
			c.disclosure.SetDragging(true)
			return c.haptic(effect.IntensityLight)
		case input.StageEnd:
			effs = append(effs, c.disclosure.ResizeTo(in.StartRadius*in.Scale)...)
			c.disclosure.SetDragging(false)
			return append(effs, c.feedback("resize", "radius", c.disclosure.Radius())...)
		}
		effs = append(effs, c.disclosure.ResizeTo(in.StartRadius*in.Scale)...)

	case input.IntentSwipe:
		name, ok := c.swipe.Surface(in.Direction)
		if !ok {
			return nil
		}
		effs = append(c.haptic(effect.IntensityMedium), c.decorate([]effect.Effect{effect.NewOpenSurface(name)})...)
	}
	return effs
}

// activate is tap on a pointer target and Enter on the focused item
func (c *Controller) activate(t input.Target) []effect.Effect {
	state := c.disclosure.State()
	switch t.Kind {
	case input.TargetAnchor:
		return c.decorate(c.disclosure.Dismiss())

	case input.TargetHub:
		hub, ok := registry.Lookup(c.reg, t.ID)
		if !ok {
			return c.report("hub-missing:"+t.ID, fmt.Errorf("%w: %s", registry.ErrHubNotFound, t.ID))
		}
		return c.decorate(c.disclosure.Tap(hub))

	case input.TargetItem:
		if !state.IsExpanded() {
			return nil
		}
		el, ok := c.element(t)
		if !ok {
			return nil
		}
		return c.decorate([]effect.Effect{effect.NewNavigate(state.HubID, el.ID, el.Target)})

	case input.TargetAction:
		if !state.IsExpanded() {
			return nil
		}
		return c.decorate([]effect.Effect{effect.NewQuickAction(state.HubID, t.ID)})
	}
	return nil
}

// disclose is long-press on a pointer target and Space on the focused item
// While expanded, any element other than another hub toggles the expanded hub closed
func (c *Controller) disclose(t input.Target) []effect.Effect {
	hubID := t.ID
	if t.Kind != input.TargetHub {
		state := c.disclosure.State()
		if !state.IsExpanded() || t.Kind == input.TargetNone {
			return nil
		}
		hubID = state.HubID
	}

	if _, ok := registry.Lookup(c.reg, hubID); !ok {
		return c.report("hub-missing:"+hubID, fmt.Errorf("%w: %s", registry.ErrHubNotFound, hubID))
	}

	effs := c.decorate(c.disclosure.LongPress(hubID))
	if c.disclosure.State().IsExpanded() {
		if len(c.reg.SubItems(hubID)) == 0 && len(c.reg.QuickActions(hubID)) == 0 {
			effs = append(effs, c.report("empty-hub:"+hubID, fmt.Errorf("hub %q reports no sub-items or quick actions", hubID))...)
		}
	}
	// Visible list changed identity
	effs = append(effs, c.layout()...)
	return effs
}

func (c *Controller) doubleTap(t input.Target) []effect.Effect {
	if t.Kind != input.TargetHub {
		return nil
	}
	return c.decorate(c.disclosure.DoubleTap(t.ID, c.reg.QuickActions(t.ID)))
}

func (c *Controller) feedback(gesture, key string, value float64) []effect.Effect {
	return []effect.Effect{effect.NewAnnounce(effect.AnnounceGestureFeedback, map[string]any{
		"gesture": gesture,
		key:       value,
	})}
}

// decorate follows each state effect with its announcement and analytics event
func (c *Controller) decorate(effs []effect.Effect) []effect.Effect {
	if len(effs) == 0 {
		return nil
	}
	out := make([]effect.Effect, 0, len(effs)*3)
	for _, e := range effs {
		out = append(out, e)
		switch p := e.Payload.(type) {
		case effect.Navigate:
			out = append(out, effect.NewTrack("navigate", map[string]any{"hub": p.HubID, "item": p.ItemID}))
		case effect.Expand:
			out = append(out,
				effect.NewAnnounce(effect.AnnounceExpanded, map[string]any{
					"hub":   p.HubID,
					"items": len(c.reg.SubItems(p.HubID)) + len(c.reg.QuickActions(p.HubID)),
				}),
				effect.NewTrack("expand", map[string]any{"hub": p.HubID}),
			)
		case effect.Collapse:
			if e.Type == effect.TypeAutoCollapse {
				out = append(out,
					effect.NewAnnounce(effect.AnnounceAutoCollapsed, map[string]any{"hub": p.HubID}),
					effect.NewTrack("auto_collapse", map[string]any{"hub": p.HubID}),
				)
				continue
			}
			out = append(out,
				effect.NewAnnounce(effect.AnnounceCollapsed, map[string]any{"hub": p.HubID, "reason": p.Reason}),
				effect.NewTrack("collapse", map[string]any{"hub": p.HubID, "reason": p.Reason}),
			)
		case effect.QuickAction:
			out = append(out, effect.NewTrack("quick_action", map[string]any{"hub": p.HubID, "action": p.ActionID}))
		case effect.Surface:
			out = append(out, effect.NewTrack("open_surface", map[string]any{"surface": p.Name}))
		}
		if e.Type == effect.TypeCloseSurface {
			out = append(out, effect.NewTrack("close_surface", nil))
		}
	}
	return out
}
