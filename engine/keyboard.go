package engine

import (
	"github.com/lixenwraith/orbital/effect"
	"github.com/lixenwraith/orbital/input"
)

// HandleKeyEvent applies one key press; a no-op while the surface is hidden
// State mutations go through the same paths as pointer intents
func (c *Controller) HandleKeyEvent(ev input.KeyEvent) []effect.Effect {
	if !c.alive || !c.visible {
		return nil
	}
	at := c.eventTime(ev.At)

	entry := c.nav.Resolve(ev)
	if entry.Action == input.ActionNone {
		return nil
	}
	effs := c.layout()

	switch entry.Action {
	case input.ActionFocusNext:
		if _, ok := c.nav.Next(); ok {
			effs = append(effs, c.announceFocus())
		}
	case input.ActionFocusPrev:
		if _, ok := c.nav.Prev(); ok {
			effs = append(effs, c.announceFocus())
		}
	case input.ActionFocusFirst:
		if c.nav.Jump(0) {
			effs = append(effs, c.announceFocus())
		}
	case input.ActionFocusLast:
		if c.nav.Jump(c.nav.Count() - 1) {
			effs = append(effs, c.announceFocus())
		}

	case input.ActionActivate:
		if t, ok := c.focusedTarget(); ok {
			effs = append(effs, c.activate(t)...)
		}
	case input.ActionDisclose:
		if t, ok := c.focusedTarget(); ok {
			effs = append(effs, c.disclose(t)...)
		}
	case input.ActionJump:
		if c.nav.Jump(entry.Index) {
			effs = append(effs, c.announceFocus())
			if t, ok := c.focusedTarget(); ok {
				effs = append(effs, c.activate(t)...)
			}
		}
	case input.ActionEscape:
		effs = append(effs, c.decorate(c.disclosure.Escape())...)

	case input.ActionRotateCW:
		effs = append(effs, c.disclosure.RotateBy(c.cfg.RotationStep)...)
	case input.ActionRotateCCW:
		effs = append(effs, c.disclosure.RotateBy(-c.cfg.RotationStep)...)
	case input.ActionZoomIn:
		effs = append(effs, c.disclosure.ResizeBy(c.cfg.RadiusStep)...)
	case input.ActionZoomOut:
		effs = append(effs, c.disclosure.ResizeBy(-c.cfg.RadiusStep)...)
	case input.ActionZoomInLarge:
		effs = append(effs, c.disclosure.ResizeBy(c.cfg.RadiusStepLarge)...)
	case input.ActionZoomOutLarge:
		effs = append(effs, c.disclosure.ResizeBy(-c.cfg.RadiusStepLarge)...)
	}

	c.touch(at)
	c.syncTimers()
	return effs
}

func (c *Controller) announceFocus() effect.Effect {
	i := c.nav.Cursor()
	el := c.placements[i].Element
	return effect.NewAnnounce(effect.AnnounceFocusChanged, map[string]any{
		"index": i,
		"count": c.nav.Count(),
		"id":    el.ID,
		"label": el.Label,
		"kind":  el.Kind.String(),
	})
}
