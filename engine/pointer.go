package engine

import (
	"fmt"

	"github.com/lixenwraith/orbital/effect"
	"github.com/lixenwraith/orbital/input"
	"github.com/lixenwraith/orbital/vmath"
)

// HandlePointerEvent feeds one anchor-relative pointer sample through the classifier
// Non-finite coordinates are reported once and the sample is ignored
func (c *Controller) HandlePointerEvent(ev input.PointerEvent) []effect.Effect {
	if !c.alive || !c.visible {
		return nil
	}
	ev.At = c.eventTime(ev.At)

	var effs []effect.Effect
	if !ev.Pos.IsFinite() {
		effs = c.report("pointer-coordinates", fmt.Errorf("%w: non-finite pointer position %v", vmath.ErrInvalidGeometry, ev.Pos))
		if ev.Kind != input.PointerUp && ev.Kind != input.PointerCancel {
			return effs
		}
	}

	if ev.Kind == input.PointerCancel {
		effs = append(effs, c.cancelSession("cancelled")...)
		c.syncTimers()
		return effs
	}

	before, wasActive := c.classifier.Session()
	outside := wasActive && ev.Kind == input.PointerUp && ev.Pointer == before.Primary.Pointer &&
		before.Phase == input.PhasePressed && !before.Target.Tappable() && !before.RotateArmed

	frame := input.Frame{Radius: c.disclosure.Radius(), Rotation: c.disclosure.Rotation(), Target: input.NoTarget}
	if ev.Kind == input.PointerDown && !wasActive {
		effs = append(effs, c.layout()...)
		frame.Target = c.hitTest(ev.Pos)
	}

	intents := c.classifier.Process(ev, frame)
	after, isActive := c.classifier.Session()

	if !wasActive && isActive {
		effs = append(effs, effect.NewTrack("gesture_start", map[string]any{
			"session": after.ID.String(),
			"target":  after.Target.Kind.String(),
		}))
	}
	for _, in := range intents {
		effs = append(effs, c.applyIntent(in)...)
	}
	if outside && !isActive {
		effs = append(effs, c.decorate(c.disclosure.Dismiss())...)
	}
	if wasActive && !isActive {
		effs = append(effs, c.gestureEnd(before, intents, "")...)
	}

	c.touch(ev.At)
	c.syncTimers()
	return effs
}

// cancelSession drops the active gesture without classifying it
func (c *Controller) cancelSession(reason string) []effect.Effect {
	s, ok := c.classifier.Session()
	if !ok {
		return nil
	}
	c.classifier.Cancel()
	c.disclosure.SetDragging(false)
	return c.gestureEnd(s, nil, reason)
}

func (c *Controller) gestureEnd(s input.Session, last []input.Intent, cancelled string) []effect.Effect {
	kind := s.Kind
	for _, in := range last {
		kind = in.Kind
	}
	params := map[string]any{
		"session": s.ID.String(),
		"kind":    kind.String(),
	}
	if cancelled != "" {
		params["cancelled"] = cancelled
	}
	return []effect.Effect{effect.NewTrack("gesture_end", params)}
}
