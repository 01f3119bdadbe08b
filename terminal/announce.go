package terminal

import (
	"fmt"

	"github.com/lixenwraith/orbital/effect"
)

// Announcer is the announcement collaborator: it composes status-line prose from structured events
type Announcer struct {
	last string
}

// Compose renders an announcement as one line of text
func (a *Announcer) Compose(ann effect.Announce) string {
	p := ann.Params
	switch ann.Kind {
	case effect.AnnounceFocusChanged:
		return fmt.Sprintf("%v, %v of %v", p["label"], toInt(p["index"])+1, p["count"])
	case effect.AnnounceExpanded:
		return fmt.Sprintf("%v expanded, %v items", p["hub"], p["items"])
	case effect.AnnounceCollapsed:
		return fmt.Sprintf("%v collapsed", p["hub"])
	case effect.AnnounceAutoCollapsed:
		return fmt.Sprintf("%v collapsed after inactivity", p["hub"])
	case effect.AnnounceGestureFeedback:
		switch p["gesture"] {
		case "rotate":
			return fmt.Sprintf("rotated to %.0f degrees", p["offset"])
		case "resize":
			return fmt.Sprintf("radius %.0f", p["radius"])
		}
	}
	return ann.Kind.String()
}

// Last returns the most recent announcement
func (a *Announcer) Last() string {
	return a.last
}

// EffectTypes implements effect.Handler
func (a *Announcer) EffectTypes() []effect.Type {
	return []effect.Type{effect.TypeAnnounce}
}

// HandleEffect implements effect.Handler
func (a *Announcer) HandleEffect(e effect.Effect) {
	if ann, ok := e.Payload.(effect.Announce); ok {
		a.last = a.Compose(ann)
	}
}

func toInt(v any) int {
	if i, ok := v.(int); ok {
		return i
	}
	return 0
}
