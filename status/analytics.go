package status

import (
	"fmt"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/orbital/effect"
	"github.com/lixenwraith/orbital/logging"
)

// Metric keys written by Analytics
const (
	KeyRotation   = "ring.rotation"
	KeyRadius     = "ring.radius"
	KeyExpanded   = "ring.expanded"
	KeyLastHub    = "ring.last_hub"
	KeyLastAction = "ring.last_action"
	KeyDegraded   = "ring.degraded"

	PrefixTrack   = "track."
	PrefixGesture = "gesture."
	PrefixError   = "error."
)

// Analytics is the analytics and error-sink collaborator
// It consumes Track and ReportError effects and mirrors ring state into gauges
type Analytics struct {
	reg *Registry
	log zerolog.Logger
}

// NewAnalytics creates a sink writing into reg
func NewAnalytics(reg *Registry) *Analytics {
	return &Analytics{reg: reg, log: logging.New("analytics")}
}

// Registry returns the backing metrics registry
func (a *Analytics) Registry() *Registry {
	return a.reg
}

// EffectTypes implements effect.Handler
func (a *Analytics) EffectTypes() []effect.Type {
	return []effect.Type{
		effect.TypeTrack,
		effect.TypeReportError,
		effect.TypeRotateTo,
		effect.TypeResizeTo,
		effect.TypeExpand,
		effect.TypeCollapse,
		effect.TypeAutoCollapse,
	}
}

// HandleEffect implements effect.Handler
func (a *Analytics) HandleEffect(e effect.Effect) {
	switch p := e.Payload.(type) {
	case effect.Track:
		a.reg.Counters.Get(PrefixTrack + p.Event).Add(1)
		if p.Event == "gesture_end" {
			if kind, ok := p.Params["kind"].(string); ok {
				a.reg.Counters.Get(PrefixGesture + kind).Add(1)
			}
		}
		if hub, ok := p.Params["hub"].(string); ok && hub != "" {
			a.reg.Labels.Get(KeyLastHub).Store(hub)
		}
		if action, ok := p.Params["action"].(string); ok {
			a.reg.Labels.Get(KeyLastAction).Store(action)
		}
		a.log.Debug().Str("event", p.Event).Fields(p.Params).Msg("track")

	case effect.Error:
		a.reg.Counters.Get(PrefixError + p.Key).Add(1)
		a.reg.Flags.Get(KeyDegraded).Store(true)
		a.log.Warn().Err(p.Err).Str("key", p.Key).Msg("reported")

	case effect.Rotate:
		a.reg.Gauges.Get(KeyRotation).Set(p.Offset)

	case effect.Resize:
		a.reg.Gauges.Get(KeyRadius).Set(p.Radius)

	case effect.Expand:
		a.reg.Flags.Get(KeyExpanded).Store(true)

	case effect.Collapse:
		a.reg.Flags.Get(KeyExpanded).Store(false)
	}
}

// Lines renders every metric as "key value" in sorted order per kind
func (a *Analytics) Lines() []string {
	out := []string{
		fmt.Sprintf("gestures %d", a.reg.Sum(PrefixGesture)),
		fmt.Sprintf("errors %d", a.reg.Sum(PrefixError)),
	}
	a.reg.Counters.Range("", func(k string, v *atomic.Int64) {
		out = append(out, fmt.Sprintf("%s %d", k, v.Load()))
	})
	a.reg.Gauges.Range("", func(k string, v *AtomicFloat) {
		out = append(out, fmt.Sprintf("%s %.2f", k, v.Get()))
	})
	a.reg.Labels.Range("", func(k string, v *AtomicString) {
		out = append(out, fmt.Sprintf("%s %s", k, v.Load()))
	})
	a.reg.Flags.Range("", func(k string, v *atomic.Bool) {
		out = append(out, fmt.Sprintf("%s %t", k, v.Load()))
	})
	return out
}
