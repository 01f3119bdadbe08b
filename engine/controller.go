package engine

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/orbital/config"
	"github.com/lixenwraith/orbital/constant"
	"github.com/lixenwraith/orbital/effect"
	"github.com/lixenwraith/orbital/engine/fsm"
	"github.com/lixenwraith/orbital/input"
	"github.com/lixenwraith/orbital/logging"
	"github.com/lixenwraith/orbital/registry"
)

// Controller owns every piece of interaction state for one menu surface
// Handlers return effects for collaborators and never perform side effects themselves
// Not safe for concurrent use; the host serializes input events and Tick
type Controller struct {
	cfg   config.Config
	reg   registry.Registry
	clock Clock
	log   zerolog.Logger

	classifier *input.Classifier
	disclosure *fsm.Disclosure
	nav        *input.Navigator
	timers     *Scheduler
	swipe      input.SwipePolicy

	placements []Placement
	reported   map[string]struct{}

	visible bool
	alive   bool
}

// NewController validates cfg and builds a controller in Collapsed with rotation 0
func NewController(cfg config.Config, reg registry.Registry, opts ...Option) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if reg == nil {
		return nil, fmt.Errorf("%w: nil hub registry", config.ErrInvalidConfig)
	}

	c := &Controller{
		cfg:        cfg,
		reg:        reg,
		clock:      NewTimeProvider(),
		log:        logging.New("engine"),
		classifier: input.NewClassifier(thresholds(cfg)),
		disclosure: fsm.NewDisclosure(cfg.Radius, fsm.Bounds{MinRadius: cfg.MinRadius, MaxRadius: cfg.MaxRadius}),
		nav:        input.NewNavigator(nil),
		timers:     NewScheduler(),
		swipe:      swipePolicy(cfg.Swipe),
		reported:   make(map[string]struct{}),
		visible:    true,
		alive:      true,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func thresholds(cfg config.Config) input.Thresholds {
	return input.Thresholds{
		LongPress:       cfg.LongPressDuration,
		DoubleTapWindow: cfg.DoubleTapWindow,
		DragThreshold:   cfg.DragThreshold,
		JitterTolerance: cfg.JitterTolerance,
		AnnulusInner:    cfg.AnnulusInner,
		AnnulusOuter:    cfg.AnnulusOuter,
		Swipe:           cfg.Variant == constant.VariantCarousel,
	}
}

func swipePolicy(s config.SwipeConfig) input.SwipePolicy {
	p := input.SwipePolicy{}
	for dir, name := range map[input.Direction]string{
		input.DirectionRight: s.Right,
		input.DirectionDown:  s.Down,
		input.DirectionLeft:  s.Left,
		input.DirectionUp:    s.Up,
	} {
		if name != "" {
			p[dir] = name
		}
	}
	return p
}

// ComputeLayout returns placements for the currently visible items at the current radius and rotation
// The registry is queried fresh; a geometry failure yields an empty layout plus a reported error
func (c *Controller) ComputeLayout() ([]Placement, []effect.Effect) {
	if !c.alive {
		return nil, nil
	}
	effs := c.layout()
	out := make([]Placement, len(c.placements))
	copy(out, c.placements)
	return out, effs
}

// Open makes the surface visible
func (c *Controller) Open() []effect.Effect {
	if !c.alive || c.visible {
		return nil
	}
	c.visible = true
	return nil
}

// Close hides the surface, discarding any gesture and collapsing an expanded hub
func (c *Controller) Close() []effect.Effect {
	if !c.alive || !c.visible {
		return nil
	}
	effs := c.cancelSession("surface-closed")
	effs = append(effs, c.decorate(c.disclosure.ForceCollapse(effect.ReasonSurfaceGone))...)
	c.visible = false
	c.timers.Clear()
	return effs
}

// Visible reports whether the surface is shown
func (c *Controller) Visible() bool {
	return c.visible
}

// Dispose ends the controller's life: the session is dropped and every timer cancelled
// Later calls, including Tick, are no-ops
func (c *Controller) Dispose() {
	if !c.alive {
		return
	}
	c.alive = false
	c.classifier.Cancel()
	c.timers.Clear()
	c.disclosure.Reset(c.cfg.Radius)
	c.placements = nil
	c.log.Debug().Msg("controller disposed")
}

// Reconfigure applies a new config in place: thresholds, radius bounds, layout and swipe policy
// Disclosure state and rotation survive; an in-flight press keeps the long-press deadline it was armed with
func (c *Controller) Reconfigure(cfg config.Config) ([]effect.Effect, error) {
	if !c.alive {
		return nil, nil
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c.cfg = cfg
	c.classifier.SetThresholds(thresholds(cfg))
	c.swipe = swipePolicy(cfg.Swipe)

	effs := c.disclosure.SetBounds(fsm.Bounds{MinRadius: cfg.MinRadius, MaxRadius: cfg.MaxRadius})
	effs = append(effs, c.layout()...)
	c.syncTimers()
	c.log.Debug().Str("variant", cfg.Variant).Str("layout", cfg.Layout).Msg("controller reconfigured")
	return effs, nil
}

// PendingTimers returns the number of armed timers
func (c *Controller) PendingTimers() int {
	return c.timers.Pending()
}

// NextDeadline returns when the host should call Tick next
func (c *Controller) NextDeadline() (time.Time, bool) {
	if !c.alive {
		return time.Time{}, false
	}
	return c.timers.Next()
}

// Tick fires due timers; a Tick after Dispose is a no-op
func (c *Controller) Tick(now time.Time) []effect.Effect {
	if !c.alive {
		return nil
	}
	var effs []effect.Effect
	for {
		kind, ok := c.timers.Pop(now)
		if !ok {
			break
		}
		c.log.Debug().Stringer("timer", kind).Msg("timer fired")
		switch kind {
		case TimerLongPress:
			for _, in := range c.classifier.Expire(now) {
				effs = append(effs, c.applyIntent(in)...)
			}
			c.touch(now)
		case TimerInactivity:
			effs = append(effs, c.decorate(c.disclosure.AutoCollapse())...)
		}
	}
	c.syncTimers()
	return effs
}

// touch records an interaction at t, restarting the inactivity countdown while expanded
func (c *Controller) touch(t time.Time) {
	if c.disclosure.State().IsExpanded() {
		c.timers.Schedule(TimerInactivity, t.Add(c.cfg.InactivityTimeout))
	}
}

// syncTimers disarms timers whose owning state has ended
func (c *Controller) syncTimers() {
	if deadline, ok := c.classifier.LongPressDeadline(); ok {
		c.timers.Schedule(TimerLongPress, deadline)
	} else {
		c.timers.Cancel(TimerLongPress)
	}
	if !c.disclosure.State().IsExpanded() {
		c.timers.Cancel(TimerInactivity)
	}
}

func (c *Controller) eventTime(at time.Time) time.Time {
	if at.IsZero() {
		return c.clock.Now()
	}
	return at
}

// report emits a ReportError effect the first time key is seen
func (c *Controller) report(key string, err error) []effect.Effect {
	if _, seen := c.reported[key]; seen {
		return nil
	}
	c.reported[key] = struct{}{}
	c.log.Warn().Err(err).Str("key", key).Msg("configuration error")
	return []effect.Effect{effect.NewError(key, err)}
}

func (c *Controller) haptic(intensity effect.Intensity) []effect.Effect {
	if !c.cfg.HapticEnabled {
		return nil
	}
	return []effect.Effect{effect.NewHaptic(intensity)}
}
