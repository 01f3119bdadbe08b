package terminal

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/orbital/config"
	"github.com/lixenwraith/orbital/effect"
	"github.com/lixenwraith/orbital/engine"
	"github.com/lixenwraith/orbital/input"
	"github.com/lixenwraith/orbital/logging"
)

// Surface is the part of the interaction controller the host drives
type Surface interface {
	HandlePointerEvent(ev input.PointerEvent) []effect.Effect
	HandleKeyEvent(ev input.KeyEvent) []effect.Effect
	Tick(now time.Time) []effect.Effect
	NextDeadline() (time.Time, bool)
	ComputeLayout() ([]engine.Placement, []effect.Effect)
	Snapshot() engine.Snapshot
	Open() []effect.Effect
	Close() []effect.Effect
	Visible() bool
	Reconfigure(cfg config.Config) ([]effect.Effect, error)
}

// Host owns the tcell screen and applies navigation, surface and announcement effects
type Host struct {
	screen    tcell.Screen
	surface   Surface
	router    *effect.Router
	announcer *Announcer
	mouse     MouseTracker
	viewport  Viewport
	log       zerolog.Logger

	message      string
	closePending bool

	// posted runs work from other goroutines on the event loop
	posted chan func()
}

// NewHost wires the host and its announcer into router
func NewHost(screen tcell.Screen, surface Surface, router *effect.Router) *Host {
	w, h := screen.Size()
	host := &Host{
		screen:    screen,
		surface:   surface,
		router:    router,
		announcer: &Announcer{},
		viewport:  NewViewport(w, h),
		log:       logging.New("terminal"),
		posted:    make(chan func(), 8),
	}
	router.Register(host)
	router.Register(host.announcer)
	return host
}

// Announcer returns the status-line announcer
func (h *Host) Announcer() *Announcer {
	return h.announcer
}

// Message returns the last navigation or surface message
func (h *Host) Message() string {
	return h.message
}

// EffectTypes implements effect.Handler
func (h *Host) EffectTypes() []effect.Type {
	return []effect.Type{
		effect.TypeNavigate,
		effect.TypeExecuteQuickAction,
		effect.TypeOpenSurface,
		effect.TypeCloseSurface,
	}
}

// HandleEffect implements effect.Handler
func (h *Host) HandleEffect(e effect.Effect) {
	switch p := e.Payload.(type) {
	case effect.Navigate:
		h.message = "navigate " + p.Target
	case effect.QuickAction:
		h.message = fmt.Sprintf("action %s/%s", p.HubID, p.ActionID)
	case effect.Surface:
		h.message = "open " + p.Name
	}
	if e.Type == effect.TypeCloseSurface {
		h.closePending = true
	}
}

// Reload queues cfg for the event loop; safe to call from a config watcher goroutine
// A full queue drops the update, the next file change delivers a fresh one
func (h *Host) Reload(cfg config.Config) {
	fn := func() {
		effs, err := h.surface.Reconfigure(cfg)
		if err != nil {
			h.message = "config rejected: " + err.Error()
			h.log.Warn().Err(err).Msg("config reload rejected")
			return
		}
		h.dispatch(effs)
		h.message = "config reloaded"
	}
	select {
	case h.posted <- fn:
	default:
		h.log.Warn().Msg("config reload dropped, event loop busy")
	}
}

// Run drives the event loop until ctx is cancelled or the user quits
func (h *Host) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	Go(func() { pollEvents(ctx, h.screen, events) })

	timer := time.NewTimer(time.Hour)
	defer timer.Stop()

	for {
		h.Draw()
		h.arm(timer)

		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if h.HandleEvent(ev) {
				return nil
			}
		case now := <-timer.C:
			h.dispatch(h.surface.Tick(now))
		case fn := <-h.posted:
			fn()
		}
	}
}

// pollEvents forwards screen events until the screen finalizes or ctx ends
func pollEvents(ctx context.Context, screen tcell.Screen, events chan<- tcell.Event) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			close(events)
			return
		}
		select {
		case events <- ev:
		case <-ctx.Done():
			return
		}
	}
}

func (h *Host) arm(timer *time.Timer) {
	wait := time.Hour
	if next, ok := h.surface.NextDeadline(); ok {
		wait = max(time.Until(next), 0)
	}
	timer.Reset(wait)
}

// HandleEvent processes one tcell event; returns true when the user asked to quit
func (h *Host) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		h.screen.Sync()
		h.viewport = NewViewport(h.screen.Size())

	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			return true
		}
		if !h.surface.Visible() {
			if ev.Key() == tcell.KeyEnter || (ev.Key() == tcell.KeyRune && ev.Rune() == 'o') {
				h.dispatch(h.surface.Open())
				h.message = "opened"
			}
			return false
		}
		if ke, ok := TranslateKey(ev); ok {
			h.dispatch(h.surface.HandleKeyEvent(ke))
		}

	case *tcell.EventMouse:
		if ke, ok := Wheel(ev); ok {
			h.dispatch(h.surface.HandleKeyEvent(ke))
			return false
		}
		if pe, ok := h.mouse.Translate(ev, h.viewport); ok {
			h.dispatch(h.surface.HandlePointerEvent(pe))
		}
	}
	return false
}

func (h *Host) dispatch(effs []effect.Effect) {
	if len(effs) == 0 {
		return
	}
	h.router.Dispatch(effs)
	if h.closePending {
		h.closePending = false
		h.router.Dispatch(h.surface.Close())
		h.message = "closed, press o to open"
		h.log.Debug().Msg("surface closed")
	}
}
