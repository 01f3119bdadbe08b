package audio

import (
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/orbital/effect"
	"github.com/lixenwraith/orbital/logging"
)

// Haptics is the haptics collaborator for terminals: each pulse is a short synthesized click
// Without Initialize clicks are queued on the mixer but never reach a device
type Haptics struct {
	mu          sync.Mutex
	cfg         *Config
	mixer       *beep.Mixer
	initialized bool
	pulses      atomic.Int64
	log         zerolog.Logger
}

// NewHaptics creates a haptics handler; nil cfg selects DefaultConfig
func NewHaptics(cfg *Config) *Haptics {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Haptics{
		cfg:   cfg,
		mixer: &beep.Mixer{},
		log:   logging.New("haptics"),
	}
}

// Initialize opens the speaker and starts playing the mixer
func (h *Haptics) Initialize() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.initialized {
		return nil
	}
	rate := h.cfg.SampleRate
	if err := speaker.Init(rate, rate.N(h.cfg.Pulses[effect.IntensityLight].Duration)); err != nil {
		return err
	}
	speaker.Play(h.mixer)
	h.initialized = true
	return nil
}

// Cleanup silences pending clicks
func (h *Haptics) Cleanup() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.initialized {
		h.mixer.Clear()
		return
	}
	speaker.Lock()
	h.mixer.Clear()
	speaker.Unlock()
	h.initialized = false
}

// Click builds the streamer for intensity, nil when the intensity has no pulse
func (h *Haptics) Click(intensity effect.Intensity) beep.Streamer {
	p, ok := h.cfg.Pulses[intensity]
	if !ok {
		return nil
	}
	rate := h.cfg.SampleRate
	osc := NewOscillator(p.Freq, p.Duration, p.Wave, rate)
	shaped := NewEnvelope(osc, p.Duration, p.Attack, p.Release, rate)
	return newVolume(shaped, p.Volume*h.cfg.MasterVolume)
}

// Pulses returns how many clicks were queued
func (h *Haptics) Pulses() int64 {
	return h.pulses.Load()
}

// Pending returns the number of clicks still on the mixer
func (h *Haptics) Pending() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.initialized {
		speaker.Lock()
		defer speaker.Unlock()
	}
	return h.mixer.Len()
}

// EffectTypes implements effect.Handler
func (h *Haptics) EffectTypes() []effect.Type {
	return []effect.Type{effect.TypeHaptic}
}

// HandleEffect implements effect.Handler
func (h *Haptics) HandleEffect(e effect.Effect) {
	p, ok := e.Payload.(effect.Haptic)
	if !ok {
		return
	}
	click := h.Click(p.Intensity)
	if click == nil {
		h.log.Debug().Stringer("intensity", p.Intensity).Msg("no pulse configured")
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.initialized {
		speaker.Lock()
		h.mixer.Add(click)
		speaker.Unlock()
	} else {
		h.mixer.Add(click)
	}
	h.pulses.Add(1)
}
