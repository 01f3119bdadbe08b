package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/orbital/effect"
)

// drain counts samples until the streamer ends
func drain(s beep.Streamer) (int, float64) {
	buf := make([][2]float64, 256)
	total := 0
	peak := 0.0
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			if v := buf[i][0]; v > peak {
				peak = v
			} else if -v > peak {
				peak = -v
			}
		}
		total += n
		if !ok || n == 0 {
			return total, peak
		}
	}
}

func TestClickLengthPerIntensity(t *testing.T) {
	h := NewHaptics(nil)
	rate := h.cfg.SampleRate
	for _, in := range []effect.Intensity{effect.IntensityLight, effect.IntensityMedium, effect.IntensityHeavy} {
		click := h.Click(in)
		if click == nil {
			t.Fatalf("%v: missing click", in)
		}
		n, peak := drain(click)
		want := rate.N(h.cfg.Pulses[in].Duration)
		if n != want {
			t.Errorf("%v: %d samples, want %d", in, n, want)
		}
		if peak <= 0 || peak > 1 {
			t.Errorf("%v: peak %v out of range", in, peak)
		}
	}
}

func TestHeavierClicksLastLonger(t *testing.T) {
	h := NewHaptics(nil)
	light, _ := drain(h.Click(effect.IntensityLight))
	heavy, _ := drain(h.Click(effect.IntensityHeavy))
	if heavy <= light {
		t.Errorf("heavy (%d) should outlast light (%d)", heavy, light)
	}
}

func TestZeroVolumeIsSilent(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MasterVolume = 0
	h := NewHaptics(cfg)
	_, peak := drain(h.Click(effect.IntensityHeavy))
	if peak != 0 {
		t.Errorf("expected silence, peak %v", peak)
	}
}

func TestHandleEffectQueuesWithoutSpeaker(t *testing.T) {
	h := NewHaptics(nil)
	router := effect.NewRouter()
	router.Register(h)
	router.Dispatch([]effect.Effect{
		effect.NewHaptic(effect.IntensityLight),
		effect.NewHaptic(effect.IntensityHeavy),
		effect.NewTrack("gesture_end", nil),
	})
	if h.Pulses() != 2 || h.Pending() != 2 {
		t.Errorf("pulses=%d pending=%d, want 2/2", h.Pulses(), h.Pending())
	}
	h.Cleanup()
	if h.Pending() != 0 {
		t.Errorf("cleanup should clear the mixer")
	}
}

func TestUnknownIntensityIgnored(t *testing.T) {
	h := NewHaptics(nil)
	h.HandleEffect(effect.NewHaptic(effect.Intensity(0)))
	if h.Pulses() != 0 {
		t.Errorf("unknown intensity should not pulse")
	}
}

func TestEnvelopeRamps(t *testing.T) {
	rate := beep.SampleRate(1000)
	s := NewEnvelope(NewOscillator(250, 20*time.Millisecond, WaveSquare, rate), 20*time.Millisecond, 5*time.Millisecond, 5*time.Millisecond, rate)
	buf := make([][2]float64, 20)
	n, _ := s.Stream(buf)
	if n != 20 {
		t.Fatalf("expected 20 samples, got %d", n)
	}
	if buf[0][0] != 0 {
		t.Errorf("attack should start silent, got %v", buf[0][0])
	}
	if buf[10][0] != 1 && buf[10][0] != -1 {
		t.Errorf("sustain should be full scale, got %v", buf[10][0])
	}
}
