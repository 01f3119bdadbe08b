package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/orbital/effect"
)

// Pulse describes the click played for one haptic intensity
type Pulse struct {
	Freq     float64
	Duration time.Duration
	Attack   time.Duration
	Release  time.Duration
	Wave     WaveType
	Volume   float64
}

// Config controls the haptic click synthesis
type Config struct {
	SampleRate   beep.SampleRate
	MasterVolume float64
	Pulses       map[effect.Intensity]Pulse
}

// DefaultConfig returns short clicks that get lower and longer as intensity rises
func DefaultConfig() *Config {
	return &Config{
		SampleRate:   beep.SampleRate(44100),
		MasterVolume: 0.6,
		Pulses: map[effect.Intensity]Pulse{
			effect.IntensityLight: {
				Freq: 1760, Duration: 15 * time.Millisecond,
				Attack: time.Millisecond, Release: 8 * time.Millisecond,
				Wave: WaveSine, Volume: 0.5,
			},
			effect.IntensityMedium: {
				Freq: 880, Duration: 30 * time.Millisecond,
				Attack: 2 * time.Millisecond, Release: 15 * time.Millisecond,
				Wave: WaveSquare, Volume: 0.6,
			},
			effect.IntensityHeavy: {
				Freq: 220, Duration: 60 * time.Millisecond,
				Attack: 3 * time.Millisecond, Release: 30 * time.Millisecond,
				Wave: WaveSaw, Volume: 0.8,
			},
		},
	}
}
