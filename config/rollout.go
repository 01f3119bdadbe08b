package config

import (
	"hash/fnv"

	"github.com/lixenwraith/orbital/constant"
)

// Rollout selects between the orbital and carousel engine configurations per subject
// Selection happens in the host before constructing the engine; the engine never reads it
type Rollout struct {
	Percent float64 `mapstructure:"percent"`
}

// Bucket maps a subject id to a stable value in [0, 100)
func Bucket(subject string) float64 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(subject))
	return float64(h.Sum32()%10000) / 100
}

// Choose returns the variant for a subject: carousel when its bucket falls under Percent
func (r Rollout) Choose(subject string) string {
	if Bucket(subject) < r.Percent {
		return constant.VariantCarousel
	}
	return constant.VariantOrbital
}

// ForSubject returns a copy of c with Variant chosen by the rollout bucket
func (c Config) ForSubject(subject string) Config {
	out := c
	out.Variant = c.Rollout.Choose(subject)
	return out
}
