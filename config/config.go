package config

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"github.com/lixenwraith/orbital/constant"
)

// ErrInvalidConfig wraps every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Config is the option surface consumed by the interaction engine
type Config struct {
	Radius            float64       `mapstructure:"radius"`
	ButtonSize        float64       `mapstructure:"button_size"`
	MinRadius         float64       `mapstructure:"min_radius"`
	MaxRadius         float64       `mapstructure:"max_radius"`
	StartAngle        float64       `mapstructure:"start_angle"`
	Layout            string        `mapstructure:"layout"`
	ArcRange          float64       `mapstructure:"arc_range"`
	Variant           string        `mapstructure:"variant"`
	LongPressDuration time.Duration `mapstructure:"long_press_duration"`
	DoubleTapWindow   time.Duration `mapstructure:"double_tap_window"`
	InactivityTimeout time.Duration `mapstructure:"inactivity_timeout"`
	DragThreshold     float64       `mapstructure:"drag_threshold"`
	JitterTolerance   float64       `mapstructure:"jitter_tolerance"`
	AnnulusInner      float64       `mapstructure:"annulus_inner"`
	AnnulusOuter      float64       `mapstructure:"annulus_outer"`
	RotationStep      float64       `mapstructure:"rotation_step"`
	RadiusStep        float64       `mapstructure:"radius_step"`
	RadiusStepLarge   float64       `mapstructure:"radius_step_large"`
	HapticEnabled     bool          `mapstructure:"haptic_enabled"`
	Swipe             SwipeConfig   `mapstructure:"swipe"`
	Rollout           Rollout       `mapstructure:"rollout"`
}

// SwipeConfig maps carousel swipe directions to secondary surfaces
// An empty value leaves the direction unmapped
type SwipeConfig struct {
	Right string `mapstructure:"right"`
	Down  string `mapstructure:"down"`
	Left  string `mapstructure:"left"`
	Up    string `mapstructure:"up"`
}

// Default returns the stated defaults
func Default() Config {
	return Config{
		Radius:            constant.DefaultRadius,
		ButtonSize:        constant.DefaultButtonSize,
		MinRadius:         constant.MinRadius,
		MaxRadius:         constant.MaxRadius,
		StartAngle:        constant.DefaultStartAngle,
		Layout:            constant.LayoutCircle,
		ArcRange:          constant.CornerArcRange,
		Variant:           constant.VariantOrbital,
		LongPressDuration: constant.LongPressDuration,
		DoubleTapWindow:   constant.DoubleTapWindow,
		InactivityTimeout: constant.InactivityTimeout,
		DragThreshold:     constant.DragThreshold,
		JitterTolerance:   constant.JitterTolerance,
		AnnulusInner:      constant.AnnulusInner,
		AnnulusOuter:      constant.AnnulusOuter,
		RotationStep:      constant.RotationStep,
		RadiusStep:        constant.RadiusStep,
		RadiusStepLarge:   constant.RadiusStepLarge,
		HapticEnabled:     true,
		Swipe: SwipeConfig{
			Right: constant.SurfaceMenu,
			Up:    constant.SurfaceFavorites,
			Left:  constant.SurfaceSearch,
		},
	}
}

// Load reads configuration from an optional TOML file and ORBITAL_* env overrides
// An empty path skips the file; a missing explicit path is an error
func Load(path string) (Config, error) {
	v, err := newViper(path)
	if err != nil {
		return Config{}, err
	}
	return decode(v)
}

// Watch reloads path whenever it changes on disk
// Valid configs go to onChange, rejected edits to onError; the previous config stays in force
func Watch(path string, onChange func(Config), onError func(error)) error {
	if path == "" {
		return fmt.Errorf("%w: watch needs a config file", ErrInvalidConfig)
	}
	v, err := newViper(path)
	if err != nil {
		return err
	}
	v.OnConfigChange(func(ev fsnotify.Event) {
		c, err := decode(v)
		if err != nil {
			onError(fmt.Errorf("reload %s: %w", ev.Name, err))
			return
		}
		onChange(c)
	})
	v.WatchConfig()
	return nil
}

func newViper(path string) (*viper.Viper, error) {
	v := viper.New()
	setDefaults(v, Default())

	v.SetConfigType("toml")
	v.SetEnvPrefix(constant.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config load failed (%s): %w", path, err)
		}
	}
	return v, nil
}

func decode(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("radius", d.Radius)
	v.SetDefault("button_size", d.ButtonSize)
	v.SetDefault("min_radius", d.MinRadius)
	v.SetDefault("max_radius", d.MaxRadius)
	v.SetDefault("start_angle", d.StartAngle)
	v.SetDefault("layout", d.Layout)
	v.SetDefault("arc_range", d.ArcRange)
	v.SetDefault("variant", d.Variant)
	v.SetDefault("long_press_duration", d.LongPressDuration)
	v.SetDefault("double_tap_window", d.DoubleTapWindow)
	v.SetDefault("inactivity_timeout", d.InactivityTimeout)
	v.SetDefault("drag_threshold", d.DragThreshold)
	v.SetDefault("jitter_tolerance", d.JitterTolerance)
	v.SetDefault("annulus_inner", d.AnnulusInner)
	v.SetDefault("annulus_outer", d.AnnulusOuter)
	v.SetDefault("rotation_step", d.RotationStep)
	v.SetDefault("radius_step", d.RadiusStep)
	v.SetDefault("radius_step_large", d.RadiusStepLarge)
	v.SetDefault("haptic_enabled", d.HapticEnabled)
	v.SetDefault("swipe.right", d.Swipe.Right)
	v.SetDefault("swipe.down", d.Swipe.Down)
	v.SetDefault("swipe.left", d.Swipe.Left)
	v.SetDefault("swipe.up", d.Swipe.Up)
	v.SetDefault("rollout.percent", d.Rollout.Percent)
}

// Validate rejects values that indicate a caller bug
func (c Config) Validate() error {
	var problems []string
	positive := func(name string, v float64) {
		if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			problems = append(problems, fmt.Sprintf("%s must be positive, got %v", name, v))
		}
	}
	positive("radius", c.Radius)
	positive("button_size", c.ButtonSize)
	positive("min_radius", c.MinRadius)
	positive("max_radius", c.MaxRadius)
	positive("drag_threshold", c.DragThreshold)
	positive("rotation_step", c.RotationStep)
	positive("radius_step", c.RadiusStep)
	positive("radius_step_large", c.RadiusStepLarge)

	if c.JitterTolerance < 0 || math.IsNaN(c.JitterTolerance) {
		problems = append(problems, fmt.Sprintf("jitter_tolerance must not be negative, got %v", c.JitterTolerance))
	}
	if c.JitterTolerance > c.DragThreshold {
		problems = append(problems, "jitter_tolerance must not exceed drag_threshold")
	}
	if c.MinRadius > c.MaxRadius {
		problems = append(problems, fmt.Sprintf("min_radius %v exceeds max_radius %v", c.MinRadius, c.MaxRadius))
	}
	if c.AnnulusInner < 0 || c.AnnulusInner >= c.AnnulusOuter {
		problems = append(problems, "annulus_inner must be in [0, annulus_outer)")
	}
	if math.IsNaN(c.StartAngle) || math.IsInf(c.StartAngle, 0) {
		problems = append(problems, "start_angle must be finite")
	}
	if c.LongPressDuration <= 0 || c.DoubleTapWindow <= 0 || c.InactivityTimeout <= 0 {
		problems = append(problems, "durations must be positive")
	}
	switch c.Layout {
	case constant.LayoutCircle:
	case constant.LayoutArc:
		if c.ArcRange <= 0 || c.ArcRange > 360 {
			problems = append(problems, fmt.Sprintf("arc_range must be in (0, 360], got %v", c.ArcRange))
		}
	default:
		problems = append(problems, fmt.Sprintf("unknown layout %q", c.Layout))
	}
	switch c.Variant {
	case constant.VariantOrbital, constant.VariantCarousel:
	default:
		problems = append(problems, fmt.Sprintf("unknown variant %q", c.Variant))
	}
	if c.Rollout.Percent < 0 || c.Rollout.Percent > 100 {
		problems = append(problems, fmt.Sprintf("rollout.percent must be in [0, 100], got %v", c.Rollout.Percent))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}
