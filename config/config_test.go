package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/orbital/constant"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Default(), c)
}

func TestLoadFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orbital.toml")
	body := `
radius = 100.0
long_press_duration = "650ms"
variant = "carousel"

[swipe]
down = "notifications"
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	t.Setenv("ORBITAL_MAX_RADIUS", "150")

	c, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 100.0, c.Radius)
	require.Equal(t, 650*time.Millisecond, c.LongPressDuration)
	require.Equal(t, constant.VariantCarousel, c.Variant)
	require.Equal(t, 150.0, c.MaxRadius)
	require.Equal(t, "notifications", c.Swipe.Down)
	require.Equal(t, constant.SurfaceMenu, c.Swipe.Right)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}

func TestValidateRejects(t *testing.T) {
	cases := map[string]func(*Config){
		"zero radius":      func(c *Config) { c.Radius = 0 },
		"negative radius":  func(c *Config) { c.Radius = -5 },
		"min above max":    func(c *Config) { c.MinRadius = 200 },
		"bad layout":       func(c *Config) { c.Layout = "spiral" },
		"bad arc":          func(c *Config) { c.Layout = constant.LayoutArc; c.ArcRange = 0 },
		"bad variant":      func(c *Config) { c.Variant = "legacy" },
		"zero long press":  func(c *Config) { c.LongPressDuration = 0 },
		"jitter over drag": func(c *Config) { c.JitterTolerance = 50 },
		"annulus inverted": func(c *Config) { c.AnnulusInner = 2 },
		"rollout range":    func(c *Config) { c.Rollout.Percent = 101 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			c := Default()
			mutate(&c)
			require.ErrorIs(t, c.Validate(), ErrInvalidConfig)
		})
	}
}

func TestWatchReloadsAndRejects(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orbital.toml")
	require.NoError(t, os.WriteFile(path, []byte("radius = 80.0\n"), 0o644))

	changes := make(chan Config, 16)
	failures := make(chan error, 16)
	require.NoError(t, Watch(path, func(c Config) { changes <- c }, func(err error) { failures <- err }))

	require.NoError(t, os.WriteFile(path, []byte("radius = 100.0\n"), 0o644))
	deadline := time.After(5 * time.Second)
	for reloaded := false; !reloaded; {
		select {
		case c := <-changes:
			// a single write can surface as several events, the truncated file among them
			reloaded = c.Radius == 100
		case err := <-failures:
			t.Fatalf("valid edit rejected: %v", err)
		case <-deadline:
			t.Fatal("no reload after edit")
		}
	}

	require.NoError(t, os.WriteFile(path, []byte("radius = -1.0\n"), 0o644))
	for {
		select {
		case c := <-changes:
			require.NotEqual(t, -1.0, c.Radius)
			continue
		case err := <-failures:
			require.ErrorIs(t, err, ErrInvalidConfig)
		case <-time.After(5 * time.Second):
			t.Fatal("invalid edit not reported")
		}
		break
	}
}

func TestWatchNeedsPath(t *testing.T) {
	require.ErrorIs(t, Watch("", func(Config) {}, func(error) {}), ErrInvalidConfig)
}

func TestRolloutChoose(t *testing.T) {
	require.Equal(t, constant.VariantOrbital, Rollout{Percent: 0}.Choose("user-1"))
	require.Equal(t, constant.VariantCarousel, Rollout{Percent: 100}.Choose("user-1"))

	b := Bucket("user-42")
	require.GreaterOrEqual(t, b, 0.0)
	require.Less(t, b, 100.0)
	require.Equal(t, b, Bucket("user-42"))

	c := Default()
	c.Rollout.Percent = 100
	require.Equal(t, constant.VariantCarousel, c.ForSubject("anyone").Variant)
	require.Equal(t, constant.VariantOrbital, c.Variant)
}
