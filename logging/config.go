package logging

import (
	"io"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

const (
	EnvLogLevel     = "ORBITAL_LOG_LEVEL"
	EnvLogTimestamp = "ORBITAL_LOG_TIMESTAMP"
	EnvLogNoColor   = "ORBITAL_LOG_NOCOLOR"
)

type Profile int

const (
	ProfileRuntime Profile = iota
	ProfileTest
)

// Config is the resolved logging setup
type Config struct {
	Level     zerolog.Level
	Timestamp bool
	NoColor   bool
	Writer    io.Writer
}

var (
	configureOnce sync.Once
	base          = zerolog.New(io.Discard)
	baseMu        sync.RWMutex
)

func ConfigureRuntime(w io.Writer) {
	Configure(ProfileRuntime, w)
}

func ConfigureTests() {
	Configure(ProfileTest, os.Stderr)
}

// Configure installs the process logger once; later calls are ignored
func Configure(profile Profile, w io.Writer) {
	configureOnce.Do(func() {
		cfg := defaultConfig(profile)
		if w != nil {
			cfg.Writer = w
		}
		applyEnvOverrides(&cfg)
		install(cfg)
	})
}

// New returns a logger tagged with the component name
// Before Configure it discards output
func New(component string) zerolog.Logger {
	baseMu.RLock()
	defer baseMu.RUnlock()
	return base.With().Str("component", component).Logger()
}

func install(cfg Config) {
	out := zerolog.ConsoleWriter{Out: cfg.Writer, NoColor: cfg.NoColor}
	if !cfg.Timestamp {
		out.PartsExclude = []string{zerolog.TimestampFieldName}
	}
	ctx := zerolog.New(out).Level(cfg.Level).With()
	if cfg.Timestamp {
		ctx = ctx.Timestamp()
	}

	baseMu.Lock()
	base = ctx.Logger()
	baseMu.Unlock()
}

func defaultConfig(profile Profile) Config {
	cfg := Config{Writer: os.Stderr}
	switch profile {
	case ProfileTest:
		cfg.Level = zerolog.DebugLevel
		cfg.Timestamp = false
		cfg.NoColor = true
	default:
		cfg.Level = zerolog.InfoLevel
		cfg.Timestamp = true
	}
	return cfg
}

func applyEnvOverrides(cfg *Config) {
	if lvl, ok := parseLevel(os.Getenv(EnvLogLevel)); ok {
		cfg.Level = lvl
	}
	if v, ok := parseBool(os.Getenv(EnvLogTimestamp)); ok {
		cfg.Timestamp = v
	}
	if v, ok := parseBool(os.Getenv(EnvLogNoColor)); ok {
		cfg.NoColor = v
	}
}

func parseLevel(raw string) (zerolog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return zerolog.InfoLevel, false
	case "trace":
		return zerolog.TraceLevel, true
	case "debug":
		return zerolog.DebugLevel, true
	case "info":
		return zerolog.InfoLevel, true
	case "warn", "warning":
		return zerolog.WarnLevel, true
	case "error":
		return zerolog.ErrorLevel, true
	case "disabled", "disable", "off", "none":
		return zerolog.Disabled, true
	default:
		return zerolog.InfoLevel, false
	}
}

func parseBool(raw string) (bool, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false, false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return v, true
}
