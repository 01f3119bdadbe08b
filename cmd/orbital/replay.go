package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/orbital/effect"
	"github.com/lixenwraith/orbital/engine"
	"github.com/lixenwraith/orbital/input"
	"github.com/lixenwraith/orbital/logging"
	"github.com/lixenwraith/orbital/vmath"
)

// replayEpoch is the mock clock origin; step offsets are relative to it
var replayEpoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

// maxTimerFires bounds timer draining between two steps
const maxTimerFires = 64

type scriptStep struct {
	At      string  `toml:"at"`
	Pointer string  `toml:"pointer"`
	ID      int     `toml:"id"`
	X       float64 `toml:"x"`
	Y       float64 `toml:"y"`
	Key     string  `toml:"key"`
	Rune    string  `toml:"rune"`
	Shift   bool    `toml:"shift"`
	Tick    bool    `toml:"tick"`
}

type scriptFile struct {
	Steps []scriptStep `toml:"step"`
}

// step is one parsed script entry; exactly one of pointer, key or tick is set
type step struct {
	at      time.Duration
	pointer *input.PointerEvent
	key     *input.KeyEvent
	tick    bool
}

// record is one emitted effect with its replay offset
type record struct {
	At     time.Duration
	Source string
	Effect effect.Effect
}

func newReplayCmd(app *App) *cobra.Command {
	var (
		format string
		settle time.Duration
		only   []string
	)

	cmd := &cobra.Command{
		Use:   "replay <script.toml>",
		Short: "Replay a scripted input sequence and print the emitted effects",
		Long: `Replay a scripted input sequence against a controller driven by a mock
clock, firing long-press and inactivity timers at their deadlines.

Each [[step]] has an "at" offset (Go duration) and one of:
  pointer = "down|move|up|cancel" with id, x, y relative to the anchor
  key = "tab|enter|space|escape|up|..." or rune = "+", optional shift
  tick = true`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logging.ConfigureRuntime(cmd.ErrOrStderr())

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("script read failed (%s): %w", args[0], err)
			}
			steps, err := parseScript(data)
			if err != nil {
				return fmt.Errorf("script %s: %w", args[0], err)
			}
			filter, err := typeFilter(only)
			if err != nil {
				return err
			}

			cfg, err := app.loadConfig()
			if err != nil {
				return err
			}
			catalog, err := app.loadCatalog()
			if err != nil {
				return err
			}
			keys, err := app.loadKeyTable()
			if err != nil {
				return err
			}

			clock := engine.NewMockTimeProvider(replayEpoch)
			ctrl, err := engine.NewController(cfg, catalog, engine.WithClock(clock), engine.WithKeyTable(keys))
			if err != nil {
				return err
			}
			defer ctrl.Dispose()

			records := replay(ctrl, clock, steps, settle)
			if filter != nil {
				kept := records[:0]
				for _, r := range records {
					if filter[r.Effect.Type] {
						kept = append(kept, r)
					}
				}
				records = kept
			}

			out := cmd.OutOrStdout()
			switch format {
			case "json":
				return writeJSON(out, records)
			case "text":
				writeText(out, records)
				return nil
			default:
				return fmt.Errorf("unknown format %q (want text or json)", format)
			}
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "output format: text or json")
	cmd.Flags().DurationVar(&settle, "settle", 0, "keep firing timers this long after the last step")
	cmd.Flags().StringSliceVar(&only, "only", nil, "effect types to print, e.g. expand,collapse")
	return cmd
}

// parseScript decodes and validates a replay script; offsets must not decrease
func parseScript(data []byte) ([]step, error) {
	var f scriptFile
	if _, err := toml.Decode(string(data), &f); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}

	steps := make([]step, 0, len(f.Steps))
	var last time.Duration
	for i, s := range f.Steps {
		at, err := time.ParseDuration(s.At)
		if err != nil {
			return nil, fmt.Errorf("step %d: bad offset %q: %w", i+1, s.At, err)
		}
		if at < last {
			return nil, fmt.Errorf("step %d: offset %s before previous step %s", i+1, at, last)
		}
		last = at

		st := step{at: at, tick: s.Tick}
		set := 0
		if s.Tick {
			set++
		}
		if s.Pointer != "" {
			set++
			kind, ok := input.PointerKindByName(s.Pointer)
			if !ok {
				return nil, fmt.Errorf("step %d: unknown pointer kind %q", i+1, s.Pointer)
			}
			st.pointer = &input.PointerEvent{Kind: kind, Pointer: s.ID, Pos: vmath.Vec2{X: s.X, Y: s.Y}}
		}
		if s.Key != "" || s.Rune != "" {
			set++
			ev, err := scriptKey(s)
			if err != nil {
				return nil, fmt.Errorf("step %d: %w", i+1, err)
			}
			st.key = &ev
		}
		if set != 1 {
			return nil, fmt.Errorf("step %d: exactly one of pointer, key/rune or tick is required", i+1)
		}
		steps = append(steps, st)
	}
	return steps, nil
}

func scriptKey(s scriptStep) (input.KeyEvent, error) {
	if s.Rune != "" {
		r := []rune(s.Rune)
		if len(r) != 1 {
			return input.KeyEvent{}, fmt.Errorf("rune %q must be a single character", s.Rune)
		}
		return input.KeyEvent{Key: input.KeyRune, Rune: r[0], Shift: s.Shift}, nil
	}
	k, ok := input.KeyByName(strings.ToLower(s.Key))
	if !ok {
		return input.KeyEvent{}, fmt.Errorf("unknown key %q", s.Key)
	}
	return input.KeyEvent{Key: k, Shift: s.Shift}, nil
}

// replay feeds steps to ctrl, firing due timers at their own deadlines before each step
func replay(ctrl *engine.Controller, clock *engine.MockTimeProvider, steps []step, settle time.Duration) []record {
	start := clock.Now()
	var records []record

	emit := func(at time.Time, source string, effs []effect.Effect) {
		for _, e := range effs {
			records = append(records, record{At: at.Sub(start), Source: source, Effect: e})
		}
	}

	drain := func(until time.Time) {
		for range maxTimerFires {
			next, ok := ctrl.NextDeadline()
			if !ok || next.After(until) {
				return
			}
			clock.SetTime(next)
			emit(next, "timer", ctrl.Tick(next))
		}
	}

	var end time.Time
	for i, s := range steps {
		at := start.Add(s.at)
		drain(at)
		clock.SetTime(at)
		source := fmt.Sprintf("step %d", i+1)

		switch {
		case s.pointer != nil:
			ev := *s.pointer
			ev.At = at
			emit(at, source, ctrl.HandlePointerEvent(ev))
		case s.key != nil:
			ev := *s.key
			ev.At = at
			emit(at, source, ctrl.HandleKeyEvent(ev))
		case s.tick:
			emit(at, source, ctrl.Tick(at))
		}
		end = at
	}

	if settle > 0 {
		if end.IsZero() {
			end = start
		}
		drain(end.Add(settle))
	}
	return records
}

func typeFilter(names []string) (map[effect.Type]bool, error) {
	if len(names) == 0 {
		return nil, nil
	}
	filter := make(map[effect.Type]bool, len(names))
	for _, name := range names {
		t, ok := effect.TypeByName(strings.TrimSpace(name))
		if !ok {
			return nil, fmt.Errorf("unknown effect type %q", name)
		}
		filter[t] = true
	}
	return filter, nil
}

// payloadView flattens payloads that do not marshal usefully on their own
func payloadView(e effect.Effect) any {
	switch p := e.Payload.(type) {
	case effect.Announce:
		return map[string]any{"kind": p.Kind.String(), "params": p.Params}
	case effect.Haptic:
		return map[string]any{"intensity": p.Intensity.String()}
	case effect.Error:
		msg := ""
		if p.Err != nil {
			msg = p.Err.Error()
		}
		return map[string]any{"key": p.Key, "error": msg}
	}
	return e.Payload
}

func writeJSON(w io.Writer, records []record) error {
	enc := json.NewEncoder(w)
	for _, r := range records {
		line := struct {
			AtMs    int64  `json:"at_ms"`
			Source  string `json:"source"`
			Type    string `json:"type"`
			Payload any    `json:"payload,omitempty"`
		}{
			AtMs:    r.At.Milliseconds(),
			Source:  r.Source,
			Type:    r.Effect.Type.String(),
			Payload: payloadView(r.Effect),
		}
		if err := enc.Encode(line); err != nil {
			return fmt.Errorf("encode record: %w", err)
		}
	}
	return nil
}

func writeText(w io.Writer, records []record) {
	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("%d effects", len(records))))
	source := ""
	for _, r := range records {
		if r.Source != source {
			source = r.Source
			fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("+%s %s", r.At, source)))
		}
		payload := ""
		if p := payloadView(r.Effect); p != nil {
			payload = fmt.Sprintf("%+v", p)
		}
		fmt.Fprintf(w, "  %s %s\n", typeStyle.Render(leftCell(20).Render(r.Effect.Type.String())), mutedStyle.Render(payload))
	}
}
