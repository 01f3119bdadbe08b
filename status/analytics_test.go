package status

import (
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"unicode/utf8"

	"github.com/lixenwraith/orbital/effect"
)

func TestAnalyticsCountsTrackEvents(t *testing.T) {
	a := NewAnalytics(NewRegistry())
	router := effect.NewRouter()
	router.Register(a)

	router.Dispatch([]effect.Effect{
		effect.NewTrack("gesture_start", map[string]any{"session": "s1"}),
		effect.NewNavigate("notes", "", "/notes"),
		effect.NewTrack("navigate", map[string]any{"hub": "notes", "item": ""}),
		effect.NewTrack("gesture_end", map[string]any{"session": "s1", "kind": "tap"}),
		effect.NewTrack("quick_action", map[string]any{"hub": "home", "action": "compose"}),
	})

	reg := a.Registry()
	if got := reg.Counter("track.navigate"); got != 1 {
		t.Errorf("track.navigate = %d, want 1", got)
	}
	if got := reg.Counter("gesture.tap"); got != 1 {
		t.Errorf("gesture.tap = %d, want 1", got)
	}
	if got := reg.Labels.Get(KeyLastHub).Load(); got != "home" {
		t.Errorf("last hub = %q, want home", got)
	}
	if got := reg.Labels.Get(KeyLastAction).Load(); got != "compose" {
		t.Errorf("last action = %q, want compose", got)
	}
	if router.Unhandled() != 1 {
		t.Errorf("navigate has no handler here, unhandled = %d", router.Unhandled())
	}
}

func TestAnalyticsMirrorsRingState(t *testing.T) {
	a := NewAnalytics(NewRegistry())
	for _, e := range []effect.Effect{
		effect.NewRotateTo(150),
		effect.NewResizeTo(120),
		effect.NewExpand("home"),
	} {
		a.HandleEffect(e)
	}
	reg := a.Registry()
	if reg.Gauges.Get(KeyRotation).Get() != 150 || reg.Gauges.Get(KeyRadius).Get() != 120 {
		t.Errorf("gauges not updated")
	}
	if !reg.Flags.Get(KeyExpanded).Load() {
		t.Errorf("expanded flag not set")
	}
	a.HandleEffect(effect.NewAutoCollapse("home"))
	if reg.Flags.Get(KeyExpanded).Load() {
		t.Errorf("auto-collapse should clear the expanded flag")
	}
}

func TestAnalyticsRecordsErrors(t *testing.T) {
	a := NewAnalytics(NewRegistry())
	a.HandleEffect(effect.NewError("geometry", errors.New("bad radius")))
	if a.Registry().Counter("error.geometry") != 1 || !a.Registry().Flags.Get(KeyDegraded).Load() {
		t.Errorf("error not recorded")
	}
	lines := a.Lines()
	want := []string{"gestures 0", "errors 1", "error.geometry 1", "ring.degraded true"}
	if len(lines) != len(want) {
		t.Fatalf("unexpected lines %q", lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestRegistrySumByPrefix(t *testing.T) {
	r := NewRegistry()
	r.Counters.Get("gesture.tap").Add(3)
	r.Counters.Get("gesture.long_press").Add(1)
	r.Counters.Get("track.navigate").Add(5)

	if got := r.Sum(PrefixGesture); got != 4 {
		t.Errorf("Sum(gesture.) = %d, want 4", got)
	}
	if got := r.Sum(""); got != 9 {
		t.Errorf("Sum(all) = %d, want 9", got)
	}

	var keys []string
	r.Counters.Range(PrefixGesture, func(k string, _ *atomic.Int64) { keys = append(keys, k) })
	if len(keys) != 2 || keys[0] != "gesture.long_press" || keys[1] != "gesture.tap" {
		t.Errorf("prefix range keys = %q", keys)
	}
}

func TestAtomicStringTruncates(t *testing.T) {
	var s AtomicString
	long := make([]byte, MaxLabelLen+10)
	for i := range long {
		long[i] = 'x'
	}
	s.Store(string(long))
	if len(s.Load()) != MaxLabelLen {
		t.Errorf("expected truncation to %d, got %d", MaxLabelLen, len(s.Load()))
	}
}

func TestAtomicStringKeepsRunesWhole(t *testing.T) {
	var s AtomicString
	// 63 ASCII bytes then a 3-byte rune straddling the limit
	val := strings.Repeat("a", MaxLabelLen-1) + "界" + "tail"
	s.Store(val)
	got := s.Load()
	if !utf8.ValidString(got) {
		t.Fatalf("truncation split a rune: %q", got)
	}
	if got != strings.Repeat("a", MaxLabelLen-1) {
		t.Errorf("expected cut before the rune, got %d bytes", len(got))
	}

	s.Store(strings.Repeat("é", MaxLabelLen))
	if got := s.Load(); !utf8.ValidString(got) || len(got) != MaxLabelLen {
		t.Errorf("2-byte runes should fill exactly %d bytes, got %d valid=%v", MaxLabelLen, len(got), utf8.ValidString(got))
	}
}

func TestRegistryCounterMissingKey(t *testing.T) {
	r := NewRegistry()
	if r.Counter("nope") != 0 || r.TotalCount() != 0 {
		t.Errorf("lookup must not allocate")
	}
}
