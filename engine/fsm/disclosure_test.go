package fsm

import (
	"math"
	"testing"

	"github.com/lixenwraith/orbital/effect"
	"github.com/lixenwraith/orbital/registry"
)

func newTestDisclosure() *Disclosure {
	return NewDisclosure(80, Bounds{MinRadius: 40, MaxRadius: 120})
}

func TestInitialState(t *testing.T) {
	d := newTestDisclosure()
	if d.State() != Collapsed() || d.Rotation() != 0 || d.Radius() != 80 || d.Dragging() {
		t.Errorf("unexpected initial state %v rot=%v r=%v", d.State(), d.Rotation(), d.Radius())
	}
}

func TestTapNavigatesWithoutExpanding(t *testing.T) {
	d := newTestDisclosure()
	effs := d.Tap(registry.Hub{ID: "notes", Target: "/notes"})
	if len(effs) != 1 || effs[0].Type != effect.TypeNavigate {
		t.Fatalf("expected navigate, got %+v", effs)
	}
	if nav := effs[0].Payload.(effect.Navigate); nav.HubID != "notes" || nav.Target != "/notes" {
		t.Errorf("unexpected payload %+v", nav)
	}
	if d.State().IsExpanded() {
		t.Errorf("tap must not expand")
	}
}

func TestLongPressToggles(t *testing.T) {
	d := newTestDisclosure()
	first := d.LongPress("a")
	if d.State() != Expanded("a") || first[0].Type != effect.TypeExpand {
		t.Fatalf("first long-press: state=%v effects=%+v", d.State(), first)
	}
	second := d.LongPress("a")
	if d.State() != Collapsed() || len(second) != 1 || second[0].Type != effect.TypeCollapse {
		t.Fatalf("second long-press should collapse: state=%v effects=%+v", d.State(), second)
	}
	if second[0].Payload.(effect.Collapse).Reason != effect.ReasonToggle {
		t.Errorf("expected toggle reason")
	}
}

func TestLongPressSwitchesHub(t *testing.T) {
	d := newTestDisclosure()
	d.LongPress("a")
	effs := d.LongPress("b")
	if d.State() != Expanded("b") {
		t.Fatalf("expected expanded(b), got %v", d.State())
	}
	if len(effs) != 2 || effs[0].Type != effect.TypeCollapse || effs[1].Type != effect.TypeExpand {
		t.Errorf("expected collapse then expand, got %+v", effs)
	}
}

func TestDoubleTapQuickAction(t *testing.T) {
	d := newTestDisclosure()
	if effs := d.DoubleTap("a", nil); len(effs) != 0 {
		t.Errorf("no actions should emit nothing, got %+v", effs)
	}
	effs := d.DoubleTap("a", []registry.Action{{ID: "new"}, {ID: "other"}})
	if len(effs) != 1 || effs[0].Payload.(effect.QuickAction).ActionID != "new" {
		t.Errorf("expected first quick action, got %+v", effs)
	}
	if d.State().IsExpanded() {
		t.Errorf("double-tap must not change state")
	}
}

func TestEscape(t *testing.T) {
	d := newTestDisclosure()
	if effs := d.Escape(); len(effs) != 1 || effs[0].Type != effect.TypeCloseSurface {
		t.Errorf("escape while collapsed should close surface, got %+v", effs)
	}
	d.LongPress("a")
	effs := d.Escape()
	if d.State() != Collapsed() || effs[0].Type != effect.TypeCollapse {
		t.Errorf("escape while expanded should collapse, got %v %+v", d.State(), effs)
	}
}

func TestAutoCollapse(t *testing.T) {
	d := newTestDisclosure()
	if effs := d.AutoCollapse(); len(effs) != 0 {
		t.Errorf("auto-collapse while collapsed should be a no-op")
	}
	d.LongPress("a")
	effs := d.AutoCollapse()
	if effect.Count(effs, effect.TypeAutoCollapse) != 1 || d.State() != Collapsed() {
		t.Errorf("expected one auto-collapse, got %+v", effs)
	}
}

func TestRotateWraps(t *testing.T) {
	d := newTestDisclosure()
	for i := 0; i < 13; i++ {
		d.RotateBy(30)
	}
	if math.Abs(d.Rotation()-30) > 1e-9 {
		t.Errorf("13 × 30° should wrap to 30°, got %v", d.Rotation())
	}
	d.RotateBy(-60)
	if math.Abs(d.Rotation()-330) > 1e-9 {
		t.Errorf("expected 330°, got %v", d.Rotation())
	}
	if effs := d.RotateBy(0); len(effs) != 0 {
		t.Errorf("zero delta should emit nothing")
	}
}

func TestResizeClamps(t *testing.T) {
	d := NewDisclosure(60, Bounds{MinRadius: 40, MaxRadius: 120})
	effs := d.ResizeTo(60 * 10)
	if d.Radius() != 120 || effs[0].Payload.(effect.Resize).Radius != 120 {
		t.Errorf("expected clamp to 120, got %v", d.Radius())
	}
	if effs := d.ResizeBy(15); len(effs) != 0 {
		t.Errorf("resize at bound should emit nothing, got %+v", effs)
	}
	d.ResizeTo(-5)
	if d.Radius() != 40 {
		t.Errorf("expected clamp to 40, got %v", d.Radius())
	}
}

func TestSetBoundsReclamps(t *testing.T) {
	d := NewDisclosure(110, Bounds{MinRadius: 40, MaxRadius: 120})
	if effs := d.SetBounds(Bounds{MinRadius: 30, MaxRadius: 150}); len(effs) != 0 {
		t.Errorf("widening bounds should not move the radius, got %+v", effs)
	}
	effs := d.SetBounds(Bounds{MinRadius: 40, MaxRadius: 100})
	if len(effs) != 1 || effs[0].Payload.(effect.Resize).Radius != 100 || d.Radius() != 100 {
		t.Errorf("expected re-clamp to 100, got r=%v %+v", d.Radius(), effs)
	}
	d.ResizeTo(500)
	if d.Radius() != 100 {
		t.Errorf("new bounds not applied to later resizes, r=%v", d.Radius())
	}
}
