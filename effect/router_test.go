package effect

import "testing"

type recordingHandler struct {
	types []Type
	seen  []Effect
}

func (h *recordingHandler) HandleEffect(e Effect) { h.seen = append(h.seen, e) }
func (h *recordingHandler) EffectTypes() []Type   { return h.types }

func TestRouterDispatchOrder(t *testing.T) {
	r := NewRouter()
	nav := &recordingHandler{types: []Type{TypeNavigate, TypeExecuteQuickAction}}
	all := &recordingHandler{types: []Type{TypeNavigate}}
	r.Register(nav)
	r.Register(all)

	r.Dispatch([]Effect{
		NewNavigate("home", "", "/home"),
		NewHaptic(IntensityLight),
		NewQuickAction("home", "new-note"),
	})

	if len(nav.seen) != 2 {
		t.Fatalf("expected 2 effects for nav handler, got %d", len(nav.seen))
	}
	if nav.seen[0].Type != TypeNavigate || nav.seen[1].Type != TypeExecuteQuickAction {
		t.Errorf("unexpected order: %v, %v", nav.seen[0].Type, nav.seen[1].Type)
	}
	if len(all.seen) != 1 {
		t.Errorf("second navigate handler expected 1 effect, got %d", len(all.seen))
	}
	if r.Unhandled() != 1 {
		t.Errorf("expected 1 unhandled haptic, got %d", r.Unhandled())
	}
	if r.HandlerCount(TypeNavigate) != 2 {
		t.Errorf("expected 2 navigate handlers, got %d", r.HandlerCount(TypeNavigate))
	}
}

func TestHandlerFunc(t *testing.T) {
	r := NewRouter()
	var got []string
	r.Register(HandlerFunc{
		Types: []Type{TypeOpenSurface},
		Fn: func(e Effect) {
			got = append(got, e.Payload.(Surface).Name)
		},
	})
	r.Dispatch([]Effect{NewOpenSurface("menu"), NewOpenSurface("search")})
	if len(got) != 2 || got[0] != "menu" || got[1] != "search" {
		t.Errorf("unexpected surfaces: %v", got)
	}
}

func TestTypeNames(t *testing.T) {
	for typ := TypeNone; typ <= TypeReportError; typ++ {
		name := typ.String()
		back, ok := TypeByName(name)
		if !ok || back != typ {
			t.Errorf("type %d name %q did not round-trip", typ, name)
		}
	}
	if AnnounceAutoCollapsed.String() != "auto-collapsed" {
		t.Errorf("unexpected announce key %q", AnnounceAutoCollapsed.String())
	}
	if IntensityHeavy.String() != "heavy" {
		t.Errorf("unexpected intensity tag %q", IntensityHeavy.String())
	}
}

func TestFilterAndCount(t *testing.T) {
	effs := []Effect{NewAutoCollapse("a"), NewAnnounce(AnnounceAutoCollapsed, nil), NewAutoCollapse("b")}
	if Count(effs, TypeAutoCollapse) != 2 {
		t.Errorf("Count mismatch")
	}
	if f := Filter(effs, TypeAnnounce); len(f) != 1 {
		t.Errorf("Filter mismatch: %v", f)
	}
}
