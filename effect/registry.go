package effect

import "strings"

var (
	typeNames = map[Type]string{
		TypeNone:               "None",
		TypeNavigate:           "Navigate",
		TypeExpand:             "Expand",
		TypeCollapse:           "Collapse",
		TypeAutoCollapse:       "AutoCollapse",
		TypeExecuteQuickAction: "ExecuteQuickAction",
		TypeRotateTo:           "RotateTo",
		TypeResizeTo:           "ResizeTo",
		TypeAnnounce:           "Announce",
		TypeHaptic:             "Haptic",
		TypeTrack:              "Track",
		TypeCloseSurface:       "CloseSurface",
		TypeOpenSurface:        "OpenSurface",
		TypeReportError:        "ReportError",
	}
	nameToType = invert(typeNames)

	announceNames = map[AnnounceKind]string{
		AnnounceNone:            "none",
		AnnounceFocusChanged:    "focus-changed",
		AnnounceExpanded:        "expanded",
		AnnounceCollapsed:       "collapsed",
		AnnounceAutoCollapsed:   "auto-collapsed",
		AnnounceGestureFeedback: "gesture-feedback",
	}
)

func invert(m map[Type]string) map[string]Type {
	out := make(map[string]Type, len(m))
	for t, name := range m {
		out[strings.ToLower(name)] = t
	}
	return out
}

// String returns the registered name of the effect type
func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "Unknown"
}

// TypeByName resolves a case-insensitive effect name
func TypeByName(name string) (Type, bool) {
	t, ok := nameToType[strings.ToLower(name)]
	return t, ok
}

// String returns the announcement text key
func (k AnnounceKind) String() string {
	if name, ok := announceNames[k]; ok {
		return name
	}
	return "none"
}

// Filter returns the effects of the given type, in emission order
func Filter(effects []Effect, t Type) []Effect {
	var out []Effect
	for _, e := range effects {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

// Count returns how many effects of the given type are present
func Count(effects []Effect, t Type) int {
	n := 0
	for _, e := range effects {
		if e.Type == t {
			n++
		}
	}
	return n
}
