package effect

// Navigate targets a hub, or one of its sub-items when ItemID is set
type Navigate struct {
	HubID  string
	ItemID string
	Target string
}

// Expand names the hub being disclosed
type Expand struct {
	HubID string
}

// Collapse names the hub being closed and why
type Collapse struct {
	HubID  string
	Reason string
}

// QuickAction identifies a hub action to run
type QuickAction struct {
	HubID    string
	ActionID string
}

// Rotate carries the new rotation offset in degrees, [0, 360)
type Rotate struct {
	Offset float64
}

// Resize carries the new radius in pixels, already clamped
type Resize struct {
	Radius float64
}

// Announce is the text key plus parameters; prose is composed by the collaborator
type Announce struct {
	Kind   AnnounceKind
	Params map[string]any
}

// Haptic carries a pulse intensity
type Haptic struct {
	Intensity Intensity
}

// Track is one analytics event
type Track struct {
	Event  string
	Params map[string]any
}

// Surface names a secondary surface to open
type Surface struct {
	Name string
}

// Error is a reported misconfiguration; Key deduplicates repeats
type Error struct {
	Key string
	Err error
}

// Constructors keep call sites short

func NewNavigate(hubID, itemID, target string) Effect {
	return Effect{Type: TypeNavigate, Payload: Navigate{HubID: hubID, ItemID: itemID, Target: target}}
}

func NewExpand(hubID string) Effect {
	return Effect{Type: TypeExpand, Payload: Expand{HubID: hubID}}
}

func NewCollapse(hubID, reason string) Effect {
	return Effect{Type: TypeCollapse, Payload: Collapse{HubID: hubID, Reason: reason}}
}

func NewAutoCollapse(hubID string) Effect {
	return Effect{Type: TypeAutoCollapse, Payload: Collapse{HubID: hubID, Reason: ReasonInactivity}}
}

func NewQuickAction(hubID, actionID string) Effect {
	return Effect{Type: TypeExecuteQuickAction, Payload: QuickAction{HubID: hubID, ActionID: actionID}}
}

func NewRotateTo(offset float64) Effect {
	return Effect{Type: TypeRotateTo, Payload: Rotate{Offset: offset}}
}

func NewResizeTo(radius float64) Effect {
	return Effect{Type: TypeResizeTo, Payload: Resize{Radius: radius}}
}

func NewAnnounce(kind AnnounceKind, params map[string]any) Effect {
	return Effect{Type: TypeAnnounce, Payload: Announce{Kind: kind, Params: params}}
}

func NewHaptic(intensity Intensity) Effect {
	return Effect{Type: TypeHaptic, Payload: Haptic{Intensity: intensity}}
}

func NewTrack(event string, params map[string]any) Effect {
	return Effect{Type: TypeTrack, Payload: Track{Event: event, Params: params}}
}

func NewCloseSurface() Effect {
	return Effect{Type: TypeCloseSurface}
}

func NewOpenSurface(name string) Effect {
	return Effect{Type: TypeOpenSurface, Payload: Surface{Name: name}}
}

func NewError(key string, err error) Effect {
	return Effect{Type: TypeReportError, Payload: Error{Key: key, Err: err}}
}
