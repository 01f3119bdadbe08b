package effect

// Type discriminates effects emitted by the interaction engine
type Type uint8

const (
	TypeNone Type = iota

	// TypeNavigate requests navigation to a hub or a hub's sub-item
	// Trigger: tap, Enter, digit shortcut | Consumer: navigator | Payload: Navigate
	TypeNavigate

	// TypeExpand reports a hub disclosure
	// Trigger: long-press, Space | Consumer: renderer | Payload: Expand
	TypeExpand

	// TypeCollapse reports an explicit collapse (toggle, Escape, registry miss)
	// Trigger: long-press on expanded hub, Escape, outside dismiss | Consumer: renderer | Payload: Collapse
	TypeCollapse

	// TypeAutoCollapse reports a collapse caused by inactivity
	// Trigger: inactivity timer | Consumer: renderer, announcer | Payload: Collapse
	TypeAutoCollapse

	// TypeExecuteQuickAction runs a hub quick action
	// Trigger: double-tap on hub, tap on quick action item | Consumer: action runner | Payload: QuickAction
	TypeExecuteQuickAction

	// TypeRotateTo sets the ring rotation offset
	// Trigger: rotate-drag sample, arrow keys | Consumer: renderer | Payload: Rotate
	TypeRotateTo

	// TypeResizeTo sets the ring radius
	// Trigger: pinch sample, arrow/+/- keys | Consumer: renderer | Payload: Resize
	TypeResizeTo

	// TypeAnnounce forwards a structured accessibility event
	// Trigger: focus move, disclosure change, gesture milestone | Consumer: announcer | Payload: Announce
	TypeAnnounce

	// TypeHaptic requests a haptic pulse
	// Trigger: discrete gesture milestone | Consumer: haptics | Payload: Haptic
	TypeHaptic

	// TypeTrack forwards one analytics event per resolved intent
	// Trigger: resolved intent, gesture start/end | Consumer: analytics | Payload: Track
	TypeTrack

	// TypeCloseSurface asks the host to close the whole menu surface
	// Trigger: Escape or anchor tap while collapsed | Consumer: host | Payload: nil
	TypeCloseSurface

	// TypeOpenSurface asks the host to open a secondary surface
	// Trigger: carousel swipe | Consumer: host | Payload: Surface
	TypeOpenSurface

	// TypeReportError reports a configuration or registry problem once per key
	// Trigger: invalid geometry, empty registry | Consumer: analytics/error sink | Payload: Error
	TypeReportError
)

// AnnounceKind is the structured event forwarded to the announcement collaborator
type AnnounceKind uint8

const (
	AnnounceNone AnnounceKind = iota
	AnnounceFocusChanged
	AnnounceExpanded
	AnnounceCollapsed
	AnnounceAutoCollapsed
	AnnounceGestureFeedback
)

// Intensity tags a haptic pulse
type Intensity uint8

const (
	IntensityLight Intensity = iota + 1
	IntensityMedium
	IntensityHeavy
)

// String returns the collaborator-facing intensity tag
func (i Intensity) String() string {
	switch i {
	case IntensityLight:
		return "light"
	case IntensityMedium:
		return "medium"
	case IntensityHeavy:
		return "heavy"
	default:
		return "none"
	}
}

// Collapse reasons
const (
	ReasonToggle      = "toggle"
	ReasonEscape      = "escape"
	ReasonDismiss     = "dismiss"
	ReasonHubMissing  = "hub-missing"
	ReasonInactivity  = "inactivity"
	ReasonSwitch      = "switch"
	ReasonSurfaceGone = "surface-closed"
)

// Effect is a discrete, declarative outcome for an external collaborator
// Pure data: the engine never performs the side effect itself
type Effect struct {
	Type    Type
	Payload any
}
