package input

// SessionPhase is the mutually exclusive state of the active gesture session
type SessionPhase uint8

const (
	PhaseIdle     SessionPhase = iota // No session
	PhasePressed                      // Contact down, within jitter; tap or long-press candidate
	PhaseTracking                     // Moved beyond jitter; drag candidate, tap suppressed
	PhaseRotating                     // Rotate-drag classified
	PhasePinching                     // Second contact promoted the session to pinch
	PhaseConsumed                     // Classified and finished; waiting for contacts to lift
)

// String returns the phase name
func (p SessionPhase) String() string {
	switch p {
	case PhasePressed:
		return "pressed"
	case PhaseTracking:
		return "tracking"
	case PhaseRotating:
		return "rotating"
	case PhasePinching:
		return "pinching"
	case PhaseConsumed:
		return "consumed"
	default:
		return "idle"
	}
}
