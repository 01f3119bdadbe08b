package input

import (
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/orbital/vmath"
)

// Thresholds tune the classifier; zero values are not defaulted here, the engine passes config
type Thresholds struct {
	LongPress       time.Duration
	DoubleTapWindow time.Duration
	DragThreshold   float64
	JitterTolerance float64
	AnnulusInner    float64 // fraction of radius
	AnnulusOuter    float64 // fraction of radius
	Swipe           bool    // carousel variant: classify directional release
}

// Frame is the engine state a new session is anchored to
type Frame struct {
	Radius   float64
	Rotation float64
	Target   Target
}

// Contact is one tracked finger or mouse button
type Contact struct {
	Pointer int
	Start   vmath.Vec2
	Current vmath.Vec2
	Down    bool
}

// Session is the in-progress gesture; exactly one exists per classifier
type Session struct {
	ID      uuid.UUID
	Phase   SessionPhase
	Kind    IntentKind // IntentNone until a threshold is crossed
	Target  Target
	Started time.Time

	Primary   Contact
	Secondary Contact // valid only in PhasePinching and later

	RotateArmed   bool
	StartRotation float64
	StartRadius   float64

	lastAngle     float64
	accumulated   float64
	direction     int8
	initialSpread float64
	longPressAt   time.Time
}

type tapRecord struct {
	target Target
	at     time.Time
	valid  bool
}

// Classifier turns raw pointer samples into at most one classification per session
// Single-threaded; owned by one surface
type Classifier struct {
	th      Thresholds
	session *Session
	lastTap tapRecord
}

// NewClassifier creates a classifier with the given thresholds
func NewClassifier(th Thresholds) *Classifier {
	return &Classifier{th: th}
}

// SetThresholds replaces thresholds; an active session keeps running with the new values
func (c *Classifier) SetThresholds(th Thresholds) {
	c.th = th
}

// Active reports whether a session is in progress
func (c *Classifier) Active() bool {
	return c.session != nil
}

// Phase returns the active session phase, PhaseIdle when none
func (c *Classifier) Phase() SessionPhase {
	if c.session == nil {
		return PhaseIdle
	}
	return c.session.Phase
}

// Session returns a copy of the active session
func (c *Classifier) Session() (Session, bool) {
	if c.session == nil {
		return Session{}, false
	}
	return *c.session, true
}

// LongPressDeadline returns when the pending long-press fires, if one is armed
func (c *Classifier) LongPressDeadline() (time.Time, bool) {
	s := c.session
	if s == nil || s.Phase != PhasePressed || !s.Target.Tappable() {
		return time.Time{}, false
	}
	return s.longPressAt, true
}

// Process dispatches a sample by kind; frame is read only on the first contact
func (c *Classifier) Process(ev PointerEvent, f Frame) []Intent {
	switch ev.Kind {
	case PointerDown:
		return c.down(ev, f)
	case PointerMove:
		return c.move(ev)
	case PointerUp:
		return c.up(ev)
	case PointerCancel:
		c.Cancel()
	}
	return nil
}

// Cancel discards the session without emitting any classification
func (c *Classifier) Cancel() {
	c.session = nil
	c.lastTap = tapRecord{}
}

// Expire fires the long-press timer if it is due
func (c *Classifier) Expire(now time.Time) []Intent {
	s := c.session
	if s == nil || s.Phase != PhasePressed || !s.Target.Tappable() {
		return nil
	}
	if now.Before(s.longPressAt) {
		return nil
	}
	return c.fireLongPress()
}

func (c *Classifier) down(ev PointerEvent, f Frame) []Intent {
	s := c.session
	if s == nil {
		c.begin(ev, f)
		return nil
	}

	if ev.Pointer == s.Primary.Pointer || (s.Secondary.Down && ev.Pointer == s.Secondary.Pointer) {
		return nil
	}

	// A press held past the deadline is a long-press even if the timer tick has not arrived
	if s.Phase == PhasePressed && s.Target.Tappable() && !ev.At.Before(s.longPressAt) {
		return c.fireLongPress()
	}

	switch s.Phase {
	case PhasePressed, PhaseTracking:
		return c.promoteToPinch(ev)
	}
	// Rotating, pinching or consumed: extra contacts are ignored
	return nil
}

func (c *Classifier) begin(ev PointerEvent, f Frame) {
	s := &Session{
		ID:            uuid.New(),
		Phase:         PhasePressed,
		Target:        f.Target,
		Started:       ev.At,
		Primary:       Contact{Pointer: ev.Pointer, Start: ev.Pos, Current: ev.Pos, Down: true},
		StartRotation: f.Rotation,
		StartRadius:   f.Radius,
		longPressAt:   ev.At.Add(c.th.LongPress),
	}
	dist := ev.Pos.Magnitude()
	s.RotateArmed = dist >= c.th.AnnulusInner*f.Radius && dist <= c.th.AnnulusOuter*f.Radius
	s.lastAngle = ev.Pos.Angle()
	c.session = s
}

func (c *Classifier) promoteToPinch(ev PointerEvent) []Intent {
	s := c.session
	s.Secondary = Contact{Pointer: ev.Pointer, Start: ev.Pos, Current: ev.Pos, Down: true}
	s.Phase = PhasePinching
	s.Kind = IntentPinchResize
	s.initialSpread = math.Max(vmath.Distance(s.Primary.Current, ev.Pos), 1)
	c.lastTap = tapRecord{}

	return []Intent{{
		Kind:        IntentPinchResize,
		Stage:       StageBegin,
		Target:      s.Target,
		SessionID:   s.ID,
		Scale:       1,
		StartRadius: s.StartRadius,
	}}
}

func (c *Classifier) move(ev PointerEvent) []Intent {
	s := c.session
	if s == nil {
		return nil
	}
	contact := s.contact(ev.Pointer)
	if contact == nil || !contact.Down {
		return nil
	}

	// Samples arriving after the hold deadline resolve the long-press first
	if s.Phase == PhasePressed && s.Target.Tappable() && !ev.At.Before(s.longPressAt) {
		return c.fireLongPress()
	}

	contact.Current = ev.Pos

	switch s.Phase {
	case PhasePressed, PhaseTracking:
		travel := vmath.Distance(s.Primary.Start, s.Primary.Current)
		if s.Phase == PhasePressed && travel > c.th.JitterTolerance {
			s.Phase = PhaseTracking
		}
		if s.Phase == PhaseTracking && s.RotateArmed && travel > c.th.DragThreshold {
			return c.startRotation()
		}
		return nil

	case PhaseRotating:
		return c.continueRotation()

	case PhasePinching:
		spread := vmath.Distance(s.Primary.Current, s.Secondary.Current)
		return []Intent{{
			Kind:        IntentPinchResize,
			Stage:       StageUpdate,
			Target:      s.Target,
			SessionID:   s.ID,
			Scale:       spread / s.initialSpread,
			StartRadius: s.StartRadius,
		}}
	}
	return nil
}

func (c *Classifier) startRotation() []Intent {
	s := c.session
	s.Phase = PhaseRotating
	s.Kind = IntentRotateDrag
	c.lastTap = tapRecord{}

	cur := s.Primary.Current.Angle()
	delta := vmath.AngleDelta(s.lastAngle, cur)
	s.lastAngle = cur
	s.accumulated = delta
	s.direction = sign(delta)

	return []Intent{{
		Kind:        IntentRotateDrag,
		Stage:       StageBegin,
		Target:      s.Target,
		SessionID:   s.ID,
		Delta:       delta,
		Accumulated: s.accumulated,
	}}
}

func (c *Classifier) continueRotation() []Intent {
	s := c.session
	cur := s.Primary.Current.Angle()
	delta := vmath.AngleDelta(s.lastAngle, cur)
	s.lastAngle = cur
	s.accumulated += delta

	changed := false
	if d := sign(delta); d != 0 && d != s.direction {
		changed = s.direction != 0
		s.direction = d
	}

	return []Intent{{
		Kind:             IntentRotateDrag,
		Stage:            StageUpdate,
		Target:           s.Target,
		SessionID:        s.ID,
		Delta:            delta,
		Accumulated:      s.accumulated,
		DirectionChanged: changed,
	}}
}

func (c *Classifier) up(ev PointerEvent) []Intent {
	s := c.session
	if s == nil {
		return nil
	}
	contact := s.contact(ev.Pointer)
	if contact == nil || !contact.Down {
		return nil
	}
	contact.Down = false
	if ev.Pos.IsFinite() {
		contact.Current = ev.Pos
	}

	switch s.Phase {
	case PhasePressed:
		if !s.Target.Tappable() {
			c.session = nil
			return nil
		}
		// Release after the hold deadline is a long-press even if the timer tick was late
		if !ev.At.Before(s.longPressAt) {
			return c.fireLongPress()
		}
		c.session = nil
		return c.resolveTap(s, ev.At)

	case PhaseTracking:
		c.session = nil
		c.lastTap = tapRecord{}
		if !c.th.Swipe {
			return nil
		}
		dir := BucketDirection(s.Primary.Current.Sub(s.Primary.Start), c.th.DragThreshold)
		if dir == DirectionNone {
			return nil
		}
		return []Intent{{
			Kind:      IntentSwipe,
			Stage:     StageDiscrete,
			Target:    s.Target,
			SessionID: s.ID,
			Direction: dir,
		}}

	case PhaseRotating:
		c.session = nil
		return []Intent{{
			Kind:        IntentRotateDrag,
			Stage:       StageEnd,
			Target:      s.Target,
			SessionID:   s.ID,
			Accumulated: s.accumulated,
		}}

	case PhasePinching:
		// Either contact lifting ends the pinch; the other is ignored until it lifts
		s.Phase = PhaseConsumed
		c.clearIfLifted()
		spread := vmath.Distance(s.Primary.Current, s.Secondary.Current)
		return []Intent{{
			Kind:        IntentPinchResize,
			Stage:       StageEnd,
			Target:      s.Target,
			SessionID:   s.ID,
			Scale:       spread / s.initialSpread,
			StartRadius: s.StartRadius,
		}}

	case PhaseConsumed:
		c.clearIfLifted()
	}
	return nil
}

func (c *Classifier) resolveTap(s *Session, at time.Time) []Intent {
	last := c.lastTap
	if last.valid && last.target.Same(s.Target) && at.Sub(last.at) <= c.th.DoubleTapWindow {
		c.lastTap = tapRecord{}
		return []Intent{{
			Kind:      IntentDoubleTap,
			Stage:     StageDiscrete,
			Target:    s.Target,
			SessionID: s.ID,
		}}
	}
	c.lastTap = tapRecord{target: s.Target, at: at, valid: true}
	return []Intent{{
		Kind:      IntentTap,
		Stage:     StageDiscrete,
		Target:    s.Target,
		SessionID: s.ID,
	}}
}

func (c *Classifier) fireLongPress() []Intent {
	s := c.session
	s.Phase = PhaseConsumed
	s.Kind = IntentLongPress
	c.lastTap = tapRecord{}
	c.clearIfLifted()
	return []Intent{{
		Kind:      IntentLongPress,
		Stage:     StageDiscrete,
		Target:    s.Target,
		SessionID: s.ID,
	}}
}

func (c *Classifier) clearIfLifted() {
	s := c.session
	if s != nil && !s.Primary.Down && !s.Secondary.Down {
		c.session = nil
	}
}

func (s *Session) contact(pointer int) *Contact {
	if s.Primary.Pointer == pointer && s.Primary.Down {
		return &s.Primary
	}
	if s.Phase >= PhasePinching && s.Secondary.Pointer == pointer && s.Secondary.Down {
		return &s.Secondary
	}
	return nil
}

func sign(f float64) int8 {
	switch {
	case f > 0:
		return 1
	case f < 0:
		return -1
	}
	return 0
}
