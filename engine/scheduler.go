package engine

import "time"

// TimerKind identifies one of the controller's cancellable suspension points
type TimerKind uint8

const (
	TimerLongPress TimerKind = iota
	TimerInactivity
	timerCount
)

// String returns the timer name used in logs
func (k TimerKind) String() string {
	switch k {
	case TimerLongPress:
		return "long-press"
	case TimerInactivity:
		return "inactivity"
	default:
		return "unknown"
	}
}

// Scheduler holds at most one deadline per timer kind
// It never spawns goroutines; the host polls it through Controller.Tick
type Scheduler struct {
	deadlines [timerCount]time.Time
	armed     [timerCount]bool
}

// NewScheduler returns an empty scheduler
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Schedule arms kind at the given deadline, replacing any previous one
func (s *Scheduler) Schedule(kind TimerKind, at time.Time) {
	s.deadlines[kind] = at
	s.armed[kind] = true
}

// Cancel disarms kind; cancelling a disarmed timer is a no-op
func (s *Scheduler) Cancel(kind TimerKind) {
	s.deadlines[kind] = time.Time{}
	s.armed[kind] = false
}

// Deadline returns the armed deadline of kind
func (s *Scheduler) Deadline(kind TimerKind) (time.Time, bool) {
	return s.deadlines[kind], s.armed[kind]
}

// Next returns the earliest armed deadline
func (s *Scheduler) Next() (time.Time, bool) {
	var next time.Time
	found := false
	for k := TimerKind(0); k < timerCount; k++ {
		if s.armed[k] && (!found || s.deadlines[k].Before(next)) {
			next = s.deadlines[k]
			found = true
		}
	}
	return next, found
}

// Pop disarms and returns the earliest timer due at now
// Ties resolve in TimerKind order, so a due long-press is handled before inactivity
func (s *Scheduler) Pop(now time.Time) (TimerKind, bool) {
	best := timerCount
	for k := TimerKind(0); k < timerCount; k++ {
		if !s.armed[k] || now.Before(s.deadlines[k]) {
			continue
		}
		if best == timerCount || s.deadlines[k].Before(s.deadlines[best]) {
			best = k
		}
	}
	if best == timerCount {
		return 0, false
	}
	s.Cancel(best)
	return best, true
}

// Pending returns the number of armed timers
func (s *Scheduler) Pending() int {
	n := 0
	for _, a := range s.armed {
		if a {
			n++
		}
	}
	return n
}

// Clear disarms every timer
func (s *Scheduler) Clear() {
	for k := TimerKind(0); k < timerCount; k++ {
		s.Cancel(k)
	}
}
