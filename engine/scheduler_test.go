package engine

import (
	"testing"
	"time"
)

func TestSchedulerPopOrder(t *testing.T) {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	s := NewScheduler()
	s.Schedule(TimerInactivity, base.Add(10*time.Second))
	s.Schedule(TimerLongPress, base.Add(800*time.Millisecond))

	if _, ok := s.Pop(base.Add(799 * time.Millisecond)); ok {
		t.Fatalf("nothing should be due before 800ms")
	}
	if next, ok := s.Next(); !ok || !next.Equal(base.Add(800*time.Millisecond)) {
		t.Errorf("Next = %v, %v", next, ok)
	}

	k, ok := s.Pop(base.Add(time.Minute))
	if !ok || k != TimerLongPress {
		t.Fatalf("expected long-press first, got %v %v", k, ok)
	}
	k, ok = s.Pop(base.Add(time.Minute))
	if !ok || k != TimerInactivity {
		t.Fatalf("expected inactivity second, got %v %v", k, ok)
	}
	if s.Pending() != 0 {
		t.Errorf("expected no pending timers, got %d", s.Pending())
	}
}

func TestSchedulerRescheduleAndClear(t *testing.T) {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	s := NewScheduler()
	s.Schedule(TimerInactivity, base)
	s.Schedule(TimerInactivity, base.Add(time.Second))
	if s.Pending() != 1 {
		t.Errorf("rescheduling must not add a timer, pending=%d", s.Pending())
	}
	if _, ok := s.Pop(base); ok {
		t.Errorf("rescheduled timer fired at old deadline")
	}
	s.Schedule(TimerLongPress, base)
	s.Clear()
	if s.Pending() != 0 {
		t.Errorf("clear left %d timers", s.Pending())
	}
	s.Cancel(TimerLongPress)
}
