package clock

import (
	"testing"
	"time"
)

func TestManualAfterFuncFiresOnce(t *testing.T) {
	m := NewManual()
	calls := 0
	m.AfterFunc(time.Second, func() { calls++ })

	m.Advance(999 * time.Millisecond)
	if calls != 0 {
		t.Fatalf("fired early: calls=%d", calls)
	}
	m.Advance(time.Millisecond)
	if calls != 1 {
		t.Fatalf("expected 1 call, got %d", calls)
	}
	m.Advance(10 * time.Second)
	if calls != 1 {
		t.Fatalf("one-shot fired again: calls=%d", calls)
	}
	if m.Pending() != 0 {
		t.Fatalf("expected no pending timers, got %d", m.Pending())
	}
}

func TestManualEveryAndStop(t *testing.T) {
	m := NewManual()
	calls := 0
	s := m.Every(time.Second, func() { calls++ })

	m.Advance(3500 * time.Millisecond)
	if calls != 3 {
		t.Fatalf("expected 3 ticks, got %d", calls)
	}
	if !s.Stop() {
		t.Fatal("Stop on active ticker returned false")
	}
	if s.Stop() {
		t.Fatal("second Stop returned true")
	}
	m.Advance(5 * time.Second)
	if calls != 3 {
		t.Fatalf("ticked after stop: calls=%d", calls)
	}
}

func TestManualOrderAndReentrancy(t *testing.T) {
	m := NewManual()
	var order []string
	m.AfterFunc(2*time.Second, func() { order = append(order, "b") })
	m.AfterFunc(time.Second, func() {
		order = append(order, "a")
		m.AfterFunc(500*time.Millisecond, func() { order = append(order, "a2") })
	})

	m.Advance(3 * time.Second)
	want := []string{"a", "a2", "b"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
	if got := m.Now(); !got.Equal(time.Time{}.Add(3 * time.Second)) {
		t.Fatalf("Now = %v", got)
	}
}
