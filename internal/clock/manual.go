package clock

import (
	"sync"
	"time"
)

// Manual is a Scheduler whose time only moves when Advance is called.
// Callbacks run synchronously on the goroutine calling Advance, in due-time
// order (creation order breaks ties).
type Manual struct {
	mu     sync.Mutex
	now    time.Time
	seq    uint64
	timers []*manualTimer
}

type manualTimer struct {
	m      *Manual
	seq    uint64
	at     time.Time
	period time.Duration
	f      func()
	active bool
}

// NewManual returns a Manual clock starting at the zero time.
func NewManual() *Manual {
	return &Manual{}
}

// Now returns the manual clock's current time.
func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// AfterFunc schedules f to run once d after the current manual time.
func (m *Manual) AfterFunc(d time.Duration, f func()) Stopper {
	return m.add(d, 0, f)
}

// Every schedules f to run every d.
func (m *Manual) Every(d time.Duration, f func()) Stopper {
	return m.add(d, d, f)
}

func (m *Manual) add(d, period time.Duration, f func()) *manualTimer {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	t := &manualTimer{
		m:      m,
		seq:    m.seq,
		at:     m.now.Add(d),
		period: period,
		f:      f,
		active: true,
	}
	m.timers = append(m.timers, t)
	return t
}

// Advance moves the clock forward by d, running every callback that
// falls due on the way. Callbacks may schedule or stop other timers.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.now.Add(d)
	m.mu.Unlock()

	for {
		m.mu.Lock()
		next := m.nextDue(target)
		if next == nil {
			m.now = target
			m.mu.Unlock()
			return
		}
		m.now = next.at
		if next.period > 0 {
			next.at = next.at.Add(next.period)
		} else {
			next.active = false
			m.remove(next)
		}
		f := next.f
		m.mu.Unlock()

		// Run without holding the lock so f can reschedule.
		f()
	}
}

// Pending returns the number of active timers.
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.timers)
}

// nextDue must be called with m.mu held.
func (m *Manual) nextDue(target time.Time) *manualTimer {
	var next *manualTimer
	for _, t := range m.timers {
		if t.at.After(target) {
			continue
		}
		if next == nil || t.at.Before(next.at) || (t.at.Equal(next.at) && t.seq < next.seq) {
			next = t
		}
	}
	return next
}

// remove must be called with m.mu held.
func (m *Manual) remove(t *manualTimer) {
	for i, other := range m.timers {
		if other == t {
			m.timers = append(m.timers[:i], m.timers[i+1:]...)
			return
		}
	}
}

func (t *manualTimer) Stop() bool {
	t.m.mu.Lock()
	defer t.m.mu.Unlock()
	if !t.active {
		return false
	}
	t.active = false
	t.m.remove(t)
	return true
}
