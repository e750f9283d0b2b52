// Package clock schedules one-shot and periodic callbacks.
//
// Game code never calls time.AfterFunc directly; it goes through a Scheduler
// so tests can drive time by hand with Manual.
package clock

import (
	"sync"
	"time"
)

// Stopper cancels a scheduled callback. Stop reports whether the callback
// was still active when it was cancelled.
type Stopper interface {
	Stop() bool
}

// Scheduler runs callbacks after a delay or on a fixed period.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Stopper
	Every(d time.Duration, f func()) Stopper
}

// Real schedules callbacks on the wall clock.
type Real struct{}

// AfterFunc runs f once in its own goroutine after d.
func (Real) AfterFunc(d time.Duration, f func()) Stopper {
	return time.AfterFunc(d, f)
}

// Every runs f every d until stopped. A tick that is already in flight when
// Stop is called may still run once.
func (Real) Every(d time.Duration, f func()) Stopper {
	t := &ticker{
		ticker: time.NewTicker(d),
		done:   make(chan struct{}),
	}
	go t.loop(f)
	return t
}

type ticker struct {
	ticker *time.Ticker
	done   chan struct{}
	once   sync.Once
}

func (t *ticker) loop(f func()) {
	for {
		select {
		case <-t.done:
			return
		case <-t.ticker.C:
			f()
		}
	}
}

func (t *ticker) Stop() bool {
	stopped := false
	t.once.Do(func() {
		t.ticker.Stop()
		close(t.done)
		stopped = true
	})
	return stopped
}
