package memory

import (
	"time"

	"github.com/aaronzipp/memory-desktop/internal/clock"
	"go.uber.org/zap"
)

// Timer counts whole seconds of play. It has no pause: Start re-zeroes and
// Stop freezes the value for reporting.
type Timer struct {
	sched    clock.Scheduler
	interval time.Duration
	onTick   func(seconds int)
	log      *zap.Logger

	elapsed int
	running bool
	gen     uint64
	ticker  clock.Stopper
}

// NewTimer returns a stopped timer. onTick is called with the new elapsed
// value after every tick and may be nil.
func NewTimer(sched clock.Scheduler, interval time.Duration, onTick func(int), log *zap.Logger) *Timer {
	if log == nil {
		log = zap.NewNop()
	}
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	return &Timer{
		sched:    sched,
		interval: interval,
		onTick:   onTick,
		log:      log,
	}
}

// Start resets elapsed to zero and begins ticking.
func (t *Timer) Start() {
	t.cancel()
	t.gen++
	t.elapsed = 0
	t.running = true
	gen := t.gen
	t.ticker = t.sched.Every(t.interval, func() { t.tick(gen) })
}

// Stop halts the timer and keeps the last value.
func (t *Timer) Stop() {
	t.running = false
	t.cancel()
}

// Elapsed returns whole seconds counted since the last Start.
func (t *Timer) Elapsed() int {
	return t.elapsed
}

// Running reports whether the timer is counting.
func (t *Timer) Running() bool {
	return t.running
}

func (t *Timer) cancel() {
	if t.ticker != nil {
		t.ticker.Stop()
		t.ticker = nil
	}
}

func (t *Timer) tick(gen uint64) {
	if !t.running || gen != t.gen {
		t.log.Debug("dropping stale timer tick", zap.Uint64("gen", gen), zap.Uint64("current", t.gen))
		return
	}
	t.elapsed++
	if t.onTick != nil {
		t.onTick(t.elapsed)
	}
}
