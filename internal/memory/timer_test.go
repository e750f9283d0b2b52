package memory

import (
	"testing"

	"github.com/aaronzipp/memory-desktop/internal/clock"
)

func TestTimerStartStop(t *testing.T) {
	clk := clock.NewManual()
	var seen []int
	tm := NewTimer(clk, DefaultTickInterval, func(s int) { seen = append(seen, s) }, nil)

	tm.Start()
	clk.Advance(3 * DefaultTickInterval)
	if tm.Elapsed() != 3 || len(seen) != 3 || seen[2] != 3 {
		t.Fatalf("elapsed=%d seen=%v", tm.Elapsed(), seen)
	}

	tm.Stop()
	clk.Advance(5 * DefaultTickInterval)
	if tm.Elapsed() != 3 || tm.Running() {
		t.Fatalf("timer moved after stop: elapsed=%d running=%v", tm.Elapsed(), tm.Running())
	}

	tm.Start()
	if tm.Elapsed() != 0 {
		t.Fatalf("restart did not re-zero: %d", tm.Elapsed())
	}
	clk.Advance(DefaultTickInterval)
	if tm.Elapsed() != 1 {
		t.Fatalf("elapsed after restart = %d", tm.Elapsed())
	}
}

func TestTimerDropsStaleTick(t *testing.T) {
	clk := clock.NewManual()
	tm := NewTimer(clk, DefaultTickInterval, nil, nil)
	tm.Start()
	old := tm.gen
	tm.Start()

	tm.tick(old)
	if tm.Elapsed() != 0 {
		t.Fatalf("stale tick applied: elapsed=%d", tm.Elapsed())
	}

	tm.Stop()
	tm.tick(tm.gen)
	if tm.Elapsed() != 0 {
		t.Fatalf("tick after stop applied: elapsed=%d", tm.Elapsed())
	}
}

func TestFlipCounter(t *testing.T) {
	var c FlipCounter
	c.Increment()
	if got := c.Increment(); got != 2 {
		t.Fatalf("Increment = %d, want 2", got)
	}
	c.Reset()
	if c.Count() != 0 {
		t.Fatalf("Count after reset = %d", c.Count())
	}
}
