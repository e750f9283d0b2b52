package memory

import (
	"math/rand/v2"
	"testing"

	"github.com/aaronzipp/memory-desktop/internal/clock"
)

type recorder struct {
	events []Event
}

func (r *recorder) emit(ev Event) { r.events = append(r.events, ev) }

func (r *recorder) sink(evs []Event) { r.events = append(r.events, evs...) }

func (r *recorder) reset() { r.events = nil }

func (r *recorder) ofKind(k EventKind) []Event {
	var out []Event
	for _, ev := range r.events {
		if ev.Kind == k {
			out = append(out, ev)
		}
	}
	return out
}

func seeded() Rand {
	return rand.New(rand.NewPCG(7, 11))
}

func newTestBoard(t *testing.T) (*Board, *clock.Manual, *recorder, *[]Summary) {
	t.Helper()
	clk := clock.NewManual()
	rec := &recorder{}
	var done []Summary
	b := NewBoard(BoardOptions{
		Scheduler: clk,
		Rand:      seeded(),
	}, rec.emit, func(s Summary) { done = append(done, s) })
	return b, clk, rec, &done
}

// partnerOf returns the other tile carrying id's symbol.
func partnerOf(t *testing.T, tiles []Tile, id int) int {
	t.Helper()
	for _, tile := range tiles {
		if tile.ID != id && tile.Symbol == tiles[id].Symbol {
			return tile.ID
		}
	}
	t.Fatalf("no partner for tile %d", id)
	return -1
}

// strangerOf returns a tile whose symbol differs from id's.
func strangerOf(t *testing.T, tiles []Tile, id int) int {
	t.Helper()
	for _, tile := range tiles {
		if tile.Symbol != tiles[id].Symbol {
			return tile.ID
		}
	}
	t.Fatalf("no mismatching tile for %d", id)
	return -1
}
