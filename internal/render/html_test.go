package render

import (
	"strings"
	"testing"

	"github.com/aaronzipp/memory-desktop/internal/memory"
	"github.com/aaronzipp/memory-desktop/internal/sse"
)

func playingSnapshot() memory.Snapshot {
	return memory.Snapshot{
		Phase: memory.PhasePlaying,
		Tiles: []memory.Tile{
			{ID: 0, Symbol: "slack", FaceUp: true, Locked: true},
			{ID: 1, Symbol: "reddit"},
			{ID: 2, Symbol: "slack"},
			{ID: 3, Symbol: "reddit", FaceUp: true, Matched: true, Locked: true},
		},
		Focus:    1,
		Attempts: 3,
	}
}

func TestTileHidesFaceDownSymbol(t *testing.T) {
	snap := playingSnapshot()
	down := Tile("r", snap.Tiles[1], false)
	if strings.Contains(strings.ToLower(down), "reddit") {
		t.Fatalf("face-down tile leaks its symbol: %s", down)
	}
	up := Tile("r", snap.Tiles[0], true)
	for _, want := range []string{"Slack", "flipped", "focus", `sse-swap="tile-0"`, `hx-post="/room/r/tile/0"`} {
		if !strings.Contains(up, want) {
			t.Fatalf("face-up tile missing %q: %s", want, up)
		}
	}
	if m := Tile("r", snap.Tiles[3], false); !strings.Contains(m, "matched") {
		t.Fatalf("matched tile not marked: %s", m)
	}
}

func TestPanelByPhase(t *testing.T) {
	start := Panel("r", memory.Snapshot{Phase: memory.PhaseStart})
	for _, n := range []string{`value="16"`, `value="8"`, `value="4"`, "2 x 2 tiles", "4 x 4 tiles"} {
		if !strings.Contains(start, n) {
			t.Fatalf("start page missing %q: %s", n, start)
		}
	}

	board := Panel("r", playingSnapshot())
	if !strings.Contains(board, "Flips: 3") || !strings.Contains(board, "cols-2") {
		t.Fatalf("board panel = %s", board)
	}

	done := Panel("r", memory.Snapshot{Phase: memory.PhaseFinished, Summary: &memory.Summary{Attempts: 4, ElapsedSeconds: 12}})
	for _, want := range []string{"Game finished!", "Number of attempts: 4", "Time: 12 s", "/room/r/restart"} {
		if !strings.Contains(done, want) {
			t.Fatalf("summary missing %q: %s", want, done)
		}
	}
}

func TestMessagesForFocusMove(t *testing.T) {
	snap := playingSnapshot()
	msgs := Messages("r", []memory.Event{
		{Kind: memory.EventFocus, TileID: 1, PreviousTileID: 0},
		{Kind: memory.EventAttempts, Count: 3},
	}, snap)

	if len(msgs) != 3 {
		t.Fatalf("got %d messages: %+v", len(msgs), msgs)
	}
	if msgs[0].Event != "tile-0" || strings.Contains(msgs[0].Data, "focus") {
		t.Fatalf("old focus not cleared: %+v", msgs[0])
	}
	if msgs[1].Event != "tile-1" || !strings.Contains(msgs[1].Data, "focus") {
		t.Fatalf("new focus not set: %+v", msgs[1])
	}
	if msgs[2].Event != sse.EventAttempts || msgs[2].Data != "Flips: 3" {
		t.Fatalf("attempts message = %+v", msgs[2])
	}
}

func TestMessagesRedrawPanelOnPhase(t *testing.T) {
	snap := playingSnapshot()
	msgs := Messages("r", []memory.Event{
		{Kind: memory.EventDealt, TileCount: 4},
		{Kind: memory.EventAttempts},
		{Kind: memory.EventFocus, TileID: 0, PreviousTileID: -1},
		{Kind: memory.EventPhase, Phase: memory.PhasePlaying},
	}, snap)
	if len(msgs) != 1 || msgs[0].Event != sse.EventPanel {
		t.Fatalf("expected a single panel redraw, got %+v", msgs)
	}
}
