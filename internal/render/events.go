package render

import (
	"github.com/aaronzipp/memory-desktop/internal/memory"
	"github.com/aaronzipp/memory-desktop/internal/models"
	"github.com/aaronzipp/memory-desktop/internal/sse"
)

// Messages turns one batch of session events into SSE messages. Fragments
// are rendered from snap, taken after the batch, so a tile is always drawn
// in its latest state. A batch that deals or changes phase redraws the
// whole panel instead of individual pieces.
func Messages(roomID string, events []memory.Event, snap memory.Snapshot) []models.SSEMessage {
	var msgs []models.SSEMessage
	redraw := false
	for _, ev := range events {
		if ev.Kind == memory.EventDealt || ev.Kind == memory.EventPhase {
			redraw = true
		}
	}

	tile := func(id int) {
		if id < 0 || id >= len(snap.Tiles) {
			return
		}
		msgs = append(msgs, models.SSEMessage{
			Event: sse.TileEvent(id),
			Data:  Tile(roomID, snap.Tiles[id], id == snap.Focus),
		})
	}

	for _, ev := range events {
		switch ev.Kind {
		case memory.EventRoundComplete:
			msgs = append(msgs, models.SSEMessage{Event: sse.EventSummary, Data: Summary(roomID, ev.Summary)})
		case memory.EventTileFace:
			if !redraw {
				tile(ev.TileID)
			}
		case memory.EventFocus:
			if !redraw {
				tile(ev.PreviousTileID)
				tile(ev.TileID)
			}
		case memory.EventAttempts:
			if !redraw {
				msgs = append(msgs, models.SSEMessage{Event: sse.EventAttempts, Data: Attempts(ev.Count)})
			}
		case memory.EventElapsed:
			if !redraw {
				msgs = append(msgs, models.SSEMessage{Event: sse.EventElapsed, Data: Elapsed(ev.Seconds)})
			}
		}
	}

	if redraw {
		msgs = append(msgs, models.SSEMessage{Event: sse.EventPanel, Data: Panel(roomID, snap)})
	}
	return msgs
}
