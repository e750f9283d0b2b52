package sse

import "strconv"

// SSE event type constants
const (
	EventPanel    = "panel"
	EventAttempts = "attempts"
	EventElapsed  = "elapsed"
	EventSummary  = "summary"
	EventError    = "error-message"
)

// TileEvent is the event name a single tile's element swaps on.
func TileEvent(id int) string {
	return "tile-" + strconv.Itoa(id)
}
