package memory

// EventKind names an outbound notification for the UI shell.
type EventKind string

const (
	EventTileFace      EventKind = "tile-face"
	EventAttempts      EventKind = "attempts"
	EventElapsed       EventKind = "elapsed"
	EventRoundComplete EventKind = "round-complete"
	EventFocus         EventKind = "focus"
	EventDealt         EventKind = "dealt"
	EventPhase         EventKind = "phase"
)

// Summary is reported when the last pair of a round is matched.
type Summary struct {
	Attempts       int `json:"attempts"`
	ElapsedSeconds int `json:"elapsedSeconds"`
}

// Event is a single outbound notification. Only the fields relevant to Kind
// are set:
//
//	EventTileFace      TileID, Symbol, FaceUp, Matched
//	EventAttempts      Count
//	EventElapsed       Seconds
//	EventRoundComplete Summary
//	EventFocus         TileID, PreviousTileID (-1 when nothing had focus)
//	EventDealt         TileCount
//	EventPhase         Phase
type Event struct {
	Kind           EventKind
	TileID         int
	PreviousTileID int
	Symbol         Symbol
	FaceUp         bool
	Matched        bool
	Count          int
	Seconds        int
	TileCount      int
	Summary        Summary
	Phase          Phase
}

// Emitter receives events in the order they happen.
type Emitter func(Event)

func tileFaceEvent(t Tile) Event {
	return Event{
		Kind:    EventTileFace,
		TileID:  t.ID,
		Symbol:  t.Visible(),
		FaceUp:  t.FaceUp,
		Matched: t.Matched,
	}
}
