package memory

// Tile is one card on the board. ID is the tile's position, assigned at deal
// time and stable for the round.
type Tile struct {
	ID      int    `json:"id"`
	Symbol  Symbol `json:"symbol"`
	FaceUp  bool   `json:"faceUp"`
	Matched bool   `json:"matched"`
	Locked  bool   `json:"locked"`
}

// Flippable reports whether the tile itself accepts a flip. The board-wide
// resolution lock is checked separately by Board.
func (t Tile) Flippable() bool {
	return !t.Locked && !t.Matched && !t.FaceUp
}

// Visible returns the symbol if the player can currently see it, or "".
func (t Tile) Visible() Symbol {
	if t.FaceUp || t.Matched {
		return t.Symbol
	}
	return ""
}
