package memory

import "errors"

// Invalid input. These are reported to the caller and never change state.
// Flips that are merely not allowed right now (locked board, matched or
// face-up tile) are not errors; see FlipIgnored.
var (
	ErrInvalidTileCount  = errors.New("invalid tile count")
	ErrNoTiles           = errors.New("no tiles dealt")
	ErrUnknownTile       = errors.New("unknown tile")
	ErrInvalidTransition = errors.New("invalid session transition")
	ErrUnknownDirection  = errors.New("unknown direction")
	ErrUnknownKey        = errors.New("unknown key")
)

var invalidInput = []error{
	ErrInvalidTileCount,
	ErrNoTiles,
	ErrUnknownTile,
	ErrInvalidTransition,
	ErrUnknownDirection,
	ErrUnknownKey,
}

// IsInvalidInput reports whether err is (or wraps) one of the invalid input
// errors above.
func IsInvalidInput(err error) bool {
	for _, target := range invalidInput {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
