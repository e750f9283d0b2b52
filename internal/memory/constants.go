package memory

import "time"

const (
	// DefaultResolveDelay is how long both faces of an attempt stay visible
	// before the match or mismatch is applied. It must be at least the
	// flip animation length.
	DefaultResolveDelay = time.Second

	// DefaultTickInterval is the period of the round timer
	DefaultTickInterval = time.Second

	// MinTileCount is the smallest board that can be dealt
	MinTileCount = 4
)

// SupportedTileCounts lists the board sizes offered on the start page,
// largest first.
var SupportedTileCounts = []int{16, 8, 4}

// IsSupportedTileCount reports whether n is one of SupportedTileCounts.
func IsSupportedTileCount(n int) bool {
	for _, c := range SupportedTileCounts {
		if c == n {
			return true
		}
	}
	return false
}

// Columns returns how many grid columns a board of n tiles renders with.
func Columns(n int) int {
	if n <= MinTileCount {
		return 2
	}
	return 4
}
