package memory

import (
	"fmt"
	"strings"
)

// Direction moves the focus cursor.
type Direction int

const (
	Previous Direction = iota
	Next
)

func (d Direction) String() string {
	if d == Previous {
		return "previous"
	}
	return "next"
}

// ParseDirection accepts "previous"/"prev"/"left" and "next"/"right".
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "previous", "prev", "left":
		return Previous, nil
	case "next", "right":
		return Next, nil
	}
	return Next, fmt.Errorf("%w: %q", ErrUnknownDirection, s)
}

// FocusNavigator keeps a keyboard cursor over the dealt tiles. It stores an
// index only and never touches tile state; matched tiles stay reachable.
type FocusNavigator struct {
	index int
	count int
	emit  Emitter
}

// NewFocusNavigator returns a navigator with no tiles.
func NewFocusNavigator(emit Emitter) *FocusNavigator {
	if emit == nil {
		emit = func(Event) {}
	}
	return &FocusNavigator{emit: emit}
}

// Reset puts focus on the first of count tiles.
func (f *FocusNavigator) Reset(count int) {
	f.count = count
	f.index = 0
	if count > 0 {
		f.emit(Event{Kind: EventFocus, TileID: 0, PreviousTileID: -1})
	}
}

// Clear drops the cursor when the tiles are discarded.
func (f *FocusNavigator) Clear() {
	f.count = 0
	f.index = 0
}

// Move shifts focus one step, wrapping at both ends, and returns the new
// index. Focus is cleared from the old tile and set on the new one in a
// single event.
func (f *FocusNavigator) Move(dir Direction) (int, error) {
	if f.count == 0 {
		return 0, ErrNoTiles
	}
	prev := f.index
	switch dir {
	case Previous:
		f.index--
		if f.index < 0 {
			f.index = f.count - 1
		}
	case Next:
		f.index++
		if f.index > f.count-1 {
			f.index = 0
		}
	default:
		return prev, fmt.Errorf("%w: %d", ErrUnknownDirection, dir)
	}
	f.emit(Event{Kind: EventFocus, TileID: f.index, PreviousTileID: prev})
	return f.index, nil
}

// Index returns the focused tile, or false when nothing is dealt.
func (f *FocusNavigator) Index() (int, bool) {
	if f.count == 0 {
		return 0, false
	}
	return f.index, true
}
