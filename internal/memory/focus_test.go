package memory

import (
	"errors"
	"testing"
)

func TestFocusWraps(t *testing.T) {
	rec := &recorder{}
	f := NewFocusNavigator(rec.emit)

	if _, err := f.Move(Next); !errors.Is(err, ErrNoTiles) {
		t.Fatalf("move with no tiles err = %v", err)
	}

	f.Reset(4)
	if got := rec.ofKind(EventFocus); len(got) != 1 || got[0].TileID != 0 || got[0].PreviousTileID != -1 {
		t.Fatalf("reset focus events = %+v", got)
	}
	rec.reset()

	steps := []struct {
		dir  Direction
		want int
		prev int
	}{
		{Previous, 3, 0},
		{Previous, 2, 3},
		{Next, 3, 2},
		{Next, 0, 3},
		{Next, 1, 0},
	}
	for i, st := range steps {
		got, err := f.Move(st.dir)
		if err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		if got != st.want {
			t.Fatalf("step %d: %s -> %d, want %d", i, st.dir, got, st.want)
		}
		ev := rec.events[len(rec.events)-1]
		if ev.TileID != st.want || ev.PreviousTileID != st.prev {
			t.Fatalf("step %d: focus event %+v", i, ev)
		}
	}
	if len(rec.events) != len(steps) {
		t.Fatalf("expected one focus event per move, got %d", len(rec.events))
	}
}

func TestFocusUnknownDirection(t *testing.T) {
	f := NewFocusNavigator(nil)
	f.Reset(4)
	if _, err := f.Move(Direction(9)); !errors.Is(err, ErrUnknownDirection) {
		t.Fatalf("err = %v", err)
	}
	if idx, _ := f.Index(); idx != 0 {
		t.Fatalf("index moved to %d", idx)
	}
}

func TestParseDirection(t *testing.T) {
	cases := map[string]Direction{
		"previous": Previous,
		"Left":     Previous,
		"next":     Next,
		" right ":  Next,
	}
	for in, want := range cases {
		got, err := ParseDirection(in)
		if err != nil || got != want {
			t.Fatalf("ParseDirection(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseDirection("up"); !IsInvalidInput(err) {
		t.Fatalf("ParseDirection(up) err = %v", err)
	}
}

func TestCommandForKey(t *testing.T) {
	cases := map[string]Command{
		"ArrowLeft":  CommandPrevious,
		"ArrowRight": CommandNext,
		" ":          CommandActivate,
		"Enter":      CommandActivate,
	}
	for key, want := range cases {
		got, err := CommandForKey(key)
		if err != nil || got != want {
			t.Fatalf("CommandForKey(%q) = %v, %v", key, got, err)
		}
	}
	if _, err := CommandForKey("q"); !errors.Is(err, ErrUnknownKey) {
		t.Fatalf("unknown key err = %v", err)
	}
}
