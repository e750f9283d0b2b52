package render

import (
	htmlpkg "html"
	"strconv"
	"strings"

	"github.com/aaronzipp/memory-desktop/internal/memory"
	"github.com/aaronzipp/memory-desktop/internal/sse"
)

// Panel generates the game panel for the session's current phase
func Panel(roomID string, snap memory.Snapshot) string {
	switch snap.Phase {
	case memory.PhasePlaying:
		return Board(roomID, snap)
	case memory.PhaseFinished:
		if snap.Summary != nil {
			return Summary(roomID, *snap.Summary)
		}
		return Board(roomID, snap)
	default:
		return StartPage(roomID)
	}
}

// StartPage generates the tile count selector
func StartPage(roomID string) string {
	var b strings.Builder
	b.WriteString(`<div class="start-page"><h1>Memory</h1><h2>Select how many tiles you want to play with:</h2><div class="buttons">`)
	for _, n := range memory.SupportedTileCounts {
		cols := memory.Columns(n)
		b.WriteString(`<form hx-post="/room/`)
		b.WriteString(roomID)
		b.WriteString(`/select" hx-swap="none"><input type="hidden" name="tiles" value="`)
		b.WriteString(strconv.Itoa(n))
		b.WriteString(`"><button type="submit" class="btn btn-primary">`)
		b.WriteString(strconv.Itoa(cols))
		b.WriteString(` x `)
		b.WriteString(strconv.Itoa(n / cols))
		b.WriteString(` tiles</button></form>`)
	}
	b.WriteString(`</div></div>`)
	return b.String()
}

// Board generates the counters and the tile grid
func Board(roomID string, snap memory.Snapshot) string {
	var b strings.Builder
	b.WriteString(`<div class="counters"><span id="attempts" sse-swap="`)
	b.WriteString(sse.EventAttempts)
	b.WriteString(`">`)
	b.WriteString(Attempts(snap.Attempts))
	b.WriteString(`</span><span id="elapsed" sse-swap="`)
	b.WriteString(sse.EventElapsed)
	b.WriteString(`">`)
	b.WriteString(Elapsed(snap.ElapsedSeconds))
	b.WriteString(`</span></div><div id="game-tiles" class="grid cols-`)
	b.WriteString(strconv.Itoa(memory.Columns(len(snap.Tiles))))
	b.WriteString(`">`)
	for _, t := range snap.Tiles {
		b.WriteString(Tile(roomID, t, t.ID == snap.Focus))
	}
	b.WriteString(`</div>`)
	return b.String()
}

// Tile generates one tile; it replaces itself when its SSE event arrives
func Tile(roomID string, t memory.Tile, focused bool) string {
	classes := []string{"tile"}
	if t.FaceUp {
		classes = append(classes, "flipped")
	}
	if t.Matched {
		classes = append(classes, "matched")
	}
	if focused {
		classes = append(classes, "focus")
	}

	id := strconv.Itoa(t.ID)
	var b strings.Builder
	b.WriteString(`<div id="tile-`)
	b.WriteString(id)
	b.WriteString(`" class="`)
	b.WriteString(strings.Join(classes, " "))
	b.WriteString(`" sse-swap="`)
	b.WriteString(sse.TileEvent(t.ID))
	b.WriteString(`" hx-swap="outerHTML"><button type="button" hx-post="/room/`)
	b.WriteString(roomID)
	b.WriteString(`/tile/`)
	b.WriteString(id)
	b.WriteString(`" hx-swap="none">`)
	switch {
	case t.Matched:
		b.WriteString(`<span class="front matched">✓</span>`)
	case t.FaceUp:
		b.WriteString(`<span class="front">`)
		b.WriteString(htmlpkg.EscapeString(t.Symbol.Label()))
		b.WriteString(`</span>`)
	default:
		b.WriteString(`<span class="back"></span>`)
	}
	b.WriteString(`</button></div>`)
	return b.String()
}

// Attempts generates the flip counter text
func Attempts(n int) string {
	return "Flips: " + strconv.Itoa(n)
}

// Elapsed generates the timer text
func Elapsed(seconds int) string {
	return "Time: " + strconv.Itoa(seconds) + " s"
}

// Summary generates the finished page with a Play Again button
func Summary(roomID string, sum memory.Summary) string {
	var b strings.Builder
	b.WriteString(`<div class="end-page"><h1>Game finished!</h1><p id="summary-attempts">Number of attempts: `)
	b.WriteString(strconv.Itoa(sum.Attempts))
	b.WriteString(`</p><p id="summary-time">Time: `)
	b.WriteString(strconv.Itoa(sum.ElapsedSeconds))
	b.WriteString(` s</p><form hx-post="/room/`)
	b.WriteString(roomID)
	b.WriteString(`/restart" hx-swap="none"><button type="submit" class="btn btn-primary">Play Again</button></form></div>`)
	return b.String()
}

// ErrorMessage generates an inline error notice
func ErrorMessage(msg string) string {
	return `<p class="error">` + htmlpkg.EscapeString(msg) + `</p>`
}
