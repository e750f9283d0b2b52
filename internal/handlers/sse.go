package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/aaronzipp/memory-desktop/internal/models"
	"github.com/aaronzipp/memory-desktop/internal/render"
	"github.com/aaronzipp/memory-desktop/internal/sse"
	"go.uber.org/zap"
)

// HandleSSE streams a room's game events via Server-Sent Events
func (ctx *Context) HandleSSE(w http.ResponseWriter, r *http.Request) {
	roomID := strings.Trim(strings.TrimPrefix(r.URL.Path, "/sse/"), "/")
	if roomID == "" || strings.Contains(roomID, "/") {
		http.Error(w, "Invalid URL", http.StatusBadRequest)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming unsupported", http.StatusInternalServerError)
		return
	}

	// Set headers for SSE
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no") // Disable buffering in nginx/proxies

	room, err := ctx.getRoom(roomID)
	if err != nil {
		ctx.Log.Debug("sse for unknown room", zap.String("room", roomID))
		writeEvent(w, models.SSEMessage{Event: sse.EventError, Data: render.ErrorMessage("This game window has closed.")})
		flusher.Flush()
		return
	}

	// Immediately flush headers to establish SSE connection
	flusher.Flush()

	clientChan := make(chan models.SSEMessage, ctx.Config.SSEBufferSize)
	ctx.Hub.AddClient(room, clientChan)
	defer ctx.Hub.RemoveClient(room, clientChan)

	// Send the current panel so a late subscriber starts in sync
	snap := room.Session.Snapshot()
	writeEvent(w, models.SSEMessage{Event: sse.EventPanel, Data: render.Panel(room.ID, snap)})
	flusher.Flush()

	// Listen for updates
	reqCtx := r.Context()
	for {
		select {
		case <-reqCtx.Done():
			ctx.Log.Debug("sse client disconnected", zap.String("room", room.ID))
			return
		case msg := <-clientChan:
			writeEvent(w, msg)
			flusher.Flush()
		}
	}
}

func writeEvent(w http.ResponseWriter, msg models.SSEMessage) {
	fmt.Fprintf(w, "event: %s\ndata: %s\n\n", msg.Event, msg.Data)
}
