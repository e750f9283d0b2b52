package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/aaronzipp/memory-desktop/internal/memory"
	"github.com/aaronzipp/memory-desktop/internal/models"
	"go.uber.org/zap"
)

var errRoomNotFound = errors.New("room not found")

// getRoom looks up a room and records activity on it
func (ctx *Context) getRoom(roomID string) (*models.Room, error) {
	room, exists := ctx.Rooms.Get(roomID)
	if !exists {
		return nil, fmt.Errorf("%w: %s", errRoomNotFound, roomID)
	}
	room.Lock()
	room.Touch(ctx.now())
	room.Unlock()
	return room, nil
}

// writeError maps game errors to HTTP status codes
func (ctx *Context) writeError(w http.ResponseWriter, roomID string, err error) {
	switch {
	case errors.Is(err, errRoomNotFound):
		http.Error(w, "Room not found", http.StatusNotFound)
	case memory.IsInvalidInput(err):
		ctx.Log.Debug("rejected input", zap.String("room", roomID), zap.Error(err))
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		ctx.Log.Error("request failed", zap.String("room", roomID), zap.Error(err))
		http.Error(w, "Internal error", http.StatusInternalServerError)
	}
}
