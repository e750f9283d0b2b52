package handlers

import (
	"html/template"
	"net/http"
	"time"

	"github.com/aaronzipp/memory-desktop/internal/clock"
	"github.com/aaronzipp/memory-desktop/internal/config"
	"github.com/aaronzipp/memory-desktop/internal/memory"
	"github.com/aaronzipp/memory-desktop/internal/models"
	"github.com/aaronzipp/memory-desktop/internal/render"
	"github.com/aaronzipp/memory-desktop/internal/sse"
	"github.com/aaronzipp/memory-desktop/internal/store"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Context holds shared application dependencies
type Context struct {
	Rooms     *store.RoomStore
	Hub       *sse.Hub
	Templates *template.Template
	Config    config.Config
	Log       *zap.Logger
	Scheduler clock.Scheduler
	Now       func() time.Time
}

// HandleIndex serves the landing page
func (ctx *Context) HandleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := ctx.Templates.ExecuteTemplate(w, "index.tmpl", nil); err != nil {
		ctx.Log.Error("render index", zap.Error(err))
	}
}

// HandleCreateRoom opens a new memory game window
func (ctx *Context) HandleCreateRoom(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	room := ctx.NewRoom()
	ctx.Rooms.Set(room.ID, room)
	ctx.Log.Info("created room", zap.String("room", room.ID), zap.Int("rooms", ctx.Rooms.Len()))

	w.Header().Set("HX-Redirect", "/room/"+room.ID)
	w.WriteHeader(http.StatusOK)
}

// NewRoom builds a room whose session events are broadcast to its SSE
// clients.
func (ctx *Context) NewRoom() *models.Room {
	id := uuid.New().String()

	var room *models.Room
	session := memory.NewSession(memory.Options{
		Scheduler:    ctx.Scheduler,
		ResolveDelay: ctx.Config.ResolveDelay,
		TickInterval: ctx.Config.TickInterval,
		Logger:       ctx.Log.With(zap.String("room", id)),
	}, func(events []memory.Event) {
		msgs := render.Messages(id, events, room.Session.Snapshot())
		ctx.Hub.BroadcastAll(room, msgs)
	})
	room = models.NewRoom(id, session, ctx.now())
	return room
}

func (ctx *Context) now() time.Time {
	if ctx.Now != nil {
		return ctx.Now()
	}
	return time.Now()
}
