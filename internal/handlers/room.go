package handlers

import (
	"encoding/json"
	"html/template"
	"net/http"
	"strconv"
	"strings"

	"github.com/aaronzipp/memory-desktop/internal/memory"
	"github.com/aaronzipp/memory-desktop/internal/models"
	"github.com/aaronzipp/memory-desktop/internal/render"
	"go.uber.org/zap"
)

// HandleRoomMux routes /room/:id subpaths
func (ctx *Context) HandleRoomMux(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/room/")
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) == 0 || parts[0] == "" {
		http.Error(w, "Invalid URL", http.StatusBadRequest)
		return
	}
	roomID := parts[0]
	seg := ""
	if len(parts) > 1 {
		seg = parts[1]
	}

	room, err := ctx.getRoom(roomID)
	if err != nil {
		if seg == "" && r.Method == http.MethodGet {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		ctx.writeError(w, roomID, err)
		return
	}

	if r.Method == http.MethodGet {
		switch seg {
		case "":
			ctx.roomPage(w, room)
		case "state":
			ctx.roomState(w, room)
		case "qr":
			ctx.roomQR(w, r, room)
		default:
			http.NotFound(w, r)
		}
		return
	}

	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	switch seg {
	case "select":
		ctx.roomSelect(w, r, room)
	case "tile":
		if len(parts) != 3 {
			http.Error(w, "Invalid URL", http.StatusBadRequest)
			return
		}
		ctx.roomActivate(w, room, parts[2])
	case "navigate":
		ctx.roomNavigate(w, r, room)
	case "key":
		ctx.roomKey(w, r, room)
	case "restart":
		ctx.roomRestart(w, room)
	case "close":
		ctx.Rooms.Delete(room.ID)
		ctx.Log.Info("closed room", zap.String("room", room.ID))
		w.Header().Set("HX-Redirect", "/")
		w.WriteHeader(http.StatusOK)
	default:
		http.NotFound(w, r)
	}
}

func (ctx *Context) roomPage(w http.ResponseWriter, room *models.Room) {
	snap := room.Session.Snapshot()
	data := struct {
		RoomID string
		Phase  memory.Phase
		Panel  template.HTML
	}{
		RoomID: room.ID,
		Phase:  snap.Phase,
		Panel:  template.HTML(render.Panel(room.ID, snap)),
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := ctx.Templates.ExecuteTemplate(w, "room.tmpl", data); err != nil {
		ctx.Log.Error("render room", zap.String("room", room.ID), zap.Error(err))
	}
}

type tileView struct {
	ID      int           `json:"id"`
	Symbol  memory.Symbol `json:"symbol,omitempty"`
	FaceUp  bool          `json:"faceUp"`
	Matched bool          `json:"matched"`
	Locked  bool          `json:"locked"`
}

type stateView struct {
	RoomID         string          `json:"roomId"`
	Phase          memory.Phase    `json:"phase"`
	Tiles          []tileView      `json:"tiles"`
	Focus          int             `json:"focus"`
	Attempts       int             `json:"attempts"`
	ElapsedSeconds int             `json:"elapsedSeconds"`
	RemainingPairs int             `json:"remainingPairs"`
	Locked         bool            `json:"locked"`
	Summary        *memory.Summary `json:"summary,omitempty"`
}

func (ctx *Context) roomState(w http.ResponseWriter, room *models.Room) {
	snap := room.Session.Snapshot()
	view := stateView{
		RoomID:         room.ID,
		Phase:          snap.Phase,
		Tiles:          make([]tileView, 0, len(snap.Tiles)),
		Focus:          snap.Focus,
		Attempts:       snap.Attempts,
		ElapsedSeconds: snap.ElapsedSeconds,
		RemainingPairs: snap.RemainingPairs,
		Locked:         snap.Locked,
		Summary:        snap.Summary,
	}
	for _, t := range snap.Tiles {
		view.Tiles = append(view.Tiles, tileView{
			ID:      t.ID,
			Symbol:  t.Visible(),
			FaceUp:  t.FaceUp,
			Matched: t.Matched,
			Locked:  t.Locked,
		})
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(view); err != nil {
		ctx.Log.Error("encode state", zap.String("room", room.ID), zap.Error(err))
	}
}

func (ctx *Context) roomSelect(w http.ResponseWriter, r *http.Request, room *models.Room) {
	r.ParseForm()
	n, err := strconv.Atoi(strings.TrimSpace(r.FormValue("tiles")))
	if err != nil {
		http.Error(w, "tiles must be a number", http.StatusBadRequest)
		return
	}
	if err := room.Session.SelectTileCount(n); err != nil {
		ctx.writeError(w, room.ID, err)
		return
	}
	ctx.Log.Info("round dealt", zap.String("room", room.ID), zap.Int("tiles", n))
	w.WriteHeader(http.StatusNoContent)
}

func (ctx *Context) roomActivate(w http.ResponseWriter, room *models.Room, rawID string) {
	id, err := strconv.Atoi(rawID)
	if err != nil {
		http.Error(w, "tile id must be a number", http.StatusBadRequest)
		return
	}
	outcome, err := room.Session.Activate(id)
	if err != nil {
		ctx.writeError(w, room.ID, err)
		return
	}
	w.Header().Set("X-Flip-Outcome", outcome.String())
	w.WriteHeader(http.StatusNoContent)
}

func (ctx *Context) roomNavigate(w http.ResponseWriter, r *http.Request, room *models.Room) {
	r.ParseForm()
	dir, err := memory.ParseDirection(r.FormValue("dir"))
	if err != nil {
		ctx.writeError(w, room.ID, err)
		return
	}
	idx, err := room.Session.Navigate(dir)
	if err != nil {
		ctx.writeError(w, room.ID, err)
		return
	}
	w.Header().Set("X-Focus", strconv.Itoa(idx))
	w.WriteHeader(http.StatusNoContent)
}

func (ctx *Context) roomKey(w http.ResponseWriter, r *http.Request, room *models.Room) {
	r.ParseForm()
	if err := room.Session.HandleKey(r.FormValue("key")); err != nil {
		ctx.writeError(w, room.ID, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (ctx *Context) roomRestart(w http.ResponseWriter, room *models.Room) {
	if err := room.Session.Restart(); err != nil {
		ctx.writeError(w, room.ID, err)
		return
	}
	ctx.Log.Info("room restarted", zap.String("room", room.ID))
	w.WriteHeader(http.StatusNoContent)
}
