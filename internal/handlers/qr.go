package handlers

import (
	"net/http"
	"strings"

	"github.com/aaronzipp/memory-desktop/internal/models"
	"github.com/skip2/go-qrcode"
	"go.uber.org/zap"
)

const qrSize = 256

// roomURL returns the absolute URL of a room, preferring the configured
// public URL over the request's host.
func (ctx *Context) roomURL(r *http.Request, roomID string) string {
	base := strings.TrimRight(ctx.Config.PublicURL, "/")
	if base == "" {
		scheme := "http"
		if r.TLS != nil {
			scheme = "https"
		}
		base = scheme + "://" + r.Host
	}
	return base + "/room/" + roomID
}

// roomQR serves a PNG QR code that opens the room on another device
func (ctx *Context) roomQR(w http.ResponseWriter, r *http.Request, room *models.Room) {
	png, err := qrcode.Encode(ctx.roomURL(r, room.ID), qrcode.Medium, qrSize)
	if err != nil {
		ctx.Log.Error("encode qr", zap.String("room", room.ID), zap.Error(err))
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-cache")
	w.Write(png)
}
