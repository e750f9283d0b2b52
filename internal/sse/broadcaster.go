package sse

import (
	"time"

	"github.com/aaronzipp/memory-desktop/internal/models"
	"go.uber.org/zap"
)

// Hub fans room messages out to connected SSE clients.
type Hub struct {
	timeout time.Duration
	log     *zap.Logger
}

// NewHub returns a hub that gives up on a slow client after timeout.
func NewHub(timeout time.Duration, log *zap.Logger) *Hub {
	if log == nil {
		log = zap.NewNop()
	}
	return &Hub{timeout: timeout, log: log}
}

// AddClient adds a new SSE client to the room
func (h *Hub) AddClient(room *models.Room, client chan models.SSEMessage) {
	room.Lock()
	defer room.Unlock()
	room.AddSSEClient(client)
	room.Touch(time.Now())
	h.log.Debug("sse client added", zap.String("room", room.ID), zap.Int("clients", room.SSEClientCount()))
}

// RemoveClient removes an SSE client from the room
func (h *Hub) RemoveClient(room *models.Room, client chan models.SSEMessage) {
	room.Lock()
	defer room.Unlock()
	room.RemoveSSEClient(client)
	room.Touch(time.Now())
	h.log.Debug("sse client removed", zap.String("room", room.ID), zap.Int("clients", room.SSEClientCount()))
}

// Broadcast sends one message to every connected SSE client
func (h *Hub) Broadcast(room *models.Room, event, data string) {
	h.BroadcastAll(room, []models.SSEMessage{{Event: event, Data: data}})
}

// BroadcastAll sends messages, in order, to every connected SSE client
func (h *Hub) BroadcastAll(room *models.Room, msgs []models.SSEMessage) {
	room.RLock()
	// Collect all client channels while holding the lock
	clients := room.GetSSEClients()
	room.RUnlock()

	// Send messages WITHOUT holding the lock
	for _, client := range clients {
		for _, msg := range msgs {
			select {
			case client <- msg:
			case <-time.After(h.timeout):
				h.log.Debug("sse send timed out", zap.String("room", room.ID), zap.String("event", msg.Event))
			}
		}
	}
}
