package models

import (
	"sync"
	"time"

	"github.com/aaronzipp/memory-desktop/internal/memory"
)

// Room is one memory game window: a game session plus the browsers
// listening to it.
type Room struct {
	ID        string
	Session   *memory.Session
	CreatedAt time.Time

	mu         sync.RWMutex
	lastSeen   time.Time
	sseClients map[chan SSEMessage]struct{}
}

// SSEMessage represents a message sent via Server-Sent Events
type SSEMessage struct {
	Event string // Event type (e.g., "tile-3", "attempts")
	Data  string // HTML content or data to send
}

// NewRoom returns a room created at now.
func NewRoom(id string, session *memory.Session, now time.Time) *Room {
	return &Room{
		ID:        id,
		Session:   session,
		CreatedAt: now,
		lastSeen:  now,
	}
}

// Lock acquires the room's write lock
func (r *Room) Lock() {
	r.mu.Lock()
}

// Unlock releases the room's write lock
func (r *Room) Unlock() {
	r.mu.Unlock()
}

// RLock acquires the room's read lock
func (r *Room) RLock() {
	r.mu.RLock()
}

// RUnlock releases the room's read lock
func (r *Room) RUnlock() {
	r.mu.RUnlock()
}

// GetSSEClients returns a copy of the SSE client set (must be called with lock held)
func (r *Room) GetSSEClients() []chan SSEMessage {
	clients := make([]chan SSEMessage, 0, len(r.sseClients))
	for c := range r.sseClients {
		clients = append(clients, c)
	}
	return clients
}

// AddSSEClient adds a new SSE client to the room
func (r *Room) AddSSEClient(client chan SSEMessage) {
	if r.sseClients == nil {
		r.sseClients = make(map[chan SSEMessage]struct{})
	}
	r.sseClients[client] = struct{}{}
}

// RemoveSSEClient removes an SSE client from the room
func (r *Room) RemoveSSEClient(client chan SSEMessage) {
	delete(r.sseClients, client)
}

// SSEClientCount returns the number of connected SSE clients
func (r *Room) SSEClientCount() int {
	return len(r.sseClients)
}

// Touch records activity at now (must be called with write lock held)
func (r *Room) Touch(now time.Time) {
	r.lastSeen = now
}

// LastSeen returns the time of the last recorded activity (must be called with lock held)
func (r *Room) LastSeen() time.Time {
	return r.lastSeen
}
