package store

import (
	"sync"
	"time"

	"github.com/aaronzipp/memory-desktop/internal/models"
)

// RoomStore manages room storage
type RoomStore struct {
	rooms map[string]*models.Room
	mu    sync.RWMutex
}

// NewRoomStore creates a new room store
func NewRoomStore() *RoomStore {
	return &RoomStore{
		rooms: make(map[string]*models.Room),
	}
}

// Get retrieves a room by id
func (s *RoomStore) Get(id string) (*models.Room, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	room, exists := s.rooms[id]
	return room, exists
}

// Set stores a room
func (s *RoomStore) Set(id string, room *models.Room) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rooms[id] = room
}

// Delete removes a room and closes its session
func (s *RoomStore) Delete(id string) bool {
	s.mu.Lock()
	room, exists := s.rooms[id]
	delete(s.rooms, id)
	s.mu.Unlock()
	if exists {
		room.Session.Close()
	}
	return exists
}

// Exists checks if a room id exists
func (s *RoomStore) Exists(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, exists := s.rooms[id]
	return exists
}

// Len returns the number of stored rooms
func (s *RoomStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rooms)
}

// Reap deletes rooms with no listeners that have been idle for at least ttl
// and returns their ids.
func (s *RoomStore) Reap(now time.Time, ttl time.Duration) []string {
	s.mu.Lock()
	var reaped []*models.Room
	for id, room := range s.rooms {
		room.RLock()
		idle := room.SSEClientCount() == 0 && now.Sub(room.LastSeen()) >= ttl
		room.RUnlock()
		if idle {
			reaped = append(reaped, room)
			delete(s.rooms, id)
		}
	}
	s.mu.Unlock()

	ids := make([]string, 0, len(reaped))
	for _, room := range reaped {
		room.Session.Close()
		ids = append(ids, room.ID)
	}
	return ids
}
