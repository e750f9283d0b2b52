package store

import (
	"testing"
	"time"

	"github.com/aaronzipp/memory-desktop/internal/clock"
	"github.com/aaronzipp/memory-desktop/internal/memory"
	"github.com/aaronzipp/memory-desktop/internal/models"
)

func newRoom(id string, now time.Time) *models.Room {
	s := memory.NewSession(memory.Options{Scheduler: clock.NewManual()}, nil)
	return models.NewRoom(id, s, now)
}

func TestRoomStoreCRUD(t *testing.T) {
	s := NewRoomStore()
	now := time.Now()
	s.Set("a", newRoom("a", now))

	if !s.Exists("a") || s.Len() != 1 {
		t.Fatal("room not stored")
	}
	if r, ok := s.Get("a"); !ok || r.ID != "a" {
		t.Fatalf("Get(a) = %v, %v", r, ok)
	}
	if !s.Delete("a") {
		t.Fatal("Delete(a) returned false")
	}
	if s.Delete("a") || s.Exists("a") {
		t.Fatal("room still present after delete")
	}
}

func TestReapSkipsActiveRooms(t *testing.T) {
	s := NewRoomStore()
	start := time.Now()
	idle := newRoom("idle", start)
	listening := newRoom("listening", start)
	fresh := newRoom("fresh", start.Add(50*time.Minute))

	listening.Lock()
	listening.AddSSEClient(make(chan models.SSEMessage, 1))
	listening.Unlock()

	for _, r := range []*models.Room{idle, listening, fresh} {
		s.Set(r.ID, r)
	}

	reaped := s.Reap(start.Add(time.Hour), 30*time.Minute)
	if len(reaped) != 1 || reaped[0] != "idle" {
		t.Fatalf("reaped = %v, want [idle]", reaped)
	}
	if s.Exists("idle") || !s.Exists("listening") || !s.Exists("fresh") {
		t.Fatal("wrong rooms reaped")
	}
	if err := idle.Session.SelectTileCount(4); !memory.IsInvalidInput(err) {
		t.Fatalf("reaped session still accepts input: %v", err)
	}
}
