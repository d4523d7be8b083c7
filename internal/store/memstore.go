package store

import (
	"sort"
	"sync"

	"gamma/internal/room"
)

type MemoryStore struct {
	mu    sync.RWMutex
	rooms map[string]*room.Room
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		rooms: map[string]*room.Room{},
	}
}

func (m *MemoryStore) GetRoom(code string) (*room.Room, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.rooms[code]
	return r, ok
}

func (m *MemoryStore) SaveRoom(r *room.Room) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rooms[r.Code] = r
}

// ListRooms returns all rooms, oldest first.
func (m *MemoryStore) ListRooms() []*room.Room {
	m.mu.RLock()
	out := make([]*room.Room, 0, len(m.rooms))
	for _, r := range m.rooms {
		out = append(out, r)
	}
	m.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}
