package inmemory

import (
	"log/slog"
	"sync"

	"github.com/sharetube/syncroom/internal/domain"
	"github.com/sharetube/syncroom/internal/metrics"
)

// repo holds every room for the life of the process. Rooms are never removed.
type repo struct {
	roomList map[string]*domain.Room
	mu       sync.RWMutex
	logger   *slog.Logger
}

func NewRepo(logger *slog.Logger) *repo {
	return &repo{
		roomList: make(map[string]*domain.Room),
		logger:   logger,
	}
}

func (r *repo) GetOrCreate(roomID string) *domain.Room {
	funcName := "room.inmemory.GetOrCreate"
	r.mu.RLock()
	room, ok := r.roomList[roomID]
	r.mu.RUnlock()
	if ok {
		return room
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if room, ok := r.roomList[roomID]; ok {
		return room
	}

	room = domain.NewRoom(roomID)
	r.roomList[roomID] = room
	metrics.Rooms.Inc()

	r.logger.Info(funcName, "room_id", roomID, "rooms", len(r.roomList))
	return room
}
