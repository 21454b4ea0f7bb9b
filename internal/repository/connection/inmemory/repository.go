package inmemory

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/sharetube/syncroom/internal/domain"
	"github.com/sharetube/syncroom/internal/repository/connection"
)

type repo struct {
	connList map[domain.ConnID]*connection.Connection
	mu       sync.RWMutex
	logger   *slog.Logger
}

func NewRepo(logger *slog.Logger) *repo {
	return &repo{
		connList: make(map[domain.ConnID]*connection.Connection),
		logger:   logger,
	}
}

func (r *repo) Add(sink connection.Sink) domain.ConnID {
	funcName := "connection.inmemory.Add"
	r.mu.Lock()
	defer r.mu.Unlock()

	id := domain.ConnID(uuid.NewString())
	r.connList[id] = &connection.Connection{
		ID:   id,
		Sink: sink,
	}

	r.logger.Debug(funcName, "conn_id", id)
	return id
}

func (r *repo) Get(id domain.ConnID) (connection.Connection, error) {
	funcName := "connection.inmemory.Get"
	r.mu.RLock()
	defer r.mu.RUnlock()

	conn, ok := r.connList[id]
	if !ok {
		r.logger.Debug(funcName, "conn_id", id, "error", connection.ErrNotFound)
		return connection.Connection{}, connection.ErrNotFound
	}

	return *conn, nil
}

// Bind sets the room and display name of a connection. It succeeds only once.
func (r *repo) Bind(id domain.ConnID, roomID, username string) error {
	funcName := "connection.inmemory.Bind"
	r.mu.Lock()
	defer r.mu.Unlock()

	conn, ok := r.connList[id]
	if !ok {
		r.logger.Debug(funcName, "conn_id", id, "error", connection.ErrNotFound)
		return connection.ErrNotFound
	}

	if conn.IsBound() {
		r.logger.Debug(funcName, "conn_id", id, "error", connection.ErrAlreadyBound)
		return connection.ErrAlreadyBound
	}

	conn.RoomID = roomID
	conn.Username = username

	r.logger.Debug(funcName, "conn_id", id, "room_id", roomID, "username", username)
	return nil
}

// Remove deletes the connection. Only the first call for an id succeeds.
func (r *repo) Remove(id domain.ConnID) (connection.Connection, error) {
	funcName := "connection.inmemory.Remove"
	r.mu.Lock()
	defer r.mu.Unlock()

	conn, ok := r.connList[id]
	if !ok {
		r.logger.Debug(funcName, "conn_id", id, "error", connection.ErrNotFound)
		return connection.Connection{}, connection.ErrNotFound
	}

	delete(r.connList, id)

	r.logger.Debug(funcName, "conn_id", id, "room_id", conn.RoomID)
	return *conn, nil
}

// Sinks resolves ids to sinks in order, skipping ids that are no longer registered.
func (r *repo) Sinks(ids []domain.ConnID) []connection.Sink {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sinks := make([]connection.Sink, 0, len(ids))
	for _, id := range ids {
		if conn, ok := r.connList[id]; ok {
			sinks = append(sinks, conn.Sink)
		}
	}

	return sinks
}

func (r *repo) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.connList)
}
