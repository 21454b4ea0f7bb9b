package room

import (
	"context"
	"fmt"

	"github.com/sharetube/syncroom/internal/domain"
	"github.com/sharetube/syncroom/internal/metrics"
	"github.com/sharetube/syncroom/internal/protocol"
	"github.com/sharetube/syncroom/internal/repository/connection"
)

// Connect registers a freshly opened transport sink. Nothing is broadcast.
func (s service) Connect(ctx context.Context, sink connection.Sink) domain.ConnID {
	connID := s.connRepo.Add(sink)
	metrics.ActiveConnections.Inc()

	s.logger.DebugContext(ctx, "connection opened", "conn_id", connID)
	return connID
}

// Disconnect forgets the connection and cleans up the room it joined, if any.
// Only the first call for a connection has an effect.
func (s service) Disconnect(ctx context.Context, connID domain.ConnID) error {
	conn, err := s.connRepo.Remove(connID)
	if err != nil {
		return fmt.Errorf("failed to remove connection: %w", err)
	}
	metrics.ActiveConnections.Dec()

	if !conn.IsBound() {
		s.logger.DebugContext(ctx, "unbound connection closed", "conn_id", connID)
		return nil
	}

	room := s.roomRepo.GetOrCreate(conn.RoomID)
	room.Lock()
	defer room.Unlock()

	if room.CallRoster.Remove(conn.Username) {
		s.broadcast(ctx, room, protocol.NewUserLeftCallEvent(conn.Username, room.CallRoster.AsList()))
	}

	if _, err := room.Members.RemoveByID(connID); err != nil {
		return fmt.Errorf("failed to remove member: %w", err)
	}

	s.broadcast(ctx, room, protocol.NewUserCountEvent(room.Members.Length()))

	s.logger.InfoContext(ctx, "member left",
		"conn_id", connID,
		"room_id", room.ID,
		"username", conn.Username,
		"members", room.Members.Length(),
	)
	return nil
}

func (s service) join(ctx context.Context, room *domain.Room, connID domain.ConnID, action protocol.Join) error {
	conn, err := s.connRepo.Get(connID)
	if err != nil {
		return fmt.Errorf("failed to get connection: %w", err)
	}

	if conn.IsBound() && conn.RoomID != room.ID {
		return fmt.Errorf("%w: %s", ErrBoundToAnotherRoom, conn.RoomID)
	}

	if !room.Members.Contains(connID) {
		if err := s.connRepo.Bind(connID, room.ID, action.Username); err != nil {
			return fmt.Errorf("failed to bind connection: %w", err)
		}

		room.Members.Add(domain.Member{ID: connID, Username: action.Username})
		s.broadcast(ctx, room, protocol.NewUserCountEvent(room.Members.Length()))

		s.logger.InfoContext(ctx, "member joined",
			"conn_id", connID,
			"room_id", room.ID,
			"username", action.Username,
			"members", room.Members.Length(),
		)
	}

	if room.Player.VideoURL == "" {
		s.sendTo(ctx, connID, protocol.NewSyncEvent("", 0))
	} else {
		s.sendTo(ctx, connID, protocol.NewSyncEvent(room.Player.VideoURL, room.Player.CurrentTime))
	}

	return nil
}
