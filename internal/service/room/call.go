package room

import (
	"context"
	"fmt"

	"github.com/sharetube/syncroom/internal/domain"
	"github.com/sharetube/syncroom/internal/protocol"
)

// Call participants and signal targets are addressed by username. When two
// members share a username, signals go to the one that joined first.

func (s service) joinCall(ctx context.Context, room *domain.Room, action protocol.JoinCall) error {
	room.CallRoster.Add(action.Username)
	s.broadcast(ctx, room, protocol.NewUserJoinedCallEvent(action.Username, room.CallRoster.AsList()))

	s.logger.DebugContext(ctx, "joined call", "username", action.Username, "participants", room.CallRoster.Length())
	return nil
}

func (s service) leaveCall(ctx context.Context, room *domain.Room, action protocol.LeaveCall) error {
	room.CallRoster.Remove(action.Username)
	s.broadcast(ctx, room, protocol.NewUserLeftCallEvent(action.Username, room.CallRoster.AsList()))

	s.logger.DebugContext(ctx, "left call", "username", action.Username, "participants", room.CallRoster.Length())
	return nil
}

func (s service) callSignal(ctx context.Context, room *domain.Room, action protocol.CallSignal) error {
	target, err := room.Members.GetByUsername(action.To)
	if err != nil {
		s.logger.DebugContext(ctx, "call signal target not found", "room_id", room.ID, "to", action.To)
		return nil
	}

	payload, err := action.Forward()
	if err != nil {
		return fmt.Errorf("failed to forward call signal: %w", err)
	}

	s.sendTo(ctx, target.ID, payload)
	return nil
}
