package room

import (
	"context"

	"github.com/sharetube/syncroom/internal/domain"
	"github.com/sharetube/syncroom/internal/protocol"
)

func (s service) addReaction(ctx context.Context, room *domain.Room, action protocol.Reaction) error {
	key := action.MessageID.Key()
	room.Reactions.Add(key, action.Emoji, action.Username)
	s.broadcast(ctx, room, protocol.NewReactionEvent(action.MessageID, room.Reactions.Snapshot(key)))

	s.logger.DebugContext(ctx, "reaction added", "message_id", key, "reacted_messages", room.Reactions.Length())
	return nil
}

func (s service) removeReaction(ctx context.Context, room *domain.Room, action protocol.RemoveReaction) error {
	key := action.MessageID.Key()
	room.Reactions.Remove(key, action.Emoji, action.Username)
	s.broadcast(ctx, room, protocol.NewReactionEvent(action.MessageID, room.Reactions.Snapshot(key)))

	s.logger.DebugContext(ctx, "reaction removed", "message_id", key, "reacted_messages", room.Reactions.Length())
	return nil
}
