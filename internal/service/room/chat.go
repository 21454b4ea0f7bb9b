package room

import (
	"context"

	"github.com/sharetube/syncroom/internal/domain"
	"github.com/sharetube/syncroom/internal/protocol"
)

// Messages are relayed only; the server keeps no history.

func (s service) chat(ctx context.Context, room *domain.Room, action protocol.Chat) error {
	s.broadcast(ctx, room, protocol.NewChatEvent(action))
	return nil
}

func (s service) mediaMessage(ctx context.Context, room *domain.Room, action protocol.MediaMessage) error {
	s.broadcast(ctx, room, protocol.NewMediaMessageEvent(action))
	return nil
}

func (s service) editChat(ctx context.Context, room *domain.Room, action protocol.EditChat) error {
	s.broadcast(ctx, room, protocol.NewEditChatEvent(action))
	return nil
}

func (s service) deleteMessage(ctx context.Context, room *domain.Room, action protocol.DeleteMessage) error {
	s.broadcast(ctx, room, protocol.NewDeleteMessageEvent(action.MessageID))
	return nil
}

func (s service) voiceNote(ctx context.Context, room *domain.Room, action protocol.VoiceNote) error {
	s.broadcast(ctx, room, protocol.NewVoiceNoteEvent(action))
	return nil
}
