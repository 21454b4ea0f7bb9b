package room

import (
	"context"

	"github.com/sharetube/syncroom/internal/domain"
	"github.com/sharetube/syncroom/internal/protocol"
)

// play and pause are not debounced, only seek is.
func (s service) play(ctx context.Context, room *domain.Room, sender domain.ConnID, action protocol.Play) error {
	s.updateClock(ctx, room, sender, action.Tag(), action.Time)
	return nil
}

func (s service) pause(ctx context.Context, room *domain.Room, sender domain.ConnID, action protocol.Pause) error {
	s.updateClock(ctx, room, sender, action.Tag(), action.Time)
	return nil
}

func (s service) seek(ctx context.Context, room *domain.Room, sender domain.ConnID, action protocol.Seek) error {
	if !room.Player.Accept(s.now(), s.seekDebounce) {
		return ErrDebounced
	}

	s.updateClock(ctx, room, sender, action.Tag(), action.Time)
	return nil
}

func (s service) updateClock(ctx context.Context, room *domain.Room, sender domain.ConnID, tag string, position float64) {
	room.Player.Update(position, s.now())
	s.broadcastExcept(ctx, room, sender, protocol.NewClockEvent(tag, position))
}

func (s service) changeURL(ctx context.Context, room *domain.Room, action protocol.ChangeURL) error {
	room.Player.ChangeURL(action.URL)
	s.broadcast(ctx, room, protocol.NewChangeURLEvent(action.URL))

	s.logger.InfoContext(ctx, "video changed", "room_id", room.ID, "url", action.URL)
	return nil
}
