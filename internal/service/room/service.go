package room

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sharetube/syncroom/internal/domain"
	"github.com/sharetube/syncroom/internal/protocol"
	"github.com/sharetube/syncroom/internal/repository/connection"
)

var (
	ErrDebounced          = errors.New("clock update debounced")
	ErrBoundToAnotherRoom = errors.New("connection is bound to another room")
	ErrUnhandledAction    = errors.New("unhandled action")
)

const DefaultSeekDebounce = 300 * time.Millisecond

type iRoomRepo interface {
	GetOrCreate(roomID string) *domain.Room
}

type iConnRepo interface {
	Add(sink connection.Sink) domain.ConnID
	Get(id domain.ConnID) (connection.Connection, error)
	Bind(id domain.ConnID, roomID, username string) error
	Remove(id domain.ConnID) (connection.Connection, error)
	Sinks(ids []domain.ConnID) []connection.Sink
}

type iEventFeed interface {
	Publish(roomID string, payload []byte)
}

type Config struct {
	SeekDebounce time.Duration
	// Feed receives every room-wide event. Optional.
	Feed iEventFeed
	// Now defaults to time.Now.
	Now func() time.Time
}

type service struct {
	roomRepo     iRoomRepo
	connRepo     iConnRepo
	feed         iEventFeed
	seekDebounce time.Duration
	now          func() time.Time
	logger       *slog.Logger
}

func NewService(roomRepo iRoomRepo, connRepo iConnRepo, cfg *Config, logger *slog.Logger) *service {
	s := service{
		roomRepo:     roomRepo,
		connRepo:     connRepo,
		feed:         cfg.Feed,
		seekDebounce: cfg.SeekDebounce,
		now:          cfg.Now,
		logger:       logger,
	}

	if s.now == nil {
		s.now = time.Now
	}

	return &s
}

// Dispatch applies one decoded action to its room and emits the resulting
// events. The room stays locked until every event has been queued, so events
// of one room reach every recipient in dispatch order.
func (s service) Dispatch(ctx context.Context, connID domain.ConnID, env protocol.Envelope) error {
	room := s.roomRepo.GetOrCreate(env.RoomID)

	room.Lock()
	defer room.Unlock()

	switch action := env.Action.(type) {
	case protocol.Join:
		return s.join(ctx, room, connID, action)
	case protocol.Play:
		return s.play(ctx, room, connID, action)
	case protocol.Pause:
		return s.pause(ctx, room, connID, action)
	case protocol.Seek:
		return s.seek(ctx, room, connID, action)
	case protocol.ChangeURL:
		return s.changeURL(ctx, room, action)
	case protocol.Chat:
		return s.chat(ctx, room, action)
	case protocol.MediaMessage:
		return s.mediaMessage(ctx, room, action)
	case protocol.EditChat:
		return s.editChat(ctx, room, action)
	case protocol.DeleteMessage:
		return s.deleteMessage(ctx, room, action)
	case protocol.VoiceNote:
		return s.voiceNote(ctx, room, action)
	case protocol.Reaction:
		return s.addReaction(ctx, room, action)
	case protocol.RemoveReaction:
		return s.removeReaction(ctx, room, action)
	case protocol.JoinCall:
		return s.joinCall(ctx, room, action)
	case protocol.LeaveCall:
		return s.leaveCall(ctx, room, action)
	case protocol.CallSignal:
		return s.callSignal(ctx, room, action)
	default:
		return fmt.Errorf("%w: %T", ErrUnhandledAction, action)
	}
}
