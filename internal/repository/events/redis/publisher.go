package redis

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

type message struct {
	roomID  string
	payload []byte
}

// Publisher mirrors room events to a Redis channel per room. Publish never
// blocks; events that do not fit in the queue are dropped.
type Publisher struct {
	rc     *redis.Client
	queue  chan message
	logger *slog.Logger
}

func NewPublisher(rc *redis.Client, queueSize int, logger *slog.Logger) *Publisher {
	return &Publisher{
		rc:     rc,
		queue:  make(chan message, queueSize),
		logger: logger,
	}
}

func Channel(roomID string) string {
	return "room:" + roomID + ":events"
}

func (p *Publisher) Publish(roomID string, payload []byte) {
	select {
	case p.queue <- message{roomID: roomID, payload: payload}:
	default:
		p.logger.Debug("event feed queue full, dropping event", "room_id", roomID)
	}
}

// Run forwards queued events to Redis until ctx is done.
func (p *Publisher) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg := <-p.queue:
			if err := p.rc.Publish(ctx, Channel(msg.roomID), msg.payload).Err(); err != nil {
				p.logger.WarnContext(ctx, "failed to publish room event", "room_id", msg.roomID, "error", err)
			}
		}
	}
}
