package room

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/sharetube/syncroom/internal/domain"
	"github.com/sharetube/syncroom/internal/metrics"
	"github.com/sharetube/syncroom/internal/repository/connection"
)

// broadcast sends event to every member of the room.
func (s service) broadcast(ctx context.Context, room *domain.Room, event any) {
	payload, ok := s.encode(ctx, event)
	if !ok {
		return
	}

	s.deliver(ctx, room.Members.IDs(), payload)
	s.publish(room, payload)
}

// broadcastExcept sends event to every member of the room but sender.
func (s service) broadcastExcept(ctx context.Context, room *domain.Room, sender domain.ConnID, event any) {
	payload, ok := s.encode(ctx, event)
	if !ok {
		return
	}

	s.deliver(ctx, room.Members.IDsExcept(sender), payload)
	s.publish(room, payload)
}

// sendTo sends event to a single connection. It is not mirrored to the feed.
func (s service) sendTo(ctx context.Context, connID domain.ConnID, event any) {
	payload, ok := s.encode(ctx, event)
	if !ok {
		return
	}

	s.deliver(ctx, []domain.ConnID{connID}, payload)
}

func (s service) encode(ctx context.Context, event any) ([]byte, bool) {
	payload, err := json.Marshal(event)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to marshal event", "error", err)
		return nil, false
	}

	return payload, true
}

// deliver queues payload on each open sink. A closed or saturated sink is
// skipped without affecting the others.
func (s service) deliver(ctx context.Context, ids []domain.ConnID, payload []byte) {
	for _, sink := range s.connRepo.Sinks(ids) {
		if !sink.IsOpen() {
			metrics.EventsSkipped.WithLabelValues(metrics.ReasonClosed).Inc()
			continue
		}

		if err := sink.Send(payload); err != nil {
			reason := metrics.ReasonClosed
			if errors.Is(err, connection.ErrSinkOverflown) {
				reason = metrics.ReasonOverflow
			}
			metrics.EventsSkipped.WithLabelValues(reason).Inc()
			s.logger.DebugContext(ctx, "failed to queue event", "error", err)
			continue
		}

		metrics.EventsDelivered.Inc()
	}
}

func (s service) publish(room *domain.Room, payload []byte) {
	if s.feed != nil {
		s.feed.Publish(room.ID, payload)
	}
}
