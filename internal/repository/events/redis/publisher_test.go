package redis

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublisher(t *testing.T) {
	s := miniredis.RunT(t)
	rc := redis.NewClient(&redis.Options{Addr: s.Addr()})
	defer rc.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sub := rc.Subscribe(ctx, Channel("room-1"))
	defer sub.Close()
	_, err := sub.Receive(ctx)
	require.NoError(t, err)

	p := NewPublisher(rc, 8, slog.Default())
	go p.Run(ctx)

	p.Publish("room-1", []byte(`{"type":"userCount","count":1}`))

	select {
	case msg := <-sub.Channel():
		assert.Equal(t, "room:room-1:events", msg.Channel)
		assert.JSONEq(t, `{"type":"userCount","count":1}`, msg.Payload)
	case <-time.After(2 * time.Second):
		t.Fatal("event was not published")
	}
}

func TestPublisherDropsWhenFull(t *testing.T) {
	p := NewPublisher(nil, 1, slog.Default())

	p.Publish("room-1", []byte("a"))
	p.Publish("room-1", []byte("b"))

	assert.Len(t, p.queue, 1)
}
