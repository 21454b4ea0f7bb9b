package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/sharetube/syncroom/pkg/ytsearch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepo(t *testing.T) {
	s := miniredis.RunT(t)
	rc := redis.NewClient(&redis.Options{Addr: s.Addr()})
	defer rc.Close()

	r := NewRepo(rc, time.Minute)
	ctx := context.Background()

	_, err := r.Get(ctx, "lofi")
	assert.ErrorIs(t, err, ErrNotFound)

	videos := []ytsearch.Video{{Title: "t", URL: "u", Thumbnail: "th", Duration: "1:00", Author: "a"}}
	require.NoError(t, r.Set(ctx, "Lofi ", videos))

	got, err := r.Get(ctx, "lofi")
	require.NoError(t, err)
	assert.Equal(t, videos, got)

	s.FastForward(2 * time.Minute)
	_, err = r.Get(ctx, "lofi")
	assert.ErrorIs(t, err, ErrNotFound)
}
