package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sharetube/syncroom/pkg/ytsearch"
)

var ErrNotFound = errors.New("search result not found")

type repo struct {
	rc  *redis.Client
	ttl time.Duration
}

func NewRepo(rc *redis.Client, ttl time.Duration) *repo {
	return &repo{rc: rc, ttl: ttl}
}

func (r repo) key(query string) string {
	return "search:" + strings.ToLower(strings.TrimSpace(query))
}

func (r repo) Get(ctx context.Context, query string) ([]ytsearch.Video, error) {
	data, err := r.rc.Get(ctx, r.key(query)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var videos []ytsearch.Video
	if err := json.Unmarshal(data, &videos); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached videos: %w", err)
	}

	return videos, nil
}

func (r repo) Set(ctx context.Context, query string, videos []ytsearch.Video) error {
	data, err := json.Marshal(videos)
	if err != nil {
		return fmt.Errorf("failed to marshal videos: %w", err)
	}

	return r.rc.Set(ctx, r.key(query), data, r.ttl).Err()
}
