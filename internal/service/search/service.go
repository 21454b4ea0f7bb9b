package search

import (
	"context"
	"log/slog"

	"github.com/sharetube/syncroom/pkg/ytsearch"
)

type iSearcher interface {
	Search(ctx context.Context, query string) ([]ytsearch.Video, error)
}

type CacheRepo interface {
	Get(ctx context.Context, query string) ([]ytsearch.Video, error)
	Set(ctx context.Context, query string, videos []ytsearch.Video) error
}

type service struct {
	searcher iSearcher
	cache    CacheRepo
	logger   *slog.Logger
}

// NewService builds the search service. cache may be nil.
func NewService(searcher iSearcher, cache CacheRepo, logger *slog.Logger) *service {
	return &service{
		searcher: searcher,
		cache:    cache,
		logger:   logger,
	}
}

// Search never fails: any lookup error yields an empty result list.
func (s service) Search(ctx context.Context, query string) []ytsearch.Video {
	if query == "" {
		return []ytsearch.Video{}
	}

	if s.cache != nil {
		if videos, err := s.cache.Get(ctx, query); err == nil {
			s.logger.DebugContext(ctx, "search cache hit", "query", query)
			return videos
		}
	}

	videos, err := s.searcher.Search(ctx, query)
	if err != nil {
		s.logger.WarnContext(ctx, "search failed", "query", query, "error", err)
		return []ytsearch.Video{}
	}
	if len(videos) > ytsearch.MaxResults {
		videos = videos[:ytsearch.MaxResults]
	}

	if s.cache != nil && len(videos) > 0 {
		if err := s.cache.Set(ctx, query, videos); err != nil {
			s.logger.WarnContext(ctx, "failed to cache search result", "query", query, "error", err)
		}
	}

	return videos
}
