package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const resultsPage = `<html><body><script>var ytInitialData = {"contents":{"twoColumnSearchResultsRenderer":{"primaryContents":{"sectionListRenderer":{"contents":[{"itemSectionRenderer":{"contents":[{"videoRenderer":{"videoId":"abc","title":{"runs":[{"text":"Lofi"}]},"ownerText":{"runs":[{"text":"Girl"}]},"lengthText":{"simpleText":"1:00:00"}}}]}}]}}}}};</script></body></html>`

func testConfig(t *testing.T, searchBaseURL string) *AppConfig {
	t.Helper()

	indexPath := filepath.Join(t.TempDir(), "index.html")
	require.NoError(t, os.WriteFile(indexPath, []byte("<html></html>"), 0o600))

	return &AppConfig{
		Host:           "127.0.0.1",
		Port:           8080,
		LogLevel:       "DEBUG",
		SeekDebounce:   300 * time.Millisecond,
		SendBuffer:     16,
		IndexPath:      indexPath,
		SearchBaseURL:  searchBaseURL,
		SearchCacheTTL: time.Minute,
	}
}

func TestValidate(t *testing.T) {
	cfg := testConfig(t, "")
	require.NoError(t, cfg.Validate())

	cfg.SendBuffer = 0
	assert.Error(t, cfg.Validate())

	cfg = testConfig(t, "")
	cfg.Port = 0
	assert.Error(t, cfg.Validate())

	cfg = testConfig(t, "")
	cfg.SeekDebounce = -time.Second
	assert.Error(t, cfg.Validate())
}

func TestRoomEventsReachFeed(t *testing.T) {
	s := miniredis.RunT(t)
	rc := redis.NewClient(&redis.Options{Addr: s.Addr()})
	t.Cleanup(func() { rc.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := httptest.NewServer(newHandler(ctx, testConfig(t, ""), rc, logger))
	t.Cleanup(srv.Close)

	sub := rc.Subscribe(ctx, "room:movie-night:events")
	t.Cleanup(func() { sub.Close() })
	_, err := sub.Receive(ctx)
	require.NoError(t, err)

	ws, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/api/v1/ws", nil)
	require.NoError(t, err)
	t.Cleanup(func() { ws.Close() })

	require.NoError(t, ws.WriteJSON(map[string]any{"roomId": "movie-night", "action": "join", "username": "alice"}))

	select {
	case msg := <-sub.Channel():
		assert.JSONEq(t, `{"type":"userCount","count":1}`, msg.Payload)
	case <-time.After(2 * time.Second):
		t.Fatal("no event published")
	}
}

func TestSearchIsCached(t *testing.T) {
	var hits atomic.Int32
	yt := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		fmt.Fprint(w, resultsPage)
	}))
	t.Cleanup(yt.Close)

	s := miniredis.RunT(t)
	rc := redis.NewClient(&redis.Options{Addr: s.Addr()})
	t.Cleanup(func() { rc.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := httptest.NewServer(newHandler(context.Background(), testConfig(t, yt.URL), rc, logger))
	t.Cleanup(srv.Close)

	for range 2 {
		resp, err := http.Get(srv.URL + "/api/v1/search?q=lofi")
		require.NoError(t, err)

		var videos []map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&videos))
		resp.Body.Close()

		require.Len(t, videos, 1)
		assert.Equal(t, "Lofi", videos[0]["title"])
		assert.Equal(t, yt.URL+"/watch?v=abc", videos[0]["url"])
	}

	assert.Equal(t, int32(1), hits.Load())
	assert.True(t, s.Exists("search:lofi"))
}

func TestHandlerWithoutRedis(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := httptest.NewServer(newHandler(context.Background(), testConfig(t, "http://127.0.0.1:1"), nil, logger))
	t.Cleanup(srv.Close)

	resp, err := http.Get(srv.URL + "/api/v1/search?q=lofi")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(body))
}
