package controller

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	connrepo "github.com/sharetube/syncroom/internal/repository/connection/inmemory"
	roomrepo "github.com/sharetube/syncroom/internal/repository/room/inmemory"
	"github.com/sharetube/syncroom/internal/service/room"
	"github.com/sharetube/syncroom/pkg/ytsearch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSearch struct {
	query string
}

func (s *stubSearch) Search(_ context.Context, query string) []ytsearch.Video {
	s.query = query
	if query == "" {
		return []ytsearch.Video{}
	}

	return []ytsearch.Video{{Title: "t", URL: "https://www.youtube.com/watch?v=x"}}
}

func newTestServer(t *testing.T) (*httptest.Server, *stubSearch) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	indexPath := filepath.Join(t.TempDir(), "index.html")
	require.NoError(t, os.WriteFile(indexPath, []byte("<html>watch</html>"), 0o600))

	roomService := room.NewService(roomrepo.NewRepo(logger), connrepo.NewRepo(logger), &room.Config{
		SeekDebounce: room.DefaultSeekDebounce,
	}, logger)
	searchService := &stubSearch{}

	c := NewController(roomService, searchService, &Config{
		IndexPath:  indexPath,
		SendBuffer: 16,
	}, logger)

	srv := httptest.NewServer(c.GetMux())
	t.Cleanup(srv.Close)

	return srv, searchService
}

func dial(t *testing.T, srv *httptest.Server, path string) *websocket.Conn {
	t.Helper()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + path
	ws, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { ws.Close() })

	return ws
}

func readEvent(t *testing.T, ws *websocket.Conn) map[string]any {
	t.Helper()

	require.NoError(t, ws.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, msg, err := ws.ReadMessage()
	require.NoError(t, err)

	var event map[string]any
	require.NoError(t, json.Unmarshal(msg, &event))

	return event
}

func TestIndexServesDocument(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "<html>watch</html>", string(body))
}

func TestHealthz(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/v1/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestSearchEndpoint(t *testing.T) {
	srv, search := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/v1/search?q=lofi")
	require.NoError(t, err)
	defer resp.Body.Close()

	var videos []ytsearch.Video
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&videos))
	assert.Equal(t, "lofi", search.query)
	assert.Len(t, videos, 1)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	resp, err = http.Get(srv.URL + "/api/v1/search")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(body))
}

func TestWebsocketOnIndexPath(t *testing.T) {
	srv, _ := newTestServer(t)
	alice := dial(t, srv, "/")

	require.NoError(t, alice.WriteJSON(map[string]any{"roomId": "r1", "action": "join", "username": "alice"}))

	assert.Equal(t, map[string]any{"type": "userCount", "count": float64(1)}, readEvent(t, alice))
	assert.Equal(t, map[string]any{"type": "sync", "url": "", "time": float64(0)}, readEvent(t, alice))
}

func TestWebsocketRelay(t *testing.T) {
	srv, _ := newTestServer(t)
	alice := dial(t, srv, "/api/v1/ws")
	bob := dial(t, srv, "/api/v1/ws")

	require.NoError(t, alice.WriteJSON(map[string]any{"roomId": "r1", "action": "join", "username": "alice"}))
	readEvent(t, alice) // userCount
	readEvent(t, alice) // sync

	require.NoError(t, bob.WriteJSON(map[string]any{"roomId": "r1", "action": "join", "username": "bob"}))
	assert.Equal(t, "userCount", readEvent(t, alice)["type"])
	assert.Equal(t, "userCount", readEvent(t, bob)["type"])
	assert.Equal(t, "sync", readEvent(t, bob)["type"])

	// garbage is dropped and the session keeps going
	require.NoError(t, bob.WriteMessage(websocket.TextMessage, []byte("{not json")))
	require.NoError(t, bob.WriteJSON(map[string]any{"roomId": "r1", "action": "dance"}))

	require.NoError(t, bob.WriteJSON(map[string]any{"roomId": "r1", "action": "play", "time": 42.5}))
	assert.Equal(t, map[string]any{"type": "play", "time": 42.5}, readEvent(t, alice))

	require.NoError(t, bob.Close())
	assert.Equal(t, map[string]any{"type": "userCount", "count": float64(1)}, readEvent(t, alice))
}
