package ytsearch

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const videoRendererTemplate = `{"videoRenderer":{"videoId":"id%d","title":{"runs":[{"text":"Video %d"}]},"ownerText":{"runs":[{"text":"Author %d"}]},"lengthText":{"simpleText":"%d:00"},"thumbnail":{"thumbnails":[{"url":"https://i.ytimg.com/vi/id%d/default.jpg"},{"url":"https://i.ytimg.com/vi/id%d/hq.jpg"}]}}}`

func resultsPage(n int) string {
	items := []string{`{"shelfRenderer":{}}`}
	for i := 1; i <= n; i++ {
		items = append(items, fmt.Sprintf(videoRendererTemplate, i, i, i, i, i, i))
	}

	data := `{"contents":{"twoColumnSearchResultsRenderer":{"primaryContents":{"sectionListRenderer":{"contents":[{"itemSectionRenderer":{"contents":[` +
		strings.Join(items, ",") + `]}}]}}}}}`

	return `<html><head><title>results</title></head><body>` +
		`<script>var other = {};</script>` +
		`<script>var ytInitialData = ` + data + `;</script>` +
		`</body></html>`
}

func TestSearch(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/results", r.URL.Path)
		gotQuery = r.URL.Query().Get("search_query")
		fmt.Fprint(w, resultsPage(3))
	}))
	defer srv.Close()

	c := New(srv.Client(), srv.URL)
	videos, err := c.Search(context.Background(), "  lofi beats ")
	require.NoError(t, err)
	assert.Equal(t, "lofi beats", gotQuery)
	require.Len(t, videos, 3)
	assert.Equal(t, Video{
		Title:     "Video 1",
		URL:       srv.URL + "/watch?v=id1",
		Thumbnail: "https://i.ytimg.com/vi/id1/hq.jpg",
		Duration:  "1:00",
		Author:    "Author 1",
	}, videos[0])
}

func TestSearchLimitsResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, resultsPage(15))
	}))
	defer srv.Close()

	videos, err := New(srv.Client(), srv.URL).Search(context.Background(), "q")
	require.NoError(t, err)
	assert.Len(t, videos, MaxResults)
	assert.Equal(t, "Video 10", videos[MaxResults-1].Title)
}

func TestSearchEmptyQuery(t *testing.T) {
	c := New(nil, "http://127.0.0.1:1")
	videos, err := c.Search(context.Background(), "   ")
	require.NoError(t, err)
	assert.NotNil(t, videos)
	assert.Empty(t, videos)
}

func TestSearchFailures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("search_query") {
		case "status":
			w.WriteHeader(http.StatusTooManyRequests)
		case "nodata":
			fmt.Fprint(w, `<html><body><script>var x = 1;</script></body></html>`)
		case "badjson":
			fmt.Fprint(w, `<html><body><script>var ytInitialData = {"contents": [};</script></body></html>`)
		}
	}))
	defer srv.Close()

	c := New(srv.Client(), srv.URL)

	_, err := c.Search(context.Background(), "status")
	assert.ErrorIs(t, err, ErrUnexpectedStatus)

	_, err = c.Search(context.Background(), "nodata")
	assert.ErrorIs(t, err, ErrNoInitialData)

	_, err = c.Search(context.Background(), "badjson")
	assert.Error(t, err)
}
