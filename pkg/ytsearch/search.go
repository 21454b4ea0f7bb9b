package ytsearch

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

const (
	MaxResults     = 10
	DefaultBaseURL = "https://www.youtube.com"
)

var (
	ErrUnexpectedStatus = errors.New("unexpected status code")
	ErrNoInitialData    = errors.New("initial data not found")
)

type Video struct {
	Title     string `json:"title"`
	URL       string `json:"url"`
	Thumbnail string `json:"thumbnail"`
	Duration  string `json:"duration"`
	Author    string `json:"author"`
}

type Client struct {
	httpClient *http.Client
	baseURL    string
}

func New(httpClient *http.Client, baseURL string) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// Search scrapes the results page for query and returns at most MaxResults videos.
func (c *Client) Search(ctx context.Context, query string) ([]Video, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []Video{}, nil
	}

	doc, err := c.getResultsPage(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get results page: %w", err)
	}

	data, err := getInitialData(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to get initial data: %w", err)
	}

	return c.collectVideos(data), nil
}

func (c *Client) resultsURL(query string) string {
	return c.baseURL + "/results?search_query=" + url.QueryEscape(query)
}

func (c *Client) watchURL(videoID string) string {
	return c.baseURL + "/watch?v=" + videoID
}
