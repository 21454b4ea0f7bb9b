package ytsearch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"golang.org/x/net/html"
)

func (c *Client) getResultsPage(ctx context.Context, query string) (*html.Node, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.resultsURL(query), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	req.Header.Set("User-Agent", "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	return html.Parse(resp.Body)
}

func getInitialData(doc *html.Node) (*initialData, error) {
	script := getScriptContaining(doc, "ytInitialData")
	if script == "" {
		return nil, ErrNoInitialData
	}

	rest := script[strings.Index(script, "ytInitialData"):]
	start := strings.Index(rest, "{")
	end := strings.LastIndex(rest, "}")
	if start < 0 || end < start {
		return nil, ErrNoInitialData
	}

	var data initialData
	if err := json.Unmarshal([]byte(rest[start:end+1]), &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal initial data: %w", err)
	}

	return &data, nil
}

func getScriptContaining(n *html.Node, marker string) string {
	if n.Type == html.ElementNode && n.Data == "script" && n.FirstChild != nil {
		if strings.Contains(n.FirstChild.Data, marker) {
			return n.FirstChild.Data
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if script := getScriptContaining(c, marker); script != "" {
			return script
		}
	}
	return ""
}

func (c *Client) collectVideos(data *initialData) []Video {
	videos := make([]Video, 0, MaxResults)
	for _, section := range data.Contents.TwoColumnSearchResultsRenderer.PrimaryContents.SectionListRenderer.Contents {
		for _, item := range section.ItemSectionRenderer.Contents {
			renderer := item.VideoRenderer
			if renderer == nil || renderer.VideoID == "" {
				continue
			}

			videos = append(videos, Video{
				Title:     renderer.Title.value(),
				URL:       c.watchURL(renderer.VideoID),
				Thumbnail: renderer.thumbnail(),
				Duration:  renderer.LengthText.value(),
				Author:    renderer.OwnerText.value(),
			})
			if len(videos) == MaxResults {
				return videos
			}
		}
	}

	return videos
}
