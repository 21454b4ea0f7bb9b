package ytsearch

import "fmt"

type initialData struct {
	Contents struct {
		TwoColumnSearchResultsRenderer struct {
			PrimaryContents struct {
				SectionListRenderer struct {
					Contents []struct {
						ItemSectionRenderer struct {
							Contents []struct {
								VideoRenderer *videoRenderer `json:"videoRenderer"`
							} `json:"contents"`
						} `json:"itemSectionRenderer"`
					} `json:"contents"`
				} `json:"sectionListRenderer"`
			} `json:"primaryContents"`
		} `json:"twoColumnSearchResultsRenderer"`
	} `json:"contents"`
}

type videoRenderer struct {
	VideoID    string `json:"videoId"`
	Title      ytText `json:"title"`
	OwnerText  ytText `json:"ownerText"`
	LengthText ytText `json:"lengthText"`
	Thumbnail  struct {
		Thumbnails []struct {
			URL string `json:"url"`
		} `json:"thumbnails"`
	} `json:"thumbnail"`
}

// ytText is either {"simpleText": ...} or {"runs": [{"text": ...}]}.
type ytText struct {
	SimpleText string `json:"simpleText"`
	Runs       []struct {
		Text string `json:"text"`
	} `json:"runs"`
}

func (t ytText) value() string {
	if t.SimpleText != "" {
		return t.SimpleText
	}
	if len(t.Runs) > 0 {
		return t.Runs[0].Text
	}
	return ""
}

func (v videoRenderer) thumbnail() string {
	if n := len(v.Thumbnail.Thumbnails); n > 0 {
		return v.Thumbnail.Thumbnails[n-1].URL
	}
	return fmt.Sprintf("https://i.ytimg.com/vi/%s/hqdefault.jpg", v.VideoID)
}
