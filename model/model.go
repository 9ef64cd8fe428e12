package model

import "time"

// YouTube API response structures
type VideoListResponse struct {
	Items []VideoItem `json:"items"`
}

type VideoItem struct {
	ID      string `json:"id"`
	Snippet struct {
		Title        string     `json:"title"`
		Description  string     `json:"description"`
		PublishedAt  string     `json:"publishedAt"`
		ChannelTitle string     `json:"channelTitle"`
		Thumbnails   Thumbnails `json:"thumbnails"`
	} `json:"snippet"`
	ContentDetails struct {
		Duration string `json:"duration"`
	} `json:"contentDetails"`
	Statistics struct {
		ViewCount    string `json:"viewCount"`
		LikeCount    string `json:"likeCount"`
		CommentCount string `json:"commentCount"`
	} `json:"statistics"`
}

type Thumbnail struct {
	URL    string `json:"url"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

type Thumbnails struct {
	Default  Thumbnail `json:"default"`
	Medium   Thumbnail `json:"medium"`
	High     Thumbnail `json:"high"`
	Standard Thumbnail `json:"standard"`
	Maxres   Thumbnail `json:"maxres"`
}

// FetchRequest represents a metadata fetch request via NATS
type FetchRequest struct {
	IDs       []string `json:"ids"`
	Columns   []string `json:"columns,omitempty"`
	Format    string   `json:"format,omitempty"`
	RequestID string   `json:"requestId"`
}

// FetchResult represents the result of a metadata fetch operation
type FetchResult struct {
	RequestID   string              `json:"requestId"`
	Success     bool                `json:"success"`
	Videos      []map[string]string `json:"videos,omitempty"`
	Table       string              `json:"table,omitempty"`
	NotFound    []string            `json:"notFound,omitempty"`
	Error       string              `json:"error,omitempty"`
	ProcessedAt time.Time           `json:"processedAt"`
}

// Response structure for the HTTP API
type VideosResponse struct {
	Videos   []map[string]string `json:"videos"`
	NotFound []string            `json:"notFound,omitempty"`
	Count    int                 `json:"count"`
}
