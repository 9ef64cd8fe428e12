package table

import (
	"time"

	"ytmeta/model"
	"ytmeta/youtube"
)

// Column pairs a display label with a pure extractor over one API item.
type Column struct {
	Key     string
	Label   string
	Extract func(model.VideoItem) string
}

// Registry is the full ordered column set. Its order defines the default
// column order; selections are always rendered in this order too. Read-only
// after initialization.
var Registry = []Column{
	{Key: "id", Label: "id", Extract: func(v model.VideoItem) string {
		return v.ID
	}},
	{Key: "title", Label: "title", Extract: func(v model.VideoItem) string {
		return v.Snippet.Title
	}},
	{Key: "publication_date", Label: "publication date", Extract: func(v model.VideoItem) string {
		return formatPublishedAt(v.Snippet.PublishedAt)
	}},
	{Key: "channel_title", Label: "channel title", Extract: func(v model.VideoItem) string {
		return v.Snippet.ChannelTitle
	}},
	{Key: "view_count", Label: "view count", Extract: func(v model.VideoItem) string {
		return orZero(v.Statistics.ViewCount)
	}},
	{Key: "like_count", Label: "like count", Extract: func(v model.VideoItem) string {
		return orZero(v.Statistics.LikeCount)
	}},
	{Key: "comment_count", Label: "comment count", Extract: func(v model.VideoItem) string {
		return orZero(v.Statistics.CommentCount)
	}},
	{Key: "duration", Label: "duration", Extract: func(v model.VideoItem) string {
		return youtube.FormatDuration(v.ContentDetails.Duration)
	}},
}

// formatPublishedAt reduces an RFC 3339 publish timestamp to YYYY-MM-DD.
// Anything that fails to parse passes through untouched.
func formatPublishedAt(raw string) string {
	if raw == "" {
		return ""
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return raw
	}
	return t.Format("2006-01-02")
}

func orZero(count string) string {
	if count == "" {
		return "0"
	}
	return count
}

// SelectColumns filters the registry to the requested keys, keeping registry
// order regardless of request order. Unknown keys are skipped. An empty
// selection means the full registry.
func SelectColumns(keys []string) []Column {
	if len(keys) == 0 {
		return Registry
	}
	requested := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		requested[k] = struct{}{}
	}
	var cols []Column
	for _, col := range Registry {
		if _, ok := requested[col.Key]; ok {
			cols = append(cols, col)
		}
	}
	return cols
}

// BuildRows produces one row per item, cells aligned with cols.
func BuildRows(items []model.VideoItem, cols []Column) [][]string {
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		row := make([]string, len(cols))
		for i, col := range cols {
			row[i] = col.Extract(item)
		}
		rows = append(rows, row)
	}
	return rows
}

// BuildRowMaps is the JSON-facing variant of BuildRows: one map per item,
// keyed by column label.
func BuildRowMaps(items []model.VideoItem, cols []Column) []map[string]string {
	maps := make([]map[string]string, 0, len(items))
	for _, item := range items {
		row := make(map[string]string, len(cols))
		for _, col := range cols {
			row[col.Label] = col.Extract(item)
		}
		maps = append(maps, row)
	}
	return maps
}

// Labels returns the display labels of cols, in order.
func Labels(cols []Column) []string {
	labels := make([]string, len(cols))
	for i, col := range cols {
		labels[i] = col.Label
	}
	return labels
}
