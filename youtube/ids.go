package youtube

import (
	"regexp"
	"strings"

	"ytmeta/model"
)

var idSeparator = regexp.MustCompile(`[\s,]+`)

// NormalizeIDs flattens raw input strings into video ID tokens. Each raw
// string may carry several comma- or whitespace-separated IDs. Empty tokens
// are dropped; order and duplicates are preserved. Token shape is not
// validated here: a malformed ID simply comes back "not found" later.
func NormalizeIDs(raw []string) []string {
	var ids []string
	for _, s := range raw {
		for _, part := range idSeparator.Split(s, -1) {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			ids = append(ids, part)
		}
	}
	return ids
}

// MissingIDs returns the requested IDs that are absent from items, in
// request order, each reported once even when requested multiple times.
func MissingIDs(requested []string, items []model.VideoItem) []string {
	found := make(map[string]struct{}, len(items))
	for _, item := range items {
		found[item.ID] = struct{}{}
	}

	var missing []string
	seen := make(map[string]struct{}, len(requested))
	for _, id := range requested {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		if _, ok := found[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing
}
