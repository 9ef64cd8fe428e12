package youtube

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var durationRe = regexp.MustCompile(`^(?i)PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?`)

// FormatDuration converts an ISO 8601 duration such as "PT55M5S" into a
// clock-style string such as "55:05" (or "1:02:03" when hours are present).
// Input that does not look like a duration is returned unchanged.
func FormatDuration(iso string) string {
	if iso == "" {
		return ""
	}
	m := durationRe.FindStringSubmatch(strings.TrimSpace(iso))
	if m == nil {
		return iso
	}

	hours := atoiDefault(m[1])
	minutes := atoiDefault(m[2])
	seconds := atoiDefault(m[3])

	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

func atoiDefault(s string) int {
	if s == "" {
		return 0
	}
	n, _ := strconv.Atoi(s)
	return n
}
