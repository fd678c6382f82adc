package ui

import "strings"

// truncate shortens a string to the given limit, adding ellipsis if needed.
func truncate(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 {
		return value
	}
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	if limit <= 3 {
		return string(runes[:limit])
	}
	return string(runes[:limit-3]) + "..."
}

// truncateMiddle shortens a string by removing characters from the middle,
// preserving both the beginning and end.
func truncateMiddle(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 || value == "" {
		return value
	}
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}

	ellipsis := []rune("…")
	if limit <= 3 {
		return string(runes[:limit])
	}

	keep := limit - len(ellipsis)
	prefix := keep / 2
	suffix := keep - prefix
	return string(runes[:prefix]) + string(ellipsis) + string(runes[len(runes)-suffix:])
}

// clamp bounds v to [lo, hi].
func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
