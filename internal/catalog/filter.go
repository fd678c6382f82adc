package catalog

import "strings"

// Filter returns the temples whose title, summary, any tag or province
// contains query, case-insensitively. The query is trimmed first; an empty
// query returns items unchanged. Input order is preserved.
func Filter(items []Temple, query string) []Temple {
	needle := normalizeQuery(query)
	if needle == "" {
		return items
	}
	out := make([]Temple, 0, len(items))
	for _, item := range items {
		if matches(item, needle) {
			out = append(out, item)
		}
	}
	return out
}

// matches reports whether item matches an already-normalized needle.
func matches(item Temple, needle string) bool {
	if needle == "" {
		return true
	}
	if containsFold(item.Title, needle) ||
		containsFold(item.Summary, needle) ||
		containsFold(item.Location.Province, needle) {
		return true
	}
	for _, tag := range item.Tags {
		if containsFold(tag, needle) {
			return true
		}
	}
	return false
}

func normalizeQuery(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), needle)
}
