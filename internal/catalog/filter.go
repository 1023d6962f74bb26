package catalog

import "strings"

// Filter returns the entries matching the query and optional filters,
// preserving the original order. The query matches case-insensitively
// against name, meaning, or origin story; category and gender, when
// non-empty, must match exactly. Empty inputs select everything.
func Filter(entries []NameEntry, query, category, gender string) []NameEntry {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]NameEntry, 0, len(entries))
	for _, e := range entries {
		if q != "" && !matchesQuery(e, q) {
			continue
		}
		if category != "" && e.Category != category {
			continue
		}
		if gender != "" && e.Gender != gender {
			continue
		}
		out = append(out, e)
	}
	return out
}

func matchesQuery(e NameEntry, q string) bool {
	return strings.Contains(strings.ToLower(e.Name), q) ||
		strings.Contains(strings.ToLower(e.Meaning), q) ||
		strings.Contains(strings.ToLower(e.OriginStory), q)
}
