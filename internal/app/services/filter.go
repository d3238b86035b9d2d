package services

import "strings"

// FilterAll is the sentinel filter selection that matches every row.
// An absent (empty) selection behaves the same way.
const FilterAll = "all"

// filterMatches reports whether a row value passes an exact-match column
// filter. The empty selection and the "all" sentinel match everything.
func filterMatches(selection, value string) bool {
	return selection == "" || strings.EqualFold(selection, FilterAll) || selection == value
}

// searchMatches reports whether any of the fields contains the search term,
// case-insensitively. The empty term matches everything.
func searchMatches(term string, fields ...string) bool {
	if term == "" {
		return true
	}
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

// normalizeSearchTerm lowers and trims a raw search input once per filter
// pass.
func normalizeSearchTerm(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}
