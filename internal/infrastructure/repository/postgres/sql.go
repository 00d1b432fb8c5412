package postgres

import (
	"regexp"
	"strings"
)

const maxLoggedQueryLength = 120

var queryWhitespaceRegex = regexp.MustCompile(`\s+`)

// formatQueryForLog collapses whitespace and truncates long statements, such
// as multi-row inserts, for error messages.
func formatQueryForLog(query string) string {
	query = strings.TrimSpace(query)
	if query == "" {
		return query
	}

	normalized := queryWhitespaceRegex.ReplaceAllString(query, " ")
	if len(normalized) <= maxLoggedQueryLength {
		return normalized
	}

	return normalized[:maxLoggedQueryLength] + "..."
}
