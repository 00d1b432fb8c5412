package match

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// coerceLayouts are tried when the natural-language parser gives up.
var coerceLayouts = []string{
	"02/01/2006 15:04:05",
	"02/01/2006 15:04",
	"02/01/2006",
	"02-01-2006 15:04",
	"02-01-2006",
	"02.01.2006 15:04",
	"02.01.2006",
	"2 January 2006 15:04",
	"2 January 2006",
	"2 Jan 2006",
	"Monday, 2 January 2006 15:04",
	"Monday, 2 January 2006",
	"2006/01/02",
}

// ParseDate parses a kickoff value day-first, falling back to month-first
// when no day-first reading exists ("12/13/2019"). Unparseable or blank
// values return false and the record keeps a null date.
func ParseDate(raw string) (time.Time, bool) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return time.Time{}, false
	}

	if t, err := dateparse.ParseIn(value, time.UTC, dateparse.PreferMonthFirst(false)); err == nil {
		return t, true
	}

	for _, layout := range coerceLayouts {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return t, true
		}
	}

	if t, err := dateparse.ParseIn(value, time.UTC, dateparse.PreferMonthFirst(true)); err == nil {
		return t, true
	}

	return time.Time{}, false
}
