package topscorers

import "strings"

// AllTime is one row of the all-time scorer dimension.
type AllTime struct {
	ID         int64
	PlayerName string
	TeamID     int64
	Goals      int
}

// BySeason is one row of the per-season scorer dimension.
type BySeason struct {
	ID         int64
	SeasonID   int64
	PlayerName string
	TeamID     int64
	Goals      int
}

// PrimaryTeam reduces a multi-club attribution such as
// "Team A (80), Team B (12)" to "Team A". Blank input returns "".
func PrimaryTeam(raw string) string {
	value := strings.TrimSpace(raw)
	if value == "" {
		return ""
	}
	if i := strings.Index(value, ","); i >= 0 {
		value = strings.TrimSpace(value[:i])
	}
	if strings.Contains(value, "(") && strings.Contains(value, ")") {
		value = strings.TrimSpace(value[:strings.Index(value, "(")])
	}
	return value
}
