package match

import (
	"math"
	"strconv"
	"strings"
)

// ParseScore coerces a score cell. Integral text and decimal text (truncated)
// are accepted; negative or out-of-range values and anything else are
// MissingScore.
func ParseScore(raw string) int {
	if v, ok := parseInt(raw); ok && v >= 0 {
		return int(v)
	}
	return MissingScore
}

// ParseGoals coerces a goal tally, defaulting to 0 when the cell holds no
// usable count.
func ParseGoals(raw string) int {
	if v, ok := parseInt(raw); ok && v >= 0 {
		return int(v)
	}
	return 0
}

// ParseID coerces a surrogate key cell such as "12" or "12.0".
func ParseID(raw string) (int64, bool) {
	return parseInt(raw)
}

// maxCount is the largest magnitude a coerced cell may hold.
const maxCount = math.MaxInt32

func parseInt(raw string) (int64, bool) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return 0, false
	}
	if v, err := strconv.ParseInt(value, 10, 64); err == nil {
		if v > maxCount || v < -maxCount {
			return 0, false
		}
		return v, true
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f > maxCount || f < -maxCount {
		return 0, false
	}
	return int64(f), true
}
