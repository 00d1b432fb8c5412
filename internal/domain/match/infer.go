package match

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

var (
	twoYearPattern  = regexp.MustCompile(`(\d{4})[-_](\d{2,4})`)
	trailingPattern = regexp.MustCompile(`(\d{4})(?:\.csv)?$`)
)

// InferCompetition returns the last path segment naming a known competition
// folder, lowercased, or "" when none does.
func InferCompetition(path string) string {
	normalized := strings.ReplaceAll(path, `\`, "/")

	competition := ""
	for _, part := range strings.Split(normalized, "/") {
		switch low := strings.ToLower(part); low {
		case CompetitionLigue1, CompetitionCup, CompetitionSuperCup, CompetitionSupercup:
			competition = low
		}
	}
	return competition
}

// InferSeason derives a season label from a file name. bareYear is true when
// only a single trailing year was found outside a cup competition; such
// labels do not join against two-year season entries.
func InferSeason(fileName, competition string) (season string, bareYear bool) {
	name := filepath.Base(strings.ReplaceAll(fileName, `\`, "/"))

	if m := twoYearPattern.FindStringSubmatch(name); m != nil {
		year1, year2 := m[1], m[2]
		if len(year2) == 4 {
			return year1 + "-" + year2[2:], false
		}
		return year1 + "-" + year2, false
	}

	m := trailingPattern.FindStringSubmatch(name)
	if m == nil {
		return "", false
	}
	year, err := strconv.Atoi(m[1])
	if err != nil {
		return "", false
	}
	if competition == CompetitionSuperCup || competition == CompetitionCup {
		return fmt.Sprintf("%d-%02d", year, (year+1)%100), false
	}
	return m[1], true
}
