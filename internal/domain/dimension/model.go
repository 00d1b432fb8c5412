package dimension

import (
	"time"

	"github.com/riskibarqy/football-warehouse/internal/domain/match"
)

type Competition struct {
	ID   int64
	Name string
}

// Season carries any extra seed columns verbatim, aligned with
// Seasons.ExtraColumns.
type Season struct {
	ID     int64
	Name   string
	Extras []string
}

type Seasons struct {
	ExtraColumns []string
	Items        []Season
}

type Stadium struct {
	ID       int64
	Name     string
	Capacity string
}

type Date struct {
	ID   int64
	Time time.Time
}

func (d Date) ISO() string {
	return match.ISOKey(d.Time)
}

// CompetitionIDs is the exact-name lookup used by the fact builder.
func CompetitionIDs(items []Competition) map[string]int64 {
	out := make(map[string]int64, len(items))
	for _, item := range items {
		if _, exists := out[item.Name]; !exists {
			out[item.Name] = item.ID
		}
	}
	return out
}

func SeasonIDs(s Seasons) map[string]int64 {
	out := make(map[string]int64, len(s.Items))
	for _, item := range s.Items {
		if _, exists := out[item.Name]; !exists {
			out[item.Name] = item.ID
		}
	}
	return out
}

func DateIDs(items []Date) map[string]int64 {
	out := make(map[string]int64, len(items))
	for _, item := range items {
		out[item.ISO()] = item.ID
	}
	return out
}
