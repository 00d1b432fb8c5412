package usecase

import (
	"time"

	"github.com/riskibarqy/football-warehouse/internal/domain/match"
)

func at(value string) *time.Time {
	t, err := time.Parse("2006-01-02 15:04:05", value)
	if err != nil {
		panic(err)
	}
	return &t
}

func sampleRecords() []match.Record {
	return []match.Record{
		{
			MatchID:      "m1",
			Date:         at("2019-08-31 16:00:00"),
			HomeTeamName: "Esperance Tunis",
			AwayTeamName: "CS Sfaxien",
			ResultHome:   "2",
			ResultAway:   "0",
			Venue:        "Rades",
			Capacity:     "60000",
			Competition:  "ligue_1",
			Season:       "2019-20",
		},
		{
			MatchID:      "m2",
			Date:         at("2019-08-24 16:00:00"),
			HomeTeamName: "CS Sfaxien",
			AwayTeamName: "Stade Gabesien",
			ResultHome:   "1",
			ResultAway:   "1",
			Venue:        "Taieb Mhiri",
			Competition:  "ligue_1",
			Season:       "2019-20",
		},
		{
			MatchID:      "m3",
			Date:         at("2019-08-31 16:00:00"),
			HomeTeamName: "Esperance Tunis",
			Competition:  "cup",
			Season:       "2019-20",
		},
	}
}
