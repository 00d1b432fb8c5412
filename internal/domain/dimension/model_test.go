package dimension

import (
	"testing"
	"time"
)

func TestLookups_FirstEntryWins(t *testing.T) {
	t.Parallel()

	comps := CompetitionIDs([]Competition{{ID: 1, Name: "cup"}, {ID: 2, Name: "cup"}, {ID: 3, Name: "ligue_1"}})
	if comps["cup"] != 1 || comps["ligue_1"] != 3 {
		t.Fatalf("unexpected competition ids %#v", comps)
	}

	seasons := SeasonIDs(Seasons{Items: []Season{{ID: 7, Name: "2019-20"}}})
	if seasons["2019-20"] != 7 {
		t.Fatalf("unexpected season ids %#v", seasons)
	}
}

func TestDateIDs_UsesISOKey(t *testing.T) {
	t.Parallel()

	d := Date{ID: 5, Time: time.Date(2021, 3, 9, 15, 0, 0, 0, time.UTC)}
	ids := DateIDs([]Date{d})
	if ids["2021-03-09 15:00:00"] != 5 {
		t.Fatalf("unexpected date ids %#v", ids)
	}
}
