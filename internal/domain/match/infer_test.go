package match

import "testing"

func TestInferSeason(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path         string
		wantComp     string
		wantSeason   string
		wantBareYear bool
	}{
		{
			path:       "data/matches/ligue_1/tunisia_ligue_professionnelle_1_2019_2020.csv",
			wantComp:   CompetitionLigue1,
			wantSeason: "2019-20",
		},
		{
			path:       "data/matches/cup/tunisia_cup_2010_2011.csv",
			wantComp:   CompetitionCup,
			wantSeason: "2010-11",
		},
		{
			path:       "data/matches/super_cup/super_cup_super_cup_2019.csv",
			wantComp:   CompetitionSuperCup,
			wantSeason: "2019-20",
		},
		{
			path:       `data\matches\Cup\cup_2000-01.csv`,
			wantComp:   CompetitionCup,
			wantSeason: "2000-01",
		},
		{
			path:       "data/matches/cup/cup_1999.csv",
			wantComp:   CompetitionCup,
			wantSeason: "1999-00",
		},
		{
			path:         "data/matches/ligue_1/ligue_1_2015.csv",
			wantComp:     CompetitionLigue1,
			wantSeason:   "2015",
			wantBareYear: true,
		},
		{
			path:     "data/matches/friendlies/no_year.csv",
			wantComp: "",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.path, func(t *testing.T) {
			t.Parallel()

			comp := InferCompetition(tc.path)
			if comp != tc.wantComp {
				t.Fatalf("competition = %q, want %q", comp, tc.wantComp)
			}
			season, bare := InferSeason(tc.path, comp)
			if season != tc.wantSeason || bare != tc.wantBareYear {
				t.Fatalf("season = (%q, %v), want (%q, %v)", season, bare, tc.wantSeason, tc.wantBareYear)
			}
		})
	}
}

func TestInferCompetition_LastSegmentWins(t *testing.T) {
	t.Parallel()

	if got := InferCompetition("cup/archive/super_cup/file.csv"); got != CompetitionSuperCup {
		t.Fatalf("expected last matching segment, got %q", got)
	}
}

func TestParseScoreAndGoals(t *testing.T) {
	t.Parallel()

	scores := map[string]int{"3": 3, " 2 ": 2, "1.0": 1, "": MissingScore, "abc": MissingScore, "NaN": MissingScore,
		"-2": MissingScore, "1e30": MissingScore, "+Inf": MissingScore, "3-1": MissingScore, "99999999999999999999": MissingScore,
	}
	for in, want := range scores {
		if got := ParseScore(in); got != want {
			t.Fatalf("ParseScore(%q) = %d, want %d", in, got, want)
		}
	}

	goals := map[string]int{"12": 12, "7.0": 7, "": 0, "n/a": 0, "-4": 0, "1e30": 0}
	for in, want := range goals {
		if got := ParseGoals(in); got != want {
			t.Fatalf("ParseGoals(%q) = %d, want %d", in, got, want)
		}
	}
}
