package teamseason

import (
	"github.com/shopspring/decimal"

	"github.com/riskibarqy/football-warehouse/internal/domain/match"
)

const (
	PointsWin  = 3
	PointsDraw = 1
	PointsLoss = 0
)

// Line is one team's view of one match, before grouping.
type Line struct {
	SeasonID         int64
	TeamID           int64
	MatchesHome      int
	MatchesAway      int
	GoalsForHome     int
	GoalsForAway     int
	GoalsAgainstHome int
	GoalsAgainstAway int
	PointsHome       int
	PointsAway       int
	WinsHome         int
	WinsAway         int
	DrawsHome        int
	DrawsAway        int
	LossesHome       int
	LossesAway       int
}

// Stat is one F_Team_Season row.
type Stat struct {
	SeasonID             int64
	TeamID               int64
	MatchesTotal         int
	MatchesHome          int
	MatchesAway          int
	Wins                 int
	Draws                int
	Losses               int
	WinsHome             int
	WinsAway             int
	DrawsHome            int
	DrawsAway            int
	LossesHome           int
	LossesAway           int
	Points               int
	PointsHome           int
	PointsAway           int
	GoalsFor             int
	GoalsAgainst         int
	GoalsDiff            int
	GoalsForHome         int
	GoalsForAway         int
	GoalsAgainstHome     int
	GoalsAgainstAway     int
	GoalsPerMatch        decimal.Decimal
	GoalsAgainstPerMatch decimal.Decimal
}

// Lines splits a fact into its home and away perspectives. Facts without a
// season produce nothing; an unresolved side is skipped. A missing score
// still counts as a played match with no points and no result flag.
func Lines(f match.Fact) []Line {
	if f.SeasonID == match.UnresolvedID {
		return nil
	}

	scored := f.Scored()
	goals := func(v int) int {
		if v == match.MissingScore {
			return 0
		}
		return v
	}
	home, away := goals(f.ResultHome), goals(f.ResultAway)

	out := make([]Line, 0, 2)
	if f.HomeTeamID != match.UnresolvedID {
		win, draw, loss := outcome(scored, home, away)
		out = append(out, Line{
			SeasonID:         f.SeasonID,
			TeamID:           f.HomeTeamID,
			MatchesHome:      1,
			GoalsForHome:     home,
			GoalsAgainstHome: away,
			PointsHome:       points(win, draw),
			WinsHome:         win,
			DrawsHome:        draw,
			LossesHome:       loss,
		})
	}
	if f.AwayTeamID != match.UnresolvedID {
		win, draw, loss := outcome(scored, away, home)
		out = append(out, Line{
			SeasonID:         f.SeasonID,
			TeamID:           f.AwayTeamID,
			MatchesAway:      1,
			GoalsForAway:     away,
			GoalsAgainstAway: home,
			PointsAway:       points(win, draw),
			WinsAway:         win,
			DrawsAway:        draw,
			LossesAway:       loss,
		})
	}
	return out
}

func outcome(scored bool, goalsFor, goalsAgainst int) (win, draw, loss int) {
	if !scored {
		return 0, 0, 0
	}
	switch {
	case goalsFor > goalsAgainst:
		return 1, 0, 0
	case goalsFor == goalsAgainst:
		return 0, 1, 0
	default:
		return 0, 0, 1
	}
}

func points(win, draw int) int {
	switch {
	case win == 1:
		return PointsWin
	case draw == 1:
		return PointsDraw
	default:
		return PointsLoss
	}
}

// Add folds one line into the running stat.
func (s *Stat) Add(l Line) {
	s.MatchesHome += l.MatchesHome
	s.MatchesAway += l.MatchesAway
	s.GoalsForHome += l.GoalsForHome
	s.GoalsForAway += l.GoalsForAway
	s.GoalsAgainstHome += l.GoalsAgainstHome
	s.GoalsAgainstAway += l.GoalsAgainstAway
	s.PointsHome += l.PointsHome
	s.PointsAway += l.PointsAway
	s.WinsHome += l.WinsHome
	s.WinsAway += l.WinsAway
	s.DrawsHome += l.DrawsHome
	s.DrawsAway += l.DrawsAway
	s.LossesHome += l.LossesHome
	s.LossesAway += l.LossesAway
}

// Finalize derives totals and per-match rates from the home/away splits.
func (s *Stat) Finalize() {
	s.MatchesTotal = s.MatchesHome + s.MatchesAway
	s.GoalsFor = s.GoalsForHome + s.GoalsForAway
	s.GoalsAgainst = s.GoalsAgainstHome + s.GoalsAgainstAway
	s.GoalsDiff = s.GoalsFor - s.GoalsAgainst
	s.Points = s.PointsHome + s.PointsAway
	s.Wins = s.WinsHome + s.WinsAway
	s.Draws = s.DrawsHome + s.DrawsAway
	s.Losses = s.LossesHome + s.LossesAway
	s.GoalsPerMatch = Rate(s.GoalsFor, s.MatchesTotal)
	s.GoalsAgainstPerMatch = Rate(s.GoalsAgainst, s.MatchesTotal)
}

// Rate divides and rounds to 2 decimals; zero matches yields zero.
func Rate(total, matches int) decimal.Decimal {
	if matches == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(total)).
		DivRound(decimal.NewFromInt(int64(matches)), 2)
}
