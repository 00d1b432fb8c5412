package usecase

import (
	"strconv"

	"github.com/riskibarqy/football-warehouse/internal/domain/dimension"
	"github.com/riskibarqy/football-warehouse/internal/domain/match"
	"github.com/riskibarqy/football-warehouse/internal/domain/rawdata"
	"github.com/riskibarqy/football-warehouse/internal/domain/team"
	"github.com/riskibarqy/football-warehouse/internal/domain/teamseason"
	"github.com/riskibarqy/football-warehouse/internal/domain/topscorers"
	"github.com/riskibarqy/football-warehouse/internal/domain/warehouse"
)

var (
	teamColumns        = []string{"id_team", "team_name", "location", "stadium_id"}
	competitionColumns = []string{"id_competition", "competition"}
	stadiumColumns     = []string{"id_stadium", "stadium_name", "capacity"}
	dateColumns        = []string{"id_date", "date", "time", "year", "month", "day", "date_iso"}
	allTimeColumns     = []string{"id_topscorer", "player_name", "id_team", "goals"}
	bySeasonColumns    = []string{"id_topscorer_season", "season_id", "player_name", "id_team", "goals"}
	matchColumns       = []string{
		"id_match", "id_date", "id_home_team", "id_away_team", "id_competition",
		"season_id", "id_stadium", "stage", "status", "result_home", "result_away",
		"regulation_time", "penalties", "venue",
	}
	teamSeasonColumns = []string{
		"season_id", "id_team",
		"matches_total", "matches_home", "matches_away",
		"wins", "draws", "losses",
		"wins_home", "wins_away",
		"draws_home", "draws_away",
		"losses_home", "losses_away",
		"points", "points_home", "points_away",
		"goals_for", "goals_against", "goals_diff",
		"goals_for_home", "goals_for_away",
		"goals_against_home", "goals_against_away",
		"goals_per_match", "goals_against_per_match",
	}
)

func i64(v int64) string { return strconv.FormatInt(v, 10) }

func itoa(v int) string { return strconv.Itoa(v) }

func optionalID(v *int64) string {
	if v == nil {
		return ""
	}
	return i64(*v)
}

func newTable(name string, columns []string, capacity int) rawdata.Table {
	return rawdata.Table{
		Name:    name,
		Columns: append([]string(nil), columns...),
		Rows:    make([][]string, 0, capacity),
	}
}

func TeamTable(d team.Dimension) rawdata.Table {
	tbl := newTable(warehouse.TableTeam, teamColumns, len(d.Teams))
	for _, t := range d.Teams {
		tbl.Append(i64(t.ID), t.Name, t.Location, optionalID(t.StadiumID))
	}
	return tbl
}

func CompetitionTable(items []dimension.Competition) rawdata.Table {
	tbl := newTable(warehouse.TableCompetition, competitionColumns, len(items))
	for _, c := range items {
		tbl.Append(i64(c.ID), c.Name)
	}
	return tbl
}

func SeasonTable(s dimension.Seasons) rawdata.Table {
	columns := append([]string{"season_id", "season"}, s.ExtraColumns...)
	tbl := newTable(warehouse.TableSeason, columns, len(s.Items))
	for _, item := range s.Items {
		tbl.Append(append([]string{i64(item.ID), item.Name}, item.Extras...)...)
	}
	return tbl
}

func StadiumTable(items []dimension.Stadium) rawdata.Table {
	tbl := newTable(warehouse.TableStadium, stadiumColumns, len(items))
	for _, s := range items {
		tbl.Append(i64(s.ID), s.Name, s.Capacity)
	}
	return tbl
}

func DateTable(items []dimension.Date) rawdata.Table {
	tbl := newTable(warehouse.TableDate, dateColumns, len(items))
	for _, d := range items {
		tbl.Append(
			i64(d.ID),
			match.DatePart(d.Time),
			match.TimePart(d.Time),
			itoa(d.Time.Year()),
			itoa(int(d.Time.Month())),
			itoa(d.Time.Day()),
			d.ISO(),
		)
	}
	return tbl
}

func TopScorerAllTimeTable(items []topscorers.AllTime) rawdata.Table {
	tbl := newTable(warehouse.TableTopScorerAllTime, allTimeColumns, len(items))
	for _, s := range items {
		tbl.Append(i64(s.ID), s.PlayerName, i64(s.TeamID), itoa(s.Goals))
	}
	return tbl
}

func TopScorerSeasonTable(items []topscorers.BySeason) rawdata.Table {
	tbl := newTable(warehouse.TableTopScorerSeason, bySeasonColumns, len(items))
	for _, s := range items {
		tbl.Append(i64(s.ID), i64(s.SeasonID), s.PlayerName, i64(s.TeamID), itoa(s.Goals))
	}
	return tbl
}

func MatchTable(facts []match.Fact) rawdata.Table {
	tbl := newTable(warehouse.TableMatch, matchColumns, len(facts))
	for _, f := range facts {
		tbl.Append(
			f.MatchID,
			i64(f.DateID),
			i64(f.HomeTeamID),
			i64(f.AwayTeamID),
			i64(f.CompetitionID),
			i64(f.SeasonID),
			optionalID(f.StadiumID),
			f.Stage,
			f.Status,
			itoa(f.ResultHome),
			itoa(f.ResultAway),
			f.RegulationTime,
			f.Penalties,
			f.Venue,
		)
	}
	return tbl
}

func TeamSeasonTable(stats []teamseason.Stat) rawdata.Table {
	tbl := newTable(warehouse.TableTeamSeason, teamSeasonColumns, len(stats))
	for _, s := range stats {
		tbl.Append(
			i64(s.SeasonID), i64(s.TeamID),
			itoa(s.MatchesTotal), itoa(s.MatchesHome), itoa(s.MatchesAway),
			itoa(s.Wins), itoa(s.Draws), itoa(s.Losses),
			itoa(s.WinsHome), itoa(s.WinsAway),
			itoa(s.DrawsHome), itoa(s.DrawsAway),
			itoa(s.LossesHome), itoa(s.LossesAway),
			itoa(s.Points), itoa(s.PointsHome), itoa(s.PointsAway),
			itoa(s.GoalsFor), itoa(s.GoalsAgainst), itoa(s.GoalsDiff),
			itoa(s.GoalsForHome), itoa(s.GoalsForAway),
			itoa(s.GoalsAgainstHome), itoa(s.GoalsAgainstAway),
			s.GoalsPerMatch.StringFixed(2), s.GoalsAgainstPerMatch.StringFixed(2),
		)
	}
	return tbl
}
