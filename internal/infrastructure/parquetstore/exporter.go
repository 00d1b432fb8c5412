package parquetstore

import (
	"context"
	"os"
	"path/filepath"

	crerr "github.com/cockroachdb/errors"
	parquet "github.com/parquet-go/parquet-go"

	"github.com/riskibarqy/football-warehouse/internal/domain/match"
	"github.com/riskibarqy/football-warehouse/internal/domain/teamseason"
	"github.com/riskibarqy/football-warehouse/internal/domain/warehouse"
)

type MatchRow struct {
	IDMatch        string `parquet:"id_match"`
	IDDate         int64  `parquet:"id_date"`
	IDHomeTeam     int64  `parquet:"id_home_team"`
	IDAwayTeam     int64  `parquet:"id_away_team"`
	IDCompetition  int64  `parquet:"id_competition"`
	SeasonID       int64  `parquet:"season_id"`
	IDStadium      *int64 `parquet:"id_stadium,optional"`
	Stage          string `parquet:"stage"`
	Status         string `parquet:"status"`
	ResultHome     int32  `parquet:"result_home"`
	ResultAway     int32  `parquet:"result_away"`
	RegulationTime string `parquet:"regulation_time"`
	Penalties      string `parquet:"penalties"`
	Venue          string `parquet:"venue"`
}

type TeamSeasonRow struct {
	SeasonID             int64   `parquet:"season_id"`
	IDTeam               int64   `parquet:"id_team"`
	MatchesTotal         int32   `parquet:"matches_total"`
	MatchesHome          int32   `parquet:"matches_home"`
	MatchesAway          int32   `parquet:"matches_away"`
	Wins                 int32   `parquet:"wins"`
	Draws                int32   `parquet:"draws"`
	Losses               int32   `parquet:"losses"`
	WinsHome             int32   `parquet:"wins_home"`
	WinsAway             int32   `parquet:"wins_away"`
	DrawsHome            int32   `parquet:"draws_home"`
	DrawsAway            int32   `parquet:"draws_away"`
	LossesHome           int32   `parquet:"losses_home"`
	LossesAway           int32   `parquet:"losses_away"`
	Points               int32   `parquet:"points"`
	PointsHome           int32   `parquet:"points_home"`
	PointsAway           int32   `parquet:"points_away"`
	GoalsFor             int32   `parquet:"goals_for"`
	GoalsAgainst         int32   `parquet:"goals_against"`
	GoalsDiff            int32   `parquet:"goals_diff"`
	GoalsForHome         int32   `parquet:"goals_for_home"`
	GoalsForAway         int32   `parquet:"goals_for_away"`
	GoalsAgainstHome     int32   `parquet:"goals_against_home"`
	GoalsAgainstAway     int32   `parquet:"goals_against_away"`
	GoalsPerMatch        float64 `parquet:"goals_per_match"`
	GoalsAgainstPerMatch float64 `parquet:"goals_against_per_match"`
}

// Exporter mirrors the fact tables as snappy-compressed parquet files next
// to their CSV outputs.
type Exporter struct {
	dir string
}

func NewExporter(dir string) *Exporter {
	return &Exporter{dir: dir}
}

func (e *Exporter) Path(table string) string {
	return filepath.Join(e.dir, table+".parquet")
}

func (e *Exporter) ExportMatches(ctx context.Context, facts []match.Fact) error {
	rows := make([]MatchRow, 0, len(facts))
	for _, f := range facts {
		rows = append(rows, MatchRow{
			IDMatch:        f.MatchID,
			IDDate:         f.DateID,
			IDHomeTeam:     f.HomeTeamID,
			IDAwayTeam:     f.AwayTeamID,
			IDCompetition:  f.CompetitionID,
			SeasonID:       f.SeasonID,
			IDStadium:      f.StadiumID,
			Stage:          f.Stage,
			Status:         f.Status,
			ResultHome:     int32(f.ResultHome),
			ResultAway:     int32(f.ResultAway),
			RegulationTime: f.RegulationTime,
			Penalties:      f.Penalties,
			Venue:          f.Venue,
		})
	}
	return writeFile(ctx, e.Path(warehouse.TableMatch), rows, parquet.SchemaOf(new(MatchRow)))
}

func (e *Exporter) ExportTeamSeasons(ctx context.Context, stats []teamseason.Stat) error {
	rows := make([]TeamSeasonRow, 0, len(stats))
	for _, s := range stats {
		rows = append(rows, TeamSeasonRow{
			SeasonID:             s.SeasonID,
			IDTeam:               s.TeamID,
			MatchesTotal:         int32(s.MatchesTotal),
			MatchesHome:          int32(s.MatchesHome),
			MatchesAway:          int32(s.MatchesAway),
			Wins:                 int32(s.Wins),
			Draws:                int32(s.Draws),
			Losses:               int32(s.Losses),
			WinsHome:             int32(s.WinsHome),
			WinsAway:             int32(s.WinsAway),
			DrawsHome:            int32(s.DrawsHome),
			DrawsAway:            int32(s.DrawsAway),
			LossesHome:           int32(s.LossesHome),
			LossesAway:           int32(s.LossesAway),
			Points:               int32(s.Points),
			PointsHome:           int32(s.PointsHome),
			PointsAway:           int32(s.PointsAway),
			GoalsFor:             int32(s.GoalsFor),
			GoalsAgainst:         int32(s.GoalsAgainst),
			GoalsDiff:            int32(s.GoalsDiff),
			GoalsForHome:         int32(s.GoalsForHome),
			GoalsForAway:         int32(s.GoalsForAway),
			GoalsAgainstHome:     int32(s.GoalsAgainstHome),
			GoalsAgainstAway:     int32(s.GoalsAgainstAway),
			GoalsPerMatch:        s.GoalsPerMatch.InexactFloat64(),
			GoalsAgainstPerMatch: s.GoalsAgainstPerMatch.InexactFloat64(),
		})
	}
	return writeFile(ctx, e.Path(warehouse.TableTeamSeason), rows, parquet.SchemaOf(new(TeamSeasonRow)))
}

func writeFile[T any](ctx context.Context, path string, rows []T, schema *parquet.Schema) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return crerr.Wrapf(err, "create parquet dir for %s", path)
	}

	f, err := os.Create(path)
	if err != nil {
		return crerr.Wrapf(err, "create %s", path)
	}
	w := parquet.NewWriter(f, schema, parquet.Compression(&parquet.Snappy))
	for _, r := range rows {
		if err := w.Write(r); err != nil {
			_ = w.Close()
			_ = f.Close()
			return crerr.Wrapf(err, "write parquet row to %s", path)
		}
	}
	if err := w.Close(); err != nil {
		_ = f.Close()
		return crerr.Wrapf(err, "close parquet writer for %s", path)
	}
	if err := f.Close(); err != nil {
		return crerr.Wrapf(err, "close %s", path)
	}
	return nil
}
