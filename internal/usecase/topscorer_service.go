package usecase

import (
	"context"
	"strings"

	"github.com/riskibarqy/football-warehouse/internal/domain/dimension"
	"github.com/riskibarqy/football-warehouse/internal/domain/match"
	"github.com/riskibarqy/football-warehouse/internal/domain/rawdata"
	"github.com/riskibarqy/football-warehouse/internal/domain/team"
	"github.com/riskibarqy/football-warehouse/internal/domain/topscorers"
	"github.com/riskibarqy/football-warehouse/internal/domain/warehouse"
	"github.com/riskibarqy/football-warehouse/internal/platform/column"
	"github.com/riskibarqy/football-warehouse/internal/platform/logging"
	"github.com/riskibarqy/football-warehouse/internal/platform/namematch"
)

var (
	scorerNameAliases     = []string{"name", "player_name"}
	scorerGoalsAliases    = []string{"goals", "goal_count"}
	scorerTeamAliases     = []string{"team", "team_name"}
	scorerTeamIDAliases   = []string{"id_team", "team_id"}
	scorerSeasonAliases   = []string{"season", "season_name"}
	scorerSeasonIDAliases = []string{"season_id", "id_season"}
)

type TopScorerService struct {
	reader   rawdata.Reader
	resolver *namematch.Resolver
	logger   *logging.Logger
}

func NewTopScorerService(reader rawdata.Reader, resolver *namematch.Resolver, logger *logging.Logger) *TopScorerService {
	if resolver == nil {
		resolver = namematch.NewTopScorerResolver(team.DefaultAliases().TopScorer)
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &TopScorerService{
		reader:   reader,
		resolver: resolver,
		logger:   logger,
	}
}

type TopScorerResult struct {
	AllTime     []topscorers.AllTime
	HasAllTime  bool
	BySeason    []topscorers.BySeason
	HasBySeason bool
	Skipped     []warehouse.SkippedFile
}

// Load cleans the optional scorer seeds. A seed that is absent produces no
// output table at all.
func (s *TopScorerService) Load(ctx context.Context, dataDir string, teams team.Dimension, seasons dimension.Seasons) TopScorerResult {
	seeds := &seedLoader{reader: s.reader, logger: s.logger, dataDir: dataDir}
	idx := teamIndex(teams)

	var result TopScorerResult
	if tbl, ok := seeds.load(ctx, warehouse.SeedTopScorerAllTime); ok {
		result.AllTime = s.allTime(tbl, idx)
		result.HasAllTime = true
		s.logger.InfoContext(ctx, "all-time top scorers loaded", "rows", len(result.AllTime))
	}
	if tbl, ok := seeds.load(ctx, warehouse.SeedTopScorerSeason); ok {
		result.BySeason = s.bySeason(tbl, idx, dimension.SeasonIDs(seasons))
		result.HasBySeason = true
		s.logger.InfoContext(ctx, "season top scorers loaded", "rows", len(result.BySeason))
	}
	result.Skipped = seeds.skipped

	return result
}

type scorerColumns struct {
	name, goals, team, teamID int
}

func resolveScorerColumns(headers []string) scorerColumns {
	cols := scorerColumns{
		name:   column.ResolveIndex(headers, scorerNameAliases),
		goals:  column.ResolveIndex(headers, scorerGoalsAliases),
		team:   column.ResolveIndex(headers, scorerTeamAliases),
		teamID: column.ResolveIndex(headers, scorerTeamIDAliases),
	}
	// A substring hit of "team" on id_team leaves no team-name column, even
	// when a later header such as club_team_name would have matched.
	if cols.team >= 0 && cols.team == cols.teamID {
		cols.team = -1
	}
	return cols
}

func (s *TopScorerService) allTime(tbl rawdata.Table, idx *namematch.Index) []topscorers.AllTime {
	cols := resolveScorerColumns(column.NormalizeAll(tbl.Columns))

	out := make([]topscorers.AllTime, 0, tbl.Len())
	for row := 0; row < tbl.Len(); row++ {
		name, _ := tbl.Cell(row, cols.name)
		goals, _ := tbl.Cell(row, cols.goals)
		out = append(out, topscorers.AllTime{
			ID:         int64(row + 1),
			PlayerName: strings.TrimSpace(name),
			TeamID:     s.scorerTeamID(tbl, row, cols, idx),
			Goals:      match.ParseGoals(goals),
		})
	}
	return out
}

func (s *TopScorerService) bySeason(tbl rawdata.Table, idx *namematch.Index, seasonIDs map[string]int64) []topscorers.BySeason {
	headers := column.NormalizeAll(tbl.Columns)
	cols := resolveScorerColumns(headers)
	seasonIdx := column.ResolveIndex(headers, scorerSeasonAliases)
	seasonIDIdx := column.ResolveIndex(headers, scorerSeasonIDAliases)
	if seasonIdx >= 0 && seasonIdx == seasonIDIdx {
		seasonIdx = -1
	}

	out := make([]topscorers.BySeason, 0, tbl.Len())
	for row := 0; row < tbl.Len(); row++ {
		name, _ := tbl.Cell(row, cols.name)
		goals, _ := tbl.Cell(row, cols.goals)

		seasonID := match.UnresolvedID
		rawSeasonID, _ := tbl.Cell(row, seasonIDIdx)
		if id, ok := match.ParseID(rawSeasonID); ok {
			seasonID = id
		} else if label, ok := tbl.Cell(row, seasonIdx); ok {
			if id, ok := seasonIDs[strings.TrimSpace(label)]; ok {
				seasonID = id
			}
		}

		out = append(out, topscorers.BySeason{
			ID:         int64(row + 1),
			SeasonID:   seasonID,
			PlayerName: strings.TrimSpace(name),
			TeamID:     s.scorerTeamID(tbl, row, cols, idx),
			Goals:      match.ParseGoals(goals),
		})
	}
	return out
}

// scorerTeamID prefers a positive source id, then resolves the primary team
// named in the row.
func (s *TopScorerService) scorerTeamID(tbl rawdata.Table, row int, cols scorerColumns, idx *namematch.Index) int64 {
	if raw, ok := tbl.Cell(row, cols.teamID); ok {
		if id, ok := match.ParseID(raw); ok && id > 0 {
			return id
		}
	}

	raw, ok := tbl.Cell(row, cols.team)
	if !ok {
		return match.UnresolvedID
	}
	primary := topscorers.PrimaryTeam(raw)
	if primary == "" {
		return match.UnresolvedID
	}
	id, _ := s.resolver.Resolve(primary, idx)
	return id
}
