package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/riskibarqy/football-warehouse/internal/domain/dimension"
	"github.com/riskibarqy/football-warehouse/internal/domain/match"
	"github.com/riskibarqy/football-warehouse/internal/domain/rawdata"
	"github.com/riskibarqy/football-warehouse/internal/domain/team"
	"github.com/riskibarqy/football-warehouse/internal/domain/warehouse"
	"github.com/riskibarqy/football-warehouse/internal/platform/column"
	"github.com/riskibarqy/football-warehouse/internal/platform/logging"
)

var (
	teamNameAliases      = []string{"team", "team_name", "name"}
	teamIDAliases        = []string{"id_team", "team_id", "id"}
	teamLocationAliases  = []string{"location", "city", "ville"}
	teamStadiumAliases   = []string{"stadium_id", "stade_id", "stadium"}
	teamNameFallback     = []string{"nom_equipe", "equipe", "club", "team_name", "name"}
	competitionAliases   = []string{"competition", "name"}
	competitionIDAliases = []string{"id_competition", "competition_id", "id"}
	seasonNameAliases    = []string{"season", "season_name"}
	seasonIDAliases      = []string{"season_id", "id_season", "id"}
	stadiumNameAliases   = []string{"stadium", "venue", "name"}
	stadiumIDAliases     = []string{"id_stadium", "stadium_id", "id"}
	stadiumCapAliases    = []string{"capacity", "stadium_capacity"}
)

// Dimensions is the full set of lookup tables for one run.
type Dimensions struct {
	Teams        team.Dimension
	Competitions []dimension.Competition
	Seasons      dimension.Seasons
	Stadiums     []dimension.Stadium
	Dates        []dimension.Date

	// DroppedSeedRows counts seed rows rejected for a blank name or a bad id.
	DroppedSeedRows int
}

type DimensionService struct {
	reader rawdata.Reader
	logger *logging.Logger
}

func NewDimensionService(reader rawdata.Reader, logger *logging.Logger) *DimensionService {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &DimensionService{
		reader: reader,
		logger: logger,
	}
}

// Build loads seeds from dataDir where present and derives the remaining
// dimensions from records. Seed surrogate keys are kept verbatim; derived
// dimensions are sorted and numbered 1..n.
func (s *DimensionService) Build(ctx context.Context, dataDir string, records []match.Record) (Dimensions, []warehouse.SkippedFile) {
	seeds := &seedLoader{reader: s.reader, logger: s.logger, dataDir: dataDir}

	var dims Dimensions
	if tbl, ok := seeds.load(ctx, warehouse.SeedTeam); ok {
		dims.Teams = teamsFromSeed(ctx, seeds, tbl)
	} else {
		dims.Teams = teamsFromRecords(records)
	}

	if tbl, ok := seeds.load(ctx, warehouse.SeedCompetition); ok {
		dims.Competitions = competitionsFromSeed(ctx, seeds, tbl)
	} else {
		dims.Competitions = competitionsFromRecords(records)
	}

	if tbl, ok := seeds.load(ctx, warehouse.SeedSeason); ok {
		if seasons, ok := seasonsFromSeed(ctx, seeds, tbl); ok {
			dims.Seasons = seasons
		} else {
			s.logger.WarnContext(ctx, "season seed lacks season or id column, deriving from matches")
			dims.Seasons = seasonsFromRecords(records)
		}
	} else {
		dims.Seasons = seasonsFromRecords(records)
	}

	if tbl, ok := seeds.load(ctx, warehouse.SeedStadium); ok {
		dims.Stadiums = stadiumsFromSeed(ctx, seeds, tbl)
	} else {
		dims.Stadiums = stadiumsFromRecords(records)
	}

	dims.Dates = datesFromRecords(records)
	dims.DroppedSeedRows = seeds.dropped

	s.logger.InfoContext(ctx, "dimensions built",
		"teams", len(dims.Teams.Teams),
		"competitions", len(dims.Competitions),
		"seasons", len(dims.Seasons.Items),
		"stadiums", len(dims.Stadiums),
		"dates", len(dims.Dates),
	)

	return dims, seeds.skipped
}

func teamsFromSeed(ctx context.Context, seeds *seedLoader, tbl rawdata.Table) team.Dimension {
	headers := column.NormalizeAll(tbl.Columns)
	nameIdx, idIdx := seedKeys(headers, teamNameAliases, teamIDAliases, teamNameFallback)

	locationIdx, stadiumIdx := -1, -1
	if idIdx >= 0 {
		locationIdx = column.ResolveIndex(headers, teamLocationAliases)
		stadiumIdx = column.ResolveIndex(headers, teamStadiumAliases)
	}

	rows := seeds.keyedRows(ctx, warehouse.SeedTeam, tbl, nameIdx, idIdx)

	out := make([]team.Team, 0, len(rows))
	for _, r := range rows {
		t := team.Team{ID: r.ID, Name: r.Name}
		if v, ok := tbl.Cell(r.Row, locationIdx); ok {
			t.Location = strings.TrimSpace(v)
		}
		if v, ok := tbl.Cell(r.Row, stadiumIdx); ok {
			if id, ok := match.ParseID(v); ok && id != match.UnresolvedID {
				t.StadiumID = &id
			}
		}
		out = append(out, t)
	}
	return team.Dimension{Teams: out}
}

func teamsFromRecords(records []match.Record) team.Dimension {
	names := distinctSorted(records, func(r match.Record) []string {
		return []string{r.HomeTeamName, r.AwayTeamName}
	})
	out := make([]team.Team, 0, len(names))
	for i, name := range names {
		out = append(out, team.Team{ID: int64(i + 1), Name: name})
	}
	return team.Dimension{Teams: out}
}

func competitionsFromSeed(ctx context.Context, seeds *seedLoader, tbl rawdata.Table) []dimension.Competition {
	headers := column.NormalizeAll(tbl.Columns)
	nameIdx, idIdx := seedKeys(headers, competitionAliases, competitionIDAliases, nil)

	rows := seeds.keyedRows(ctx, warehouse.SeedCompetition, tbl, nameIdx, idIdx)
	out := make([]dimension.Competition, 0, len(rows))
	for _, r := range rows {
		out = append(out, dimension.Competition{ID: r.ID, Name: r.Name})
	}
	return out
}

func competitionsFromRecords(records []match.Record) []dimension.Competition {
	names := distinctSorted(records, func(r match.Record) []string { return []string{r.Competition} })
	out := make([]dimension.Competition, 0, len(names))
	for i, name := range names {
		out = append(out, dimension.Competition{ID: int64(i + 1), Name: name})
	}
	return out
}

// seasonsFromSeed keeps every column other than the season and id columns
// verbatim, in seed order. It reports false when either key column is
// missing.
func seasonsFromSeed(ctx context.Context, seeds *seedLoader, tbl rawdata.Table) (dimension.Seasons, bool) {
	headers := column.NormalizeAll(tbl.Columns)
	nameIdx := column.ResolveIndex(headers, seasonNameAliases)
	idIdx := column.ResolveIndex(headers, seasonIDAliases)
	if nameIdx < 0 || idIdx < 0 {
		return dimension.Seasons{}, false
	}
	nameIdx, idIdx = seedKeys(headers, seasonNameAliases, seasonIDAliases, nil)

	extraIdx := make([]int, 0, len(headers))
	extraCols := make([]string, 0, len(headers))
	for i, col := range tbl.Columns {
		if i == nameIdx || i == idIdx {
			continue
		}
		extraIdx = append(extraIdx, i)
		extraCols = append(extraCols, strings.TrimSpace(col))
	}

	rows := seeds.keyedRows(ctx, warehouse.SeedSeason, tbl, nameIdx, idIdx)
	items := make([]dimension.Season, 0, len(rows))
	for _, r := range rows {
		extras := make([]string, 0, len(extraIdx))
		for _, i := range extraIdx {
			v, _ := tbl.Cell(r.Row, i)
			extras = append(extras, v)
		}
		items = append(items, dimension.Season{ID: r.ID, Name: r.Name, Extras: extras})
	}
	return dimension.Seasons{ExtraColumns: extraCols, Items: items}, true
}

func seasonsFromRecords(records []match.Record) dimension.Seasons {
	names := distinctSorted(records, func(r match.Record) []string { return []string{r.Season} })
	items := make([]dimension.Season, 0, len(names))
	for i, name := range names {
		items = append(items, dimension.Season{ID: int64(i + 1), Name: name})
	}
	return dimension.Seasons{Items: items}
}

func stadiumsFromSeed(ctx context.Context, seeds *seedLoader, tbl rawdata.Table) []dimension.Stadium {
	headers := column.NormalizeAll(tbl.Columns)
	nameIdx, idIdx := seedKeys(headers, stadiumNameAliases, stadiumIDAliases, nil)
	capIdx := column.ResolveIndex(headers, stadiumCapAliases)
	if capIdx == nameIdx || capIdx == idIdx {
		capIdx = -1
	}

	rows := seeds.keyedRows(ctx, warehouse.SeedStadium, tbl, nameIdx, idIdx)
	out := make([]dimension.Stadium, 0, len(rows))
	for _, r := range rows {
		capacity, _ := tbl.Cell(r.Row, capIdx)
		out = append(out, dimension.Stadium{ID: r.ID, Name: r.Name, Capacity: strings.TrimSpace(capacity)})
	}
	return out
}

func stadiumsFromRecords(records []match.Record) []dimension.Stadium {
	capacity := make(map[string]string)
	for _, r := range records {
		if r.Venue == "" || r.Capacity == "" {
			continue
		}
		if _, ok := capacity[r.Venue]; !ok {
			capacity[r.Venue] = r.Capacity
		}
	}

	names := distinctSorted(records, func(r match.Record) []string { return []string{r.Venue} })
	out := make([]dimension.Stadium, 0, len(names))
	for i, name := range names {
		out = append(out, dimension.Stadium{ID: int64(i + 1), Name: name, Capacity: capacity[name]})
	}
	return out
}

// datesFromRecords keeps only parsed dates, distinct by join key, in time
// order.
func datesFromRecords(records []match.Record) []dimension.Date {
	seen := make(map[string]struct{})
	times := make([]time.Time, 0, len(records))
	for _, r := range records {
		key, ok := r.DateKey()
		if !ok {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		times = append(times, *r.Date)
	}
	sort.SliceStable(times, func(i, j int) bool { return times[i].Before(times[j]) })

	out := make([]dimension.Date, 0, len(times))
	for i, t := range times {
		out = append(out, dimension.Date{ID: int64(i + 1), Time: t})
	}
	return out
}

func distinctSorted(records []match.Record, values func(match.Record) []string) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, r := range records {
		for _, v := range values(r) {
			if v == "" {
				continue
			}
			if _, dup := seen[v]; dup {
				continue
			}
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	sort.Strings(out)
	return out
}
