package usecase

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/riskibarqy/football-warehouse/internal/domain/match"
	"github.com/riskibarqy/football-warehouse/internal/domain/rawdata"
	"github.com/riskibarqy/football-warehouse/internal/domain/warehouse"
	"github.com/riskibarqy/football-warehouse/internal/platform/column"
	"github.com/riskibarqy/football-warehouse/internal/platform/logging"
)

type MatchNormalizerService struct {
	reader rawdata.Reader
	logger *logging.Logger
}

func NewMatchNormalizerService(reader rawdata.Reader, logger *logging.Logger) *MatchNormalizerService {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &MatchNormalizerService{
		reader: reader,
		logger: logger,
	}
}

type NormalizeResult struct {
	Records         []match.Record
	FilesFound      int
	FilesRead       int
	Skipped         []warehouse.SkippedFile
	BareYearSeasons []string
	RegeneratedIDs  int
	NullDates       int
}

// NormalizeTree reads every CSV under root in path order. Unreadable files
// are skipped and reported; only a failure to list the tree is returned.
func (s *MatchNormalizerService) NormalizeTree(ctx context.Context, root string) (NormalizeResult, error) {
	root = strings.TrimSpace(root)
	if root == "" {
		return NormalizeResult{}, fmt.Errorf("%w: matches directory is required", ErrInvalidInput)
	}

	paths, err := s.reader.ListTables(ctx, root, true)
	if err != nil {
		return NormalizeResult{}, fmt.Errorf("list match files: %w", err)
	}

	result := NormalizeResult{FilesFound: len(paths)}
	bareYears := make(map[string]struct{})
	seenIDs := make(map[string]struct{})

	for _, path := range paths {
		tbl, err := s.reader.ReadTable(ctx, path)
		if err != nil {
			s.logger.WarnContext(ctx, "skip unreadable match file", "path", path, "error", err)
			result.Skipped = append(result.Skipped, warehouse.SkippedFile{Path: path, Reason: err.Error()})
			continue
		}
		result.FilesRead++

		records := s.NormalizeTable(path, tbl)
		for i := range records {
			rec := &records[i]
			if _, dup := seenIDs[rec.MatchID]; rec.MatchID == "" || dup {
				rec.MatchID = regeneratedMatchID(path, rec.RowIndex)
				result.RegeneratedIDs++
			}
			seenIDs[rec.MatchID] = struct{}{}

			if rec.Date == nil {
				result.NullDates++
			}
		}

		if len(records) > 0 {
			if _, bare := match.InferSeason(path, records[0].Competition); bare {
				bareYears[records[0].Season] = struct{}{}
				s.logger.WarnContext(ctx, "single year season will not join two-year seasons",
					"path", path,
					"season", records[0].Season,
				)
			}
		}

		s.logger.DebugContext(ctx, "match file normalized", "path", path, "rows", len(records))
		result.Records = append(result.Records, records...)
	}

	for season := range bareYears {
		result.BareYearSeasons = append(result.BareYearSeasons, season)
	}
	sort.Strings(result.BareYearSeasons)

	s.logger.InfoContext(ctx, "match files normalized",
		"files_found", result.FilesFound,
		"files_read", result.FilesRead,
		"files_skipped", len(result.Skipped),
		"records", len(result.Records),
		"regenerated_ids", result.RegeneratedIDs,
	)

	return result, nil
}

// NormalizeTable maps one decoded file onto match records. The match id
// falls back to the 0-based row index when no id column is found.
func (s *MatchNormalizerService) NormalizeTable(path string, tbl rawdata.Table) []match.Record {
	headers := column.NormalizeAll(tbl.Columns)
	idx := make(map[match.Field]int, len(match.Fields))
	for _, field := range match.Fields {
		idx[field] = column.ResolveIndex(headers, match.ColumnAliases[field])
	}

	competition := match.InferCompetition(path)
	season, _ := match.InferSeason(path, competition)

	out := make([]match.Record, 0, tbl.Len())
	for row := 0; row < tbl.Len(); row++ {
		cell := func(field match.Field) string {
			v, _ := tbl.Cell(row, idx[field])
			return strings.TrimSpace(v)
		}

		rec := match.Record{
			MatchID:        cell(match.FieldID),
			Stage:          cell(match.FieldStage),
			Status:         cell(match.FieldStatus),
			RawDate:        cell(match.FieldDate),
			HomeTeamName:   cell(match.FieldHome),
			AwayTeamName:   cell(match.FieldAway),
			ResultHome:     cell(match.FieldResultHome),
			ResultAway:     cell(match.FieldResultAway),
			RegulationTime: cell(match.FieldRegulationTime),
			Penalties:      cell(match.FieldPenalties),
			Venue:          cell(match.FieldVenue),
			Capacity:       cell(match.FieldCapacity),
			Competition:    competition,
			Season:         season,
			SourceFile:     path,
			RowIndex:       row,
		}
		if idx[match.FieldID] < 0 {
			rec.MatchID = strconv.Itoa(row)
		}
		if t, ok := match.ParseDate(rec.RawDate); ok {
			rec.Date = &t
		}

		out = append(out, rec)
	}

	return out
}

func regeneratedMatchID(path string, row int) string {
	base := filepath.Base(strings.ReplaceAll(path, `\`, "/"))
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return stem + "-" + strconv.Itoa(row)
}
