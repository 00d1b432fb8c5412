package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/football-warehouse/internal/domain/match"
	"github.com/riskibarqy/football-warehouse/internal/domain/rawdata"
	"github.com/riskibarqy/football-warehouse/internal/domain/teamseason"
	"github.com/riskibarqy/football-warehouse/internal/domain/warehouse"
	idgen "github.com/riskibarqy/football-warehouse/internal/platform/id"
	"github.com/riskibarqy/football-warehouse/internal/platform/logging"
)

type noopLoader struct{}

func (noopLoader) Replace(context.Context, []rawdata.Table) error { return nil }

func NewNoopLoader() warehouse.Loader {
	return noopLoader{}
}

type noopExporter struct{}

func (noopExporter) ExportMatches(context.Context, []match.Fact) error { return nil }

func (noopExporter) ExportTeamSeasons(context.Context, []teamseason.Stat) error { return nil }

func NewNoopExporter() warehouse.FactExporter {
	return noopExporter{}
}

type noopReportWriter struct{}

func (noopReportWriter) WriteReport(context.Context, warehouse.Report) error { return nil }

func NewNoopReportWriter() warehouse.ReportWriter {
	return noopReportWriter{}
}

type ETLConfig struct {
	DataDir    string
	MatchesDir string
	DryRun     bool
}

type ETLService struct {
	reader      rawdata.Reader
	writer      rawdata.Writer
	normalizer  *MatchNormalizerService
	dimensions  *DimensionService
	facts       *MatchFactService
	scorers     *TopScorerService
	teamSeasons *TeamSeasonService
	exporter    warehouse.FactExporter
	reports     warehouse.ReportWriter
	loader      warehouse.Loader
	ids         idgen.Generator
	cfg         ETLConfig
	logger      *logging.Logger
	now         func() time.Time
}

func NewETLService(
	reader rawdata.Reader,
	writer rawdata.Writer,
	normalizer *MatchNormalizerService,
	dimensions *DimensionService,
	facts *MatchFactService,
	scorers *TopScorerService,
	teamSeasons *TeamSeasonService,
	exporter warehouse.FactExporter,
	reports warehouse.ReportWriter,
	loader warehouse.Loader,
	ids idgen.Generator,
	cfg ETLConfig,
	logger *logging.Logger,
) *ETLService {
	if logger == nil {
		logger = logging.NewNop()
	}
	if exporter == nil {
		exporter = NewNoopExporter()
	}
	if reports == nil {
		reports = NewNoopReportWriter()
	}
	if loader == nil {
		loader = NewNoopLoader()
	}
	if ids == nil {
		ids = idgen.NewUUIDGenerator()
	}

	return &ETLService{
		reader:      reader,
		writer:      writer,
		normalizer:  normalizer,
		dimensions:  dimensions,
		facts:       facts,
		scorers:     scorers,
		teamSeasons: teamSeasons,
		exporter:    exporter,
		reports:     reports,
		loader:      loader,
		ids:         ids,
		cfg:         cfg,
		logger:      logger,
		now:         time.Now,
	}
}

// Run executes the whole pipeline once: normalize match files, build
// dimensions, build facts with team backfill, clean scorer seeds, aggregate
// team seasons, then write every output table.
func (s *ETLService) Run(ctx context.Context) (warehouse.Report, error) {
	if strings.TrimSpace(s.cfg.MatchesDir) == "" || strings.TrimSpace(s.cfg.DataDir) == "" {
		return warehouse.Report{}, fmt.Errorf("%w: data and matches directories are required", ErrInvalidInput)
	}

	runID, err := s.ids.NewID()
	if err != nil {
		return warehouse.Report{}, fmt.Errorf("generate run id: %w", err)
	}
	ctx = logging.WithRunID(ctx, runID)

	report := warehouse.Report{
		RunID:     runID,
		StartedAt: s.now().UTC(),
		DryRun:    s.cfg.DryRun,
		Rows:      make(map[string]int),
	}
	s.logger.InfoContext(ctx, "etl run started", "matches_dir", s.cfg.MatchesDir, "dry_run", s.cfg.DryRun)

	normalized, err := s.normalizer.NormalizeTree(ctx, s.cfg.MatchesDir)
	if err != nil {
		return report, fmt.Errorf("normalize matches: %w", err)
	}
	report.FilesFound = normalized.FilesFound
	report.FilesRead = normalized.FilesRead
	report.SkippedFiles = append(report.SkippedFiles, normalized.Skipped...)
	report.MatchRecords = len(normalized.Records)
	report.RegeneratedMatchIDs = normalized.RegeneratedIDs
	report.NullDates = normalized.NullDates
	report.BareYearSeasons = normalized.BareYearSeasons
	if normalized.FilesRead == 0 {
		return report, fmt.Errorf("%w: %s", ErrNoMatchData, s.cfg.MatchesDir)
	}

	dims, skipped := s.dimensions.Build(ctx, s.cfg.DataDir, normalized.Records)
	report.SkippedFiles = append(report.SkippedFiles, skipped...)
	report.DroppedSeedRows = dims.DroppedSeedRows

	facts := s.facts.Build(ctx, normalized.Records, &dims)
	report.UnresolvedCompetitions = facts.UnresolvedCompetitions
	report.UnresolvedSeasons = facts.UnresolvedSeasons
	report.UnresolvedTeams = facts.UnresolvedTeams
	for _, t := range facts.NewTeams {
		report.NewTeams = append(report.NewTeams, warehouse.NewTeam{ID: t.ID, Name: t.Name})
	}

	scorers := s.scorers.Load(ctx, s.cfg.DataDir, dims.Teams, dims.Seasons)
	report.SkippedFiles = append(report.SkippedFiles, scorers.Skipped...)

	stats := s.teamSeasons.Aggregate(ctx, facts.Facts)

	tables := []rawdata.Table{
		TeamTable(dims.Teams),
		CompetitionTable(dims.Competitions),
		SeasonTable(dims.Seasons),
		StadiumTable(dims.Stadiums),
		DateTable(dims.Dates),
	}
	if scorers.HasAllTime {
		tables = append(tables, TopScorerAllTimeTable(scorers.AllTime))
	}
	if scorers.HasBySeason {
		tables = append(tables, TopScorerSeasonTable(scorers.BySeason))
	}
	tables = append(tables, MatchTable(facts.Facts), TeamSeasonTable(stats))

	champions := &seedLoader{reader: s.reader, logger: s.logger, dataDir: s.cfg.DataDir}
	if tbl, ok := champions.load(ctx, warehouse.SeedChampions); ok {
		tbl.Name = warehouse.TableChampions
		tables = append(tables, tbl)
	}
	report.SkippedFiles = append(report.SkippedFiles, champions.skipped...)

	for _, tbl := range tables {
		if err := s.writer.WriteTable(ctx, tbl); err != nil {
			return report, fmt.Errorf("write table %s: %w", tbl.Name, err)
		}
		report.Rows[tbl.Name] = tbl.Len()
		report.Outputs = append(report.Outputs, tbl.Name)
	}

	if !s.cfg.DryRun {
		if err := s.exporter.ExportMatches(ctx, facts.Facts); err != nil {
			return report, fmt.Errorf("export match facts: %w", err)
		}
		if err := s.exporter.ExportTeamSeasons(ctx, stats); err != nil {
			return report, fmt.Errorf("export team season facts: %w", err)
		}
		if err := s.loader.Replace(ctx, tables); err != nil {
			return report, fmt.Errorf("load warehouse: %w", err)
		}
	}

	report.FinishedAt = s.now().UTC()
	if !s.cfg.DryRun {
		if err := s.reports.WriteReport(ctx, report); err != nil {
			return report, fmt.Errorf("write report: %w", err)
		}
	}

	s.logger.InfoContext(ctx, "etl run finished",
		"tables", len(tables),
		"facts", len(facts.Facts),
		"team_seasons", len(stats),
		"skipped_files", len(report.SkippedFiles),
	)
	return report, nil
}
