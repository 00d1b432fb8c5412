package app

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/football-warehouse/internal/config"
	"github.com/riskibarqy/football-warehouse/internal/domain/rawdata"
	"github.com/riskibarqy/football-warehouse/internal/domain/team"
	"github.com/riskibarqy/football-warehouse/internal/domain/warehouse"
	"github.com/riskibarqy/football-warehouse/internal/infrastructure/csvstore"
	"github.com/riskibarqy/football-warehouse/internal/infrastructure/parquetstore"
	"github.com/riskibarqy/football-warehouse/internal/infrastructure/report"
	"github.com/riskibarqy/football-warehouse/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/football-warehouse/internal/infrastructure/repository/postgres"
	idgen "github.com/riskibarqy/football-warehouse/internal/platform/id"
	"github.com/riskibarqy/football-warehouse/internal/platform/logging"
	"github.com/riskibarqy/football-warehouse/internal/platform/namematch"
	"github.com/riskibarqy/football-warehouse/internal/usecase"
)

// Pipeline is the wired ETL service plus the resources it holds open.
type Pipeline struct {
	ETL *usecase.ETLService
	db  *sqlx.DB
}

func (p *Pipeline) Close() error {
	if p == nil || p.db == nil {
		return nil
	}
	return p.db.Close()
}

// NewPipeline wires the ETL from cfg. A dry run writes outputs to memory and
// never touches the database, parquet mirror, or report file.
func NewPipeline(ctx context.Context, cfg config.Config, dryRun bool, logger *logging.Logger) (*Pipeline, error) {
	if logger == nil {
		logger = logging.NewNop()
	}

	reader := csvstore.NewReader()
	aliases, err := loadAliases(ctx, reader, cfg)
	if err != nil {
		return nil, err
	}

	var writer rawdata.Writer = csvstore.NewWriter(cfg.OutputDir)
	if dryRun {
		writer = memory.NewTableStore(cfg.OutputDir)
	}

	var exporter warehouse.FactExporter
	if cfg.ParquetEnabled {
		exporter = parquetstore.NewExporter(cfg.OutputDir)
	}
	var reports warehouse.ReportWriter
	if cfg.ReportEnabled {
		reports = report.NewWriter(cfg.OutputDir)
	}

	pipeline := &Pipeline{}
	var loader warehouse.Loader
	if cfg.DBLoadEnabled && !dryRun {
		db, err := openDB(ctx, cfg)
		if err != nil {
			return nil, err
		}
		pipeline.db = db
		loader = postgres.NewWarehouseLoader(db, cfg.DBLoadBatchSize)
		logger.InfoContext(ctx, "warehouse load enabled", "db_name", dbNameFromURL(cfg.DBURL))
	}

	pipeline.ETL = usecase.NewETLService(
		reader,
		writer,
		usecase.NewMatchNormalizerService(reader, logger.Named("normalize")),
		usecase.NewDimensionService(reader, logger.Named("dimensions")),
		usecase.NewMatchFactService(namematch.NewTeamResolver(aliases.Match), logger.Named("facts")),
		usecase.NewTopScorerService(reader, namematch.NewTopScorerResolver(aliases.TopScorer), logger.Named("topscorers")),
		usecase.NewTeamSeasonService(logger.Named("team_season")),
		exporter,
		reports,
		loader,
		idgen.NewUUIDGenerator(),
		usecase.ETLConfig{
			DataDir:    cfg.DataDir,
			MatchesDir: cfg.MatchesDir,
			DryRun:     dryRun,
		},
		logger,
	)

	return pipeline, nil
}

func NewSchemaValidator(logger *logging.Logger) *usecase.SchemaValidationService {
	return usecase.NewSchemaValidationService(csvstore.NewReader(), logger.Named("validate"))
}

func loadAliases(ctx context.Context, repo team.AliasRepository, cfg config.Config) (team.Aliases, error) {
	aliases := team.DefaultAliases()

	matchOverride, err := repo.LoadAliases(ctx, cfg.TeamAliasesFile)
	if err != nil {
		return team.Aliases{}, fmt.Errorf("load team aliases: %w", err)
	}
	scorerOverride, err := repo.LoadAliases(ctx, cfg.TopScorerAliasesFile)
	if err != nil {
		return team.Aliases{}, fmt.Errorf("load top scorer aliases: %w", err)
	}

	aliases.Match = team.Merge(aliases.Match, matchOverride)
	aliases.TopScorer = team.Merge(aliases.TopScorer, scorerOverride)
	return aliases, nil
}
