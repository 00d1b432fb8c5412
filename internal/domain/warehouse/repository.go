package warehouse

import (
	"context"

	"github.com/riskibarqy/football-warehouse/internal/domain/match"
	"github.com/riskibarqy/football-warehouse/internal/domain/rawdata"
	"github.com/riskibarqy/football-warehouse/internal/domain/teamseason"
)

// Loader replaces the warehouse database contents with a run's output.
type Loader interface {
	Replace(ctx context.Context, tables []rawdata.Table) error
}

// FactExporter writes the fact tables in a columnar format.
type FactExporter interface {
	ExportMatches(ctx context.Context, facts []match.Fact) error
	ExportTeamSeasons(ctx context.Context, stats []teamseason.Stat) error
}

type ReportWriter interface {
	WriteReport(ctx context.Context, report Report) error
}
