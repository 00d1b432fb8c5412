package postgres

import (
	"context"
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/football-warehouse/internal/domain/rawdata"
	"github.com/riskibarqy/football-warehouse/internal/domain/warehouse"
	qb "github.com/riskibarqy/football-warehouse/internal/platform/querybuilder"
)

const defaultBatchSize = 500

// relation maps an output table onto its warehouse relation. extras, when
// set, names a jsonb column that receives every undeclared source column.
type relation struct {
	name    string
	columns []string
	extras  string
}

var relations = map[string]relation{
	warehouse.TableTeam: {
		name:    "d_team",
		columns: []string{"id_team", "team_name", "location", "stadium_id"},
	},
	warehouse.TableCompetition: {
		name:    "d_competition",
		columns: []string{"id_competition", "competition"},
	},
	warehouse.TableSeason: {
		name:    "d_season",
		columns: []string{"season_id", "season"},
		extras:  "extras",
	},
	warehouse.TableStadium: {
		name:    "d_stadium",
		columns: []string{"id_stadium", "stadium_name", "capacity"},
	},
	warehouse.TableDate: {
		name:    "d_date",
		columns: []string{"id_date", "date", "time", "year", "month", "day", "date_iso"},
	},
	warehouse.TableTopScorerAllTime: {
		name:    "d_topscorers_alltime",
		columns: []string{"id_topscorer", "player_name", "id_team", "goals"},
	},
	warehouse.TableTopScorerSeason: {
		name:    "d_topscorers_by_season",
		columns: []string{"id_topscorer_season", "season_id", "player_name", "id_team", "goals"},
	},
	warehouse.TableMatch: {
		name: "f_match",
		columns: []string{
			"id_match", "id_date", "id_home_team", "id_away_team", "id_competition",
			"season_id", "id_stadium", "stage", "status", "result_home", "result_away",
			"regulation_time", "penalties", "venue",
		},
	},
	warehouse.TableTeamSeason: {
		name: "f_team_season",
		columns: []string{
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
		},
	},
}

type statement struct {
	query string
	args  []any
}

type WarehouseLoader struct {
	db        *sqlx.DB
	batchSize int
}

func NewWarehouseLoader(db *sqlx.DB, batchSize int) *WarehouseLoader {
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	return &WarehouseLoader{db: db, batchSize: batchSize}
}

// Replace clears and refills every known relation inside one transaction.
// Tables without a relation are ignored.
func (l *WarehouseLoader) Replace(ctx context.Context, tables []rawdata.Table) error {
	stmts, err := replaceStatements(tables, l.batchSize)
	if err != nil {
		return err
	}
	if len(stmts) == 0 {
		return nil
	}

	tx, err := l.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx replace warehouse: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, stmt := range stmts {
		if _, err := tx.ExecContext(ctx, stmt.query, stmt.args...); err != nil {
			return fmt.Errorf("exec %s: %w", formatQueryForLog(stmt.query), err)
		}
	}
	if err := verifyCounts(ctx, tx, tables); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx replace warehouse: %w", err)
	}
	return nil
}

// verifyCounts compares each relation's row count with the table it was
// loaded from before the transaction commits.
func verifyCounts(ctx context.Context, tx *sqlx.Tx, tables []rawdata.Table) error {
	for _, tbl := range tables {
		rel, ok := relations[tbl.Name]
		if !ok {
			continue
		}
		query, args, err := countQuery(rel.name)
		if err != nil {
			return err
		}
		var n int
		if err := tx.GetContext(ctx, &n, query, args...); err != nil {
			return fmt.Errorf("count %s: %w", rel.name, err)
		}
		if n != tbl.Len() {
			return fmt.Errorf("%s has %d rows after load, want %d", rel.name, n, tbl.Len())
		}
	}
	return nil
}

func countQuery(name string) (string, []any, error) {
	query, args, err := qb.Select("COUNT(*)").From(name).ToSQL()
	if err != nil {
		return "", nil, fmt.Errorf("build count %s query: %w", name, err)
	}
	return query, args, nil
}

func replaceStatements(tables []rawdata.Table, batchSize int) ([]statement, error) {
	out := make([]statement, 0)
	for _, tbl := range tables {
		rel, ok := relations[tbl.Name]
		if !ok {
			continue
		}

		query, args, err := qb.DeleteFrom(rel.name).ToSQL()
		if err != nil {
			return nil, fmt.Errorf("build clear %s query: %w", rel.name, err)
		}
		out = append(out, statement{query: query, args: args})

		inserts, err := insertStatements(rel, tbl, batchSize)
		if err != nil {
			return nil, err
		}
		out = append(out, inserts...)
	}
	return out, nil
}

func insertStatements(rel relation, tbl rawdata.Table, batchSize int) ([]statement, error) {
	if tbl.Len() == 0 {
		return nil, nil
	}

	columns := append([]string(nil), rel.columns...)
	source := make([]int, len(rel.columns))
	declared := make(map[int]struct{}, len(rel.columns))
	for i, col := range rel.columns {
		source[i] = tbl.ColumnIndex(col)
		if source[i] >= 0 {
			declared[source[i]] = struct{}{}
		}
	}

	extraIdx := make([]int, 0)
	if rel.extras != "" {
		columns = append(columns, rel.extras)
		for i := range tbl.Columns {
			if _, ok := declared[i]; !ok {
				extraIdx = append(extraIdx, i)
			}
		}
	}

	batchSize = qb.RowsPerInsert(len(columns), batchSize)
	out := make([]statement, 0, tbl.Len()/batchSize+1)
	for start := 0; start < tbl.Len(); start += batchSize {
		end := start + batchSize
		if end > tbl.Len() {
			end = tbl.Len()
		}

		ins := qb.InsertInto(rel.name).Columns(columns...)
		for row := start; row < end; row++ {
			values := make([]any, 0, len(columns))
			for _, idx := range source {
				values = append(values, nullable(tbl, row, idx))
			}
			if rel.extras != "" {
				extras, err := extrasJSON(tbl, row, extraIdx)
				if err != nil {
					return nil, fmt.Errorf("encode %s extras: %w", rel.name, err)
				}
				values = append(values, extras)
			}
			ins.Values(values...)
		}

		query, args, err := ins.ToSQL()
		if err != nil {
			return nil, fmt.Errorf("build insert %s query: %w", rel.name, err)
		}
		out = append(out, statement{query: query, args: args})
	}
	return out, nil
}

func nullable(tbl rawdata.Table, row, col int) any {
	v, ok := tbl.Cell(row, col)
	if !ok {
		return nil
	}
	return v
}

func extrasJSON(tbl rawdata.Table, row int, cols []int) (string, error) {
	values := make(map[string]string, len(cols))
	for _, col := range cols {
		v, _ := tbl.Cell(row, col)
		values[tbl.Columns[col]] = v
	}
	encoded, err := sonic.Marshal(values)
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}
