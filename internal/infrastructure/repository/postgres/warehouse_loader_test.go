package postgres

import (
	"os"
	"regexp"
	"testing"

	"github.com/riskibarqy/football-warehouse/internal/domain/rawdata"
	"github.com/riskibarqy/football-warehouse/internal/domain/warehouse"
)

func TestReplaceStatements_BatchesAndNulls(t *testing.T) {
	t.Parallel()

	tables := []rawdata.Table{
		{
			Name:    warehouse.TableTeam,
			Columns: []string{"id_team", "team_name", "location", "stadium_id"},
			Rows:    [][]string{{"1", "Esperance Tunis", "", "3"}, {"2", "CS Sfaxien", "Sfax", ""}, {"3", "Club Africain", "", ""}},
		},
		{Name: warehouse.TableChampions, Columns: []string{"season"}, Rows: [][]string{{"2019-20"}}},
	}

	stmts, err := replaceStatements(tables, 2)
	if err != nil {
		t.Fatalf("build statements: %v", err)
	}
	if len(stmts) != 3 {
		t.Fatalf("expected delete and two inserts, got %d", len(stmts))
	}
	if stmts[0].query != "DELETE FROM d_team" {
		t.Fatalf("unexpected delete query: %s", stmts[0].query)
	}

	wantInsert := "INSERT INTO d_team (id_team, team_name, location, stadium_id) VALUES ($1, $2, $3, $4), ($5, $6, $7, $8)"
	if stmts[1].query != wantInsert {
		t.Fatalf("unexpected insert query:\n got: %s\nwant: %s", stmts[1].query, wantInsert)
	}
	if len(stmts[1].args) != 8 {
		t.Fatalf("unexpected arg count: %d", len(stmts[1].args))
	}
	if stmts[1].args[2] != nil || stmts[1].args[3] != "3" || stmts[1].args[7] != nil {
		t.Fatalf("blank cells must load as NULL: %v", stmts[1].args)
	}
	if len(stmts[2].args) != 4 {
		t.Fatalf("unexpected last batch args: %v", stmts[2].args)
	}
}

func TestInsertStatements_SeasonExtras(t *testing.T) {
	t.Parallel()

	tbl := rawdata.Table{
		Name:    warehouse.TableSeason,
		Columns: []string{"season_id", "season", "BeforeAfterIndependence"},
		Rows:    [][]string{{"5", "2019-20", "after"}},
	}

	stmts, err := insertStatements(relations[warehouse.TableSeason], tbl, 500)
	if err != nil {
		t.Fatalf("build statements: %v", err)
	}
	if len(stmts) != 1 {
		t.Fatalf("expected one insert, got %d", len(stmts))
	}
	if got := stmts[0].args[2]; got != `{"BeforeAfterIndependence":"after"}` {
		t.Fatalf("unexpected extras payload: %v", got)
	}
}

func TestInsertStatements_MissingColumnIsNull(t *testing.T) {
	t.Parallel()

	tbl := rawdata.Table{
		Name:    warehouse.TableCompetition,
		Columns: []string{"competition"},
		Rows:    [][]string{{"cup"}},
	}

	stmts, err := insertStatements(relations[warehouse.TableCompetition], tbl, 500)
	if err != nil {
		t.Fatalf("build statements: %v", err)
	}
	if stmts[0].args[0] != nil || stmts[0].args[1] != "cup" {
		t.Fatalf("unexpected args: %v", stmts[0].args)
	}
}

func TestInsertStatements_BlankScorerNameIsNull(t *testing.T) {
	t.Parallel()

	tbl := rawdata.Table{
		Name:    warehouse.TableTopScorerAllTime,
		Columns: []string{"id_topscorer", "player_name", "id_team", "goals"},
		Rows:    [][]string{{"1", "", "4", "12"}},
	}

	stmts, err := insertStatements(relations[warehouse.TableTopScorerAllTime], tbl, 500)
	if err != nil {
		t.Fatalf("build statements: %v", err)
	}
	if stmts[0].args[1] != nil {
		t.Fatalf("expected blank player name to bind NULL, got %v", stmts[0].args[1])
	}

	ddl, err := os.ReadFile("../../../../db/migrations/000001_create_warehouse_tables.up.sql")
	if err != nil {
		t.Fatalf("read migration: %v", err)
	}
	if regexp.MustCompile(`player_name\s+TEXT\s+NOT NULL`).Match(ddl) {
		t.Fatalf("player_name must accept NULL in the warehouse schema")
	}
}

func TestCountQuery(t *testing.T) {
	t.Parallel()

	query, args, err := countQuery("f_match")
	if err != nil {
		t.Fatalf("countQuery() error = %v", err)
	}
	if query != "SELECT COUNT(*) FROM f_match" {
		t.Fatalf("unexpected query %q", query)
	}
	if len(args) != 0 {
		t.Fatalf("expected no args, got %v", args)
	}

	if _, _, err := countQuery(" "); err == nil {
		t.Fatalf("expected error for blank relation")
	}
}
