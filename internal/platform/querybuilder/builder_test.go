package querybuilder

import "testing"

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("COUNT(1)").
		From("f_match").
		Where(Eq("season_id", int64(3)), Expr("id_date <> ?", -1)).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT COUNT(1) FROM f_match WHERE season_id = $1 AND id_date <> $2"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != int64(3) || args[1] != -1 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder_MultiRow(t *testing.T) {
	query, args, err := InsertInto("d_team").
		Columns("id_team", "team_name").
		Values(int64(1), "CS Sfaxien").
		Values(int64(2), "Club Africain").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO d_team (id_team, team_name) VALUES ($1, $2), ($3, $4)"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 4 || args[3] != "Club Africain" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder_RowWidthMismatch(t *testing.T) {
	_, _, err := InsertInto("d_team").Columns("id_team", "team_name").Values(int64(1)).ToSQL()
	if err == nil {
		t.Fatalf("expected width mismatch error")
	}
}

func TestDeleteBuilder(t *testing.T) {
	query, args, err := DeleteFrom("f_team_season").ToSQL()
	if err != nil {
		t.Fatalf("build delete query: %v", err)
	}
	if query != "DELETE FROM f_team_season" || len(args) != 0 {
		t.Fatalf("unexpected delete: %s %+v", query, args)
	}

	query, args, err = DeleteFrom("d_date").Where(Eq("id_date", int64(9))).ToSQL()
	if err != nil {
		t.Fatalf("build delete query: %v", err)
	}
	if query != "DELETE FROM d_date WHERE id_date = $1" || len(args) != 1 {
		t.Fatalf("unexpected delete: %s %+v", query, args)
	}
}

func TestInsertBuilder_ParamLimit(t *testing.T) {
	b := InsertInto("f_team_season").Columns("a", "b")
	for i := 0; i < MaxParams/2+1; i++ {
		b.Values(i, i)
	}
	if _, _, err := b.ToSQL(); err == nil {
		t.Fatalf("expected param limit error")
	}
}

func TestRowsPerInsert(t *testing.T) {
	cases := []struct {
		columns, want, expected int
	}{
		{columns: 26, want: 500, expected: 500},
		{columns: 26, want: 5000, expected: MaxParams / 26},
		{columns: 4, want: 0, expected: MaxParams / 4},
		{columns: 0, want: 10, expected: 10},
	}
	for _, tc := range cases {
		if got := RowsPerInsert(tc.columns, tc.want); got != tc.expected {
			t.Fatalf("RowsPerInsert(%d, %d) = %d, want %d", tc.columns, tc.want, got, tc.expected)
		}
	}
}

func TestExpr_ExtraMarksKept(t *testing.T) {
	query, args, err := Select("id_team").From("d_team").Where(Expr("team_name = ? OR location = '?'", "CS Sfaxien")).ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}
	if query != "SELECT id_team FROM d_team WHERE team_name = $1 OR location = '?'" || len(args) != 1 {
		t.Fatalf("unexpected select: %s %+v", query, args)
	}
}
