package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/football-warehouse/internal/domain/warehouse"
	"github.com/riskibarqy/football-warehouse/internal/usecase"
)

func TestPrintValidation(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	printValidation(&buf, usecase.ValidationReport{Files: []usecase.FileValidation{
		{File: "D_Team_clean.csv", Table: "D_Team", OK: true, Warnings: []string{"extra column: notes"}},
		{File: "F_Match.csv", Table: "F_Match", Errors: []string{"missing required column: id_match"}},
	}})

	want := "D_Team_clean.csv: OK\n" +
		"  ~ extra column: notes\n" +
		"F_Match.csv: FAIL\n" +
		"  - missing required column: id_match\n"
	assert.Equal(t, want, buf.String())
}

func TestPrintReport_SortsTables(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	printReport(&buf, warehouse.Report{
		RunID:  "run-1",
		DryRun: true,
		Rows:   map[string]int{warehouse.TableTeam: 4, warehouse.TableMatch: 3},
	})

	out := buf.String()
	assert.Contains(t, out, "run run-1 (dry-run)\n")
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("D_Team_clean")), bytes.Index(buf.Bytes(), []byte("F_Match")))
	assert.Contains(t, out, "  F_Match: 3 rows\n")
}

func TestValidateCmd_LogsStayOffStdout(t *testing.T) {
	t.Setenv("APP_LOG_LEVEL", "info")

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "D_Stadium_clean.csv"), []byte("stadium_name\nRades\n"), 0o644))

	var stdout, stderr bytes.Buffer
	cmd := validateCmd()
	cmd.SetArgs([]string{"--dir", dir})
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	require.NoError(t, cmd.ExecuteContext(context.Background()))

	assert.Equal(t, "D_Stadium_clean.csv: OK\n", stdout.String())
	assert.Contains(t, stderr.String(), `"msg":"schema validation finished"`)
}
