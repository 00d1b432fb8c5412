package config

import (
	"path/filepath"
	"testing"

	"github.com/riskibarqy/football-warehouse/internal/platform/logging"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("WAREHOUSE_DATA_DIR", "")
	t.Setenv("WAREHOUSE_MATCHES_DIR", "")
	t.Setenv("WAREHOUSE_OUTPUT_DIR", "")
	t.Setenv("WAREHOUSE_REPORT_ENABLED", "")
	t.Setenv("WAREHOUSE_DB_LOAD_ENABLED", "")
	t.Setenv("DB_LOAD_BATCH_SIZE", "")
	t.Setenv("APP_LOG_LEVEL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.DataDir != "data" || cfg.MatchesDir != filepath.Join("data", "matches") {
		t.Fatalf("unexpected dirs: data=%q matches=%q", cfg.DataDir, cfg.MatchesDir)
	}
	if cfg.OutputDir != "warehouse_output" {
		t.Fatalf("unexpected output dir: %q", cfg.OutputDir)
	}
	if !cfg.ReportEnabled || cfg.DBLoadEnabled || cfg.ParquetEnabled {
		t.Fatalf("unexpected toggles: %+v", cfg)
	}
	if cfg.DBLoadBatchSize != 500 {
		t.Fatalf("unexpected batch size: %d", cfg.DBLoadBatchSize)
	}
	if cfg.LogLevel != logging.LevelInfo {
		t.Fatalf("unexpected log level: %v", cfg.LogLevel)
	}
}

func TestLoad_MatchesDirFollowsDataDir(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("WAREHOUSE_DATA_DIR", "/srv/football")
	t.Setenv("WAREHOUSE_MATCHES_DIR", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.MatchesDir != filepath.Join("/srv/football", "matches") {
		t.Fatalf("unexpected matches dir: %q", cfg.MatchesDir)
	}
}

func TestLoad_InvalidToggles(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("WAREHOUSE_PARQUET_ENABLED", "sometimes")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for malformed WAREHOUSE_PARQUET_ENABLED")
	}
}

func TestLoad_BatchSizeValidation(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	t.Setenv("DB_LOAD_BATCH_SIZE", "0")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error when DB_LOAD_BATCH_SIZE=0")
	}

	t.Setenv("DB_LOAD_BATCH_SIZE", "abc")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error when DB_LOAD_BATCH_SIZE is not a number")
	}

	t.Setenv("DB_LOAD_BATCH_SIZE", "5000")
	if _, err := Load(); err == nil {
		t.Fatalf("expected validation error for oversized batches")
	}
}

func TestLoad_LogLevel(t *testing.T) {
	t.Setenv("APP_ENV", EnvProd)
	t.Setenv("APP_LOG_LEVEL", "WARNING")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.LogLevel != logging.LevelWarn {
		t.Fatalf("unexpected log level: %v", cfg.LogLevel)
	}
}
