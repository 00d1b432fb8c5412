package usecase

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/riskibarqy/football-warehouse/internal/domain/rawdata"
	"github.com/riskibarqy/football-warehouse/internal/domain/schema"
	"github.com/riskibarqy/football-warehouse/internal/platform/logging"
)

type SchemaValidationService struct {
	reader rawdata.Reader
	defs   []schema.Table
	logger *logging.Logger
}

func NewSchemaValidationService(reader rawdata.Reader, logger *logging.Logger) *SchemaValidationService {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &SchemaValidationService{
		reader: reader,
		defs:   schema.Definitions(),
		logger: logger,
	}
}

type FileValidation struct {
	File     string
	Table    string
	OK       bool
	Errors   []string
	Warnings []string
}

type ValidationReport struct {
	Files []FileValidation
}

// OK is true only when every file validated.
func (r ValidationReport) OK() bool {
	for _, f := range r.Files {
		if !f.OK {
			return false
		}
	}
	return true
}

// ValidateDir checks every CSV directly inside dir. Per-file problems are
// recorded in the report; only a failure to list dir is returned.
func (s *SchemaValidationService) ValidateDir(ctx context.Context, dir string) (ValidationReport, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return ValidationReport{}, fmt.Errorf("%w: directory is required", ErrInvalidInput)
	}

	paths, err := s.reader.ListTables(ctx, dir, false)
	if err != nil {
		return ValidationReport{}, fmt.Errorf("list tables: %w", err)
	}

	report := ValidationReport{Files: make([]FileValidation, 0, len(paths))}
	for _, path := range paths {
		report.Files = append(report.Files, s.validateFile(ctx, path))
	}

	s.logger.InfoContext(ctx, "schema validation finished", "dir", dir, "files", len(report.Files), "ok", report.OK())
	return report, nil
}

func (s *SchemaValidationService) validateFile(ctx context.Context, path string) FileValidation {
	name := filepath.Base(path)
	out := FileValidation{File: name}

	def, err := schema.GuessTable(name, s.defs)
	if err != nil {
		out.Errors = append(out.Errors, fmt.Errorf("%w: %s", ErrUnvalidatable, name).Error())
		return out
	}
	out.Table = def.Name

	tbl, err := s.reader.ReadTable(ctx, path)
	if err != nil {
		s.logger.WarnContext(ctx, "read table for validation", "path", path, "error", err)
		out.Errors = append(out.Errors, fmt.Sprintf("read csv: %v", err))
		return out
	}

	res := schema.Validate(tbl.Columns, def)
	out.OK = res.OK
	if len(res.MissingRequired) > 0 {
		out.Errors = append(out.Errors, fmt.Sprintf("missing required columns: %s", strings.Join(res.MissingRequired, ", ")))
	}
	if len(res.UnexpectedExtra) > 0 {
		out.Warnings = append(out.Warnings, fmt.Sprintf("unexpected extra columns: %s", strings.Join(res.UnexpectedExtra, ", ")))
	}
	return out
}
