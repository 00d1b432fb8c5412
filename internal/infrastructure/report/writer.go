package report

import (
	"context"
	"os"
	"path/filepath"

	"github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/football-warehouse/internal/domain/warehouse"
)

const FileName = "etl_report.json"

type Writer struct {
	dir string
}

func NewWriter(dir string) *Writer {
	return &Writer{dir: dir}
}

func (w *Writer) Path() string {
	return filepath.Join(w.dir, FileName)
}

func (w *Writer) WriteReport(ctx context.Context, r warehouse.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	encoded, err := sonic.ConfigStd.MarshalIndent(r, "", "  ")
	if err != nil {
		return crerr.Wrap(err, "marshal etl report")
	}
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return crerr.Wrapf(err, "create report dir %s", w.dir)
	}
	if err := os.WriteFile(w.Path(), append(encoded, '\n'), 0o644); err != nil {
		return crerr.Wrapf(err, "write %s", w.Path())
	}
	return nil
}
