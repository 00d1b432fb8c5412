package csvstore

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"

	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/football-warehouse/internal/domain/rawdata"
)

// Writer writes tables as <dir>/<name>.csv. Each file is written to a
// temporary name first and renamed into place.
type Writer struct {
	dir string
}

func NewWriter(dir string) *Writer {
	return &Writer{dir: dir}
}

// Path returns the file a table with the given name is written to.
func (w *Writer) Path(name string) string {
	return filepath.Join(w.dir, name+".csv")
}

func (w *Writer) WriteTable(ctx context.Context, t rawdata.Table) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if t.Name == "" {
		return crerr.New("table name is required")
	}
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return crerr.Wrapf(err, "create output dir %s", w.dir)
	}

	tmp, err := os.CreateTemp(w.dir, "."+t.Name+"-*.csv")
	if err != nil {
		return crerr.Wrapf(err, "create temp file for %s", t.Name)
	}
	defer os.Remove(tmp.Name())

	cw := csv.NewWriter(tmp)
	if err := cw.Write(t.Columns); err != nil {
		_ = tmp.Close()
		return crerr.Wrapf(err, "write header of %s", t.Name)
	}
	for _, row := range t.Rows {
		if err := cw.Write(row); err != nil {
			_ = tmp.Close()
			return crerr.Wrapf(err, "write row of %s", t.Name)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		_ = tmp.Close()
		return crerr.Wrapf(err, "flush %s", t.Name)
	}
	if err := tmp.Close(); err != nil {
		return crerr.Wrapf(err, "close %s", t.Name)
	}

	if err := os.Rename(tmp.Name(), w.Path(t.Name)); err != nil {
		return crerr.Wrapf(err, "rename %s", t.Name)
	}
	return nil
}
