package csvstore

import (
	"bytes"
	"context"
	"encoding/csv"
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	crerr "github.com/cockroachdb/errors"
	"golang.org/x/text/encoding/charmap"

	"github.com/riskibarqy/football-warehouse/internal/domain/rawdata"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Reader decodes CSV files from the local filesystem. Files that are not
// valid UTF-8 are decoded as Latin-1.
type Reader struct{}

func NewReader() *Reader {
	return &Reader{}
}

func (r *Reader) ReadTable(ctx context.Context, path string) (rawdata.Table, error) {
	if err := ctx.Err(); err != nil {
		return rawdata.Table{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return rawdata.Table{}, crerr.Wrapf(rawdata.ErrTableNotFound, "read %s", path)
		}
		return rawdata.Table{}, crerr.Wrapf(err, "read %s", path)
	}

	data, err = decode(data)
	if err != nil {
		return rawdata.Table{}, crerr.Wrapf(err, "decode %s", path)
	}

	cr := csv.NewReader(bytes.NewReader(data))
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	records, err := cr.ReadAll()
	if err != nil {
		return rawdata.Table{}, crerr.Wrapf(err, "parse csv %s", path)
	}

	tbl := rawdata.Table{Name: stem(path)}
	if len(records) == 0 {
		return tbl, nil
	}
	tbl.Columns = append([]string(nil), records[0]...)
	tbl.Rows = make([][]string, 0, len(records)-1)
	for _, rec := range records[1:] {
		tbl.Append(rec...)
	}

	return tbl, nil
}

// ListTables returns .csv paths under dir in lexical order. Only direct
// children are returned unless recursive is set.
func (r *Reader) ListTables(ctx context.Context, dir string, recursive bool) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make([]string, 0)
	if !recursive {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, crerr.Wrapf(err, "list %s", dir)
		}
		for _, e := range entries {
			if !e.IsDir() && isCSV(e.Name()) {
				out = append(out, filepath.Join(dir, e.Name()))
			}
		}
		sort.Strings(out)
		return out, nil
	}

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && isCSV(d.Name()) {
			out = append(out, path)
		}
		return nil
	})
	if err != nil {
		return nil, crerr.Wrapf(err, "walk %s", dir)
	}
	sort.Strings(out)

	return out, nil
}

// LoadAliases reads a two column from,to CSV. An empty path yields no
// aliases.
func (r *Reader) LoadAliases(ctx context.Context, path string) (map[string]string, error) {
	if strings.TrimSpace(path) == "" {
		return map[string]string{}, nil
	}

	tbl, err := r.ReadTable(ctx, path)
	if err != nil {
		return nil, err
	}
	if len(tbl.Columns) < 2 {
		return nil, crerr.Newf("alias file %s needs from and to columns", path)
	}

	out := make(map[string]string, tbl.Len())
	for row := 0; row < tbl.Len(); row++ {
		from, okFrom := tbl.Cell(row, 0)
		to, okTo := tbl.Cell(row, 1)
		if !okFrom || !okTo {
			continue
		}
		out[strings.TrimSpace(from)] = strings.TrimSpace(to)
	}

	return out, nil
}

func decode(data []byte) ([]byte, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if utf8.Valid(data) {
		return data, nil
	}
	return charmap.ISO8859_1.NewDecoder().Bytes(data)
}

func isCSV(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".csv")
}

func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
