package usecase

import (
	"context"
	"errors"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/riskibarqy/football-warehouse/internal/domain/match"
	"github.com/riskibarqy/football-warehouse/internal/domain/rawdata"
	"github.com/riskibarqy/football-warehouse/internal/domain/warehouse"
	"github.com/riskibarqy/football-warehouse/internal/platform/column"
	"github.com/riskibarqy/football-warehouse/internal/platform/logging"
)

// seedLoader reads optional seed tables. A missing seed is not an error; an
// unreadable one is logged and recorded, and the caller derives the
// dimension from match data instead.
type seedLoader struct {
	reader  rawdata.Reader
	logger  *logging.Logger
	dataDir string
	skipped []warehouse.SkippedFile
	dropped int
}

func (l *seedLoader) path(name string) string {
	return filepath.Join(l.dataDir, name)
}

func (l *seedLoader) load(ctx context.Context, name string) (rawdata.Table, bool) {
	path := l.path(name)
	tbl, err := l.reader.ReadTable(ctx, path)
	if err != nil {
		if !errors.Is(err, rawdata.ErrTableNotFound) {
			l.logger.WarnContext(ctx, "skip unreadable seed", "path", path, "error", err)
			l.skipped = append(l.skipped, warehouse.SkippedFile{Path: path, Reason: err.Error()})
		}
		return rawdata.Table{}, false
	}
	if len(tbl.Columns) == 0 {
		return rawdata.Table{}, false
	}
	l.logger.InfoContext(ctx, "seed loaded", "path", path, "rows", tbl.Len())
	return tbl, true
}

// seedKeys locates the natural-key and surrogate-key columns of a seed. When
// both resolve to the same column the first other column becomes the name.
// Without any name match the fallback list, then the first column, is used.
func seedKeys(headers, nameAliases, idAliases, fallback []string) (nameIdx, idIdx int) {
	nameIdx = column.ResolveIndex(headers, nameAliases)
	if nameIdx < 0 {
		for _, cand := range fallback {
			if i := column.Index(headers, cand); i >= 0 {
				nameIdx = i
				break
			}
		}
	}
	if nameIdx < 0 {
		nameIdx = 0
	}

	idIdx = column.ResolveIndex(headers, idAliases)
	if idIdx >= 0 && nameIdx == idIdx {
		for i := range headers {
			if i != idIdx {
				nameIdx = i
				break
			}
		}
	}
	return nameIdx, idIdx
}

type seedRow struct {
	Row  int
	Name string
	ID   int64
}

// keyedRows dedups seed rows by name and by id, first occurrence wins. Rows
// with a blank name or an unparseable or repeated id are dropped and logged
// with their 1-based data row. Without an id column ids are 1..n in file
// order.
func (l *seedLoader) keyedRows(ctx context.Context, name string, tbl rawdata.Table, nameIdx, idIdx int) []seedRow {
	names := make(map[string]struct{})
	ids := make(map[int64]struct{})
	drop := func(row int, reason string) {
		l.dropped++
		l.logger.WarnContext(ctx, "seed row dropped", "path", l.path(name), "row", row+1, "reason", reason)
	}

	var rows []seedRow
	for row := 0; row < tbl.Len(); row++ {
		raw, ok := tbl.Cell(row, nameIdx)
		value := strings.TrimSpace(raw)
		if !ok || value == "" {
			drop(row, "blank name")
			continue
		}
		if _, dup := names[value]; dup {
			continue
		}

		var id int64
		if idIdx >= 0 {
			rawID, _ := tbl.Cell(row, idIdx)
			parsed, ok := match.ParseID(rawID)
			if !ok {
				drop(row, "unparseable id "+strconv.Quote(rawID))
				continue
			}
			if _, dup := ids[parsed]; dup {
				drop(row, "duplicate id "+strconv.FormatInt(parsed, 10))
				continue
			}
			id = parsed
		} else {
			id = int64(len(rows) + 1)
		}

		names[value] = struct{}{}
		ids[id] = struct{}{}
		rows = append(rows, seedRow{Row: row, Name: value, ID: id})
	}
	return rows
}
