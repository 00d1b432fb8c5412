package rawdata

import (
	"context"
	"errors"
)

var ErrTableNotFound = errors.New("table not found")

// Reader loads source tables. Missing files surface as ErrTableNotFound so
// optional seeds can be told apart from unreadable ones.
type Reader interface {
	ReadTable(ctx context.Context, path string) (Table, error)
	ListTables(ctx context.Context, dir string, recursive bool) ([]string, error)
}

// Writer persists an output table under its Name.
type Writer interface {
	WriteTable(ctx context.Context, t Table) error
}
