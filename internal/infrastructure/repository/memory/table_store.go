package memory

import (
	"context"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/riskibarqy/football-warehouse/internal/domain/rawdata"
)

// TableStore keeps tables keyed by path. It serves dry runs, where outputs
// are only counted, and tests that need a reader without a filesystem.
type TableStore struct {
	mu        sync.RWMutex
	outputDir string
	items     map[string]rawdata.Table
}

func NewTableStore(outputDir string) *TableStore {
	return &TableStore{
		outputDir: outputDir,
		items:     make(map[string]rawdata.Table),
	}
}

// Put stores a table under path, for seeding input files.
func (s *TableStore) Put(path string, t rawdata.Table) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items[filepath.Clean(path)] = cloneTable(t)
}

func (s *TableStore) ReadTable(_ context.Context, path string) (rawdata.Table, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.items[filepath.Clean(path)]
	if !ok {
		return rawdata.Table{}, rawdata.ErrTableNotFound
	}

	return cloneTable(t), nil
}

func (s *TableStore) ListTables(_ context.Context, dir string, recursive bool) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	dir = filepath.Clean(dir)
	out := make([]string, 0)
	for path := range s.items {
		if !strings.EqualFold(filepath.Ext(path), ".csv") {
			continue
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
			continue
		}
		if !recursive && strings.ContainsRune(rel, filepath.Separator) {
			continue
		}
		out = append(out, path)
	}
	sort.Strings(out)

	return out, nil
}

func (s *TableStore) WriteTable(_ context.Context, t rawdata.Table) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items[s.outputPath(t.Name)] = cloneTable(t)
	return nil
}

// Output returns a table previously written by WriteTable.
func (s *TableStore) Output(name string) (rawdata.Table, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.items[s.outputPath(name)]
	if !ok {
		return rawdata.Table{}, false
	}

	return cloneTable(t), true
}

func (s *TableStore) outputPath(name string) string {
	return filepath.Join(s.outputDir, name+".csv")
}

func cloneTable(t rawdata.Table) rawdata.Table {
	copied := rawdata.Table{
		Name:    t.Name,
		Columns: append([]string(nil), t.Columns...),
		Rows:    make([][]string, len(t.Rows)),
	}
	for i, row := range t.Rows {
		copied.Rows[i] = append([]string(nil), row...)
	}
	return copied
}
