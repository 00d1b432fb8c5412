package rawdata

import "strings"

// Table is one decoded CSV file: a header plus string cells. A blank cell is
// treated as null everywhere downstream.
type Table struct {
	Name    string
	Columns []string
	Rows    [][]string
}

func (t Table) Len() int {
	return len(t.Rows)
}

// ColumnIndex returns the position of an exact header, or -1.
func (t Table) ColumnIndex(name string) int {
	for i, col := range t.Columns {
		if col == name {
			return i
		}
	}
	return -1
}

// Cell returns the raw cell value and false when the column is unresolved
// (col < 0), out of range, or blank.
func (t Table) Cell(row, col int) (string, bool) {
	if col < 0 || row < 0 || row >= len(t.Rows) {
		return "", false
	}
	cells := t.Rows[row]
	if col >= len(cells) {
		return "", false
	}
	value := cells[col]
	if strings.TrimSpace(value) == "" {
		return "", false
	}
	return value, true
}

// Append adds one row, padding or truncating it to the header width.
func (t *Table) Append(cells ...string) {
	row := make([]string, len(t.Columns))
	copy(row, cells)
	t.Rows = append(t.Rows, row)
}
