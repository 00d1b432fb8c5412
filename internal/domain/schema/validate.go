package schema

import (
	"errors"
	"path/filepath"
	"sort"
	"strings"
)

var ErrUnknownTable = errors.New("table not declared")

// Result is the outcome of checking one header set against one table.
type Result struct {
	Table           string
	OK              bool
	MissingRequired []string
	UnexpectedExtra []string
}

// Validate reports required columns that are absent and columns the table
// does not declare. Only missing required columns make the result fail.
func Validate(columns []string, table Table) Result {
	present := make(map[string]struct{}, len(columns))
	for _, col := range columns {
		present[normalizeColumn(col)] = struct{}{}
	}

	declared := make(map[string]struct{}, len(table.All))
	for _, col := range table.All {
		declared[strings.ToLower(col)] = struct{}{}
	}

	missing := make([]string, 0)
	for _, col := range table.Required {
		if _, ok := present[strings.ToLower(col)]; !ok {
			missing = append(missing, strings.ToLower(col))
		}
	}

	extra := make([]string, 0)
	for col := range present {
		if _, ok := declared[col]; !ok {
			extra = append(extra, col)
		}
	}

	sort.Strings(missing)
	sort.Strings(extra)

	return Result{
		Table:           table.Name,
		OK:              len(missing) == 0,
		MissingRequired: missing,
		UnexpectedExtra: extra,
	}
}

func normalizeColumn(c string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(c)), " ", "_")
}

var guessSuffixes = []string{"_clean", "_alltime", "_by_season"}

// GuessTable maps a CSV file name to a declared table. It first compares the
// CamelCase form of the underscored stem, then the stem with known suffixes
// removed, both case-insensitively.
func GuessTable(fileName string, defs []Table) (Table, error) {
	stem := strings.ToLower(strings.TrimSuffix(filepath.Base(fileName), filepath.Ext(fileName)))

	camel := camelCase(stem)
	for _, def := range defs {
		if strings.EqualFold(def.Name, camel) {
			return def, nil
		}
	}

	short := stem
	for _, suffix := range guessSuffixes {
		short = strings.ReplaceAll(short, suffix, "")
	}
	for _, def := range defs {
		if strings.EqualFold(def.Name, short) {
			return def, nil
		}
	}

	return Table{}, ErrUnknownTable
}

func camelCase(stem string) string {
	var b strings.Builder
	for _, part := range strings.Split(stem, "_") {
		if part == "" {
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	return b.String()
}
