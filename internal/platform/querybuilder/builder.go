// Package querybuilder renders the small set of Postgres statements the
// warehouse loader issues, numbering positional placeholders as it goes.
package querybuilder

import (
	"fmt"
	"strconv"
	"strings"
)

// MaxParams is the Postgres limit on bind parameters in one statement.
const MaxParams = 65535

// params accumulates bind arguments and hands out their placeholders.
type params struct {
	args []any
}

func (p *params) bind(v any) string {
	p.args = append(p.args, v)
	return "$" + strconv.Itoa(len(p.args))
}

type Condition interface {
	render(buf *strings.Builder, p *params)
}

type eqCondition struct {
	column string
	value  any
}

func Eq(column string, value any) Condition {
	return eqCondition{column: column, value: value}
}

func (c eqCondition) render(buf *strings.Builder, p *params) {
	buf.WriteString(c.column)
	buf.WriteString(" = ")
	buf.WriteString(p.bind(c.value))
}

type exprCondition struct {
	expr string
	args []any
}

// Expr embeds raw SQL. Each ? is bound to the next argument; extra ? marks
// are left untouched.
func Expr(expr string, args ...any) Condition {
	return exprCondition{expr: expr, args: args}
}

func (c exprCondition) render(buf *strings.Builder, p *params) {
	next := 0
	for i := 0; i < len(c.expr); i++ {
		if c.expr[i] == '?' && next < len(c.args) {
			buf.WriteString(p.bind(c.args[next]))
			next++
			continue
		}
		buf.WriteByte(c.expr[i])
	}
}

type SelectBuilder struct {
	columns []string
	table   string
	where   []Condition
}

func Select(columns ...string) *SelectBuilder {
	return &SelectBuilder{columns: append([]string(nil), columns...)}
}

func (b *SelectBuilder) From(table string) *SelectBuilder {
	b.table = table
	return b
}

func (b *SelectBuilder) Where(conditions ...Condition) *SelectBuilder {
	b.where = append(b.where, conditions...)
	return b
}

func (b *SelectBuilder) ToSQL() (string, []any, error) {
	if len(b.columns) == 0 {
		return "", nil, fmt.Errorf("select columns are required")
	}
	if err := requireTable("select", b.table); err != nil {
		return "", nil, err
	}

	var buf strings.Builder
	p := &params{}
	fmt.Fprintf(&buf, "SELECT %s FROM %s", strings.Join(b.columns, ", "), b.table)
	renderWhere(&buf, p, b.where)
	return buf.String(), p.args, nil
}

// InsertBuilder renders a multi-row INSERT.
type InsertBuilder struct {
	table   string
	columns []string
	rows    [][]any
}

func InsertInto(table string) *InsertBuilder {
	return &InsertBuilder{table: table}
}

func (b *InsertBuilder) Columns(columns ...string) *InsertBuilder {
	b.columns = append([]string(nil), columns...)
	return b
}

func (b *InsertBuilder) Values(values ...any) *InsertBuilder {
	b.rows = append(b.rows, append([]any(nil), values...))
	return b
}

// ToSQL fails when a row width differs from the column list or when the
// statement would exceed MaxParams.
func (b *InsertBuilder) ToSQL() (string, []any, error) {
	if err := requireTable("insert", b.table); err != nil {
		return "", nil, err
	}
	if len(b.columns) == 0 {
		return "", nil, fmt.Errorf("insert columns are required")
	}
	if len(b.rows) == 0 {
		return "", nil, fmt.Errorf("insert values are required")
	}
	if total := len(b.rows) * len(b.columns); total > MaxParams {
		return "", nil, fmt.Errorf("insert into %s binds %d params, limit is %d", b.table, total, MaxParams)
	}

	var buf strings.Builder
	p := &params{args: make([]any, 0, len(b.rows)*len(b.columns))}
	fmt.Fprintf(&buf, "INSERT INTO %s (%s) VALUES ", b.table, strings.Join(b.columns, ", "))
	for i, row := range b.rows {
		if len(row) != len(b.columns) {
			return "", nil, fmt.Errorf("insert row %d has %d values, expected %d", i, len(row), len(b.columns))
		}
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteByte('(')
		for j, v := range row {
			if j > 0 {
				buf.WriteString(", ")
			}
			buf.WriteString(p.bind(v))
		}
		buf.WriteByte(')')
	}
	return buf.String(), p.args, nil
}

// RowsPerInsert caps a batch size so one INSERT over columns stays within
// MaxParams.
func RowsPerInsert(columns, want int) int {
	if columns <= 0 {
		return want
	}
	limit := MaxParams / columns
	if want <= 0 || want > limit {
		return limit
	}
	return want
}

type DeleteBuilder struct {
	table string
	where []Condition
}

func DeleteFrom(table string) *DeleteBuilder {
	return &DeleteBuilder{table: table}
}

func (b *DeleteBuilder) Where(conditions ...Condition) *DeleteBuilder {
	b.where = append(b.where, conditions...)
	return b
}

// ToSQL renders the statement. A missing WHERE clears the whole table.
func (b *DeleteBuilder) ToSQL() (string, []any, error) {
	if err := requireTable("delete", b.table); err != nil {
		return "", nil, err
	}

	var buf strings.Builder
	p := &params{}
	buf.WriteString("DELETE FROM ")
	buf.WriteString(b.table)
	renderWhere(&buf, p, b.where)
	return buf.String(), p.args, nil
}

func requireTable(op, table string) error {
	if strings.TrimSpace(table) == "" {
		return fmt.Errorf("%s table is required", op)
	}
	return nil
}

func renderWhere(buf *strings.Builder, p *params, conditions []Condition) {
	for i, c := range conditions {
		if i == 0 {
			buf.WriteString(" WHERE ")
		} else {
			buf.WriteString(" AND ")
		}
		c.render(buf, p)
	}
}
