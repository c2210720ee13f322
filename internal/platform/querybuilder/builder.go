// Package querybuilder renders the small set of Postgres statements the
// repositories need, numbering placeholders as $1..$n in argument order.
package querybuilder

import (
	"fmt"
	"strconv"
	"strings"
)

// args accumulates bind values and hands out their placeholders.
type args struct {
	values []any
}

func (a *args) bind(v any) string {
	a.values = append(a.values, v)
	return "$" + strconv.Itoa(len(a.values))
}

// bindExpr replaces each '?' in expr with the next placeholder. Surplus
// question marks are kept verbatim.
func (a *args) bindExpr(expr string, values []any) string {
	if len(values) == 0 {
		return expr
	}

	var out strings.Builder
	next := 0
	for i := 0; i < len(expr); i++ {
		if expr[i] != '?' || next >= len(values) {
			out.WriteByte(expr[i])
			continue
		}
		out.WriteString(a.bind(values[next]))
		next++
	}
	return out.String()
}

type Condition interface {
	render(buf *strings.Builder, a *args)
}

type compare struct {
	column string
	op     string
	value  any
}

func (c compare) render(buf *strings.Builder, a *args) {
	buf.WriteString(c.column + " " + c.op + " " + a.bind(c.value))
}

func Eq(column string, value any) Condition  { return compare{column: column, op: "=", value: value} }
func Gte(column string, value any) Condition { return compare{column: column, op: ">=", value: value} }
func Lt(column string, value any) Condition  { return compare{column: column, op: "<", value: value} }

type expression struct {
	sql    string
	values []any
}

func (e expression) render(buf *strings.Builder, a *args) {
	buf.WriteString(a.bindExpr(e.sql, e.values))
}

// Expr embeds raw SQL with '?' markers for its values.
func Expr(sql string, values ...any) Condition {
	return expression{sql: sql, values: values}
}

type anyOf []Condition

// Or groups conditions with OR inside parentheses. An empty group never matches.
func Or(conditions ...Condition) Condition {
	return anyOf(conditions)
}

func (o anyOf) render(buf *strings.Builder, a *args) {
	if len(o) == 0 {
		buf.WriteString("1=0")
		return
	}
	buf.WriteByte('(')
	for i, c := range o {
		if i > 0 {
			buf.WriteString(" OR ")
		}
		c.render(buf, a)
	}
	buf.WriteByte(')')
}

func renderWhere(buf *strings.Builder, a *args, conditions []Condition) {
	for i, c := range conditions {
		if i == 0 {
			buf.WriteString(" WHERE ")
		} else {
			buf.WriteString(" AND ")
		}
		c.render(buf, a)
	}
}

type SelectBuilder struct {
	columns []string
	table   string
	where   []Condition
	orderBy []string
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

func (b *SelectBuilder) OrderBy(parts ...string) *SelectBuilder {
	b.orderBy = append(b.orderBy, parts...)
	return b
}

func (b *SelectBuilder) ToSQL() (string, []any, error) {
	if len(b.columns) == 0 {
		return "", nil, fmt.Errorf("select columns are required")
	}
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("select table is required")
	}

	var buf strings.Builder
	var a args
	buf.WriteString("SELECT " + strings.Join(b.columns, ", ") + " FROM " + b.table)
	renderWhere(&buf, &a, b.where)
	if len(b.orderBy) > 0 {
		buf.WriteString(" ORDER BY " + strings.Join(b.orderBy, ", "))
	}
	return buf.String(), a.values, nil
}

type InsertBuilder struct {
	table   string
	columns []string
	rows    [][]any
	suffix  string
}

func InsertInto(table string) *InsertBuilder {
	return &InsertBuilder{table: table}
}

func (b *InsertBuilder) Columns(columns ...string) *InsertBuilder {
	b.columns = append([]string(nil), columns...)
	return b
}

// Values adds one row; call it repeatedly for a multi-row insert.
func (b *InsertBuilder) Values(values ...any) *InsertBuilder {
	b.rows = append(b.rows, append([]any(nil), values...))
	return b
}

// Suffix appends trailing SQL such as RETURNING or ON CONFLICT.
func (b *InsertBuilder) Suffix(sql string) *InsertBuilder {
	b.suffix = strings.TrimSpace(sql)
	return b
}

func (b *InsertBuilder) ToSQL() (string, []any, error) {
	switch {
	case strings.TrimSpace(b.table) == "":
		return "", nil, fmt.Errorf("insert table is required")
	case len(b.columns) == 0:
		return "", nil, fmt.Errorf("insert columns are required")
	case len(b.rows) == 0:
		return "", nil, fmt.Errorf("insert values are required")
	}

	var buf strings.Builder
	var a args
	buf.WriteString("INSERT INTO " + b.table + " (" + strings.Join(b.columns, ", ") + ") VALUES ")
	for i, row := range b.rows {
		if len(row) != len(b.columns) {
			return "", nil, fmt.Errorf("insert row %d has %d values, expected %d", i, len(row), len(b.columns))
		}
		if i > 0 {
			buf.WriteString(", ")
		}
		placeholders := make([]string, len(row))
		for j, v := range row {
			placeholders[j] = a.bind(v)
		}
		buf.WriteString("(" + strings.Join(placeholders, ", ") + ")")
	}
	if b.suffix != "" {
		buf.WriteString(" " + b.suffix)
	}
	return buf.String(), a.values, nil
}

type assignment struct {
	column string
	value  any
}

type UpdateBuilder struct {
	table string
	sets  []assignment
	where []Condition
}

func Update(table string) *UpdateBuilder {
	return &UpdateBuilder{table: table}
}

func (b *UpdateBuilder) Set(column string, value any) *UpdateBuilder {
	b.sets = append(b.sets, assignment{column: column, value: value})
	return b
}

func (b *UpdateBuilder) Where(conditions ...Condition) *UpdateBuilder {
	b.where = append(b.where, conditions...)
	return b
}

func (b *UpdateBuilder) ToSQL() (string, []any, error) {
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("update table is required")
	}
	if len(b.sets) == 0 {
		return "", nil, fmt.Errorf("update sets are required")
	}
	if len(b.where) == 0 {
		return "", nil, fmt.Errorf("update without where clause is not allowed")
	}

	var buf strings.Builder
	var a args
	sets := make([]string, len(b.sets))
	for i, s := range b.sets {
		sets[i] = s.column + " = " + a.bind(s.value)
	}
	buf.WriteString("UPDATE " + b.table + " SET " + strings.Join(sets, ", "))
	renderWhere(&buf, &a, b.where)
	return buf.String(), a.values, nil
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

func (b *DeleteBuilder) ToSQL() (string, []any, error) {
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("delete table is required")
	}
	if len(b.where) == 0 {
		return "", nil, fmt.Errorf("delete without where clause is not allowed")
	}

	var buf strings.Builder
	var a args
	buf.WriteString("DELETE FROM " + b.table)
	renderWhere(&buf, &a, b.where)
	return buf.String(), a.values, nil
}
