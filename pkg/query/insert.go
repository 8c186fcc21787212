package query

import (
	"fmt"
	"strings"
)

// ConflictAction controls what an INSERT does when it hits a unique
// constraint.
type ConflictAction int

const (
	// ConflictError leaves constraint violations to the database.
	ConflictError ConflictAction = iota
	// ConflictDoNothing skips conflicting rows (ON CONFLICT DO NOTHING).
	ConflictDoNothing
	// ConflictDoUpdate overwrites the conflicting row's inserted columns
	// (ON CONFLICT DO UPDATE SET col = EXCLUDED.col, ...).
	ConflictDoUpdate
)

// InsertBuilder constructs INSERT statements with numbered parameters.
// Column/value pairs keep their insertion order so statements are stable.
type InsertBuilder struct {
	schema    string
	table     string
	columns   []string
	values    []any
	conflict  ConflictAction
	target    []string
	returning []string
}

// NewInsert creates an InsertBuilder for the given schema and table.
func NewInsert(schema, table string) *InsertBuilder {
	return &InsertBuilder{schema: schema, table: table}
}

// Value adds a column/value pair.
func (b *InsertBuilder) Value(column string, value any) *InsertBuilder {
	b.columns = append(b.columns, column)
	b.values = append(b.values, value)
	return b
}

// OnConflict sets the conflict action for the given target columns.
func (b *InsertBuilder) OnConflict(action ConflictAction, target ...string) *InsertBuilder {
	b.conflict = action
	b.target = target
	return b
}

// Returning adds a RETURNING clause with the given columns.
func (b *InsertBuilder) Returning(columns ...string) *InsertBuilder {
	b.returning = columns
	return b
}

// Columns returns the column names in insertion order.
func (b *InsertBuilder) Columns() []string {
	return b.columns
}

// Build returns the INSERT statement and its arguments.
func (b *InsertBuilder) Build() (string, []any) {
	slots := make([]string, len(b.values))
	for i := range b.values {
		slots[i] = fmt.Sprintf("$%d", i+1)
	}

	var sb strings.Builder
	fmt.Fprintf(
		&sb,
		"INSERT INTO %s.%s (%s) VALUES (%s)",
		b.schema,
		b.table,
		strings.Join(b.columns, ", "),
		strings.Join(slots, ", "),
	)

	switch b.conflict {
	case ConflictDoNothing:
		sb.WriteString(" ON CONFLICT")
		if len(b.target) > 0 {
			fmt.Fprintf(&sb, " (%s)", strings.Join(b.target, ", "))
		}
		sb.WriteString(" DO NOTHING")
	case ConflictDoUpdate:
		assignments := make([]string, len(b.columns))
		for i, col := range b.columns {
			assignments[i] = fmt.Sprintf("%s = EXCLUDED.%s", col, col)
		}
		fmt.Fprintf(
			&sb,
			" ON CONFLICT (%s) DO UPDATE SET %s",
			strings.Join(b.target, ", "),
			strings.Join(assignments, ", "),
		)
	}

	if len(b.returning) > 0 {
		fmt.Fprintf(&sb, " RETURNING %s", strings.Join(b.returning, ", "))
	}

	return sb.String(), b.values
}
