package postgres

import (
	"fmt"
	"strings"

	"eventra/internal/repository"
)

// updateBuilder assembles an UPDATE statement from the fields a caller
// actually supplied. Columns are appended explicitly via setClause, never
// discovered by reflection.
type updateBuilder struct {
	table   string
	columns []string
	args    []any
}

func newUpdateBuilder(table string) *updateBuilder {
	return &updateBuilder{table: table}
}

// setClause adds one assignment when the field is populated.
func setClause[T any](b *updateBuilder, column string, v *T) {
	if v == nil {
		return
	}
	b.columns = append(b.columns, column)
	b.args = append(b.args, *v)
}

// Where finalizes the statement with a single-column key predicate.
//
// Returns:
//   - error: repository.ErrNoFields if no assignment was added.
func (b *updateBuilder) Where(column string, key any) (string, []any, error) {
	if len(b.columns) == 0 {
		return "", nil, repository.ErrNoFields
	}

	var sb strings.Builder
	sb.WriteString("UPDATE ")
	sb.WriteString(b.table)
	sb.WriteString(" SET ")

	for i, col := range b.columns {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%s = $%d", col, i+1)
	}

	fmt.Fprintf(&sb, " WHERE %s = $%d", column, len(b.columns)+1)

	args := append(b.args, key)

	return sb.String(), args, nil
}
