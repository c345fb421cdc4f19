package repository

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/jackc/pgx/v5"
)

// column is an equality filter, column = value.
type column struct {
	name  string
	value any
}

func eq(name string, value any) column {
	return column{name: name, value: value}
}

// table runs the statements shared by every repository against one table
// and scans rows into T by db tag.
type table[T any] struct {
	db       DBTX
	name     string
	notFound string

	// defaults fill create records that omit these columns.
	defaults map[string]any
}

func ident(name string) string {
	return pgx.Identifier{name}.Sanitize()
}

func where(filters []column, args []any) (string, []any) {
	if len(filters) == 0 {
		return "", args
	}

	conds := make([]string, 0, len(filters))
	for _, f := range filters {
		args = append(args, f.value)
		conds = append(conds, fmt.Sprintf("%s = $%d", ident(f.name), len(args)))
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func (t *table[T]) one(ctx context.Context, sql string, args ...any) (T, error) {
	rows, err := t.db.Query(ctx, sql, args...)
	if err != nil {
		var zero T
		return zero, wrapError(err, t.notFound)
	}

	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[T])
	return row, wrapError(err, t.notFound)
}

func (t *table[T]) findOne(ctx context.Context, filters ...column) (T, error) {
	clause, args := where(filters, nil)
	return t.one(ctx, "SELECT * FROM "+ident(t.name)+clause, args...)
}

// findMany never returns a nil slice on success.
func (t *table[T]) findMany(ctx context.Context, filters ...column) ([]T, error) {
	clause, args := where(filters, nil)

	rows, err := t.db.Query(ctx, "SELECT * FROM "+ident(t.name)+clause, args...)
	if err != nil {
		return nil, wrapError(err, t.notFound)
	}

	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		return nil, wrapError(err, t.notFound)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func (t *table[T]) insert(ctx context.Context, record map[string]any) (T, error) {
	values := make(map[string]any, len(record)+len(t.defaults))
	maps.Copy(values, t.defaults)
	maps.Copy(values, record)

	if len(values) == 0 {
		return t.one(ctx, "INSERT INTO "+ident(t.name)+" DEFAULT VALUES RETURNING *")
	}

	cols := slices.Sorted(maps.Keys(values))
	names := make([]string, len(cols))
	placeholders := make([]string, len(cols))
	args := make([]any, len(cols))
	for i, c := range cols {
		names[i] = ident(c)
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = values[c]
	}

	sql := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING *",
		ident(t.name), strings.Join(names, ", "), strings.Join(placeholders, ", "))
	return t.one(ctx, sql, args...)
}

// update applies record to the row with the given id. An empty record
// returns the row unchanged.
func (t *table[T]) update(ctx context.Context, id string, record map[string]any) (T, error) {
	if len(record) == 0 {
		return t.findOne(ctx, eq("id", id))
	}

	cols := slices.Sorted(maps.Keys(record))
	sets := make([]string, len(cols))
	args := make([]any, 0, len(cols)+1)
	for i, c := range cols {
		args = append(args, record[c])
		sets[i] = fmt.Sprintf("%s = $%d", ident(c), len(args))
	}
	args = append(args, id)

	sql := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d RETURNING *",
		ident(t.name), strings.Join(sets, ", "), len(args))
	return t.one(ctx, sql, args...)
}

// increment bumps a counter column by one in a single statement.
func (t *table[T]) increment(ctx context.Context, id, counter string) (T, error) {
	c := ident(counter)
	sql := fmt.Sprintf("UPDATE %s SET %s = %s + 1 WHERE id = $1 RETURNING *", ident(t.name), c, c)
	return t.one(ctx, sql, id)
}

// delete reports not found when nothing matched.
func (t *table[T]) delete(ctx context.Context, filters ...column) error {
	clause, args := where(filters, nil)

	tag, err := t.db.Exec(ctx, "DELETE FROM "+ident(t.name)+clause, args...)
	if err != nil {
		return wrapError(err, t.notFound)
	}
	if tag.RowsAffected() == 0 {
		return NewNotFoundError(t.notFound)
	}
	return nil
}
