package repository

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownField is returned when a sparse update names a field the table
// does not expose.
var ErrUnknownField = errors.New("unknown update field")

// Changes is a sparse update: field name to new value. Fields that are absent
// are left unchanged.
type Changes map[string]any

// Set records a change and returns the receiver for chaining.
func (c Changes) Set(field string, value any) Changes {
	c[field] = value
	return c
}

// Empty reports whether there is anything to write.
func (c Changes) Empty() bool {
	return len(c) == 0
}

// buildUpdate renders a parameterised UPDATE for changes. columns maps the
// public field names to column names; only those fields are accepted.
func buildUpdate(table string, columns map[string]string, changes Changes, id int64, returning string) (string, []any, error) {
	fields := make([]string, 0, len(changes))
	for field := range changes {
		if _, ok := columns[field]; !ok {
			return "", nil, fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
		fields = append(fields, field)
	}
	sort.Strings(fields)

	sets := make([]string, 0, len(fields))
	args := make([]any, 0, len(fields)+1)
	for _, field := range fields {
		args = append(args, changes[field])
		sets = append(sets, fmt.Sprintf("%s=$%d", columns[field], len(args)))
	}
	args = append(args, id)

	query := fmt.Sprintf("UPDATE %s SET %s WHERE id=$%d RETURNING %s",
		table, strings.Join(sets, ", "), len(args), returning)
	return query, args, nil
}
