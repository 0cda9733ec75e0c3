package postgres

import (
	"fmt"
	"strings"
)

// setBuilder accumulates "column = $n" assignments for a dynamic UPDATE
// statement built from a sparse change set.
type setBuilder struct {
	assignments []string
	args        []any
}

// Set appends an assignment for column with the next placeholder index.
func (b *setBuilder) Set(column string, value any) {
	b.args = append(b.args, value)
	b.assignments = append(b.assignments, fmt.Sprintf("%s = $%d", column, len(b.args)))
}

// Empty reports whether no assignment was added.
func (b *setBuilder) Empty() bool {
	return len(b.assignments) == 0
}

// Clause returns the SET clause body.
func (b *setBuilder) Clause() string {
	return strings.Join(b.assignments, ", ")
}

// Next returns the placeholder index following the accumulated arguments.
func (b *setBuilder) Next() int {
	return len(b.args) + 1
}
