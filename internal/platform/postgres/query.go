package postgres

import (
	"strconv"
	"strings"
)

// params accumulates bound arguments and hands out their $n placeholders.
// Dynamic SQL in this package is assembled only from fixed fragments and
// placeholders; user input always travels as a bound argument.
type params struct {
	args []any
}

// bind appends v and returns its placeholder.
func (p *params) bind(v any) string {
	p.args = append(p.args, v)
	return "$" + strconv.Itoa(len(p.args))
}

// conditions is a conjunction of predicates sharing one params list.
type conditions struct {
	params
	clauses []string
}

func (c *conditions) add(clause string) {
	c.clauses = append(c.clauses, clause)
}

// where renders " WHERE a AND b", or "" when there are no predicates.
func (c *conditions) where() string {
	if len(c.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(c.clauses, " AND ")
}

// assignments is a SET list sharing one params list.
type assignments struct {
	params
	sets []string
}

func (a *assignments) set(column string, v any) {
	a.sets = append(a.sets, column+" = "+a.bind(v))
}

func (a *assignments) empty() bool {
	return len(a.sets) == 0
}

// clause renders "col1 = $1, col2 = $2".
func (a *assignments) clause() string {
	return strings.Join(a.sets, ", ")
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern returns an ILIKE pattern matching s anywhere, with LIKE
// wildcards in s matched literally.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
