package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConditions(t *testing.T) {
	var c conditions
	assert.Equal(t, "", c.where())

	c.add("username = " + c.bind("alice"))
	p := c.bind("%jo%")
	c.add("(first_name ILIKE " + p + " OR last_name ILIKE " + p + ")")

	assert.Equal(t, " WHERE username = $1 AND (first_name ILIKE $2 OR last_name ILIKE $2)", c.where())
	assert.Equal(t, []any{"alice", "%jo%"}, c.args)
}

func TestAssignments(t *testing.T) {
	var a assignments
	assert.True(t, a.empty())

	a.set("name", "Alice")
	a.set("password", "hash")
	where := a.bind("alice")

	assert.False(t, a.empty())
	assert.Equal(t, "name = $1, password = $2", a.clause())
	assert.Equal(t, "$3", where)
	assert.Equal(t, []any{"Alice", "hash", "alice"}, a.args)
}

func TestContainsPattern(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: "jo", expected: "%jo%"},
		{input: "100%", expected: `%100\%%`},
		{input: "a_b", expected: `%a\_b%`},
		{input: `back\slash`, expected: `%back\\slash%`},
		{input: "'; DROP TABLE contacts; --", expected: "%'; DROP TABLE contacts; --%"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, containsPattern(tt.input), tt.input)
	}
}
