// Copyright (c) 2026 Tolaria. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package predicate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

/*
TestRaw_Binds checks that raw fragments bind their values positionally.
*/
func TestRaw_Binds(t *testing.T) {
	binder := &Binder{}
	pred := NewRaw("c.mana_value >= ? AND c.mana_value <= ?", 2, 5)

	sql := pred.SQL(binder)

	assert.Equal(t, "(c.mana_value >= $1 AND c.mana_value <= $2)", sql)
	assert.Equal(t, []any{2, 5}, binder.Values())
}

/*
TestJunctions covers combinator rendering, including the degenerate empty
and single-child cases.
*/
func TestJunctions(t *testing.T) {
	a := NewRaw("a = ?", 1)
	b := NewRaw("b = ?", 2)

	tests := []struct {
		name string
		pred Predicate
		want string
	}{
		{
			name: "and_two_children",
			pred: And(a, b),
			want: "((a = $1) AND (b = $2))",
		},
		{
			name: "or_two_children",
			pred: Or(a, b),
			want: "((a = $1) OR (b = $2))",
		},
		{
			name: "single_child_collapses",
			pred: And(a),
			want: "(a = $1)",
		},
		{
			name: "empty_matches_nothing",
			pred: Or(),
			want: "FALSE",
		},
		{
			name: "negation_wraps",
			pred: Not(a),
			want: "NOT (a = $1)",
		},
		{
			name: "double_negation_unwraps",
			pred: Not(Not(a)),
			want: "(a = $1)",
		},
		{
			name: "exists_correlates",
			pred: Exists("cards.card_face f", And(NewRaw("f.card_id = c.id"), a)),
			want: "EXISTS (SELECT 1 FROM cards.card_face f WHERE ((f.card_id = c.id) AND (a = $1)))",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			binder := &Binder{}
			assert.Equal(t, test.want, test.pred.SQL(binder))
		})
	}
}

/*
TestBinder_Next checks the lookahead placeholder used for paging clauses.
*/
func TestBinder_Next(t *testing.T) {
	binder := &Binder{}

	assert.Equal(t, "$1", binder.Next())
	binder.Bind("x")
	assert.Equal(t, "$2", binder.Next())
}
