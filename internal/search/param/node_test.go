// Copyright (c) 2026 Tolaria. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package param

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/tolaria/internal/search/predicate"
)

func mustBuild(t *testing.T, keyword, operator, value string) Node {
	t.Helper()
	node, err := Build(Args{Keyword: keyword, Operator: operator, Value: value})
	require.NoError(t, err)
	return node
}

func compile(t *testing.T, node Node, search *Context) (string, []any) {
	t.Helper()
	binder := &predicate.Binder{}
	sql := node.Compile(search).SQL(binder)
	return sql, binder.Values()
}

/*
TestComplexColour_Compile checks the colour set comparisons, including the
intentional ":" asymmetry between plain colour and colour identity.
*/
func TestComplexColour_Compile(t *testing.T) {
	tests := []struct {
		name     string
		keyword  string
		operator string
		value    string
		wantSQL  string
		wantArgs []any
	}{
		{
			// Plain colour ":" means "at least": flags & operand = operand.
			name:     "colour_contains_is_superset",
			keyword:  "c",
			operator: ":",
			value:    "rg",
			wantSQL:  "f.colourflags & $1 = $2",
			wantArgs: []any{24, 24},
		},
		{
			// Identity ":" means "at most": no flags outside the operand.
			name:     "identity_contains_is_subset",
			keyword:  "id",
			operator: ":",
			value:    "rg",
			wantSQL:  "c.colouridentityflags & $1 = 0",
			wantArgs: []any{7},
		},
		{
			name:     "colour_exact",
			keyword:  "colour",
			operator: "=",
			value:    "wu",
			wantSQL:  "f.colourflags = $1",
			wantArgs: []any{3},
		},
		{
			name:     "identity_strict_superset",
			keyword:  "ci",
			operator: ">",
			value:    "w",
			wantSQL:  "c.colouridentityflags & $1 = $2) AND (c.colouridentityflags <> $3",
			wantArgs: []any{1, 1, 1},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			node := mustBuild(t, test.keyword, test.operator, test.value)
			sql, args := compile(t, node, &Context{})

			assert.Contains(t, sql, test.wantSQL)
			assert.Equal(t, test.wantArgs, args)
		})
	}
}

/*
TestManaCost_ZeroAssertions checks that the bounded operators assert a zero
count for every symbol absent from the operand, generic mana included.
*/
func TestManaCost_ZeroAssertions(t *testing.T) {
	search := &Context{}

	node := mustBuild(t, "m", "=", "2ww")
	require.NoError(t, node.Validate(context.Background(), search))
	sql, args := compile(t, node, search)

	assert.Contains(t, sql, "fm.symbolcountw = $1")
	assert.Contains(t, args, 2)
	assert.Contains(t, sql, "fm.symbolcountu = 0")
	assert.Contains(t, sql, "fm.symbolcountwp = 0")
	// Generic is tested positively, not zero-asserted.
	assert.Contains(t, sql, "fm.symbolcountgeneric = $2")

	// Without generic mana in the operand it must be zero.
	node = mustBuild(t, "m", "<=", "ww")
	require.NoError(t, node.Validate(context.Background(), search))
	sql, _ = compile(t, node, search)
	assert.Contains(t, sql, "fm.symbolcountgeneric = 0")

	// ">=" asserts nothing about untested symbols.
	node = mustBuild(t, "m", ":", "ww")
	require.NoError(t, node.Validate(context.Background(), search))
	sql, _ = compile(t, node, search)
	assert.NotContains(t, sql, "= 0")
}

/*
TestNumeric_NotNullConjunct checks the implicit not-null conjunct and that
negation applies outside it, so "-power>=4" includes cards with no power.
*/
func TestNumeric_NotNullConjunct(t *testing.T) {
	search := &Context{}

	node := mustBuild(t, "power", ">=", "4")
	require.NoError(t, node.Validate(context.Background(), search))
	sql, _ := compile(t, node, search)
	assert.Contains(t, sql, "f.numpower >= $1")
	assert.Contains(t, sql, "f.power IS NOT NULL")
	assert.NotContains(t, sql, "NOT EXISTS")

	node.Negate()
	sql, _ = compile(t, node, search)
	assert.Contains(t, sql, "NOT EXISTS")
}

/*
TestNumeric_FieldReference checks operands referencing another numeric field.
*/
func TestNumeric_FieldReference(t *testing.T) {
	search := &Context{}

	node := mustBuild(t, "power", ">", "toughness")
	require.NoError(t, node.Validate(context.Background(), search))
	sql, args := compile(t, node, search)

	assert.Contains(t, sql, "f.numpower > f.numtoughness")
	assert.Empty(t, args)
}

/*
TestOwnership_RequiresActor checks the signed-in requirement and the
sentinel operand rewrites.
*/
func TestOwnership_RequiresActor(t *testing.T) {
	node := mustBuild(t, "have", ":", "any")

	err := node.Validate(context.Background(), &Context{})
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Error(), "not logged in")

	search := &Context{Actor: &Actor{ID: "4b825dc6-42fb-4f52-9c5d-0b1f1d2cf9a0"}}
	require.NoError(t, node.Validate(context.Background(), search))
	sql, args := compile(t, node, search)
	assert.Contains(t, sql, ">= $2")
	assert.Equal(t, []any{"4b825dc6-42fb-4f52-9c5d-0b1f1d2cf9a0", float64(1)}, args)
}

/*
TestBranch_Semantics covers empty branches, single-child collapse in pretty
output, and printing scope propagation.
*/
func TestBranch_Semantics(t *testing.T) {
	search := &Context{}

	/* An empty branch matches nothing rather than failing. */
	empty := NewAnd()
	sql, _ := compile(t, empty, search)
	assert.Equal(t, "FALSE", sql)

	named := NewNameContains("bolt")
	single := NewAnd(named)
	assert.Equal(t, named.Pretty(search), single.Pretty(search))

	both := NewAnd(named, mustBuild(t, "rarity", ":", "m"))
	assert.Equal(t, predicate.ScopePrinting, both.DefaultScope())

	negated := NewOr(named)
	negated.Negate()
	sql, _ = compile(t, negated, search)
	assert.Contains(t, sql, "NOT ")
}

/*
TestBranch_CollectsSorts checks that sort parameters are gathered from the
whole subtree in query order.
*/
func TestBranch_CollectsSorts(t *testing.T) {
	root := NewAnd(
		mustBuild(t, "order", ":", "rarity"),
		NewOr(NewNameContains("bolt"), mustBuild(t, "sort", ":", "name")),
	)

	sorts := root.Sorts()
	require.Len(t, sorts, 2)
	assert.Equal(t, "rarity", sorts[0].value)
	assert.Equal(t, "name", sorts[1].value)
}

/*
TestOperandCase checks how operand case travels to SQL: regex and free text
reach the binder byte for byte, while token-valued parameters accept any
case the user typed.
*/
func TestOperandCase(t *testing.T) {
	search := &Context{}

	/* Escape classes must survive untouched: "\W" and "\w" match opposite
	   character sets in a Postgres regex. */
	node, err := Build(Args{Keyword: "o", Operator: ":", Value: `adds?\W`, IsRegex: true})
	require.NoError(t, err)
	sql, args := compile(t, node, search)
	assert.Contains(t, sql, "f.rulestext ~* $1")
	assert.Equal(t, []any{`adds?\W`}, args)

	/* A bare word keeps the case the user typed; ILIKE makes the match
	   case-insensitive regardless. */
	named := NewNameContains("Lightning Bolt")
	assert.Equal(t, `the name contains "Lightning Bolt"`, named.Pretty(search))
	_, args = compile(t, named, search)
	assert.Equal(t, []any{"%Lightning Bolt%"}, args)

	/* Exact text comparisons fold at bind time instead. */
	artist := mustBuild(t, "artist", "=", "Rebecca Guay")
	_, args = compile(t, artist, search)
	assert.Equal(t, []any{"rebecca guay"}, args)

	/* Token operands dispatch and validate case-insensitively. */
	assert.IsType(t,
		mustBuild(t, "is", ":", "commander"),
		mustBuild(t, "is", ":", "Commander"),
	)
	assert.IsType(t, &SortParam{}, mustBuild(t, "order", ":", "Rarity"))

	owned := mustBuild(t, "have", ":", "ANY")
	actor := &Context{Actor: &Actor{ID: "4b825dc6-42fb-4f52-9c5d-0b1f1d2cf9a0"}}
	require.NoError(t, owned.Validate(context.Background(), actor))
	sql, _ = compile(t, owned, actor)
	assert.Contains(t, sql, ">= $2")
}

/*
TestPrintingScope_SharedAlias checks that printing-scoped leaves correlate
to the shared printing alias in printing scope and wrap their own EXISTS in
card scope.
*/
func TestPrintingScope_SharedAlias(t *testing.T) {
	node := mustBuild(t, "is", ":", "reprint")

	cardSQL, _ := compile(t, node, &Context{Scope: predicate.ScopeCard})
	assert.Contains(t, cardSQL, "EXISTS (SELECT 1 FROM cards.card_printing p")

	printingSQL, _ := compile(t, node, &Context{Scope: predicate.ScopePrinting})
	assert.Equal(t, "(p.isreprint)", printingSQL)
}
