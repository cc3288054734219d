// Copyright (c) 2026 Tolaria. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/tolaria/internal/search/param"
	"github.com/taibuivan/tolaria/internal/search/predicate"
)

func mustParse(t *testing.T, query string) param.Node {
	t.Helper()
	node, err := Parse(query)
	require.NoError(t, err)
	return node
}

func compile(t *testing.T, node param.Node) (string, []any) {
	t.Helper()
	binder := &predicate.Binder{}
	sql := node.Compile(&param.Context{}).SQL(binder)
	return sql, binder.Values()
}

/*
TestParse_Shapes checks the tree produced for each grammar construct: bare
words and quoted phrases become name searches, juxtaposition is AND, "or"
binds looser than AND, and "-" and groups negate.
*/
func TestParse_Shapes(t *testing.T) {
	tests := []struct {
		name  string
		query string
		check func(t *testing.T, node param.Node)
	}{
		{
			name:  "bare_word_is_name_search",
			query: "bolt",
			check: func(t *testing.T, node param.Node) {
				assert.IsType(t, &param.NameParam{}, node)
			},
		},
		{
			name:  "quoted_phrase_is_name_search",
			query: `"lightning bolt"`,
			check: func(t *testing.T, node param.Node) {
				require.IsType(t, &param.NameParam{}, node)
				_, args := compile(t, node)
				assert.Equal(t, []any{"%lightning bolt%"}, args)
			},
		},
		{
			name:  "bang_prefix_is_exact_name",
			query: "!counterspell",
			check: func(t *testing.T, node param.Node) {
				require.IsType(t, &param.NameParam{}, node)
				sql, args := compile(t, node)
				assert.Equal(t, "(LOWER(c.name) = $1)", sql)
				assert.Equal(t, []any{"counterspell"}, args)
			},
		},
		{
			name:  "juxtaposition_is_and",
			query: "t:goblin pow>=2",
			check: func(t *testing.T, node param.Node) {
				branch, ok := node.(*param.Branch)
				require.True(t, ok)
				assert.Equal(t, param.OpAnd, branch.Op)
				assert.Len(t, branch.Children, 2)
			},
		},
		{
			name:  "or_keyword_is_union",
			query: "t:goblin or t:elf",
			check: func(t *testing.T, node param.Node) {
				branch, ok := node.(*param.Branch)
				require.True(t, ok)
				assert.Equal(t, param.OpOr, branch.Op)
				assert.Len(t, branch.Children, 2)
			},
		},
		{
			name:  "and_binds_tighter_than_or",
			query: "t:goblin pow>=2 or t:elf",
			check: func(t *testing.T, node param.Node) {
				branch, ok := node.(*param.Branch)
				require.True(t, ok)
				require.Equal(t, param.OpOr, branch.Op)
				require.Len(t, branch.Children, 2)

				left, ok := branch.Children[0].(*param.Branch)
				require.True(t, ok)
				assert.Equal(t, param.OpAnd, left.Op)
				assert.Len(t, left.Children, 2)
			},
		},
		{
			name:  "dash_negates_parameter",
			query: "-c:rg",
			check: func(t *testing.T, node param.Node) {
				assert.True(t, node.Negated())
			},
		},
		{
			name:  "dash_negates_group",
			query: "-(t:goblin or t:elf)",
			check: func(t *testing.T, node param.Node) {
				branch, ok := node.(*param.Branch)
				require.True(t, ok)
				assert.Equal(t, param.OpOr, branch.Op)
				assert.True(t, branch.Negated())
			},
		},
		{
			name:  "parenthesised_group_nests",
			query: "(t:goblin or t:elf) c:r",
			check: func(t *testing.T, node param.Node) {
				branch, ok := node.(*param.Branch)
				require.True(t, ok)
				require.Equal(t, param.OpAnd, branch.Op)
				require.Len(t, branch.Children, 2)

				inner, ok := branch.Children[0].(*param.Branch)
				require.True(t, ok)
				assert.Equal(t, param.OpOr, inner.Op)
			},
		},
		{
			name:  "paren_word_group_is_and",
			query: "t:(human wizard)",
			check: func(t *testing.T, node param.Node) {
				branch, ok := node.(*param.Branch)
				require.True(t, ok)
				require.Equal(t, param.OpAnd, branch.Op)
				require.Len(t, branch.Children, 2)
				assert.IsType(t, &param.TypeParam{}, branch.Children[0])
			},
		},
		{
			name:  "bracket_word_group_is_or",
			query: "c:[w u]",
			check: func(t *testing.T, node param.Node) {
				branch, ok := node.(*param.Branch)
				require.True(t, ok)
				assert.Equal(t, param.OpOr, branch.Op)
				assert.Len(t, branch.Children, 2)
			},
		},
		{
			name:  "slash_value_is_regex",
			query: `o:/deals \d+ damage/`,
			check: func(t *testing.T, node param.Node) {
				require.IsType(t, &param.RulesTextParam{}, node)
				sql, args := compile(t, node)
				assert.Contains(t, sql, "~* $1")
				// The pattern between the slashes is bound byte for byte.
				assert.Equal(t, []any{`deals \d+ damage`}, args)
			},
		},
		{
			name:  "regex_escape_class_kept_verbatim",
			query: `o:/adds?\W/`,
			check: func(t *testing.T, node param.Node) {
				_, args := compile(t, node)
				assert.Equal(t, []any{`adds?\W`}, args)
			},
		},
		{
			name:  "explicit_and_keyword",
			query: "t:goblin and t:warrior",
			check: func(t *testing.T, node param.Node) {
				branch, ok := node.(*param.Branch)
				require.True(t, ok)
				assert.Equal(t, param.OpAnd, branch.Op)
				assert.Len(t, branch.Children, 2)
			},
		},
		{
			name:  "quoted_operand",
			query: `o:"destroy target creature"`,
			check: func(t *testing.T, node param.Node) {
				assert.IsType(t, &param.RulesTextParam{}, node)
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			test.check(t, mustParse(t, test.query))
		})
	}
}

/*
TestParse_QuotedEscapes checks escape handling inside quoted operands.
*/
func TestParse_QuotedEscapes(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{
			name:  "escaped_quote",
			query: `name:"the \"truth\""`,
			want:  `%the "truth"%`,
		},
		{
			name:  "unicode_escape",
			query: `name:"\u00e6ther"`,
			want:  "%æther%",
		},
		{
			name:  "single_quotes",
			query: `name:'urza'`,
			want:  "%urza%",
		},
		{
			name:  "control_escape",
			query: `name:"a\tb"`,
			want:  "%a\tb%",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			node := mustParse(t, test.query)
			_, args := compile(t, node)
			require.Len(t, args, 1)
			assert.Equal(t, test.want, args[0])
		})
	}
}

/*
TestParse_Errors checks that malformed queries fail with a ParseError and
that operand validation failures surface unchanged instead of being
swallowed by backtracking.
*/
func TestParse_Errors(t *testing.T) {
	parseErrors := []struct {
		name  string
		query string
	}{
		{name: "empty_query", query: ""},
		{name: "unbalanced_paren", query: "(t:goblin"},
		{name: "bare_or_keyword", query: "or"},
		{name: "trailing_or", query: "t:goblin or"},
		{name: "unterminated_quote", query: `name:"foo`},
		{name: "bare_unterminated_quote", query: `"foo`},
		{name: "unterminated_word_group", query: "t:(human"},
	}

	for _, test := range parseErrors {
		t.Run(test.name, func(t *testing.T) {
			_, err := Parse(test.query)
			var parseErr *ParseError
			require.ErrorAs(t, err, &parseErr)
		})
	}

	t.Run("unknown_keyword_is_validation_error", func(t *testing.T) {
		_, err := Parse("frobnicate:4")
		var validationErr *param.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "frobnicate", validationErr.Param)
	})

	t.Run("bad_operand_is_validation_error", func(t *testing.T) {
		_, err := Parse("c:purple")
		var validationErr *param.ValidationError
		require.ErrorAs(t, err, &validationErr)
	})
}

/*
TestParse_ErrorPositions checks that the reported position points at the
actual problem rather than the start of the query.
*/
func TestParse_ErrorPositions(t *testing.T) {
	_, err := Parse(`t:goblin name:"unterminated`)
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "end of string", parseErr.Expected)
	assert.Equal(t, 14, parseErr.Pos)
}
