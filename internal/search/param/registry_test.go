// Copyright (c) 2026 Tolaria. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package param

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/*
TestBuild_Dispatch checks that keywords shared between kinds are routed by
operand shape, and that unknown keywords and operators fail with validation
errors.
*/
func TestBuild_Dispatch(t *testing.T) {
	tests := []struct {
		name    string
		args    Args
		want    any
		wantErr string
	}{
		{
			name: "colour_set_operand",
			args: Args{Keyword: "c", Operator: ":", Value: "rg"},
			want: &ComplexColourParam{},
		},
		{
			name: "colour_numeric_operand",
			args: Args{Keyword: "c", Operator: ">=", Value: "2"},
			want: &ColourCountParam{},
		},
		{
			name: "mana_cost_operand",
			args: Args{Keyword: "m", Operator: "=", Value: "2ww"},
			want: &ManaCostParam{},
		},
		{
			name: "mana_numeric_operand",
			args: Args{Keyword: "m", Operator: "=", Value: "4"},
			want: &ManaValueParam{},
		},
		{
			name: "is_token_routes_to_type",
			args: Args{Keyword: "is", Operator: ":", Value: "token"},
			want: &TypeParam{},
		},
		{
			name: "is_commander",
			args: Args{Keyword: "is", Operator: ":", Value: "commander"},
			want: &CommanderParam{},
		},
		{
			name: "sort_keyword",
			args: Args{Keyword: "order", Operator: ":", Value: "rarity"},
			want: &SortParam{},
		},
		{
			name:    "unknown_keyword",
			args:    Args{Keyword: "frobnicate", Operator: ":", Value: "x"},
			wantErr: `unknown keyword "frobnicate"`,
		},
		{
			name:    "unknown_is_value",
			args:    Args{Keyword: "is", Operator: ":", Value: "frobnicated"},
			wantErr: `unknown keyword "is"`,
		},
		{
			name:    "unsupported_operator",
			args:    Args{Keyword: "set", Operator: ">=", Value: "dom"},
			wantErr: `can't use operator ">=" for set parameter`,
		},
		{
			name:    "unknown_colour",
			args:    Args{Keyword: "c", Operator: ":", Value: "purple"},
			wantErr: `unknown colour "purple"`,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			node, err := Build(test.args)
			if test.wantErr != "" {
				require.Error(t, err)
				var validationErr *ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.Contains(t, validationErr.Error(), test.wantErr)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, test.want, node)
		})
	}
}

/*
TestBuild_NotKeyword checks that "not:<value>" negates the built parameter.
*/
func TestBuild_NotKeyword(t *testing.T) {
	node, err := Build(Args{Keyword: "not", Operator: ":", Value: "reprint"})

	require.NoError(t, err)
	assert.IsType(t, &ReprintParam{}, node)
	assert.True(t, node.Negated())
}

/*
TestBuild_SortDirection checks that "order<" reverses the sort direction.
*/
func TestBuild_SortDirection(t *testing.T) {
	node, err := Build(Args{Keyword: "order", Operator: "<", Value: "rarity"})

	require.NoError(t, err)
	sort, ok := node.(*SortParam)
	require.True(t, ok)
	assert.True(t, sort.Negated())
	assert.Contains(t, sort.OrderBy(&Context{})[0], "DESC")
}
