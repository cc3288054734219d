// Copyright (c) 2026 Tolaria. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package colour_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/tolaria/pkg/colour"
)

/*
TestParse covers nickname, code-run, and failure resolution.
*/
func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  colour.Set
		ok    bool
	}{
		{"single_code", "r", colour.Red, true},
		{"code_run", "rg", colour.Red | colour.Green, true},
		{"code_run_mixed_case", "Wub", colour.White | colour.Blue | colour.Black, true},
		{"full_name", "green", colour.Green, true},
		{"guild", "izzet", colour.Blue | colour.Red, true},
		{"shard", "esper", colour.White | colour.Blue | colour.Black, true},
		{"wedge", "abzan", colour.White | colour.Black | colour.Green, true},
		{"colourless", "colourless", colour.Colourless, true},
		{"colorless_us_spelling", "c", colour.Colourless, true},
		{"all", "all", colour.All, true},
		{"unknown", "purple", 0, false},
		{"empty", "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set, ok := colour.Parse(tt.input)
			require.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.want, set)
			}
		})
	}
}

/*
TestSet_Comparisons checks the subset/superset primitives the search
operators are built from.
*/
func TestSet_Comparisons(t *testing.T) {
	rg := colour.Red | colour.Green

	assert.True(t, (colour.Red | colour.Green | colour.Black).Contains(rg))
	assert.True(t, rg.Contains(rg))
	assert.False(t, (colour.Blue | colour.Red).Contains(rg))

	assert.True(t, colour.Red.SubsetOf(rg))
	assert.True(t, colour.Colourless.SubsetOf(rg))
	assert.False(t, (colour.Red | colour.Blue).SubsetOf(rg))
}

/*
TestSet_Symbols checks canonical WUBRG ordering regardless of input order.
*/
func TestSet_Symbols(t *testing.T) {
	assert.Equal(t, "WUB", (colour.Black | colour.White | colour.Blue).Symbols())
	assert.Equal(t, "C", colour.Colourless.Symbols())
	assert.Equal(t, "WUBRG", colour.All.Symbols())
	assert.Equal(t, 3, (colour.Black | colour.White | colour.Blue).Count())
	assert.Equal(t, 0, colour.Colourless.Count())
}
