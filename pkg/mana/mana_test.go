// Copyright (c) 2026 Tolaria. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package mana_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/tolaria/pkg/mana"
)

/*
TestParse covers braced, bare-shorthand, and hybrid-canonicalising parses.
*/
func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		counts  map[string]int
		generic int
		wantErr bool
	}{
		{"braced_basic", "{2}{W}{W}", map[string]int{"w": 2}, 2, false},
		{"bare_shorthand", "2ww", map[string]int{"w": 2}, 2, false},
		{"multi_digit_generic", "10g", map[string]int{"g": 1}, 10, false},
		{"hybrid_canonical_order", "{W/R}{W/R}", map[string]int{"r/w": 2}, 0, false},
		{"hybrid_reversed_spelling", "{R/W}", map[string]int{"r/w": 1}, 0, false},
		{"phyrexian", "{G/P}", map[string]int{"g/p": 1}, 0, false},
		{"twobrid", "{2/U}", map[string]int{"2/u": 1}, 0, false},
		{"x_spell", "{X}{X}{R}", map[string]int{"x": 2, "r": 1}, 0, false},
		{"snow", "{S}", map[string]int{"s": 1}, 0, false},
		{"split_generic_sums", "{1}{1}", map[string]int{}, 2, false},
		{"empty", "", map[string]int{}, 0, false},
		{"unterminated_brace", "{2}{W", nil, 0, true},
		{"nested_brace", "{{W}}", nil, 0, true},
		{"stray_close", "W}", nil, 0, true},
		{"unknown_symbol", "{Q}", nil, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cost, err := mana.Parse(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.generic, cost.Generic)
			assert.Len(t, cost.Counts, len(tt.counts))
			for symbol, count := range tt.counts {
				assert.Equal(t, count, cost.Counts[symbol], "symbol %q", symbol)
			}
		})
	}
}

/*
TestCost_ConvertedValue checks mana-value arithmetic, including the twobrid
double count and X counting as zero.
*/
func TestCost_ConvertedValue(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"simple", "{2}{W}{W}", 4},
		{"x_is_zero", "{X}{R}", 1},
		{"twobrid_counts_two", "{2/W}{2/W}{G}", 5},
		{"free", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cost, err := mana.Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, cost.ConvertedValue())
		})
	}
}

/*
TestCountIn checks the raw-text symbol counter used by the metadata builder.
*/
func TestCountIn(t *testing.T) {
	assert.Equal(t, 2, mana.CountIn("{2}{W}{W}", "W"))
	assert.Equal(t, 0, mana.CountIn("{2}{W}{W}", "U"))
	assert.Equal(t, 1, mana.CountIn("{g/u}{G}", "G/U"))
	assert.Equal(t, 0, mana.CountIn("", "W"))
}
