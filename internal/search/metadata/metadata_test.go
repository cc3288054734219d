// Copyright (c) 2026 Tolaria. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package metadata

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/tolaria/internal/search/sortkey"
)

/*
TestBuildFaceRecord_SymbolCounts checks the per-symbol multiset extraction,
including hybrid and phyrexian symbols and the generic amount.
*/
func TestBuildFaceRecord_SymbolCounts(t *testing.T) {
	tests := []struct {
		name        string
		manaCost    string
		wantCounts  map[string]int
		wantGeneric int
	}{
		{
			name:        "simple_cost",
			manaCost:    "{2}{W}{W}",
			wantCounts:  map[string]int{"w": 2},
			wantGeneric: 2,
		},
		{
			name:       "hybrid_symbols",
			manaCost:   "{G/U}{G/U}",
			wantCounts: map[string]int{"g/u": 2},
		},
		{
			name:       "phyrexian_symbols",
			manaCost:   "{W/P}{U}",
			wantCounts: map[string]int{"w/p": 1, "u": 1},
		},
		{
			name:       "x_cost",
			manaCost:   "{X}{X}{R}",
			wantCounts: map[string]int{"x": 2, "r": 1},
		},
		{
			name:       "empty_cost",
			manaCost:   "",
			wantCounts: map[string]int{},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			record := BuildFaceRecord(FaceSource{ID: 1, ManaCost: test.manaCost})
			assert.Equal(t, test.wantGeneric, record.GenericCount)
			for symbol, count := range record.SymbolCounts {
				assert.Equal(t, test.wantCounts[symbol], count, "symbol %q", symbol)
			}
		})
	}
}

/*
TestBuildFaceRecord_Produces checks the produced-colour flags, including the
"any color" catch-all.
*/
func TestBuildFaceRecord_Produces(t *testing.T) {
	tests := []struct {
		name      string
		rulesText string
		want      map[string]bool
	}{
		{
			name:      "single_colour",
			rulesText: "{T}: Add {G}.",
			want:      map[string]bool{"g": true},
		},
		{
			name:      "two_colours_one_sentence",
			rulesText: "{T}: Add {W} or {U}.",
			want:      map[string]bool{"w": true, "u": true},
		},
		{
			name:      "colourless",
			rulesText: "{T}: Add {C}{C}.",
			want:      map[string]bool{"c": true},
		},
		{
			name:      "any_colour_sets_all_five",
			rulesText: "{T}: Add one mana of any color.",
			want:      map[string]bool{"w": true, "u": true, "b": true, "r": true, "g": true},
		},
		{
			name:      "symbol_in_other_sentence_ignored",
			rulesText: "{T}: Add {B}. Spend this mana only to cast {G} spells.",
			want:      map[string]bool{"b": true},
		},
		{
			name:      "no_production",
			rulesText: "Flying",
			want:      map[string]bool{},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			record := BuildFaceRecord(FaceSource{ID: 1, RulesText: test.rulesText})
			for _, code := range ProducesCodes {
				assert.Equal(t, test.want[code], record.Produces[code], "code %q", code)
			}
		})
	}
}

/*
TestBuildFaceRecord_ReminderText checks that parenthesised reminder text is
stripped from the derived rules text.
*/
func TestBuildFaceRecord_ReminderText(t *testing.T) {
	record := BuildFaceRecord(FaceSource{
		ID:        1,
		RulesText: "Flying (This creature can't be blocked except by creatures with flying or reach.)",
	})
	assert.Equal(t, "Flying ", record.RulesNoReminders)

	plain := BuildFaceRecord(FaceSource{ID: 2, RulesText: "Haste"})
	assert.Equal(t, "Haste", plain.RulesNoReminders)
}

/*
TestFaceRecord_Diff checks that the diff names exactly the changed columns.
*/
func TestFaceRecord_Diff(t *testing.T) {
	previous := BuildFaceRecord(FaceSource{ID: 1, ManaCost: "{1}{W}", RulesText: "{T}: Add {W}."})

	t.Run("no_change_is_empty", func(t *testing.T) {
		current := BuildFaceRecord(FaceSource{ID: 1, ManaCost: "{1}{W}", RulesText: "{T}: Add {W}."})
		assert.Empty(t, current.Diff(previous))
	})

	t.Run("cost_change_names_columns", func(t *testing.T) {
		current := BuildFaceRecord(FaceSource{ID: 1, ManaCost: "{2}{W}", RulesText: "{T}: Add {W}."})
		assert.Equal(t, []string{"symbolcountgeneric"}, current.Diff(previous))
	})

	t.Run("produces_change_names_columns", func(t *testing.T) {
		current := BuildFaceRecord(FaceSource{ID: 1, ManaCost: "{1}{W}", RulesText: "{T}: Add {W} or {U}."})
		diff := current.Diff(previous)
		assert.Contains(t, diff, "producesu")
		assert.Contains(t, diff, "rulesnoreminders")
	})
}

/*
TestBuildCardRecord_Commander checks the commander eligibility rules.
*/
func TestBuildCardRecord_Commander(t *testing.T) {
	build := func(face sortkey.Face) CardRecord {
		return BuildCardRecord(CardSource{
			ID: 1,
			Card: sortkey.Card{
				Name:   face.Name,
				Layout: "normal",
				Faces:  []sortkey.Face{face},
			},
		})
	}

	tests := []struct {
		name string
		face sortkey.Face
		want bool
	}{
		{
			name: "legendary_creature",
			face: sortkey.Face{
				Name:       "Kemba, Kha Regent",
				Types:      []string{"Creature"},
				Supertypes: []string{"Legendary"},
			},
			want: true,
		},
		{
			name: "plain_creature",
			face: sortkey.Face{Name: "Grizzly Bears", Types: []string{"Creature"}},
			want: false,
		},
		{
			name: "text_grants_eligibility",
			face: sortkey.Face{
				Name:      "Shorikai, Genesis Engine",
				Types:     []string{"Artifact", "Vehicle"},
				RulesText: "Shorikai, Genesis Engine can be your commander.",
			},
			want: true,
		},
		{
			name: "background",
			face: sortkey.Face{
				Name:  "Raised by Giants",
				Types: []string{"Enchantment", "Background"},
			},
			want: true,
		},
		{
			name: "token_never_qualifies",
			face: sortkey.Face{
				Name:       "Legion Token",
				Types:      []string{"Creature"},
				Supertypes: []string{"Legendary", "Token"},
			},
			want: false,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, build(test.face).IsCommander)
		})
	}
}

/*
TestBuildCardRecord_Vanilla checks the vanilla creature flag.
*/
func TestBuildCardRecord_Vanilla(t *testing.T) {
	vanilla := BuildCardRecord(CardSource{
		ID: 1,
		Card: sortkey.Card{
			Name:  "Grizzly Bears",
			Faces: []sortkey.Face{{Name: "Grizzly Bears", Types: []string{"Creature"}}},
		},
	})
	assert.True(t, vanilla.IsVanilla)
	assert.NotEmpty(t, vanilla.SuperSortKey)

	keyworded := BuildCardRecord(CardSource{
		ID: 2,
		Card: sortkey.Card{
			Name: "Storm Crow",
			Faces: []sortkey.Face{{
				Name:      "Storm Crow",
				Types:     []string{"Creature"},
				RulesText: "Flying",
			}},
		},
	})
	assert.False(t, keyworded.IsVanilla)
}
