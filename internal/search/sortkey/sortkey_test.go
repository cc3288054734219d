// Copyright (c) 2026 Tolaria. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sortkey

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/tolaria/pkg/colour"
)

func creature(name, cost string, manaValue int, colours colour.Set) Card {
	return Card{
		Name:           name,
		Layout:         "normal",
		ManaValue:      manaValue,
		ColourIdentity: colours,
		Faces: []Face{{
			Name:     name,
			ManaCost: cost,
			Types:    []string{"Creature"},
			Colours:  colours,
		}},
	}
}

/*
TestKey_Format checks the rendered shape: zero-padded parts joined with
dashes, terminated by the name slug.
*/
func TestKey_Format(t *testing.T) {
	card := creature("Grizzly Bears", "{1}{G}", 2, colour.Green)
	assert.Equal(t, "00-05-00-00-00-02-01-grizzly-bears", Key(card))
}

/*
TestKey_Ordering checks relative order between card pairs: the earlier card
must produce the lexicographically smaller key.
*/
func TestKey_Ordering(t *testing.T) {
	instant := Card{
		Name:      "Shock",
		Layout:    "normal",
		ManaValue: 1,
		Faces: []Face{{
			Name:     "Shock",
			ManaCost: "{R}",
			Types:    []string{"Instant"},
			Colours:  colour.Red,
		}},
	}
	artifact := Card{
		Name:      "Sol Ring",
		Layout:    "normal",
		ManaValue: 1,
		Faces: []Face{{
			Name:     "Sol Ring",
			ManaCost: "{1}",
			Types:    []string{"Artifact"},
		}},
	}
	land := Card{
		Name:   "Wastes",
		Layout: "normal",
		Faces: []Face{{
			Name:       "Wastes",
			RulesText:  "{T}: Add {C}.",
			Types:      []string{"Land"},
			Supertypes: []string{"Basic"},
		}},
	}
	token := Card{
		Name:   "Soldier Token",
		Layout: "token",
		Faces: []Face{{
			Name:       "Soldier Token",
			Types:      []string{"Creature"},
			Supertypes: []string{"Token"},
			Colours:    colour.White,
		}},
	}

	tests := []struct {
		name   string
		before Card
		after  Card
	}{
		{
			name:   "creatures_before_instants",
			before: creature("Monastery Swiftspear", "{R}", 1, colour.Red),
			after:  instant,
		},
		{
			name:   "white_before_red",
			before: creature("Savannah Lions", "{W}", 1, colour.White),
			after:  creature("Goblin Guide", "{R}", 1, colour.Red),
		},
		{
			name:   "coloured_before_colourless_artifacts",
			before: creature("Goblin Guide", "{R}", 1, colour.Red),
			after:  artifact,
		},
		{
			name:   "artifacts_before_lands",
			before: artifact,
			after:  land,
		},
		{
			name:   "lands_before_tokens",
			before: land,
			after:  token,
		},
		{
			name:   "cheap_before_expensive",
			before: creature("Llanowar Elves", "{G}", 1, colour.Green),
			after:  creature("Gnarlback Rhino", "{3}{G}", 4, colour.Green),
		},
		{
			name: "fixed_cost_before_x_cost",
			before: Card{
				Name:      "Lava Axe",
				Layout:    "normal",
				ManaValue: 5,
				Faces: []Face{{
					Name:     "Lava Axe",
					ManaCost: "{4}{R}",
					Types:    []string{"Sorcery"},
					Colours:  colour.Red,
				}},
			},
			after: Card{
				Name:      "Fireball",
				Layout:    "normal",
				ManaValue: 1,
				Faces: []Face{{
					Name:     "Fireball",
					ManaCost: "{X}{R}",
					Types:    []string{"Sorcery"},
					Colours:  colour.Red,
				}},
			},
		},
		{
			// 5W and 4WW share a mana value; the more generic cost wins.
			name:   "generic_heavy_cost_first",
			before: creature("Oreskos Vanguard", "{5}{W}", 6, colour.White),
			after:  creature("Dawnfeather Guardian", "{4}{W}{W}", 6, colour.White),
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Less(t, Key(test.before), Key(test.after))
		})
	}
}

/*
TestKey_FetchLandIdentity checks that fetch lands inherit the colours of
the basics they search for, despite a colourless identity.
*/
func TestKey_FetchLandIdentity(t *testing.T) {
	fetch := Card{
		Name:   "Flooded Strand",
		Layout: "normal",
		Faces: []Face{{
			Name:      "Flooded Strand",
			RulesText: "{T}, Pay 1 life, Sacrifice Flooded Strand: Search your library for a Plains or Island card, put it onto the battlefield, then shuffle.",
			Types:     []string{"Land"},
		}},
	}
	parts := keyParts(fetch)
	assert.Equal(t, 50-(colour.White|colour.Blue).SortRank(), parts[2])
}

/*
TestKey_DevoidUsesManaCost checks that devoid cards sort by the colours in
their cost rather than their mechanical colourlessness.
*/
func TestKey_DevoidUsesManaCost(t *testing.T) {
	devoid := Card{
		Name:      "Reality Smasher",
		Layout:    "normal",
		ManaValue: 5,
		Faces: []Face{{
			Name:      "Reality Smasher",
			ManaCost:  "{4}{R}",
			RulesText: "Devoid (This card has no color.)\nTrample, haste",
			Types:     []string{"Creature"},
		}},
	}
	parts := keyParts(devoid)
	assert.Equal(t, colour.Red.SortRank(), parts[1])
}

/*
TestKey_ColourOverrides checks the hand-curated colour placements.
*/
func TestKey_ColourOverrides(t *testing.T) {
	urborg := Card{
		Name:      "Urborg, Tomb of Yawgmoth",
		Layout:    "normal",
		ManaValue: 0,
		Faces: []Face{{
			Name:  "Urborg, Tomb of Yawgmoth",
			Types: []string{"Enchantment"},
		}},
	}
	parts := keyParts(urborg)
	assert.Equal(t, colour.Black.SortRank(), parts[1])
}

/*
TestKey_SplitFaces checks that both halves of a split card contribute and
that split cards sort after single-faced cards.
*/
func TestKey_SplitFaces(t *testing.T) {
	split := Card{
		Name:      "Fire // Ice",
		Layout:    "split",
		ManaValue: 4,
		Faces: []Face{
			{Name: "Fire", ManaCost: "{1}{R}", Types: []string{"Instant"}, Colours: colour.Red},
			{Name: "Ice", ManaCost: "{1}{U}", Types: []string{"Instant"}, Colours: colour.Blue},
		},
	}
	parts := keyParts(split)
	assert.Equal(t, (colour.Red | colour.Blue).SortRank(), parts[1])
	assert.Equal(t, 1, parts[4])
}
