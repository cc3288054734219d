// Copyright (c) 2026 Tolaria. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package sortkey computes the canonical card ordering key.
//
// # Shape
//
// A key is a dash-joined list of zero-padded numeric parts followed by the
// card's name slug, so that a plain lexicographic ORDER BY over the stored
// key yields the curated ordering: lands before nonlands is inverted (lands
// sort last via a leading part), then colour, spell type, mana value and
// finally name. Keys are recomputed by the metadata job whenever a card
// changes.
package sortkey

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/taibuivan/tolaria/pkg/colour"
	"github.com/taibuivan/tolaria/pkg/slug"
)

// Card is the sortable view of a card. Faces appear in face order; only the
// front face participates unless the layout is split or room.
type Card struct {
	Name           string
	Layout         string
	ManaValue      int
	ColourIdentity colour.Set
	Faces          []Face
}

// Face is the sortable view of a single card face.
type Face struct {
	Name       string
	ManaCost   string
	RulesText  string
	Types      []string
	Subtypes   []string
	Supertypes []string
	Colours    colour.Set
}

var genericMana = regexp.MustCompile(`\{(\d+)\}`)

// colourProduction matches "add"/"adds" followed by the symbol within one
// sentence, per colour flag.
var colourProduction = func() map[colour.Set]*regexp.Regexp {
	patterns := make(map[colour.Set]*regexp.Regexp, 5)
	for _, entry := range []struct {
		flag   colour.Set
		symbol string
	}{
		{colour.White, "W"}, {colour.Blue, "U"}, {colour.Black, "B"},
		{colour.Red, "R"}, {colour.Green, "G"},
	} {
		patterns[entry.flag] = regexp.MustCompile(`(?i)adds?\W[^\n.]*?\{` + entry.symbol + `\}`)
	}
	return patterns
}()

// fetchableBasics maps the basic land names to the colour a fetch land
// implicitly belongs to.
var fetchableBasics = []struct {
	name string
	flag colour.Set
}{
	{"Plains", colour.White},
	{"Island", colour.Blue},
	{"Swamp", colour.Black},
	{"Mountain", colour.Red},
	{"Forest", colour.Green},
}

// colourOverrides pins cards whose mechanical colour misrepresents where
// collectors file them.
var colourOverrides = map[string]colour.Set{
	"Urborg, Tomb of Yawgmoth":   colour.Black,
	"Yavimaya, Cradle of Growth": colour.Green,
	"Crumbling Vestige":          colour.Colourless,
	"Forgotten Monument":         colour.Colourless,
}

// Key returns the card's ordering key.
func Key(card Card) string {
	parts := keyParts(card)

	segments := make([]string, 0, len(parts)+1)
	for _, part := range parts {
		segments = append(segments, fmt.Sprintf("%02d", part))
	}
	segments = append(segments, slug.From(card.Name))
	return strings.Join(segments, "-")
}

func keyParts(card Card) []int {
	faces := sortableFaces(card)

	if anyType(faces, "Land") {
		return landParts(card, faces)
	}
	return nonlandParts(card, faces)
}

// sortableFaces picks the faces that contribute to the key: both halves of a
// split or room card, otherwise just the front face.
func sortableFaces(card Card) []Face {
	if len(card.Faces) == 2 && (card.Layout == "split" || card.Layout == "room") {
		return card.Faces
	}
	if len(card.Faces) == 0 {
		return nil
	}
	return card.Faces[:1]
}

// landParts orders lands by basic-ness, then by the colours they tap or
// fetch for, then by the colours they produce.
func landParts(card Card, faces []Face) []int {
	// Fetch lands have a colourless identity but belong with the colours
	// they can search out.
	var searchIdentity colour.Set
	for _, basic := range fetchableBasics {
		for _, face := range faces {
			if face.RulesText == "" {
				continue
			}
			lower := strings.ToLower(face.RulesText)
			if strings.Contains(face.RulesText, basic.name) &&
				strings.Contains(lower, "sacrifice") &&
				strings.Contains(lower, "search") &&
				strings.Contains(lower, "onto the battlefield") {
				searchIdentity |= basic.flag
			}
		}
	}

	var produces colour.Set
	for flag, pattern := range colourProduction {
		for _, face := range faces {
			if pattern.MatchString(face.RulesText) {
				produces |= flag
			}
		}
	}

	basic := 0
	if anySupertype(faces, "Basic") {
		basic = 1
	}

	// Ranks are inverted so five-colour lands come first.
	return []int{
		1,
		basic,
		50 - (card.ColourIdentity | searchIdentity).SortRank(),
		50 - (produces | searchIdentity).SortRank(),
	}
}

func nonlandParts(card Card, faces []Face) []int {
	isArtifact := anyType(faces, "Artifact")

	token := 0
	if anySupertype(faces, "Token") {
		token = 2
	}

	hybrid := 0
	for _, face := range faces {
		if strings.Contains(face.ManaCost, "/") {
			hybrid = 1
		}
	}

	split := 0
	if len(faces) > 1 {
		split = 1
	}

	// X costs sort after every fixed cost of the same colour.
	xCount := 0
	for _, face := range faces {
		xCount += strings.Count(face.ManaCost, "X")
	}
	xAdjustedValue := xCount*20 + card.ManaValue

	// More colour-committed costs sort later: 5W before 4WW before 3WWW.
	totalGeneric := 0
	for _, face := range faces {
		if generic := genericMana.FindStringSubmatch(face.ManaCost); generic != nil {
			amount, _ := strconv.Atoi(generic[1])
			totalGeneric += amount
		}
	}

	return []int{
		token,
		colourKey(faces, isArtifact),
		hybrid,
		typeCategory(faces),
		split,
		xAdjustedValue,
		xAdjustedValue - totalGeneric,
	}
}

// colourKey returns a card's position in the canonical colour ordering,
// with colourless artifacts filed after everything else.
func colourKey(faces []Face, isArtifact bool) int {
	if len(faces) == 0 {
		return 0
	}
	if override, ok := colourOverrides[faces[0].Name]; ok {
		return override.SortRank()
	}

	var colours colour.Set
	if strings.Contains(faces[0].RulesText, "Devoid") || faces[0].Name == "Ghostfire" {
		// Devoid cards are mechanically colourless; sort them by the
		// colours of their mana cost instead.
		for _, entry := range fetchableBasics {
			symbol := entry.flag.Symbols()
			for _, face := range faces {
				if strings.Contains(face.ManaCost, symbol) {
					colours |= entry.flag
				}
			}
		}
	} else {
		for _, face := range faces {
			colours |= face.Colours
		}
	}

	if colours == colour.Colourless {
		if isArtifact {
			return 32
		}
		return 0
	}
	return colours.SortRank()
}

// typeCategory buckets a card by its spell type: creatures, then instants,
// sorceries, other permanents, and finally auras and equipment.
func typeCategory(faces []Face) int {
	switch {
	case anyType(faces, "Creature"):
		return 0
	case anyType(faces, "Instant") && anyType(faces, "Sorcery"):
		return 3
	case anyType(faces, "Instant"):
		return 1
	case anyType(faces, "Sorcery"):
		return 2
	case anySubtype(faces, "Aura") || anySubtype(faces, "Equipment"):
		return 5
	default:
		return 4
	}
}

func anyType(faces []Face, name string) bool {
	for _, face := range faces {
		for _, value := range face.Types {
			if strings.EqualFold(value, name) {
				return true
			}
		}
	}
	return false
}

func anySubtype(faces []Face, name string) bool {
	for _, face := range faces {
		for _, value := range face.Subtypes {
			if strings.EqualFold(value, name) {
				return true
			}
		}
	}
	return false
}

func anySupertype(faces []Face, name string) bool {
	for _, face := range faces {
		for _, value := range face.Supertypes {
			if strings.EqualFold(value, name) {
				return true
			}
		}
	}
	return false
}
