// Copyright (c) 2026 Tolaria. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package colour implements bit-flag set algebra over the five card colours.
//
// # Representation
//
// A [Set] is a 5-bit flag field over {W, U, B, R, G}. Colourless is the zero
// value, not a sixth bit: a colourless card simply has no flags set. All set
// comparisons (subset, superset, exact) are plain bit arithmetic.
package colour

import "strings"

// Set is a combination of colour flags.
type Set uint8

// The five colour flags, in canonical WUBRG display order.
const (
	White Set = 1 << iota
	Blue
	Black
	Red
	Green

	// Colourless is the empty set.
	Colourless Set = 0
	// All is the full five-colour set.
	All = White | Blue | Black | Red | Green
)

// ordered is the canonical display order used for symbol output.
var ordered = []struct {
	flag   Set
	symbol string
}{
	{White, "W"},
	{Blue, "U"},
	{Black, "B"},
	{Red, "R"},
	{Green, "G"},
}

// Contains reports whether every colour in other is also in s (other ⊆ s).
func (s Set) Contains(other Set) bool {
	return s&other == other
}

// SubsetOf reports whether every colour in s is also in other (s ⊆ other).
func (s Set) SubsetOf(other Set) bool {
	return s&^other == 0
}

// Count returns the number of colours in the set.
func (s Set) Count() int {
	count := 0
	for _, entry := range ordered {
		if s&entry.flag != 0 {
			count++
		}
	}
	return count
}

// Symbols returns the canonical symbol string for the set (e.g. "WUB").
// The empty set returns "C".
func (s Set) Symbols() string {
	if s == Colourless {
		return "C"
	}

	var builder strings.Builder
	for _, entry := range ordered {
		if s&entry.flag != 0 {
			builder.WriteString(entry.symbol)
		}
	}
	return builder.String()
}

// sortRanks orders colour combinations for display: colourless, the five
// single colours, allied pairs, enemy pairs, shards, wedges, four-colour
// sets, then all five colours.
var sortRanks = []Set{
	Colourless,
	White, Blue, Black, Red, Green,
	White | Blue, Blue | Black, Black | Red, Red | Green, Green | White,
	White | Black, Blue | Red, Black | Green, Red | White, Green | Blue,
	White | Blue | Black, Blue | Black | Red, Black | Red | Green,
	Red | Green | White, Green | White | Blue,
	White | Black | Green, Blue | Red | White, Black | Green | Blue,
	Red | White | Black, Green | Blue | Red,
	White | Blue | Black | Red, Blue | Black | Red | Green,
	Black | Red | Green | White, Red | Green | White | Blue,
	Green | White | Blue | Black,
	All,
}

var sortRankIndex = func() map[Set]int {
	index := make(map[Set]int, len(sortRanks))
	for rank, set := range sortRanks {
		index[set] = rank
	}
	return index
}()

// SortRank returns the set's position in the canonical colour ordering,
// in [0, 31].
func (s Set) SortRank() int {
	return sortRankIndex[s&All]
}

// # Nickname Resolution

// nicknames maps colour names, single-letter codes, and the guild, shard and
// wedge nicknames to their colour sets.
var nicknames = map[string]Set{
	"colourless": Colourless,
	"colorless":  Colourless,
	"c":          Colourless,
	"white":      White,
	"w":          White,
	"blue":       Blue,
	"u":          Blue,
	"black":      Black,
	"b":          Black,
	"red":        Red,
	"r":          Red,
	"green":      Green,
	"g":          Green,

	// Ravnican guilds
	"azorius":  White | Blue,
	"dimir":    Blue | Black,
	"rakdos":   Black | Red,
	"gruul":    Red | Green,
	"selesnya": Green | White,
	"orzhov":   White | Black,
	"izzet":    Blue | Red,
	"golgari":  Black | Green,
	"boros":    Red | White,
	"simic":    Green | Blue,

	// Alaran shards
	"esper":  White | Blue | Black,
	"grixis": Blue | Black | Red,
	"jund":   Black | Red | Green,
	"naya":   Red | Green | White,
	"bant":   Green | White | Blue,

	// Tarkir wedges
	"abzan":  White | Black | Green,
	"jeskai": Blue | Red | White,
	"sultai": Black | Green | Blue,
	"mardu":  Red | White | Black,
	"temur":  Green | Blue | Red,

	// Nephilim
	"chaos":      Blue | Black | Red | Green,
	"aggression": Black | Red | Green | White,
	"altruism":   Red | Green | White | Blue,
	"growth":     Green | White | Blue | Black,
	"artifice":   White | Blue | Black | Red,

	"all": All,
}

// Parse resolves free text to a colour set.
//
// It accepts a full nickname ("esper", "red", "colourless") or a run of
// single-letter codes ("rg", "wub"). Resolution is case-insensitive.
// Unrecognised text returns ok == false.
func Parse(text string) (Set, bool) {
	lower := strings.ToLower(strings.TrimSpace(text))
	if lower == "" {
		return Colourless, false
	}

	if set, found := nicknames[lower]; found {
		return set, true
	}

	// Fall back to per-character codes ("rg" means red + green).
	var set Set
	for _, char := range lower {
		flags, found := nicknames[string(char)]
		if !found {
			return Colourless, false
		}
		set |= flags
	}
	return set, true
}
