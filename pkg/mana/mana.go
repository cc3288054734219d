// Copyright (c) 2026 Tolaria. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package mana tokenizes mana cost strings into symbol multisets.
//
// # Format
//
// A cost string is a sequence of braced symbols ("{2}{W}{W}", "{G/U}{X}").
// Bare characters outside braces are accepted as single-character symbols, so
// the user shorthand "2ww" parses the same as "{2}{W}{W}". Hybrid symbols are
// canonicalised to one order per pair ("w/r" becomes "r/w") so that multiset
// comparisons are order-independent.
package mana

import (
	"fmt"
	"strconv"
	"strings"
)

// Symbols is every recognised non-generic mana symbol, lower-cased: the five
// colours, colourless, snow, X, the ten hybrid pairs, the five twobrid
// symbols and the five phyrexian symbols.
var Symbols = []string{
	"w", "u", "b", "r", "g",
	"c", "s", "x",
	"w/u", "u/b", "b/r", "r/g", "g/w",
	"w/b", "u/r", "b/g", "r/w", "g/u",
	"2/w", "2/u", "2/b", "2/r", "2/g",
	"w/p", "u/p", "b/p", "r/p", "g/p",
}

// hybridRemap folds the reversed spelling of each hybrid pair onto its
// canonical order.
var hybridRemap = map[string]string{
	"w/r": "r/w",
	"u/g": "g/u",
	"b/w": "w/b",
	"r/u": "u/r",
	"g/b": "b/g",
	"p/w": "w/p",
	"p/u": "u/p",
	"p/b": "b/p",
	"p/r": "r/p",
	"p/g": "g/p",
}

// known is the membership index over [Symbols].
var known = func() map[string]bool {
	index := make(map[string]bool, len(Symbols))
	for _, symbol := range Symbols {
		index[symbol] = true
	}
	return index
}()

// Cost is the parsed multiset form of a mana cost string.
type Cost struct {
	// Counts maps each canonical symbol to the number of times it occurs.
	Counts map[string]int
	// Generic is the combined generic mana amount ("{2}" contributes 2).
	Generic int
}

// Count returns the multiplicity of the given symbol, zero when absent.
func (c Cost) Count(symbol string) int {
	return c.Counts[Canonical(symbol)]
}

// ConvertedValue sums the cost: generic amount plus one per symbol, with
// twobrid symbols counting two. X contributes zero.
func (c Cost) ConvertedValue() int {
	total := c.Generic
	for symbol, count := range c.Counts {
		switch {
		case symbol == "x":
			// X is zero until declared.
		case strings.HasPrefix(symbol, "2/"):
			total += 2 * count
		default:
			total += count
		}
	}
	return total
}

// Canonical lower-cases a symbol and folds hybrid orderings.
func Canonical(symbol string) string {
	lower := strings.ToLower(symbol)
	if remapped, found := hybridRemap[lower]; found {
		return remapped
	}
	return lower
}

// Parse tokenizes a cost string into a [Cost].
//
// It fails on unbalanced braces and on braced symbols that are neither a
// number nor a recognised symbol. Bare digits and bare symbol characters
// outside braces are accepted.
func Parse(text string) (Cost, error) {
	cost := Cost{Counts: map[string]int{}}

	var current strings.Builder
	var digitRun strings.Builder
	inSymbol := false

	flush := func(raw string) error {
		if amount, err := strconv.Atoi(raw); err == nil {
			cost.Generic += amount
			return nil
		}

		symbol := Canonical(raw)
		if !known[symbol] {
			return fmt.Errorf("mana: unknown symbol %q in %q", raw, text)
		}
		cost.Counts[symbol]++
		return nil
	}

	// endDigitRun folds any pending bare digits into the generic amount.
	endDigitRun := func() {
		if digitRun.Len() == 0 {
			return
		}
		amount, _ := strconv.Atoi(digitRun.String())
		cost.Generic += amount
		digitRun.Reset()
	}

	for _, char := range strings.ToLower(strings.TrimSpace(text)) {
		switch {
		case char == '{':
			if inSymbol {
				return Cost{}, fmt.Errorf("mana: unexpected '{' in %q", text)
			}
			endDigitRun()
			inSymbol = true
			current.Reset()
		case char == '}':
			if !inSymbol {
				return Cost{}, fmt.Errorf("mana: unexpected '}' in %q", text)
			}
			if err := flush(current.String()); err != nil {
				return Cost{}, err
			}
			inSymbol = false
		case inSymbol:
			current.WriteRune(char)
		case char >= '0' && char <= '9':
			digitRun.WriteRune(char)
		default:
			endDigitRun()
			// Bare character shorthand outside braces.
			if err := flush(string(char)); err != nil {
				return Cost{}, err
			}
		}
	}

	if inSymbol {
		return Cost{}, fmt.Errorf("mana: expected '}' in %q", text)
	}
	endDigitRun()

	return cost, nil
}

// CountIn returns how many times the braced form of symbol occurs inside a
// stored cost string ("{W}" in "{2}{W}{W}" returns 2). Used by the metadata
// builder, which works over raw catalogue text rather than parsed costs.
func CountIn(costText, symbol string) int {
	if costText == "" {
		return 0
	}
	return strings.Count(strings.ToUpper(costText), "{"+strings.ToUpper(symbol)+"}")
}
