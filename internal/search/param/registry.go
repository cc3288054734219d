// Copyright (c) 2026 Tolaria. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package param

import (
	"strconv"
	"strings"
)

// Args is the raw material of one leaf parameter as produced by the parser.
type Args struct {
	Keyword  string
	Operator string
	Value    string
	IsRegex  bool
}

// definition registers one leaf kind: its keywords, the operators it
// accepts, an optional operand-shape filter for keywords shared between
// kinds, and its constructor.
type definition struct {
	name      string
	keywords  []string
	operators []string
	matches   func(args Args) bool
	build     func(args Args) (Node, error)
}

func (d *definition) accepts(args Args) bool {
	found := false
	for _, keyword := range d.keywords {
		if keyword == args.Keyword {
			found = true
			break
		}
	}
	if !found {
		return false
	}
	if d.matches != nil {
		return d.matches(args)
	}
	return true
}

func (d *definition) allowsOperator(operator string) bool {
	for _, allowed := range d.operators {
		if allowed == operator {
			return true
		}
	}
	return false
}

// isNumeric reports whether the operand is a plain integer. Keywords like
// "c" accept both colour sets and colour counts; the operand shape decides
// which kind wins.
func isNumeric(value string) bool {
	_, err := strconv.Atoi(value)
	return err == nil
}

// hasValue builds an operand-shape filter accepting only the given binary
// keyword values ("is:commander", "has:watermark").
func hasValue(values ...string) func(Args) bool {
	return func(args Args) bool {
		for _, value := range values {
			if strings.EqualFold(args.Value, value) {
				return true
			}
		}
		return false
	}
}

// definitions is the static parameter registry, built once at package load.
// Keywords may be shared between kinds as long as their shape filters are
// disjoint.
var definitions = []definition{
	{
		name:      "name",
		keywords:  []string{"name", "n"},
		operators: allOperators,
		build:     newNameParam,
	},
	{
		name:      "rules text",
		keywords:  []string{"oracle", "rules", "text", "o"},
		operators: []string{OpContains, OpEq},
		build:     newRulesTextParam,
	},
	{
		name:      "flavour text",
		keywords:  []string{"flavour", "flavor", "ft"},
		operators: []string{OpContains, OpEq},
		build:     newFlavourTextParam,
	},
	{
		name:      "artist",
		keywords:  []string{"artist", "art"},
		operators: []string{OpContains, OpEq},
		build:     newArtistParam,
	},
	{
		name:      "watermark",
		keywords:  []string{"watermark", "wm"},
		operators: []string{OpContains, OpEq},
		build:     newWatermarkParam,
	},
	{
		name:      "colour",
		keywords:  []string{"colour", "color", "col", "c", "identity", "ci", "id"},
		operators: allOperators,
		matches:   func(args Args) bool { return !isNumeric(args.Value) },
		build:     newComplexColourParam,
	},
	{
		name:      "colour count",
		keywords:  []string{"colour", "color", "col", "c", "identity", "ci", "id"},
		operators: allOperators,
		matches:   func(args Args) bool { return isNumeric(args.Value) },
		build:     newColourCountParam,
	},
	{
		name:      "mana cost",
		keywords:  []string{"mana", "m"},
		operators: allOperators,
		matches:   func(args Args) bool { return !isNumeric(args.Value) },
		build:     newManaCostParam,
	},
	{
		name:      "mana value",
		keywords:  []string{"cmc", "manavalue", "mv", "mana", "m"},
		operators: allOperators,
		matches: func(args Args) bool {
			switch args.Keyword {
			case "mana", "m":
				return isNumeric(args.Value)
			}
			return true
		},
		build: newManaValueParam,
	},
	{
		name:      "power",
		keywords:  []string{"power", "pow"},
		operators: allOperators,
		build:     newPowerParam,
	},
	{
		name:      "toughness",
		keywords:  []string{"toughness", "tough", "tou", "tuff"},
		operators: allOperators,
		build:     newToughnessParam,
	},
	{
		name:      "loyalty",
		keywords:  []string{"loyalty", "loy"},
		operators: allOperators,
		build:     newLoyaltyParam,
	},
	{
		name:      "collector number",
		keywords:  []string{"number", "cnum", "num"},
		operators: allOperators,
		build:     newCollectorNumberParam,
	},
	{
		name:      "type",
		keywords:  []string{"type", "t"},
		operators: []string{OpContains, OpEq},
		build:     newTypeParam,
	},
	{
		name:      "token",
		keywords:  []string{"is"},
		operators: []string{OpContains},
		matches:   hasValue("token"),
		build:     newTokenParam,
	},
	{
		name:      "set",
		keywords:  []string{"set", "s"},
		operators: []string{OpContains, OpEq},
		build:     newSetParam,
	},
	{
		name:      "block",
		keywords:  []string{"block", "b"},
		operators: []string{OpContains, OpEq},
		build:     newBlockParam,
	},
	{
		name:      "release date",
		keywords:  []string{"date", "d"},
		operators: []string{OpLT, OpLTE, OpGT, OpGTE},
		build:     newDateParam,
	},
	{
		name:      "format",
		keywords:  []string{"format", "f", "legal", "legality", "banned", "restricted"},
		operators: []string{OpContains, OpEq},
		build:     newLegalityParam,
	},
	{
		name:      "rarity",
		keywords:  []string{"rarity", "r"},
		operators: allOperators,
		build:     newRarityParam,
	},
	{
		name:      "ownership",
		keywords:  []string{"have", "own"},
		operators: allOperators,
		build:     newOwnershipParam,
	},
	{
		name:      "deck usage",
		keywords:  []string{"used", "decks", "deck"},
		operators: allOperators,
		build:     newUsageParam,
	},
	{
		name:      "produces",
		keywords:  []string{"produces", "produce", "p"},
		operators: allOperators,
		build:     newProducesParam,
	},
	{
		name:      "layout",
		keywords:  []string{"layout", "l"},
		operators: []string{OpContains, OpEq},
		build:     newLayoutParam,
	},
	{
		name:      "is multicoloured",
		keywords:  binaryKeywords,
		operators: []string{OpContains},
		matches:   hasValue("multicoloured", "multicolored", "multi"),
		build:     newMulticolouredParam,
	},
	{
		name:      "is hybrid",
		keywords:  binaryKeywords,
		operators: []string{OpContains},
		matches:   hasValue("hybrid"),
		build:     newHybridParam,
	},
	{
		name:      "is phyrexian",
		keywords:  binaryKeywords,
		operators: []string{OpContains},
		matches:   hasValue("phyrexian"),
		build:     newPhyrexianParam,
	},
	{
		name:      "is commander",
		keywords:  binaryKeywords,
		operators: []string{OpContains},
		matches:   hasValue("commander", "general"),
		build:     newCommanderParam,
	},
	{
		name:      "is vanilla",
		keywords:  binaryKeywords,
		operators: []string{OpContains},
		matches:   hasValue("vanilla"),
		build:     newVanillaParam,
	},
	{
		name:      "colour indicator",
		keywords:  binaryKeywords,
		operators: []string{OpContains},
		matches:   hasValue("indicator"),
		build:     newIndicatorParam,
	},
	{
		name:      "is reprint",
		keywords:  binaryKeywords,
		operators: []string{OpContains},
		matches:   hasValue("reprint"),
		build:     newReprintParam,
	},
	{
		name:      "has watermark",
		keywords:  binaryKeywords,
		operators: []string{OpContains},
		matches:   hasValue("watermark"),
		build:     newHasWatermarkParam,
	},
	{
		name:      "sort",
		keywords:  []string{"order", "sort"},
		operators: []string{OpContains, OpLT, OpGT},
		matches:   func(args Args) bool { return sortKindFor(args.Value) != nil },
		build:     newSortParam,
	},
}

var binaryKeywords = []string{"is", "has", "not"}

// Build resolves a keyword, operator and value to a constructed leaf node.
//
// Exactly one registry definition must accept the args: none is an unknown
// keyword, more than one is a registry bug. The operator is checked against
// the winning definition before its constructor runs.
func Build(args Args) (Node, error) {
	// Only the keyword is case-folded here. The operand reaches the
	// constructor verbatim: regex and quoted text must survive byte for
	// byte, and each kind normalises its own operand where it needs to.
	args.Keyword = strings.ToLower(args.Keyword)

	var matched []*definition
	for i := range definitions {
		if definitions[i].accepts(args) {
			matched = append(matched, &definitions[i])
		}
	}

	if len(matched) == 0 {
		return nil, newValidationError(
			args.Keyword, args.Value,
			"unknown keyword %q", args.Keyword,
		)
	}
	if len(matched) > 1 {
		names := make([]string, len(matched))
		for i, def := range matched {
			names[i] = def.name
		}
		return nil, newValidationError(
			args.Keyword, args.Value,
			"keyword %q is ambiguous between %s", args.Keyword, strings.Join(names, ", "),
		)
	}

	def := matched[0]
	if !def.allowsOperator(args.Operator) {
		return nil, newValidationError(
			args.Keyword, args.Value,
			"can't use operator %q for %s parameter", args.Operator, def.name,
		)
	}

	node, err := def.build(args)
	if err != nil {
		return nil, err
	}

	// The "not" keyword negates its parameter ("not:reprint").
	if args.Keyword == "not" {
		node.Negate()
	}
	return node, nil
}
