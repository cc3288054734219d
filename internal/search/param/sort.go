// Copyright (c) 2026 Tolaria. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package param

import (
	"strings"

	"github.com/taibuivan/tolaria/internal/search/predicate"
)

// SortParam orders the results instead of filtering them. It parses from
// "order:<kind>" or "sort:<kind>"; the "<" operator reverses the direction.
type SortParam struct {
	leaf
	kind *sortKind
}

// sortKind names one sortable attribute and its ORDER BY expressions.
// Results are always cards, so attributes of related rows order by a scalar
// subquery over the card's faces or printings.
type sortKind struct {
	name     string
	values   []string
	exprs    []string
	isRandom bool
}

var sortKinds = []sortKind{
	{
		name:   "name",
		values: []string{"name"},
		exprs:  []string{"c.name"},
	},
	{
		name:   "mana value",
		values: []string{"cmc", "mv", "manavalue"},
		exprs:  []string{"c.manavalue"},
	},
	{
		name:   "power",
		values: []string{"power"},
		exprs:  []string{"(SELECT MIN(f2.numpower) FROM cards.card_face f2 WHERE f2.cardid = c.id)"},
	},
	{
		name:   "colour",
		values: []string{"colour", "color"},
		exprs:  []string{"(SELECT MIN(f2.coloursortkey) FROM cards.card_face f2 WHERE f2.cardid = c.id)"},
	},
	{
		name:   "rarity",
		values: []string{"rarity"},
		exprs: []string{
			"(SELECT MIN(ra.displayorder) FROM cards.card_printing p2" +
				" JOIN cards.rarity ra ON ra.id = p2.rarityid WHERE p2.cardid = c.id)",
		},
	},
	{
		name:   "release date",
		values: []string{"date", "released", "releasedate"},
		exprs: []string{
			"(SELECT MAX(cs.releasedate) FROM cards.card_printing p2" +
				" JOIN cards.card_set cs ON cs.id = p2.setid WHERE p2.cardid = c.id)",
		},
	},
	{
		name:   "collector number",
		values: []string{"num", "number", "cnum"},
		exprs:  []string{"(SELECT MIN(p2.numericalnumber) FROM cards.card_printing p2 WHERE p2.cardid = c.id)"},
	},
	{
		name:   "super key",
		values: []string{"super", "superkey"},
		exprs:  []string{"(SELECT cm2.supersortkey FROM cards.card_metadata cm2 WHERE cm2.cardid = c.id)"},
	},
	{
		name:     "random",
		values:   []string{"random", "shuffle"},
		isRandom: true,
		exprs:    []string{"RANDOM()"},
	},
}

func sortKindFor(value string) *sortKind {
	value = strings.ToLower(value)
	for i := range sortKinds {
		for _, candidate := range sortKinds[i].values {
			if candidate == value {
				return &sortKinds[i]
			}
		}
	}
	return nil
}

func newSortParam(args Args) (Node, error) {
	param := &SortParam{
		leaf: leaf{name: "sort", operator: args.Operator, value: args.Value},
		kind: sortKindFor(args.Value),
	}
	// "order<rarity" sorts descending.
	if args.Operator == OpLT {
		param.negated = true
	}
	return param, nil
}

func (p *SortParam) Compile(search *Context) predicate.Predicate {
	return predicate.Everything()
}

func (p *SortParam) Pretty(search *Context) string { return "" }

func (p *SortParam) Sorts() []*SortParam { return []*SortParam{p} }

// OrderBy renders the parameter's ORDER BY expressions, direction applied.
func (p *SortParam) OrderBy(search *Context) []string {
	if p.kind.isRandom {
		return p.kind.exprs
	}

	ordered := make([]string, len(p.kind.exprs))
	for i, expr := range p.kind.exprs {
		if p.negated {
			ordered[i] = expr + " DESC NULLS LAST"
		} else {
			ordered[i] = expr + " ASC NULLS LAST"
		}
	}
	return ordered
}
