// Copyright (c) 2026 Tolaria. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package param

import (
	"fmt"
	"strings"

	"github.com/taibuivan/tolaria/internal/search/predicate"
	"github.com/taibuivan/tolaria/pkg/colour"
)

// ComplexColourParam matches a card's colours or colour identity against a
// colour set operand.
//
// The ":" operator is asymmetric on purpose: for plain colour it means "at
// least" (superset, like ">="), while for colour identity it means "at most"
// (subset, like "<="), matching how identity is used for deck building.
type ComplexColourParam struct {
	leaf
	colours  colour.Set
	identity bool
}

func newComplexColourParam(args Args) (Node, error) {
	colours, ok := colour.Parse(args.Value)
	if !ok {
		return nil, newValidationError("colour", args.Value, "unknown colour %q", args.Value)
	}

	param := &ComplexColourParam{
		leaf:     leaf{name: "colour", operator: args.Operator, value: args.Value},
		colours:  colours,
		identity: identityKeyword(args.Keyword),
	}
	if param.operator == OpContains {
		if param.identity {
			param.operator = OpLTE
		} else {
			param.operator = OpGTE
		}
	}
	return param, nil
}

func identityKeyword(keyword string) bool {
	return keyword == "identity" || keyword == "ci" || keyword == "id"
}

func (p *ComplexColourParam) Compile(search *Context) predicate.Predicate {
	if p.identity {
		return p.finish(colourFlagTest("c.colouridentityflags", p.operator, p.colours))
	}
	return p.finish(facePred(colourFlagTest("f.colourflags", p.operator, p.colours)))
}

// colourFlagTest renders a set comparison over a colour flag column.
func colourFlagTest(column, operator string, colours colour.Set) predicate.Predicate {
	flags := int(colours)
	switch operator {
	case OpEq:
		return predicate.NewRaw(column+" = ?", flags)
	case OpGTE:
		// Superset: every operand colour is present.
		return predicate.NewRaw(column+" & ? = ?", flags, flags)
	case OpGT:
		return predicate.And(
			predicate.NewRaw(column+" & ? = ?", flags, flags),
			predicate.NewRaw(column+" <> ?", flags),
		)
	case OpLTE:
		// Subset: no colour outside the operand.
		return predicate.NewRaw(column+" & ? = 0", int(^colours&colour.All))
	case OpLT:
		return predicate.And(
			predicate.NewRaw(column+" & ? = 0", int(^colours&colour.All)),
			predicate.NewRaw(column+" <> ?", flags),
		)
	default:
		return predicate.Nothing()
	}
}

func (p *ComplexColourParam) Pretty(search *Context) string {
	if p.colours == colour.Colourless {
		if p.identity {
			return "the cards have colourless identity"
		}
		return "the cards are colourless"
	}

	kind := "colours"
	if p.identity {
		kind = "colour identity"
	}
	operatorText := p.operator
	if p.operator == OpEq {
		operatorText = p.verb("is", "is not")
	}
	return fmt.Sprintf("the %s %s %s", kind, operatorText, p.colours.Symbols())
}

// ColourCountParam matches the number of colours a card has. It shares its
// keywords with [ComplexColourParam]; a numeric operand selects this kind.
type ColourCountParam struct {
	numericLeaf
	identity bool
}

func newColourCountParam(args Args) (Node, error) {
	param := &ColourCountParam{
		numericLeaf: numericLeaf{
			leaf: leaf{name: "colour count", operator: args.Operator, value: args.Value},
		},
		identity: identityKeyword(args.Keyword),
	}
	if param.operator == OpContains {
		param.operator = OpEq
	}
	return param, nil
}

func (p *ColourCountParam) Compile(search *Context) predicate.Predicate {
	if p.identity {
		return p.finish(p.comparison("c.colouridentitycount", search))
	}
	return p.finish(facePred(p.comparison("f.colourcount", search)))
}

func (p *ColourCountParam) Pretty(search *Context) string {
	operatorText := ""
	if p.operator != OpEq {
		operatorText = p.operator + " "
	}
	return fmt.Sprintf("card %s %s%s colours", p.verb("has", "doesn't have"), operatorText, p.value)
}

// ProducesParam matches the colours of mana a card can add, using the
// precomputed per-colour flags from the face search metadata. The operand
// "any" falls back to a rules text heuristic.
type ProducesParam struct {
	leaf
	colours   colour.Set
	anyColour bool
}

func newProducesParam(args Args) (Node, error) {
	param := &ProducesParam{
		leaf:      leaf{name: "produces", operator: args.Operator, value: args.Value},
		anyColour: strings.EqualFold(args.Value, "any"),
	}
	if !param.anyColour {
		colours, ok := colour.Parse(args.Value)
		if !ok {
			return nil, newValidationError("produces", args.Value, "unknown colour %q", args.Value)
		}
		param.colours = colours
	}
	if param.operator == OpContains {
		param.operator = OpGTE
	}
	return param, nil
}

// producesCodes are the flag columns available on the face metadata record.
var producesCodes = []struct {
	code string
	set  colour.Set
}{
	{"w", colour.White},
	{"u", colour.Blue},
	{"b", colour.Black},
	{"r", colour.Red},
	{"g", colour.Green},
	{"c", colour.Colourless},
}

func (p *ProducesParam) Compile(search *Context) predicate.Predicate {
	if p.anyColour {
		return p.finish(facePred(predicate.NewRaw(`f.rulestext ~* ?`, `adds?\W`)))
	}

	var included, excluded []predicate.Predicate
	for _, entry := range producesCodes {
		flag := predicate.NewRaw("fm.produces" + entry.code)
		inOperand := entry.set != colour.Colourless && p.colours.Contains(entry.set)
		if entry.set == colour.Colourless {
			inOperand = p.colours == colour.Colourless
		}
		if inOperand {
			included = append(included, flag)
		} else {
			excluded = append(excluded, flag)
		}
	}

	var pred predicate.Predicate
	switch p.operator {
	case OpGTE:
		pred = predicate.And(included...)
	case OpGT:
		pred = predicate.And(predicate.And(included...), predicate.Or(excluded...))
	case OpEq:
		pred = predicate.And(predicate.And(included...), predicate.Not(predicate.Or(excluded...)))
	case OpLTE:
		pred = predicate.Not(predicate.Or(excluded...))
	case OpLT:
		pred = predicate.And(
			predicate.Not(predicate.Or(excluded...)),
			predicate.Not(predicate.And(included...)),
		)
	default:
		pred = predicate.Nothing()
	}
	return p.finish(faceMetaPred(pred))
}

func (p *ProducesParam) Pretty(search *Context) string {
	verb := p.verb("produces", "doesn't produce")
	if p.anyColour {
		return fmt.Sprintf("card %s any colour", verb)
	}
	return fmt.Sprintf("card %s %s %s", verb, p.operator, p.colours.Symbols())
}
