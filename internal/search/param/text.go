// Copyright (c) 2026 Tolaria. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package param

import (
	"fmt"
	"strings"

	"github.com/taibuivan/tolaria/internal/search/predicate"
)

// RulesTextParam matches against face rules text. A "~" in the operand
// stands for the card's own name, also matching the "this spell" phrasing
// used on some cards.
type RulesTextParam struct {
	leaf
	exact bool
}

func newRulesTextParam(args Args) (Node, error) {
	return &RulesTextParam{
		leaf: leaf{
			name:     "rules text",
			operator: args.Operator,
			value:    args.Value,
			isRegex:  args.IsRegex,
		},
		exact: args.Operator == OpEq,
	}, nil
}

func (p *RulesTextParam) Compile(search *Context) predicate.Predicate {
	if !strings.Contains(p.value, "~") {
		return p.finish(facePred(p.textMatch("f.rulestext")))
	}

	// Substitute "~" inside the bound operand with the card name, and again
	// with the literal "this spell".
	asName := predicate.NewRaw(
		"f.rulestext ILIKE '%' || replace(?, '~', c.name) || '%'", p.value,
	)
	asThisSpell := predicate.NewRaw(
		"f.rulestext ILIKE ?", contains(strings.ReplaceAll(p.value, "~", "this spell")),
	)
	return p.finish(facePred(predicate.Or(asName, asThisSpell)))
}

func (p *RulesTextParam) textMatch(column string) predicate.Predicate {
	switch {
	case p.isRegex:
		return predicate.NewRaw(column+" ~* ?", p.value)
	case p.exact:
		return predicate.NewRaw("LOWER("+column+") = ?", strings.ToLower(p.value))
	default:
		return predicate.NewRaw(column+" ILIKE ?", contains(p.value))
	}
}

func (p *RulesTextParam) Pretty(search *Context) string {
	if p.isRegex {
		return fmt.Sprintf("the rules text %s %q", p.verb("matches the regex", "doesn't match the regex"), p.value)
	}
	if p.exact {
		return fmt.Sprintf("the rules text %s %q", p.verb("is", "is not"), p.value)
	}
	return fmt.Sprintf("the rules text %s %q", p.verb("contains", "does not contain"), p.value)
}

// FlavourTextParam matches against printing flavour text.
type FlavourTextParam struct {
	leaf
}

func newFlavourTextParam(args Args) (Node, error) {
	return &FlavourTextParam{
		leaf: leaf{name: "flavour text", operator: args.Operator, value: args.Value},
	}, nil
}

func (p *FlavourTextParam) DefaultScope() predicate.Scope { return predicate.ScopePrinting }

func (p *FlavourTextParam) Compile(search *Context) predicate.Predicate {
	if p.operator == OpEq {
		return p.finish(printingPred(search, predicate.NewRaw("LOWER(p.flavourtext) = ?", strings.ToLower(p.value))))
	}
	return p.finish(printingPred(search, predicate.NewRaw("p.flavourtext ILIKE ?", contains(p.value))))
}

func (p *FlavourTextParam) Pretty(search *Context) string {
	return fmt.Sprintf("flavour %s %s", p.verb("contains", "doesn't contain"), p.value)
}

// ArtistParam matches against the printing artist credit.
type ArtistParam struct {
	leaf
}

func newArtistParam(args Args) (Node, error) {
	return &ArtistParam{
		leaf: leaf{name: "artist", operator: args.Operator, value: args.Value},
	}, nil
}

func (p *ArtistParam) DefaultScope() predicate.Scope { return predicate.ScopePrinting }

func (p *ArtistParam) Compile(search *Context) predicate.Predicate {
	if p.operator == OpEq {
		return p.finish(printingPred(search, predicate.NewRaw("LOWER(p.artist) = ?", strings.ToLower(p.value))))
	}
	return p.finish(printingPred(search, predicate.NewRaw("p.artist ILIKE ?", contains(p.value))))
}

func (p *ArtistParam) Pretty(search *Context) string {
	return fmt.Sprintf("artist %s %s", p.verb("is", "isn't"), p.value)
}

// WatermarkParam matches a named printing watermark.
type WatermarkParam struct {
	leaf
}

func newWatermarkParam(args Args) (Node, error) {
	return &WatermarkParam{
		leaf: leaf{name: "watermark", operator: args.Operator, value: args.Value},
	}, nil
}

func (p *WatermarkParam) DefaultScope() predicate.Scope { return predicate.ScopePrinting }

func (p *WatermarkParam) Compile(search *Context) predicate.Predicate {
	return p.finish(printingPred(search, predicate.NewRaw("LOWER(p.watermark) = ?", strings.ToLower(p.value))))
}

func (p *WatermarkParam) Pretty(search *Context) string {
	return fmt.Sprintf("card %s a %s watermark", p.verb("has", "doesn't have"), p.value)
}
