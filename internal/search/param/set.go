// Copyright (c) 2026 Tolaria. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package param

import (
	"context"
	"fmt"
	"time"

	"github.com/taibuivan/tolaria/internal/search/predicate"
)

// SetParam matches printings from one resolved set. Resolution tries exact
// code, then exact name, then name substring, and treats multiple
// non-promotional matches as ambiguous.
type SetParam struct {
	leaf
	set *ResolvedSet
}

func newSetParam(args Args) (Node, error) {
	return &SetParam{
		leaf: leaf{name: "set", operator: args.Operator, value: args.Value},
	}, nil
}

func (p *SetParam) DefaultScope() predicate.Scope { return predicate.ScopePrinting }

// Set returns the resolved set, or nil before validation. The executor uses
// it to pick each result's displayed printing.
func (p *SetParam) Set() *ResolvedSet { return p.set }

func (p *SetParam) Validate(ctx context.Context, search *Context) error {
	set, err := search.Resolver.ResolveSet(ctx, p.value)
	if err != nil {
		return newValidationError("set", p.value, "%v", err)
	}
	p.set = set
	return nil
}

func (p *SetParam) Compile(search *Context) predicate.Predicate {
	return p.finish(printingPred(search, predicate.NewRaw("p.setid = ?", p.set.ID)))
}

func (p *SetParam) Pretty(search *Context) string {
	return fmt.Sprintf("the card %s in %s", p.verb("is", "isn't"), p.set.Name)
}

// BlockParam matches printings from any set in a resolved block.
type BlockParam struct {
	leaf
	block *ResolvedBlock
}

func newBlockParam(args Args) (Node, error) {
	return &BlockParam{
		leaf: leaf{name: "block", operator: args.Operator, value: args.Value},
	}, nil
}

func (p *BlockParam) DefaultScope() predicate.Scope { return predicate.ScopePrinting }

func (p *BlockParam) Validate(ctx context.Context, search *Context) error {
	block, err := search.Resolver.ResolveBlock(ctx, p.value)
	if err != nil {
		return newValidationError("block", p.value, "%v", err)
	}
	p.block = block
	return nil
}

func (p *BlockParam) Compile(search *Context) predicate.Predicate {
	return p.finish(printingSetPred(search, predicate.NewRaw("cs.blockid = ?", p.block.ID)))
}

func (p *BlockParam) Pretty(search *Context) string {
	return fmt.Sprintf("card %s in %s", p.verb("is", "isn't"), p.block.Name)
}

// DateParam compares the printing's set release date. The operand is an ISO
// date, or a set whose release date is used instead.
type DateParam struct {
	leaf
	date time.Time
}

func newDateParam(args Args) (Node, error) {
	return &DateParam{
		leaf: leaf{name: "release date", operator: args.Operator, value: args.Value},
	}, nil
}

func (p *DateParam) DefaultScope() predicate.Scope { return predicate.ScopePrinting }

func (p *DateParam) Validate(ctx context.Context, search *Context) error {
	if date, err := time.Parse("2006-01-02", p.value); err == nil {
		p.date = date
		return nil
	}

	set, err := search.Resolver.ResolveSet(ctx, p.value)
	if err != nil {
		return newValidationError("release date", p.value, "%v", err)
	}
	p.date = set.ReleaseDate
	return nil
}

func (p *DateParam) Compile(search *Context) predicate.Predicate {
	return p.finish(printingSetPred(search, predicate.NewRaw(
		"cs.releasedate "+sqlOperator(p.operator)+" ?", p.date,
	)))
}

func (p *DateParam) Pretty(search *Context) string {
	direction := "after"
	if p.operator == OpLT || p.operator == OpLTE {
		direction = "before"
	}
	return fmt.Sprintf("the card %s released %s %s",
		p.verb("was", "wasn't"), direction, p.date.Format("2006-01-02"))
}

// LegalityParam matches cards by play-format restriction. The keyword picks
// the restriction: "banned:" and "restricted:" query those restrictions,
// every other keyword means "legal".
type LegalityParam struct {
	leaf
	restriction string
	format      *ResolvedFormat
}

func newLegalityParam(args Args) (Node, error) {
	restriction := "legal"
	switch args.Keyword {
	case "banned":
		restriction = "banned"
	case "restricted":
		restriction = "restricted"
	}
	return &LegalityParam{
		leaf:        leaf{name: "format", operator: args.Operator, value: args.Value},
		restriction: restriction,
	}, nil
}

func (p *LegalityParam) Validate(ctx context.Context, search *Context) error {
	format, err := search.Resolver.ResolveFormat(ctx, p.value)
	if err != nil {
		return newValidationError("format", p.value, "%v", err)
	}
	p.format = format
	return nil
}

func (p *LegalityParam) Compile(search *Context) predicate.Predicate {
	return p.finish(predicate.Exists(
		"cards.card_legality cl",
		predicate.And(
			predicate.NewRaw("cl.cardid = c.id"),
			predicate.NewRaw("cl.formatid = ?", p.format.ID),
			predicate.NewRaw("LOWER(cl.restriction) = ?", p.restriction),
		),
	))
}

func (p *LegalityParam) Pretty(search *Context) string {
	return fmt.Sprintf("it's %s%s in %s", p.verb("", "not "), p.restriction, p.format.Name)
}

// RarityParam matches the printing rarity. The ordering operators compare by
// the rarity's display order, so "r>uncommon" means rare and above.
type RarityParam struct {
	leaf
	rarity *ResolvedRarity
}

func newRarityParam(args Args) (Node, error) {
	param := &RarityParam{
		leaf: leaf{name: "rarity", operator: args.Operator, value: args.Value},
	}
	if param.operator == OpContains {
		param.operator = OpEq
	}
	return param, nil
}

func (p *RarityParam) DefaultScope() predicate.Scope { return predicate.ScopePrinting }

func (p *RarityParam) Validate(ctx context.Context, search *Context) error {
	rarity, err := search.Resolver.ResolveRarity(ctx, p.value)
	if err != nil {
		return newValidationError("rarity", p.value, "%v", err)
	}
	p.rarity = rarity
	return nil
}

func (p *RarityParam) Compile(search *Context) predicate.Predicate {
	if p.operator == OpEq {
		return p.finish(printingPred(search, predicate.NewRaw("p.rarityid = ?", p.rarity.ID)))
	}
	return p.finish(printingPred(search, predicate.Exists(
		"cards.rarity ra",
		predicate.And(
			predicate.NewRaw("ra.id = p.rarityid"),
			predicate.NewRaw("ra.displayorder "+sqlOperator(p.operator)+" ?", p.rarity.DisplayOrder),
		),
	)))
}

var operatorWords = map[string]string{
	OpLT:  "less than",
	OpLTE: "less than or equal to",
	OpGT:  "greater than",
	OpGTE: "greater than or equal to",
}

func (p *RarityParam) Pretty(search *Context) string {
	wordy := ""
	if word, ok := operatorWords[p.operator]; ok {
		wordy = " " + word
	}
	return fmt.Sprintf("the rarity %s%s %s", p.verb("is", "isn't"), wordy, p.rarity.Name)
}
