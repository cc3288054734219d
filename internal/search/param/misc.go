// Copyright (c) 2026 Tolaria. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// The "is"/"has" binary parameters. Each matches one fixed card property;
// the registry routes "is:<value>" to the right kind by its value.

package param

import (
	"fmt"
	"strings"

	"github.com/taibuivan/tolaria/internal/search/predicate"
)

// LayoutParam matches the card layout ("split", "transform", ...).
type LayoutParam struct {
	leaf
}

func newLayoutParam(args Args) (Node, error) {
	return &LayoutParam{
		leaf: leaf{name: "layout", operator: args.Operator, value: args.Value},
	}, nil
}

func (p *LayoutParam) Compile(search *Context) predicate.Predicate {
	return p.finish(predicate.NewRaw("c.layout = ?", strings.ToLower(p.value)))
}

func (p *LayoutParam) Pretty(search *Context) string {
	return fmt.Sprintf("card layout %s %s", p.verb("is", "isn't"), p.value)
}

// binaryLeaf is the base of the "is"/"has" parameters.
type binaryLeaf struct {
	leaf
}

func newBinaryLeaf(name string, args Args) binaryLeaf {
	return binaryLeaf{leaf: leaf{name: name, operator: args.Operator, value: args.Value}}
}

// MulticolouredParam matches cards with two or more colours on a face.
type MulticolouredParam struct {
	binaryLeaf
}

func newMulticolouredParam(args Args) (Node, error) {
	return &MulticolouredParam{binaryLeaf: newBinaryLeaf("is multicoloured", args)}, nil
}

func (p *MulticolouredParam) Compile(search *Context) predicate.Predicate {
	return p.finish(facePred(predicate.NewRaw("f.colourcount >= 2")))
}

func (p *MulticolouredParam) Pretty(search *Context) string {
	return fmt.Sprintf("card %s multicoloured", p.verb("is", "isn't"))
}

// HybridParam matches cards with hybrid mana in a face cost.
type HybridParam struct {
	binaryLeaf
}

func newHybridParam(args Args) (Node, error) {
	return &HybridParam{binaryLeaf: newBinaryLeaf("is hybrid", args)}, nil
}

func (p *HybridParam) Compile(search *Context) predicate.Predicate {
	return p.finish(facePred(predicate.NewRaw(`f.manacost ~* ?`, `/[wubrg]`)))
}

func (p *HybridParam) Pretty(search *Context) string {
	return fmt.Sprintf("the cards %s hybrid mana", p.verb("have", "don't have"))
}

// PhyrexianParam matches cards with phyrexian mana symbols in their cost or
// rules text.
type PhyrexianParam struct {
	binaryLeaf
}

func newPhyrexianParam(args Args) (Node, error) {
	return &PhyrexianParam{binaryLeaf: newBinaryLeaf("is phyrexian", args)}, nil
}

func (p *PhyrexianParam) Compile(search *Context) predicate.Predicate {
	return p.finish(facePred(predicate.Or(
		predicate.NewRaw("f.manacost ILIKE ?", "%/p%"),
		predicate.NewRaw("f.rulestext ILIKE ?", "%/p%"),
	)))
}

func (p *PhyrexianParam) Pretty(search *Context) string {
	return fmt.Sprintf("the cards %s Phyrexian mana", p.verb("have", "don't have"))
}

// CommanderParam matches cards that can be a commander, using the
// precomputed flag on the card search metadata.
type CommanderParam struct {
	binaryLeaf
}

func newCommanderParam(args Args) (Node, error) {
	return &CommanderParam{binaryLeaf: newBinaryLeaf("is commander", args)}, nil
}

func (p *CommanderParam) Compile(search *Context) predicate.Predicate {
	return p.finish(cardMetaPred(predicate.NewRaw("cm.iscommander")))
}

func (p *CommanderParam) Pretty(search *Context) string {
	return fmt.Sprintf("the cards %s be your commander", p.verb("can", "can't"))
}

// VanillaParam matches creatures with no rules text.
type VanillaParam struct {
	binaryLeaf
}

func newVanillaParam(args Args) (Node, error) {
	return &VanillaParam{binaryLeaf: newBinaryLeaf("is vanilla", args)}, nil
}

func (p *VanillaParam) Compile(search *Context) predicate.Predicate {
	return p.finish(cardMetaPred(predicate.NewRaw("cm.isvanilla")))
}

func (p *VanillaParam) Pretty(search *Context) string {
	return fmt.Sprintf("the cards %s vanilla", p.verb("are", "aren't"))
}

// IndicatorParam matches cards with a colour indicator on a face.
type IndicatorParam struct {
	binaryLeaf
}

func newIndicatorParam(args Args) (Node, error) {
	return &IndicatorParam{binaryLeaf: newBinaryLeaf("colour indicator", args)}, nil
}

func (p *IndicatorParam) Compile(search *Context) predicate.Predicate {
	return p.finish(facePred(predicate.NewRaw("f.colourindicatorflags <> 0")))
}

func (p *IndicatorParam) Pretty(search *Context) string {
	return fmt.Sprintf("the cards %s colour indicators", p.verb("have", "don't have"))
}

// ReprintParam matches printings flagged as reprints.
type ReprintParam struct {
	binaryLeaf
}

func newReprintParam(args Args) (Node, error) {
	return &ReprintParam{binaryLeaf: newBinaryLeaf("is reprint", args)}, nil
}

func (p *ReprintParam) DefaultScope() predicate.Scope { return predicate.ScopePrinting }

func (p *ReprintParam) Compile(search *Context) predicate.Predicate {
	return p.finish(printingPred(search, predicate.NewRaw("p.isreprint")))
}

func (p *ReprintParam) Pretty(search *Context) string {
	return fmt.Sprintf("the cards %s a reprint", p.verb("are", "aren't"))
}

// HasWatermarkParam matches printings with any watermark at all.
type HasWatermarkParam struct {
	binaryLeaf
}

func newHasWatermarkParam(args Args) (Node, error) {
	return &HasWatermarkParam{binaryLeaf: newBinaryLeaf("has watermark", args)}, nil
}

func (p *HasWatermarkParam) DefaultScope() predicate.Scope { return predicate.ScopePrinting }

func (p *HasWatermarkParam) Compile(search *Context) predicate.Predicate {
	return p.finish(printingPred(search, predicate.NewRaw("p.watermark IS NOT NULL")))
}

func (p *HasWatermarkParam) Pretty(search *Context) string {
	return fmt.Sprintf("the cards %s a watermark", p.verb("have", "don't have"))
}
