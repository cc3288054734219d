// Copyright (c) 2026 Tolaria. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package param

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/taibuivan/tolaria/internal/search/predicate"
)

// numericLeaf is the base of every numeric comparison parameter. The operand
// may be a literal number, infinity, or a reference to another numeric field
// ("power>toughness").
type numericLeaf struct {
	leaf
	number float64
}

// fieldRefs maps operand keywords to the card or face column they reference.
var fieldRefs = map[string]string{
	"power":     "f.numpower",
	"pow":       "f.numpower",
	"toughness": "f.numtoughness",
	"tough":     "f.numtoughness",
	"tou":       "f.numtoughness",
	"loyalty":   "f.numloyalty",
	"loy":       "f.numloyalty",
	"cmc":       "c.manavalue",
	"cost":      "c.manavalue",
	"mv":        "c.manavalue",
	"manavalue": "c.manavalue",
}

func isInfinity(value string) bool {
	return value == "inf" || value == "infinity" || value == "∞"
}

// operand renders the right-hand side of the comparison: a column reference
// or a bound literal.
func (l *numericLeaf) operand() (expr string, values []any, err error) {
	lower := strings.ToLower(l.value)
	if column, ok := fieldRefs[lower]; ok {
		return column, nil, nil
	}
	if isInfinity(lower) {
		return predicate.Placeholder, []any{math.Inf(1)}, nil
	}

	number, parseErr := strconv.ParseFloat(l.value, 64)
	if parseErr != nil {
		return "", nil, newValidationError(l.name, l.value, "could not convert %q to number", l.value)
	}
	return predicate.Placeholder, []any{number}, nil
}

func (l *numericLeaf) Validate(ctx context.Context, search *Context) error {
	_, values, err := l.operand()
	if err != nil {
		return err
	}
	if len(values) == 1 {
		if number, ok := values[0].(float64); ok {
			l.number = number
		}
	}
	return nil
}

// comparison renders "column op operand". Callers wrap it in the EXISTS
// appropriate for the column's table.
func (l *numericLeaf) comparison(column string, search *Context) predicate.Predicate {
	expr, values, err := l.operand()
	if err != nil {
		// Validate runs first and reports this; compiling anyway must not
		// panic mid-request.
		search.logger().Error("compiling numeric parameter with bad operand",
			"param", l.name, "value", l.value)
		return predicate.Nothing()
	}
	return predicate.NewRaw(column+" "+sqlOperator(l.operator)+" "+expr, values...)
}

// PowerParam compares a creature's numeric power. Cards without a power are
// excluded from the positive comparison by an implicit not-null conjunct.
type PowerParam struct {
	numericLeaf
}

func newPowerParam(args Args) (Node, error) {
	return &PowerParam{numericLeaf: numericLeaf{
		leaf: leaf{name: "power", operator: args.Operator, value: args.Value},
	}}, nil
}

func (p *PowerParam) Compile(search *Context) predicate.Predicate {
	return p.finish(facePred(predicate.And(
		p.comparison("f.numpower", search),
		predicate.NewRaw("f.power IS NOT NULL"),
	)))
}

func (p *PowerParam) Pretty(search *Context) string {
	return fmt.Sprintf("the power %s%s %s", p.verb("", "is not "), p.operator, p.value)
}

// ToughnessParam compares a creature's numeric toughness.
type ToughnessParam struct {
	numericLeaf
}

func newToughnessParam(args Args) (Node, error) {
	return &ToughnessParam{numericLeaf: numericLeaf{
		leaf: leaf{name: "toughness", operator: args.Operator, value: args.Value},
	}}, nil
}

func (p *ToughnessParam) Compile(search *Context) predicate.Predicate {
	return p.finish(facePred(predicate.And(
		p.comparison("f.numtoughness", search),
		predicate.NewRaw("f.toughness IS NOT NULL"),
	)))
}

func (p *ToughnessParam) Pretty(search *Context) string {
	return fmt.Sprintf("the toughness %s%s %s", p.verb("", "is not "), p.operator, p.value)
}

// LoyaltyParam compares a planeswalker's numeric loyalty.
type LoyaltyParam struct {
	numericLeaf
}

func newLoyaltyParam(args Args) (Node, error) {
	return &LoyaltyParam{numericLeaf: numericLeaf{
		leaf: leaf{name: "loyalty", operator: args.Operator, value: args.Value},
	}}, nil
}

func (p *LoyaltyParam) Compile(search *Context) predicate.Predicate {
	return p.finish(facePred(predicate.And(
		p.comparison("f.numloyalty", search),
		predicate.NewRaw("f.loyalty IS NOT NULL"),
	)))
}

func (p *LoyaltyParam) Pretty(search *Context) string {
	return fmt.Sprintf("the loyalty %s %s", p.operator, p.value)
}

// ManaValueParam compares the card's total mana value.
type ManaValueParam struct {
	numericLeaf
}

func newManaValueParam(args Args) (Node, error) {
	return &ManaValueParam{numericLeaf: numericLeaf{
		leaf: leaf{name: "mana value", operator: args.Operator, value: args.Value},
	}}, nil
}

func (p *ManaValueParam) Compile(search *Context) predicate.Predicate {
	return p.finish(p.comparison("c.manavalue", search))
}

func (p *ManaValueParam) Pretty(search *Context) string {
	return fmt.Sprintf("mana value %s%s %s", p.verb("", "isn't "), p.operator, p.value)
}

// CollectorNumberParam compares the printing's numeric collector number.
type CollectorNumberParam struct {
	numericLeaf
}

func newCollectorNumberParam(args Args) (Node, error) {
	return &CollectorNumberParam{numericLeaf: numericLeaf{
		leaf: leaf{name: "collector number", operator: args.Operator, value: args.Value},
	}}, nil
}

func (p *CollectorNumberParam) DefaultScope() predicate.Scope { return predicate.ScopePrinting }

func (p *CollectorNumberParam) Compile(search *Context) predicate.Predicate {
	return p.finish(printingPred(search, p.comparison("p.numericalnumber", search)))
}

func (p *CollectorNumberParam) Pretty(search *Context) string {
	return fmt.Sprintf("the printing's collector number %s%s %s", p.verb("", "is not "), p.operator, p.value)
}
