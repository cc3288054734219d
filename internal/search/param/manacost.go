// Copyright (c) 2026 Tolaria. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package param

import (
	"context"
	"fmt"

	"github.com/taibuivan/tolaria/internal/platform/database/schema"
	"github.com/taibuivan/tolaria/internal/search/predicate"
	"github.com/taibuivan/tolaria/pkg/mana"
)

// ManaCostParam compares a cost operand symbol by symbol against the
// precomputed counts in the face search metadata.
//
// Under "<", "<=" and "=", every symbol absent from the operand is asserted
// to have a zero count — "m=2ww" rejects a card costing {2}{W}{W}{U}, and a
// generic-free operand rejects any generic mana.
type ManaCostParam struct {
	leaf
	cost mana.Cost
}

func newManaCostParam(args Args) (Node, error) {
	param := &ManaCostParam{
		leaf: leaf{name: "mana cost", operator: args.Operator, value: args.Value},
	}
	if param.operator == OpContains {
		param.operator = OpGTE
	}
	return param, nil
}

func (p *ManaCostParam) Validate(ctx context.Context, search *Context) error {
	cost, err := mana.Parse(p.value)
	if err != nil {
		return newValidationError("mana cost", p.value, "could not parse %q: %v", p.value, err)
	}
	p.cost = cost
	return nil
}

func (p *ManaCostParam) Compile(search *Context) predicate.Predicate {
	operator := sqlOperator(p.operator)
	var conditions []predicate.Predicate

	for _, symbol := range mana.Symbols {
		count := p.cost.Counts[symbol]
		column := "fm." + schema.CardsFaceMetadata.SymbolColumn(symbol)
		if count > 0 {
			conditions = append(conditions, predicate.NewRaw(column+" "+operator+" ?", count))
			continue
		}
		// Zero assertions for untested symbols under the bounded operators.
		if p.operator == OpLT || p.operator == OpLTE || p.operator == OpEq {
			conditions = append(conditions, predicate.NewRaw(column+" = 0"))
		}
	}

	generic := "fm." + schema.CardsFaceMetadata.GenericCount
	if p.cost.Generic > 0 {
		conditions = append(conditions, predicate.NewRaw(generic+" "+operator+" ?", p.cost.Generic))
	} else if p.operator == OpLT || p.operator == OpLTE || p.operator == OpEq {
		conditions = append(conditions, predicate.NewRaw(generic+" = 0"))
	}

	return p.finish(faceMetaPred(predicate.And(conditions...)))
}

func (p *ManaCostParam) Pretty(search *Context) string {
	return fmt.Sprintf("mana cost %s %s", p.verb("contains", "does not contain"), p.value)
}
