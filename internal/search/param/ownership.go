// Copyright (c) 2026 Tolaria. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package param

import (
	"context"
	"fmt"
	"strings"

	"github.com/taibuivan/tolaria/internal/search/predicate"
)

// OwnershipParam matches cards by how many copies the acting user owns,
// summed across all printings. It requires a signed-in user; the ":"
// operator accepts the sentinels "any" (>= 1) and "none" (= 0).
type OwnershipParam struct {
	numericLeaf
}

func newOwnershipParam(args Args) (Node, error) {
	return &OwnershipParam{numericLeaf: numericLeaf{
		leaf: leaf{name: "ownership", operator: args.Operator, value: args.Value},
	}}, nil
}

func (p *OwnershipParam) Validate(ctx context.Context, search *Context) error {
	if search.Actor == nil {
		return newValidationError("ownership", p.value, "can't search by ownership when not logged in")
	}

	if p.operator == OpContains {
		switch strings.ToLower(p.value) {
		case "any":
			p.operator = OpGTE
			p.number = 1
			return nil
		case "none":
			p.operator = OpEq
			p.number = 0
			return nil
		default:
			p.operator = OpGTE
		}
	}
	return p.numericLeaf.Validate(ctx, search)
}

func (p *OwnershipParam) Compile(search *Context) predicate.Predicate {
	// Aggregated over every printing of the card, counting absent ownership
	// rows as zero so "= 0" matches cards the user has never owned.
	return p.finish(predicate.NewRaw(
		`c.id IN (
			SELECT oc2.cardid
			FROM cards.card oc1
			JOIN cards.card_printing oc2 ON oc2.cardid = oc1.id
			LEFT JOIN users.owned_card oc3 ON oc3.printingid = oc2.id AND oc3.ownerid = ?
			GROUP BY oc2.cardid
			HAVING SUM(COALESCE(oc3.count, 0)) `+sqlOperator(p.operator)+` ?
		)`,
		search.Actor.ID, p.number,
	))
}

func (p *OwnershipParam) Pretty(search *Context) string {
	if (p.operator == OpLT || p.operator == OpLTE || p.operator == OpEq) && p.number <= 0 {
		return "you don't own any"
	}
	if (p.operator == OpGT && p.number == 0) || (p.operator == OpGTE && p.number == 1) {
		return "you own it"
	}
	return fmt.Sprintf("you own %s %v", p.operator, p.number)
}

// UsageParam matches cards by how many of the acting user's decks include
// them. The ":" operator accepts "any"/"ever" (>= 1) and "never" (= 0).
type UsageParam struct {
	numericLeaf
}

func newUsageParam(args Args) (Node, error) {
	return &UsageParam{numericLeaf: numericLeaf{
		leaf: leaf{name: "deck usage", operator: args.Operator, value: args.Value},
	}}, nil
}

func (p *UsageParam) Validate(ctx context.Context, search *Context) error {
	if search.Actor == nil {
		return newValidationError("deck usage", p.value, "can't search by deck usage if not logged in")
	}

	if p.operator == OpContains {
		switch strings.ToLower(p.value) {
		case "any", "ever":
			p.operator = OpGTE
			p.number = 1
			return nil
		case "never":
			p.operator = OpEq
			p.number = 0
			return nil
		}
	}
	return p.numericLeaf.Validate(ctx, search)
}

func (p *UsageParam) Compile(search *Context) predicate.Predicate {
	return p.finish(predicate.NewRaw(
		`c.id IN (
			SELECT uc1.id
			FROM cards.card uc1
			LEFT JOIN users.deck_card uc2 ON uc2.cardid = uc1.id
			LEFT JOIN users.deck uc3 ON uc3.id = uc2.deckid AND uc3.ownerid = ?
			GROUP BY uc1.id
			HAVING COUNT(uc3.id) `+sqlOperator(p.operator)+` ?
		)`,
		search.Actor.ID, p.number,
	))
}

func (p *UsageParam) Pretty(search *Context) string {
	if p.operator == OpEq && p.number == 0 {
		return "you haven't used it in a deck"
	}
	return fmt.Sprintf("you used it in %s %v decks", p.operator, p.number)
}
