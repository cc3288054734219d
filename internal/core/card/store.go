// Copyright (c) 2026 Tolaria. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package card

import (
	"context"

	"github.com/taibuivan/tolaria/internal/search/predicate"
)

// Repository defines the catalog storage operations.
//
// Search and Count take a compiled predicate: at ScopeCard the predicate
// references the card alias "c" directly, at ScopePrinting it references the
// printing alias "p" and is evaluated against each printing of the card.
// The Attach methods batch-load related rows onto an already fetched page of
// cards; AttachOwnership requires printings to be attached first.
type Repository interface {
	GetCard(context context.Context, id int64) (*Card, error)
	GetCardBySlug(context context.Context, slug string) (*Card, error)
	Search(context context.Context, pred predicate.Predicate, scope predicate.Scope, orderBy []string, limit, offset int) ([]*Card, error)
	Count(context context.Context, pred predicate.Predicate, scope predicate.Scope) (int, error)
	ListCards(context context.Context) ([]*Card, error)
	AttachFaces(context context.Context, cards []*Card) error
	AttachPrintings(context context.Context, cards []*Card) error
	AttachOwnership(context context.Context, cards []*Card, ownerID string) error
}
