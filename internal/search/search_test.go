// Copyright (c) 2026 Tolaria. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package search

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/tolaria/internal/core/card"
	"github.com/taibuivan/tolaria/internal/platform/apperr"
	"github.com/taibuivan/tolaria/internal/search/param"
	"github.com/taibuivan/tolaria/internal/search/predicate"
	"github.com/taibuivan/tolaria/pkg/pagination"
)

// fakeRepository records the compiled query and serves a fixed result page.
type fakeRepository struct {
	cards []*card.Card
	total int

	lastSQL     string
	lastScope   predicate.Scope
	lastOrderBy []string
	lastLimit   int
	lastOffset  int
	ownerID     string
}

func (repo *fakeRepository) GetCard(context.Context, int64) (*card.Card, error) {
	return nil, nil
}

func (repo *fakeRepository) GetCardBySlug(context.Context, string) (*card.Card, error) {
	return nil, nil
}

func (repo *fakeRepository) Search(_ context.Context, pred predicate.Predicate, scope predicate.Scope, orderBy []string, limit, offset int) ([]*card.Card, error) {
	binder := &predicate.Binder{}
	repo.lastSQL = pred.SQL(binder)
	repo.lastScope = scope
	repo.lastOrderBy = orderBy
	repo.lastLimit = limit
	repo.lastOffset = offset
	return repo.cards, nil
}

func (repo *fakeRepository) Count(context.Context, predicate.Predicate, predicate.Scope) (int, error) {
	return repo.total, nil
}

func (repo *fakeRepository) ListCards(context.Context) ([]*card.Card, error) {
	return repo.cards, nil
}

func (repo *fakeRepository) AttachFaces(context.Context, []*card.Card) error { return nil }

func (repo *fakeRepository) AttachPrintings(context.Context, []*card.Card) error { return nil }

func (repo *fakeRepository) AttachOwnership(_ context.Context, _ []*card.Card, ownerID string) error {
	repo.ownerID = ownerID
	return nil
}

// fakeResolver resolves a single known set and rejects everything else.
type fakeResolver struct {
	set *param.ResolvedSet
}

func (resolver *fakeResolver) ResolveSet(_ context.Context, text string) (*param.ResolvedSet, error) {
	if resolver.set != nil && text == resolver.set.Code {
		return resolver.set, nil
	}
	return nil, assert.AnError
}

func (resolver *fakeResolver) ResolveBlock(context.Context, string) (*param.ResolvedBlock, error) {
	return nil, assert.AnError
}

func (resolver *fakeResolver) ResolveFormat(context.Context, string) (*param.ResolvedFormat, error) {
	return nil, assert.AnError
}

func (resolver *fakeResolver) ResolveRarity(context.Context, string) (*param.ResolvedRarity, error) {
	return nil, assert.AnError
}

func newFakeService(repo *fakeRepository, resolver param.EntityResolver) *Service {
	return &Service{cards: repo, resolver: resolver, logger: slog.Default()}
}

func TestSearch_PageAssembly(t *testing.T) {
	repo := &fakeRepository{
		cards: []*card.Card{{ID: 1, Name: "Lightning Bolt"}},
		total: 41,
	}
	service := newFakeService(repo, &fakeResolver{})

	page, err := service.Search(context.Background(), Request{
		Query: "bolt",
		Page:  pagination.Params{Page: 2, Limit: 20},
	})
	require.NoError(t, err)

	assert.Equal(t, 20, repo.lastLimit)
	assert.Equal(t, 20, repo.lastOffset)
	assert.Equal(t, predicate.ScopeCard, repo.lastScope)
	assert.Contains(t, repo.lastSQL, "ILIKE")
	assert.Equal(t, []string{"c.name ASC"}, repo.lastOrderBy)

	require.Len(t, page.Results, 1)
	assert.Equal(t, "Lightning Bolt", page.Results[0].Card.Name)
	assert.Equal(t, 41, page.Meta.Total)
	assert.Equal(t, 3, page.Meta.TotalPages)
	assert.NotEmpty(t, page.Buttons)
	assert.Contains(t, page.Description, "bolt")
}

func TestSearch_PrintingScopeAndSorts(t *testing.T) {
	repo := &fakeRepository{}
	mirage := &param.ResolvedSet{ID: 9, Code: "mir", Name: "Mirage"}
	service := newFakeService(repo, &fakeResolver{set: mirage})

	_, err := service.Search(context.Background(), Request{
		Query: "s:mir order:rarity",
		Page:  pagination.Params{Page: 1, Limit: 25},
	})
	require.NoError(t, err)

	assert.Equal(t, predicate.ScopePrinting, repo.lastScope)
	require.Len(t, repo.lastOrderBy, 2)
	assert.Contains(t, repo.lastOrderBy[0], "displayorder")
	assert.Equal(t, "c.name ASC", repo.lastOrderBy[1])
}

func TestSearch_OwnershipRequiresActor(t *testing.T) {
	service := newFakeService(&fakeRepository{}, &fakeResolver{})

	_, err := service.Search(context.Background(), Request{
		Query: "have:any",
		Page:  pagination.Params{Page: 1, Limit: 25},
	})
	require.Error(t, err)
	require.True(t, apperr.IsAppError(err))
	assert.Contains(t, err.Error(), "not logged in")

	repo := &fakeRepository{}
	service = newFakeService(repo, &fakeResolver{})
	_, err = service.Search(context.Background(), Request{
		Query: "have:any",
		Page:  pagination.Params{Page: 1, Limit: 25},
		Actor: &param.Actor{ID: "4b825dc6-42fb-4f52-9c5d-0b1f1d2cf9a0", Username: "teferi"},
	})
	require.NoError(t, err)
	assert.Equal(t, "4b825dc6-42fb-4f52-9c5d-0b1f1d2cf9a0", repo.ownerID)
}

func TestSearch_ParseErrorIsValidation(t *testing.T) {
	service := newFakeService(&fakeRepository{}, &fakeResolver{})

	_, err := service.Search(context.Background(), Request{
		Query: "(unbalanced",
		Page:  pagination.Params{Page: 1, Limit: 25},
	})
	require.Error(t, err)
	assert.True(t, apperr.IsAppError(err))
}

func TestSelectPrinting(t *testing.T) {
	older := &card.Printing{ID: 1, SetID: 5}
	newer := &card.Printing{ID: 2, SetID: 6}
	promo := &card.Printing{ID: 3, SetID: 7, IsPromo: true}
	c := &card.Card{Printings: []*card.Printing{older, newer, promo}}

	tests := []struct {
		name      string
		requested *param.ResolvedSet
		want      *card.Printing
	}{
		{name: "requested_set_wins", requested: &param.ResolvedSet{ID: 5}, want: older},
		{name: "latest_non_promo_otherwise", requested: nil, want: newer},
		{
			name:      "missing_requested_set_falls_back",
			requested: &param.ResolvedSet{ID: 99, ReleaseDate: time.Now()},
			want:      newer,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Same(t, test.want, selectPrinting(c, test.requested))
		})
	}

	onlyPromo := &card.Card{Printings: []*card.Printing{promo}}
	assert.Same(t, promo, selectPrinting(onlyPromo, nil))
	assert.Nil(t, selectPrinting(&card.Card{}, nil))
}
