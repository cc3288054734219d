// Copyright (c) 2026 Tolaria. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package collection

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/tolaria/internal/platform/apperr"
)

type stubRepository struct {
	decks   map[int64]*Deck
	upserts []*OwnedCard
	deletes []int64
}

func newStubRepository() *stubRepository {
	return &stubRepository{decks: map[int64]*Deck{}}
}

func (repo *stubRepository) ListOwned(context.Context, string) ([]*OwnedCard, error) {
	return nil, nil
}

func (repo *stubRepository) UpsertOwned(_ context.Context, owned *OwnedCard) error {
	owned.ID = int64(len(repo.upserts) + 1)
	repo.upserts = append(repo.upserts, owned)
	return nil
}

func (repo *stubRepository) DeleteOwned(_ context.Context, _ string, printingID int64) error {
	repo.deletes = append(repo.deletes, printingID)
	return nil
}

func (repo *stubRepository) ListDecks(context.Context, string) ([]*Deck, error) { return nil, nil }

func (repo *stubRepository) GetDeck(_ context.Context, id int64) (*Deck, error) {
	deck, ok := repo.decks[id]
	if !ok {
		return nil, apperr.NotFound("Deck")
	}
	return deck, nil
}

func (repo *stubRepository) CreateDeck(_ context.Context, deck *Deck) error {
	deck.ID = int64(len(repo.decks) + 1)
	repo.decks[deck.ID] = deck
	return nil
}

func (repo *stubRepository) DeleteDeck(_ context.Context, id int64) error {
	delete(repo.decks, id)
	return nil
}

func (repo *stubRepository) UpsertDeckCard(_ context.Context, entry *DeckCard) error {
	deck := repo.decks[entry.DeckID]
	deck.Cards = append(deck.Cards, entry)
	return nil
}

func (repo *stubRepository) DeleteDeckCard(context.Context, int64, int64, string) error {
	return nil
}

const owner = "4b825dc6-42fb-4f52-9c5d-0b1f1d2cf9a0"

func TestSetOwnedCount(t *testing.T) {
	repo := newStubRepository()
	service := NewService(repo, slog.Default())

	t.Run("positive_count_upserts", func(t *testing.T) {
		owned, err := service.SetOwnedCount(context.Background(), owner, 42, 3)
		require.NoError(t, err)
		require.NotNil(t, owned)
		assert.Equal(t, 3, owned.Count)
		assert.Len(t, repo.upserts, 1)
	})

	t.Run("zero_count_deletes", func(t *testing.T) {
		owned, err := service.SetOwnedCount(context.Background(), owner, 42, 0)
		require.NoError(t, err)
		assert.Nil(t, owned)
		assert.Equal(t, []int64{42}, repo.deletes)
	})

	t.Run("negative_count_rejected", func(t *testing.T) {
		_, err := service.SetOwnedCount(context.Background(), owner, 42, -1)
		require.Error(t, err)
	})
}

func TestDeckOwnership(t *testing.T) {
	repo := newStubRepository()
	service := NewService(repo, slog.Default())

	deck := &Deck{OwnerID: owner, Name: "Mono Red Burn"}
	require.NoError(t, service.CreateDeck(context.Background(), deck))

	t.Run("owner_reads_deck", func(t *testing.T) {
		found, err := service.GetDeck(context.Background(), owner, deck.ID)
		require.NoError(t, err)
		assert.Equal(t, "Mono Red Burn", found.Name)
	})

	t.Run("other_user_is_forbidden", func(t *testing.T) {
		_, err := service.GetDeck(context.Background(), "someone-else", deck.ID)
		require.Error(t, err)
		appErr := apperr.As(err)
		require.NotNil(t, appErr)
		assert.Contains(t, appErr.Message, "another user")
	})

	t.Run("unnamed_deck_rejected", func(t *testing.T) {
		err := service.CreateDeck(context.Background(), &Deck{OwnerID: owner})
		require.Error(t, err)
	})
}

func TestSetDeckCard(t *testing.T) {
	repo := newStubRepository()
	service := NewService(repo, slog.Default())

	deck := &Deck{OwnerID: owner, Name: "Esper Control"}
	require.NoError(t, service.CreateDeck(context.Background(), deck))

	t.Run("defaults_to_main_board", func(t *testing.T) {
		err := service.SetDeckCard(context.Background(), owner, deck.ID, 7, 4, "")
		require.NoError(t, err)
		require.Len(t, repo.decks[deck.ID].Cards, 1)
		assert.Equal(t, BoardMain, repo.decks[deck.ID].Cards[0].Board)
	})

	t.Run("unknown_board_rejected", func(t *testing.T) {
		err := service.SetDeckCard(context.Background(), owner, deck.ID, 7, 4, "maybe")
		require.Error(t, err)
	})
}
