// Copyright (c) 2026 Tolaria. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package collection

import (
	"context"
	"log/slog"

	"github.com/taibuivan/tolaria/internal/platform/apperr"
	"github.com/taibuivan/tolaria/internal/platform/validate"
)

// Validation field names.
const (
	FieldName   = "name"
	FieldFormat = "format"
	FieldBoard  = "board"
	FieldCount  = "count"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// # Owned Cards

func (service *Service) ListOwned(context context.Context, ownerID string) ([]*OwnedCard, error) {
	return service.repo.ListOwned(context, ownerID)
}

// SetOwnedCount records how many copies of a printing the user owns. A count
// of zero removes the row.
func (service *Service) SetOwnedCount(context context.Context, ownerID string, printingID int64, count int) (*OwnedCard, error) {
	validator := &validate.Validator{}
	validator.Range(FieldCount, count, 0, 10000)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	if count == 0 {
		if err := service.repo.DeleteOwned(context, ownerID, printingID); err != nil {
			return nil, err
		}
		return nil, nil
	}

	owned := &OwnedCard{OwnerID: ownerID, PrintingID: printingID, Count: count}
	if err := service.repo.UpsertOwned(context, owned); err != nil {
		return nil, err
	}

	service.logger.Info("owned_card_set",
		slog.Int64("printing_id", printingID),
		slog.Int("count", count),
	)
	return owned, nil
}

// # Decks

func (service *Service) ListDecks(context context.Context, ownerID string) ([]*Deck, error) {
	return service.repo.ListDecks(context, ownerID)
}

// GetDeck loads one of the user's decks with its card list.
func (service *Service) GetDeck(context context.Context, ownerID string, id int64) (*Deck, error) {
	deck, err := service.repo.GetDeck(context, id)
	if err != nil {
		return nil, err
	}
	if deck.OwnerID != ownerID {
		return nil, apperr.Forbidden("Deck belongs to another user")
	}
	return deck, nil
}

func (service *Service) CreateDeck(context context.Context, deck *Deck) error {
	validator := &validate.Validator{}
	validator.Required(FieldName, deck.Name).MaxLen(FieldName, deck.Name, 200)
	if deck.Format != "" {
		validator.MaxLen(FieldFormat, deck.Format, 50)
	}
	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.repo.CreateDeck(context, deck); err != nil {
		return err
	}

	service.logger.Info("deck_created", slog.String("name", deck.Name))
	return nil
}

func (service *Service) DeleteDeck(context context.Context, ownerID string, id int64) error {
	if _, err := service.GetDeck(context, ownerID, id); err != nil {
		return err
	}
	return service.repo.DeleteDeck(context, id)
}

// SetDeckCard sets how many copies of a card a deck board carries. A count
// of zero removes the entry.
func (service *Service) SetDeckCard(context context.Context, ownerID string, deckID, cardID int64, count int, board string) error {
	if board == "" {
		board = BoardMain
	}

	validator := &validate.Validator{}
	validator.OneOf(FieldBoard, board, BoardMain, BoardSide)
	validator.Range(FieldCount, count, 0, 250)
	if err := validator.Err(); err != nil {
		return err
	}

	if _, err := service.GetDeck(context, ownerID, deckID); err != nil {
		return err
	}

	if count == 0 {
		return service.repo.DeleteDeckCard(context, deckID, cardID, board)
	}
	return service.repo.UpsertDeckCard(context, &DeckCard{
		DeckID: deckID,
		CardID: cardID,
		Count:  count,
		Board:  board,
	})
}
