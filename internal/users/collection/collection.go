// Copyright (c) 2026 Tolaria. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package collection manages a user's owned cards and decks.

Owned counts are kept per printing and summed per card by the search side;
deck cards reference the abstract card, not a printing, so a deck survives
reprints.
*/
package collection

import (
	"context"
	"time"
)

// # Domain Entities

// OwnedCard records how many copies of one printing a user owns.
type OwnedCard struct {
	ID         int64     `json:"id"`
	OwnerID    string    `json:"owner_id"`
	PrintingID int64     `json:"printing_id"`
	Count      int       `json:"count"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Deck is a named list of cards belonging to one user.
type Deck struct {
	ID        int64     `json:"id"`
	OwnerID   string    `json:"owner_id"`
	Name      string    `json:"name"`
	Format    string    `json:"format"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Cards []*DeckCard `json:"cards,omitempty"`
}

// Deck boards.
const (
	BoardMain = "main"
	BoardSide = "side"
)

// DeckCard is one card entry in a deck.
type DeckCard struct {
	ID     int64  `json:"id"`
	DeckID int64  `json:"deck_id"`
	CardID int64  `json:"card_id"`
	Count  int    `json:"count"`
	Board  string `json:"board"`
}

// # Repository Contracts

// Repository defines the persistence contract for collections and decks.
type Repository interface {
	ListOwned(context context.Context, ownerID string) ([]*OwnedCard, error)
	UpsertOwned(context context.Context, owned *OwnedCard) error
	DeleteOwned(context context.Context, ownerID string, printingID int64) error

	ListDecks(context context.Context, ownerID string) ([]*Deck, error)
	GetDeck(context context.Context, id int64) (*Deck, error)
	CreateDeck(context context.Context, deck *Deck) error
	DeleteDeck(context context.Context, id int64) error
	UpsertDeckCard(context context.Context, entry *DeckCard) error
	DeleteDeckCard(context context.Context, deckID, cardID int64, board string) error
}
