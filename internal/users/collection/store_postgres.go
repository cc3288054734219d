// Copyright (c) 2026 Tolaria. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package collection

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/taibuivan/tolaria/internal/platform/database/schema"
	"github.com/taibuivan/tolaria/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) ListOwned(context context.Context, ownerID string) ([]*OwnedCard, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
		ORDER BY %s
	`,
		schema.UsersOwnedCard.ID, schema.UsersOwnedCard.OwnerID, schema.UsersOwnedCard.PrintingID,
		schema.UsersOwnedCard.Count, schema.UsersOwnedCard.CreatedAt, schema.UsersOwnedCard.UpdatedAt,
		schema.UsersOwnedCard.Table, schema.UsersOwnedCard.OwnerID, schema.UsersOwnedCard.PrintingID,
	)

	rows, err := repository.db.Query(context, query, ownerID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_owned_cards")
	}
	defer rows.Close()

	var owned []*OwnedCard
	for rows.Next() {
		o := &OwnedCard{}
		if err := rows.Scan(&o.ID, &o.OwnerID, &o.PrintingID, &o.Count, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_owned_card")
		}
		owned = append(owned, o)
	}
	return owned, nil
}

func (repository *PostgresRepository) UpsertOwned(context context.Context, owned *OwnedCard) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, $2, $3)
		ON CONFLICT (%s, %s) DO UPDATE SET %s = EXCLUDED.%s, %s = NOW()
		RETURNING %s
	`,
		schema.UsersOwnedCard.Table,
		schema.UsersOwnedCard.OwnerID, schema.UsersOwnedCard.PrintingID, schema.UsersOwnedCard.Count,
		schema.UsersOwnedCard.OwnerID, schema.UsersOwnedCard.PrintingID,
		schema.UsersOwnedCard.Count, schema.UsersOwnedCard.Count, schema.UsersOwnedCard.UpdatedAt,
		schema.UsersOwnedCard.ID,
	)

	err := repository.db.QueryRow(context, query, owned.OwnerID, owned.PrintingID, owned.Count).Scan(&owned.ID)
	if err != nil {
		return dberr.Wrap(err, "upsert_owned_card")
	}
	return nil
}

func (repository *PostgresRepository) DeleteOwned(context context.Context, ownerID string, printingID int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = $2`,
		schema.UsersOwnedCard.Table, schema.UsersOwnedCard.OwnerID, schema.UsersOwnedCard.PrintingID)

	if _, err := repository.db.Exec(context, query, ownerID, printingID); err != nil {
		return dberr.Wrap(err, "delete_owned_card")
	}
	return nil
}

func (repository *PostgresRepository) ListDecks(context context.Context, ownerID string) ([]*Deck, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
		ORDER BY %s DESC
	`,
		schema.UsersDeck.ID, schema.UsersDeck.OwnerID, schema.UsersDeck.Name,
		schema.UsersDeck.Format, schema.UsersDeck.CreatedAt, schema.UsersDeck.UpdatedAt,
		schema.UsersDeck.Table, schema.UsersDeck.OwnerID, schema.UsersDeck.UpdatedAt,
	)

	rows, err := repository.db.Query(context, query, ownerID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_decks")
	}
	defer rows.Close()

	var decks []*Deck
	for rows.Next() {
		d := &Deck{}
		if err := rows.Scan(&d.ID, &d.OwnerID, &d.Name, &d.Format, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_deck")
		}
		decks = append(decks, d)
	}
	return decks, nil
}

func (repository *PostgresRepository) GetDeck(context context.Context, id int64) (*Deck, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.UsersDeck.ID, schema.UsersDeck.OwnerID, schema.UsersDeck.Name,
		schema.UsersDeck.Format, schema.UsersDeck.CreatedAt, schema.UsersDeck.UpdatedAt,
		schema.UsersDeck.Table, schema.UsersDeck.ID,
	)

	d := &Deck{}
	err := repository.db.QueryRow(context, query, id).
		Scan(&d.ID, &d.OwnerID, &d.Name, &d.Format, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, dberr.Wrap(err, "get_deck")
	}

	cardsQuery := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
		ORDER BY %s, %s
	`,
		schema.UsersDeckCard.ID, schema.UsersDeckCard.DeckID, schema.UsersDeckCard.CardID,
		schema.UsersDeckCard.Count, schema.UsersDeckCard.Board,
		schema.UsersDeckCard.Table, schema.UsersDeckCard.DeckID,
		schema.UsersDeckCard.Board, schema.UsersDeckCard.ID,
	)

	rows, err := repository.db.Query(context, cardsQuery, id)
	if err != nil {
		return nil, dberr.Wrap(err, "get_deck_cards")
	}
	defer rows.Close()

	for rows.Next() {
		entry := &DeckCard{}
		if err := rows.Scan(&entry.ID, &entry.DeckID, &entry.CardID, &entry.Count, &entry.Board); err != nil {
			return nil, dberr.Wrap(err, "scan_deck_card")
		}
		d.Cards = append(d.Cards, entry)
	}
	return d, nil
}

func (repository *PostgresRepository) CreateDeck(context context.Context, deck *Deck) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, $2, $3)
		RETURNING %s, %s, %s
	`,
		schema.UsersDeck.Table,
		schema.UsersDeck.OwnerID, schema.UsersDeck.Name, schema.UsersDeck.Format,
		schema.UsersDeck.ID, schema.UsersDeck.CreatedAt, schema.UsersDeck.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query, deck.OwnerID, deck.Name, deck.Format).
		Scan(&deck.ID, &deck.CreatedAt, &deck.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "create_deck")
	}
	return nil
}

func (repository *PostgresRepository) DeleteDeck(context context.Context, id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.UsersDeck.Table, schema.UsersDeck.ID)

	if _, err := repository.db.Exec(context, query, id); err != nil {
		return dberr.Wrap(err, "delete_deck")
	}
	return nil
}

func (repository *PostgresRepository) UpsertDeckCard(context context.Context, entry *DeckCard) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (%s, %s, %s) DO UPDATE SET %s = EXCLUDED.%s
		RETURNING %s
	`,
		schema.UsersDeckCard.Table,
		schema.UsersDeckCard.DeckID, schema.UsersDeckCard.CardID, schema.UsersDeckCard.Count, schema.UsersDeckCard.Board,
		schema.UsersDeckCard.DeckID, schema.UsersDeckCard.CardID, schema.UsersDeckCard.Board,
		schema.UsersDeckCard.Count, schema.UsersDeckCard.Count,
		schema.UsersDeckCard.ID,
	)

	err := repository.db.QueryRow(context, query, entry.DeckID, entry.CardID, entry.Count, entry.Board).Scan(&entry.ID)
	if err != nil {
		return dberr.Wrap(err, "upsert_deck_card")
	}
	return nil
}

func (repository *PostgresRepository) DeleteDeckCard(context context.Context, deckID, cardID int64, board string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = $2 AND %s = $3`,
		schema.UsersDeckCard.Table,
		schema.UsersDeckCard.DeckID, schema.UsersDeckCard.CardID, schema.UsersDeckCard.Board)

	if _, err := repository.db.Exec(context, query, deckID, cardID, board); err != nil {
		return dberr.Wrap(err, "delete_deck_card")
	}
	return nil
}
