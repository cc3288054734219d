// Copyright (c) 2026 Tolaria. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package card

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/tolaria/internal/core/set"
	"github.com/taibuivan/tolaria/internal/platform/database/schema"
	"github.com/taibuivan/tolaria/internal/platform/dberr"
	"github.com/taibuivan/tolaria/internal/search/predicate"
	"github.com/taibuivan/tolaria/pkg/colour"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func prefixed(alias string, columns []string) string {
	parts := make([]string, len(columns))
	for i, column := range columns {
		parts[i] = alias + "." + column
	}
	return strings.Join(parts, ", ")
}

func cardQuery(condition string) string {
	return fmt.Sprintf(`
		SELECT %s
		FROM %s c
		WHERE %s
	`, prefixed("c", schema.CardsCard.Columns()), schema.CardsCard.Table, condition)
}

func scanCard(row interface{ Scan(...any) error }) (*Card, error) {
	c := &Card{}
	var colours, identity int16
	err := row.Scan(
		&c.ID, &c.Name, &c.Slug, &c.Layout, &c.ManaValue, &colours, &identity,
		&c.ColourCount, &c.ColourIdentityCount, &c.IsReservedList, &c.ScryfallOracleID,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	c.Colours = colour.Set(colours)
	c.ColourIdentity = colour.Set(identity)
	return c, nil
}

func (repository *PostgresRepository) GetCard(context context.Context, id int64) (*Card, error) {
	query := cardQuery(fmt.Sprintf("c.%s = $1", schema.CardsCard.ID))
	c, err := scanCard(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_card")
	}
	return c, nil
}

func (repository *PostgresRepository) GetCardBySlug(context context.Context, slug string) (*Card, error) {
	query := cardQuery(fmt.Sprintf("c.%s = $1", schema.CardsCard.Slug))
	c, err := scanCard(repository.db.QueryRow(context, query, slug))
	if err != nil {
		return nil, dberr.Wrap(err, "get_card_by_slug")
	}
	return c, nil
}

// condition renders the predicate for the requested scope. Printing scope
// predicates reference the printing alias "p" and hold per printing, so the
// card qualifies when any of its printings satisfies them.
func condition(pred predicate.Predicate, scope predicate.Scope, binder *predicate.Binder) string {
	clause := pred.SQL(binder)
	if scope == predicate.ScopePrinting {
		clause = fmt.Sprintf("c.%s IN (SELECT p.%s FROM %s p WHERE %s)",
			schema.CardsCard.ID, schema.CardsCardPrinting.CardID, schema.CardsCardPrinting.Table, clause)
	}
	return clause
}

func (repository *PostgresRepository) Search(context context.Context, pred predicate.Predicate, scope predicate.Scope, orderBy []string, limit, offset int) ([]*Card, error) {
	binder := &predicate.Binder{}
	query := cardQuery(condition(pred, scope, binder))
	if len(orderBy) > 0 {
		query += " ORDER BY " + strings.Join(orderBy, ", ")
	}
	query += fmt.Sprintf(" LIMIT %s OFFSET %s", binder.Bind(limit), binder.Bind(offset))

	rows, err := repository.db.Query(context, query, binder.Values()...)
	if err != nil {
		return nil, dberr.Wrap(err, "search_cards")
	}
	defer rows.Close()

	var cards []*Card
	for rows.Next() {
		c, err := scanCard(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_card")
		}
		cards = append(cards, c)
	}
	return cards, dberr.Wrap(rows.Err(), "search_cards")
}

func (repository *PostgresRepository) Count(context context.Context, pred predicate.Predicate, scope predicate.Scope) (int, error) {
	binder := &predicate.Binder{}
	query := fmt.Sprintf("SELECT count(*) FROM %s c WHERE %s",
		schema.CardsCard.Table, condition(pred, scope, binder))

	var total int
	if err := repository.db.QueryRow(context, query, binder.Values()...).Scan(&total); err != nil {
		return 0, dberr.Wrap(err, "count_cards")
	}
	return total, nil
}

func (repository *PostgresRepository) ListCards(context context.Context) ([]*Card, error) {
	query := cardQuery("TRUE") + fmt.Sprintf(" ORDER BY c.%s", schema.CardsCard.ID)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_cards")
	}
	defer rows.Close()

	var cards []*Card
	for rows.Next() {
		c, err := scanCard(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_card")
		}
		cards = append(cards, c)
	}
	return cards, dberr.Wrap(rows.Err(), "list_cards")
}

func cardIndex(cards []*Card) (map[int64]*Card, []int64) {
	index := make(map[int64]*Card, len(cards))
	ids := make([]int64, 0, len(cards))
	for _, c := range cards {
		index[c.ID] = c
		ids = append(ids, c.ID)
	}
	return index, ids
}

func (repository *PostgresRepository) AttachFaces(context context.Context, cards []*Card) error {
	if len(cards) == 0 {
		return nil
	}
	index, ids := cardIndex(cards)

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s f
		WHERE f.%s = ANY($1)
		ORDER BY f.%s, f.%s NULLS FIRST, f.%s
	`,
		prefixed("f", schema.CardsCardFace.Columns()), schema.CardsCardFace.Table,
		schema.CardsCardFace.CardID, schema.CardsCardFace.CardID,
		schema.CardsCardFace.Side, schema.CardsCardFace.ID,
	)

	rows, err := repository.db.Query(context, query, ids)
	if err != nil {
		return dberr.Wrap(err, "attach_faces")
	}
	defer rows.Close()

	for rows.Next() {
		f := &Face{}
		var colours, indicator, sortKey int16
		err := rows.Scan(
			&f.ID, &f.CardID, &f.Name, &f.Side, &f.ManaCost, &f.ManaValue, &colours,
			&indicator, &f.ColourCount, &sortKey, &f.Power, &f.NumPower, &f.Toughness,
			&f.NumToughness, &f.Loyalty, &f.NumLoyalty, &f.RulesText, &f.TypeLine,
			&f.Types, &f.Subtypes, &f.Supertypes, &f.HandModifier, &f.LifeModifier,
			&f.CreatedAt, &f.UpdatedAt,
		)
		if err != nil {
			return dberr.Wrap(err, "scan_card_face")
		}
		f.Colours = colour.Set(colours)
		f.ColourIndicator = colour.Set(indicator)
		f.ColourSortKey = int(sortKey)
		if owner, ok := index[f.CardID]; ok {
			owner.Faces = append(owner.Faces, f)
		}
	}
	return dberr.Wrap(rows.Err(), "attach_faces")
}

func (repository *PostgresRepository) AttachPrintings(context context.Context, cards []*Card) error {
	if len(cards) == 0 {
		return nil
	}
	index, ids := cardIndex(cards)

	query := fmt.Sprintf(`
		SELECT %s, %s, %s
		FROM %s p
		JOIN %s s ON s.%s = p.%s
		JOIN %s r ON r.%s = p.%s
		WHERE p.%s = ANY($1)
		ORDER BY s.%s, p.%s NULLS LAST, p.%s
	`,
		prefixed("p", schema.CardsCardPrinting.Columns()),
		prefixed("s", schema.CardsCardSet.Columns()),
		prefixed("r", schema.CardsRarity.Columns()),
		schema.CardsCardPrinting.Table,
		schema.CardsCardSet.Table, schema.CardsCardSet.ID, schema.CardsCardPrinting.SetID,
		schema.CardsRarity.Table, schema.CardsRarity.ID, schema.CardsCardPrinting.RarityID,
		schema.CardsCardPrinting.CardID,
		schema.CardsCardSet.ReleaseDate, schema.CardsCardPrinting.NumericalNumber, schema.CardsCardPrinting.ID,
	)

	rows, err := repository.db.Query(context, query, ids)
	if err != nil {
		return dberr.Wrap(err, "attach_printings")
	}
	defer rows.Close()

	for rows.Next() {
		p := &Printing{Set: &set.Set{}, Rarity: &set.Rarity{}}
		err := rows.Scan(
			&p.ID, &p.CardID, &p.SetID, &p.RarityID, &p.Number, &p.NumericalNumber,
			&p.Artist, &p.FlavourText, &p.Watermark, &p.FrameVersion, &p.BorderColour,
			&p.IsReprint, &p.IsPromo, &p.ScryfallID, &p.CreatedAt, &p.UpdatedAt,
			&p.Set.ID, &p.Set.BlockID, &p.Set.Code, &p.Set.Name, &p.Set.Type,
			&p.Set.ReleaseDate, &p.Set.CardCount, &p.Set.IsOnlineOnly, &p.Set.IsFoilOnly,
			&p.Set.CreatedAt, &p.Set.UpdatedAt,
			&p.Rarity.ID, &p.Rarity.Symbol, &p.Rarity.Name, &p.Rarity.DisplayOrder,
		)
		if err != nil {
			return dberr.Wrap(err, "scan_card_printing")
		}
		if owner, ok := index[p.CardID]; ok {
			owner.Printings = append(owner.Printings, p)
		}
	}
	return dberr.Wrap(rows.Err(), "attach_printings")
}

func (repository *PostgresRepository) AttachOwnership(context context.Context, cards []*Card, ownerID string) error {
	if len(cards) == 0 {
		return nil
	}
	index, ids := cardIndex(cards)

	query := fmt.Sprintf(`
		SELECT p.%s, p.%s, COALESCE(SUM(o.%s), 0)
		FROM %s o
		JOIN %s p ON p.%s = o.%s
		WHERE o.%s = $1 AND p.%s = ANY($2)
		GROUP BY p.%s, p.%s
	`,
		schema.CardsCardPrinting.ID, schema.CardsCardPrinting.CardID, schema.UsersOwnedCard.Count,
		schema.UsersOwnedCard.Table,
		schema.CardsCardPrinting.Table, schema.CardsCardPrinting.ID, schema.UsersOwnedCard.PrintingID,
		schema.UsersOwnedCard.OwnerID, schema.CardsCardPrinting.CardID,
		schema.CardsCardPrinting.ID, schema.CardsCardPrinting.CardID,
	)

	rows, err := repository.db.Query(context, query, ownerID, ids)
	if err != nil {
		return dberr.Wrap(err, "attach_ownership")
	}
	defer rows.Close()

	counts := make(map[int64]int)
	for rows.Next() {
		var printingID, cardID int64
		var count int
		if err := rows.Scan(&printingID, &cardID, &count); err != nil {
			return dberr.Wrap(err, "scan_ownership")
		}
		counts[printingID] = count
		if owner, ok := index[cardID]; ok {
			owner.OwnedCount += count
		}
	}
	if err := rows.Err(); err != nil {
		return dberr.Wrap(err, "attach_ownership")
	}

	for _, c := range cards {
		for _, p := range c.Printings {
			p.OwnedCount = counts[p.ID]
		}
	}
	return nil
}
