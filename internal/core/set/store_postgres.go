// Copyright (c) 2026 Tolaria. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package set

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

func setQuery(condition string) string {
	return fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s
	`,
		schema.CardsCardSet.ID, schema.CardsCardSet.BlockID, schema.CardsCardSet.Code,
		schema.CardsCardSet.Name, schema.CardsCardSet.Type, schema.CardsCardSet.ReleaseDate,
		schema.CardsCardSet.CardCount, schema.CardsCardSet.IsOnlineOnly, schema.CardsCardSet.IsFoilOnly,
		schema.CardsCardSet.CreatedAt, schema.CardsCardSet.UpdatedAt,
		schema.CardsCardSet.Table, condition,
	)
}

func scanSet(row interface{ Scan(...any) error }) (*Set, error) {
	s := &Set{}
	err := row.Scan(
		&s.ID, &s.BlockID, &s.Code, &s.Name, &s.Type, &s.ReleaseDate,
		&s.CardCount, &s.IsOnlineOnly, &s.IsFoilOnly, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (repository *PostgresRepository) ListSets(context context.Context) ([]*Set, error) {
	query := setQuery("TRUE") + fmt.Sprintf(" ORDER BY %s DESC", schema.CardsCardSet.ReleaseDate)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_sets")
	}
	defer rows.Close()

	var sets []*Set
	for rows.Next() {
		s, err := scanSet(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_set")
		}
		sets = append(sets, s)
	}
	return sets, nil
}

func (repository *PostgresRepository) GetSetByCode(context context.Context, code string) (*Set, error) {
	query := setQuery(fmt.Sprintf("LOWER(%s) = LOWER($1)", schema.CardsCardSet.Code))
	s, err := scanSet(repository.db.QueryRow(context, query, code))
	if err != nil {
		return nil, dberr.Wrap(err, "get_set_by_code")
	}
	return s, nil
}

func (repository *PostgresRepository) GetSetByName(context context.Context, name string) (*Set, error) {
	query := setQuery(fmt.Sprintf("LOWER(%s) = LOWER($1)", schema.CardsCardSet.Name))
	s, err := scanSet(repository.db.QueryRow(context, query, name))
	if err != nil {
		return nil, dberr.Wrap(err, "get_set_by_name")
	}
	return s, nil
}

func (repository *PostgresRepository) FindSetsByName(context context.Context, fragment string) ([]*Set, error) {
	query := setQuery(fmt.Sprintf("%s ILIKE $1", schema.CardsCardSet.Name)) +
		fmt.Sprintf(" ORDER BY %s", schema.CardsCardSet.ReleaseDate)

	rows, err := repository.db.Query(context, query, "%"+fragment+"%")
	if err != nil {
		return nil, dberr.Wrap(err, "find_sets_by_name")
	}
	defer rows.Close()

	var sets []*Set
	for rows.Next() {
		s, err := scanSet(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_set")
		}
		sets = append(sets, s)
	}
	return sets, nil
}

func blockQuery(condition string) string {
	return fmt.Sprintf(`
		SELECT %s, %s, %s FROM %s WHERE %s
	`,
		schema.CardsCardBlock.ID, schema.CardsCardBlock.Name, schema.CardsCardBlock.ReleaseDate,
		schema.CardsCardBlock.Table, condition,
	)
}

func (repository *PostgresRepository) GetBlockByName(context context.Context, name string) (*Block, error) {
	query := blockQuery(fmt.Sprintf("LOWER(%s) = LOWER($1)", schema.CardsCardBlock.Name))

	b := &Block{}
	err := repository.db.QueryRow(context, query, name).Scan(&b.ID, &b.Name, &b.ReleaseDate)
	if err != nil {
		return nil, dberr.Wrap(err, "get_block_by_name")
	}
	return b, nil
}

func (repository *PostgresRepository) FindBlocksByName(context context.Context, fragment string) ([]*Block, error) {
	query := blockQuery(fmt.Sprintf("%s ILIKE $1", schema.CardsCardBlock.Name))

	rows, err := repository.db.Query(context, query, "%"+fragment+"%")
	if err != nil {
		return nil, dberr.Wrap(err, "find_blocks_by_name")
	}
	defer rows.Close()

	var blocks []*Block
	for rows.Next() {
		b := &Block{}
		if err := rows.Scan(&b.ID, &b.Name, &b.ReleaseDate); err != nil {
			return nil, dberr.Wrap(err, "scan_block")
		}
		blocks = append(blocks, b)
	}
	return blocks, nil
}

func (repository *PostgresRepository) GetBlock(context context.Context, id int64) (*Block, error) {
	query := blockQuery(fmt.Sprintf("%s = $1", schema.CardsCardBlock.ID))

	b := &Block{}
	err := repository.db.QueryRow(context, query, id).Scan(&b.ID, &b.Name, &b.ReleaseDate)
	if err != nil {
		return nil, dberr.Wrap(err, "get_block")
	}
	return b, nil
}

func (repository *PostgresRepository) GetFormatByName(context context.Context, name string) (*Format, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s FROM %s WHERE LOWER(%s) = LOWER($1)
	`,
		schema.CardsFormat.ID, schema.CardsFormat.Name, schema.CardsFormat.Code,
		schema.CardsFormat.Table, schema.CardsFormat.Name,
	)

	f := &Format{}
	err := repository.db.QueryRow(context, query, name).Scan(&f.ID, &f.Name, &f.Code)
	if err != nil {
		return nil, dberr.Wrap(err, "get_format_by_name")
	}
	return f, nil
}

func (repository *PostgresRepository) GetRarity(context context.Context, value string) (*Rarity, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s FROM %s
		WHERE LOWER(%s) = LOWER($1) OR LOWER(%s) = LOWER($1)
	`,
		schema.CardsRarity.ID, schema.CardsRarity.Symbol, schema.CardsRarity.Name,
		schema.CardsRarity.DisplayOrder, schema.CardsRarity.Table,
		schema.CardsRarity.Symbol, schema.CardsRarity.Name,
	)

	r := &Rarity{}
	err := repository.db.QueryRow(context, query, value).Scan(&r.ID, &r.Symbol, &r.Name, &r.DisplayOrder)
	if err != nil {
		return nil, dberr.Wrap(err, "get_rarity")
	}
	return r, nil
}
