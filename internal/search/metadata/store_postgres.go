// Copyright (c) 2026 Tolaria. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package metadata

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/taibuivan/tolaria/internal/platform/database/schema"
	"github.com/taibuivan/tolaria/internal/platform/dberr"
	"github.com/taibuivan/tolaria/pkg/mana"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// faceColumns is the persisted column order for face records: key, symbol
// counts, generic, produces flags, stripped text.
var faceColumns = func() []string {
	table := schema.CardsFaceMetadata
	columns := []string{table.FaceID}
	for _, symbol := range mana.Symbols {
		columns = append(columns, table.SymbolColumn(symbol))
	}
	columns = append(columns, table.GenericCount)
	for _, code := range ProducesCodes {
		columns = append(columns, table.ProducesColumn(code))
	}
	columns = append(columns, table.RulesNoReminders)
	return columns
}()

func (repository *PostgresRepository) ListFaceRecords(context context.Context) (map[int64]FaceRecord, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s`,
		strings.Join(faceColumns, ", "), schema.CardsFaceMetadata.Table,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_face_metadata")
	}
	defer rows.Close()

	records := make(map[int64]FaceRecord)
	for rows.Next() {
		record := FaceRecord{
			SymbolCounts: make(map[string]int, len(mana.Symbols)),
			Produces:     make(map[string]bool, len(ProducesCodes)),
		}

		counts := make([]int, len(mana.Symbols))
		flags := make([]bool, len(ProducesCodes))

		targets := []any{&record.FaceID}
		for i := range counts {
			targets = append(targets, &counts[i])
		}
		targets = append(targets, &record.GenericCount)
		for i := range flags {
			targets = append(targets, &flags[i])
		}
		targets = append(targets, &record.RulesNoReminders)

		if err := rows.Scan(targets...); err != nil {
			return nil, dberr.Wrap(err, "scan_face_metadata")
		}
		for i, symbol := range mana.Symbols {
			record.SymbolCounts[symbol] = counts[i]
		}
		for i, code := range ProducesCodes {
			record.Produces[code] = flags[i]
		}
		records[record.FaceID] = record
	}

	return records, nil
}

func (repository *PostgresRepository) UpsertFaceRecord(context context.Context, record FaceRecord) error {
	placeholders := make([]string, len(faceColumns))
	updates := make([]string, 0, len(faceColumns)-1)
	for i, column := range faceColumns {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		if column != schema.CardsFaceMetadata.FaceID {
			updates = append(updates, fmt.Sprintf("%s = EXCLUDED.%s", column, column))
		}
	}
	updates = append(updates, fmt.Sprintf("%s = NOW()", schema.CardsFaceMetadata.UpdatedAt))

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s)
		VALUES (%s, NOW())
		ON CONFLICT (%s) DO UPDATE SET %s
	`,
		schema.CardsFaceMetadata.Table, strings.Join(faceColumns, ", "), schema.CardsFaceMetadata.UpdatedAt,
		strings.Join(placeholders, ", "),
		schema.CardsFaceMetadata.FaceID, strings.Join(updates, ", "),
	)

	args := []any{record.FaceID}
	for _, symbol := range mana.Symbols {
		args = append(args, record.SymbolCounts[symbol])
	}
	args = append(args, record.GenericCount)
	for _, code := range ProducesCodes {
		args = append(args, record.Produces[code])
	}
	args = append(args, record.RulesNoReminders)

	_, err := repository.db.Exec(context, query, args...)
	return dberr.Wrap(err, "upsert_face_metadata")
}

func (repository *PostgresRepository) ListCardRecords(context context.Context) (map[int64]CardRecord, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s, %s FROM %s`,
		schema.CardsCardMetadata.CardID, schema.CardsCardMetadata.SuperSortKey,
		schema.CardsCardMetadata.IsCommander, schema.CardsCardMetadata.IsVanilla,
		schema.CardsCardMetadata.HasIndicator, schema.CardsCardMetadata.Table,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_card_metadata")
	}
	defer rows.Close()

	records := make(map[int64]CardRecord)
	for rows.Next() {
		var record CardRecord
		if err := rows.Scan(
			&record.CardID, &record.SuperSortKey,
			&record.IsCommander, &record.IsVanilla, &record.HasIndicator,
		); err != nil {
			return nil, dberr.Wrap(err, "scan_card_metadata")
		}
		records[record.CardID] = record
	}

	return records, nil
}

func (repository *PostgresRepository) UpsertCardRecord(context context.Context, record CardRecord) error {
	table := schema.CardsCardMetadata
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT (%s) DO UPDATE SET
			%s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = NOW()
	`,
		table.Table, table.CardID, table.SuperSortKey, table.IsCommander, table.IsVanilla, table.HasIndicator, table.UpdatedAt,
		table.CardID,
		table.SuperSortKey, table.SuperSortKey, table.IsCommander, table.IsCommander,
		table.IsVanilla, table.IsVanilla, table.HasIndicator, table.HasIndicator,
		table.UpdatedAt,
	)

	_, err := repository.db.Exec(context, query,
		record.CardID, record.SuperSortKey, record.IsCommander, record.IsVanilla, record.HasIndicator,
	)
	return dberr.Wrap(err, "upsert_card_metadata")
}
