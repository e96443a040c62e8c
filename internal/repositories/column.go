package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-profit-tracker/internal/models"
)

// ColumnWriteRepository handles column write operations
type ColumnWriteRepository struct {
	db *sqlx.DB
}

func NewColumnWriteRepository(db *sqlx.DB) *ColumnWriteRepository {
	return &ColumnWriteRepository{db: db}
}

// AddEntry creates the column on first use and appends entry to it in one
// transaction. The unit is only recorded when the column is created.
func (r *ColumnWriteRepository) AddEntry(ctx context.Context, userID uuid.UUID, columnName string, unit *string, entry models.ColumnEntryDB) (*models.ColumnEntryDB, error) {
	const upsertColumn = `
		INSERT INTO columns (user_id, column_name, unit, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		ON CONFLICT (user_id, column_name)
		DO UPDATE SET updated_at = NOW()
		RETURNING column_id
	`
	const insertEntry = `
		INSERT INTO column_entries (entry_id, column_id, value_number, value_text, recorded_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		var columnID uuid.UUID
		err := tx.GetContext(ctx, &columnID, upsertColumn, userID, columnName, unit)
		logQuery(upsertColumn, []any{userID, columnName, unit}, columnID, err)
		if err != nil {
			return err
		}

		entry.ColumnID = columnID
		args := []any{entry.EntryID, entry.ColumnID, entry.ValueNumber, entry.ValueText, entry.RecordedAt}
		_, err = tx.ExecContext(ctx, insertEntry, args...)
		logQuery(insertEntry, args, entry.EntryID, err)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &entry, nil
}

// DeleteEntries keeps the entries of the column recorded inside rng and removes
// all others. With an empty range every entry is removed. It returns the number
// of removed entries, or sql.ErrNoRows when the column does not exist.
func (r *ColumnWriteRepository) DeleteEntries(ctx context.Context, userID uuid.UUID, columnName string, rng *models.DateRange) (int64, error) {
	const lockColumn = `
		SELECT column_id
		FROM columns
		WHERE user_id = $1 AND column_name = $2
		FOR UPDATE
	`
	const deleteEntries = `
		DELETE FROM column_entries
		WHERE column_id = $1
		  AND NOT (($2::TIMESTAMPTZ IS NULL OR recorded_at >= $2)
		       AND ($3::TIMESTAMPTZ IS NULL OR recorded_at <= $3))
	`

	if rng == nil {
		rng = &models.DateRange{}
	}

	var removed int64
	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		var columnID uuid.UUID
		err := tx.GetContext(ctx, &columnID, lockColumn, userID, columnName)
		logQuery(lockColumn, []any{userID, columnName}, columnID, err)
		if err != nil {
			return err
		}

		args := []any{columnID, rng.Start, rng.End}
		res, err := tx.ExecContext(ctx, deleteEntries, args...)
		if res != nil {
			removed, _ = res.RowsAffected()
		}
		logQuery(deleteEntries, args, removed, err)
		return err
	})

	return removed, err
}

// ColumnReadRepository handles column read operations
type ColumnReadRepository struct {
	db *sqlx.DB
}

func NewColumnReadRepository(db *sqlx.DB) *ColumnReadRepository {
	return &ColumnReadRepository{db: db}
}

// GetByName returns the column with all of its entries, or nil when the user
// has no column of that name.
func (r *ColumnReadRepository) GetByName(ctx context.Context, userID uuid.UUID, columnName string) (*models.ColumnDB, error) {
	const columnQuery = `
		SELECT column_id, user_id, column_name, unit, created_at, updated_at
		FROM columns
		WHERE user_id = $1 AND column_name = $2
	`
	const entriesQuery = `
		SELECT entry_id, column_id, value_number, value_text, recorded_at
		FROM column_entries
		WHERE column_id = $1
		ORDER BY position
	`

	var column models.ColumnDB
	err := r.db.GetContext(ctx, &column, columnQuery, userID, columnName)
	logQuery(columnQuery, []any{userID, columnName}, column.ColumnID, err)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	column.Entries = []models.ColumnEntryDB{}
	err = r.db.SelectContext(ctx, &column.Entries, entriesQuery, column.ColumnID)
	logQuery(entriesQuery, []any{column.ColumnID}, len(column.Entries), err)
	if err != nil {
		return nil, err
	}

	return &column, nil
}

// ListByUser returns every column of the user with its entries, ordered by name.
func (r *ColumnReadRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.ColumnDB, error) {
	const columnsQuery = `
		SELECT column_id, user_id, column_name, unit, created_at, updated_at
		FROM columns
		WHERE user_id = $1
		ORDER BY column_name
	`
	const entriesQuery = `
		SELECT e.entry_id, e.column_id, e.value_number, e.value_text, e.recorded_at
		FROM column_entries e
		JOIN columns c ON c.column_id = e.column_id
		WHERE c.user_id = $1
		ORDER BY e.position
	`

	columns := []models.ColumnDB{}
	err := r.db.SelectContext(ctx, &columns, columnsQuery, userID)
	logQuery(columnsQuery, []any{userID}, len(columns), err)
	if err != nil {
		return nil, err
	}

	var entries []models.ColumnEntryDB
	err = r.db.SelectContext(ctx, &entries, entriesQuery, userID)
	logQuery(entriesQuery, []any{userID}, len(entries), err)
	if err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]int, len(columns))
	for i := range columns {
		columns[i].Entries = []models.ColumnEntryDB{}
		byID[columns[i].ColumnID] = i
	}
	for _, e := range entries {
		if i, ok := byID[e.ColumnID]; ok {
			columns[i].Entries = append(columns[i].Entries, e)
		}
	}

	return columns, nil
}
