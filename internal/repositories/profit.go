package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-profit-tracker/internal/models"
)

const weekColumns = `weekly_profit_id, user_id, week_start, week_end, total_profit, notes, created_at, updated_at`

// recomputeTotal sets total_profit to the sum of the current entries of the week.
const recomputeTotal = `
	UPDATE weekly_profits
	SET total_profit = (
		SELECT COALESCE(SUM(amount), 0)
		FROM weekly_profit_entries
		WHERE weekly_profit_id = $1
	), updated_at = NOW()
	WHERE weekly_profit_id = $1
	RETURNING ` + weekColumns

// ProfitWriteRepository handles weekly profit write operations
type ProfitWriteRepository struct {
	db *sqlx.DB
}

func NewProfitWriteRepository(db *sqlx.DB) *ProfitWriteRepository {
	return &ProfitWriteRepository{db: db}
}

// AddEntry finds or creates the week record of the user, appends entry and
// recomputes the week total, all in one transaction. Non-empty notes replace
// the stored ones. The returned record carries the new total but no entries.
func (r *ProfitWriteRepository) AddEntry(ctx context.Context, userID uuid.UUID, weekStart, weekEnd time.Time, notes string, entry models.ProfitEntryDB) (*models.WeeklyProfitDB, error) {
	const upsertWeek = `
		INSERT INTO weekly_profits (user_id, week_start, week_end, total_profit, notes, created_at, updated_at)
		VALUES ($1, $2, $3, 0, $4, NOW(), NOW())
		ON CONFLICT (user_id, week_start, week_end)
		DO UPDATE SET
			notes = CASE WHEN EXCLUDED.notes <> '' THEN EXCLUDED.notes ELSE weekly_profits.notes END,
			updated_at = NOW()
		RETURNING weekly_profit_id
	`
	const insertEntry = `
		INSERT INTO weekly_profit_entries (entry_id, weekly_profit_id, entry_date, amount, description)
		VALUES ($1, $2, $3, $4, $5)
	`

	var week models.WeeklyProfitDB
	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		var weekID uuid.UUID
		args := []any{userID, weekStart, weekEnd, notes}
		err := tx.GetContext(ctx, &weekID, upsertWeek, args...)
		logQuery(upsertWeek, args, weekID, err)
		if err != nil {
			return err
		}

		args = []any{entry.EntryID, weekID, entry.EntryDate, entry.Amount, entry.Description}
		_, err = tx.ExecContext(ctx, insertEntry, args...)
		logQuery(insertEntry, args, entry.EntryID, err)
		if err != nil {
			return err
		}

		err = tx.GetContext(ctx, &week, recomputeTotal, weekID)
		logQuery(recomputeTotal, []any{weekID}, week.TotalProfit, err)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &week, nil
}

// DeleteEntry removes the entry from whichever week of the user holds it and
// recomputes that week's total in the same transaction. sql.ErrNoRows is
// returned when no week of the user contains the entry.
func (r *ProfitWriteRepository) DeleteEntry(ctx context.Context, userID uuid.UUID, entryID string) (*models.WeeklyProfitDB, error) {
	const deleteEntry = `
		DELETE FROM weekly_profit_entries e
		USING weekly_profits w
		WHERE e.weekly_profit_id = w.weekly_profit_id
		  AND w.user_id = $1
		  AND e.entry_id = $2
		RETURNING e.weekly_profit_id
	`

	var week models.WeeklyProfitDB
	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		var weekID uuid.UUID
		err := tx.GetContext(ctx, &weekID, deleteEntry, userID, entryID)
		logQuery(deleteEntry, []any{userID, entryID}, weekID, err)
		if err != nil {
			return err
		}

		err = tx.GetContext(ctx, &week, recomputeTotal, weekID)
		logQuery(recomputeTotal, []any{weekID}, week.TotalProfit, err)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &week, nil
}

// ProfitReadRepository handles weekly profit read operations
type ProfitReadRepository struct {
	db *sqlx.DB
}

func NewProfitReadRepository(db *sqlx.DB) *ProfitReadRepository {
	return &ProfitReadRepository{db: db}
}

// ListByUser returns the weeks of the user that start at or after rng.Start and
// end at or before rng.End, ascending by week start, each with its entries.
func (r *ProfitReadRepository) ListByUser(ctx context.Context, userID uuid.UUID, rng *models.DateRange) ([]models.WeeklyProfitDB, error) {
	const weeksQuery = `
		SELECT ` + weekColumns + `
		FROM weekly_profits
		WHERE user_id = $1
		  AND ($2::TIMESTAMPTZ IS NULL OR week_start >= $2)
		  AND ($3::TIMESTAMPTZ IS NULL OR week_end <= $3)
		ORDER BY week_start
	`
	const entriesQuery = `
		SELECT e.entry_id, e.weekly_profit_id, e.entry_date, e.amount, e.description
		FROM weekly_profit_entries e
		JOIN weekly_profits w ON w.weekly_profit_id = e.weekly_profit_id
		WHERE w.user_id = $1
		  AND ($2::TIMESTAMPTZ IS NULL OR w.week_start >= $2)
		  AND ($3::TIMESTAMPTZ IS NULL OR w.week_end <= $3)
		ORDER BY e.position
	`

	if rng == nil {
		rng = &models.DateRange{}
	}
	args := []any{userID, rng.Start, rng.End}

	weeks := []models.WeeklyProfitDB{}
	err := r.db.SelectContext(ctx, &weeks, weeksQuery, args...)
	logQuery(weeksQuery, args, len(weeks), err)
	if err != nil {
		return nil, err
	}

	var entries []models.ProfitEntryDB
	err = r.db.SelectContext(ctx, &entries, entriesQuery, args...)
	logQuery(entriesQuery, args, len(entries), err)
	if err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]int, len(weeks))
	for i := range weeks {
		weeks[i].Entries = []models.ProfitEntryDB{}
		byID[weeks[i].WeeklyProfitID] = i
	}
	for _, e := range entries {
		if i, ok := byID[e.WeeklyProfitID]; ok {
			weeks[i].Entries = append(weeks[i].Entries, e)
		}
	}

	return weeks, nil
}
