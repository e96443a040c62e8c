package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-profit-tracker/internal/models"
)

var weekRowColumns = []string{
	"weekly_profit_id", "user_id", "week_start", "week_end", "total_profit", "notes", "created_at", "updated_at",
}

func TestProfitWriteRepository_AddEntry_Mock(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProfitWriteRepository(db)

	userID, weekID := uuid.New(), uuid.New()
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(7*24*time.Hour - time.Millisecond)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO weekly_profits")).
		WithArgs(userID, start, end, "").
		WillReturnRows(sqlmock.NewRows([]string{"weekly_profit_id"}).AddRow(weekID.String()))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO weekly_profit_entries")).
		WithArgs("01P1", weekID, sqlmock.AnyArg(), sqlmock.AnyArg(), "coffee").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COALESCE(SUM(amount), 0)")).
		WithArgs(weekID).
		WillReturnRows(sqlmock.NewRows(weekRowColumns).
			AddRow(weekID.String(), userID.String(), start, end, "150.5", "", start, start))
	mock.ExpectCommit()

	entry := models.ProfitEntryDB{EntryID: "01P1", EntryDate: start, Amount: decimal.RequireFromString("150.5"), Description: "coffee"}
	week, err := repo.AddEntry(context.Background(), userID, start, end, "", entry)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("150.5").Equal(week.TotalProfit))
	assert.Equal(t, weekID, week.WeeklyProfitID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfitWriteRepository_DeleteEntry_NotFound_Mock(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProfitWriteRepository(db)

	userID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("DELETE FROM weekly_profit_entries")).
		WithArgs(userID, "missing").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	week, err := repo.DeleteEntry(context.Background(), userID, "missing")
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.Nil(t, week)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfitRepositories_Postgres(t *testing.T) {
	db := setupPostgresContainer(t)
	ctx := context.Background()

	users := NewUserWriteRepository(db)
	userID, err := users.Create(ctx, "erin", "erin@example.com", "hash")
	require.NoError(t, err)
	otherID, err := users.Create(ctx, "frank", "frank@example.com", "hash")
	require.NoError(t, err)

	writer := NewProfitWriteRepository(db)
	reader := NewProfitReadRepository(db)

	week1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	week2 := week1.AddDate(0, 0, 7)
	endOf := func(start time.Time) time.Time { return start.Add(7*24*time.Hour - time.Millisecond) }

	add := func(id string, start time.Time, amount, notes string) *models.WeeklyProfitDB {
		t.Helper()
		week, err := writer.AddEntry(ctx, userID, start, endOf(start), notes, models.ProfitEntryDB{
			EntryID:   id,
			EntryDate: start.Add(time.Hour),
			Amount:    decimal.RequireFromString(amount),
		})
		require.NoError(t, err)
		return week
	}

	add("01HP00000000000000000000A1", week1, "100", "first")
	week := add("01HP00000000000000000000A2", week1, "50", "")
	assert.True(t, decimal.NewFromInt(150).Equal(week.TotalProfit))
	assert.Equal(t, "first", week.Notes)

	add("01HP00000000000000000000B1", week2, "-20.25", "second")

	weeks, err := reader.ListByUser(ctx, userID, nil)
	require.NoError(t, err)
	require.Len(t, weeks, 2)
	assert.True(t, week1.Equal(weeks[0].WeekStart))
	assert.Len(t, weeks[0].Entries, 2)
	assert.True(t, decimal.RequireFromString("-20.25").Equal(weeks[1].TotalProfit))

	end := endOf(week1)
	weeks, err = reader.ListByUser(ctx, userID, &models.DateRange{End: &end})
	require.NoError(t, err)
	require.Len(t, weeks, 1)

	// another user cannot delete the entry
	_, err = writer.DeleteEntry(ctx, otherID, "01HP00000000000000000000A1")
	assert.ErrorIs(t, err, sql.ErrNoRows)

	week, err = writer.DeleteEntry(ctx, userID, "01HP00000000000000000000A2")
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(100).Equal(week.TotalProfit))

	t.Run("ConcurrentAppendsKeepTotal", func(t *testing.T) {
		week3 := week2.AddDate(0, 0, 7)

		var wg sync.WaitGroup
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, err := writer.AddEntry(ctx, userID, week3, endOf(week3), "", models.ProfitEntryDB{
					EntryID:   fmt.Sprintf("01HPCONC%018d", i),
					EntryDate: week3,
					Amount:    decimal.NewFromInt(10),
				})
				assert.NoError(t, err)
			}(i)
		}
		wg.Wait()

		weeks, err := reader.ListByUser(ctx, userID, &models.DateRange{Start: &week3})
		require.NoError(t, err)
		require.Len(t, weeks, 1)
		assert.Len(t, weeks[0].Entries, 10)
		assert.True(t, decimal.NewFromInt(100).Equal(weeks[0].TotalProfit))
	})

	t.Run("AmountsKeepFullPrecision", func(t *testing.T) {
		week4 := week2.AddDate(0, 0, 14)

		for i, amount := range []string{"0.12345", "12345678901234567890.5"} {
			_, err := writer.AddEntry(ctx, userID, week4, endOf(week4), "", models.ProfitEntryDB{
				EntryID:   fmt.Sprintf("01HPPREC%018d", i),
				EntryDate: week4,
				Amount:    decimal.RequireFromString(amount),
			})
			require.NoError(t, err)
		}

		weeks, err := reader.ListByUser(ctx, userID, &models.DateRange{Start: &week4})
		require.NoError(t, err)
		require.Len(t, weeks, 1)
		require.Len(t, weeks[0].Entries, 2)
		assert.True(t, decimal.RequireFromString("0.12345").Equal(weeks[0].Entries[0].Amount))
		assert.True(t, decimal.RequireFromString("12345678901234567890.62345").Equal(weeks[0].TotalProfit))
	})
}
