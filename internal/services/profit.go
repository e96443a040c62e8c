package services

//go:generate mockgen -source=profit.go -destination=profit_mock.go -package=services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-profit-tracker/internal/aggregation"
	"github.com/sbilibin2017/gw-profit-tracker/internal/logger"
	"github.com/sbilibin2017/gw-profit-tracker/internal/models"
)

// ErrProfitEntryNotFound is returned when no week of the user holds the entry.
var ErrProfitEntryNotFound = errors.New("entry not found")

// ProfitWriter defines write operations for weekly profits.
type ProfitWriter interface {
	AddEntry(ctx context.Context, userID uuid.UUID, weekStart, weekEnd time.Time, notes string, entry models.ProfitEntryDB) (*models.WeeklyProfitDB, error)
	DeleteEntry(ctx context.Context, userID uuid.UUID, entryID string) (*models.WeeklyProfitDB, error)
}

// ProfitReader defines read-only operations for weekly profits.
type ProfitReader interface {
	ListByUser(ctx context.Context, userID uuid.UUID, rng *models.DateRange) ([]models.WeeklyProfitDB, error)
}

// ProfitService handles weekly profit bookkeeping.
type ProfitService struct {
	writer ProfitWriter
	reader ProfitReader
	cache  SummaryCache
	now    func() time.Time
}

// NewProfitService creates a new ProfitService. cache may be nil.
func NewProfitService(writer ProfitWriter, reader ProfitReader, cache SummaryCache) *ProfitService {
	return &ProfitService{
		writer: writer,
		reader: reader,
		cache:  cache,
		now:    time.Now,
	}
}

// AddWeeklyProfitEntry books amount into the Monday to Sunday week containing
// date and returns the entry with the new week total.
func (svc *ProfitService) AddWeeklyProfitEntry(ctx context.Context, userID uuid.UUID, date time.Time, amount decimal.Decimal, description, notes string) (*models.ProfitEntryDB, decimal.Decimal, error) {
	weekStart, weekEnd := aggregation.WeekBounds(date)

	entry := models.ProfitEntryDB{
		EntryID:     ulid.MustNew(ulid.Timestamp(svc.now()), ulid.DefaultEntropy()).String(),
		EntryDate:   date.UTC(),
		Amount:      amount,
		Description: description,
	}

	week, err := svc.writer.AddEntry(ctx, userID, weekStart, weekEnd, notes, entry)
	if err != nil {
		logger.Log.Errorw("failed to add profit entry", "userID", userID, "date", date, "err", err)
		return nil, decimal.Zero, err
	}
	entry.WeeklyProfitID = week.WeeklyProfitID

	invalidateSummary(ctx, svc.cache, userID)
	return &entry, week.TotalProfit, nil
}

// GetWeeklyProfitEntries returns the weeks lying inside rng, ascending by week
// start, and their summary.
func (svc *ProfitService) GetWeeklyProfitEntries(ctx context.Context, userID uuid.UUID, rng *models.DateRange) ([]models.WeeklyProfitDB, aggregation.WeeklyStats, error) {
	weeks, err := svc.reader.ListByUser(ctx, userID, rng)
	if err != nil {
		logger.Log.Errorw("failed to list weekly profits", "userID", userID, "err", err)
		return nil, aggregation.WeeklyStats{}, err
	}

	return weeks, aggregation.WeeklySummary(weeks), nil
}

// DeleteWeeklyProfitEntry removes the entry and returns the new total of its week.
func (svc *ProfitService) DeleteWeeklyProfitEntry(ctx context.Context, userID uuid.UUID, entryID string) (decimal.Decimal, error) {
	week, err := svc.writer.DeleteEntry(ctx, userID, entryID)
	if errors.Is(err, sql.ErrNoRows) {
		return decimal.Zero, ErrProfitEntryNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to delete profit entry", "userID", userID, "entryID", entryID, "err", err)
		return decimal.Zero, err
	}

	invalidateSummary(ctx, svc.cache, userID)
	return week.TotalProfit, nil
}
