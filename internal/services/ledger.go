package services

//go:generate mockgen -source=ledger.go -destination=ledger_mock.go -package=services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"

	"github.com/sbilibin2017/gw-profit-tracker/internal/aggregation"
	"github.com/sbilibin2017/gw-profit-tracker/internal/logger"
	"github.com/sbilibin2017/gw-profit-tracker/internal/models"
)

// ErrColumnNotFound is returned when the user has no column of the given name.
var ErrColumnNotFound = errors.New("column not found")

// ColumnWriter defines write operations for columns.
type ColumnWriter interface {
	AddEntry(ctx context.Context, userID uuid.UUID, columnName string, unit *string, entry models.ColumnEntryDB) (*models.ColumnEntryDB, error)
	DeleteEntries(ctx context.Context, userID uuid.UUID, columnName string, rng *models.DateRange) (int64, error)
}

// ColumnReader defines read-only operations for columns.
type ColumnReader interface {
	GetByName(ctx context.Context, userID uuid.UUID, columnName string) (*models.ColumnDB, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.ColumnDB, error)
}

// ColumnView is a column with its entries narrowed to a date range and the
// statistics over those entries.
type ColumnView struct {
	ColumnName string                  `json:"columnName"`
	Unit       *string                 `json:"unit"`
	Entries    []models.ColumnEntryDB  `json:"entries"`
	Statistics *aggregation.Statistics `json:"statistics"`
}

// LedgerService handles the custom columns of a user.
type LedgerService struct {
	writer ColumnWriter
	reader ColumnReader
	cache  SummaryCache
	now    func() time.Time
}

// NewLedgerService creates a new LedgerService. cache may be nil.
func NewLedgerService(writer ColumnWriter, reader ColumnReader, cache SummaryCache) *LedgerService {
	return &LedgerService{
		writer: writer,
		reader: reader,
		cache:  cache,
		now:    time.Now,
	}
}

// AddColumnEntry appends value to the column, creating the column on first
// use. A nil date means now. unit is only kept when the column is created.
func (svc *LedgerService) AddColumnEntry(ctx context.Context, userID uuid.UUID, columnName string, value models.EntryValue, date *time.Time, unit *string) (*models.ColumnEntryDB, error) {
	if value.IsZero() {
		return nil, models.ErrUnsupportedValue
	}

	recordedAt := svc.now()
	if date != nil {
		recordedAt = *date
	}

	entry := models.ColumnEntryDB{
		EntryID:    ulid.MustNew(ulid.Timestamp(svc.now()), ulid.DefaultEntropy()).String(),
		RecordedAt: recordedAt.UTC(),
	}
	entry.SetValue(value)

	saved, err := svc.writer.AddEntry(ctx, userID, columnName, unit, entry)
	if err != nil {
		logger.Log.Errorw("failed to add column entry", "userID", userID, "column", columnName, "err", err)
		return nil, err
	}

	invalidateSummary(ctx, svc.cache, userID)
	return saved, nil
}

// GetColumnEntries returns the column with entries inside rng.
func (svc *LedgerService) GetColumnEntries(ctx context.Context, userID uuid.UUID, columnName string, rng *models.DateRange) (*ColumnView, error) {
	column, err := svc.reader.GetByName(ctx, userID, columnName)
	if err != nil {
		logger.Log.Errorw("failed to get column", "userID", userID, "column", columnName, "err", err)
		return nil, err
	}
	if column == nil {
		return nil, ErrColumnNotFound
	}

	view := newColumnView(*column, rng)
	return &view, nil
}

// GetAllColumns returns every column of the user with entries inside rng.
func (svc *LedgerService) GetAllColumns(ctx context.Context, userID uuid.UUID, rng *models.DateRange) ([]ColumnView, error) {
	columns, err := svc.reader.ListByUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list columns", "userID", userID, "err", err)
		return nil, err
	}

	views := make([]ColumnView, 0, len(columns))
	for _, c := range columns {
		views = append(views, newColumnView(c, rng))
	}
	return views, nil
}

// DeleteColumnEntries keeps the entries inside rng and removes the rest.
// Without a range every entry of the column is removed.
func (svc *LedgerService) DeleteColumnEntries(ctx context.Context, userID uuid.UUID, columnName string, rng *models.DateRange) error {
	removed, err := svc.writer.DeleteEntries(ctx, userID, columnName, rng)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrColumnNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to delete column entries", "userID", userID, "column", columnName, "err", err)
		return err
	}

	logger.Log.Infow("column entries deleted", "userID", userID, "column", columnName, "removed", removed)
	invalidateSummary(ctx, svc.cache, userID)
	return nil
}

func newColumnView(c models.ColumnDB, rng *models.DateRange) ColumnView {
	entries := aggregation.FilterEntries(c.Entries, rng)
	return ColumnView{
		ColumnName: c.ColumnName,
		Unit:       c.Unit,
		Entries:    entries,
		Statistics: aggregation.ColumnStatistics(entries),
	}
}
