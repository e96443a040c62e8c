package services_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-profit-tracker/internal/aggregation"
	"github.com/sbilibin2017/gw-profit-tracker/internal/models"
	"github.com/sbilibin2017/gw-profit-tracker/internal/services"
)

func TestSummaryService_NetProfitSummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	day := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

	columns := []models.ColumnDB{{ColumnName: "feed", Entries: []models.ColumnEntryDB{numberEntry("a", 30, day)}}}
	weeks := []models.WeeklyProfitDB{{
		TotalProfit: decimal.NewFromInt(100),
		Entries:     []models.ProfitEntryDB{{EntryDate: day, Amount: decimal.NewFromInt(100)}},
	}}
	want := aggregation.NetProfitReport{
		Daily:   []aggregation.DailyNetProfit{{Date: "2024-01-01", TotalColumnValue: 30, TotalProfit: 100, NetProfit: 70}},
		Overall: aggregation.NetProfitTotals{TotalColumnValue: 30, TotalProfit: 100, NetProfit: 70},
	}

	t.Run("cache hit skips the stores", func(t *testing.T) {
		cache := services.NewMockSummaryCache(ctrl)
		svc := services.NewSummaryService(services.NewMockColumnReader(ctrl), services.NewMockProfitReader(ctrl), cache)

		cache.EXPECT().Get(gomock.Any(), userID).Return(&want, int64(2), nil)

		got, err := svc.NetProfitSummary(context.Background(), userID)
		require.NoError(t, err)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("report mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("cache miss computes and stores", func(t *testing.T) {
		columnReader := services.NewMockColumnReader(ctrl)
		profitReader := services.NewMockProfitReader(ctrl)
		cache := services.NewMockSummaryCache(ctrl)
		svc := services.NewSummaryService(columnReader, profitReader, cache)

		cache.EXPECT().Get(gomock.Any(), userID).Return(nil, int64(3), nil)
		columnReader.EXPECT().ListByUser(gomock.Any(), userID).Return(columns, nil)
		profitReader.EXPECT().ListByUser(gomock.Any(), userID, nil).Return(weeks, nil)
		cache.EXPECT().Set(gomock.Any(), userID, int64(3), want).Return(nil)

		got, err := svc.NetProfitSummary(context.Background(), userID)
		require.NoError(t, err)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("report mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("cache read failure computes without storing", func(t *testing.T) {
		columnReader := services.NewMockColumnReader(ctrl)
		profitReader := services.NewMockProfitReader(ctrl)
		cache := services.NewMockSummaryCache(ctrl)
		svc := services.NewSummaryService(columnReader, profitReader, cache)

		cache.EXPECT().Get(gomock.Any(), userID).Return(nil, int64(0), errors.New("redis down"))
		columnReader.EXPECT().ListByUser(gomock.Any(), userID).Return(columns, nil)
		profitReader.EXPECT().ListByUser(gomock.Any(), userID, nil).Return(weeks, nil)

		got, err := svc.NetProfitSummary(context.Background(), userID)
		require.NoError(t, err)
		assert.Equal(t, 70.0, got.Overall.NetProfit)
	})

	t.Run("cache write failure still returns the report", func(t *testing.T) {
		columnReader := services.NewMockColumnReader(ctrl)
		profitReader := services.NewMockProfitReader(ctrl)
		cache := services.NewMockSummaryCache(ctrl)
		svc := services.NewSummaryService(columnReader, profitReader, cache)

		cache.EXPECT().Get(gomock.Any(), userID).Return(nil, int64(0), nil)
		columnReader.EXPECT().ListByUser(gomock.Any(), userID).Return(columns, nil)
		profitReader.EXPECT().ListByUser(gomock.Any(), userID, nil).Return(weeks, nil)
		cache.EXPECT().Set(gomock.Any(), userID, int64(0), gomock.Any()).Return(errors.New("redis down"))

		got, err := svc.NetProfitSummary(context.Background(), userID)
		require.NoError(t, err)
		assert.Equal(t, 70.0, got.Overall.NetProfit)
	})

	t.Run("no cache and no data", func(t *testing.T) {
		columnReader := services.NewMockColumnReader(ctrl)
		profitReader := services.NewMockProfitReader(ctrl)
		svc := services.NewSummaryService(columnReader, profitReader, nil)

		columnReader.EXPECT().ListByUser(gomock.Any(), userID).Return(nil, nil)
		profitReader.EXPECT().ListByUser(gomock.Any(), userID, nil).Return(nil, nil)

		got, err := svc.NetProfitSummary(context.Background(), userID)
		require.NoError(t, err)
		assert.Empty(t, got.Daily)
		assert.Equal(t, aggregation.NetProfitTotals{}, got.Overall)
	})

	t.Run("store error", func(t *testing.T) {
		columnReader := services.NewMockColumnReader(ctrl)
		svc := services.NewSummaryService(columnReader, services.NewMockProfitReader(ctrl), nil)

		columnReader.EXPECT().ListByUser(gomock.Any(), userID).Return(nil, errors.New("db down"))

		_, err := svc.NetProfitSummary(context.Background(), userID)
		assert.EqualError(t, err, "db down")
	})
}

// memorySummaryCache is a versioned in-memory SummaryCache.
type memorySummaryCache struct {
	mu       sync.Mutex
	versions map[uuid.UUID]int64
	reports  map[uuid.UUID]memoryReport
}

type memoryReport struct {
	version int64
	report  aggregation.NetProfitReport
}

func newMemorySummaryCache() *memorySummaryCache {
	return &memorySummaryCache{
		versions: make(map[uuid.UUID]int64),
		reports:  make(map[uuid.UUID]memoryReport),
	}
}

func (c *memorySummaryCache) Get(_ context.Context, userID uuid.UUID) (*aggregation.NetProfitReport, int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	version := c.versions[userID]
	r, ok := c.reports[userID]
	if !ok || r.version != version {
		return nil, version, nil
	}
	return &r.report, version, nil
}

func (c *memorySummaryCache) Set(_ context.Context, userID uuid.UUID, version int64, report aggregation.NetProfitReport) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reports[userID] = memoryReport{version: version, report: report}
	return nil
}

func (c *memorySummaryCache) Delete(_ context.Context, userID uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.versions[userID]++
	delete(c.reports, userID)
	return nil
}

func TestSummaryService_NetProfitSummary_EntryAddedDuringComputation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	userID := uuid.New()
	day := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	entry := numberEntry("01HZX", 30, day)

	cache := newMemorySummaryCache()
	columnReader := services.NewMockColumnReader(ctrl)
	profitReader := services.NewMockProfitReader(ctrl)
	columnWriter := services.NewMockColumnWriter(ctrl)

	ledger := services.NewLedgerService(columnWriter, columnReader, cache)
	svc := services.NewSummaryService(columnReader, profitReader, cache)

	columnWriter.EXPECT().AddEntry(gomock.Any(), userID, "feed", nil, gomock.Any()).Return(&entry, nil)
	profitReader.EXPECT().ListByUser(gomock.Any(), userID, nil).Return(nil, nil).Times(2)
	gomock.InOrder(
		// the entry commits right after the first snapshot is taken
		columnReader.EXPECT().ListByUser(gomock.Any(), userID).
			DoAndReturn(func(ctx context.Context, id uuid.UUID) ([]models.ColumnDB, error) {
				_, err := ledger.AddColumnEntry(ctx, id, "feed", models.NumberValue(30), &day, nil)
				require.NoError(t, err)
				return nil, nil
			}),
		columnReader.EXPECT().ListByUser(gomock.Any(), userID).
			Return([]models.ColumnDB{{ColumnName: "feed", Entries: []models.ColumnEntryDB{entry}}}, nil),
	)

	first, err := svc.NetProfitSummary(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, first.Daily)

	second, err := svc.NetProfitSummary(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 30.0, second.Overall.TotalColumnValue)
	assert.Len(t, second.Daily, 1)

	// the fresh report is cached and served from now on
	third, err := svc.NetProfitSummary(ctx, userID)
	require.NoError(t, err)
	if diff := cmp.Diff(second, third); diff != "" {
		t.Errorf("report mismatch (-want +got):\n%s", diff)
	}
}
