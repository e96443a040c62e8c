package services

//go:generate mockgen -source=summary.go -destination=summary_mock.go -package=services

import (
	"context"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-profit-tracker/internal/aggregation"
	"github.com/sbilibin2017/gw-profit-tracker/internal/logger"
)

// SummaryCache caches net profit reports per user. Every user has a version
// that Delete advances; Get reports the current version and Set stores a
// report under the version it was computed for, so a report computed before
// an invalidation is never served after it.
type SummaryCache interface {
	Get(ctx context.Context, userID uuid.UUID) (report *aggregation.NetProfitReport, version int64, err error)
	Set(ctx context.Context, userID uuid.UUID, version int64, report aggregation.NetProfitReport) error
	Delete(ctx context.Context, userID uuid.UUID) error
}

// SummaryService computes net profit reports with a read-through cache.
type SummaryService struct {
	columns ColumnReader
	weeks   ProfitReader
	cache   SummaryCache
}

// NewSummaryService creates a new SummaryService. cache may be nil.
func NewSummaryService(columns ColumnReader, weeks ProfitReader, cache SummaryCache) *SummaryService {
	return &SummaryService{
		columns: columns,
		weeks:   weeks,
		cache:   cache,
	}
}

// NetProfitSummary returns the daily net profit of the user over every column
// entry and profit entry. A cached report is served when present; cache
// failures only cost a recomputation. The version is read before the stores
// so a mutation committed during the computation makes the write a no-op.
func (svc *SummaryService) NetProfitSummary(ctx context.Context, userID uuid.UUID) (aggregation.NetProfitReport, error) {
	var (
		version   int64
		cacheable bool
	)
	if svc.cache != nil {
		cached, v, err := svc.cache.Get(ctx, userID)
		switch {
		case err != nil:
			logger.Log.Warnw("summary cache read failed", "userID", userID, "err", err)
		case cached != nil:
			return *cached, nil
		default:
			version, cacheable = v, true
		}
	}

	columns, err := svc.columns.ListByUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list columns", "userID", userID, "err", err)
		return aggregation.NetProfitReport{}, err
	}

	weeks, err := svc.weeks.ListByUser(ctx, userID, nil)
	if err != nil {
		logger.Log.Errorw("failed to list weekly profits", "userID", userID, "err", err)
		return aggregation.NetProfitReport{}, err
	}

	report := aggregation.NetProfitSummary(columns, weeks)

	if cacheable {
		if err := svc.cache.Set(ctx, userID, version, report); err != nil {
			logger.Log.Warnw("summary cache write failed", "userID", userID, "err", err)
		}
	}

	return report, nil
}

// invalidateSummary advances the cache version after a ledger mutation.
func invalidateSummary(ctx context.Context, cache SummaryCache, userID uuid.UUID) {
	if cache == nil {
		return
	}
	if err := cache.Delete(ctx, userID); err != nil {
		logger.Log.Warnw("summary cache invalidation failed", "userID", userID, "err", err)
	}
}
