package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/gw-profit-tracker/internal/aggregation"
	"github.com/sbilibin2017/gw-profit-tracker/internal/logger"
)

// SummaryCacheRepository caches net profit reports in Redis
type SummaryCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached reports
}

// NewSummaryCacheRepository creates a new repository instance with the given TTL
func NewSummaryCacheRepository(client *redis.Client, expiration time.Duration) *SummaryCacheRepository {
	return &SummaryCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func summaryKey(userID uuid.UUID) string {
	return fmt.Sprintf("net_profit:%s", userID)
}

func summaryVersionKey(userID uuid.UUID) string {
	return fmt.Sprintf("net_profit_version:%s", userID)
}

// cachedSummary is a report together with the version it was computed for.
type cachedSummary struct {
	Version int64                       `json:"version"`
	Report  aggregation.NetProfitReport `json:"report"`
}

// Get returns the cached report of the user and the current version. A miss,
// or a report stored for an older version, yields a nil report and no error.
func (r *SummaryCacheRepository) Get(ctx context.Context, userID uuid.UUID) (*aggregation.NetProfitReport, int64, error) {
	key := summaryKey(userID)

	vals, err := r.client.MGet(ctx, summaryVersionKey(userID), key).Result()
	if err != nil {
		logger.Log.Infow("cache get",
			"key", key,
			"result", "error",
			"error", err,
		)
		return nil, 0, err
	}

	var version int64
	if s, ok := vals[0].(string); ok {
		if version, err = strconv.ParseInt(s, 10, 64); err != nil {
			return nil, 0, err
		}
	}

	raw, ok := vals[1].(string)
	if !ok {
		logger.Log.Infow("cache get",
			"key", key,
			"version", version,
			"result", "miss",
			"error", nil,
		)
		return nil, version, nil
	}

	var entry cachedSummary
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		logger.Log.Infow("cache get",
			"key", key,
			"result", "corrupt",
			"error", err,
		)
		return nil, version, err
	}

	if entry.Version != version {
		logger.Log.Infow("cache get",
			"key", key,
			"version", version,
			"cachedVersion", entry.Version,
			"result", "stale",
			"error", nil,
		)
		return nil, version, nil
	}

	logger.Log.Infow("cache get",
		"key", key,
		"version", version,
		"result", "hit",
		"days", len(entry.Report.Daily),
		"error", nil,
	)

	return &entry.Report, version, nil
}

// Set stores the report of the user for version with the repository TTL.
func (r *SummaryCacheRepository) Set(ctx context.Context, userID uuid.UUID, version int64, report aggregation.NetProfitReport) error {
	key := summaryKey(userID)

	val, err := json.Marshal(cachedSummary{Version: version, Report: report})
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, val, r.exp).Err()

	logger.Log.Infow("cache set",
		"key", key,
		"version", version,
		"days", len(report.Daily),
		"result", "ok",
		"error", err,
	)

	return err
}

// Delete advances the version of the user and drops the cached report.
func (r *SummaryCacheRepository) Delete(ctx context.Context, userID uuid.UUID) error {
	key := summaryKey(userID)

	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, summaryVersionKey(userID))
		pipe.Del(ctx, key)
		return nil
	})

	logger.Log.Infow("cache delete",
		"key", key,
		"result", "deleted",
		"error", err,
	)

	return err
}
