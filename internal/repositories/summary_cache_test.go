package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/sbilibin2017/gw-profit-tracker/internal/aggregation"
)

func TestSummaryCacheRepository(t *testing.T) {
	testcontainers.SkipIfProviderIsNotHealthy(t)
	ctx := context.Background()

	// Start Redis container
	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer redisC.Terminate(ctx)

	// Get container host and port
	host, err := redisC.Host(ctx)
	require.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	require.NoError(t, err)

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	defer rdb.Close()

	require.NoError(t, rdb.Ping(ctx).Err())

	repo := NewSummaryCacheRepository(rdb, 2*time.Second)

	report := aggregation.NetProfitReport{
		Daily: []aggregation.DailyNetProfit{
			{Date: "2024-01-01", TotalColumnValue: 5, TotalProfit: 100, NetProfit: 95},
		},
		Overall: aggregation.NetProfitTotals{TotalColumnValue: 5, TotalProfit: 100, NetProfit: 95},
	}

	t.Run("Set and Get report", func(t *testing.T) {
		userID := uuid.New()

		_, version, err := repo.Get(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, int64(0), version)

		require.NoError(t, repo.Set(ctx, userID, version, report))

		got, gotVersion, err := repo.Get(ctx, userID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, report, *got)
		assert.Equal(t, version, gotVersion)
	})

	t.Run("Get missing key is a miss", func(t *testing.T) {
		got, _, err := repo.Get(ctx, uuid.New())
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("Delete invalidates and advances the version", func(t *testing.T) {
		userID := uuid.New()
		require.NoError(t, repo.Set(ctx, userID, 0, report))
		require.NoError(t, repo.Delete(ctx, userID))

		got, version, err := repo.Get(ctx, userID)
		assert.NoError(t, err)
		assert.Nil(t, got)
		assert.Equal(t, int64(1), version)
	})

	t.Run("Report computed before an invalidation is not served", func(t *testing.T) {
		userID := uuid.New()

		_, before, err := repo.Get(ctx, userID)
		require.NoError(t, err)

		// a mutation lands while the report is being computed
		require.NoError(t, repo.Delete(ctx, userID))
		require.NoError(t, repo.Set(ctx, userID, before, report))

		got, version, err := repo.Get(ctx, userID)
		assert.NoError(t, err)
		assert.Nil(t, got)
		assert.Equal(t, before+1, version)

		require.NoError(t, repo.Set(ctx, userID, version, report))
		got, _, err = repo.Get(ctx, userID)
		assert.NoError(t, err)
		assert.NotNil(t, got)
	})

	t.Run("Cached value expires", func(t *testing.T) {
		userID := uuid.New()
		require.NoError(t, repo.Set(ctx, userID, 0, report))

		// Wait for expiration (2s)
		time.Sleep(3 * time.Second)

		got, _, err := repo.Get(ctx, userID)
		assert.NoError(t, err)
		assert.Nil(t, got)
	})
}
