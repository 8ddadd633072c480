package redis_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	rediscache "zapship/internal/adapters/out/redis"
	"zapship/internal/core/domain/services"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T, ttl time.Duration) (*rediscache.EarningsReportCache, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return rediscache.NewEarningsReportCache(client, ttl, slog.Default()), server
}

func TestEarningsReportCache_RoundTrip(t *testing.T) {
	cache, _ := newTestCache(t, time.Minute)
	ctx := context.Background()

	report := services.EarningsReport{
		Overall:   "250",
		Total:     "250",
		CashedOut: "100",
		Pending:   "150",
		Today:     "50",
		Week:      "120",
		Month:     "250",
		Year:      "250",
	}

	_, ok := cache.Get(ctx, "rider@example.com")
	require.False(t, ok, "empty cache must miss")

	cache.Set(ctx, "rider@example.com", report)

	cached, ok := cache.Get(ctx, "rider@example.com")
	require.True(t, ok)
	assert.Equal(t, report, cached)
}

func TestEarningsReportCache_KeysAreIsolatedPerRider(t *testing.T) {
	cache, _ := newTestCache(t, time.Minute)
	ctx := context.Background()

	cache.Set(ctx, "a@example.com", services.EarningsReport{Total: "100"})

	_, ok := cache.Get(ctx, "b@example.com")
	assert.False(t, ok)
}

func TestEarningsReportCache_EntryExpires(t *testing.T) {
	cache, server := newTestCache(t, time.Minute)
	ctx := context.Background()

	cache.Set(ctx, "rider@example.com", services.EarningsReport{Total: "100"})

	server.FastForward(2 * time.Minute)

	_, ok := cache.Get(ctx, "rider@example.com")
	assert.False(t, ok, "expired entry must miss")
}

func TestEarningsReportCache_CorruptEntryIsAMiss(t *testing.T) {
	cache, server := newTestCache(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, server.Set("zapship:earnings:rider@example.com", "not-json"))

	_, ok := cache.Get(ctx, "rider@example.com")
	assert.False(t, ok)
}

func TestEarningsReportCache_RedisDownIsAMiss(t *testing.T) {
	cache, server := newTestCache(t, time.Minute)
	ctx := context.Background()

	cache.Set(ctx, "rider@example.com", services.EarningsReport{Total: "100"})
	server.Close()

	_, ok := cache.Get(ctx, "rider@example.com")
	assert.False(t, ok, "unreachable redis must degrade to a miss")

	// writes must not panic either
	cache.Set(ctx, "rider@example.com", services.EarningsReport{Total: "200"})
}
