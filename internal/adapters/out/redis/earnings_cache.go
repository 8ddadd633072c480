// Package redis provides the Redis-backed cache for rendered rider earnings
// reports. The cache is strictly best-effort: every failure is logged at
// debug level and treated as a miss, so a Redis outage degrades to
// recomputing reports from the database.
package redis

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"zapship/internal/core/domain/services"

	"github.com/redis/go-redis/v9"
)

const earningsKeyPrefix = "zapship:earnings:"

// EarningsReportCache caches rendered earnings reports keyed by rider email.
type EarningsReportCache struct {
	client *redis.Client
	ttl    time.Duration
	log    *slog.Logger
}

// NewEarningsReportCache creates a cache with the given expiration. The TTL
// bounds report staleness: a cached report may lag behind deliveries and
// cash-outs by at most this duration.
func NewEarningsReportCache(client *redis.Client, ttl time.Duration, log *slog.Logger) *EarningsReportCache {
	return &EarningsReportCache{
		client: client,
		ttl:    ttl,
		log:    log,
	}
}

// Get returns the cached report for the rider, or ok == false on a miss or
// any Redis failure.
func (c *EarningsReportCache) Get(ctx context.Context, riderEmail string) (services.EarningsReport, bool) {
	payload, err := c.client.Get(ctx, earningsKeyPrefix+riderEmail).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.DebugContext(ctx, "earnings cache read failed", "rider", riderEmail, "error", err)
		}
		return services.EarningsReport{}, false
	}

	var report services.EarningsReport
	if err = json.Unmarshal(payload, &report); err != nil {
		c.log.DebugContext(ctx, "earnings cache entry is corrupt", "rider", riderEmail, "error", err)
		return services.EarningsReport{}, false
	}

	return report, true
}

// Set stores the report under the rider's key with the configured TTL.
func (c *EarningsReportCache) Set(ctx context.Context, riderEmail string, report services.EarningsReport) {
	payload, err := json.Marshal(report)
	if err != nil {
		c.log.DebugContext(ctx, "earnings report marshal failed", "rider", riderEmail, "error", err)
		return
	}

	if err = c.client.Set(ctx, earningsKeyPrefix+riderEmail, payload, c.ttl).Err(); err != nil {
		c.log.DebugContext(ctx, "earnings cache write failed", "rider", riderEmail, "error", err)
	}
}
