package stats

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/trainingtracker/internal/telemetry/tracing"
	"github.com/2beens/trainingtracker/internal/training/analytics"

	"github.com/go-redis/redis/v8"
	"go.opentelemetry.io/otel/attribute"
)

const (
	analyticsKeyPrefix = "training::analytics::"
	scanBatchSize      = 100
)

// Cache keeps computed analytics in redis, one hash per profile with a field
// per period, so a single DEL drops everything derived from that profile.
type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewCache(rdb *redis.Client, ttl time.Duration) *Cache {
	return &Cache{
		rdb: rdb,
		ttl: ttl,
	}
}

type cachedAnalytics struct {
	Analytics *analytics.Analytics `json:"analytics"`
}

func analyticsKey(profileID int) string {
	return fmt.Sprintf("%s%d", analyticsKeyPrefix, profileID)
}

// Get returns the cached analytics and whether there was an entry at all. A
// cached "not enough data" result comes back as (nil, true, nil).
func (c *Cache) Get(ctx context.Context, profileID int, period analytics.Period) (_ *analytics.Analytics, found bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "cache.analytics.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("profile.id", profileID),
		attribute.String("period", string(period)),
	)

	raw, err := c.rdb.HGet(ctx, analyticsKey(profileID), string(period)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}

	var cached cachedAnalytics
	if err := json.Unmarshal(raw, &cached); err != nil {
		return nil, false, fmt.Errorf("unmarshal cached analytics: %w", err)
	}
	span.SetAttributes(attribute.Bool("hit", true))
	return cached.Analytics, true, nil
}

func (c *Cache) Set(ctx context.Context, profileID int, period analytics.Period, result *analytics.Analytics) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "cache.analytics.set")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("profile.id", profileID),
		attribute.String("period", string(period)),
	)

	raw, err := json.Marshal(cachedAnalytics{Analytics: result})
	if err != nil {
		return fmt.Errorf("marshal analytics: %w", err)
	}

	key := analyticsKey(profileID)
	if err := c.rdb.HSet(ctx, key, string(period), raw).Err(); err != nil {
		return err
	}
	return c.rdb.Expire(ctx, key, c.ttl).Err()
}

// Invalidate drops the cached analytics of every period for the profile.
func (c *Cache) Invalidate(ctx context.Context, profileID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "cache.analytics.invalidate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("profile.id", profileID))

	return c.rdb.Del(ctx, analyticsKey(profileID)).Err()
}

// InvalidateAll drops the cached analytics of every profile.
func (c *Cache) InvalidateAll(ctx context.Context) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "cache.analytics.invalidate_all")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var (
		cursor  uint64
		keys    []string
		removed int
	)
	for {
		keys, cursor, err = c.rdb.Scan(ctx, cursor, analyticsKeyPrefix+"*", scanBatchSize).Result()
		if err != nil {
			return fmt.Errorf("scan analytics keys: %w", err)
		}
		if len(keys) > 0 {
			if err = c.rdb.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("delete analytics keys: %w", err)
			}
			removed += len(keys)
		}
		if cursor == 0 {
			break
		}
	}
	span.SetAttributes(attribute.Int("removed", removed))

	return nil
}
