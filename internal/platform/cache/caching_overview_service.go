// Package cache provides caching implementations for service interfaces.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"academy_backend/internal/feature/overview/usecase"
)

// OverviewService is the set of aggregation operations worth caching. The
// overview usecase satisfies it.
type OverviewService interface {
	GetOverviewStats(ctx context.Context) (*usecase.OverviewStats, error)
	GetTopCourses(ctx context.Context) (*usecase.TopCourses, error)
	GetUserGrowthStats(ctx context.Context) ([]usecase.MonthlyGrowth, error)
}

// CachingOverviewService decorates an OverviewService with Redis caching.
// The dashboard queries fan out over several tables, so short-lived cached
// results absorb most of the read load.
type CachingOverviewService struct {
	inner OverviewService
	rdb   *redis.Client
	ttl   time.Duration
}

// NewCachingOverviewService decorates an OverviewService with Redis caching.
// If ttl is 0, it defaults to 5 minutes. A nil client disables caching and
// every call passes straight through.
func NewCachingOverviewService(rdb *redis.Client, ttl time.Duration, inner OverviewService) *CachingOverviewService {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &CachingOverviewService{inner: inner, rdb: rdb, ttl: ttl}
}

// GetOverviewStats returns the dashboard summary, cache first.
func (c *CachingOverviewService) GetOverviewStats(ctx context.Context) (*usecase.OverviewStats, error) {
	return cached(ctx, c, "overview:stats", c.inner.GetOverviewStats)
}

// GetTopCourses returns the course rankings, cache first.
func (c *CachingOverviewService) GetTopCourses(ctx context.Context) (*usecase.TopCourses, error) {
	return cached(ctx, c, "overview:top-courses", c.inner.GetTopCourses)
}

// GetUserGrowthStats returns the growth series, cache first.
func (c *CachingOverviewService) GetUserGrowthStats(ctx context.Context) ([]usecase.MonthlyGrowth, error) {
	return cached(ctx, c, "overview:user-growth", c.inner.GetUserGrowthStats)
}

// cached wraps one operation with the read-through protocol: check the
// cache, fall back to the inner service, then store the result best effort.
// Corrupted entries are deleted and treated as misses.
func cached[T any](ctx context.Context, c *CachingOverviewService, key string, load func(context.Context) (T, error)) (T, error) {
	if c.rdb == nil {
		return load(ctx)
	}

	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out T
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		_ = c.rdb.Del(ctx, key).Err()
	}

	out, err := load(ctx)
	if err != nil {
		return out, err
	}

	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}
	return out, nil
}
