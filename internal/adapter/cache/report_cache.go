package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/trhgquan/flight-manager/internal/core/domain"
)

// RedisReportCache keeps period reports for a short TTL. Reports aggregate
// over every ticket in the period, so serving them straight from redis
// between recomputes is worth the slight staleness.
type RedisReportCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisReportCache(client *redis.Client, ttl time.Duration) *RedisReportCache {
	return &RedisReportCache{client: client, ttl: ttl}
}

func (c *RedisReportCache) Get(ctx context.Context, month *int, year int) (*domain.PeriodReport, bool) {
	data, err := c.client.Get(ctx, reportKey(month, year)).Bytes()
	if err != nil {
		return nil, false
	}

	var report domain.PeriodReport
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, false
	}

	return &report, true
}

func (c *RedisReportCache) Set(ctx context.Context, report *domain.PeriodReport) error {
	data, err := json.Marshal(report)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, reportKey(report.Month, report.Year), data, c.ttl).Err()
}

func reportKey(month *int, year int) string {
	if month != nil {
		return fmt.Sprintf("report:%d:%02d", year, *month)
	}
	return fmt.Sprintf("report:%d", year)
}

// NoOpReportCache always misses; it stands in where redis is absent.
type NoOpReportCache struct{}

func (NoOpReportCache) Get(context.Context, *int, int) (*domain.PeriodReport, bool) {
	return nil, false
}

func (NoOpReportCache) Set(context.Context, *domain.PeriodReport) error {
	return nil
}
