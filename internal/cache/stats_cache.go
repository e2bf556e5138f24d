package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Adityaaz10/decision-intelligence-platform/internal/model"
)

// StatsCache holds short-lived read-through copies of the recent-list
// and popular-options aggregates. Misses return nil, nil.
type StatsCache interface {
	GetRecent(ctx context.Context, limit int) ([]model.ComparisonSummary, error)
	SetRecent(ctx context.Context, limit int, summaries []model.ComparisonSummary) error
	GetPopular(ctx context.Context, limit int) ([]model.PopularOption, error)
	SetPopular(ctx context.Context, limit int, popular []model.PopularOption) error
	// Invalidate drops all cached aggregates; called after every store.
	Invalidate(ctx context.Context) error
}

type statsCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStatsCache creates a stats cache with a short TTL; staleness is
// bounded by invalidation on store anyway.
func NewStatsCache(client *redis.Client) StatsCache {
	return &statsCache{
		client: client,
		ttl:    5 * time.Minute,
	}
}

func (c *statsCache) recentKey(limit int) string {
	return fmt.Sprintf("stats:recent:%d", limit)
}

func (c *statsCache) popularKey(limit int) string {
	return fmt.Sprintf("stats:popular:%d", limit)
}

func (c *statsCache) GetRecent(ctx context.Context, limit int) ([]model.ComparisonSummary, error) {
	data, err := c.client.Get(ctx, c.recentKey(limit)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var summaries []model.ComparisonSummary
	if err := json.Unmarshal([]byte(data), &summaries); err != nil {
		return nil, err
	}
	return summaries, nil
}

func (c *statsCache) SetRecent(ctx context.Context, limit int, summaries []model.ComparisonSummary) error {
	data, err := json.Marshal(summaries)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.recentKey(limit), data, c.ttl).Err()
}

func (c *statsCache) GetPopular(ctx context.Context, limit int) ([]model.PopularOption, error) {
	data, err := c.client.Get(ctx, c.popularKey(limit)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var popular []model.PopularOption
	if err := json.Unmarshal([]byte(data), &popular); err != nil {
		return nil, err
	}
	return popular, nil
}

func (c *statsCache) SetPopular(ctx context.Context, limit int, popular []model.PopularOption) error {
	data, err := json.Marshal(popular)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.popularKey(limit), data, c.ttl).Err()
}

func (c *statsCache) Invalidate(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, "stats:*", 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}
