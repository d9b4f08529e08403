package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ismaelallamtaoui/eco-score/domain"

	"github.com/redis/go-redis/v9"
)

type ScoreCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewScoreCache(client *redis.Client, ttl time.Duration) *ScoreCache {
	return &ScoreCache{
		client: client,
		ttl:    ttl,
	}
}

func cacheKey(gtin string, month int, profile string) string {
	return fmt.Sprintf("score:%s:%d:%s", gtin, month, profile)
}

func (c *ScoreCache) Get(ctx context.Context, gtin string, month int, profile string) (domain.ScoreResult, bool, error) {
	data, err := c.client.Get(ctx, cacheKey(gtin, month, profile)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.ScoreResult{}, false, nil
		}
		return domain.ScoreResult{}, false, fmt.Errorf("failed to read score cache: %w", err)
	}

	var result domain.ScoreResult
	if err := json.Unmarshal(data, &result); err != nil {
		return domain.ScoreResult{}, false, fmt.Errorf("failed to unmarshal cached score: %w", err)
	}

	return result, true, nil
}

func (c *ScoreCache) Set(ctx context.Context, gtin string, month int, profile string, result domain.ScoreResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal score result: %w", err)
	}

	if err := c.client.Set(ctx, cacheKey(gtin, month, profile), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store score in Redis: %w", err)
	}

	return nil
}

// InvalidateAll drops every cached score. Called when a weight profile
// changes, since every cached result depends on the weights.
func (c *ScoreCache) InvalidateAll(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, "score:*", 100).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("failed to delete cached score: %w", err)
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan score cache: %w", err)
	}

	return nil
}
