package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gulhajiPlaza/domain"

	"github.com/redis/go-redis/v9"
)

// RecommendationCache is a best-effort, TTL-bound cache of full
// recommendation results. The key already carries the snapshot
// generation, so stale entries simply stop being asked for.
type RecommendationCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRecommendationCache(client *redis.Client, ttl time.Duration) *RecommendationCache {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &RecommendationCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *RecommendationCache) Get(ctx context.Context, key string) (*domain.RecommendationResult, bool, error) {
	val, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read recommendation cache: %w", err)
	}

	var result domain.RecommendationResult
	if err := json.Unmarshal([]byte(val), &result); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal cached recommendation: %w", err)
	}

	return &result, true, nil
}

func (c *RecommendationCache) Set(ctx context.Context, key string, result domain.RecommendationResult) error {
	jsonData, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal recommendation: %w", err)
	}

	if err := c.client.Set(ctx, key, jsonData, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write recommendation cache: %w", err)
	}

	return nil
}
