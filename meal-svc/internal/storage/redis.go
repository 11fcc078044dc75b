package storage

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"nutrilens/meal-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{Client: client, TTL: ttl}
}

func (c *RedisCache) NutritionKey(food string) string {
	return "nutrition:" + food
}

func (c *RedisCache) GetNutrition(ctx context.Context, food string) (*domain.NutritionFacts, bool, error) {
	payload, err := c.Client.Get(ctx, c.NutritionKey(food)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var facts domain.NutritionFacts
	if err := json.Unmarshal(payload, &facts); err != nil {
		return nil, false, err
	}
	return &facts, true, nil
}

func (c *RedisCache) SetNutrition(ctx context.Context, food string, facts *domain.NutritionFacts) error {
	payload, err := json.Marshal(facts)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, c.NutritionKey(food), payload, c.TTL).Err()
}
