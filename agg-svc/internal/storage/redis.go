package storage

import (
	"context"
	"encoding/json"

	"nutrilens/aggregator"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type RedisStore struct {
	Client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{Client: client}
}

// SaveTotals replaces the day's hash. Totals computed here are authoritative.
func (s *RedisStore) SaveTotals(ctx context.Context, userID uuid.UUID, totals aggregator.DailyTotals) error {
	key := aggregator.TotalsKey(userID, totals.Date)
	pipe := s.Client.TxPipeline()
	pipe.Del(ctx, key)
	pipe.HSet(ctx, key, totals.HashFields())
	pipe.Expire(ctx, key, aggregator.TotalsTTL)
	_, err := pipe.Exec(ctx)
	return err
}

func (s *RedisStore) PublishTotals(ctx context.Context, userID uuid.UUID, totals aggregator.DailyTotals) error {
	payload, err := json.Marshal(totals)
	if err != nil {
		return err
	}
	return s.Client.Publish(ctx, aggregator.TotalsChannel(userID), payload).Err()
}
