package storage

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"nutrilens/aggregator"
	"nutrilens/dashboard-svc/internal/domain"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type RedisStore struct {
	Client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{Client: client}
}

func (s *RedisStore) GetTotals(ctx context.Context, userID uuid.UUID, day aggregator.Date) (*aggregator.DailyTotals, bool, error) {
	fields, err := s.Client.HGetAll(ctx, aggregator.TotalsKey(userID, day)).Result()
	if err != nil {
		return nil, false, err
	}
	if len(fields) == 0 {
		return nil, false, nil
	}

	totals, err := aggregator.ParseHashFields(fields)
	if err != nil {
		return nil, false, err
	}
	return &totals, true, nil
}

// SaveTotals fills the day's hash only while it is absent. If agg-svc has
// materialised the key since the caller read the meals table, its totals win.
func (s *RedisStore) SaveTotals(ctx context.Context, userID uuid.UUID, totals aggregator.DailyTotals) error {
	key := aggregator.TotalsKey(userID, totals.Date)
	err := s.Client.Watch(ctx, func(tx *redis.Tx) error {
		exists, err := tx.Exists(ctx, key).Result()
		if err != nil || exists > 0 {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, key, totals.HashFields())
			pipe.Expire(ctx, key, aggregator.TotalsTTL)
			return nil
		})
		return err
	}, key)
	if errors.Is(err, redis.TxFailedErr) {
		return nil
	}
	return err
}

// Updates subscribes to every user's totals channel. The returned channel
// is closed when ctx is cancelled or the subscription drops.
func (s *RedisStore) Updates(ctx context.Context) (<-chan domain.TotalsUpdate, error) {
	pubsub := s.Client.PSubscribe(ctx, aggregator.TotalsPattern)
	if _, err := pubsub.Receive(ctx); err != nil {
		pubsub.Close()
		return nil, err
	}

	updates := make(chan domain.TotalsUpdate)
	go func() {
		defer close(updates)
		defer pubsub.Close()

		messages := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-messages:
				if !ok {
					return
				}
				userID, err := aggregator.ParseTotalsChannel(msg.Channel)
				if err != nil {
					log.Printf("Ignoring message on %s: %v", msg.Channel, err)
					continue
				}
				if !json.Valid([]byte(msg.Payload)) {
					log.Printf("Ignoring malformed totals for user %s", userID)
					continue
				}
				select {
				case updates <- domain.TotalsUpdate{UserID: userID, Payload: json.RawMessage(msg.Payload)}:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return updates, nil
}
