package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"nutrilens/advisor-svc/internal/domain"
	"nutrilens/aggregator"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// MaxChatMessages bounds the stored conversation per user and day.
const MaxChatMessages = 20

type RedisStore struct {
	Client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{Client: client}
}

func ChatKey(userID uuid.UUID, day aggregator.Date) string {
	return fmt.Sprintf("chat:%s:%s", userID, day)
}

func TipKey(userID uuid.UUID, day aggregator.Date) string {
	return fmt.Sprintf("tip:%s:%s", userID, day)
}

func (s *RedisStore) History(ctx context.Context, userID uuid.UUID, day aggregator.Date) ([]domain.ChatMessage, error) {
	raw, err := s.Client.LRange(ctx, ChatKey(userID, day), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	messages := make([]domain.ChatMessage, 0, len(raw))
	for _, item := range raw {
		var msg domain.ChatMessage
		if err := json.Unmarshal([]byte(item), &msg); err != nil {
			log.Printf("Skipping malformed chat entry: %v", err)
			continue
		}
		messages = append(messages, msg)
	}
	return messages, nil
}

// Append pushes messages and trims the list to the newest MaxChatMessages.
// The key expires a day after the conversation's day ends.
func (s *RedisStore) Append(ctx context.Context, userID uuid.UUID, day aggregator.Date, msgs ...domain.ChatMessage) error {
	if len(msgs) == 0 {
		return nil
	}
	values := make([]interface{}, 0, len(msgs))
	for _, msg := range msgs {
		payload, err := json.Marshal(msg)
		if err != nil {
			return err
		}
		values = append(values, payload)
	}

	key := ChatKey(userID, day)
	pipe := s.Client.TxPipeline()
	pipe.RPush(ctx, key, values...)
	pipe.LTrim(ctx, key, -MaxChatMessages, -1)
	pipe.ExpireAt(ctx, key, day.End().Add(24*time.Hour))
	_, err := pipe.Exec(ctx)
	return err
}

func (s *RedisStore) GetTip(ctx context.Context, userID uuid.UUID, day aggregator.Date) (string, bool, error) {
	tip, err := s.Client.Get(ctx, TipKey(userID, day)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return tip, true, nil
}

// SetTip caches the tip until the end of its UTC day.
func (s *RedisStore) SetTip(ctx context.Context, userID uuid.UUID, day aggregator.Date, tip string) error {
	key := TipKey(userID, day)
	pipe := s.Client.TxPipeline()
	pipe.Set(ctx, key, tip, 0)
	pipe.ExpireAt(ctx, key, day.End())
	_, err := pipe.Exec(ctx)
	return err
}
