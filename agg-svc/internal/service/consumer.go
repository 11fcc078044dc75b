package service

import (
	"context"
	"encoding/json"
	"log"

	"nutrilens/agg-svc/internal/domain"
	"nutrilens/aggregator"

	"github.com/segmentio/kafka-go"
)

type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

type Consumer struct {
	Reader MessageReader
	Totals TotalsServiceInterface
}

func NewConsumer(reader MessageReader, totals TotalsServiceInterface) *Consumer {
	return &Consumer{
		Reader: reader,
		Totals: totals,
	}
}

func (c *Consumer) Start(ctx context.Context) {
	log.Println("Starting Aggregation Service consumer...")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Println("Aggregation Service consumer stopped")
				return
			}
			log.Printf("Error reading message: %v", err)
			continue
		}

		var event domain.MealEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			log.Printf("Error unmarshaling message: %v", err)
			continue
		}

		c.Process(ctx, event)
	}
}

func (c *Consumer) Process(ctx context.Context, event domain.MealEvent) {
	if event.Type != domain.MealLoggedEvent {
		return
	}

	loggedAt := event.LoggedTime()
	if loggedAt.IsZero() {
		log.Printf("Skipping meal %s: %v", event.MealID, ErrMissingDay)
		return
	}
	day := aggregator.DateOf(loggedAt)
	log.Printf("Processing meal: MealID=%s, UserID=%s, Day=%s", event.MealID, event.UserID, day)

	totals, err := c.Totals.Recompute(ctx, event.UserID, day)
	if err != nil {
		log.Printf("Error updating totals: %v", err)
		return
	}

	log.Printf("Successfully updated totals for %s: %s kcal over %d meals", day, totals.Calories, totals.MealCount)
}
