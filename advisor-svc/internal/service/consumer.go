package service

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"nutrilens/advisor-svc/internal/domain"

	"github.com/segmentio/kafka-go"
)

type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

type Consumer struct {
	Reader  MessageReader
	Advisor AdvisorServiceInterface
}

func NewConsumer(reader MessageReader, advisor AdvisorServiceInterface) *Consumer {
	return &Consumer{
		Reader:  reader,
		Advisor: advisor,
	}
}

// Start reads meal events until ctx is cancelled.
func (c *Consumer) Start(ctx context.Context) {
	log.Println("Starting Advisor Service consumer...")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Println("Advisor Service consumer stopped")
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
	log.Printf("Generating advice: MealID=%s, Food=%q", event.MealID, event.FoodName)

	if err := c.Advisor.HandleMealLogged(ctx, event); err != nil {
		if errors.Is(err, ErrLLMUnavailable) {
			log.Printf("Skipping advice for meal %s: %v", event.MealID, err)
			return
		}
		log.Printf("Error generating advice for meal %s: %v", event.MealID, err)
		return
	}

	log.Printf("Successfully stored advice for meal %s", event.MealID)
}
