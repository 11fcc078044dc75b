package domain

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrAdviceNotReady = errors.New("advice has not been generated yet")

// Advice is stored on the meal row once generation has finished. A failed
// generation is stored with only Error set.
type Advice struct {
	HealthySwap   string `json:"healthy_swap,omitempty"`
	DietTip       string `json:"diet_tip,omitempty"`
	PortionAdvice string `json:"portion_advice,omitempty"`
	Motivation    string `json:"motivation,omitempty"`
	Error         string `json:"error,omitempty"`
}

// Meal is the advisor's read model of a logged meal.
type Meal struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	FoodName  string
	Calories  decimal.NullDecimal
	ProteinG  decimal.NullDecimal
	CarbsG    decimal.NullDecimal
	FatG      decimal.NullDecimal
	Advice    json.RawMessage
	CreatedAt time.Time
}

type Profile struct {
	Goal     string
	Age      int
	Activity string
	DietType string
}

func DefaultProfile() Profile {
	return Profile{Goal: "Stay Healthy", Age: 25, Activity: "Low", DietType: "Flexible"}
}

const MealLoggedEvent = "meal_logged"

type MealEvent struct {
	Type      string          `json:"type"`
	MealID    uuid.UUID       `json:"meal_id"`
	UserID    uuid.UUID       `json:"user_id"`
	FoodName  string          `json:"food_name"`
	Calories  decimal.Decimal `json:"calories"`
	ProteinG  decimal.Decimal `json:"protein_g"`
	CarbsG    decimal.Decimal `json:"carbs_g"`
	FatG      decimal.Decimal `json:"fat_g"`
	LoggedAt  time.Time       `json:"logged_at"`
	Timestamp time.Time       `json:"timestamp"`
}

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

type ChatMessage struct {
	Role    string    `json:"role"`
	Content string    `json:"content"`
	SentAt  time.Time `json:"sent_at"`
}

// Completion is a single chat-completion request to the language model.
type Completion struct {
	System      string
	Prompt      string
	Temperature float64
	MaxTokens   int
}
