package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

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

// LoggedTime is when the meal was eaten, falling back to the publish time
// for producers that leave logged_at empty.
func (e MealEvent) LoggedTime() time.Time {
	if !e.LoggedAt.IsZero() {
		return e.LoggedAt
	}
	return e.Timestamp
}
