package service

import (
	"context"
	"time"

	"nutrilens/advisor-svc/internal/domain"
	"nutrilens/aggregator"

	"github.com/google/uuid"
)

type AdvisorServiceInterface interface {
	HandleMealLogged(ctx context.Context, event domain.MealEvent) error
	Advice(ctx context.Context, mealID uuid.UUID) (*domain.Advice, error)
	Chat(ctx context.Context, message string) (*domain.ChatMessage, error)
	ChatHistory(ctx context.Context) ([]domain.ChatMessage, error)
	DailyTip(ctx context.Context) (string, error)
}

type MealRepository interface {
	GetMeal(ctx context.Context, userID, mealID uuid.UUID) (*domain.Meal, error)
	MealsBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.Meal, error)
	SaveAdvice(ctx context.Context, mealID uuid.UUID, advice domain.Advice) error
}

type ProfileRepository interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)
}

type LanguageModel interface {
	Complete(ctx context.Context, req domain.Completion) (string, error)
}

type ChatStore interface {
	History(ctx context.Context, userID uuid.UUID, day aggregator.Date) ([]domain.ChatMessage, error)
	Append(ctx context.Context, userID uuid.UUID, day aggregator.Date, msgs ...domain.ChatMessage) error
}

type TipCache interface {
	GetTip(ctx context.Context, userID uuid.UUID, day aggregator.Date) (string, bool, error)
	SetTip(ctx context.Context, userID uuid.UUID, day aggregator.Date, tip string) error
}

type ConsumerInterface interface {
	Start(ctx context.Context)
	Process(ctx context.Context, event domain.MealEvent)
}

var (
	_ AdvisorServiceInterface = (*AdvisorService)(nil)
	_ ConsumerInterface       = (*Consumer)(nil)
)
