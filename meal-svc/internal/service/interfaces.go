package service

import (
	"context"
	"time"

	"nutrilens/aggregator"
	"nutrilens/meal-svc/internal/domain"

	"github.com/google/uuid"
)

type MealRepository interface {
	InsertMeal(ctx context.Context, meal *domain.Meal) error
	GetMeal(ctx context.Context, userID, mealID uuid.UUID) (*domain.Meal, error)
	ListMealsBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.Meal, error)
}

type ProfileRepository interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)
	UpsertProfile(ctx context.Context, profile *domain.Profile) error
}

type FoodDetector interface {
	Detect(ctx context.Context, image []byte) (*domain.Detection, error)
}

type NutritionLookup interface {
	Lookup(ctx context.Context, food string) (*domain.NutritionFacts, error)
}

type NutritionCache interface {
	GetNutrition(ctx context.Context, food string) (*domain.NutritionFacts, bool, error)
	SetNutrition(ctx context.Context, food string, facts *domain.NutritionFacts) error
}

type PhotoStore interface {
	Upload(ctx context.Context, userID uuid.UUID, image []byte, contentType string) (string, error)
}

type MealPublisher interface {
	PublishMealLogged(ctx context.Context, event domain.MealEvent) error
}

type MealServiceInterface interface {
	Analyze(ctx context.Context, image []byte, contentType string) (*domain.Analysis, error)
	Nutrition(ctx context.Context, food string) (*domain.NutritionFacts, error)
	Log(ctx context.Context, meal *domain.Meal) error
	Get(ctx context.Context, mealID uuid.UUID) (*domain.Meal, error)
	ForDay(ctx context.Context, day aggregator.Date) ([]domain.Meal, error)
	ForRange(ctx context.Context, from, to aggregator.Date) ([]domain.Meal, error)
}

type ProfileServiceInterface interface {
	Get(ctx context.Context) (*domain.Profile, error)
	Save(ctx context.Context, profile *domain.Profile) error
}

type ShareServiceInterface interface {
	QRCode(ctx context.Context, day aggregator.Date) ([]byte, error)
	Link(userID uuid.UUID, day aggregator.Date) string
}

var (
	_ MealServiceInterface    = (*MealService)(nil)
	_ ProfileServiceInterface = (*ProfileService)(nil)
	_ ShareServiceInterface   = (*ShareService)(nil)
)
