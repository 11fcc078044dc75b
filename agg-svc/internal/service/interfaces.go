package service

import (
	"context"
	"time"

	"nutrilens/agg-svc/internal/domain"
	"nutrilens/agg-svc/internal/storage"
	"nutrilens/aggregator"

	"github.com/google/uuid"
)

type MealRepository interface {
	MealsBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]aggregator.MealRecord, error)
}

type TotalsStore interface {
	SaveTotals(ctx context.Context, userID uuid.UUID, totals aggregator.DailyTotals) error
	PublishTotals(ctx context.Context, userID uuid.UUID, totals aggregator.DailyTotals) error
}

type TotalsServiceInterface interface {
	Recompute(ctx context.Context, userID uuid.UUID, day aggregator.Date) (*aggregator.DailyTotals, error)
}

type ConsumerInterface interface {
	Start(ctx context.Context)
	Process(ctx context.Context, event domain.MealEvent)
}

var (
	_ MealRepository         = (*storage.PostgresRepository)(nil)
	_ TotalsStore            = (*storage.RedisStore)(nil)
	_ TotalsServiceInterface = (*TotalsService)(nil)
	_ ConsumerInterface      = (*Consumer)(nil)
)
