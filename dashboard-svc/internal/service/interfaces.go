package service

import (
	"context"
	"time"

	"nutrilens/aggregator"
	"nutrilens/dashboard-svc/internal/domain"
	"nutrilens/dashboard-svc/internal/storage"

	"github.com/google/uuid"
)

type DashboardServiceInterface interface {
	Daily(ctx context.Context, day aggregator.Date) (*aggregator.DailyTotals, error)
	History(ctx context.Context, from, to aggregator.Date) ([]aggregator.DailyTotals, error)
	BestDays(ctx context.Context, days int) (*domain.BestDays, error)
	Today() aggregator.Date
}

type MealRepository interface {
	MealsBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]aggregator.MealRecord, error)
}

type TotalsCache interface {
	GetTotals(ctx context.Context, userID uuid.UUID, day aggregator.Date) (*aggregator.DailyTotals, bool, error)
	// SaveTotals must not replace totals that are already cached.
	SaveTotals(ctx context.Context, userID uuid.UUID, totals aggregator.DailyTotals) error
}

type TotalsFeed interface {
	Updates(ctx context.Context) (<-chan domain.TotalsUpdate, error)
}

var (
	_ DashboardServiceInterface = (*DashboardService)(nil)
	_ MealRepository            = (*storage.PostgresRepository)(nil)
	_ TotalsCache               = (*storage.RedisStore)(nil)
	_ TotalsFeed                = (*storage.RedisStore)(nil)
)
