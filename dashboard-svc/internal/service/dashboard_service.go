package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"nutrilens/aggregator"
	"nutrilens/dashboard-svc/internal/domain"
	"nutrilens/session"

	"github.com/google/uuid"
)

const (
	MaxLookbackDays = 365
	MaxHistoryDays  = 366
)

var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrInvalidRange    = errors.New("invalid date range")
	ErrInvalidWindow   = fmt.Errorf("days must be between 1 and %d", MaxLookbackDays)
)

type DashboardService struct {
	meals MealRepository
	cache TotalsCache
	now   func() time.Time
}

func NewDashboardService(meals MealRepository, cache TotalsCache) *DashboardService {
	return &DashboardService{meals: meals, cache: cache, now: time.Now}
}

// WithClock replaces the clock used to resolve "today".
func (s *DashboardService) WithClock(now func() time.Time) *DashboardService {
	s.now = now
	return s
}

func (s *DashboardService) Today() aggregator.Date {
	return aggregator.DateOf(s.now())
}

func userID(ctx context.Context) (uuid.UUID, error) {
	sess, ok := session.FromContext(ctx)
	if !ok {
		return uuid.Nil, ErrUnauthenticated
	}
	return sess.UserID, nil
}

// Daily serves one day's totals from the cache, rebuilding and caching them
// from the meals table on a miss.
func (s *DashboardService) Daily(ctx context.Context, day aggregator.Date) (*aggregator.DailyTotals, error) {
	uid, err := userID(ctx)
	if err != nil {
		return nil, err
	}

	cached, ok, err := s.cache.GetTotals(ctx, uid, day)
	if err != nil {
		log.Printf("Error reading cached totals for %s: %v", day, err)
	} else if ok {
		return cached, nil
	}

	meals, err := s.loadMeals(ctx, uid, day, day)
	if err != nil {
		return nil, err
	}

	totals, found := aggregator.ComputeDailyTotals(meals)[day]
	if !found {
		totals = aggregator.DailyTotals{Date: day}
	}

	if err := s.cache.SaveTotals(ctx, uid, totals); err != nil {
		log.Printf("Error caching totals for %s: %v", day, err)
	}
	return &totals, nil
}

// History returns one entry per day that has meals, oldest first. The range
// is inclusive and spans at most MaxHistoryDays days.
func (s *DashboardService) History(ctx context.Context, from, to aggregator.Date) ([]aggregator.DailyTotals, error) {
	uid, err := userID(ctx)
	if err != nil {
		return nil, err
	}
	if to.Before(from) || to.AddDays(-(MaxHistoryDays - 1)).After(from) {
		return nil, ErrInvalidRange
	}

	meals, err := s.loadMeals(ctx, uid, from, to)
	if err != nil {
		return nil, err
	}
	return aggregator.SortedTotals(aggregator.ComputeDailyTotals(meals)), nil
}

// BestDays looks back the given number of days from today.
func (s *DashboardService) BestDays(ctx context.Context, days int) (*domain.BestDays, error) {
	uid, err := userID(ctx)
	if err != nil {
		return nil, err
	}
	if days < 1 || days > MaxLookbackDays {
		return nil, ErrInvalidWindow
	}

	from, to := aggregator.Lookback(s.Today(), days)
	meals, err := s.loadMeals(ctx, uid, from, to)
	if err != nil {
		return nil, err
	}

	result := &domain.BestDays{From: from, To: to}
	if report, ok := aggregator.FindBestDays(aggregator.ComputeDailyTotals(meals)); ok {
		result.Report = &report
	}
	return result, nil
}

// loadMeals fetches the meals dated within [from, to] and drops records
// that fail validation.
func (s *DashboardService) loadMeals(ctx context.Context, uid uuid.UUID, from, to aggregator.Date) ([]aggregator.MealRecord, error) {
	meals, err := s.meals.MealsBetween(ctx, uid, from.Start(), to.End())
	if err != nil {
		return nil, fmt.Errorf("failed to load meals: %w", err)
	}

	valid := make([]aggregator.MealRecord, 0, len(meals))
	for _, meal := range aggregator.FilterMealsByRange(meals, from, to) {
		if err := meal.Validate(); err != nil {
			log.Printf("Skipping meal %s: %v", meal.ID, err)
			continue
		}
		valid = append(valid, meal)
	}
	return valid, nil
}
