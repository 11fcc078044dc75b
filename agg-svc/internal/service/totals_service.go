package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"nutrilens/aggregator"

	"github.com/google/uuid"
)

var ErrMissingDay = errors.New("event has no meal time")

type TotalsService struct {
	meals MealRepository
	store TotalsStore
}

func NewTotalsService(meals MealRepository, store TotalsStore) *TotalsService {
	return &TotalsService{meals: meals, store: store}
}

// Recompute rebuilds one user's totals for day from the meals table, caches
// them and notifies live subscribers.
func (s *TotalsService) Recompute(ctx context.Context, userID uuid.UUID, day aggregator.Date) (*aggregator.DailyTotals, error) {
	if day.IsZero() {
		return nil, ErrMissingDay
	}

	meals, err := s.meals.MealsBetween(ctx, userID, day.Start(), day.End())
	if err != nil {
		return nil, fmt.Errorf("failed to load meals: %w", err)
	}

	valid := make([]aggregator.MealRecord, 0, len(meals))
	for _, meal := range meals {
		if err := meal.Validate(); err != nil {
			log.Printf("Skipping meal %s: %v", meal.ID, err)
			continue
		}
		valid = append(valid, meal)
	}

	totals, ok := aggregator.ComputeDailyTotals(valid)[day]
	if !ok {
		totals = aggregator.DailyTotals{Date: day}
	}

	if err := s.store.SaveTotals(ctx, userID, totals); err != nil {
		return nil, fmt.Errorf("failed to cache totals: %w", err)
	}
	if err := s.store.PublishTotals(ctx, userID, totals); err != nil {
		log.Printf("Error publishing totals for user %s: %v", userID, err)
	}

	return &totals, nil
}
