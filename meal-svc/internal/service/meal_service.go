package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"nutrilens/aggregator"
	"nutrilens/meal-svc/internal/domain"
	"nutrilens/session"

	"github.com/google/uuid"
)

var (
	ErrUnauthenticated = errors.New("no authenticated user")
	ErrInvalidMeal     = errors.New("invalid meal payload")
	ErrMealNotFound    = errors.New("meal not found")
	ErrInvalidRange    = errors.New("start date is after end date")
	ErrUpstream        = errors.New("upstream service failed")
)

const servingQuery = "1 serving"

type MealService struct {
	meals     MealRepository
	detector  FoodDetector
	nutrition NutritionLookup
	cache     NutritionCache
	photos    PhotoStore
	publisher MealPublisher
}

func NewMealService(meals MealRepository, detector FoodDetector, nutrition NutritionLookup,
	cache NutritionCache, photos PhotoStore, publisher MealPublisher) *MealService {
	return &MealService{
		meals:     meals,
		detector:  detector,
		nutrition: nutrition,
		cache:     cache,
		photos:    photos,
		publisher: publisher,
	}
}

func currentUser(ctx context.Context) (uuid.UUID, error) {
	sess, ok := session.FromContext(ctx)
	if !ok {
		return uuid.Nil, ErrUnauthenticated
	}
	return sess.UserID, nil
}

// Analyze detects the food on a photo, looks up its nutrition and stores the
// photo. A failed nutrition lookup or upload does not fail the analysis.
func (s *MealService) Analyze(ctx context.Context, image []byte, contentType string) (*domain.Analysis, error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}

	detection, err := s.detector.Detect(ctx, image)
	if err != nil {
		if errors.Is(err, domain.ErrNoFoodDetected) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: detect food: %v", ErrUpstream, err)
	}

	analysis := &domain.Analysis{Detection: *detection}

	facts, err := s.Nutrition(ctx, detection.FoodName)
	if err != nil {
		analysis.NutritionError = err.Error()
	} else {
		analysis.Nutrition = facts
	}

	if s.photos != nil {
		url, err := s.photos.Upload(ctx, userID, image, contentType)
		if err != nil {
			log.Printf("Error uploading photo for user %s: %v", userID, err)
		} else {
			analysis.PhotoURL = url
		}
	}

	return analysis, nil
}

func (s *MealService) Nutrition(ctx context.Context, food string) (*domain.NutritionFacts, error) {
	query := CleanFoodName(food)
	if query == "" {
		return nil, fmt.Errorf("%w: food name is required", ErrInvalidMeal)
	}
	key := strings.ToLower(query)

	if s.cache != nil {
		if facts, ok, err := s.cache.GetNutrition(ctx, key); err == nil && ok {
			return facts, nil
		}
	}

	facts, err := s.nutrition.Lookup(ctx, servingQuery+" "+query)
	if err != nil {
		if errors.Is(err, domain.ErrNutritionNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: nutrition lookup: %v", ErrUpstream, err)
	}

	if s.cache != nil {
		if err := s.cache.SetNutrition(ctx, key, facts); err != nil {
			log.Printf("Error caching nutrition for %q: %v", key, err)
		}
	}
	return facts, nil
}

func (s *MealService) Log(ctx context.Context, meal *domain.Meal) error {
	userID, err := currentUser(ctx)
	if err != nil {
		return err
	}

	meal.FoodName = strings.TrimSpace(meal.FoodName)
	if meal.FoodName == "" {
		return fmt.Errorf("%w: food_name is required", ErrInvalidMeal)
	}

	if !meal.HasMacros() {
		facts, err := s.Nutrition(ctx, meal.FoodName)
		if err != nil {
			return err
		}
		meal.ApplyNutrition(facts)
	}

	meal.ID = uuid.New()
	meal.UserID = userID
	meal.CreatedAt = time.Now().UTC()
	if err := meal.Record().Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidMeal, err)
	}

	if err := s.meals.InsertMeal(ctx, meal); err != nil {
		return fmt.Errorf("failed to save meal: %w", err)
	}

	if s.publisher != nil {
		record := meal.Record()
		event := domain.MealEvent{
			Type:      domain.MealLoggedEvent,
			MealID:    meal.ID,
			UserID:    meal.UserID,
			FoodName:  meal.FoodName,
			Calories:  record.Calories.Decimal,
			ProteinG:  record.ProteinG.Decimal,
			CarbsG:    record.CarbsG.Decimal,
			FatG:      record.FatG.Decimal,
			LoggedAt:  meal.CreatedAt,
			Timestamp: time.Now(),
		}
		if err := s.publisher.PublishMealLogged(ctx, event); err != nil {
			log.Printf("Error publishing meal %s: %v", meal.ID, err)
		}
	}

	return nil
}

func (s *MealService) Get(ctx context.Context, mealID uuid.UUID) (*domain.Meal, error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}
	meal, err := s.meals.GetMeal(ctx, userID, mealID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrMealNotFound
	}
	return meal, err
}

func (s *MealService) ForDay(ctx context.Context, day aggregator.Date) ([]domain.Meal, error) {
	return s.ForRange(ctx, day, day)
}

func (s *MealService) ForRange(ctx context.Context, from, to aggregator.Date) ([]domain.Meal, error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}
	if from.After(to) {
		return nil, ErrInvalidRange
	}
	return s.meals.ListMealsBetween(ctx, userID, from.Start(), to.End())
}
