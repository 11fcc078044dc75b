package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"nutrilens/meal-svc/internal/domain"

	"github.com/google/uuid"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func (r *PostgresRepository) InsertMeal(ctx context.Context, meal *domain.Meal) error {
	return r.DB.QueryRowContext(ctx, `
		INSERT INTO meals (id, user_id, food_name, calories, protein, carbs, fat, photo_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, ''), $9)
		RETURNING created_at`,
		meal.ID, meal.UserID, meal.FoodName, meal.Calories, meal.ProteinG, meal.CarbsG, meal.FatG, meal.PhotoURL, meal.CreatedAt).
		Scan(&meal.CreatedAt)
}

const mealColumns = `id, user_id, food_name, calories, protein, carbs, fat, COALESCE(photo_url, ''), advice, created_at`

func scanMeal(scan func(dest ...any) error) (domain.Meal, error) {
	var (
		meal   domain.Meal
		advice []byte
	)
	err := scan(&meal.ID, &meal.UserID, &meal.FoodName, &meal.Calories, &meal.ProteinG, &meal.CarbsG, &meal.FatG,
		&meal.PhotoURL, &advice, &meal.CreatedAt)
	if err != nil {
		return meal, err
	}
	if len(advice) > 0 {
		meal.Advice = advice
	}
	meal.CreatedAt = meal.CreatedAt.UTC()
	return meal, nil
}

func (r *PostgresRepository) GetMeal(ctx context.Context, userID, mealID uuid.UUID) (*domain.Meal, error) {
	row := r.DB.QueryRowContext(ctx, `
		SELECT `+mealColumns+`
		FROM meals
		WHERE id = $1 AND user_id = $2`, mealID, userID)

	meal, err := scanMeal(row.Scan)
	if err != nil {
		return nil, err
	}
	return &meal, nil
}

func (r *PostgresRepository) ListMealsBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.Meal, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT `+mealColumns+`
		FROM meals
		WHERE user_id = $1 AND created_at >= $2 AND created_at < $3
		ORDER BY created_at ASC`, userID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	meals := []domain.Meal{}
	for rows.Next() {
		meal, err := scanMeal(rows.Scan)
		if err != nil {
			return nil, err
		}
		if err := meal.Record().Validate(); err != nil {
			log.Printf("Skipping meal %s: %v", meal.ID, err)
			continue
		}
		meals = append(meals, meal)
	}
	return meals, rows.Err()
}

func (r *PostgresRepository) GetProfile(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	var p domain.Profile
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, goal, age, height_cm, weight_kg, activity, COALESCE(diet_type, 'Flexible'), updated_at
		FROM profiles
		WHERE id = $1`, userID).
		Scan(&p.UserID, &p.Goal, &p.Age, &p.HeightCM, &p.WeightKG, &p.Activity, &p.DietType, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PostgresRepository) UpsertProfile(ctx context.Context, p *domain.Profile) error {
	return r.DB.QueryRowContext(ctx, `
		INSERT INTO profiles (id, goal, age, height_cm, weight_kg, activity, diet_type, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, CURRENT_TIMESTAMP)
		ON CONFLICT (id) DO UPDATE
		SET goal = EXCLUDED.goal, age = EXCLUDED.age, height_cm = EXCLUDED.height_cm,
			weight_kg = EXCLUDED.weight_kg, activity = EXCLUDED.activity,
			diet_type = EXCLUDED.diet_type, updated_at = EXCLUDED.updated_at
		RETURNING updated_at`,
		p.UserID, p.Goal, p.Age, p.HeightCM, p.WeightKG, p.Activity, p.DietType).
		Scan(&p.UpdatedAt)
}

func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS meals (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL,
			food_name TEXT NOT NULL,
			calories NUMERIC,
			protein NUMERIC,
			carbs NUMERIC,
			fat NUMERIC,
			photo_url TEXT,
			advice JSONB,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		"CREATE INDEX IF NOT EXISTS meals_user_created_idx ON meals (user_id, created_at)",
		`CREATE TABLE IF NOT EXISTS profiles (
			id UUID PRIMARY KEY,
			goal TEXT NOT NULL,
			age INT NOT NULL,
			height_cm INT NOT NULL,
			weight_kg INT NOT NULL,
			activity TEXT NOT NULL,
			diet_type TEXT,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		"ALTER TABLE IF EXISTS meals ADD COLUMN IF NOT EXISTS photo_url TEXT",
		"ALTER TABLE IF EXISTS meals ADD COLUMN IF NOT EXISTS advice JSONB",
	}
	for _, stmt := range statements {
		if _, err := r.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema `%s`: %w", stmt, err)
		}
	}
	return nil
}
