package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"nutrilens/advisor-svc/internal/domain"

	"github.com/google/uuid"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func (r *PostgresRepository) GetMeal(ctx context.Context, userID, mealID uuid.UUID) (*domain.Meal, error) {
	var (
		meal   domain.Meal
		advice []byte
	)
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, user_id, food_name, calories, protein, carbs, fat, advice, created_at
		FROM meals
		WHERE id = $1 AND user_id = $2`, mealID, userID).
		Scan(&meal.ID, &meal.UserID, &meal.FoodName, &meal.Calories, &meal.ProteinG, &meal.CarbsG, &meal.FatG, &advice, &meal.CreatedAt)
	if err != nil {
		return nil, err
	}
	meal.Advice = advice
	return &meal, nil
}

func (r *PostgresRepository) MealsBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.Meal, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, user_id, food_name, calories, protein, carbs, fat, created_at
		FROM meals
		WHERE user_id = $1 AND created_at >= $2 AND created_at < $3
		ORDER BY created_at ASC`, userID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var meals []domain.Meal
	for rows.Next() {
		var m domain.Meal
		if err := rows.Scan(&m.ID, &m.UserID, &m.FoodName, &m.Calories, &m.ProteinG, &m.CarbsG, &m.FatG, &m.CreatedAt); err != nil {
			return nil, err
		}
		meals = append(meals, m)
	}
	return meals, rows.Err()
}

func (r *PostgresRepository) SaveAdvice(ctx context.Context, mealID uuid.UUID, advice domain.Advice) error {
	payload, err := json.Marshal(advice)
	if err != nil {
		return err
	}
	res, err := r.DB.ExecContext(ctx, `UPDATE meals SET advice = $1 WHERE id = $2`, payload, mealID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *PostgresRepository) GetProfile(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	var p domain.Profile
	err := r.DB.QueryRowContext(ctx, `
		SELECT goal, age, activity, COALESCE(diet_type, 'Flexible')
		FROM profiles
		WHERE id = $1`, userID).
		Scan(&p.Goal, &p.Age, &p.Activity, &p.DietType)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
