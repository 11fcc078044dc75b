package storage

import (
	"context"
	"database/sql"
	"time"

	"nutrilens/aggregator"

	"github.com/google/uuid"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) MealsBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]aggregator.MealRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, created_at, calories, protein, carbs, fat
		FROM meals
		WHERE user_id = $1 AND created_at >= $2 AND created_at < $3
		ORDER BY created_at ASC`, userID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var meals []aggregator.MealRecord
	for rows.Next() {
		var m aggregator.MealRecord
		if err := rows.Scan(&m.ID, &m.Timestamp, &m.Calories, &m.ProteinG, &m.CarbsG, &m.FatG); err != nil {
			return nil, err
		}
		m.Timestamp = m.Timestamp.UTC()
		meals = append(meals, m)
	}
	return meals, rows.Err()
}
