package tests

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"nutrilens/agg-svc/internal/storage"
	"nutrilens/aggregator"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresRepository_MealsBetween(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := storage.NewPostgresRepository(db)

	query := "SELECT id, created_at, calories, protein, carbs, fat FROM meals WHERE user_id = \\$1 AND created_at >= \\$2 AND created_at < \\$3"
	mock.ExpectQuery(query).
		WithArgs(testUserID, testDay.Start(), testDay.End()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "calories", "protein", "carbs", "fat"}).
			AddRow("m1", at(8), "350", "12", nil, "9.5").
			AddRow("m2", at(13), "520", nil, "60", "14"))

	meals, err := repo.MealsBetween(context.Background(), testUserID, testDay.Start(), testDay.End())
	require.NoError(t, err)
	require.Len(t, meals, 2)
	assert.Equal(t, "m1", meals[0].ID)
	assert.True(t, meals[0].Calories.Decimal.Equal(decimal.NewFromInt(350)))
	assert.False(t, meals[0].CarbsG.Valid)
	assert.False(t, meals[1].ProteinG.Valid)

	mock.ExpectQuery(query).
		WithArgs(testUserID, testDay.Start(), testDay.End()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "calories", "protein", "carbs", "fat"}).
			AddRow("m3", at(9), "lots", nil, nil, nil))

	_, err = repo.MealsBetween(context.Background(), testUserID, testDay.Start(), testDay.End())
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func newRedisStore(t *testing.T) (*storage.RedisStore, *miniredis.Miniredis, *redis.Client) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return storage.NewRedisStore(client), mr, client
}

func TestRedisStore_SaveTotals(t *testing.T) {
	store, mr, _ := newRedisStore(t)
	ctx := context.Background()
	key := aggregator.TotalsKey(testUserID, testDay)

	mr.HSet(key, "stale", "1")

	totals := aggregator.DailyTotals{
		Date:      testDay,
		Calories:  decimal.NewFromInt(870),
		ProteinG:  decimal.RequireFromString("30.5"),
		CarbsG:    decimal.NewFromInt(60),
		FatG:      decimal.RequireFromString("23.5"),
		MealCount: 2,
	}
	require.NoError(t, store.SaveTotals(ctx, testUserID, totals))

	assert.Equal(t, "totals:"+testUserID.String()+":2024-03-05", key)
	assert.Equal(t, "870", mr.HGet(key, "calories"))
	assert.Equal(t, "30.5", mr.HGet(key, "protein_g"))
	assert.Equal(t, "2", mr.HGet(key, "meal_count"))
	assert.Empty(t, mr.HGet(key, "stale"))
	assert.Equal(t, aggregator.TotalsTTL, mr.TTL(key))

	mr.FastForward(36 * 24 * time.Hour)
	assert.False(t, mr.Exists(key))
}

func TestRedisStore_PublishTotals(t *testing.T) {
	store, _, client := newRedisStore(t)
	ctx := context.Background()

	sub := client.Subscribe(ctx, aggregator.TotalsChannel(testUserID))
	defer sub.Close()
	_, err := sub.Receive(ctx)
	require.NoError(t, err)

	totals := aggregator.DailyTotals{Date: testDay, Calories: decimal.NewFromInt(420), MealCount: 1}
	require.NoError(t, store.PublishTotals(ctx, testUserID, totals))

	select {
	case msg := <-sub.Channel():
		assert.Equal(t, "totals:"+testUserID.String(), msg.Channel)
		var got aggregator.DailyTotals
		require.NoError(t, json.Unmarshal([]byte(msg.Payload), &got))
		assert.Equal(t, testDay, got.Date)
		assert.True(t, got.Calories.Equal(decimal.NewFromInt(420)))
		assert.Equal(t, 1, got.MealCount)
	case <-time.After(2 * time.Second):
		t.Fatal("no totals published")
	}
}
