package tests

import (
	"context"
	"testing"
	"time"

	"nutrilens/aggregator"
	"nutrilens/dashboard-svc/internal/mocks"
	"nutrilens/dashboard-svc/internal/service"
	"nutrilens/session"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	testUserID = uuid.MustParse("9b2e4f10-1c3d-4e5f-8a7b-6c5d4e3f2a10")
	testNow    = time.Date(2024, time.March, 5, 14, 0, 0, 0, time.UTC)
	testDay    = aggregator.DateOf(testNow)
)

func userContext() context.Context {
	return session.NewContext(context.Background(), session.New(testUserID, "dash@example.com"))
}

func nd(v float64) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.NewFromFloat(v))
}

func onDay(day aggregator.Date, hour int) time.Time {
	return day.Start().Add(time.Duration(hour) * time.Hour)
}

func newDashboard(t *testing.T) (*service.DashboardService, *mocks.MealRepository, *mocks.TotalsCache) {
	repo := mocks.NewMealRepository(t)
	cache := mocks.NewTotalsCache(t)
	svc := service.NewDashboardService(repo, cache).WithClock(func() time.Time { return testNow })
	return svc, repo, cache
}

func TestDashboardService_Daily(t *testing.T) {
	cached := &aggregator.DailyTotals{Date: testDay, Calories: decimal.NewFromInt(640), MealCount: 2}
	meals := []aggregator.MealRecord{
		{ID: "a", Timestamp: onDay(testDay, 8), Calories: nd(350), ProteinG: nd(12)},
		{ID: "b", Timestamp: onDay(testDay, 19), Calories: nd(410)},
	}
	savedTotals := mock.MatchedBy(func(t aggregator.DailyTotals) bool {
		return t.Date == testDay && t.Calories.Equal(decimal.NewFromInt(760)) && t.MealCount == 2
	})

	tests := []struct {
		name       string
		setupMocks func(repo *mocks.MealRepository, cache *mocks.TotalsCache)
		wantCal    int64
		wantCount  int
		wantErr    error
	}{
		{
			name: "cache hit",
			setupMocks: func(repo *mocks.MealRepository, cache *mocks.TotalsCache) {
				cache.On("GetTotals", mock.Anything, testUserID, testDay).Return(cached, true, nil).Once()
			},
			wantCal:   640,
			wantCount: 2,
		},
		{
			name: "cache miss rebuilds and stores",
			setupMocks: func(repo *mocks.MealRepository, cache *mocks.TotalsCache) {
				cache.On("GetTotals", mock.Anything, testUserID, testDay).Return(nil, false, nil).Once()
				repo.On("MealsBetween", mock.Anything, testUserID, testDay.Start(), testDay.End()).Return(meals, nil).Once()
				cache.On("SaveTotals", mock.Anything, testUserID, savedTotals).Return(nil).Once()
			},
			wantCal:   760,
			wantCount: 2,
		},
		{
			name: "cache errors fall back to the database",
			setupMocks: func(repo *mocks.MealRepository, cache *mocks.TotalsCache) {
				cache.On("GetTotals", mock.Anything, testUserID, testDay).Return(nil, false, assert.AnError).Once()
				repo.On("MealsBetween", mock.Anything, testUserID, testDay.Start(), testDay.End()).Return(meals, nil).Once()
				cache.On("SaveTotals", mock.Anything, testUserID, savedTotals).Return(assert.AnError).Once()
			},
			wantCal:   760,
			wantCount: 2,
		},
		{
			name: "no meals gives zero totals",
			setupMocks: func(repo *mocks.MealRepository, cache *mocks.TotalsCache) {
				cache.On("GetTotals", mock.Anything, testUserID, testDay).Return(nil, false, nil).Once()
				repo.On("MealsBetween", mock.Anything, testUserID, testDay.Start(), testDay.End()).Return(nil, nil).Once()
				cache.On("SaveTotals", mock.Anything, testUserID, aggregator.DailyTotals{Date: testDay}).Return(nil).Once()
			},
		},
		{
			name: "database error",
			setupMocks: func(repo *mocks.MealRepository, cache *mocks.TotalsCache) {
				cache.On("GetTotals", mock.Anything, testUserID, testDay).Return(nil, false, nil).Once()
				repo.On("MealsBetween", mock.Anything, testUserID, testDay.Start(), testDay.End()).Return(nil, assert.AnError).Once()
			},
			wantErr: assert.AnError,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			svc, repo, cache := newDashboard(t)
			testCase.setupMocks(repo, cache)

			totals, err := svc.Daily(userContext(), testDay)

			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testDay, totals.Date)
			assert.True(t, decimal.NewFromInt(testCase.wantCal).Equal(totals.Calories))
			assert.Equal(t, testCase.wantCount, totals.MealCount)
		})
	}
}

func TestDashboardService_Unauthenticated(t *testing.T) {
	svc, _, _ := newDashboard(t)
	ctx := context.Background()

	_, err := svc.Daily(ctx, testDay)
	assert.ErrorIs(t, err, service.ErrUnauthenticated)

	_, err = svc.History(ctx, testDay, testDay)
	assert.ErrorIs(t, err, service.ErrUnauthenticated)

	_, err = svc.BestDays(ctx, 30)
	assert.ErrorIs(t, err, service.ErrUnauthenticated)
}

func TestDashboardService_History(t *testing.T) {
	svc, repo, _ := newDashboard(t)
	from := testDay.AddDays(-6)

	repo.On("MealsBetween", mock.Anything, testUserID, from.Start(), testDay.End()).Return([]aggregator.MealRecord{
		{ID: "late", Timestamp: onDay(testDay, 9), Calories: nd(300)},
		{ID: "early", Timestamp: onDay(from, 7), Calories: nd(450), ProteinG: nd(20)},
		{ID: "early-2", Timestamp: onDay(from, 12), Calories: nd(150)},
		{ID: "broken", Timestamp: onDay(from, 13), Calories: nd(-5)},
	}, nil).Once()

	history, err := svc.History(userContext(), from, testDay)

	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, from, history[0].Date)
	assert.True(t, decimal.NewFromInt(600).Equal(history[0].Calories))
	assert.Equal(t, 2, history[0].MealCount)
	assert.Equal(t, testDay, history[1].Date)
}

func TestDashboardService_HistoryInvalidRange(t *testing.T) {
	svc, _, _ := newDashboard(t)

	_, err := svc.History(userContext(), testDay, testDay.AddDays(-1))
	assert.ErrorIs(t, err, service.ErrInvalidRange)

	_, err = svc.History(userContext(), testDay.AddDays(-400), testDay)
	assert.ErrorIs(t, err, service.ErrInvalidRange)

	_, err = svc.History(userContext(), testDay.AddDays(-service.MaxHistoryDays), testDay)
	assert.ErrorIs(t, err, service.ErrInvalidRange)
}

func TestDashboardService_HistoryLongestRange(t *testing.T) {
	svc, repo, _ := newDashboard(t)
	from := testDay.AddDays(-(service.MaxHistoryDays - 1))
	repo.On("MealsBetween", mock.Anything, testUserID, from.Start(), testDay.End()).Return(nil, nil).Once()

	history, err := svc.History(userContext(), from, testDay)

	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestDashboardService_BestDays(t *testing.T) {
	t.Run("report over the window", func(t *testing.T) {
		svc, repo, _ := newDashboard(t)
		from, to := aggregator.Lookback(testDay, 30)
		day1, day2 := testDay.AddDays(-2), testDay.AddDays(-1)

		repo.On("MealsBetween", mock.Anything, testUserID, from.Start(), to.End()).Return([]aggregator.MealRecord{
			{ID: "a", Timestamp: onDay(day1, 8), Calories: nd(500), ProteinG: nd(20)},
			{ID: "b", Timestamp: onDay(day1, 13), Calories: nd(300), ProteinG: nd(10)},
			{ID: "c", Timestamp: onDay(day2, 19), Calories: nd(200), ProteinG: nd(30)},
			{ID: "old", Timestamp: onDay(from.AddDays(-1), 23), Calories: nd(50), ProteinG: nd(90)},
		}, nil).Once()

		best, err := svc.BestDays(userContext(), 30)

		require.NoError(t, err)
		assert.Equal(t, from, best.From)
		assert.Equal(t, testDay, best.To)
		require.NotNil(t, best.Report)
		assert.Equal(t, day2, best.Report.LowestCalorieDay.Date)
		assert.True(t, decimal.NewFromInt(200).Equal(best.Report.LowestCalorieDay.Value))
		assert.Equal(t, day1, best.Report.HighestProteinDay.Date, "ties go to the earliest day")
		assert.True(t, decimal.NewFromInt(30).Equal(best.Report.HighestProteinDay.Value))
	})

	t.Run("no meals", func(t *testing.T) {
		svc, repo, _ := newDashboard(t)
		repo.On("MealsBetween", mock.Anything, testUserID, mock.Anything, mock.Anything).Return(nil, nil).Once()

		best, err := svc.BestDays(userContext(), 7)

		require.NoError(t, err)
		assert.Nil(t, best.Report)
		assert.Equal(t, testDay.AddDays(-7), best.From)
	})

	t.Run("window out of bounds", func(t *testing.T) {
		svc, _, _ := newDashboard(t)
		for _, days := range []int{0, -3, 366} {
			_, err := svc.BestDays(userContext(), days)
			assert.ErrorIs(t, err, service.ErrInvalidWindow, "days=%d", days)
		}
	})
}
