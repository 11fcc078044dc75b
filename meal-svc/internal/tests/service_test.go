package tests

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"nutrilens/aggregator"
	"nutrilens/meal-svc/internal/domain"
	"nutrilens/meal-svc/internal/mocks"
	"nutrilens/meal-svc/internal/service"
	"nutrilens/session"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testUserID = uuid.MustParse("6f1d2c3b-4a5e-4f60-8a7b-9c0d1e2f3a4b")

func userContext() context.Context {
	return session.NewContext(context.Background(), session.New(testUserID, "pookie@example.com"))
}

func nd(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(s))
}

type mealDeps struct {
	repo      *mocks.MealRepository
	detector  *mocks.FoodDetector
	lookup    *mocks.NutritionLookup
	cache     *mocks.NutritionCache
	photos    *mocks.PhotoStore
	publisher *mocks.MealPublisher
}

func newMealService(t *testing.T) (*service.MealService, mealDeps) {
	deps := mealDeps{
		repo:      mocks.NewMealRepository(t),
		detector:  mocks.NewFoodDetector(t),
		lookup:    mocks.NewNutritionLookup(t),
		cache:     mocks.NewNutritionCache(t),
		photos:    mocks.NewPhotoStore(t),
		publisher: mocks.NewMealPublisher(t),
	}
	svc := service.NewMealService(deps.repo, deps.detector, deps.lookup, deps.cache, deps.photos, deps.publisher)
	return svc, deps
}

func TestCleanFoodName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "mapped dish", input: "Masala Dosa", want: "plain dosa"},
		{name: "underscores and digits", input: "veg_biryani_2", want: "chicken biryani"},
		{name: "first mapping wins", input: "Paneer Butter Masala Naan", want: "paneer makhani"},
		{name: "unmapped name kept", input: "Apple-Pie 3", want: "Apple Pie"},
		{name: "only digits", input: "123", want: ""},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.want, service.CleanFoodName(testCase.input))
		})
	}
}

func TestMealService_Analyze(t *testing.T) {
	image := []byte("jpeg-bytes")
	detection := &domain.Detection{
		FoodName:     "Dosa",
		Confidence:   0.93,
		Alternatives: []domain.DetectedFood{{Name: "Pancake", Confidence: 0.71}},
	}
	facts := &domain.NutritionFacts{FoodName: "plain dosa", Calories: 168, Protein: 3.9, TotalCarbs: 29, TotalFat: 3.7}

	t.Run("detection with nutrition and photo", func(t *testing.T) {
		svc, deps := newMealService(t)
		deps.detector.On("Detect", mock.Anything, image).Return(detection, nil).Once()
		deps.cache.On("GetNutrition", mock.Anything, "plain dosa").Return(nil, false, nil).Once()
		deps.lookup.On("Lookup", mock.Anything, "1 serving plain dosa").Return(facts, nil).Once()
		deps.cache.On("SetNutrition", mock.Anything, "plain dosa", facts).Return(nil).Once()
		deps.photos.On("Upload", mock.Anything, testUserID, image, "image/jpeg").Return("https://cdn/meals/1.jpg", nil).Once()

		analysis, err := svc.Analyze(userContext(), image, "image/jpeg")

		require.NoError(t, err)
		assert.Equal(t, "Dosa", analysis.Detection.FoodName)
		assert.Equal(t, facts, analysis.Nutrition)
		assert.Empty(t, analysis.NutritionError)
		assert.Equal(t, "https://cdn/meals/1.jpg", analysis.PhotoURL)
	})

	t.Run("nutrition failure is reported not returned", func(t *testing.T) {
		svc, deps := newMealService(t)
		deps.detector.On("Detect", mock.Anything, image).Return(detection, nil).Once()
		deps.cache.On("GetNutrition", mock.Anything, "plain dosa").Return(nil, false, nil).Once()
		deps.lookup.On("Lookup", mock.Anything, "1 serving plain dosa").Return(nil, domain.ErrNutritionNotFound).Once()
		deps.photos.On("Upload", mock.Anything, testUserID, image, "image/png").Return("", errors.New("s3 down")).Once()

		analysis, err := svc.Analyze(userContext(), image, "image/png")

		require.NoError(t, err)
		assert.Nil(t, analysis.Nutrition)
		assert.Equal(t, domain.ErrNutritionNotFound.Error(), analysis.NutritionError)
		assert.Empty(t, analysis.PhotoURL)
	})

	t.Run("no food detected", func(t *testing.T) {
		svc, deps := newMealService(t)
		deps.detector.On("Detect", mock.Anything, image).Return(nil, domain.ErrNoFoodDetected).Once()

		_, err := svc.Analyze(userContext(), image, "image/jpeg")

		assert.ErrorIs(t, err, domain.ErrNoFoodDetected)
	})

	t.Run("detector failure is upstream", func(t *testing.T) {
		svc, deps := newMealService(t)
		deps.detector.On("Detect", mock.Anything, image).Return(nil, errors.New("throttled")).Once()

		_, err := svc.Analyze(userContext(), image, "image/jpeg")

		assert.ErrorIs(t, err, service.ErrUpstream)
	})

	t.Run("requires session", func(t *testing.T) {
		svc, _ := newMealService(t)

		_, err := svc.Analyze(context.Background(), image, "image/jpeg")

		assert.ErrorIs(t, err, service.ErrUnauthenticated)
	})
}

func TestMealService_Nutrition(t *testing.T) {
	cached := &domain.NutritionFacts{FoodName: "chapati", Calories: 120}

	tests := []struct {
		name      string
		food      string
		setupMock func(deps mealDeps)
		wantErr   error
	}{
		{
			name: "cache hit skips lookup",
			food: "Roti",
			setupMock: func(deps mealDeps) {
				deps.cache.On("GetNutrition", mock.Anything, "chapati").Return(cached, true, nil).Once()
			},
		},
		{
			name: "cache error falls through to lookup",
			food: "Roti",
			setupMock: func(deps mealDeps) {
				deps.cache.On("GetNutrition", mock.Anything, "chapati").Return(nil, false, errors.New("redis down")).Once()
				deps.lookup.On("Lookup", mock.Anything, "1 serving chapati").Return(cached, nil).Once()
				deps.cache.On("SetNutrition", mock.Anything, "chapati", cached).Return(errors.New("redis down")).Once()
			},
		},
		{
			name: "lookup failure is upstream",
			food: "Roti",
			setupMock: func(deps mealDeps) {
				deps.cache.On("GetNutrition", mock.Anything, "chapati").Return(nil, false, nil).Once()
				deps.lookup.On("Lookup", mock.Anything, "1 serving chapati").Return(nil, errors.New("timeout")).Once()
			},
			wantErr: service.ErrUpstream,
		},
		{
			name:      "empty name",
			food:      "  42 ",
			setupMock: func(deps mealDeps) {},
			wantErr:   service.ErrInvalidMeal,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			svc, deps := newMealService(t)
			testCase.setupMock(deps)

			facts, err := svc.Nutrition(userContext(), testCase.food)

			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, cached, facts)
		})
	}
}

func TestMealService_Log(t *testing.T) {
	t.Run("stores meal and publishes event", func(t *testing.T) {
		svc, deps := newMealService(t)
		meal := &domain.Meal{FoodName: " Idli ", Calories: nd("150"), ProteinG: nd("4.5")}

		deps.repo.On("InsertMeal", mock.Anything, mock.AnythingOfType("*domain.Meal")).Return(nil).Once()
		deps.publisher.On("PublishMealLogged", mock.Anything, mock.MatchedBy(func(e domain.MealEvent) bool {
			return e.Type == domain.MealLoggedEvent &&
				e.UserID == testUserID &&
				e.FoodName == "Idli" &&
				e.Calories.Equal(decimal.NewFromInt(150)) &&
				e.ProteinG.Equal(decimal.RequireFromString("4.5")) &&
				e.CarbsG.IsZero()
		})).Return(nil).Once()

		err := svc.Log(userContext(), meal)

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, meal.ID)
		assert.Equal(t, testUserID, meal.UserID)
		assert.Equal(t, "Idli", meal.FoodName)
		assert.False(t, meal.CreatedAt.IsZero())
		assert.False(t, meal.CarbsG.Valid)
	})

	t.Run("missing macros are looked up", func(t *testing.T) {
		svc, deps := newMealService(t)
		meal := &domain.Meal{FoodName: "Apple"}
		facts := &domain.NutritionFacts{FoodName: "apple", Calories: 95, Protein: 0.5, TotalCarbs: 25, TotalFat: 0.3}

		deps.cache.On("GetNutrition", mock.Anything, "apple").Return(nil, false, nil).Once()
		deps.lookup.On("Lookup", mock.Anything, "1 serving Apple").Return(facts, nil).Once()
		deps.cache.On("SetNutrition", mock.Anything, "apple", facts).Return(nil).Once()
		deps.repo.On("InsertMeal", mock.Anything, mock.AnythingOfType("*domain.Meal")).Return(nil).Once()
		deps.publisher.On("PublishMealLogged", mock.Anything, mock.AnythingOfType("domain.MealEvent")).Return(errors.New("broker down")).Once()

		err := svc.Log(userContext(), meal)

		require.NoError(t, err)
		assert.Equal(t, "95", meal.Calories.Decimal.String())
		assert.Equal(t, "25", meal.CarbsG.Decimal.String())
	})

	t.Run("negative macro rejected", func(t *testing.T) {
		svc, _ := newMealService(t)
		meal := &domain.Meal{FoodName: "Mystery", Calories: nd("-10")}

		err := svc.Log(userContext(), meal)

		assert.ErrorIs(t, err, service.ErrInvalidMeal)
	})

	t.Run("blank name rejected", func(t *testing.T) {
		svc, _ := newMealService(t)

		err := svc.Log(userContext(), &domain.Meal{FoodName: "   "})

		assert.ErrorIs(t, err, service.ErrInvalidMeal)
	})

	t.Run("database error", func(t *testing.T) {
		svc, deps := newMealService(t)
		deps.repo.On("InsertMeal", mock.Anything, mock.Anything).Return(assert.AnError).Once()

		err := svc.Log(userContext(), &domain.Meal{FoodName: "Tea", Calories: nd("30")})

		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestMealService_Get(t *testing.T) {
	mealID := uuid.New()
	tests := []struct {
		name      string
		mockMeal  *domain.Meal
		mockError error
		wantErr   error
	}{
		{
			name:     "meal found",
			mockMeal: &domain.Meal{ID: mealID, FoodName: "Poha"},
		},
		{
			name:      "meal not found",
			mockError: sql.ErrNoRows,
			wantErr:   service.ErrMealNotFound,
		},
		{
			name:      "database error",
			mockError: assert.AnError,
			wantErr:   assert.AnError,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			svc, deps := newMealService(t)
			deps.repo.On("GetMeal", mock.Anything, testUserID, mealID).Return(testCase.mockMeal, testCase.mockError).Once()

			meal, err := svc.Get(userContext(), mealID)

			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Poha", meal.FoodName)
		})
	}
}

func TestMealService_ForRange(t *testing.T) {
	from := aggregator.Date{Year: 2024, Month: time.March, Day: 1}
	to := aggregator.Date{Year: 2024, Month: time.March, Day: 3}

	t.Run("queries whole days", func(t *testing.T) {
		svc, deps := newMealService(t)
		start := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC)
		deps.repo.On("ListMealsBetween", mock.Anything, testUserID, start, end).
			Return([]domain.Meal{{FoodName: "Upma"}}, nil).Once()

		meals, err := svc.ForRange(userContext(), from, to)

		require.NoError(t, err)
		assert.Len(t, meals, 1)
	})

	t.Run("single day", func(t *testing.T) {
		svc, deps := newMealService(t)
		deps.repo.On("ListMealsBetween", mock.Anything, testUserID, from.Start(), from.End()).Return(nil, nil).Once()

		meals, err := svc.ForDay(userContext(), from)

		require.NoError(t, err)
		assert.Empty(t, meals)
	})

	t.Run("reversed range", func(t *testing.T) {
		svc, _ := newMealService(t)

		_, err := svc.ForRange(userContext(), to, from)

		assert.ErrorIs(t, err, service.ErrInvalidRange)
	})
}

func TestProfileService_Get(t *testing.T) {
	t.Run("stored profile cached on session", func(t *testing.T) {
		repo := mocks.NewProfileRepository(t)
		svc := service.NewProfileService(repo)
		stored := &domain.Profile{UserID: testUserID, Goal: "Build Muscle", Age: 30}
		repo.On("GetProfile", mock.Anything, testUserID).Return(stored, nil).Once()

		ctx := userContext()
		first, err := svc.Get(ctx)
		require.NoError(t, err)
		second, err := svc.Get(ctx)
		require.NoError(t, err)

		assert.Same(t, first, second)
		assert.Equal(t, "Build Muscle", second.Goal)
	})

	t.Run("defaults when none stored", func(t *testing.T) {
		repo := mocks.NewProfileRepository(t)
		svc := service.NewProfileService(repo)
		repo.On("GetProfile", mock.Anything, testUserID).Return(nil, sql.ErrNoRows).Once()

		profile, err := svc.Get(userContext())

		require.NoError(t, err)
		assert.Equal(t, domain.DefaultProfile(testUserID), *profile)
	})

	t.Run("database error", func(t *testing.T) {
		repo := mocks.NewProfileRepository(t)
		svc := service.NewProfileService(repo)
		repo.On("GetProfile", mock.Anything, testUserID).Return(nil, assert.AnError).Once()

		_, err := svc.Get(userContext())

		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestProfileService_Save(t *testing.T) {
	valid := func() *domain.Profile {
		return &domain.Profile{Goal: "Lose Weight", Age: 28, HeightCM: 170, WeightKG: 72, Activity: "Active"}
	}

	tests := []struct {
		name    string
		mutate  func(p *domain.Profile)
		wantErr bool
	}{
		{name: "valid profile", mutate: func(p *domain.Profile) {}},
		{name: "unknown goal", mutate: func(p *domain.Profile) { p.Goal = "Get Famous" }, wantErr: true},
		{name: "too young", mutate: func(p *domain.Profile) { p.Age = 12 }, wantErr: true},
		{name: "too tall", mutate: func(p *domain.Profile) { p.HeightCM = 251 }, wantErr: true},
		{name: "too light", mutate: func(p *domain.Profile) { p.WeightKG = 29 }, wantErr: true},
		{name: "unknown activity", mutate: func(p *domain.Profile) { p.Activity = "Couch" }, wantErr: true},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo := mocks.NewProfileRepository(t)
			svc := service.NewProfileService(repo)
			profile := valid()
			testCase.mutate(profile)

			if !testCase.wantErr {
				repo.On("UpsertProfile", mock.Anything, profile).Return(nil).Once()
			}

			err := svc.Save(userContext(), profile)

			if testCase.wantErr {
				assert.ErrorIs(t, err, service.ErrInvalidProfile)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testUserID, profile.UserID)
			assert.Equal(t, "Flexible", profile.DietType)
		})
	}
}

func TestShareService(t *testing.T) {
	day := aggregator.Date{Year: 2024, Month: time.May, Day: 9}
	qr := mocks.NewQRGenerator(t)
	svc := service.NewShareService("https://nutrilens.app", qr)

	link := svc.Link(testUserID, day)
	assert.Equal(t, "https://nutrilens.app/share.html?date=2024-05-09&user="+testUserID.String(), link)

	qr.On("Generate", link).Return([]byte("png"), nil).Once()
	png, err := svc.QRCode(userContext(), day)
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)

	_, err = svc.QRCode(context.Background(), day)
	assert.ErrorIs(t, err, service.ErrUnauthenticated)
}

func TestDefaultQRGenerator(t *testing.T) {
	png, err := service.DefaultQRGenerator{}.Generate("https://nutrilens.app/share.html")

	require.NoError(t, err)
	assert.Equal(t, []byte("\x89PNG"), png[:4])
}
