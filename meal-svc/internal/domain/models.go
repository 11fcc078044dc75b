package domain

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"nutrilens/aggregator"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNoFoodDetected    = errors.New("no food items were detected in the image")
	ErrNutritionNotFound = errors.New("no nutrition data found for this food item")
)

type Meal struct {
	ID        uuid.UUID           `json:"id"`
	UserID    uuid.UUID           `json:"user_id"`
	FoodName  string              `json:"food_name"`
	Calories  decimal.NullDecimal `json:"calories"`
	ProteinG  decimal.NullDecimal `json:"protein_g"`
	CarbsG    decimal.NullDecimal `json:"carbs_g"`
	FatG      decimal.NullDecimal `json:"fat_g"`
	PhotoURL  string              `json:"photo_url,omitempty"`
	Advice    json.RawMessage     `json:"advice,omitempty"`
	CreatedAt time.Time           `json:"created_at"`
}

func (m Meal) HasMacros() bool {
	return m.Calories.Valid || m.ProteinG.Valid || m.CarbsG.Valid || m.FatG.Valid
}

func (m Meal) Record() aggregator.MealRecord {
	return aggregator.MealRecord{
		ID:        m.ID.String(),
		Timestamp: m.CreatedAt,
		Calories:  m.Calories,
		ProteinG:  m.ProteinG,
		CarbsG:    m.CarbsG,
		FatG:      m.FatG,
	}
}

// ApplyNutrition fills absent macros from looked-up facts.
func (m *Meal) ApplyNutrition(facts *NutritionFacts) {
	fill := func(dst *decimal.NullDecimal, v float64) {
		if !dst.Valid {
			*dst = decimal.NewNullDecimal(decimal.NewFromFloat(v))
		}
	}
	fill(&m.Calories, facts.Calories)
	fill(&m.ProteinG, facts.Protein)
	fill(&m.CarbsG, facts.TotalCarbs)
	fill(&m.FatG, facts.TotalFat)
	if strings.TrimSpace(m.FoodName) == "" {
		m.FoodName = facts.FoodName
	}
}

type Profile struct {
	UserID    uuid.UUID `json:"user_id"`
	Goal      string    `json:"goal"`
	Age       int       `json:"age"`
	HeightCM  int       `json:"height_cm"`
	WeightKG  int       `json:"weight_kg"`
	Activity  string    `json:"activity"`
	DietType  string    `json:"diet_type"`
	UpdatedAt time.Time `json:"updated_at"`
}

var (
	Goals      = []string{"Lose Weight", "Gain Weight", "Stay Healthy", "Build Muscle"}
	Activities = []string{"Low", "Light", "Active", "High", "Super Active"}
)

func DefaultProfile(userID uuid.UUID) Profile {
	return Profile{
		UserID:   userID,
		Goal:     "Stay Healthy",
		Age:      25,
		HeightCM: 160,
		WeightKG: 60,
		Activity: "Low",
		DietType: "Flexible",
	}
}

type NutritionFacts struct {
	FoodName           string   `json:"food_name"`
	BrandName          string   `json:"brand_name,omitempty"`
	ServingQty         float64  `json:"serving_qty"`
	ServingUnit        string   `json:"serving_unit"`
	ServingWeightGrams *float64 `json:"serving_weight_grams,omitempty"`
	Calories           float64  `json:"calories"`
	TotalFat           float64  `json:"total_fat"`
	SaturatedFat       float64  `json:"saturated_fat"`
	Cholesterol        float64  `json:"cholesterol"`
	Sodium             float64  `json:"sodium"`
	TotalCarbs         float64  `json:"total_carbs"`
	DietaryFiber       float64  `json:"dietary_fiber"`
	Sugars             float64  `json:"sugars"`
	Protein            float64  `json:"protein"`
	Potassium          float64  `json:"potassium"`
	PhotoURL           string   `json:"photo_url,omitempty"`
}

type DetectedFood struct {
	Name       string  `json:"name"`
	Confidence float64 `json:"confidence"`
}

type Detection struct {
	FoodName     string         `json:"food_name"`
	Confidence   float64        `json:"confidence"`
	Alternatives []DetectedFood `json:"alternatives"`
}

type Analysis struct {
	Detection      Detection       `json:"detection"`
	Nutrition      *NutritionFacts `json:"nutrition,omitempty"`
	NutritionError string          `json:"nutrition_error,omitempty"`
	PhotoURL       string          `json:"photo_url,omitempty"`
}

const MealLoggedEvent = "meal_logged"

type MealEvent struct {
	Type      string          `json:"type"`
	MealID    uuid.UUID       `json:"meal_id"`
	UserID    uuid.UUID       `json:"user_id"`
	FoodName  string          `json:"food_name"`
	Calories  decimal.Decimal `json:"calories"`
	ProteinG  decimal.Decimal `json:"protein_g"`
	CarbsG    decimal.Decimal `json:"carbs_g"`
	FatG      decimal.Decimal `json:"fat_g"`
	LoggedAt  time.Time       `json:"logged_at"`
	Timestamp time.Time       `json:"timestamp"`
}
