package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"nutrilens/meal-svc/internal/domain"
)

type NutritionixClient struct {
	baseURL string
	appID   string
	appKey  string
	client  *http.Client
}

func NewNutritionixClient(baseURL, appID, appKey string) *NutritionixClient {
	return &NutritionixClient{
		baseURL: baseURL,
		appID:   appID,
		appKey:  appKey,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type nutrientsRequest struct {
	Query    string `json:"query"`
	Timezone string `json:"timezone"`
}

type nutrientsResponse struct {
	Foods []struct {
		FoodName           string   `json:"food_name"`
		BrandName          *string  `json:"brand_name"`
		ServingQty         float64  `json:"serving_qty"`
		ServingUnit        string   `json:"serving_unit"`
		ServingWeightGrams *float64 `json:"serving_weight_grams"`
		Calories           float64  `json:"nf_calories"`
		TotalFat           float64  `json:"nf_total_fat"`
		SaturatedFat       float64  `json:"nf_saturated_fat"`
		Cholesterol        float64  `json:"nf_cholesterol"`
		Sodium             float64  `json:"nf_sodium"`
		TotalCarbs         float64  `json:"nf_total_carbohydrate"`
		DietaryFiber       float64  `json:"nf_dietary_fiber"`
		Sugars             float64  `json:"nf_sugars"`
		Protein            float64  `json:"nf_protein"`
		Potassium          float64  `json:"nf_potassium"`
		Photo              *struct {
			Thumb string `json:"thumb"`
		} `json:"photo"`
	} `json:"foods"`
}

// Lookup runs a natural-language nutrients query such as "1 serving dosa"
// and returns the first matched food.
func (c *NutritionixClient) Lookup(ctx context.Context, query string) (*domain.NutritionFacts, error) {
	body, err := json.Marshal(nutrientsRequest{Query: query, Timezone: "US/Eastern"})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/natural/nutrients", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build nutritionix request: %w", err)
	}
	req.Header.Set("x-app-id", c.appID)
	req.Header.Set("x-app-key", c.appKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call nutritionix: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read nutritionix response: %w", err)
	}
	// nutritionix answers 404 when nothing in the query matched a food
	if resp.StatusCode == http.StatusNotFound {
		return nil, domain.ErrNutritionNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("nutritionix API error %d: %s", resp.StatusCode, string(payload))
	}

	var parsed nutrientsResponse
	if err := json.Unmarshal(payload, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse nutritionix JSON: %w", err)
	}
	if len(parsed.Foods) == 0 {
		return nil, domain.ErrNutritionNotFound
	}

	food := parsed.Foods[0]
	facts := &domain.NutritionFacts{
		FoodName:           food.FoodName,
		ServingQty:         food.ServingQty,
		ServingUnit:        food.ServingUnit,
		ServingWeightGrams: food.ServingWeightGrams,
		Calories:           food.Calories,
		TotalFat:           food.TotalFat,
		SaturatedFat:       food.SaturatedFat,
		Cholesterol:        food.Cholesterol,
		Sodium:             food.Sodium,
		TotalCarbs:         food.TotalCarbs,
		DietaryFiber:       food.DietaryFiber,
		Sugars:             food.Sugars,
		Protein:            food.Protein,
		Potassium:          food.Potassium,
	}
	if food.BrandName != nil {
		facts.BrandName = *food.BrandName
	}
	if food.Photo != nil {
		facts.PhotoURL = food.Photo.Thumb
	}
	if facts.ServingUnit == "" {
		facts.ServingQty, facts.ServingUnit = 1, "serving"
	}
	return facts, nil
}
