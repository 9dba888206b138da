package suggestion

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"family-hub-backend/internal/utils"
	"family-hub-backend/internal/utils/logging"

	"github.com/sony/gobreaker"
)

type (
	Nutrient struct {
		Name   string  `json:"name"`
		Amount float64 `json:"amount"`
		Unit   string  `json:"unit"`
	}

	RecipeResult struct {
		ID              int     `json:"id"`
		Title           string  `json:"title"`
		Image           string  `json:"image"`
		ReadyInMinutes  int     `json:"readyInMinutes"`
		Servings        int     `json:"servings"`
		SourceURL       string  `json:"sourceUrl"`
		PricePerServing float64 `json:"pricePerServing"` // integer cents
		Nutrition       struct {
			Nutrients []Nutrient `json:"nutrients"`
		} `json:"nutrition"`
	}

	RecipeInformation struct {
		ID                  int    `json:"id"`
		Title               string `json:"title"`
		Image               string `json:"image"`
		Servings            int    `json:"servings"`
		ExtendedIngredients []struct {
			Original string `json:"original"`
		} `json:"extendedIngredients"`
		AnalyzedInstructions []struct {
			Steps []struct {
				Step string `json:"step"`
			} `json:"steps"`
		} `json:"analyzedInstructions"`
		Nutrition struct {
			Nutrients []Nutrient `json:"nutrients"`
		} `json:"nutrition"`
	}

	GeneratedMeal struct {
		ID             int    `json:"id"`
		Title          string `json:"title"`
		ReadyInMinutes int    `json:"readyInMinutes"`
		Servings       int    `json:"servings"`
		SourceURL      string `json:"sourceUrl"`
		Slot           int    `json:"slot"`
	}

	GeneratedDay struct {
		Meals []GeneratedMeal `json:"meals"`
	}

	GeneratedPlan struct {
		Week map[string]GeneratedDay `json:"week"`
	}

	SearchOptions struct {
		Number             int
		Diet               string
		IncludeIngredients string
		WithNutrition      bool
	}

	SpoonacularClient interface {
		SearchRecipes(ctx context.Context, query string, opts SearchOptions) ([]RecipeResult, error)
		GetRecipeInformation(ctx context.Context, recipeID int) (*RecipeInformation, error)
		GenerateMealPlan(ctx context.Context, days, targetCalories int, diet, exclude string) (*GeneratedPlan, error)
	}

	spoonacularClient struct {
		httpClient *http.Client
		breaker    *gobreaker.CircuitBreaker
		baseURL    string
	}
)

const spoonacularBaseURL = "https://api.spoonacular.com"

func NewSpoonacularClient() SpoonacularClient {
	baseURL := utils.GetConfig("SPOONACULAR_BASE_URL")
	if baseURL == "" {
		baseURL = spoonacularBaseURL
	}
	return NewSpoonacularClientWithBaseURL(baseURL)
}

func NewSpoonacularClientWithBaseURL(baseURL string) SpoonacularClient {
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "SpoonacularCB",
		MaxRequests: 1,
		Timeout:     10 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Logger.Infof("circuit breaker %s changed from %s to %s", name, from.String(), to.String())
		},
	})

	return &spoonacularClient{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		breaker:    breaker,
		baseURL:    baseURL,
	}
}

func (s *spoonacularClient) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	params.Set("apiKey", utils.GetConfig("SPOONACULAR_API_KEY"))
	fullURL := fmt.Sprintf("%s%s?%s", s.baseURL, path, params.Encode())

	_, err := s.breaker.Execute(func() (interface{}, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, err
		}

		resp, err := s.httpClient.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			bodyBytes, _ := io.ReadAll(resp.Body)
			return nil, fmt.Errorf("spoonacular API error: %s - %s", resp.Status, string(bodyBytes))
		}

		return nil, json.NewDecoder(resp.Body).Decode(out)
	})
	return err
}

func (s *spoonacularClient) SearchRecipes(ctx context.Context, query string, opts SearchOptions) ([]RecipeResult, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("number", strconv.Itoa(opts.Number))
	params.Set("addRecipeInformation", "true")
	if opts.Diet != "" {
		params.Set("diet", opts.Diet)
	}
	if opts.IncludeIngredients != "" {
		params.Set("includeIngredients", opts.IncludeIngredients)
	}
	if opts.WithNutrition {
		params.Set("includeNutrition", "true")
	}

	var response struct {
		Results []RecipeResult `json:"results"`
	}
	if err := s.get(ctx, "/recipes/complexSearch", params, &response); err != nil {
		return nil, err
	}
	return response.Results, nil
}

func (s *spoonacularClient) GetRecipeInformation(ctx context.Context, recipeID int) (*RecipeInformation, error) {
	params := url.Values{}
	params.Set("includeNutrition", "true")

	var info RecipeInformation
	if err := s.get(ctx, fmt.Sprintf("/recipes/%d/information", recipeID), params, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

func (s *spoonacularClient) GenerateMealPlan(ctx context.Context, days, targetCalories int, diet, exclude string) (*GeneratedPlan, error) {
	params := url.Values{}
	params.Set("timeFrame", fmt.Sprintf("%dday", days))
	if targetCalories > 0 {
		params.Set("targetCalories", strconv.Itoa(targetCalories))
	}
	if diet != "" {
		params.Set("diet", diet)
	}
	if exclude != "" {
		params.Set("exclude", exclude)
	}

	var plan GeneratedPlan
	if err := s.get(ctx, "/mealplanner/generate", params, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}
