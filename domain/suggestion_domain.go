package domain

import (
	"errors"
)

var (
	MessageSuccessSuggestMeals   = "meal suggestions retrieved successfully"
	MessageSuccessReplaceMeal    = "replacement suggestion retrieved successfully"
	MessageSuccessSearchRecipes  = "recipes retrieved successfully"
	MessageSuccessGetRecipeInfo  = "recipe information retrieved successfully"
	MessageFailedSuggestMeals    = "sorry, something went wrong while processing your request"
	MessageFailedParseSuggestion = "couldn't parse meal suggestions from the AI response"
	MessageFailedNoRecipesFound  = "no recipes found, please try different meal suggestions"
	MessageFailedSearchRecipes   = "failed to fetch recipes"
	MessageFailedGetRecipeInfo   = "failed to fetch recipe details"

	ErrSuggestionAPIFailed = errors.New("suggestion API request failed")
	ErrSuggestionParse     = errors.New("could not parse suggestions from response")
	ErrNoRecipesFound      = errors.New("no recipes found")
)

type (
	SuggestMealsRequest struct {
		Prompt string `json:"prompt" validate:"required"`
	}

	ReplaceSuggestionRequest struct {
		ExcludeTitles []string `json:"exclude_titles" validate:"required,min=1"`
	}

	SearchRecipesRequest struct {
		Query string `json:"query" validate:"required"`
	}

	// SuggestedRecipe is the flattened shape served to the UI; calories default
	// to zero when the nutrient is absent from the API response.
	SuggestedRecipe struct {
		ID              int     `json:"id"`
		Title           string  `json:"title"`
		ImageURL        string  `json:"image"`
		ReadyInMinutes  int     `json:"ready_in_minutes"`
		Servings        int     `json:"servings"`
		PricePerServing float64 `json:"price_per_serving"`
		Calories        int     `json:"calories"`
	}

	SuggestMealsResponse struct {
		Recipes []SuggestedRecipe `json:"recipes"`
	}

	RecipeInformationResponse struct {
		ID           int      `json:"id"`
		Title        string   `json:"title"`
		ImageURL     string   `json:"image"`
		Servings     int      `json:"servings"`
		Ingredients  []string `json:"ingredients"`
		Instructions []string `json:"instructions"`
		Calories     int      `json:"calories"`
	}
)
