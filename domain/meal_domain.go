package domain

import (
	"errors"
)

var (
	MessageSuccessAddMeal       = "meal added to plan successfully"
	MessageSuccessGetWeeklyPlan = "weekly meal plan retrieved successfully"
	MessageSuccessDeleteMeal    = "meal removed from plan successfully"
	MessageSuccessGeneratePlan  = "meal plan generated successfully"
	MessageFailedAddMeal        = "failed to add meal to plan"
	MessageFailedGetWeeklyPlan  = "failed to retrieve weekly meal plan"
	MessageFailedDeleteMeal     = "failed to remove meal from plan"
	MessageFailedGeneratePlan   = "failed to generate meal plan"

	ErrMealNotFound    = errors.New("meal plan entry not found")
	ErrInvalidMealDate = errors.New("invalid meal date")
	ErrInvalidMealType = errors.New("invalid meal type")
)

type (
	MealIngredientRequest struct {
		Name   string  `json:"name" validate:"required"`
		Amount float64 `json:"amount" validate:"required"`
		Unit   string  `json:"unit" validate:"required"`
	}

	AddMealRequest struct {
		RecipeID       int                     `json:"recipe_id"`
		Title          string                  `json:"title" validate:"required"`
		ImageURL       string                  `json:"image_url"`
		Date           string                  `json:"date" validate:"required"`
		MealType       string                  `json:"meal_type" validate:"required,oneof=breakfast lunch dinner snack"`
		Servings       int                     `json:"servings"`
		ReadyInMinutes int                     `json:"ready_in_minutes"`
		SourceURL      string                  `json:"source_url"`
		Ingredients    []MealIngredientRequest `json:"ingredients" validate:"omitempty,dive"`
	}

	MealResponse struct {
		ID             string                  `json:"id"`
		RecipeID       int                     `json:"recipe_id"`
		Title          string                  `json:"title"`
		ImageURL       string                  `json:"image_url,omitempty"`
		Date           string                  `json:"date"`
		MealType       string                  `json:"meal_type"`
		Servings       int                     `json:"servings,omitempty"`
		ReadyInMinutes int                     `json:"ready_in_minutes,omitempty"`
		Ingredients    []MealIngredientRequest `json:"ingredients,omitempty"`
	}

	// WeeklyPlanResponse maps every day of the Monday-based week to its meals.
	// All seven keys are always present, empty days map to an empty list.
	WeeklyPlanResponse struct {
		WeekStart string                    `json:"week_start"`
		WeekEnd   string                    `json:"week_end"`
		Days      map[string][]MealResponse `json:"days"`
		DayOrder  []string                  `json:"day_order"`
	}

	GenerateMealPlanRequest struct {
		Days           int    `json:"days" validate:"required,min=1,max=7"`
		TargetCalories int    `json:"target_calories" validate:"omitempty,min=1000,max=4000"`
		StartDate      string `json:"start_date" validate:"omitempty"`
	}

	GenerateMealPlanResponse struct {
		Added []MealResponse `json:"added"`
	}
)
