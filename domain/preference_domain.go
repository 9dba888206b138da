package domain

import (
	"errors"
)

var (
	MessageSuccessGetPreferences = "preferences retrieved successfully"
	MessageSuccessSetPreferences = "preferences saved successfully"
	MessageFailedGetPreferences  = "failed to retrieve preferences"
	MessageFailedSetPreferences  = "failed to save preferences"

	ErrPreferenceNotFound = errors.New("preference not found")
)

type (
	SetDietaryPreferencesRequest struct {
		Diets []string `json:"diets" validate:"required"`
	}

	SetBudgetRequest struct {
		Limit float64 `json:"limit" validate:"required,min=0"`
	}

	PreferencesResponse struct {
		Diets  []string `json:"diets"`
		Budget float64  `json:"budget"`
	}
)
