package domain

import (
	"errors"
)

var (
	MessageSuccessAddPantryItem    = "pantry item added successfully"
	MessageSuccessUpdatePantryItem = "pantry item updated successfully"
	MessageSuccessDeletePantryItem = "pantry item deleted successfully"
	MessageSuccessGetPantryItems   = "pantry items retrieved successfully"
	MessageFailedAddPantryItem     = "failed to add pantry item"
	MessageFailedUpdatePantryItem  = "failed to update pantry item"
	MessageFailedDeletePantryItem  = "failed to delete pantry item"
	MessageFailedGetPantryItems    = "failed to retrieve pantry items"

	ErrPantryItemNotFound   = errors.New("pantry item not found")
	ErrNegativeQuantity     = errors.New("quantity must not be negative")
	ErrInvalidExpirationDay = errors.New("invalid expiration date")
)

type (
	AddPantryItemRequest struct {
		Name           string  `json:"name" validate:"required"`
		Quantity       float64 `json:"quantity" validate:"min=0"`
		Unit           string  `json:"unit" validate:"required,oneof=piece kg g l ml"`
		ExpirationDate string  `json:"expiration_date" validate:"omitempty"`
	}

	UpdatePantryItemRequest struct {
		Name           string   `json:"name" validate:"omitempty"`
		Quantity       *float64 `json:"quantity" validate:"omitempty,min=0"`
		Unit           string   `json:"unit" validate:"omitempty,oneof=piece kg g l ml"`
		ExpirationDate string   `json:"expiration_date" validate:"omitempty"`
	}

	PantryItemResponse struct {
		ID             string  `json:"id"`
		Name           string  `json:"name"`
		Quantity       float64 `json:"quantity"`
		Unit           string  `json:"unit"`
		ExpirationDate string  `json:"expiration_date,omitempty"`
	}
)
