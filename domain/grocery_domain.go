package domain

import (
	"errors"
)

var (
	MessageSuccessAddGroceryItem    = "grocery item added successfully"
	MessageSuccessToggleGroceryItem = "grocery item toggled successfully"
	MessageSuccessDeleteGroceryItem = "grocery item removed successfully"
	MessageSuccessGetGroceryItems   = "grocery list retrieved successfully"
	MessageSuccessMoveToPantry      = "grocery item moved to pantry successfully"
	MessageSuccessGenerateGrocery   = "grocery list generated successfully"
	MessageFailedAddGroceryItem     = "failed to add grocery item"
	MessageFailedToggleGroceryItem  = "failed to toggle grocery item"
	MessageFailedDeleteGroceryItem  = "failed to remove grocery item"
	MessageFailedGetGroceryItems    = "failed to retrieve grocery list"
	MessageFailedMoveToPantry       = "failed to move grocery item to pantry"
	MessageFailedGenerateGrocery    = "failed to generate grocery list"

	ErrGroceryItemNotFound = errors.New("grocery item not found")
)

type (
	AddGroceryItemRequest struct {
		Name     string  `json:"name" validate:"required"`
		Quantity float64 `json:"quantity" validate:"required,min=0"`
		Unit     string  `json:"unit" validate:"required,oneof=piece kg g l ml"`
	}

	GroceryItemResponse struct {
		ID       string  `json:"id"`
		Name     string  `json:"name"`
		Quantity float64 `json:"quantity"`
		Unit     string  `json:"unit"`
		Checked  bool    `json:"checked"`
	}

	GenerateGroceryResponse struct {
		Items []GroceryItemResponse `json:"items"`
	}
)
