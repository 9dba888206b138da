package handlers

import (
	"errors"
	"time"

	"family-hub-backend/domain"
	"family-hub-backend/internal/api/presenters"
	"family-hub-backend/pkg/grocery"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	GroceryHandler interface {
		AddGroceryItem(c *fiber.Ctx) error
		GetGroceryItems(c *fiber.Ctx) error
		ToggleGroceryItem(c *fiber.Ctx) error
		DeleteGroceryItem(c *fiber.Ctx) error
		MoveToPantry(c *fiber.Ctx) error
		GenerateFromMealPlan(c *fiber.Ctx) error
	}

	groceryHandler struct {
		groceryService grocery.GroceryService
		validator      *validator.Validate
	}
)

func NewGroceryHandler(groceryService grocery.GroceryService, validator *validator.Validate) GroceryHandler {
	return &groceryHandler{
		groceryService: groceryService,
		validator:      validator,
	}
}

func (h *groceryHandler) AddGroceryItem(c *fiber.Ctx) error {
	familyID := c.Locals("family_id").(string)
	req := new(domain.AddGroceryItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddGroceryItem, err)
	}

	res, err := h.groceryService.AddGroceryItem(c.Context(), *req, familyID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddGroceryItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddGroceryItem)
}

func (h *groceryHandler) GetGroceryItems(c *fiber.Ctx) error {
	familyID := c.Locals("family_id").(string)

	res, err := h.groceryService.GetGroceryItems(c.Context(), familyID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetGroceryItems, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetGroceryItems)
}

func (h *groceryHandler) ToggleGroceryItem(c *fiber.Ctx) error {
	familyID := c.Locals("family_id").(string)
	itemID := c.Params("id")

	res, err := h.groceryService.ToggleGroceryItem(c.Context(), itemID, familyID)
	if err != nil {
		if errors.Is(err, domain.ErrGroceryItemNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedToggleGroceryItem, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedToggleGroceryItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessToggleGroceryItem)
}

func (h *groceryHandler) DeleteGroceryItem(c *fiber.Ctx) error {
	familyID := c.Locals("family_id").(string)
	itemID := c.Params("id")

	if err := h.groceryService.DeleteGroceryItem(c.Context(), itemID, familyID); err != nil {
		if errors.Is(err, domain.ErrGroceryItemNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedDeleteGroceryItem, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteGroceryItem, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteGroceryItem)
}

func (h *groceryHandler) MoveToPantry(c *fiber.Ctx) error {
	familyID := c.Locals("family_id").(string)
	itemID := c.Params("id")

	if err := h.groceryService.MoveToPantry(c.Context(), itemID, familyID); err != nil {
		if errors.Is(err, domain.ErrGroceryItemNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedMoveToPantry, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedMoveToPantry, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessMoveToPantry)
}

func (h *groceryHandler) GenerateFromMealPlan(c *fiber.Ctx) error {
	familyID := c.Locals("family_id").(string)

	anchor := time.Now()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGenerateGrocery, domain.ErrInvalidMealDate)
		}
		anchor = parsed
	}

	res, err := h.groceryService.GenerateFromMealPlan(c.Context(), familyID, anchor)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGenerateGrocery, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessGenerateGrocery)
}
