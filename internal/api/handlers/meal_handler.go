package handlers

import (
	"errors"
	"time"

	"family-hub-backend/domain"
	"family-hub-backend/internal/api/presenters"
	"family-hub-backend/pkg/meal"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	MealHandler interface {
		AddMealToPlan(c *fiber.Ctx) error
		GetWeeklyPlan(c *fiber.Ctx) error
		DeleteMeal(c *fiber.Ctx) error
		GenerateMealPlan(c *fiber.Ctx) error
	}

	mealHandler struct {
		mealService meal.MealService
		validator   *validator.Validate
	}
)

func NewMealHandler(mealService meal.MealService, validator *validator.Validate) MealHandler {
	return &mealHandler{
		mealService: mealService,
		validator:   validator,
	}
}

func (h *mealHandler) AddMealToPlan(c *fiber.Ctx) error {
	familyID := c.Locals("family_id").(string)
	req := new(domain.AddMealRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddMeal, err)
	}

	res, err := h.mealService.AddMealToPlan(c.Context(), *req, familyID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddMeal, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddMeal)
}

// GetWeeklyPlan serves the week containing the anchor date (?date=YYYY-MM-DD,
// defaults to today). Week navigation is the client passing date±7d.
func (h *mealHandler) GetWeeklyPlan(c *fiber.Ctx) error {
	familyID := c.Locals("family_id").(string)

	anchor := time.Now()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetWeeklyPlan, domain.ErrInvalidMealDate)
		}
		anchor = parsed
	}

	res, err := h.mealService.GetWeeklyPlan(c.Context(), familyID, anchor)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetWeeklyPlan, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetWeeklyPlan)
}

func (h *mealHandler) DeleteMeal(c *fiber.Ctx) error {
	familyID := c.Locals("family_id").(string)
	mealID := c.Params("id")

	if err := h.mealService.DeleteMeal(c.Context(), mealID, familyID); err != nil {
		if errors.Is(err, domain.ErrMealNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedDeleteMeal, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteMeal, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteMeal)
}

func (h *mealHandler) GenerateMealPlan(c *fiber.Ctx) error {
	familyID := c.Locals("family_id").(string)
	req := new(domain.GenerateMealPlanRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGeneratePlan, err)
	}

	res, err := h.mealService.GenerateMealPlan(c.Context(), *req, familyID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadGateway, domain.MessageFailedGeneratePlan, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessGeneratePlan)
}
