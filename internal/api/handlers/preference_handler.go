package handlers

import (
	"family-hub-backend/domain"
	"family-hub-backend/internal/api/presenters"
	"family-hub-backend/pkg/preference"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	PreferenceHandler interface {
		GetPreferences(c *fiber.Ctx) error
		SetDietaryPreferences(c *fiber.Ctx) error
		SetBudget(c *fiber.Ctx) error
	}

	preferenceHandler struct {
		preferenceService preference.PreferenceService
		validator         *validator.Validate
	}
)

func NewPreferenceHandler(preferenceService preference.PreferenceService, validator *validator.Validate) PreferenceHandler {
	return &preferenceHandler{
		preferenceService: preferenceService,
		validator:         validator,
	}
}

func (h *preferenceHandler) GetPreferences(c *fiber.Ctx) error {
	familyID := c.Locals("family_id").(string)

	res, err := h.preferenceService.GetPreferences(c.Context(), familyID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetPreferences, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetPreferences)
}

func (h *preferenceHandler) SetDietaryPreferences(c *fiber.Ctx) error {
	familyID := c.Locals("family_id").(string)
	req := new(domain.SetDietaryPreferencesRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSetPreferences, err)
	}

	if err := h.preferenceService.SetDietaryPreferences(c.Context(), *req, familyID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSetPreferences, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessSetPreferences)
}

func (h *preferenceHandler) SetBudget(c *fiber.Ctx) error {
	familyID := c.Locals("family_id").(string)
	req := new(domain.SetBudgetRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSetPreferences, err)
	}

	if err := h.preferenceService.SetBudget(c.Context(), *req, familyID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSetPreferences, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessSetPreferences)
}
