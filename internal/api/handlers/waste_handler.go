package handlers

import (
	"errors"

	"family-hub-backend/domain"
	"family-hub-backend/internal/api/presenters"
	"family-hub-backend/pkg/waste"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	WasteHandler interface {
		AddWasteEntry(c *fiber.Ctx) error
		GetWasteLog(c *fiber.Ctx) error
		GetWasteStats(c *fiber.Ctx) error
		DeleteWasteEntry(c *fiber.Ctx) error
	}

	wasteHandler struct {
		wasteService waste.WasteService
		validator    *validator.Validate
	}
)

func NewWasteHandler(wasteService waste.WasteService, validator *validator.Validate) WasteHandler {
	return &wasteHandler{
		wasteService: wasteService,
		validator:    validator,
	}
}

func (h *wasteHandler) AddWasteEntry(c *fiber.Ctx) error {
	familyID := c.Locals("family_id").(string)
	req := new(domain.AddWasteEntryRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddWasteEntry, err)
	}

	res, err := h.wasteService.AddWasteEntry(c.Context(), *req, familyID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddWasteEntry, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddWasteEntry)
}

func (h *wasteHandler) GetWasteLog(c *fiber.Ctx) error {
	familyID := c.Locals("family_id").(string)

	res, err := h.wasteService.GetWasteLog(c.Context(), familyID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetWasteLog, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetWasteLog)
}

func (h *wasteHandler) GetWasteStats(c *fiber.Ctx) error {
	familyID := c.Locals("family_id").(string)

	res, err := h.wasteService.GetWasteStats(c.Context(), familyID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetWasteStats, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetWasteStats)
}

func (h *wasteHandler) DeleteWasteEntry(c *fiber.Ctx) error {
	familyID := c.Locals("family_id").(string)
	entryID := c.Params("id")

	if err := h.wasteService.DeleteWasteEntry(c.Context(), entryID, familyID); err != nil {
		if errors.Is(err, domain.ErrWasteEntryNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedDeleteWaste, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteWaste, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteWaste)
}
