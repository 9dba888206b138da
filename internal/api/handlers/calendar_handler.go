package handlers

import (
	"errors"

	"family-hub-backend/domain"
	"family-hub-backend/internal/api/presenters"
	"family-hub-backend/pkg/calendar"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	CalendarHandler interface {
		AddEvent(c *fiber.Ctx) error
		GetEvents(c *fiber.Ctx) error
		UpdateEvent(c *fiber.Ctx) error
		DeleteEvent(c *fiber.Ctx) error
		SyncAllTasks(c *fiber.Ctx) error
		SyncAllMeals(c *fiber.Ctx) error
	}

	calendarHandler struct {
		calendarService calendar.CalendarService
		validator       *validator.Validate
	}
)

func NewCalendarHandler(calendarService calendar.CalendarService, validator *validator.Validate) CalendarHandler {
	return &calendarHandler{
		calendarService: calendarService,
		validator:       validator,
	}
}

func (h *calendarHandler) AddEvent(c *fiber.Ctx) error {
	familyID := c.Locals("family_id").(string)
	req := new(domain.AddEventRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddEvent, err)
	}

	res, err := h.calendarService.AddEvent(c.Context(), *req, familyID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddEvent, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddEvent)
}

func (h *calendarHandler) GetEvents(c *fiber.Ctx) error {
	familyID := c.Locals("family_id").(string)
	eventType := c.Query("type")

	res, err := h.calendarService.GetEvents(c.Context(), familyID, eventType)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetEvents, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetEvents)
}

func (h *calendarHandler) UpdateEvent(c *fiber.Ctx) error {
	familyID := c.Locals("family_id").(string)
	eventID := c.Params("id")
	req := new(domain.UpdateEventRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateEvent, err)
	}

	if err := h.calendarService.UpdateEvent(c.Context(), eventID, *req, familyID); err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUpdateEvent, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateEvent, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateEvent)
}

func (h *calendarHandler) DeleteEvent(c *fiber.Ctx) error {
	familyID := c.Locals("family_id").(string)
	eventID := c.Params("id")

	if err := h.calendarService.DeleteEvent(c.Context(), eventID, familyID); err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedDeleteEvent, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteEvent, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteEvent)
}

func (h *calendarHandler) SyncAllTasks(c *fiber.Ctx) error {
	familyID := c.Locals("family_id").(string)

	synced, err := h.calendarService.SyncAllTasks(c.Context(), familyID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSyncEvents, err)
	}

	return presenters.SuccessResponse(c, domain.SyncResponse{Synced: synced}, fiber.StatusOK, domain.MessageSuccessSyncEvents)
}

func (h *calendarHandler) SyncAllMeals(c *fiber.Ctx) error {
	familyID := c.Locals("family_id").(string)

	synced, err := h.calendarService.SyncAllMeals(c.Context(), familyID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSyncEvents, err)
	}

	return presenters.SuccessResponse(c, domain.SyncResponse{Synced: synced}, fiber.StatusOK, domain.MessageSuccessSyncEvents)
}
