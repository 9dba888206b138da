package handlers

import (
	"errors"

	"family-hub-backend/domain"
	"family-hub-backend/internal/api/presenters"
	"family-hub-backend/pkg/activity"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ActivityHandler interface {
		AddEvent(c *fiber.Ctx) error
		AddVacation(c *fiber.Ctx) error
		AddBucketListItem(c *fiber.Ctx) error
		GetActivities(c *fiber.Ctx) error
		UpdateActivityStatus(c *fiber.Ctx) error
		DeleteActivity(c *fiber.Ctx) error
		UploadActivityPhoto(c *fiber.Ctx) error
	}

	activityHandler struct {
		activityService activity.ActivityService
		validator       *validator.Validate
	}
)

func NewActivityHandler(activityService activity.ActivityService, validator *validator.Validate) ActivityHandler {
	return &activityHandler{
		activityService: activityService,
		validator:       validator,
	}
}

func (h *activityHandler) AddEvent(c *fiber.Ctx) error {
	familyID := c.Locals("family_id").(string)
	req := new(domain.AddEventActivityRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddActivity, err)
	}

	res, err := h.activityService.AddEvent(c.Context(), *req, familyID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddActivity, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddActivity)
}

func (h *activityHandler) AddVacation(c *fiber.Ctx) error {
	familyID := c.Locals("family_id").(string)
	req := new(domain.AddVacationRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddActivity, err)
	}

	res, err := h.activityService.AddVacation(c.Context(), *req, familyID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddActivity, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddActivity)
}

func (h *activityHandler) AddBucketListItem(c *fiber.Ctx) error {
	familyID := c.Locals("family_id").(string)
	req := new(domain.AddBucketListItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddActivity, err)
	}

	res, err := h.activityService.AddBucketListItem(c.Context(), *req, familyID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddActivity, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddActivity)
}

func (h *activityHandler) GetActivities(c *fiber.Ctx) error {
	familyID := c.Locals("family_id").(string)
	activityType := c.Query("type")

	res, err := h.activityService.GetActivities(c.Context(), familyID, activityType)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetActivities, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetActivities)
}

func (h *activityHandler) UpdateActivityStatus(c *fiber.Ctx) error {
	familyID := c.Locals("family_id").(string)
	activityID := c.Params("id")
	req := new(domain.UpdateActivityStatusRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateActivity, err)
	}

	res, err := h.activityService.UpdateActivityStatus(c.Context(), activityID, *req, familyID)
	if err != nil {
		if errors.Is(err, domain.ErrActivityNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUpdateActivity, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateActivity, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateActivity)
}

func (h *activityHandler) DeleteActivity(c *fiber.Ctx) error {
	familyID := c.Locals("family_id").(string)
	activityID := c.Params("id")

	if err := h.activityService.DeleteActivity(c.Context(), activityID, familyID); err != nil {
		if errors.Is(err, domain.ErrActivityNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedDeleteActivity, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteActivity, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteActivity)
}

func (h *activityHandler) UploadActivityPhoto(c *fiber.Ctx) error {
	familyID := c.Locals("family_id").(string)
	activityID := c.Params("id")

	file, err := c.FormFile("photo")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.activityService.UploadActivityPhoto(c.Context(), activityID, file, familyID)
	if err != nil {
		if errors.Is(err, domain.ErrActivityNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUploadPhoto, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadPhoto, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUploadPhoto)
}
