package handlers

import (
	"errors"

	"family-hub-backend/domain"
	"family-hub-backend/internal/api/presenters"
	"family-hub-backend/pkg/task"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	TaskHandler interface {
		AddTask(c *fiber.Ctx) error
		GetTasks(c *fiber.Ctx) error
		UpdateTask(c *fiber.Ctx) error
		UpdateTaskStatus(c *fiber.Ctx) error
		DeleteTask(c *fiber.Ctx) error
	}

	taskHandler struct {
		taskService task.TaskService
		validator   *validator.Validate
	}
)

func NewTaskHandler(taskService task.TaskService, validator *validator.Validate) TaskHandler {
	return &taskHandler{
		taskService: taskService,
		validator:   validator,
	}
}

func (h *taskHandler) AddTask(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	familyID := c.Locals("family_id").(string)
	req := new(domain.AddTaskRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddTask, err)
	}

	res, err := h.taskService.AddTask(c.Context(), *req, familyID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddTask, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddTask)
}

func (h *taskHandler) GetTasks(c *fiber.Ctx) error {
	familyID := c.Locals("family_id").(string)
	query := new(domain.TaskQuery)

	if err := c.QueryParser(query); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(query); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetTasks, err)
	}

	res, err := h.taskService.GetTasks(c.Context(), familyID, *query)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetTasks, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetTasks)
}

func (h *taskHandler) UpdateTask(c *fiber.Ctx) error {
	familyID := c.Locals("family_id").(string)
	taskID := c.Params("id")
	req := new(domain.UpdateTaskRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateTask, err)
	}

	res, err := h.taskService.UpdateTask(c.Context(), taskID, *req, familyID)
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUpdateTask, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateTask, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateTask)
}

func (h *taskHandler) UpdateTaskStatus(c *fiber.Ctx) error {
	familyID := c.Locals("family_id").(string)
	taskID := c.Params("id")
	req := new(domain.UpdateTaskStatusRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateTask, err)
	}

	res, err := h.taskService.UpdateTaskStatus(c.Context(), taskID, *req, familyID)
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUpdateTask, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateTask, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateTask)
}

func (h *taskHandler) DeleteTask(c *fiber.Ctx) error {
	familyID := c.Locals("family_id").(string)
	taskID := c.Params("id")

	if err := h.taskService.DeleteTask(c.Context(), taskID, familyID); err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedDeleteTask, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteTask, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteTask)
}
