package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessAddTask    = "task added successfully"
	MessageSuccessUpdateTask = "task updated successfully"
	MessageSuccessDeleteTask = "task deleted successfully"
	MessageSuccessGetTasks   = "tasks retrieved successfully"
	MessageFailedAddTask     = "failed to add task"
	MessageFailedUpdateTask  = "failed to update task"
	MessageFailedDeleteTask  = "failed to delete task"
	MessageFailedGetTasks    = "failed to retrieve tasks"

	ErrTaskNotFound   = errors.New("task not found")
	ErrInvalidDueDate = errors.New("invalid due date")
	ErrInvalidStatus  = errors.New("invalid task status")
)

type (
	AddTaskRequest struct {
		Title             string `json:"title" validate:"required"`
		Description       string `json:"description"`
		Assignee          string `json:"assignee"`
		DueDate           string `json:"due_date" validate:"omitempty"`
		Priority          string `json:"priority" validate:"omitempty,oneof=low medium high"`
		IsRecurring       bool   `json:"is_recurring"`
		RecurrencePattern string `json:"recurrence_pattern"`
	}

	UpdateTaskRequest struct {
		Title             string `json:"title" validate:"omitempty"`
		Description       string `json:"description" validate:"omitempty"`
		Assignee          string `json:"assignee" validate:"omitempty"`
		DueDate           string `json:"due_date" validate:"omitempty"`
		Priority          string `json:"priority" validate:"omitempty,oneof=low medium high"`
		Status            string `json:"status" validate:"omitempty,oneof='not started' 'in progress' completed"`
		IsRecurring       *bool  `json:"is_recurring" validate:"omitempty"`
		RecurrencePattern string `json:"recurrence_pattern" validate:"omitempty"`
	}

	UpdateTaskStatusRequest struct {
		Status string `json:"status" validate:"required,oneof='not started' 'in progress' completed"`
	}

	TaskQuery struct {
		Status   string `query:"status" validate:"omitempty,oneof='not started' 'in progress' completed"`
		Assignee string `query:"assignee"`
		Priority string `query:"priority" validate:"omitempty,oneof=low medium high"`
		SortBy   string `query:"sort_by" validate:"omitempty,oneof=due_date priority created_at"`
	}

	TaskResponse struct {
		ID                string    `json:"id"`
		Title             string    `json:"title"`
		Description       string    `json:"description"`
		Assignee          string    `json:"assignee"`
		DueDate           string    `json:"due_date,omitempty"`
		Priority          string    `json:"priority"`
		Status            string    `json:"status"`
		IsRecurring       bool      `json:"is_recurring"`
		RecurrencePattern string    `json:"recurrence_pattern,omitempty"`
		CreatedAt         time.Time `json:"created_at"`
	}
)
