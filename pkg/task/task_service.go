package task

import (
	"context"
	"errors"
	"sort"
	"time"

	"family-hub-backend/domain"
	"family-hub-backend/entities"
	"family-hub-backend/pkg/calendar"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
)

type (
	TaskService interface {
		AddTask(ctx context.Context, req domain.AddTaskRequest, familyID, userID string) (domain.TaskResponse, error)
		GetTasks(ctx context.Context, familyID string, query domain.TaskQuery) ([]domain.TaskResponse, error)
		UpdateTask(ctx context.Context, id string, req domain.UpdateTaskRequest, familyID string) (domain.TaskResponse, error)
		UpdateTaskStatus(ctx context.Context, id string, req domain.UpdateTaskStatusRequest, familyID string) (domain.TaskResponse, error)
		DeleteTask(ctx context.Context, id string, familyID string) error
	}

	taskService struct {
		taskRepository  TaskRepository
		calendarService calendar.CalendarService
	}
)

func NewTaskService(taskRepository TaskRepository, calendarService calendar.CalendarService) TaskService {
	return &taskService{
		taskRepository:  taskRepository,
		calendarService: calendarService,
	}
}

func (s *taskService) AddTask(ctx context.Context, req domain.AddTaskRequest, familyID, userID string) (domain.TaskResponse, error) {
	var dueDate time.Time
	if req.DueDate != "" {
		parsed, err := time.Parse("2006-01-02", req.DueDate)
		if err != nil {
			return domain.TaskResponse{}, domain.ErrInvalidDueDate
		}
		dueDate = parsed
	}

	priority := req.Priority
	if priority == "" {
		priority = "medium"
	}

	task := &entities.Task{
		ID:                uuid.New().String(),
		FamilyID:          familyID,
		Title:             req.Title,
		Description:       req.Description,
		Assignee:          req.Assignee,
		DueDate:           dueDate,
		Priority:          priority,
		Status:            "not started",
		IsRecurring:       req.IsRecurring,
		RecurrencePattern: req.RecurrencePattern,
		CreatedBy:         userID,
	}
	task.CreatedAt = time.Now()
	task.UpdatedAt = task.CreatedAt

	if err := s.taskRepository.AddTask(ctx, task); err != nil {
		return domain.TaskResponse{}, err
	}

	if err := s.calendarService.SyncTask(ctx, familyID, task); err != nil {
		return domain.TaskResponse{}, err
	}

	return toTaskResponse(task), nil
}

// GetTasks filters and sorts in memory. The repository hands back the whole
// family collection; list sizes here stay small enough that pushing the sort
// into the query buys nothing.
func (s *taskService) GetTasks(ctx context.Context, familyID string, query domain.TaskQuery) ([]domain.TaskResponse, error) {
	tasks, err := s.taskRepository.GetTasks(ctx, familyID)
	if err != nil {
		return nil, err
	}

	filtered := make([]*entities.Task, 0, len(tasks))
	for _, task := range tasks {
		if query.Status != "" && task.Status != query.Status {
			continue
		}
		if query.Assignee != "" && task.Assignee != query.Assignee {
			continue
		}
		if query.Priority != "" && task.Priority != query.Priority {
			continue
		}
		filtered = append(filtered, task)
	}

	sortTasks(filtered, query.SortBy)

	result := make([]domain.TaskResponse, 0, len(filtered))
	for _, task := range filtered {
		result = append(result, toTaskResponse(task))
	}
	return result, nil
}

var priorityRank = map[string]int{"high": 0, "medium": 1, "low": 2}

func sortTasks(tasks []*entities.Task, sortBy string) {
	switch sortBy {
	case "due_date":
		// tasks without a due date sort last
		sort.SliceStable(tasks, func(i, j int) bool {
			if tasks[i].DueDate.IsZero() {
				return false
			}
			if tasks[j].DueDate.IsZero() {
				return true
			}
			return tasks[i].DueDate.Before(tasks[j].DueDate)
		})
	case "priority":
		sort.SliceStable(tasks, func(i, j int) bool {
			return priorityRank[tasks[i].Priority] < priorityRank[tasks[j].Priority]
		})
	case "created_at":
		sort.SliceStable(tasks, func(i, j int) bool {
			return tasks[i].CreatedAt.After(tasks[j].CreatedAt)
		})
	}
}

func (s *taskService) UpdateTask(ctx context.Context, id string, req domain.UpdateTaskRequest, familyID string) (domain.TaskResponse, error) {
	task, err := s.taskRepository.GetTaskByID(ctx, familyID, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.TaskResponse{}, domain.ErrTaskNotFound
		}
		return domain.TaskResponse{}, err
	}

	if req.Title != "" {
		task.Title = req.Title
	}
	if req.Description != "" {
		task.Description = req.Description
	}
	if req.Assignee != "" {
		task.Assignee = req.Assignee
	}
	if req.DueDate != "" {
		dueDate, err := time.Parse("2006-01-02", req.DueDate)
		if err != nil {
			return domain.TaskResponse{}, domain.ErrInvalidDueDate
		}
		task.DueDate = dueDate
	}
	if req.Priority != "" {
		task.Priority = req.Priority
	}
	if req.Status != "" {
		task.Status = req.Status
	}
	if req.IsRecurring != nil {
		task.IsRecurring = *req.IsRecurring
	}
	if req.RecurrencePattern != "" {
		task.RecurrencePattern = req.RecurrencePattern
	}
	task.UpdatedAt = time.Now()

	if err := s.taskRepository.UpdateTask(ctx, task); err != nil {
		return domain.TaskResponse{}, err
	}

	if err := s.calendarService.UpdateTaskMirror(ctx, familyID, task); err != nil {
		return domain.TaskResponse{}, err
	}

	return toTaskResponse(task), nil
}

func (s *taskService) UpdateTaskStatus(ctx context.Context, id string, req domain.UpdateTaskStatusRequest, familyID string) (domain.TaskResponse, error) {
	task, err := s.taskRepository.GetTaskByID(ctx, familyID, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.TaskResponse{}, domain.ErrTaskNotFound
		}
		return domain.TaskResponse{}, err
	}

	task.Status = req.Status
	task.UpdatedAt = time.Now()

	if err := s.taskRepository.UpdateTask(ctx, task); err != nil {
		return domain.TaskResponse{}, err
	}
	return toTaskResponse(task), nil
}

func (s *taskService) DeleteTask(ctx context.Context, id string, familyID string) error {
	if err := s.taskRepository.DeleteTask(ctx, familyID, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.ErrTaskNotFound
		}
		return err
	}
	return s.calendarService.RemoveMirror(ctx, familyID, id)
}

func toTaskResponse(task *entities.Task) domain.TaskResponse {
	dueDate := ""
	if !task.DueDate.IsZero() {
		dueDate = task.DueDate.Format("2006-01-02")
	}

	return domain.TaskResponse{
		ID:                task.ID,
		Title:             task.Title,
		Description:       task.Description,
		Assignee:          task.Assignee,
		DueDate:           dueDate,
		Priority:          task.Priority,
		Status:            task.Status,
		IsRecurring:       task.IsRecurring,
		RecurrencePattern: task.RecurrencePattern,
		CreatedAt:         task.CreatedAt,
	}
}
