package calendar

import (
	"context"
	"errors"
	"fmt"
	"time"

	"family-hub-backend/domain"
	"family-hub-backend/entities"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
)

type (
	// TaskSource and MealSource are the read-only slices of the task and meal
	// repositories the bulk sync operations iterate over.
	TaskSource interface {
		GetTasks(ctx context.Context, familyID string) ([]*entities.Task, error)
	}

	MealSource interface {
		GetMealsByFamily(ctx context.Context, familyID string) ([]*entities.MealPlanEntry, error)
	}

	CalendarService interface {
		AddEvent(ctx context.Context, req domain.AddEventRequest, familyID string) (domain.EventResponse, error)
		UpdateEvent(ctx context.Context, id string, req domain.UpdateEventRequest, familyID string) error
		DeleteEvent(ctx context.Context, id string, familyID string) error
		GetEvents(ctx context.Context, familyID, eventType string) ([]domain.EventResponse, error)

		SyncTask(ctx context.Context, familyID string, task *entities.Task) error
		SyncMeal(ctx context.Context, familyID string, meal *entities.MealPlanEntry) error
		UpdateTaskMirror(ctx context.Context, familyID string, task *entities.Task) error
		UpdateMealMirror(ctx context.Context, familyID string, meal *entities.MealPlanEntry) error
		RemoveMirror(ctx context.Context, familyID, sourceID string) error
		SyncAllTasks(ctx context.Context, familyID string) (int, error)
		SyncAllMeals(ctx context.Context, familyID string) (int, error)
	}

	calendarService struct {
		calendarRepository CalendarRepository
		tasks              TaskSource
		meals              MealSource
	}
)

func NewCalendarService(calendarRepository CalendarRepository, tasks TaskSource, meals MealSource) CalendarService {
	return &calendarService{
		calendarRepository: calendarRepository,
		tasks:              tasks,
		meals:              meals,
	}
}

func (s *calendarService) AddEvent(ctx context.Context, req domain.AddEventRequest, familyID string) (domain.EventResponse, error) {
	start, err := time.Parse(time.RFC3339, req.Start)
	if err != nil {
		return domain.EventResponse{}, domain.ErrInvalidEventTime
	}
	end, err := time.Parse(time.RFC3339, req.End)
	if err != nil {
		return domain.EventResponse{}, domain.ErrInvalidEventTime
	}
	if end.Before(start) {
		return domain.EventResponse{}, domain.ErrInvalidEventTime
	}

	eventType := req.Type
	if eventType == "" {
		eventType = entities.EventTypeGeneral
	}

	event := &entities.CalendarEvent{
		ID:       uuid.New().String(),
		FamilyID: familyID,
		Title:    req.Title,
		Start:    start,
		End:      end,
		AllDay:   req.AllDay,
		Type:     eventType,
	}
	event.CreatedAt = time.Now()
	event.UpdatedAt = event.CreatedAt

	if err := s.calendarRepository.AddEvent(ctx, event); err != nil {
		return domain.EventResponse{}, err
	}

	return toEventResponse(event), nil
}

func (s *calendarService) UpdateEvent(ctx context.Context, id string, req domain.UpdateEventRequest, familyID string) error {
	event, err := s.calendarRepository.GetEventByID(ctx, familyID, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.ErrEventNotFound
		}
		return err
	}

	if req.Title != "" {
		event.Title = req.Title
	}
	if req.Start != "" {
		start, err := time.Parse(time.RFC3339, req.Start)
		if err != nil {
			return domain.ErrInvalidEventTime
		}
		event.Start = start
	}
	if req.End != "" {
		end, err := time.Parse(time.RFC3339, req.End)
		if err != nil {
			return domain.ErrInvalidEventTime
		}
		event.End = end
	}
	if req.AllDay != nil {
		event.AllDay = *req.AllDay
	}
	if event.End.Before(event.Start) {
		return domain.ErrInvalidEventTime
	}

	return s.calendarRepository.UpdateEvent(ctx, event)
}

func (s *calendarService) DeleteEvent(ctx context.Context, id string, familyID string) error {
	if err := s.calendarRepository.DeleteEvent(ctx, familyID, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.ErrEventNotFound
		}
		return err
	}
	return nil
}

func (s *calendarService) GetEvents(ctx context.Context, familyID, eventType string) ([]domain.EventResponse, error) {
	events, err := s.calendarRepository.GetEvents(ctx, familyID, eventType)
	if err != nil {
		return nil, err
	}

	result := make([]domain.EventResponse, 0, len(events))
	for _, event := range events {
		result = append(result, toEventResponse(event))
	}
	return result, nil
}

// SyncTask mirrors a task into the calendar: the due date becomes an all-day
// event carrying the task title. Tasks without a due date have nothing to
// mirror.
func (s *calendarService) SyncTask(ctx context.Context, familyID string, task *entities.Task) error {
	if task.DueDate.IsZero() {
		return nil
	}
	return s.calendarRepository.AddEvent(ctx, mirrorTask(familyID, task))
}

// SyncMeal mirrors a meal plan entry as a "<mealType>: <title>" event on the
// planned date.
func (s *calendarService) SyncMeal(ctx context.Context, familyID string, meal *entities.MealPlanEntry) error {
	return s.calendarRepository.AddEvent(ctx, mirrorMeal(familyID, meal))
}

// UpdateTaskMirror re-dates and retitles the task's mirror events. Losing the
// due date removes the mirror; gaining one when no mirror exists yet creates
// it.
func (s *calendarService) UpdateTaskMirror(ctx context.Context, familyID string, task *entities.Task) error {
	if task.DueDate.IsZero() {
		return s.calendarRepository.DeleteEventsBySource(ctx, familyID, task.ID)
	}

	matched, err := s.calendarRepository.UpdateEventsBySource(ctx, familyID, task.ID, task.Title, task.DueDate, task.DueDate)
	if err != nil {
		return err
	}
	if matched == 0 {
		return s.calendarRepository.AddEvent(ctx, mirrorTask(familyID, task))
	}
	return nil
}

func (s *calendarService) UpdateMealMirror(ctx context.Context, familyID string, meal *entities.MealPlanEntry) error {
	title := fmt.Sprintf("%s: %s", meal.MealType, meal.Title)

	matched, err := s.calendarRepository.UpdateEventsBySource(ctx, familyID, meal.ID, title, meal.Date, meal.Date)
	if err != nil {
		return err
	}
	if matched == 0 {
		return s.calendarRepository.AddEvent(ctx, mirrorMeal(familyID, meal))
	}
	return nil
}

func (s *calendarService) RemoveMirror(ctx context.Context, familyID, sourceID string) error {
	return s.calendarRepository.DeleteEventsBySource(ctx, familyID, sourceID)
}

// SyncAllTasks creates one calendar event per task document, unconditionally.
// There is no upsert-by-source check: invoking this twice mirrors every task
// twice. Known limitation carried over from the current product behavior.
func (s *calendarService) SyncAllTasks(ctx context.Context, familyID string) (int, error) {
	tasks, err := s.tasks.GetTasks(ctx, familyID)
	if err != nil {
		return 0, err
	}

	synced := 0
	for _, task := range tasks {
		if task.DueDate.IsZero() {
			continue
		}
		if err := s.calendarRepository.AddEvent(ctx, mirrorTask(familyID, task)); err != nil {
			return synced, err
		}
		synced++
	}
	return synced, nil
}

// SyncAllMeals behaves like SyncAllTasks for meal plan entries, duplicates
// included.
func (s *calendarService) SyncAllMeals(ctx context.Context, familyID string) (int, error) {
	meals, err := s.meals.GetMealsByFamily(ctx, familyID)
	if err != nil {
		return 0, err
	}

	synced := 0
	for _, meal := range meals {
		if err := s.calendarRepository.AddEvent(ctx, mirrorMeal(familyID, meal)); err != nil {
			return synced, err
		}
		synced++
	}
	return synced, nil
}

func mirrorTask(familyID string, task *entities.Task) *entities.CalendarEvent {
	now := time.Now()
	return &entities.CalendarEvent{
		ID:        uuid.New().String(),
		FamilyID:  familyID,
		Title:     task.Title,
		Start:     task.DueDate,
		End:       task.DueDate,
		AllDay:    true,
		Type:      entities.EventTypeTask,
		SourceID:  task.ID,
		Timestamp: entities.Timestamp{CreatedAt: now, UpdatedAt: now},
	}
}

func mirrorMeal(familyID string, meal *entities.MealPlanEntry) *entities.CalendarEvent {
	now := time.Now()
	return &entities.CalendarEvent{
		ID:        uuid.New().String(),
		FamilyID:  familyID,
		Title:     fmt.Sprintf("%s: %s", meal.MealType, meal.Title),
		Start:     meal.Date,
		End:       meal.Date,
		AllDay:    false,
		Type:      entities.EventTypeMeal,
		SourceID:  meal.ID,
		Timestamp: entities.Timestamp{CreatedAt: now, UpdatedAt: now},
	}
}

func toEventResponse(event *entities.CalendarEvent) domain.EventResponse {
	return domain.EventResponse{
		ID:       event.ID,
		Title:    event.Title,
		Start:    event.Start,
		End:      event.End,
		AllDay:   event.AllDay,
		Type:     event.Type,
		SourceID: event.SourceID,
	}
}
