package calendar

import (
	"context"
	"testing"
	"time"

	"family-hub-backend/domain"
	"family-hub-backend/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakeCalendarRepository struct {
	events []*entities.CalendarEvent
}

func (r *fakeCalendarRepository) AddEvent(_ context.Context, event *entities.CalendarEvent) error {
	r.events = append(r.events, event)
	return nil
}

func (r *fakeCalendarRepository) GetEventByID(_ context.Context, familyID, id string) (*entities.CalendarEvent, error) {
	for _, e := range r.events {
		if e.ID == id && e.FamilyID == familyID {
			return e, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *fakeCalendarRepository) GetEvents(_ context.Context, familyID, eventType string) ([]*entities.CalendarEvent, error) {
	var out []*entities.CalendarEvent
	for _, e := range r.events {
		if e.FamilyID != familyID {
			continue
		}
		if eventType != "" && e.Type != eventType {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (r *fakeCalendarRepository) UpdateEvent(_ context.Context, event *entities.CalendarEvent) error {
	for i, e := range r.events {
		if e.ID == event.ID {
			r.events[i] = event
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func (r *fakeCalendarRepository) UpdateEventsBySource(_ context.Context, familyID, sourceID, title string, start, end time.Time) (int64, error) {
	var matched int64
	for _, e := range r.events {
		if e.FamilyID == familyID && e.SourceID == sourceID {
			e.Title = title
			e.Start = start
			e.End = end
			matched++
		}
	}
	return matched, nil
}

func (r *fakeCalendarRepository) DeleteEvent(_ context.Context, familyID, id string) error {
	for i, e := range r.events {
		if e.ID == id && e.FamilyID == familyID {
			r.events = append(r.events[:i], r.events[i+1:]...)
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func (r *fakeCalendarRepository) DeleteEventsBySource(_ context.Context, familyID, sourceID string) error {
	kept := r.events[:0]
	for _, e := range r.events {
		if e.FamilyID != familyID || e.SourceID != sourceID {
			kept = append(kept, e)
		}
	}
	r.events = kept
	return nil
}

type fakeTaskSource struct {
	tasks []*entities.Task
}

func (s *fakeTaskSource) GetTasks(_ context.Context, _ string) ([]*entities.Task, error) {
	return s.tasks, nil
}

type fakeMealSource struct {
	meals []*entities.MealPlanEntry
}

func (s *fakeMealSource) GetMealsByFamily(_ context.Context, _ string) ([]*entities.MealPlanEntry, error) {
	return s.meals, nil
}

func dueTask(id, title string, due time.Time) *entities.Task {
	return &entities.Task{ID: id, FamilyID: "fam1", Title: title, DueDate: due}
}

func TestSyncTask(t *testing.T) {
	repo := &fakeCalendarRepository{}
	svc := NewCalendarService(repo, &fakeTaskSource{}, &fakeMealSource{})

	due := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	require.NoError(t, svc.SyncTask(context.Background(), "fam1", dueTask("t1", "Take out trash", due)))

	require.Len(t, repo.events, 1)
	event := repo.events[0]
	assert.Equal(t, "Take out trash", event.Title)
	assert.Equal(t, due, event.Start)
	assert.Equal(t, due, event.End)
	assert.True(t, event.AllDay)
	assert.Equal(t, entities.EventTypeTask, event.Type)
	assert.Equal(t, "t1", event.SourceID)
}

func TestSyncTaskWithoutDueDate(t *testing.T) {
	repo := &fakeCalendarRepository{}
	svc := NewCalendarService(repo, &fakeTaskSource{}, &fakeMealSource{})

	require.NoError(t, svc.SyncTask(context.Background(), "fam1", dueTask("t1", "Someday", time.Time{})))
	assert.Empty(t, repo.events)
}

func TestSyncMealTitle(t *testing.T) {
	repo := &fakeCalendarRepository{}
	svc := NewCalendarService(repo, &fakeTaskSource{}, &fakeMealSource{})

	date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	meal := &entities.MealPlanEntry{ID: "m1", FamilyID: "fam1", Title: "Pasta", MealType: "dinner", Date: date}
	require.NoError(t, svc.SyncMeal(context.Background(), "fam1", meal))

	require.Len(t, repo.events, 1)
	event := repo.events[0]
	assert.Equal(t, "dinner: Pasta", event.Title)
	assert.False(t, event.AllDay)
	assert.Equal(t, entities.EventTypeMeal, event.Type)
	assert.Equal(t, "m1", event.SourceID)
}

func TestSyncAllTasksDuplicatesOnRepeat(t *testing.T) {
	due := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	tasks := &fakeTaskSource{tasks: []*entities.Task{
		dueTask("t1", "one", due),
		dueTask("t2", "two", due.AddDate(0, 0, 1)),
		dueTask("t3", "three", due.AddDate(0, 0, 2)),
	}}
	repo := &fakeCalendarRepository{}
	svc := NewCalendarService(repo, tasks, &fakeMealSource{})

	synced, err := svc.SyncAllTasks(context.Background(), "fam1")
	require.NoError(t, err)
	assert.Equal(t, 3, synced)
	assert.Len(t, repo.events, 3)

	// no upsert-by-source: a second run mirrors everything again
	synced, err = svc.SyncAllTasks(context.Background(), "fam1")
	require.NoError(t, err)
	assert.Equal(t, 3, synced)
	assert.Len(t, repo.events, 6)
}

func TestSyncAllTasksSkipsUndated(t *testing.T) {
	tasks := &fakeTaskSource{tasks: []*entities.Task{
		dueTask("t1", "dated", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)),
		dueTask("t2", "undated", time.Time{}),
	}}
	repo := &fakeCalendarRepository{}
	svc := NewCalendarService(repo, tasks, &fakeMealSource{})

	synced, err := svc.SyncAllTasks(context.Background(), "fam1")
	require.NoError(t, err)
	assert.Equal(t, 1, synced)
	assert.Len(t, repo.events, 1)
}

func TestUpdateTaskMirror(t *testing.T) {
	repo := &fakeCalendarRepository{}
	svc := NewCalendarService(repo, &fakeTaskSource{}, &fakeMealSource{})

	due := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	task := dueTask("t1", "before", due)
	require.NoError(t, svc.SyncTask(context.Background(), "fam1", task))

	task.Title = "after"
	task.DueDate = due.AddDate(0, 0, 2)
	require.NoError(t, svc.UpdateTaskMirror(context.Background(), "fam1", task))

	require.Len(t, repo.events, 1)
	assert.Equal(t, "after", repo.events[0].Title)
	assert.Equal(t, task.DueDate, repo.events[0].Start)

	// clearing the due date removes the mirror
	task.DueDate = time.Time{}
	require.NoError(t, svc.UpdateTaskMirror(context.Background(), "fam1", task))
	assert.Empty(t, repo.events)
}

func TestUpdateTaskMirrorCreatesMissingMirror(t *testing.T) {
	repo := &fakeCalendarRepository{}
	svc := NewCalendarService(repo, &fakeTaskSource{}, &fakeMealSource{})

	// undated on creation, so SyncTask left no mirror behind
	task := dueTask("t1", "Someday", time.Time{})
	require.NoError(t, svc.SyncTask(context.Background(), "fam1", task))
	require.Empty(t, repo.events)

	task.DueDate = time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	require.NoError(t, svc.UpdateTaskMirror(context.Background(), "fam1", task))

	require.Len(t, repo.events, 1)
	event := repo.events[0]
	assert.Equal(t, "t1", event.SourceID)
	assert.Equal(t, task.DueDate, event.Start)
	assert.Equal(t, task.DueDate, event.End)
	assert.True(t, event.AllDay)
}

func TestUpdateMealMirrorCreatesMissingMirror(t *testing.T) {
	repo := &fakeCalendarRepository{}
	svc := NewCalendarService(repo, &fakeTaskSource{}, &fakeMealSource{})

	date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	meal := &entities.MealPlanEntry{ID: "m1", FamilyID: "fam1", Title: "Pasta", MealType: "dinner", Date: date}
	require.NoError(t, svc.UpdateMealMirror(context.Background(), "fam1", meal))

	require.Len(t, repo.events, 1)
	assert.Equal(t, "dinner: Pasta", repo.events[0].Title)
	assert.Equal(t, "m1", repo.events[0].SourceID)
}

func TestRemoveMirror(t *testing.T) {
	repo := &fakeCalendarRepository{}
	svc := NewCalendarService(repo, &fakeTaskSource{}, &fakeMealSource{})

	due := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	require.NoError(t, svc.SyncTask(context.Background(), "fam1", dueTask("t1", "x", due)))
	require.NoError(t, svc.RemoveMirror(context.Background(), "fam1", "t1"))
	assert.Empty(t, repo.events)
}

func TestAddEventRejectsInvertedRange(t *testing.T) {
	repo := &fakeCalendarRepository{}
	svc := NewCalendarService(repo, &fakeTaskSource{}, &fakeMealSource{})

	_, err := svc.AddEvent(context.Background(), domain.AddEventRequest{
		Title: "backwards",
		Start: "2024-03-15T10:00:00Z",
		End:   "2024-03-15T09:00:00Z",
	}, "fam1")
	assert.ErrorIs(t, err, domain.ErrInvalidEventTime)
}
