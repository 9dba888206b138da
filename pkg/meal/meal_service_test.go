package meal

import (
	"context"
	"testing"
	"time"

	"family-hub-backend/domain"
	"family-hub-backend/entities"
	"family-hub-backend/pkg/suggestion"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakeMealRepository struct {
	meals []*entities.MealPlanEntry
}

func (r *fakeMealRepository) AddMeal(_ context.Context, meal *entities.MealPlanEntry) error {
	r.meals = append(r.meals, meal)
	return nil
}

func (r *fakeMealRepository) GetMealByID(_ context.Context, familyID, id string) (*entities.MealPlanEntry, error) {
	for _, m := range r.meals {
		if m.ID == id && m.FamilyID == familyID {
			return m, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *fakeMealRepository) GetMealsByFamily(_ context.Context, familyID string) ([]*entities.MealPlanEntry, error) {
	var out []*entities.MealPlanEntry
	for _, m := range r.meals {
		if m.FamilyID == familyID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeMealRepository) GetMealsByDateRange(_ context.Context, familyID string, start, end time.Time) ([]*entities.MealPlanEntry, error) {
	var out []*entities.MealPlanEntry
	for _, m := range r.meals {
		if m.FamilyID == familyID && !m.Date.Before(start) && m.Date.Before(end) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeMealRepository) DeleteMeal(_ context.Context, familyID, id string) error {
	for i, m := range r.meals {
		if m.ID == id && m.FamilyID == familyID {
			r.meals = append(r.meals[:i], r.meals[i+1:]...)
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

// fakeMirror records sync calls without a real calendar behind it.
type fakeMirror struct {
	synced  []*entities.MealPlanEntry
	removed []string
}

func (f *fakeMirror) AddEvent(_ context.Context, _ domain.AddEventRequest, _ string) (domain.EventResponse, error) {
	return domain.EventResponse{}, nil
}
func (f *fakeMirror) UpdateEvent(_ context.Context, _ string, _ domain.UpdateEventRequest, _ string) error {
	return nil
}
func (f *fakeMirror) DeleteEvent(_ context.Context, _ string, _ string) error { return nil }
func (f *fakeMirror) GetEvents(_ context.Context, _, _ string) ([]domain.EventResponse, error) {
	return nil, nil
}
func (f *fakeMirror) SyncTask(_ context.Context, _ string, _ *entities.Task) error { return nil }
func (f *fakeMirror) SyncMeal(_ context.Context, _ string, meal *entities.MealPlanEntry) error {
	f.synced = append(f.synced, meal)
	return nil
}
func (f *fakeMirror) UpdateTaskMirror(_ context.Context, _ string, _ *entities.Task) error {
	return nil
}
func (f *fakeMirror) UpdateMealMirror(_ context.Context, _ string, _ *entities.MealPlanEntry) error {
	return nil
}
func (f *fakeMirror) RemoveMirror(_ context.Context, _, sourceID string) error {
	f.removed = append(f.removed, sourceID)
	return nil
}
func (f *fakeMirror) SyncAllTasks(_ context.Context, _ string) (int, error) { return 0, nil }
func (f *fakeMirror) SyncAllMeals(_ context.Context, _ string) (int, error) { return 0, nil }

type fakePantrySource struct{ items []*entities.PantryItem }

func (f *fakePantrySource) GetPantryItems(_ context.Context, _ string) ([]*entities.PantryItem, error) {
	return f.items, nil
}

type fakePreferenceSource struct{ prefs map[string]*entities.Preference }

func (f *fakePreferenceSource) GetPreference(_ context.Context, _, name string) (*entities.Preference, error) {
	if p, ok := f.prefs[name]; ok {
		return p, nil
	}
	return nil, mongo.ErrNoDocuments
}

type fakePlanGenerator struct {
	plan      *suggestion.GeneratedPlan
	lastDiet  string
	lastExcl  string
	lastDays  int
	lastKcals int
}

func (f *fakePlanGenerator) SearchRecipes(_ context.Context, _ string, _ suggestion.SearchOptions) ([]suggestion.RecipeResult, error) {
	return nil, nil
}

func (f *fakePlanGenerator) GetRecipeInformation(_ context.Context, _ int) (*suggestion.RecipeInformation, error) {
	return nil, nil
}

func (f *fakePlanGenerator) GenerateMealPlan(_ context.Context, days, targetCalories int, diet, exclude string) (*suggestion.GeneratedPlan, error) {
	f.lastDays = days
	f.lastKcals = targetCalories
	f.lastDiet = diet
	f.lastExcl = exclude
	return f.plan, nil
}

func newTestMealService(repo *fakeMealRepository, mirror *fakeMirror, gen *fakePlanGenerator) MealService {
	if gen == nil {
		gen = &fakePlanGenerator{}
	}
	return NewMealService(repo, mirror, gen, &fakePantrySource{}, &fakePreferenceSource{})
}

func TestGetWeeklyPlanEmptyWeek(t *testing.T) {
	svc := newTestMealService(&fakeMealRepository{}, &fakeMirror{}, nil)

	res, err := svc.GetWeeklyPlan(context.Background(), "fam1", time.Date(2024, 3, 13, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Equal(t, "2024-03-11", res.WeekStart)
	assert.Equal(t, "2024-03-17", res.WeekEnd)
	require.Len(t, res.Days, 7)
	require.Len(t, res.DayOrder, 7)
	for _, key := range res.DayOrder {
		day, ok := res.Days[key]
		require.True(t, ok, "missing day key %s", key)
		assert.NotNil(t, day)
		assert.Empty(t, day)
	}
}

func TestGetWeeklyPlanGroupsByDay(t *testing.T) {
	repo := &fakeMealRepository{}
	svc := newTestMealService(repo, &fakeMirror{}, nil)

	for _, date := range []string{"2024-03-11", "2024-03-11", "2024-03-13"} {
		_, err := svc.AddMealToPlan(context.Background(), domain.AddMealRequest{
			Title:    "Meal " + date,
			Date:     date,
			MealType: "dinner",
		}, "fam1")
		require.NoError(t, err)
	}

	res, err := svc.GetWeeklyPlan(context.Background(), "fam1", time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Len(t, res.Days["2024-03-11"], 2)
	assert.Len(t, res.Days["2024-03-13"], 1)
	assert.Empty(t, res.Days["2024-03-12"])
}

func TestAddMealToPlanMirrorsToCalendar(t *testing.T) {
	repo := &fakeMealRepository{}
	mirror := &fakeMirror{}
	svc := newTestMealService(repo, mirror, nil)

	res, err := svc.AddMealToPlan(context.Background(), domain.AddMealRequest{
		Title:    "Pasta",
		Date:     "2024-03-15",
		MealType: "dinner",
	}, "fam1")
	require.NoError(t, err)

	require.Len(t, mirror.synced, 1)
	assert.Equal(t, res.ID, mirror.synced[0].ID)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), mirror.synced[0].Date)
}

func TestAddMealToPlanRejectsBadDate(t *testing.T) {
	svc := newTestMealService(&fakeMealRepository{}, &fakeMirror{}, nil)

	_, err := svc.AddMealToPlan(context.Background(), domain.AddMealRequest{
		Title:    "Pasta",
		Date:     "15-03-2024",
		MealType: "dinner",
	}, "fam1")
	assert.ErrorIs(t, err, domain.ErrInvalidMealDate)
}

func TestDeleteMealRemovesMirror(t *testing.T) {
	repo := &fakeMealRepository{}
	mirror := &fakeMirror{}
	svc := newTestMealService(repo, mirror, nil)

	res, err := svc.AddMealToPlan(context.Background(), domain.AddMealRequest{
		Title:    "Pasta",
		Date:     "2024-03-15",
		MealType: "dinner",
	}, "fam1")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteMeal(context.Background(), res.ID, "fam1"))
	assert.Equal(t, []string{res.ID}, mirror.removed)
	assert.Empty(t, repo.meals)
}

func TestMealTypeForSlot(t *testing.T) {
	assert.Equal(t, "breakfast", MealTypeForSlot(1))
	assert.Equal(t, "lunch", MealTypeForSlot(2))
	assert.Equal(t, "dinner", MealTypeForSlot(3))
	assert.Equal(t, "snack", MealTypeForSlot(4))
	assert.Equal(t, "snack", MealTypeForSlot(0))
}

func TestGenerateMealPlanSavesEachMeal(t *testing.T) {
	gen := &fakePlanGenerator{plan: &suggestion.GeneratedPlan{
		Week: map[string]suggestion.GeneratedDay{
			"monday": {Meals: []suggestion.GeneratedMeal{
				{ID: 1, Title: "Oatmeal", Slot: 1},
				{ID: 2, Title: "Salad", Slot: 2},
				{ID: 3, Title: "Stew", Slot: 3},
			}},
			"tuesday": {Meals: []suggestion.GeneratedMeal{
				{ID: 4, Title: "Pancakes", Slot: 1},
			}},
		},
	}}
	repo := &fakeMealRepository{}
	mirror := &fakeMirror{}
	svc := NewMealService(repo, mirror, gen,
		&fakePantrySource{items: []*entities.PantryItem{{Name: "milk"}, {Name: "eggs"}}},
		&fakePreferenceSource{prefs: map[string]*entities.Preference{
			"dietary": {Name: "dietary", Diets: []string{"vegetarian"}},
		}},
	)

	res, err := svc.GenerateMealPlan(context.Background(), domain.GenerateMealPlanRequest{
		Days:      2,
		StartDate: "2024-03-11",
	}, "fam1")
	require.NoError(t, err)

	assert.Len(t, res.Added, 4)
	assert.Len(t, repo.meals, 4)
	assert.Len(t, mirror.synced, 4)
	assert.Equal(t, 2, gen.lastDays)
	assert.Equal(t, "vegetarian", gen.lastDiet)
	assert.Equal(t, "milk,eggs", gen.lastExcl)

	bySlot := map[string]int{}
	for _, m := range res.Added {
		bySlot[m.MealType]++
	}
	assert.Equal(t, 2, bySlot["breakfast"])
	assert.Equal(t, 1, bySlot["lunch"])
	assert.Equal(t, 1, bySlot["dinner"])
}
