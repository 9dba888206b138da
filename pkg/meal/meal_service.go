package meal

import (
	"context"
	"errors"
	"strings"
	"time"

	"family-hub-backend/domain"
	"family-hub-backend/entities"
	"family-hub-backend/pkg/calendar"
	"family-hub-backend/pkg/suggestion"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
)

type (
	// PantrySource and PreferenceSource feed the plan generator's exclusion
	// list and diet filter.
	PantrySource interface {
		GetPantryItems(ctx context.Context, familyID string) ([]*entities.PantryItem, error)
	}

	PreferenceSource interface {
		GetPreference(ctx context.Context, familyID, name string) (*entities.Preference, error)
	}

	MealService interface {
		AddMealToPlan(ctx context.Context, req domain.AddMealRequest, familyID string) (domain.MealResponse, error)
		GetWeeklyPlan(ctx context.Context, familyID string, anchor time.Time) (domain.WeeklyPlanResponse, error)
		DeleteMeal(ctx context.Context, id string, familyID string) error
		GenerateMealPlan(ctx context.Context, req domain.GenerateMealPlanRequest, familyID string) (domain.GenerateMealPlanResponse, error)
	}

	mealService struct {
		mealRepository  MealRepository
		calendarService calendar.CalendarService
		spoonacular     suggestion.SpoonacularClient
		pantry          PantrySource
		preferences     PreferenceSource
	}
)

func NewMealService(
	mealRepository MealRepository,
	calendarService calendar.CalendarService,
	spoonacular suggestion.SpoonacularClient,
	pantry PantrySource,
	preferences PreferenceSource,
) MealService {
	return &mealService{
		mealRepository:  mealRepository,
		calendarService: calendarService,
		spoonacular:     spoonacular,
		pantry:          pantry,
		preferences:     preferences,
	}
}

func (s *mealService) AddMealToPlan(ctx context.Context, req domain.AddMealRequest, familyID string) (domain.MealResponse, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return domain.MealResponse{}, domain.ErrInvalidMealDate
	}

	ingredients := make([]entities.MealIngredient, 0, len(req.Ingredients))
	for _, ing := range req.Ingredients {
		ingredients = append(ingredients, entities.MealIngredient{
			Name:   ing.Name,
			Amount: ing.Amount,
			Unit:   ing.Unit,
		})
	}

	entry := &entities.MealPlanEntry{
		ID:             uuid.New().String(),
		FamilyID:       familyID,
		RecipeID:       req.RecipeID,
		Title:          req.Title,
		ImageURL:       req.ImageURL,
		Date:           NormalizeDate(date),
		MealType:       req.MealType,
		Servings:       req.Servings,
		ReadyInMinutes: req.ReadyInMinutes,
		SourceURL:      req.SourceURL,
		Ingredients:    ingredients,
	}
	entry.CreatedAt = time.Now()
	entry.UpdatedAt = entry.CreatedAt

	if err := s.mealRepository.AddMeal(ctx, entry); err != nil {
		return domain.MealResponse{}, err
	}

	if err := s.calendarService.SyncMeal(ctx, familyID, entry); err != nil {
		return domain.MealResponse{}, err
	}

	return toMealResponse(entry), nil
}

// GetWeeklyPlan groups the Monday-based week around the anchor date into a
// per-day mapping. Every one of the seven day keys is present even when no
// meal is planned for it.
func (s *mealService) GetWeeklyPlan(ctx context.Context, familyID string, anchor time.Time) (domain.WeeklyPlanResponse, error) {
	weekStart := StartOfWeek(anchor)
	weekEnd := weekStart.AddDate(0, 0, 7)

	entries, err := s.mealRepository.GetMealsByDateRange(ctx, familyID, weekStart, weekEnd)
	if err != nil {
		return domain.WeeklyPlanResponse{}, err
	}

	days := make(map[string][]domain.MealResponse, 7)
	dayOrder := make([]string, 0, 7)
	for i := 0; i < 7; i++ {
		key := weekStart.AddDate(0, 0, i).Format(dayKeyFormat)
		days[key] = []domain.MealResponse{}
		dayOrder = append(dayOrder, key)
	}

	for _, entry := range entries {
		key := NormalizeDate(entry.Date).Format(dayKeyFormat)
		days[key] = append(days[key], toMealResponse(entry))
	}

	return domain.WeeklyPlanResponse{
		WeekStart: weekStart.Format(dayKeyFormat),
		WeekEnd:   weekStart.AddDate(0, 0, 6).Format(dayKeyFormat),
		Days:      days,
		DayOrder:  dayOrder,
	}, nil
}

func (s *mealService) DeleteMeal(ctx context.Context, id string, familyID string) error {
	if err := s.mealRepository.DeleteMeal(ctx, familyID, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.ErrMealNotFound
		}
		return err
	}
	return s.calendarService.RemoveMirror(ctx, familyID, id)
}

func (s *mealService) GenerateMealPlan(ctx context.Context, req domain.GenerateMealPlanRequest, familyID string) (domain.GenerateMealPlanResponse, error) {
	startDate := time.Now()
	if req.StartDate != "" {
		parsed, err := time.Parse("2006-01-02", req.StartDate)
		if err != nil {
			return domain.GenerateMealPlanResponse{}, domain.ErrInvalidMealDate
		}
		startDate = parsed
	}

	diet := ""
	if pref, err := s.preferences.GetPreference(ctx, familyID, "dietary"); err == nil && pref != nil {
		diet = strings.Join(pref.Diets, ",")
	}

	exclude := ""
	if items, err := s.pantry.GetPantryItems(ctx, familyID); err == nil {
		names := make([]string, 0, len(items))
		for _, item := range items {
			names = append(names, item.Name)
		}
		exclude = strings.Join(names, ",")
	}

	plan, err := s.spoonacular.GenerateMealPlan(ctx, req.Days, req.TargetCalories, diet, exclude)
	if err != nil {
		return domain.GenerateMealPlanResponse{}, err
	}

	added := make([]domain.MealResponse, 0)
	dayIndex := 0
	for _, day := range orderedWeekDays(plan.Week) {
		date := NormalizeDate(startDate.AddDate(0, 0, dayIndex))
		for _, generated := range plan.Week[day].Meals {
			res, err := s.AddMealToPlan(ctx, domain.AddMealRequest{
				RecipeID:       generated.ID,
				Title:          generated.Title,
				Date:           date.Format(dayKeyFormat),
				MealType:       MealTypeForSlot(generated.Slot),
				Servings:       generated.Servings,
				ReadyInMinutes: generated.ReadyInMinutes,
				SourceURL:      generated.SourceURL,
			}, familyID)
			if err != nil {
				return domain.GenerateMealPlanResponse{}, err
			}
			added = append(added, res)
		}
		dayIndex++
	}

	return domain.GenerateMealPlanResponse{Added: added}, nil
}

// MealTypeForSlot maps the generator's numeric slot codes to meal types:
// 1 breakfast, 2 lunch, 3 dinner, anything else snack.
func MealTypeForSlot(slot int) string {
	switch slot {
	case 1:
		return "breakfast"
	case 2:
		return "lunch"
	case 3:
		return "dinner"
	default:
		return "snack"
	}
}

var weekDayOrder = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

func orderedWeekDays(week map[string]suggestion.GeneratedDay) []string {
	ordered := make([]string, 0, len(week))
	for _, day := range weekDayOrder {
		if _, ok := week[day]; ok {
			ordered = append(ordered, day)
		}
	}
	return ordered
}

func toMealResponse(entry *entities.MealPlanEntry) domain.MealResponse {
	ingredients := make([]domain.MealIngredientRequest, 0, len(entry.Ingredients))
	for _, ing := range entry.Ingredients {
		ingredients = append(ingredients, domain.MealIngredientRequest{
			Name:   ing.Name,
			Amount: ing.Amount,
			Unit:   ing.Unit,
		})
	}

	return domain.MealResponse{
		ID:             entry.ID,
		RecipeID:       entry.RecipeID,
		Title:          entry.Title,
		ImageURL:       entry.ImageURL,
		Date:           entry.Date.Format(dayKeyFormat),
		MealType:       entry.MealType,
		Servings:       entry.Servings,
		ReadyInMinutes: entry.ReadyInMinutes,
		Ingredients:    ingredients,
	}
}
