package grocery

import (
	"context"
	"errors"
	"strings"
	"time"

	"family-hub-backend/domain"
	"family-hub-backend/entities"
	"family-hub-backend/pkg/meal"
	"family-hub-backend/pkg/pantry"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
)

type (
	GroceryService interface {
		AddGroceryItem(ctx context.Context, req domain.AddGroceryItemRequest, familyID string) (domain.GroceryItemResponse, error)
		GetGroceryItems(ctx context.Context, familyID string) ([]domain.GroceryItemResponse, error)
		ToggleGroceryItem(ctx context.Context, id string, familyID string) (domain.GroceryItemResponse, error)
		DeleteGroceryItem(ctx context.Context, id string, familyID string) error
		MoveToPantry(ctx context.Context, id string, familyID string) error
		GenerateFromMealPlan(ctx context.Context, familyID string, anchor time.Time) (domain.GenerateGroceryResponse, error)
	}

	groceryService struct {
		groceryRepository GroceryRepository
		pantryRepository  pantry.PantryRepository
		mealRepository    meal.MealRepository
	}
)

func NewGroceryService(
	groceryRepository GroceryRepository,
	pantryRepository pantry.PantryRepository,
	mealRepository meal.MealRepository,
) GroceryService {
	return &groceryService{
		groceryRepository: groceryRepository,
		pantryRepository:  pantryRepository,
		mealRepository:    mealRepository,
	}
}

func (s *groceryService) AddGroceryItem(ctx context.Context, req domain.AddGroceryItemRequest, familyID string) (domain.GroceryItemResponse, error) {
	item := &entities.GroceryItem{
		ID:       uuid.New().String(),
		FamilyID: familyID,
		Name:     req.Name,
		Quantity: req.Quantity,
		Unit:     req.Unit,
	}
	item.CreatedAt = time.Now()
	item.UpdatedAt = item.CreatedAt

	if err := s.groceryRepository.AddGroceryItem(ctx, item); err != nil {
		return domain.GroceryItemResponse{}, err
	}
	return toGroceryItemResponse(item), nil
}

func (s *groceryService) GetGroceryItems(ctx context.Context, familyID string) ([]domain.GroceryItemResponse, error) {
	items, err := s.groceryRepository.GetGroceryItems(ctx, familyID)
	if err != nil {
		return nil, err
	}

	result := make([]domain.GroceryItemResponse, 0, len(items))
	for _, item := range items {
		result = append(result, toGroceryItemResponse(item))
	}
	return result, nil
}

func (s *groceryService) ToggleGroceryItem(ctx context.Context, id string, familyID string) (domain.GroceryItemResponse, error) {
	item, err := s.groceryRepository.GetGroceryItemByID(ctx, familyID, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.GroceryItemResponse{}, domain.ErrGroceryItemNotFound
		}
		return domain.GroceryItemResponse{}, err
	}

	item.Checked = !item.Checked
	item.UpdatedAt = time.Now()

	if err := s.groceryRepository.UpdateGroceryItem(ctx, item); err != nil {
		return domain.GroceryItemResponse{}, err
	}
	return toGroceryItemResponse(item), nil
}

func (s *groceryService) DeleteGroceryItem(ctx context.Context, id string, familyID string) error {
	if err := s.groceryRepository.DeleteGroceryItem(ctx, familyID, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.ErrGroceryItemNotFound
		}
		return err
	}
	return nil
}

// MoveToPantry folds a bought grocery item into the pantry: quantity merges
// into an existing pantry item of the same name and unit, otherwise a new
// pantry item is created. The grocery item is removed either way.
func (s *groceryService) MoveToPantry(ctx context.Context, id string, familyID string) error {
	item, err := s.groceryRepository.GetGroceryItemByID(ctx, familyID, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.ErrGroceryItemNotFound
		}
		return err
	}

	existing, err := s.pantryRepository.GetPantryItemByName(ctx, familyID, item.Name)
	switch {
	case err == nil && existing.Unit == item.Unit:
		existing.Quantity += item.Quantity
		existing.UpdatedAt = time.Now()
		if err := s.pantryRepository.UpdatePantryItem(ctx, existing); err != nil {
			return err
		}
	case err == nil || errors.Is(err, mongo.ErrNoDocuments):
		pantryItem := &entities.PantryItem{
			ID:       uuid.New().String(),
			FamilyID: familyID,
			Name:     item.Name,
			Quantity: item.Quantity,
			Unit:     item.Unit,
		}
		pantryItem.CreatedAt = time.Now()
		pantryItem.UpdatedAt = pantryItem.CreatedAt
		if err := s.pantryRepository.AddPantryItem(ctx, pantryItem); err != nil {
			return err
		}
	default:
		return err
	}

	return s.groceryRepository.DeleteGroceryItem(ctx, familyID, id)
}

// GenerateFromMealPlan rebuilds the list from the current week's plan:
// ingredients aggregate by lowercased name, quantities already covered by the
// pantry are subtracted, and the existing list is dropped and recreated. The
// two writes are not transactional; a crash in between loses the old list,
// which matches the current product behavior.
func (s *groceryService) GenerateFromMealPlan(ctx context.Context, familyID string, anchor time.Time) (domain.GenerateGroceryResponse, error) {
	weekStart := meal.StartOfWeek(anchor)
	entries, err := s.mealRepository.GetMealsByDateRange(ctx, familyID, weekStart, weekStart.AddDate(0, 0, 7))
	if err != nil {
		return domain.GenerateGroceryResponse{}, err
	}

	type needed struct {
		name     string
		quantity float64
		unit     string
	}

	order := make([]string, 0)
	aggregated := make(map[string]*needed)
	for _, entry := range entries {
		for _, ing := range entry.Ingredients {
			key := strings.ToLower(strings.TrimSpace(ing.Name))
			if key == "" {
				continue
			}
			if existing, ok := aggregated[key]; ok {
				if existing.unit == ing.Unit {
					existing.quantity += ing.Amount
				}
				continue
			}
			aggregated[key] = &needed{name: ing.Name, quantity: ing.Amount, unit: ing.Unit}
			order = append(order, key)
		}
	}

	now := time.Now()
	items := make([]*entities.GroceryItem, 0, len(order))
	for _, key := range order {
		need := aggregated[key]

		remaining := need.quantity
		if stocked, err := s.pantryRepository.GetPantryItemByName(ctx, familyID, need.name); err == nil && stocked.Unit == need.unit {
			remaining -= stocked.Quantity
		}
		if remaining <= 0 {
			continue
		}

		item := &entities.GroceryItem{
			ID:       uuid.New().String(),
			FamilyID: familyID,
			Name:     need.name,
			Quantity: remaining,
			Unit:     need.unit,
		}
		item.CreatedAt = now
		item.UpdatedAt = now
		items = append(items, item)
	}

	if err := s.groceryRepository.DeleteAllGroceryItems(ctx, familyID); err != nil {
		return domain.GenerateGroceryResponse{}, err
	}
	if err := s.groceryRepository.AddGroceryItems(ctx, items); err != nil {
		return domain.GenerateGroceryResponse{}, err
	}

	result := make([]domain.GroceryItemResponse, 0, len(items))
	for _, item := range items {
		result = append(result, toGroceryItemResponse(item))
	}
	return domain.GenerateGroceryResponse{Items: result}, nil
}

func toGroceryItemResponse(item *entities.GroceryItem) domain.GroceryItemResponse {
	return domain.GroceryItemResponse{
		ID:       item.ID,
		Name:     item.Name,
		Quantity: item.Quantity,
		Unit:     item.Unit,
		Checked:  item.Checked,
	}
}
