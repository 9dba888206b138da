package pantry

import (
	"context"
	"errors"
	"time"

	"family-hub-backend/domain"
	"family-hub-backend/entities"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
)

type (
	PantryService interface {
		AddPantryItem(ctx context.Context, req domain.AddPantryItemRequest, familyID string) (domain.PantryItemResponse, error)
		GetPantryItems(ctx context.Context, familyID string) ([]domain.PantryItemResponse, error)
		UpdatePantryItem(ctx context.Context, id string, req domain.UpdatePantryItemRequest, familyID string) (domain.PantryItemResponse, error)
		DeletePantryItem(ctx context.Context, id string, familyID string) error
		GetExpiringItems(ctx context.Context, familyID string, withinDays int) ([]domain.PantryItemResponse, error)
	}

	pantryService struct {
		pantryRepository PantryRepository
	}
)

func NewPantryService(pantryRepository PantryRepository) PantryService {
	return &pantryService{pantryRepository: pantryRepository}
}

func (s *pantryService) AddPantryItem(ctx context.Context, req domain.AddPantryItemRequest, familyID string) (domain.PantryItemResponse, error) {
	if req.Quantity < 0 {
		return domain.PantryItemResponse{}, domain.ErrNegativeQuantity
	}

	var expiration time.Time
	if req.ExpirationDate != "" {
		parsed, err := time.Parse("2006-01-02", req.ExpirationDate)
		if err != nil {
			return domain.PantryItemResponse{}, domain.ErrInvalidExpirationDay
		}
		expiration = parsed
	}

	// duplicate names are allowed here; only MoveToPantry merges by name
	item := &entities.PantryItem{
		ID:             uuid.New().String(),
		FamilyID:       familyID,
		Name:           req.Name,
		Quantity:       req.Quantity,
		Unit:           req.Unit,
		ExpirationDate: expiration,
	}
	item.CreatedAt = time.Now()
	item.UpdatedAt = item.CreatedAt

	if err := s.pantryRepository.AddPantryItem(ctx, item); err != nil {
		return domain.PantryItemResponse{}, err
	}
	return toPantryItemResponse(item), nil
}

func (s *pantryService) GetPantryItems(ctx context.Context, familyID string) ([]domain.PantryItemResponse, error) {
	items, err := s.pantryRepository.GetPantryItems(ctx, familyID)
	if err != nil {
		return nil, err
	}

	result := make([]domain.PantryItemResponse, 0, len(items))
	for _, item := range items {
		result = append(result, toPantryItemResponse(item))
	}
	return result, nil
}

func (s *pantryService) UpdatePantryItem(ctx context.Context, id string, req domain.UpdatePantryItemRequest, familyID string) (domain.PantryItemResponse, error) {
	item, err := s.pantryRepository.GetPantryItemByID(ctx, familyID, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.PantryItemResponse{}, domain.ErrPantryItemNotFound
		}
		return domain.PantryItemResponse{}, err
	}

	if req.Name != "" {
		item.Name = req.Name
	}
	if req.Quantity != nil {
		if *req.Quantity < 0 {
			return domain.PantryItemResponse{}, domain.ErrNegativeQuantity
		}
		item.Quantity = *req.Quantity
	}
	if req.Unit != "" {
		item.Unit = req.Unit
	}
	if req.ExpirationDate != "" {
		expiration, err := time.Parse("2006-01-02", req.ExpirationDate)
		if err != nil {
			return domain.PantryItemResponse{}, domain.ErrInvalidExpirationDay
		}
		item.ExpirationDate = expiration
	}
	item.UpdatedAt = time.Now()

	if err := s.pantryRepository.UpdatePantryItem(ctx, item); err != nil {
		return domain.PantryItemResponse{}, err
	}
	return toPantryItemResponse(item), nil
}

func (s *pantryService) DeletePantryItem(ctx context.Context, id string, familyID string) error {
	if err := s.pantryRepository.DeletePantryItem(ctx, familyID, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.ErrPantryItemNotFound
		}
		return err
	}
	return nil
}

func (s *pantryService) GetExpiringItems(ctx context.Context, familyID string, withinDays int) ([]domain.PantryItemResponse, error) {
	if withinDays <= 0 {
		withinDays = 3
	}
	before := time.Now().AddDate(0, 0, withinDays)

	items, err := s.pantryRepository.GetExpiringItems(ctx, familyID, before)
	if err != nil {
		return nil, err
	}

	result := make([]domain.PantryItemResponse, 0, len(items))
	for _, item := range items {
		result = append(result, toPantryItemResponse(item))
	}
	return result, nil
}

func toPantryItemResponse(item *entities.PantryItem) domain.PantryItemResponse {
	expiration := ""
	if !item.ExpirationDate.IsZero() {
		expiration = item.ExpirationDate.Format("2006-01-02")
	}

	return domain.PantryItemResponse{
		ID:             item.ID,
		Name:           item.Name,
		Quantity:       item.Quantity,
		Unit:           item.Unit,
		ExpirationDate: expiration,
	}
}
