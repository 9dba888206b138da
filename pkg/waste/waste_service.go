package waste

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
	WasteService interface {
		AddWasteEntry(ctx context.Context, req domain.AddWasteEntryRequest, familyID string) (domain.WasteEntryResponse, error)
		GetWasteLog(ctx context.Context, familyID string) ([]domain.WasteEntryResponse, error)
		DeleteWasteEntry(ctx context.Context, id string, familyID string) error
		GetWasteStats(ctx context.Context, familyID string) (domain.WasteStatsResponse, error)
	}

	wasteService struct {
		wasteRepository WasteRepository
	}
)

func NewWasteService(wasteRepository WasteRepository) WasteService {
	return &wasteService{wasteRepository: wasteRepository}
}

func (s *wasteService) AddWasteEntry(ctx context.Context, req domain.AddWasteEntryRequest, familyID string) (domain.WasteEntryResponse, error) {
	entry := &entities.WasteLogEntry{
		ID:       uuid.New().String(),
		FamilyID: familyID,
		Item:     req.Item,
		Quantity: req.Quantity,
		Unit:     req.Unit,
		Reason:   req.Reason,
		Date:     time.Now(),
	}
	entry.CreatedAt = entry.Date
	entry.UpdatedAt = entry.Date

	if err := s.wasteRepository.AddWasteEntry(ctx, entry); err != nil {
		return domain.WasteEntryResponse{}, err
	}
	return toWasteEntryResponse(entry), nil
}

func (s *wasteService) GetWasteLog(ctx context.Context, familyID string) ([]domain.WasteEntryResponse, error) {
	entries, err := s.wasteRepository.GetWasteLog(ctx, familyID)
	if err != nil {
		return nil, err
	}

	result := make([]domain.WasteEntryResponse, 0, len(entries))
	for _, entry := range entries {
		result = append(result, toWasteEntryResponse(entry))
	}
	return result, nil
}

func (s *wasteService) DeleteWasteEntry(ctx context.Context, id string, familyID string) error {
	if err := s.wasteRepository.DeleteWasteEntry(ctx, familyID, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.ErrWasteEntryNotFound
		}
		return err
	}
	return nil
}

// GetWasteStats totals logged quantities per reason. Units are not converted.
func (s *wasteService) GetWasteStats(ctx context.Context, familyID string) (domain.WasteStatsResponse, error) {
	entries, err := s.wasteRepository.GetWasteLog(ctx, familyID)
	if err != nil {
		return domain.WasteStatsResponse{}, err
	}

	byReason := make(map[string]float64)
	total := 0.0
	for _, entry := range entries {
		byReason[entry.Reason] += entry.Quantity
		total += entry.Quantity
	}

	return domain.WasteStatsResponse{ByReason: byReason, Total: total}, nil
}

func toWasteEntryResponse(entry *entities.WasteLogEntry) domain.WasteEntryResponse {
	return domain.WasteEntryResponse{
		ID:       entry.ID,
		Item:     entry.Item,
		Quantity: entry.Quantity,
		Unit:     entry.Unit,
		Reason:   entry.Reason,
		Date:     entry.Date,
	}
}
