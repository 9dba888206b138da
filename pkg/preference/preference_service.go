package preference

import (
	"context"
	"errors"

	"family-hub-backend/domain"
	"family-hub-backend/entities"

	"go.mongodb.org/mongo-driver/mongo"
)

type (
	PreferenceService interface {
		GetPreferences(ctx context.Context, familyID string) (domain.PreferencesResponse, error)
		SetDietaryPreferences(ctx context.Context, req domain.SetDietaryPreferencesRequest, familyID string) error
		SetBudget(ctx context.Context, req domain.SetBudgetRequest, familyID string) error
	}

	preferenceService struct {
		preferenceRepository PreferenceRepository
	}
)

func NewPreferenceService(preferenceRepository PreferenceRepository) PreferenceService {
	return &preferenceService{preferenceRepository: preferenceRepository}
}

// GetPreferences merges the family's named documents into one response.
// Missing documents mean defaults, not an error.
func (s *preferenceService) GetPreferences(ctx context.Context, familyID string) (domain.PreferencesResponse, error) {
	response := domain.PreferencesResponse{Diets: []string{}}

	dietary, err := s.preferenceRepository.GetPreference(ctx, familyID, "dietary")
	switch {
	case err == nil:
		response.Diets = dietary.Diets
	case !errors.Is(err, mongo.ErrNoDocuments):
		return domain.PreferencesResponse{}, err
	}

	budget, err := s.preferenceRepository.GetPreference(ctx, familyID, "budget")
	switch {
	case err == nil:
		response.Budget = budget.Limit
	case !errors.Is(err, mongo.ErrNoDocuments):
		return domain.PreferencesResponse{}, err
	}

	return response, nil
}

func (s *preferenceService) SetDietaryPreferences(ctx context.Context, req domain.SetDietaryPreferencesRequest, familyID string) error {
	return s.preferenceRepository.UpsertPreference(ctx, &entities.Preference{
		FamilyID: familyID,
		Name:     "dietary",
		Diets:    req.Diets,
	})
}

func (s *preferenceService) SetBudget(ctx context.Context, req domain.SetBudgetRequest, familyID string) error {
	return s.preferenceRepository.UpsertPreference(ctx, &entities.Preference{
		FamilyID: familyID,
		Name:     "budget",
		Limit:    req.Limit,
	})
}
