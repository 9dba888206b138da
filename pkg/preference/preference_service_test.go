package preference

import (
	"context"
	"testing"

	"family-hub-backend/domain"
	"family-hub-backend/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakePreferenceRepository struct {
	prefs map[string]*entities.Preference
}

func newFakePreferenceRepository() *fakePreferenceRepository {
	return &fakePreferenceRepository{prefs: map[string]*entities.Preference{}}
}

func (r *fakePreferenceRepository) GetPreference(_ context.Context, familyID, name string) (*entities.Preference, error) {
	if p, ok := r.prefs[familyID+"/"+name]; ok {
		return p, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (r *fakePreferenceRepository) UpsertPreference(_ context.Context, pref *entities.Preference) error {
	key := pref.FamilyID + "/" + pref.Name
	if existing, ok := r.prefs[key]; ok {
		existing.Diets = pref.Diets
		existing.Limit = pref.Limit
		return nil
	}
	r.prefs[key] = pref
	return nil
}

func TestGetPreferencesDefaults(t *testing.T) {
	svc := NewPreferenceService(newFakePreferenceRepository())

	res, err := svc.GetPreferences(context.Background(), "fam1")
	require.NoError(t, err)
	assert.Empty(t, res.Diets)
	assert.NotNil(t, res.Diets)
	assert.Zero(t, res.Budget)
}

func TestSetDietaryPreferencesRoundTrip(t *testing.T) {
	repo := newFakePreferenceRepository()
	svc := NewPreferenceService(repo)

	require.NoError(t, svc.SetDietaryPreferences(context.Background(), domain.SetDietaryPreferencesRequest{
		Diets: []string{"vegetarian", "gluten free"},
	}, "fam1"))

	res, err := svc.GetPreferences(context.Background(), "fam1")
	require.NoError(t, err)
	assert.Equal(t, []string{"vegetarian", "gluten free"}, res.Diets)
}

func TestSetBudgetOverwrites(t *testing.T) {
	repo := newFakePreferenceRepository()
	svc := NewPreferenceService(repo)

	require.NoError(t, svc.SetBudget(context.Background(), domain.SetBudgetRequest{Limit: 150}, "fam1"))
	require.NoError(t, svc.SetBudget(context.Background(), domain.SetBudgetRequest{Limit: 200}, "fam1"))

	res, err := svc.GetPreferences(context.Background(), "fam1")
	require.NoError(t, err)
	assert.Equal(t, 200.0, res.Budget)
}

func TestPreferencesScopedToFamily(t *testing.T) {
	repo := newFakePreferenceRepository()
	svc := NewPreferenceService(repo)

	require.NoError(t, svc.SetBudget(context.Background(), domain.SetBudgetRequest{Limit: 150}, "fam1"))

	res, err := svc.GetPreferences(context.Background(), "fam2")
	require.NoError(t, err)
	assert.Zero(t, res.Budget)
}
