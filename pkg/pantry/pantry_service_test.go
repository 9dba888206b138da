package pantry

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

type fakePantryRepository struct {
	items []*entities.PantryItem
}

func (r *fakePantryRepository) AddPantryItem(_ context.Context, item *entities.PantryItem) error {
	r.items = append(r.items, item)
	return nil
}

func (r *fakePantryRepository) GetPantryItemByID(_ context.Context, familyID, id string) (*entities.PantryItem, error) {
	for _, item := range r.items {
		if item.ID == id && item.FamilyID == familyID {
			return item, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *fakePantryRepository) GetPantryItems(_ context.Context, familyID string) ([]*entities.PantryItem, error) {
	var out []*entities.PantryItem
	for _, item := range r.items {
		if item.FamilyID == familyID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *fakePantryRepository) GetPantryItemByName(_ context.Context, _, _ string) (*entities.PantryItem, error) {
	return nil, mongo.ErrNoDocuments
}

func (r *fakePantryRepository) GetExpiringItems(_ context.Context, familyID string, before time.Time) ([]*entities.PantryItem, error) {
	var out []*entities.PantryItem
	for _, item := range r.items {
		if item.FamilyID != familyID || item.ExpirationDate.IsZero() {
			continue
		}
		if !item.ExpirationDate.After(before) {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *fakePantryRepository) GetFamilyIDs(_ context.Context) ([]string, error) {
	return nil, nil
}

func (r *fakePantryRepository) UpdatePantryItem(_ context.Context, item *entities.PantryItem) error {
	for i, existing := range r.items {
		if existing.ID == item.ID {
			r.items[i] = item
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func (r *fakePantryRepository) DeletePantryItem(_ context.Context, familyID, id string) error {
	for i, item := range r.items {
		if item.ID == id && item.FamilyID == familyID {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func TestAddPantryItemAllowsDuplicateNames(t *testing.T) {
	repo := &fakePantryRepository{}
	svc := NewPantryService(repo)

	for i := 0; i < 2; i++ {
		_, err := svc.AddPantryItem(context.Background(), domain.AddPantryItemRequest{
			Name: "Milk", Quantity: 1, Unit: "l",
		}, "fam1")
		require.NoError(t, err)
	}

	assert.Len(t, repo.items, 2)
}

func TestAddPantryItemRejectsNegativeQuantity(t *testing.T) {
	svc := NewPantryService(&fakePantryRepository{})

	_, err := svc.AddPantryItem(context.Background(), domain.AddPantryItemRequest{
		Name: "Milk", Quantity: -1, Unit: "l",
	}, "fam1")
	assert.ErrorIs(t, err, domain.ErrNegativeQuantity)
}

func TestAddPantryItemRejectsBadExpirationDate(t *testing.T) {
	svc := NewPantryService(&fakePantryRepository{})

	_, err := svc.AddPantryItem(context.Background(), domain.AddPantryItemRequest{
		Name: "Milk", Quantity: 1, Unit: "l", ExpirationDate: "next week",
	}, "fam1")
	assert.ErrorIs(t, err, domain.ErrInvalidExpirationDay)
}

func TestUpdatePantryItem(t *testing.T) {
	repo := &fakePantryRepository{}
	svc := NewPantryService(repo)

	created, err := svc.AddPantryItem(context.Background(), domain.AddPantryItemRequest{
		Name: "Milk", Quantity: 1, Unit: "l",
	}, "fam1")
	require.NoError(t, err)

	quantity := 2.5
	res, err := svc.UpdatePantryItem(context.Background(), created.ID, domain.UpdatePantryItemRequest{
		Quantity:       &quantity,
		ExpirationDate: "2024-03-20",
	}, "fam1")
	require.NoError(t, err)
	assert.Equal(t, 2.5, res.Quantity)
	assert.Equal(t, "Milk", res.Name)
	assert.Equal(t, "2024-03-20", res.ExpirationDate)
}

func TestUpdatePantryItemRejectsNegativeQuantity(t *testing.T) {
	repo := &fakePantryRepository{}
	svc := NewPantryService(repo)

	created, err := svc.AddPantryItem(context.Background(), domain.AddPantryItemRequest{
		Name: "Milk", Quantity: 1, Unit: "l",
	}, "fam1")
	require.NoError(t, err)

	quantity := -3.0
	_, err = svc.UpdatePantryItem(context.Background(), created.ID, domain.UpdatePantryItemRequest{
		Quantity: &quantity,
	}, "fam1")
	assert.ErrorIs(t, err, domain.ErrNegativeQuantity)
}

func TestUpdatePantryItemNotFound(t *testing.T) {
	svc := NewPantryService(&fakePantryRepository{})

	_, err := svc.UpdatePantryItem(context.Background(), "missing", domain.UpdatePantryItemRequest{Name: "x"}, "fam1")
	assert.ErrorIs(t, err, domain.ErrPantryItemNotFound)
}

func TestDeletePantryItemNotFound(t *testing.T) {
	svc := NewPantryService(&fakePantryRepository{})
	err := svc.DeletePantryItem(context.Background(), "missing", "fam1")
	assert.ErrorIs(t, err, domain.ErrPantryItemNotFound)
}

func TestGetExpiringItemsDefaultsToThreeDays(t *testing.T) {
	now := time.Now()
	repo := &fakePantryRepository{items: []*entities.PantryItem{
		{ID: "soon", FamilyID: "fam1", Name: "Yogurt", ExpirationDate: now.AddDate(0, 0, 1)},
		{ID: "later", FamilyID: "fam1", Name: "Rice", ExpirationDate: now.AddDate(0, 0, 30)},
		{ID: "undated", FamilyID: "fam1", Name: "Salt"},
	}}
	svc := NewPantryService(repo)

	res, err := svc.GetExpiringItems(context.Background(), "fam1", 0)
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "Yogurt", res[0].Name)
}
