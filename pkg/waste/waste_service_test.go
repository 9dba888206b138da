package waste

import (
	"context"
	"testing"

	"family-hub-backend/domain"
	"family-hub-backend/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakeWasteRepository struct {
	entries []*entities.WasteLogEntry
}

func (r *fakeWasteRepository) AddWasteEntry(_ context.Context, entry *entities.WasteLogEntry) error {
	r.entries = append(r.entries, entry)
	return nil
}

func (r *fakeWasteRepository) GetWasteLog(_ context.Context, familyID string) ([]*entities.WasteLogEntry, error) {
	var out []*entities.WasteLogEntry
	for _, entry := range r.entries {
		if entry.FamilyID == familyID {
			out = append(out, entry)
		}
	}
	return out, nil
}

func (r *fakeWasteRepository) DeleteWasteEntry(_ context.Context, familyID, id string) error {
	for i, entry := range r.entries {
		if entry.ID == id && entry.FamilyID == familyID {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func logWaste(t *testing.T, svc WasteService, item, reason string, quantity float64) {
	t.Helper()
	_, err := svc.AddWasteEntry(context.Background(), domain.AddWasteEntryRequest{
		Item:     item,
		Quantity: quantity,
		Unit:     "piece",
		Reason:   reason,
	}, "fam1")
	require.NoError(t, err)
}

func TestAddWasteEntryStampsDate(t *testing.T) {
	repo := &fakeWasteRepository{}
	svc := NewWasteService(repo)

	res, err := svc.AddWasteEntry(context.Background(), domain.AddWasteEntryRequest{
		Item: "Bread", Quantity: 1, Unit: "loaf", Reason: "expired",
	}, "fam1")
	require.NoError(t, err)
	assert.False(t, res.Date.IsZero())
	assert.Equal(t, "expired", res.Reason)
}

func TestGetWasteStatsGroupsByReason(t *testing.T) {
	svc := NewWasteService(&fakeWasteRepository{})

	logWaste(t, svc, "Bread", "expired", 1)
	logWaste(t, svc, "Yogurt", "expired", 2)
	logWaste(t, svc, "Rice", "leftover", 0.5)

	stats, err := svc.GetWasteStats(context.Background(), "fam1")
	require.NoError(t, err)
	assert.Equal(t, 3.0, stats.ByReason["expired"])
	assert.Equal(t, 0.5, stats.ByReason["leftover"])
	assert.Equal(t, 3.5, stats.Total)
}

func TestGetWasteStatsEmptyLog(t *testing.T) {
	svc := NewWasteService(&fakeWasteRepository{})

	stats, err := svc.GetWasteStats(context.Background(), "fam1")
	require.NoError(t, err)
	assert.Empty(t, stats.ByReason)
	assert.Zero(t, stats.Total)
}

func TestDeleteWasteEntryNotFound(t *testing.T) {
	svc := NewWasteService(&fakeWasteRepository{})
	err := svc.DeleteWasteEntry(context.Background(), "missing", "fam1")
	assert.ErrorIs(t, err, domain.ErrWasteEntryNotFound)
}
