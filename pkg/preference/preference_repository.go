package preference

import (
	"context"
	"time"

	"family-hub-backend/entities"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type (
	PreferenceRepository interface {
		GetPreference(ctx context.Context, familyID, name string) (*entities.Preference, error)
		UpsertPreference(ctx context.Context, pref *entities.Preference) error
	}

	preferenceRepository struct {
		preferences *mongo.Collection
	}
)

func NewPreferenceRepository(db *mongo.Database) PreferenceRepository {
	return &preferenceRepository{preferences: db.Collection("preferences")}
}

func (r *preferenceRepository) GetPreference(ctx context.Context, familyID, name string) (*entities.Preference, error) {
	var pref entities.Preference
	if err := r.preferences.FindOne(ctx, bson.M{"family_id": familyID, "name": name}).Decode(&pref); err != nil {
		return nil, err
	}
	return &pref, nil
}

// UpsertPreference writes the (family_id, name) document, creating it on first
// save.
func (r *preferenceRepository) UpsertPreference(ctx context.Context, pref *entities.Preference) error {
	if pref.ID == "" {
		pref.ID = uuid.New().String()
	}
	now := time.Now()
	pref.UpdatedAt = now

	filter := bson.M{"family_id": pref.FamilyID, "name": pref.Name}
	update := bson.M{
		"$set": bson.M{
			"diets":      pref.Diets,
			"limit":      pref.Limit,
			"updated_at": now,
		},
		"$setOnInsert": bson.M{
			"_id":        pref.ID,
			"family_id":  pref.FamilyID,
			"name":       pref.Name,
			"created_at": now,
		},
	}

	_, err := r.preferences.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}
