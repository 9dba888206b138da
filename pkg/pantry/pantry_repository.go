package pantry

import (
	"context"
	"regexp"
	"time"

	"family-hub-backend/entities"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type (
	PantryRepository interface {
		AddPantryItem(ctx context.Context, item *entities.PantryItem) error
		GetPantryItemByID(ctx context.Context, familyID, id string) (*entities.PantryItem, error)
		GetPantryItems(ctx context.Context, familyID string) ([]*entities.PantryItem, error)
		GetPantryItemByName(ctx context.Context, familyID, name string) (*entities.PantryItem, error)
		GetExpiringItems(ctx context.Context, familyID string, before time.Time) ([]*entities.PantryItem, error)
		GetFamilyIDs(ctx context.Context) ([]string, error)
		UpdatePantryItem(ctx context.Context, item *entities.PantryItem) error
		DeletePantryItem(ctx context.Context, familyID, id string) error
	}

	pantryRepository struct {
		items *mongo.Collection
	}
)

func NewPantryRepository(db *mongo.Database) PantryRepository {
	return &pantryRepository{items: db.Collection("pantry")}
}

func (r *pantryRepository) AddPantryItem(ctx context.Context, item *entities.PantryItem) error {
	_, err := r.items.InsertOne(ctx, item)
	return err
}

func (r *pantryRepository) GetPantryItemByID(ctx context.Context, familyID, id string) (*entities.PantryItem, error) {
	var item entities.PantryItem
	if err := r.items.FindOne(ctx, bson.M{"_id": id, "family_id": familyID}).Decode(&item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *pantryRepository) GetPantryItems(ctx context.Context, familyID string) ([]*entities.PantryItem, error) {
	cursor, err := r.items.Find(ctx, bson.M{"family_id": familyID}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []*entities.PantryItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// GetPantryItemByName matches case-insensitively so "Milk" and "milk" merge
// into one row.
func (r *pantryRepository) GetPantryItemByName(ctx context.Context, familyID, name string) (*entities.PantryItem, error) {
	filter := bson.M{
		"family_id": familyID,
		"name":      bson.M{"$regex": "^" + regexp.QuoteMeta(name) + "$", "$options": "i"},
	}

	var item entities.PantryItem
	if err := r.items.FindOne(ctx, filter).Decode(&item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *pantryRepository) GetExpiringItems(ctx context.Context, familyID string, before time.Time) ([]*entities.PantryItem, error) {
	filter := bson.M{
		"family_id":       familyID,
		"expiration_date": bson.M{"$gt": time.Time{}, "$lte": before},
	}

	cursor, err := r.items.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "expiration_date", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []*entities.PantryItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *pantryRepository) GetFamilyIDs(ctx context.Context) ([]string, error) {
	raw, err := r.items.Distinct(ctx, "family_id", bson.M{})
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(raw))
	for _, v := range raw {
		if id, ok := v.(string); ok {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (r *pantryRepository) UpdatePantryItem(ctx context.Context, item *entities.PantryItem) error {
	res, err := r.items.ReplaceOne(ctx, bson.M{"_id": item.ID, "family_id": item.FamilyID}, item)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *pantryRepository) DeletePantryItem(ctx context.Context, familyID, id string) error {
	res, err := r.items.DeleteOne(ctx, bson.M{"_id": id, "family_id": familyID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
