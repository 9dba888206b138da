package grocery

import (
	"context"

	"family-hub-backend/entities"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type (
	GroceryRepository interface {
		AddGroceryItem(ctx context.Context, item *entities.GroceryItem) error
		AddGroceryItems(ctx context.Context, items []*entities.GroceryItem) error
		GetGroceryItemByID(ctx context.Context, familyID, id string) (*entities.GroceryItem, error)
		GetGroceryItems(ctx context.Context, familyID string) ([]*entities.GroceryItem, error)
		UpdateGroceryItem(ctx context.Context, item *entities.GroceryItem) error
		DeleteGroceryItem(ctx context.Context, familyID, id string) error
		DeleteAllGroceryItems(ctx context.Context, familyID string) error
	}

	groceryRepository struct {
		items *mongo.Collection
	}
)

func NewGroceryRepository(db *mongo.Database) GroceryRepository {
	return &groceryRepository{items: db.Collection("groceryList")}
}

func (r *groceryRepository) AddGroceryItem(ctx context.Context, item *entities.GroceryItem) error {
	_, err := r.items.InsertOne(ctx, item)
	return err
}

func (r *groceryRepository) AddGroceryItems(ctx context.Context, items []*entities.GroceryItem) error {
	if len(items) == 0 {
		return nil
	}
	docs := make([]interface{}, 0, len(items))
	for _, item := range items {
		docs = append(docs, item)
	}
	_, err := r.items.InsertMany(ctx, docs)
	return err
}

func (r *groceryRepository) GetGroceryItemByID(ctx context.Context, familyID, id string) (*entities.GroceryItem, error) {
	var item entities.GroceryItem
	if err := r.items.FindOne(ctx, bson.M{"_id": id, "family_id": familyID}).Decode(&item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *groceryRepository) GetGroceryItems(ctx context.Context, familyID string) ([]*entities.GroceryItem, error) {
	cursor, err := r.items.Find(ctx, bson.M{"family_id": familyID}, options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []*entities.GroceryItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *groceryRepository) UpdateGroceryItem(ctx context.Context, item *entities.GroceryItem) error {
	res, err := r.items.ReplaceOne(ctx, bson.M{"_id": item.ID, "family_id": item.FamilyID}, item)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *groceryRepository) DeleteGroceryItem(ctx context.Context, familyID, id string) error {
	res, err := r.items.DeleteOne(ctx, bson.M{"_id": id, "family_id": familyID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *groceryRepository) DeleteAllGroceryItems(ctx context.Context, familyID string) error {
	_, err := r.items.DeleteMany(ctx, bson.M{"family_id": familyID})
	return err
}
