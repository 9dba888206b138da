package waste

import (
	"context"

	"family-hub-backend/entities"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type (
	WasteRepository interface {
		AddWasteEntry(ctx context.Context, entry *entities.WasteLogEntry) error
		GetWasteLog(ctx context.Context, familyID string) ([]*entities.WasteLogEntry, error)
		DeleteWasteEntry(ctx context.Context, familyID, id string) error
	}

	wasteRepository struct {
		entries *mongo.Collection
	}
)

func NewWasteRepository(db *mongo.Database) WasteRepository {
	return &wasteRepository{entries: db.Collection("wasteLog")}
}

func (r *wasteRepository) AddWasteEntry(ctx context.Context, entry *entities.WasteLogEntry) error {
	_, err := r.entries.InsertOne(ctx, entry)
	return err
}

func (r *wasteRepository) GetWasteLog(ctx context.Context, familyID string) ([]*entities.WasteLogEntry, error) {
	cursor, err := r.entries.Find(ctx, bson.M{"family_id": familyID}, options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []*entities.WasteLogEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *wasteRepository) DeleteWasteEntry(ctx context.Context, familyID, id string) error {
	res, err := r.entries.DeleteOne(ctx, bson.M{"_id": id, "family_id": familyID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
