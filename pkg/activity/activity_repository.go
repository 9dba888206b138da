package activity

import (
	"context"

	"family-hub-backend/entities"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type (
	ActivityRepository interface {
		AddActivity(ctx context.Context, activity *entities.FamilyActivity) error
		GetActivityByID(ctx context.Context, familyID, id string) (*entities.FamilyActivity, error)
		GetActivities(ctx context.Context, familyID, activityType string) ([]*entities.FamilyActivity, error)
		UpdateActivity(ctx context.Context, activity *entities.FamilyActivity) error
		DeleteActivity(ctx context.Context, familyID, id string) error
	}

	activityRepository struct {
		activities *mongo.Collection
	}
)

func NewActivityRepository(db *mongo.Database) ActivityRepository {
	return &activityRepository{activities: db.Collection("activities")}
}

func (r *activityRepository) AddActivity(ctx context.Context, activity *entities.FamilyActivity) error {
	_, err := r.activities.InsertOne(ctx, activity)
	return err
}

func (r *activityRepository) GetActivityByID(ctx context.Context, familyID, id string) (*entities.FamilyActivity, error) {
	var activity entities.FamilyActivity
	if err := r.activities.FindOne(ctx, bson.M{"_id": id, "family_id": familyID}).Decode(&activity); err != nil {
		return nil, err
	}
	return &activity, nil
}

func (r *activityRepository) GetActivities(ctx context.Context, familyID, activityType string) ([]*entities.FamilyActivity, error) {
	filter := bson.M{"family_id": familyID}
	if activityType != "" {
		filter["type"] = activityType
	}

	cursor, err := r.activities.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var activities []*entities.FamilyActivity
	if err := cursor.All(ctx, &activities); err != nil {
		return nil, err
	}
	return activities, nil
}

func (r *activityRepository) UpdateActivity(ctx context.Context, activity *entities.FamilyActivity) error {
	res, err := r.activities.ReplaceOne(ctx, bson.M{"_id": activity.ID, "family_id": activity.FamilyID}, activity)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *activityRepository) DeleteActivity(ctx context.Context, familyID, id string) error {
	res, err := r.activities.DeleteOne(ctx, bson.M{"_id": id, "family_id": familyID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
