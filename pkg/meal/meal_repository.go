package meal

import (
	"context"
	"time"

	"family-hub-backend/entities"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type (
	MealRepository interface {
		AddMeal(ctx context.Context, meal *entities.MealPlanEntry) error
		GetMealByID(ctx context.Context, familyID, id string) (*entities.MealPlanEntry, error)
		GetMealsByFamily(ctx context.Context, familyID string) ([]*entities.MealPlanEntry, error)
		GetMealsByDateRange(ctx context.Context, familyID string, start, end time.Time) ([]*entities.MealPlanEntry, error)
		DeleteMeal(ctx context.Context, familyID, id string) error
	}

	mealRepository struct {
		meals *mongo.Collection
	}
)

func NewMealRepository(db *mongo.Database) MealRepository {
	return &mealRepository{meals: db.Collection("mealPlan")}
}

func (r *mealRepository) AddMeal(ctx context.Context, meal *entities.MealPlanEntry) error {
	_, err := r.meals.InsertOne(ctx, meal)
	return err
}

func (r *mealRepository) GetMealByID(ctx context.Context, familyID, id string) (*entities.MealPlanEntry, error) {
	var meal entities.MealPlanEntry
	if err := r.meals.FindOne(ctx, bson.M{"_id": id, "family_id": familyID}).Decode(&meal); err != nil {
		return nil, err
	}
	return &meal, nil
}

func (r *mealRepository) GetMealsByFamily(ctx context.Context, familyID string) ([]*entities.MealPlanEntry, error) {
	cursor, err := r.meals.Find(ctx, bson.M{"family_id": familyID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var meals []*entities.MealPlanEntry
	if err := cursor.All(ctx, &meals); err != nil {
		return nil, err
	}
	return meals, nil
}

// GetMealsByDateRange returns the family's entries with start <= date < end.
func (r *mealRepository) GetMealsByDateRange(ctx context.Context, familyID string, start, end time.Time) ([]*entities.MealPlanEntry, error) {
	filter := bson.M{
		"family_id": familyID,
		"date":      bson.M{"$gte": start, "$lt": end},
	}

	cursor, err := r.meals.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "date", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var meals []*entities.MealPlanEntry
	if err := cursor.All(ctx, &meals); err != nil {
		return nil, err
	}
	return meals, nil
}

func (r *mealRepository) DeleteMeal(ctx context.Context, familyID, id string) error {
	res, err := r.meals.DeleteOne(ctx, bson.M{"_id": id, "family_id": familyID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
