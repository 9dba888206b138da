package migrate

import (
	"context"
	"fmt"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Migrate creates the indexes every family-scoped query relies on.
func Migrate(db *mongo.Database) error {
	ctx := context.Background()

	familyIndex := mongo.IndexModel{Keys: bson.D{{Key: "family_id", Value: 1}}}

	for _, name := range []string{
		"tasks", "mealPlan", "pantry", "groceryList",
		"wasteLog", "events", "activities", "preferences",
	} {
		if _, err := db.Collection(name).Indexes().CreateOne(ctx, familyIndex); err != nil {
			log.Fatalf("Error creating index on %s: %v", name, err)
			return err
		}
	}

	// Weekly aggregation range-queries mealPlan by date within a family.
	if _, err := db.Collection("mealPlan").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "family_id", Value: 1}, {Key: "date", Value: 1}},
	}); err != nil {
		log.Fatalf("Error creating meal plan date index: %v", err)
		return err
	}

	// Mirrored calendar events are looked up by their source document.
	if _, err := db.Collection("events").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "family_id", Value: 1}, {Key: "source_id", Value: 1}},
	}); err != nil {
		log.Fatalf("Error creating event source index: %v", err)
		return err
	}

	if _, err := db.Collection("users").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		log.Fatalf("Error creating user email index: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
