package entities

import (
	"time"
)

type MealIngredient struct {
	Name   string  `bson:"name" json:"name"`
	Amount float64 `bson:"amount" json:"amount"`
	Unit   string  `bson:"unit" json:"unit"`
}

type MealPlanEntry struct {
	ID             string           `bson:"_id" json:"id"`
	FamilyID       string           `bson:"family_id" json:"family_id"`
	RecipeID       int              `bson:"recipe_id" json:"recipe_id"`
	Title          string           `bson:"title" json:"title"`
	ImageURL       string           `bson:"image_url,omitempty" json:"image_url,omitempty"`
	Date           time.Time        `bson:"date" json:"date"` // always midnight UTC, date-only
	MealType       string           `bson:"meal_type" json:"meal_type"` // "breakfast", "lunch", "dinner", "snack"
	Servings       int              `bson:"servings,omitempty" json:"servings,omitempty"`
	ReadyInMinutes int              `bson:"ready_in_minutes,omitempty" json:"ready_in_minutes,omitempty"`
	SourceURL      string           `bson:"source_url,omitempty" json:"source_url,omitempty"`
	Ingredients    []MealIngredient `bson:"ingredients,omitempty" json:"ingredients,omitempty"`

	Timestamp `bson:",inline"`
}
