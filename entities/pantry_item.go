package entities

import (
	"time"
)

type PantryItem struct {
	ID             string    `bson:"_id" json:"id"`
	FamilyID       string    `bson:"family_id" json:"family_id"`
	Name           string    `bson:"name" json:"name"`
	Quantity       float64   `bson:"quantity" json:"quantity"`
	Unit           string    `bson:"unit" json:"unit"` // "piece", "kg", "g", "l", "ml"
	ExpirationDate time.Time `bson:"expiration_date,omitempty" json:"expiration_date,omitempty"`

	Timestamp `bson:",inline"`
}
