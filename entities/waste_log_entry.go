package entities

import (
	"time"
)

// WasteLogEntry is append-only: entries are created and deleted, never updated.
type WasteLogEntry struct {
	ID       string    `bson:"_id" json:"id"`
	FamilyID string    `bson:"family_id" json:"family_id"`
	Item     string    `bson:"item" json:"item"`
	Quantity float64   `bson:"quantity" json:"quantity"`
	Unit     string    `bson:"unit" json:"unit"`
	Reason   string    `bson:"reason" json:"reason"`
	Date     time.Time `bson:"date" json:"date"`

	Timestamp `bson:",inline"`
}
