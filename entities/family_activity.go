package entities

import (
	"time"
)

const (
	ActivityTypeEvent      = "event"
	ActivityTypeVacation   = "vacation"
	ActivityTypeBucketList = "bucketList"
)

// FamilyActivity is a tagged variant over Type: exactly one of the per-kind
// field groups is populated, enforced by the per-kind constructors in
// pkg/activity.
type FamilyActivity struct {
	ID       string `bson:"_id" json:"id"`
	FamilyID string `bson:"family_id" json:"family_id"`
	Type     string `bson:"type" json:"type"`
	Title    string `bson:"title" json:"title"`
	Status   string `bson:"status" json:"status"`
	PhotoURL string `bson:"photo_url,omitempty" json:"photo_url,omitempty"`

	// event
	Date        time.Time `bson:"date,omitempty" json:"date,omitempty"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`

	// vacation
	StartDate   time.Time `bson:"start_date,omitempty" json:"start_date,omitempty"`
	EndDate     time.Time `bson:"end_date,omitempty" json:"end_date,omitempty"`
	Destination string    `bson:"destination,omitempty" json:"destination,omitempty"`
	Budget      float64   `bson:"budget,omitempty" json:"budget,omitempty"`
	Activities  []string  `bson:"activities,omitempty" json:"activities,omitempty"`
	PackingList []string  `bson:"packing_list,omitempty" json:"packing_list,omitempty"`

	// bucketList
	TargetDate time.Time `bson:"target_date,omitempty" json:"target_date,omitempty"`

	Timestamp `bson:",inline"`
}
