package entities

import (
	"time"
)

const (
	EventTypeGeneral  = "general"
	EventTypeTask     = "task"
	EventTypeMeal     = "meal"
	EventTypeActivity = "activity"
)

// CalendarEvent is either a user-created "general" event or a one-way mirror
// of a task/meal document. SourceID holds the originating document id for
// mirrors and is empty for general events.
type CalendarEvent struct {
	ID       string    `bson:"_id" json:"id"`
	FamilyID string    `bson:"family_id" json:"family_id"`
	Title    string    `bson:"title" json:"title"`
	Start    time.Time `bson:"start" json:"start"`
	End      time.Time `bson:"end" json:"end"`
	AllDay   bool      `bson:"all_day" json:"all_day"`
	Type     string    `bson:"type" json:"type"`
	SourceID string    `bson:"source_id,omitempty" json:"source_id,omitempty"`

	Timestamp `bson:",inline"`
}
