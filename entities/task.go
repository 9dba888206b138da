package entities

import (
	"time"
)

type Task struct {
	ID                string    `bson:"_id" json:"id"`
	FamilyID          string    `bson:"family_id" json:"family_id"`
	Title             string    `bson:"title" json:"title"`
	Description       string    `bson:"description" json:"description"`
	Assignee          string    `bson:"assignee" json:"assignee"`
	DueDate           time.Time `bson:"due_date,omitempty" json:"due_date,omitempty"`
	Priority          string    `bson:"priority" json:"priority"` // "low", "medium", "high"
	Status            string    `bson:"status" json:"status"`     // "not started", "in progress", "completed"
	IsRecurring       bool      `bson:"is_recurring" json:"is_recurring"`
	RecurrencePattern string    `bson:"recurrence_pattern,omitempty" json:"recurrence_pattern,omitempty"`
	CreatedBy         string    `bson:"created_by" json:"created_by"`

	Timestamp `bson:",inline"`
}
