package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessAddEvent    = "event added successfully"
	MessageSuccessUpdateEvent = "event updated successfully"
	MessageSuccessDeleteEvent = "event deleted successfully"
	MessageSuccessGetEvents   = "events retrieved successfully"
	MessageSuccessSyncEvents  = "events synchronized successfully"
	MessageFailedAddEvent     = "failed to add event"
	MessageFailedUpdateEvent  = "failed to update event"
	MessageFailedDeleteEvent  = "failed to delete event"
	MessageFailedGetEvents    = "failed to retrieve events"
	MessageFailedSyncEvents   = "failed to synchronize events"

	ErrEventNotFound    = errors.New("calendar event not found")
	ErrInvalidEventType = errors.New("invalid event type")
	ErrInvalidEventTime = errors.New("invalid event time range")
)

type (
	AddEventRequest struct {
		Title  string `json:"title" validate:"required"`
		Start  string `json:"start" validate:"required"`
		End    string `json:"end" validate:"required"`
		AllDay bool   `json:"all_day"`
		Type   string `json:"type" validate:"omitempty,oneof=general task meal activity"`
	}

	UpdateEventRequest struct {
		Title  string `json:"title" validate:"omitempty"`
		Start  string `json:"start" validate:"omitempty"`
		End    string `json:"end" validate:"omitempty"`
		AllDay *bool  `json:"all_day"`
	}

	EventResponse struct {
		ID       string    `json:"id"`
		Title    string    `json:"title"`
		Start    time.Time `json:"start"`
		End      time.Time `json:"end"`
		AllDay   bool      `json:"all_day"`
		Type     string    `json:"type"`
		SourceID string    `json:"source_id,omitempty"`
	}

	SyncResponse struct {
		Synced int `json:"synced"`
	}
)
