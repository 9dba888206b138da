package domain

import (
	"errors"
)

var (
	MessageSuccessAddActivity    = "activity added successfully"
	MessageSuccessGetActivities  = "activities retrieved successfully"
	MessageSuccessUpdateActivity = "activity updated successfully"
	MessageSuccessDeleteActivity = "activity deleted successfully"
	MessageSuccessUploadPhoto    = "activity photo uploaded successfully"
	MessageFailedAddActivity     = "failed to add activity"
	MessageFailedGetActivities   = "failed to retrieve activities"
	MessageFailedUpdateActivity  = "failed to update activity"
	MessageFailedDeleteActivity  = "failed to delete activity"
	MessageFailedUploadPhoto     = "failed to upload activity photo"

	ErrActivityNotFound    = errors.New("activity not found")
	ErrInvalidActivityKind = errors.New("invalid activity kind")
	ErrInvalidDateRange    = errors.New("end date before start date")
)

type (
	AddEventActivityRequest struct {
		Title       string `json:"title" validate:"required"`
		Date        string `json:"date" validate:"required"`
		Description string `json:"description"`
	}

	AddVacationRequest struct {
		Title       string   `json:"title" validate:"required"`
		StartDate   string   `json:"start_date" validate:"required"`
		EndDate     string   `json:"end_date" validate:"required"`
		Destination string   `json:"destination" validate:"required"`
		Budget      float64  `json:"budget" validate:"required,min=0"`
		Activities  []string `json:"activities"`
		PackingList []string `json:"packing_list"`
	}

	AddBucketListItemRequest struct {
		Title       string `json:"title" validate:"required"`
		Description string `json:"description" validate:"required"`
		TargetDate  string `json:"target_date" validate:"omitempty"`
	}

	UpdateActivityStatusRequest struct {
		Status string `json:"status" validate:"required,oneof='Not Started' 'In Progress' Completed planned done"`
	}

	ActivityResponse struct {
		ID          string   `json:"id"`
		Type        string   `json:"type"`
		Title       string   `json:"title"`
		Status      string   `json:"status"`
		PhotoURL    string   `json:"photo_url,omitempty"`
		Date        string   `json:"date,omitempty"`
		Description string   `json:"description,omitempty"`
		StartDate   string   `json:"start_date,omitempty"`
		EndDate     string   `json:"end_date,omitempty"`
		Destination string   `json:"destination,omitempty"`
		Budget      float64  `json:"budget,omitempty"`
		Activities  []string `json:"activities,omitempty"`
		PackingList []string `json:"packing_list,omitempty"`
		TargetDate  string   `json:"target_date,omitempty"`
	}
)
