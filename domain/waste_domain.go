package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessAddWasteEntry = "waste entry logged successfully"
	MessageSuccessGetWasteLog   = "waste log retrieved successfully"
	MessageSuccessDeleteWaste   = "waste entry deleted successfully"
	MessageSuccessGetWasteStats = "waste statistics retrieved successfully"
	MessageFailedAddWasteEntry  = "failed to log waste entry"
	MessageFailedGetWasteLog    = "failed to retrieve waste log"
	MessageFailedDeleteWaste    = "failed to delete waste entry"
	MessageFailedGetWasteStats  = "failed to retrieve waste statistics"

	ErrWasteEntryNotFound = errors.New("waste log entry not found")
)

type (
	AddWasteEntryRequest struct {
		Item     string  `json:"item" validate:"required"`
		Quantity float64 `json:"quantity" validate:"required,min=0"`
		Unit     string  `json:"unit" validate:"required,oneof=piece kg g l ml"`
		Reason   string  `json:"reason" validate:"required"`
	}

	WasteEntryResponse struct {
		ID       string    `json:"id"`
		Item     string    `json:"item"`
		Quantity float64   `json:"quantity"`
		Unit     string    `json:"unit"`
		Reason   string    `json:"reason"`
		Date     time.Time `json:"date"`
	}

	WasteStatsResponse struct {
		ByReason map[string]float64 `json:"by_reason"`
		Total    float64            `json:"total"`
	}
)
