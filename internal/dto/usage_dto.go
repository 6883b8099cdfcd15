package dto

import "github.com/shopspring/decimal"

type RecordUsageRequest struct {
	EventID    string          `json:"event_id"   validate:"required,uuid"`
	VehicleID  string          `json:"vehicle_id" validate:"required,uuid"`
	Kilometers decimal.Decimal `json:"kilometers" validate:"required"`
	Notes      *string         `json:"notes"`
}

type UpdateUsageRequest struct {
	Kilometers *decimal.Decimal `json:"kilometers"`
	Notes      *string          `json:"notes"`
	Status     *string          `json:"status" validate:"omitempty,oneof=pending paid"`
}

type UsageFilter struct {
	EventID string `form:"event_id"`
	Status  string `form:"status"`
}

type UsageResponse struct {
	ID         string          `json:"id"`
	EventID    string          `json:"event_id"`
	VehicleID  string          `json:"vehicle_id"`
	Kilometers decimal.Decimal `json:"kilometers"`
	FuelCost   decimal.Decimal `json:"fuel_cost"`
	Status     string          `json:"status"`
	Notes      *string         `json:"notes"`
	CreatedAt  string          `json:"created_at"`

	Event   *EventResponse   `json:"event,omitempty"`
	Vehicle *VehicleResponse `json:"vehicle,omitempty"`
}
