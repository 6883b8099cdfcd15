package dto

import "github.com/shopspring/decimal"

type SetFuelPriceRequest struct {
	FuelType      string          `json:"fuel_type"       validate:"required,oneof=regular premium diesel electricity"`
	PricePerLiter decimal.Decimal `json:"price_per_liter" validate:"required"`
	EffectiveDate string          `json:"effective_date"  validate:"required,datetime=2006-01-02"`
	Notes         *string         `json:"notes"           validate:"omitempty,max=500"`
}

// UpdateFuelPriceRequest edits one ledger row in place. Activating a row by
// hand can break the single-active invariant — the service re-checks it.
type UpdateFuelPriceRequest struct {
	FuelType      *string          `json:"fuel_type"       validate:"omitempty,oneof=regular premium diesel electricity"`
	PricePerLiter *decimal.Decimal `json:"price_per_liter"`
	EffectiveDate *string          `json:"effective_date"  validate:"omitempty,datetime=2006-01-02"`
	IsActive      *bool            `json:"is_active"`
	Notes         *string          `json:"notes"           validate:"omitempty,max=500"`
}

type FuelPriceResponse struct {
	ID            string          `json:"id"`
	FuelType      string          `json:"fuel_type"`
	PricePerLiter decimal.Decimal `json:"price_per_liter"`
	EffectiveDate string          `json:"effective_date"`
	IsActive      bool            `json:"is_active"`
	Notes         *string         `json:"notes"`
	CreatedAt     string          `json:"created_at"`
}
