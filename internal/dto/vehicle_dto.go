package dto

import "github.com/shopspring/decimal"

type CreateVehicleRequest struct {
	Name        string  `json:"name"         validate:"required,max=255"`
	Model       *string `json:"model"        validate:"omitempty,max=255"`
	Year        *string `json:"year"         validate:"omitempty,max=4"`
	PlateNumber *string `json:"plate_number" validate:"omitempty,max=20"`
	FuelType    string  `json:"fuel_type"    validate:"required,oneof=regular premium diesel electricity"`
	VehicleType string  `json:"vehicle_type" validate:"omitempty,oneof=regular hybrid"`

	FuelEfficiency decimal.Decimal `json:"fuel_efficiency" validate:"required"`

	// Required when vehicle_type = hybrid, checked in the service.
	BatteryCapacityKwh         *decimal.Decimal `json:"battery_capacity_kwh"`
	ElectricRangeKm            *decimal.Decimal `json:"electric_range_km"`
	BatteryMinPercentage       *decimal.Decimal `json:"battery_min_percentage"`
	HybridEfficiencyKmPerLiter *decimal.Decimal `json:"hybrid_efficiency_km_per_liter"`

	Color    *string `json:"color" validate:"omitempty,max=7"`
	IsActive *bool   `json:"is_active"`
}

type UpdateVehicleRequest struct {
	Name        *string `json:"name"         validate:"omitempty,max=255"`
	Model       *string `json:"model"        validate:"omitempty,max=255"`
	Year        *string `json:"year"         validate:"omitempty,max=4"`
	PlateNumber *string `json:"plate_number" validate:"omitempty,max=20"`
	FuelType    *string `json:"fuel_type"    validate:"omitempty,oneof=regular premium diesel electricity"`
	VehicleType *string `json:"vehicle_type" validate:"omitempty,oneof=regular hybrid"`

	FuelEfficiency *decimal.Decimal `json:"fuel_efficiency"`

	BatteryCapacityKwh         *decimal.Decimal `json:"battery_capacity_kwh"`
	ElectricRangeKm            *decimal.Decimal `json:"electric_range_km"`
	BatteryMinPercentage       *decimal.Decimal `json:"battery_min_percentage"`
	HybridEfficiencyKmPerLiter *decimal.Decimal `json:"hybrid_efficiency_km_per_liter"`

	Color    *string `json:"color" validate:"omitempty,max=7"`
	IsActive *bool   `json:"is_active"`
}

type VehicleFilter struct {
	Active string `form:"active"` // "true" | "false" | "" (all)
}

type VehicleResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Model       *string `json:"model"`
	Year        *string `json:"year"`
	PlateNumber *string `json:"plate_number"`
	FuelType    string  `json:"fuel_type"`
	VehicleType string  `json:"vehicle_type"`

	FuelEfficiency decimal.Decimal `json:"fuel_efficiency"`

	BatteryCapacityKwh         *decimal.Decimal `json:"battery_capacity_kwh"`
	ElectricRangeKm            *decimal.Decimal `json:"electric_range_km"`
	BatteryMinPercentage       decimal.Decimal  `json:"battery_min_percentage"`
	HybridEfficiencyKmPerLiter *decimal.Decimal `json:"hybrid_efficiency_km_per_liter"`

	Color    *string `json:"color"`
	IsActive bool    `json:"is_active"`
}

// ─── Fuel cost calculation ───────────────────────────────────────────────────

type FuelCostRequest struct {
	VehicleID  string          `json:"vehicle_id" validate:"required,uuid"`
	Kilometers decimal.Decimal `json:"kilometers" validate:"required"`
}

type FuelCostResponse struct {
	Vehicle          VehicleResponse `json:"vehicle"`
	Kilometers       decimal.Decimal `json:"kilometers"`
	FuelCost         decimal.Decimal `json:"fuel_cost"`
	CostPerKilometer decimal.Decimal `json:"cost_per_kilometer"`
	CurrentFuelPrice decimal.Decimal `json:"current_fuel_price"`
	FuelEfficiency   decimal.Decimal `json:"fuel_efficiency"`
	LitersNeeded     decimal.Decimal `json:"liters_needed"`
}
