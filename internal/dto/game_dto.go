package dto

import "github.com/shopspring/decimal"

type CreateGameRequest struct {
	Name      string          `json:"name"        validate:"required,max=255"`
	ToyTypeID *string         `json:"toy_type_id" validate:"omitempty,uuid"`
	Quantity  int             `json:"quantity"    validate:"min=0"`
	UnitPrice decimal.Decimal `json:"unit_price"`

	ExcellentCount int `json:"excellent_count" validate:"min=0"`
	GoodCount      int `json:"good_count"      validate:"min=0"`
	FairCount      int `json:"fair_count"      validate:"min=0"`
	PoorCount      int `json:"poor_count"      validate:"min=0"`
	BrokenCount    int `json:"broken_count"    validate:"min=0"`

	AvailableCount   int `json:"available_count"   validate:"min=0"`
	InUseCount       int `json:"in_use_count"      validate:"min=0"`
	MaintenanceCount int `json:"maintenance_count" validate:"min=0"`
	RetiredCount     int `json:"retired_count"     validate:"min=0"`

	IsActive *bool `json:"is_active"`
}

type UpdateGameRequest struct {
	Name      *string          `json:"name"        validate:"omitempty,max=255"`
	ToyTypeID *string          `json:"toy_type_id" validate:"omitempty,uuid"`
	Quantity  *int             `json:"quantity"    validate:"omitempty,min=0"`
	UnitPrice *decimal.Decimal `json:"unit_price"`
	IsActive  *bool            `json:"is_active"`
}

// GameFilter narrows the games listing. Available selects games with at
// least one unit available for rent.
type GameFilter struct {
	Active    string
	ToyTypeID string
	Available string
}

// UnitCountersRequest replaces both counter sets at once. Each set must sum
// to the game's quantity or the request is rejected.
type UnitCountersRequest struct {
	ExcellentCount int `json:"excellent_count" validate:"min=0"`
	GoodCount      int `json:"good_count"      validate:"min=0"`
	FairCount      int `json:"fair_count"      validate:"min=0"`
	PoorCount      int `json:"poor_count"      validate:"min=0"`
	BrokenCount    int `json:"broken_count"    validate:"min=0"`

	AvailableCount   int `json:"available_count"   validate:"min=0"`
	InUseCount       int `json:"in_use_count"      validate:"min=0"`
	MaintenanceCount int `json:"maintenance_count" validate:"min=0"`
	RetiredCount     int `json:"retired_count"     validate:"min=0"`
}

type GameResponse struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	ToyTypeID *string          `json:"toy_type_id"`
	ToyType   *ToyTypeResponse `json:"toy_type,omitempty"`
	Quantity  int              `json:"quantity"`
	UnitPrice decimal.Decimal  `json:"unit_price"`
	IsActive  bool             `json:"is_active"`

	ExcellentCount int `json:"excellent_count"`
	GoodCount      int `json:"good_count"`
	FairCount      int `json:"fair_count"`
	PoorCount      int `json:"poor_count"`
	BrokenCount    int `json:"broken_count"`

	AvailableCount   int `json:"available_count"`
	InUseCount       int `json:"in_use_count"`
	MaintenanceCount int `json:"maintenance_count"`
	RetiredCount     int `json:"retired_count"`
}
