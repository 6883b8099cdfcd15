package dto

import "github.com/shopspring/decimal"

type PackageGameInput struct {
	GameID   string `json:"game_id"  validate:"required,uuid"`
	Quantity int    `json:"quantity" validate:"min=1"`
}

type CreatePackageRequest struct {
	Name        string             `json:"name"  validate:"required,max=255"`
	Description *string            `json:"description"`
	Price       decimal.Decimal    `json:"price" validate:"required"`
	MaxAge      *int               `json:"max_age" validate:"omitempty,min=0"`
	Games       []PackageGameInput `json:"games" validate:"omitempty,dive"`
	IsActive    *bool              `json:"is_active"`
}

type UpdatePackageRequest struct {
	Name        *string            `json:"name"  validate:"omitempty,max=255"`
	Description *string            `json:"description"`
	Price       *decimal.Decimal   `json:"price"`
	MaxAge      *int               `json:"max_age" validate:"omitempty,min=0"`
	Games       []PackageGameInput `json:"games" validate:"omitempty,dive"` // nil = leave pairings untouched
	IsActive    *bool              `json:"is_active"`
}

type PackageGameResponse struct {
	GameID   string        `json:"game_id"`
	Quantity int           `json:"quantity"`
	Game     *GameResponse `json:"game,omitempty"`
}

type PackageResponse struct {
	ID          string                `json:"id"`
	Name        string                `json:"name"`
	Description *string               `json:"description"`
	Price       decimal.Decimal       `json:"price"`
	MaxAge      *int                  `json:"max_age"`
	IsActive    bool                  `json:"is_active"`
	Games       []PackageGameResponse `json:"games"`
}
