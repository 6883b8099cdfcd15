package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Package is a bookable bundle of games sold at one price for an event.
type Package struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `gorm:"not null;index"`
	Description *string
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	MaxAge      *int
	IsActive    bool `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Games []PackageGame `gorm:"foreignKey:PackageID"`
}

// PackageGame is the package↔game pivot carrying the per-pairing quantity.
type PackageGame struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PackageID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_package_game"`
	GameID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_package_game"`
	Quantity  int       `gorm:"not null;default:1"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Game *Game `gorm:"foreignKey:GameID"`
}
