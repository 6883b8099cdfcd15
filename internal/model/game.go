package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Game is an inventory item (despite the name, not necessarily a literal
// game) tracked by unit-count buckets for health and availability.
// Invariant: each counter set must sum exactly to Quantity — enforced in
// the game service, never assumed.
type Game struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"not null;index"`
	ToyTypeID *uuid.UUID `gorm:"type:uuid;index"`
	Quantity  int        `gorm:"not null;default:0"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	IsActive  bool            `gorm:"not null;default:true"`

	// Health-status counters.
	ExcellentCount int `gorm:"not null;default:0"`
	GoodCount      int `gorm:"not null;default:0"`
	FairCount      int `gorm:"not null;default:0"`
	PoorCount      int `gorm:"not null;default:0"`
	BrokenCount    int `gorm:"not null;default:0"`

	// Availability-status counters.
	AvailableCount   int `gorm:"not null;default:0"`
	InUseCount       int `gorm:"not null;default:0"`
	MaintenanceCount int `gorm:"not null;default:0"`
	RetiredCount     int `gorm:"not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time

	ToyType    *ToyType    `gorm:"foreignKey:ToyTypeID"`
	ToyClauses []ToyClause `gorm:"many2many:game_toy_clauses"`
}

// HealthTotal sums the health-status counters.
func (g *Game) HealthTotal() int {
	return g.ExcellentCount + g.GoodCount + g.FairCount + g.PoorCount + g.BrokenCount
}

// AvailabilityTotal sums the availability-status counters.
func (g *Game) AvailabilityTotal() int {
	return g.AvailableCount + g.InUseCount + g.MaintenanceCount + g.RetiredCount
}

// CountersConsistent reports whether both counter sets sum to Quantity.
func (g *Game) CountersConsistent() bool {
	return g.HealthTotal() == g.Quantity && g.AvailabilityTotal() == g.Quantity
}

// ToyType classifies games (inflable, mecánico, etc.).
type ToyType struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `gorm:"uniqueIndex;not null"`
	Description *string
	IsActive    bool `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ToyClause is a liability/damage clause attachable to games.
type ToyClause struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `gorm:"not null"`
	Description *string
	IsActive    bool `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Games []Game `gorm:"many2many:game_toy_clauses"`
}
