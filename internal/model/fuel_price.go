package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FuelPrice is one row of the append-only fuel price ledger. Setting a new
// price deactivates every previous active row of the same type inside one
// transaction, so at most one row per fuel type has IsActive = true.
// "Current price" = the active row with the newest EffectiveDate.
type FuelPrice struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	FuelType      string          `gorm:"not null;index:idx_fuel_prices_type_active"`
	PricePerLiter decimal.Decimal `gorm:"type:decimal(8,2);not null"` // per kWh for electricity
	EffectiveDate time.Time       `gorm:"type:date;not null"`
	IsActive      bool            `gorm:"not null;default:true;index:idx_fuel_prices_type_active"`
	Notes         *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
