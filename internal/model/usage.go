package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	UsageStatusPending = "pending"
	UsageStatusPaid    = "paid"
)

// EventVehicleUsage records the kilometers a vehicle drove for one event.
// FuelCost is derived from the vehicle profile and the current fuel prices.
// Each usage owns exactly one companion Expense row (Expense.UsageID) that
// mirrors its amount and status.
type EventVehicleUsage struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EventID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	VehicleID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Kilometers decimal.Decimal `gorm:"type:decimal(8,2);not null"`
	FuelCost   decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Status     string          `gorm:"not null;default:'pending'"`
	Notes      *string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Event   *Event   `gorm:"foreignKey:EventID"`
	Vehicle *Vehicle `gorm:"foreignKey:VehicleID"`
}
