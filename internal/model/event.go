package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Event statuses form a closed set; anything else is rejected at the DTO layer.
const (
	EventStatusPending    = "pending"
	EventStatusConfirmed  = "confirmed"
	EventStatusInProgress = "in_progress"
	EventStatusCompleted  = "completed"
	EventStatusCancelled  = "cancelled"
)

// Event is a booked party. Derived columns (EndTime, PackageDiscountAmount,
// the *Cost fields and TotalExtrasCost) are never written directly — the
// event service recomputes them on every create/update.
type Event struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ContactName    string    `gorm:"not null;index"`
	ContactPhone   string    `gorm:"not null"`
	SecondaryPhone *string
	Address        string `gorm:"not null"`
	GoogleMapsURL  *string
	Latitude       *decimal.Decimal `gorm:"type:decimal(10,8)"`
	Longitude      *decimal.Decimal `gorm:"type:decimal(11,8)"`

	EventDate time.Time `gorm:"type:date;not null;index"`
	StartTime string    `gorm:"type:varchar(5);not null"` // HH:MM
	EndTime   string    `gorm:"type:varchar(5);not null"` // derived: start + 4h + extra hours

	PackageID             *uuid.UUID      `gorm:"type:uuid;index"`
	DiscountPercentage    decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"`
	PackageDiscountAmount decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`

	HasAdvancePayment    bool             `gorm:"not null;default:false"`
	AdvancePaymentAmount *decimal.Decimal `gorm:"type:decimal(10,2)"`
	AdvancePayment       decimal.Decimal  `gorm:"type:decimal(10,2);not null;default:0"`

	// Extras: raw counts submitted by the client.
	ExtraHoursCount int `gorm:"not null;default:0"`
	ExtraTables     int `gorm:"not null;default:0"`
	ExtraChairs     int `gorm:"not null;default:0"`
	ExtraPlaypens   int `gorm:"not null;default:0"`
	ExtraToys       int `gorm:"not null;default:0"`
	ExtraServices   *string

	// Extras: derived costs. ExtraHoursCost is kept as its own column and is
	// also summed into TotalExtrasCost (historical behavior, see DESIGN.md).
	ExtraHoursCost    decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	ExtraServicesCost decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	TablesCost        decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	ChairsCost        decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	PlaypensCost      decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	ToysCost          decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	TotalExtrasCost   decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`

	Status      string `gorm:"not null;default:'pending';index"`
	Notes       *string
	ChildGender *string `gorm:"type:varchar(6)"` // male | female
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Package *Package `gorm:"foreignKey:PackageID"`
}

// PackageFinalPrice returns the package price minus the applied discount,
// or zero when the event has no package attached.
func (e *Event) PackageFinalPrice() decimal.Decimal {
	if e.Package == nil {
		return decimal.Zero
	}
	return e.Package.Price.Sub(e.PackageDiscountAmount)
}

// TotalEventPrice is the discounted package price plus all extras.
func (e *Event) TotalEventPrice() decimal.Decimal {
	return e.PackageFinalPrice().Add(e.TotalExtrasCost)
}
