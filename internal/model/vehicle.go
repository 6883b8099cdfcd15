package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Fuel types are a closed enumeration. Electricity reuses the
// price-per-liter column as price-per-kWh.
const (
	FuelTypeRegular     = "regular"
	FuelTypePremium     = "premium"
	FuelTypeDiesel      = "diesel"
	FuelTypeElectricity = "electricity"
)

// ValidFuelType reports whether t belongs to the closed fuel-type set.
func ValidFuelType(t string) bool {
	switch t {
	case FuelTypeRegular, FuelTypePremium, FuelTypeDiesel, FuelTypeElectricity:
		return true
	}
	return false
}

const (
	VehicleTypeRegular = "regular"
	VehicleTypeHybrid  = "hybrid"
)

// Vehicle is a company vehicle used to deliver events. Hybrid vehicles
// carry the battery fields; for regular vehicles those stay nil.
type Vehicle struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `gorm:"not null;index"`
	Model       *string
	Year        *string `gorm:"type:varchar(4)"`
	PlateNumber *string `gorm:"type:varchar(20)"`
	FuelType    string  `gorm:"not null"`
	VehicleType string  `gorm:"not null;default:'regular'"`

	// Km per liter in pure combustion mode.
	FuelEfficiency decimal.Decimal `gorm:"type:decimal(5,2);not null"`

	// Hybrid-only fields.
	BatteryCapacityKwh         *decimal.Decimal `gorm:"type:decimal(5,2)"`
	ElectricRangeKm            *decimal.Decimal `gorm:"type:decimal(5,2)"`
	BatteryMinPercentage       decimal.Decimal  `gorm:"type:decimal(5,2);not null;default:25"`
	HybridEfficiencyKmPerLiter *decimal.Decimal `gorm:"type:decimal(5,2)"`

	Color     *string `gorm:"type:varchar(7)"`
	IsActive  bool    `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsHybrid reports whether the vehicle blends electric and combustion cost.
func (v *Vehicle) IsHybrid() bool { return v.VehicleType == VehicleTypeHybrid }
