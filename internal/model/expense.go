package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	ExpenseStatusPending = "pending"
	ExpenseStatusPaid    = "paid"
)

// FuelCategoryName is the expense category that auto-generated fuel
// expenses are filed under. The bootstrap upsert guarantees it exists.
const FuelCategoryName = "Gasolina"

// ExpenseCategory groups expenses for reporting.
type ExpenseCategory struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `gorm:"uniqueIndex;not null"`
	Description *string
	Color       *string `gorm:"type:varchar(7)"`
	IsActive    bool    `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Expense is a business expense, optionally tied to an event. Rows with
// UsageID set are companions of a vehicle usage: the usage service owns
// them exclusively and keeps amount/status in sync.
type Expense struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Concept           string    `gorm:"not null"`
	Description       *string
	Amount            decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	ExpenseCategoryID uuid.UUID       `gorm:"type:uuid;not null;index"`
	EventID           *uuid.UUID      `gorm:"type:uuid;index"`
	UsageID           *uuid.UUID      `gorm:"type:uuid;uniqueIndex"`
	Status            string          `gorm:"not null;default:'pending';index"`
	ExpenseDate       time.Time       `gorm:"type:date;not null;index"`
	PaymentDate       *time.Time      `gorm:"type:date"`
	CreatedAt         time.Time
	UpdatedAt         time.Time

	Category *ExpenseCategory `gorm:"foreignKey:ExpenseCategoryID"`
	Event    *Event           `gorm:"foreignKey:EventID"`
}
