package dto

import "github.com/shopspring/decimal"

type CreateExpenseRequest struct {
	Concept           string          `json:"concept"             validate:"required,max=255"`
	Description       *string         `json:"description"`
	Amount            decimal.Decimal `json:"amount"              validate:"required"`
	ExpenseCategoryID string          `json:"expense_category_id" validate:"required,uuid"`
	EventID           *string         `json:"event_id"            validate:"omitempty,uuid"`
	Status            string          `json:"status"              validate:"omitempty,oneof=pending paid"`
	ExpenseDate       string          `json:"expense_date"        validate:"required,datetime=2006-01-02"`
	PaymentDate       *string         `json:"payment_date"        validate:"omitempty,datetime=2006-01-02"`
}

type UpdateExpenseRequest struct {
	Concept           *string          `json:"concept"             validate:"omitempty,max=255"`
	Description       *string          `json:"description"`
	Amount            *decimal.Decimal `json:"amount"`
	ExpenseCategoryID *string          `json:"expense_category_id" validate:"omitempty,uuid"`
	EventID           *string          `json:"event_id"            validate:"omitempty,uuid"`
	Status            *string          `json:"status"              validate:"omitempty,oneof=pending paid"`
	ExpenseDate       *string          `json:"expense_date"        validate:"omitempty,datetime=2006-01-02"`
	PaymentDate       *string          `json:"payment_date"        validate:"omitempty,datetime=2006-01-02"`
}

type ExpenseFilter struct {
	CategoryID string `form:"category_id"`
	Status     string `form:"status"`
	DateFrom   string `form:"date_from"`
	DateTo     string `form:"date_to"`
}

type ExpenseResponse struct {
	ID                string          `json:"id"`
	Concept           string          `json:"concept"`
	Description       *string         `json:"description"`
	Amount            decimal.Decimal `json:"amount"`
	ExpenseCategoryID string          `json:"expense_category_id"`
	EventID           *string         `json:"event_id"`
	UsageID           *string         `json:"usage_id"`
	Status            string          `json:"status"`
	ExpenseDate       string          `json:"expense_date"`
	PaymentDate       *string         `json:"payment_date"`

	Category *ExpenseCategoryResponse `json:"category,omitempty"`
}

// ExpenseSummaryResponse aggregates expenses by status and by category.
type ExpenseSummaryResponse struct {
	Total      decimal.Decimal          `json:"total"`
	Pending    decimal.Decimal          `json:"pending"`
	Paid       decimal.Decimal          `json:"paid"`
	ByCategory []ExpenseCategorySummary `json:"by_category"`
}

type ExpenseCategorySummary struct {
	CategoryID   string          `json:"category_id"`
	CategoryName string          `json:"category_name"`
	Total        decimal.Decimal `json:"total"`
}
