package repository

import (
	"context"
	"time"

	"github.com/LuisFernandoFloresSanchez/divertilandia-management-system/internal/dto"
	"github.com/LuisFernandoFloresSanchez/divertilandia-management-system/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ExpenseSummaryRow is one aggregate bucket of the expense summary query.
type ExpenseSummaryRow struct {
	CategoryID   uuid.UUID
	CategoryName string
	Status       string
	Total        decimal.Decimal
}

type ExpenseRepository interface {
	Create(ctx context.Context, e *model.Expense) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Expense, error)
	List(ctx context.Context, filter dto.ExpenseFilter) ([]model.Expense, error)
	Update(ctx context.Context, e *model.Expense) error
	Delete(ctx context.Context, id uuid.UUID) error

	// Summary groups expense totals by category and status so the service
	// can fold them into the overall/pending/paid figures in one pass.
	Summary(ctx context.Context, dateFrom, dateTo string) ([]ExpenseSummaryRow, error)
	MarkPaid(ctx context.Context, id uuid.UUID, paymentDate time.Time) error

	// Companion-expense access for the usage sync. These run inside the
	// usage transaction.
	FindByUsageIDTx(tx *gorm.DB, usageID uuid.UUID) (*model.Expense, error)
	CreateTx(tx *gorm.DB, e *model.Expense) error
	UpdateTx(tx *gorm.DB, e *model.Expense) error
	DeleteByUsageIDTx(tx *gorm.DB, usageID uuid.UUID) error
}

type expenseRepo struct{ db *gorm.DB }

func NewExpenseRepository(db *gorm.DB) ExpenseRepository { return &expenseRepo{db: db} }

func (r *expenseRepo) Create(ctx context.Context, e *model.Expense) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *expenseRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Expense, error) {
	var e model.Expense
	err := r.db.WithContext(ctx).Preload("Category").First(&e, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *expenseRepo) List(ctx context.Context, filter dto.ExpenseFilter) ([]model.Expense, error) {
	q := r.db.WithContext(ctx).Model(&model.Expense{}).Preload("Category")

	if filter.CategoryID != "" {
		q = q.Where("expense_category_id = ?", filter.CategoryID)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.DateFrom != "" {
		q = q.Where("expense_date >= ?", filter.DateFrom)
	}
	if filter.DateTo != "" {
		q = q.Where("expense_date <= ?", filter.DateTo)
	}

	var expenses []model.Expense
	err := q.Order("expense_date DESC").Find(&expenses).Error
	return expenses, err
}

func (r *expenseRepo) Update(ctx context.Context, e *model.Expense) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *expenseRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Expense{}, "id = ?", id).Error
}

func (r *expenseRepo) Summary(ctx context.Context, dateFrom, dateTo string) ([]ExpenseSummaryRow, error) {
	q := r.db.WithContext(ctx).Model(&model.Expense{}).
		Select("expenses.expense_category_id AS category_id, expense_categories.name AS category_name, expenses.status, COALESCE(SUM(expenses.amount), 0) AS total").
		Joins("JOIN expense_categories ON expense_categories.id = expenses.expense_category_id").
		Group("expenses.expense_category_id, expense_categories.name, expenses.status")

	if dateFrom != "" {
		q = q.Where("expenses.expense_date >= ?", dateFrom)
	}
	if dateTo != "" {
		q = q.Where("expenses.expense_date <= ?", dateTo)
	}

	var rows []ExpenseSummaryRow
	err := q.Scan(&rows).Error
	return rows, err
}

func (r *expenseRepo) MarkPaid(ctx context.Context, id uuid.UUID, paymentDate time.Time) error {
	res := r.db.WithContext(ctx).Model(&model.Expense{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":       model.ExpenseStatusPaid,
			"payment_date": paymentDate,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *expenseRepo) FindByUsageIDTx(tx *gorm.DB, usageID uuid.UUID) (*model.Expense, error) {
	var e model.Expense
	err := tx.First(&e, "usage_id = ?", usageID).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *expenseRepo) CreateTx(tx *gorm.DB, e *model.Expense) error {
	return tx.Create(e).Error
}

func (r *expenseRepo) UpdateTx(tx *gorm.DB, e *model.Expense) error {
	return tx.Save(e).Error
}

func (r *expenseRepo) DeleteByUsageIDTx(tx *gorm.DB, usageID uuid.UUID) error {
	return tx.Delete(&model.Expense{}, "usage_id = ?", usageID).Error
}
