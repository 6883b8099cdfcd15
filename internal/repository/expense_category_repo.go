package repository

import (
	"context"

	"github.com/LuisFernandoFloresSanchez/divertilandia-management-system/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ExpenseCategoryRepository interface {
	Create(ctx context.Context, c *model.ExpenseCategory) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.ExpenseCategory, error)
	FindByName(ctx context.Context, name string) (*model.ExpenseCategory, error)
	List(ctx context.Context) ([]model.ExpenseCategory, error)
	Update(ctx context.Context, c *model.ExpenseCategory) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountExpenses(ctx context.Context, id uuid.UUID) (int64, error)
}

type expenseCategoryRepo struct{ db *gorm.DB }

func NewExpenseCategoryRepository(db *gorm.DB) ExpenseCategoryRepository {
	return &expenseCategoryRepo{db: db}
}

func (r *expenseCategoryRepo) Create(ctx context.Context, c *model.ExpenseCategory) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *expenseCategoryRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.ExpenseCategory, error) {
	var c model.ExpenseCategory
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *expenseCategoryRepo) FindByName(ctx context.Context, name string) (*model.ExpenseCategory, error) {
	var c model.ExpenseCategory
	err := r.db.WithContext(ctx).First(&c, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *expenseCategoryRepo) List(ctx context.Context) ([]model.ExpenseCategory, error) {
	var cats []model.ExpenseCategory
	err := r.db.WithContext(ctx).Order("name ASC").Find(&cats).Error
	return cats, err
}

func (r *expenseCategoryRepo) Update(ctx context.Context, c *model.ExpenseCategory) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *expenseCategoryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.ExpenseCategory{}, "id = ?", id).Error
}

// CountExpenses supports the delete guard: categories with expenses on
// record cannot be removed.
func (r *expenseCategoryRepo) CountExpenses(ctx context.Context, id uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Expense{}).
		Where("expense_category_id = ?", id).Count(&n).Error
	return n, err
}
