package repository

import (
	"context"

	"github.com/LuisFernandoFloresSanchez/divertilandia-management-system/internal/dto"
	"github.com/LuisFernandoFloresSanchez/divertilandia-management-system/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UsageRepository persists vehicle usage records. Create/Update/Delete run
// inside the caller's transaction because every usage mutation is paired
// with a companion expense write.
type UsageRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.EventVehicleUsage, error)
	List(ctx context.Context, filter dto.UsageFilter) ([]model.EventVehicleUsage, error)

	CreateTx(tx *gorm.DB, u *model.EventVehicleUsage) error
	UpdateTx(tx *gorm.DB, u *model.EventVehicleUsage) error
	DeleteTx(tx *gorm.DB, id uuid.UUID) error

	DB() *gorm.DB
}

type usageRepo struct{ db *gorm.DB }

func NewUsageRepository(db *gorm.DB) UsageRepository { return &usageRepo{db: db} }

func (r *usageRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.EventVehicleUsage, error) {
	var u model.EventVehicleUsage
	err := r.db.WithContext(ctx).
		Preload("Vehicle").
		First(&u, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *usageRepo) List(ctx context.Context, filter dto.UsageFilter) ([]model.EventVehicleUsage, error) {
	q := r.db.WithContext(ctx).Model(&model.EventVehicleUsage{}).Preload("Vehicle")

	if filter.EventID != "" {
		q = q.Where("event_id = ?", filter.EventID)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	var usages []model.EventVehicleUsage
	err := q.Order("created_at DESC").Find(&usages).Error
	return usages, err
}

func (r *usageRepo) CreateTx(tx *gorm.DB, u *model.EventVehicleUsage) error {
	return tx.Create(u).Error
}

func (r *usageRepo) UpdateTx(tx *gorm.DB, u *model.EventVehicleUsage) error {
	return tx.Save(u).Error
}

func (r *usageRepo) DeleteTx(tx *gorm.DB, id uuid.UUID) error {
	return tx.Delete(&model.EventVehicleUsage{}, "id = ?", id).Error
}

func (r *usageRepo) DB() *gorm.DB { return r.db }
