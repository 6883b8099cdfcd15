package repository

import (
	"context"

	"github.com/LuisFernandoFloresSanchez/divertilandia-management-system/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FuelPriceRepository is the data access contract for the append-only fuel
// price ledger.
type FuelPriceRepository interface {
	// SetPrice deactivates every active row of the same fuel type and
	// inserts the new active row inside one transaction, so concurrent
	// writers can never leave two active prices for a type.
	SetPrice(ctx context.Context, p *model.FuelPrice) error

	// CurrentPrice returns the active row with the newest effective date
	// for the type, or gorm.ErrRecordNotFound when none is active.
	CurrentPrice(ctx context.Context, fuelType string) (*model.FuelPrice, error)

	// CurrentPrices returns the active row of every fuel type.
	CurrentPrices(ctx context.Context) ([]model.FuelPrice, error)

	// Activate saves an existing row as the active price for its type,
	// deactivating every other active row of the type in the same
	// transaction.
	Activate(ctx context.Context, p *model.FuelPrice) error

	FindByID(ctx context.Context, id uuid.UUID) (*model.FuelPrice, error)
	List(ctx context.Context) ([]model.FuelPrice, error)
	Update(ctx context.Context, p *model.FuelPrice) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type fuelPriceRepo struct{ db *gorm.DB }

func NewFuelPriceRepository(db *gorm.DB) FuelPriceRepository { return &fuelPriceRepo{db: db} }

func (r *fuelPriceRepo) SetPrice(ctx context.Context, p *model.FuelPrice) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Single conditional UPDATE closes the deactivate/activate race.
		if err := tx.Model(&model.FuelPrice{}).
			Where("fuel_type = ? AND is_active = true", p.FuelType).
			Update("is_active", false).Error; err != nil {
			return err
		}
		p.IsActive = true
		return tx.Create(p).Error
	})
}

func (r *fuelPriceRepo) Activate(ctx context.Context, p *model.FuelPrice) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.FuelPrice{}).
			Where("fuel_type = ? AND is_active = true AND id <> ?", p.FuelType, p.ID).
			Update("is_active", false).Error; err != nil {
			return err
		}
		p.IsActive = true
		return tx.Save(p).Error
	})
}

func (r *fuelPriceRepo) CurrentPrice(ctx context.Context, fuelType string) (*model.FuelPrice, error) {
	var p model.FuelPrice
	err := r.db.WithContext(ctx).
		Where("fuel_type = ? AND is_active = true", fuelType).
		Order("effective_date DESC").
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *fuelPriceRepo) CurrentPrices(ctx context.Context) ([]model.FuelPrice, error) {
	var prices []model.FuelPrice
	err := r.db.WithContext(ctx).
		Where("is_active = true").
		Order("fuel_type ASC").
		Order("effective_date DESC").
		Find(&prices).Error
	return prices, err
}

func (r *fuelPriceRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.FuelPrice, error) {
	var p model.FuelPrice
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *fuelPriceRepo) List(ctx context.Context) ([]model.FuelPrice, error) {
	var prices []model.FuelPrice
	err := r.db.WithContext(ctx).
		Order("fuel_type ASC").
		Order("effective_date DESC").
		Find(&prices).Error
	return prices, err
}

func (r *fuelPriceRepo) Update(ctx context.Context, p *model.FuelPrice) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *fuelPriceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.FuelPrice{}, "id = ?", id).Error
}
