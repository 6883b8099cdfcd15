package repository

import (
	"context"

	"github.com/LuisFernandoFloresSanchez/divertilandia-management-system/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PackageRepository interface {
	// Create persists the package and its game pivot rows in one transaction.
	Create(ctx context.Context, p *model.Package) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Package, error)
	List(ctx context.Context, active string) ([]model.Package, error)
	// Update replaces the pivot rows with the given set when games is non-nil.
	Update(ctx context.Context, p *model.Package, games []model.PackageGame) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountEvents(ctx context.Context, id uuid.UUID) (int64, error)
}

type packageRepo struct{ db *gorm.DB }

func NewPackageRepository(db *gorm.DB) PackageRepository { return &packageRepo{db: db} }

func (r *packageRepo) Create(ctx context.Context, p *model.Package) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *packageRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Package, error) {
	var p model.Package
	err := r.db.WithContext(ctx).
		Preload("Games.Game").
		First(&p, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *packageRepo) List(ctx context.Context, active string) ([]model.Package, error) {
	q := r.db.WithContext(ctx).Model(&model.Package{}).Preload("Games.Game")
	switch active {
	case "true":
		q = q.Where("is_active = true")
	case "false":
		q = q.Where("is_active = false")
	}
	var packages []model.Package
	err := q.Order("name ASC").Find(&packages).Error
	return packages, err
}

func (r *packageRepo) Update(ctx context.Context, p *model.Package, games []model.PackageGame) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Games").Save(p).Error; err != nil {
			return err
		}
		if games == nil {
			return nil
		}
		if err := tx.Delete(&model.PackageGame{}, "package_id = ?", p.ID).Error; err != nil {
			return err
		}
		if len(games) == 0 {
			return nil
		}
		return tx.Create(&games).Error
	})
}

func (r *packageRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.PackageGame{}, "package_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Package{}, "id = ?", id).Error
	})
}

// CountEvents supports the delete guard: packages referenced by events
// cannot be removed.
func (r *packageRepo) CountEvents(ctx context.Context, id uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Event{}).
		Where("package_id = ?", id).Count(&n).Error
	return n, err
}
