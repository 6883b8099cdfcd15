package repository

import (
	"context"

	"github.com/LuisFernandoFloresSanchez/divertilandia-management-system/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ToyTypeRepository interface {
	Create(ctx context.Context, t *model.ToyType) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.ToyType, error)
	FindByName(ctx context.Context, name string) (*model.ToyType, error)
	List(ctx context.Context, active string) ([]model.ToyType, error)
	Update(ctx context.Context, t *model.ToyType) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountGames(ctx context.Context, id uuid.UUID) (int64, error)
}

type toyTypeRepo struct{ db *gorm.DB }

func NewToyTypeRepository(db *gorm.DB) ToyTypeRepository { return &toyTypeRepo{db: db} }

func (r *toyTypeRepo) Create(ctx context.Context, t *model.ToyType) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *toyTypeRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.ToyType, error) {
	var t model.ToyType
	err := r.db.WithContext(ctx).First(&t, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *toyTypeRepo) FindByName(ctx context.Context, name string) (*model.ToyType, error) {
	var t model.ToyType
	err := r.db.WithContext(ctx).First(&t, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *toyTypeRepo) List(ctx context.Context, active string) ([]model.ToyType, error) {
	q := r.db.WithContext(ctx).Model(&model.ToyType{})
	switch active {
	case "true":
		q = q.Where("is_active = true")
	case "false":
		q = q.Where("is_active = false")
	}
	var types []model.ToyType
	err := q.Order("name ASC").Find(&types).Error
	return types, err
}

func (r *toyTypeRepo) Update(ctx context.Context, t *model.ToyType) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *toyTypeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.ToyType{}, "id = ?", id).Error
}

func (r *toyTypeRepo) CountGames(ctx context.Context, id uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Game{}).
		Where("toy_type_id = ?", id).Count(&n).Error
	return n, err
}

type ToyClauseRepository interface {
	Create(ctx context.Context, c *model.ToyClause) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.ToyClause, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]model.ToyClause, error)
	List(ctx context.Context, active string) ([]model.ToyClause, error)
	Update(ctx context.Context, c *model.ToyClause) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type toyClauseRepo struct{ db *gorm.DB }

func NewToyClauseRepository(db *gorm.DB) ToyClauseRepository { return &toyClauseRepo{db: db} }

func (r *toyClauseRepo) Create(ctx context.Context, c *model.ToyClause) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *toyClauseRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.ToyClause, error) {
	var c model.ToyClause
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *toyClauseRepo) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]model.ToyClause, error) {
	var clauses []model.ToyClause
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&clauses).Error
	return clauses, err
}

func (r *toyClauseRepo) List(ctx context.Context, active string) ([]model.ToyClause, error) {
	q := r.db.WithContext(ctx).Model(&model.ToyClause{})
	switch active {
	case "true":
		q = q.Where("is_active = true")
	case "false":
		q = q.Where("is_active = false")
	}
	var clauses []model.ToyClause
	err := q.Order("name ASC").Find(&clauses).Error
	return clauses, err
}

func (r *toyClauseRepo) Update(ctx context.Context, c *model.ToyClause) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *toyClauseRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		c := model.ToyClause{ID: id}
		if err := tx.Model(&c).Association("Games").Clear(); err != nil {
			return err
		}
		return tx.Delete(&model.ToyClause{}, "id = ?", id).Error
	})
}
