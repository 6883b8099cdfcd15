package repository

import (
	"context"

	"github.com/LuisFernandoFloresSanchez/divertilandia-management-system/internal/dto"
	"github.com/LuisFernandoFloresSanchez/divertilandia-management-system/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GameRepository interface {
	Create(ctx context.Context, g *model.Game) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Game, error)
	List(ctx context.Context, filter dto.GameFilter) ([]model.Game, error)
	Update(ctx context.Context, g *model.Game) error
	Delete(ctx context.Context, id uuid.UUID) error
	// ReplaceClauses swaps the game's clause set in one transaction.
	ReplaceClauses(ctx context.Context, g *model.Game, clauses []model.ToyClause) error
	CountPackages(ctx context.Context, id uuid.UUID) (int64, error)
}

type gameRepo struct{ db *gorm.DB }

func NewGameRepository(db *gorm.DB) GameRepository { return &gameRepo{db: db} }

func (r *gameRepo) Create(ctx context.Context, g *model.Game) error {
	return r.db.WithContext(ctx).Create(g).Error
}

func (r *gameRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Game, error) {
	var g model.Game
	err := r.db.WithContext(ctx).
		Preload("ToyType").
		Preload("ToyClauses").
		First(&g, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *gameRepo) List(ctx context.Context, filter dto.GameFilter) ([]model.Game, error) {
	q := r.db.WithContext(ctx).Model(&model.Game{}).Preload("ToyType")
	switch filter.Active {
	case "true":
		q = q.Where("is_active = true")
	case "false":
		q = q.Where("is_active = false")
	}
	if filter.ToyTypeID != "" {
		q = q.Where("toy_type_id = ?", filter.ToyTypeID)
	}
	if filter.Available == "true" {
		q = q.Where("available_count > 0")
	}
	var games []model.Game
	err := q.Order("name ASC").Find(&games).Error
	return games, err
}

func (r *gameRepo) Update(ctx context.Context, g *model.Game) error {
	return r.db.WithContext(ctx).Omit("ToyClauses", "ToyType").Save(g).Error
}

func (r *gameRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		g := model.Game{ID: id}
		if err := tx.Model(&g).Association("ToyClauses").Clear(); err != nil {
			return err
		}
		return tx.Delete(&model.Game{}, "id = ?", id).Error
	})
}

func (r *gameRepo) ReplaceClauses(ctx context.Context, g *model.Game, clauses []model.ToyClause) error {
	return r.db.WithContext(ctx).Model(g).Association("ToyClauses").Replace(clauses)
}

// CountPackages supports the delete guard: games bundled in packages
// cannot be removed.
func (r *gameRepo) CountPackages(ctx context.Context, id uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.PackageGame{}).
		Where("game_id = ?", id).Count(&n).Error
	return n, err
}
