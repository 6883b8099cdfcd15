package repository

import (
	"context"

	"github.com/LuisFernandoFloresSanchez/divertilandia-management-system/internal/dto"
	"github.com/LuisFernandoFloresSanchez/divertilandia-management-system/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EventRepository defines the data access contract for events.
// Services depend on this interface, not on the concrete GORM
// implementation, enabling clean unit testing via stubs.
type EventRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.Event, error)
	List(ctx context.Context, filter dto.EventFilter) ([]model.Event, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// Used inside transactions — callers must pass the tx instance.
	CreateTx(tx *gorm.DB, e *model.Event) error
	UpdateTx(tx *gorm.DB, e *model.Event) error

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type eventRepo struct{ db *gorm.DB }

func NewEventRepository(db *gorm.DB) EventRepository { return &eventRepo{db: db} }

func (r *eventRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Event, error) {
	var e model.Event
	err := r.db.WithContext(ctx).Preload("Package").First(&e, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *eventRepo) List(ctx context.Context, filter dto.EventFilter) ([]model.Event, error) {
	q := r.db.WithContext(ctx).Model(&model.Event{}).Preload("Package")

	if filter.Date != "" {
		q = q.Where("event_date = ?", filter.Date)
	}
	if filter.StartDate != "" && filter.EndDate != "" {
		q = q.Where("event_date BETWEEN ? AND ?", filter.StartDate, filter.EndDate)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	var events []model.Event
	err := q.Order("event_date ASC").Order("start_time ASC").Find(&events).Error
	return events, err
}

func (r *eventRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Event{}, "id = ?", id).Error
}

func (r *eventRepo) CreateTx(tx *gorm.DB, e *model.Event) error {
	return tx.Create(e).Error
}

func (r *eventRepo) UpdateTx(tx *gorm.DB, e *model.Event) error {
	return tx.Save(e).Error
}

func (r *eventRepo) DB() *gorm.DB { return r.db }
