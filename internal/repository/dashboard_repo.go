package repository

import (
	"context"
	"time"

	"github.com/LuisFernandoFloresSanchez/divertilandia-management-system/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// EventStatusCounts holds the per-status event tallies for the dashboard.
type EventStatusCounts struct {
	Total     int64
	Pending   int64
	Confirmed int64
	Completed int64
}

// GameUnitCounts aggregates game inventory across all rows.
type GameUnitCounts struct {
	TotalGames       int64
	AvailableCount   int64
	MaintenanceCount int64
}

// PopularPackageRow is one row of the bookings-per-package ranking.
type PopularPackageRow struct {
	Name     string
	Bookings int64
}

// DashboardRepository runs the aggregate queries behind /dashboard/stats.
// Revenue figures are computed in the service from event rows because the
// final price folds in the package discount, which lives on the model.
type DashboardRepository interface {
	EventCounts(ctx context.Context) (EventStatusCounts, error)
	// RevenueEvents returns confirmed and completed events with their
	// package preloaded, optionally restricted to a date window.
	RevenueEvents(ctx context.Context, from, to *time.Time) ([]model.Event, error)
	ExpenseTotal(ctx context.Context, from, to time.Time) (decimal.Decimal, error)
	GameCounts(ctx context.Context) (GameUnitCounts, error)
	PackageCount(ctx context.Context) (int64, error)
	UniqueClients(ctx context.Context) (int64, error)
	PopularPackages(ctx context.Context, limit int) ([]PopularPackageRow, error)
	UpcomingEvents(ctx context.Context, from time.Time, limit int) ([]model.Event, error)
}

type dashboardRepo struct{ db *gorm.DB }

func NewDashboardRepository(db *gorm.DB) DashboardRepository { return &dashboardRepo{db: db} }

func (r *dashboardRepo) EventCounts(ctx context.Context) (EventStatusCounts, error) {
	var rows []struct {
		Status string
		N      int64
	}
	err := r.db.WithContext(ctx).Model(&model.Event{}).
		Select("status, COUNT(*) AS n").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return EventStatusCounts{}, err
	}

	var c EventStatusCounts
	for _, row := range rows {
		c.Total += row.N
		switch row.Status {
		case model.EventStatusPending:
			c.Pending = row.N
		case model.EventStatusConfirmed:
			c.Confirmed = row.N
		case model.EventStatusCompleted:
			c.Completed = row.N
		}
	}
	return c, nil
}

func (r *dashboardRepo) RevenueEvents(ctx context.Context, from, to *time.Time) ([]model.Event, error) {
	q := r.db.WithContext(ctx).Model(&model.Event{}).
		Preload("Package").
		Where("status IN ?", []string{model.EventStatusConfirmed, model.EventStatusCompleted})

	if from != nil {
		q = q.Where("event_date >= ?", from.Format("2006-01-02"))
	}
	if to != nil {
		q = q.Where("event_date <= ?", to.Format("2006-01-02"))
	}

	var events []model.Event
	err := q.Find(&events).Error
	return events, err
}

func (r *dashboardRepo) ExpenseTotal(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	var row struct{ Total decimal.Decimal }
	err := r.db.WithContext(ctx).Model(&model.Expense{}).
		Select("COALESCE(SUM(amount), 0) AS total").
		Where("expense_date BETWEEN ? AND ?", from.Format("2006-01-02"), to.Format("2006-01-02")).
		Scan(&row).Error
	return row.Total, err
}

func (r *dashboardRepo) GameCounts(ctx context.Context) (GameUnitCounts, error) {
	var row struct {
		TotalGames       int64
		AvailableCount   int64
		MaintenanceCount int64
	}
	err := r.db.WithContext(ctx).Model(&model.Game{}).
		Select("COUNT(*) AS total_games, COALESCE(SUM(available_count), 0) AS available_count, COALESCE(SUM(maintenance_count), 0) AS maintenance_count").
		Where("is_active = true").
		Scan(&row).Error
	return GameUnitCounts(row), err
}

func (r *dashboardRepo) PackageCount(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Package{}).
		Where("is_active = true").Count(&n).Error
	return n, err
}

func (r *dashboardRepo) UniqueClients(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Event{}).
		Distinct("contact_phone").Count(&n).Error
	return n, err
}

func (r *dashboardRepo) PopularPackages(ctx context.Context, limit int) ([]PopularPackageRow, error) {
	var rows []PopularPackageRow
	err := r.db.WithContext(ctx).Model(&model.Event{}).
		Select("packages.name AS name, COUNT(*) AS bookings").
		Joins("JOIN packages ON packages.id = events.package_id").
		Where("events.package_id IS NOT NULL").
		Group("packages.name").
		Order("bookings DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

func (r *dashboardRepo) UpcomingEvents(ctx context.Context, from time.Time, limit int) ([]model.Event, error) {
	var events []model.Event
	err := r.db.WithContext(ctx).Model(&model.Event{}).
		Preload("Package").
		Where("event_date >= ?", from.Format("2006-01-02")).
		Where("status NOT IN ?", []string{model.EventStatusCancelled, model.EventStatusCompleted}).
		Order("event_date ASC").Order("start_time ASC").
		Limit(limit).
		Find(&events).Error
	return events, err
}
