package service

// In-memory repository stubs shared by the service tests. They emulate the
// GORM contracts (gorm.ErrRecordNotFound, generated UUIDs) without a
// database; DB() returns nil so runTx executes the callback directly.

import (
	"context"
	"time"

	"github.com/LuisFernandoFloresSanchez/divertilandia-management-system/internal/dto"
	"github.com/LuisFernandoFloresSanchez/divertilandia-management-system/internal/model"
	"github.com/LuisFernandoFloresSanchez/divertilandia-management-system/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ── EventRepository ──────────────────────────────────────────────────────────

type stubEventRepo struct {
	events map[uuid.UUID]*model.Event
}

func newStubEventRepo() *stubEventRepo {
	return &stubEventRepo{events: make(map[uuid.UUID]*model.Event)}
}

func (r *stubEventRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Event, error) {
	e, ok := r.events[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cloned := *e
	return &cloned, nil
}

func (r *stubEventRepo) List(_ context.Context, _ dto.EventFilter) ([]model.Event, error) {
	out := make([]model.Event, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, *e)
	}
	return out, nil
}

func (r *stubEventRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.events, id)
	return nil
}

func (r *stubEventRepo) CreateTx(_ *gorm.DB, e *model.Event) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	e.CreatedAt = time.Now()
	e.UpdatedAt = e.CreatedAt
	cloned := *e
	r.events[e.ID] = &cloned
	return nil
}

func (r *stubEventRepo) UpdateTx(_ *gorm.DB, e *model.Event) error {
	e.UpdatedAt = time.Now()
	cloned := *e
	r.events[e.ID] = &cloned
	return nil
}

func (r *stubEventRepo) DB() *gorm.DB { return nil }

var _ repository.EventRepository = (*stubEventRepo)(nil)

// ── PackageRepository ────────────────────────────────────────────────────────

type stubPackageRepo struct {
	packages map[uuid.UUID]*model.Package
}

func newStubPackageRepo() *stubPackageRepo {
	return &stubPackageRepo{packages: make(map[uuid.UUID]*model.Package)}
}

func (r *stubPackageRepo) Create(_ context.Context, p *model.Package) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	cloned := *p
	r.packages[p.ID] = &cloned
	return nil
}

func (r *stubPackageRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Package, error) {
	p, ok := r.packages[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cloned := *p
	return &cloned, nil
}

func (r *stubPackageRepo) List(_ context.Context, _ string) ([]model.Package, error) {
	out := make([]model.Package, 0, len(r.packages))
	for _, p := range r.packages {
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubPackageRepo) Update(_ context.Context, p *model.Package, games []model.PackageGame) error {
	cloned := *p
	if games != nil {
		cloned.Games = games
	}
	r.packages[p.ID] = &cloned
	return nil
}

func (r *stubPackageRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.packages, id)
	return nil
}

func (r *stubPackageRepo) CountEvents(_ context.Context, _ uuid.UUID) (int64, error) {
	return 0, nil
}

var _ repository.PackageRepository = (*stubPackageRepo)(nil)

// ── VehicleRepository ────────────────────────────────────────────────────────

type stubVehicleRepo struct {
	vehicles map[uuid.UUID]*model.Vehicle
}

func newStubVehicleRepo() *stubVehicleRepo {
	return &stubVehicleRepo{vehicles: make(map[uuid.UUID]*model.Vehicle)}
}

func (r *stubVehicleRepo) Create(_ context.Context, v *model.Vehicle) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	cloned := *v
	r.vehicles[v.ID] = &cloned
	return nil
}

func (r *stubVehicleRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Vehicle, error) {
	v, ok := r.vehicles[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cloned := *v
	return &cloned, nil
}

func (r *stubVehicleRepo) List(_ context.Context, _ string) ([]model.Vehicle, error) {
	out := make([]model.Vehicle, 0, len(r.vehicles))
	for _, v := range r.vehicles {
		out = append(out, *v)
	}
	return out, nil
}

func (r *stubVehicleRepo) Update(_ context.Context, v *model.Vehicle) error {
	cloned := *v
	r.vehicles[v.ID] = &cloned
	return nil
}

func (r *stubVehicleRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.vehicles, id)
	return nil
}

var _ repository.VehicleRepository = (*stubVehicleRepo)(nil)

// ── FuelPriceRepository ──────────────────────────────────────────────────────

type stubFuelPriceRepo struct {
	prices map[uuid.UUID]*model.FuelPrice
}

func newStubFuelPriceRepo() *stubFuelPriceRepo {
	return &stubFuelPriceRepo{prices: make(map[uuid.UUID]*model.FuelPrice)}
}

func (r *stubFuelPriceRepo) SetPrice(_ context.Context, p *model.FuelPrice) error {
	for _, existing := range r.prices {
		if existing.FuelType == p.FuelType {
			existing.IsActive = false
		}
	}
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	p.IsActive = true
	p.CreatedAt = time.Now()
	cloned := *p
	r.prices[p.ID] = &cloned
	return nil
}

func (r *stubFuelPriceRepo) Activate(_ context.Context, p *model.FuelPrice) error {
	for id, existing := range r.prices {
		if existing.FuelType == p.FuelType && id != p.ID {
			existing.IsActive = false
		}
	}
	p.IsActive = true
	cloned := *p
	r.prices[p.ID] = &cloned
	return nil
}

func (r *stubFuelPriceRepo) CurrentPrice(_ context.Context, fuelType string) (*model.FuelPrice, error) {
	var current *model.FuelPrice
	for _, p := range r.prices {
		if p.FuelType != fuelType || !p.IsActive {
			continue
		}
		if current == nil || p.EffectiveDate.After(current.EffectiveDate) {
			current = p
		}
	}
	if current == nil {
		return nil, gorm.ErrRecordNotFound
	}
	cloned := *current
	return &cloned, nil
}

func (r *stubFuelPriceRepo) CurrentPrices(_ context.Context) ([]model.FuelPrice, error) {
	var out []model.FuelPrice
	for _, p := range r.prices {
		if p.IsActive {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubFuelPriceRepo) FindByID(_ context.Context, id uuid.UUID) (*model.FuelPrice, error) {
	p, ok := r.prices[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cloned := *p
	return &cloned, nil
}

func (r *stubFuelPriceRepo) List(_ context.Context) ([]model.FuelPrice, error) {
	out := make([]model.FuelPrice, 0, len(r.prices))
	for _, p := range r.prices {
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubFuelPriceRepo) Update(_ context.Context, p *model.FuelPrice) error {
	cloned := *p
	r.prices[p.ID] = &cloned
	return nil
}

func (r *stubFuelPriceRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.prices, id)
	return nil
}

// activeCount reports how many active rows exist for a fuel type.
func (r *stubFuelPriceRepo) activeCount(fuelType string) int {
	n := 0
	for _, p := range r.prices {
		if p.FuelType == fuelType && p.IsActive {
			n++
		}
	}
	return n
}

var _ repository.FuelPriceRepository = (*stubFuelPriceRepo)(nil)

// ── UsageRepository ──────────────────────────────────────────────────────────

type stubUsageRepo struct {
	usages map[uuid.UUID]*model.EventVehicleUsage
}

func newStubUsageRepo() *stubUsageRepo {
	return &stubUsageRepo{usages: make(map[uuid.UUID]*model.EventVehicleUsage)}
}

func (r *stubUsageRepo) FindByID(_ context.Context, id uuid.UUID) (*model.EventVehicleUsage, error) {
	u, ok := r.usages[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cloned := *u
	return &cloned, nil
}

func (r *stubUsageRepo) List(_ context.Context, filter dto.UsageFilter) ([]model.EventVehicleUsage, error) {
	var out []model.EventVehicleUsage
	for _, u := range r.usages {
		if filter.EventID != "" && u.EventID.String() != filter.EventID {
			continue
		}
		if filter.Status != "" && u.Status != filter.Status {
			continue
		}
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUsageRepo) CreateTx(_ *gorm.DB, u *model.EventVehicleUsage) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	u.CreatedAt = time.Now()
	cloned := *u
	r.usages[u.ID] = &cloned
	return nil
}

func (r *stubUsageRepo) UpdateTx(_ *gorm.DB, u *model.EventVehicleUsage) error {
	cloned := *u
	r.usages[u.ID] = &cloned
	return nil
}

func (r *stubUsageRepo) DeleteTx(_ *gorm.DB, id uuid.UUID) error {
	delete(r.usages, id)
	return nil
}

func (r *stubUsageRepo) DB() *gorm.DB { return nil }

var _ repository.UsageRepository = (*stubUsageRepo)(nil)

// ── ExpenseRepository ────────────────────────────────────────────────────────

type stubExpenseRepo struct {
	expenses map[uuid.UUID]*model.Expense
}

func newStubExpenseRepo() *stubExpenseRepo {
	return &stubExpenseRepo{expenses: make(map[uuid.UUID]*model.Expense)}
}

func (r *stubExpenseRepo) Create(_ context.Context, e *model.Expense) error {
	return r.CreateTx(nil, e)
}

func (r *stubExpenseRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Expense, error) {
	e, ok := r.expenses[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cloned := *e
	return &cloned, nil
}

func (r *stubExpenseRepo) List(_ context.Context, _ dto.ExpenseFilter) ([]model.Expense, error) {
	out := make([]model.Expense, 0, len(r.expenses))
	for _, e := range r.expenses {
		out = append(out, *e)
	}
	return out, nil
}

func (r *stubExpenseRepo) Update(_ context.Context, e *model.Expense) error {
	return r.UpdateTx(nil, e)
}

func (r *stubExpenseRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.expenses, id)
	return nil
}

func (r *stubExpenseRepo) Summary(_ context.Context, _, _ string) ([]repository.ExpenseSummaryRow, error) {
	return nil, nil
}

func (r *stubExpenseRepo) MarkPaid(_ context.Context, id uuid.UUID, paymentDate time.Time) error {
	e, ok := r.expenses[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	e.Status = model.ExpenseStatusPaid
	e.PaymentDate = &paymentDate
	return nil
}

func (r *stubExpenseRepo) FindByUsageIDTx(_ *gorm.DB, usageID uuid.UUID) (*model.Expense, error) {
	for _, e := range r.expenses {
		if e.UsageID != nil && *e.UsageID == usageID {
			cloned := *e
			return &cloned, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubExpenseRepo) CreateTx(_ *gorm.DB, e *model.Expense) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	cloned := *e
	r.expenses[e.ID] = &cloned
	return nil
}

func (r *stubExpenseRepo) UpdateTx(_ *gorm.DB, e *model.Expense) error {
	cloned := *e
	r.expenses[e.ID] = &cloned
	return nil
}

func (r *stubExpenseRepo) DeleteByUsageIDTx(_ *gorm.DB, usageID uuid.UUID) error {
	for id, e := range r.expenses {
		if e.UsageID != nil && *e.UsageID == usageID {
			delete(r.expenses, id)
		}
	}
	return nil
}

var _ repository.ExpenseRepository = (*stubExpenseRepo)(nil)

// ── ExpenseCategoryRepository ────────────────────────────────────────────────

type stubExpenseCategoryRepo struct {
	categories map[uuid.UUID]*model.ExpenseCategory
}

func newStubExpenseCategoryRepo() *stubExpenseCategoryRepo {
	return &stubExpenseCategoryRepo{categories: make(map[uuid.UUID]*model.ExpenseCategory)}
}

func (r *stubExpenseCategoryRepo) Create(_ context.Context, c *model.ExpenseCategory) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	cloned := *c
	r.categories[c.ID] = &cloned
	return nil
}

func (r *stubExpenseCategoryRepo) FindByID(_ context.Context, id uuid.UUID) (*model.ExpenseCategory, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cloned := *c
	return &cloned, nil
}

func (r *stubExpenseCategoryRepo) FindByName(_ context.Context, name string) (*model.ExpenseCategory, error) {
	for _, c := range r.categories {
		if c.Name == name {
			cloned := *c
			return &cloned, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubExpenseCategoryRepo) List(_ context.Context) ([]model.ExpenseCategory, error) {
	out := make([]model.ExpenseCategory, 0, len(r.categories))
	for _, c := range r.categories {
		out = append(out, *c)
	}
	return out, nil
}

func (r *stubExpenseCategoryRepo) Update(_ context.Context, c *model.ExpenseCategory) error {
	cloned := *c
	r.categories[c.ID] = &cloned
	return nil
}

func (r *stubExpenseCategoryRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.categories, id)
	return nil
}

func (r *stubExpenseCategoryRepo) CountExpenses(_ context.Context, _ uuid.UUID) (int64, error) {
	return 0, nil
}

var _ repository.ExpenseCategoryRepository = (*stubExpenseCategoryRepo)(nil)

// ── Shared fixtures ──────────────────────────────────────────────────────────

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}
