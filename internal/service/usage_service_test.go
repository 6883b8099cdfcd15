package service

import (
	"context"
	"testing"
	"time"

	"github.com/LuisFernandoFloresSanchez/divertilandia-management-system/internal/dto"
	"github.com/LuisFernandoFloresSanchez/divertilandia-management-system/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type usageTestEnv struct {
	svc          UsageService
	usageRepo    *stubUsageRepo
	expenseRepo  *stubExpenseRepo
	categoryRepo *stubExpenseCategoryRepo
	eventRepo    *stubEventRepo
	vehicleRepo  *stubVehicleRepo

	event   *model.Event
	vehicle *model.Vehicle
}

// newUsageTestEnv wires the full usage stack over stubs: one event, one
// regular vehicle (10 km/l), fuel at $25/l and the Gasolina category seeded.
func newUsageTestEnv(t *testing.T) *usageTestEnv {
	t.Helper()

	env := &usageTestEnv{
		usageRepo:    newStubUsageRepo(),
		expenseRepo:  newStubExpenseRepo(),
		categoryRepo: newStubExpenseCategoryRepo(),
		eventRepo:    newStubEventRepo(),
		vehicleRepo:  newStubVehicleRepo(),
	}

	require.NoError(t, env.categoryRepo.Create(context.Background(), &model.ExpenseCategory{
		Name:     model.FuelCategoryName,
		IsActive: true,
	}))

	env.event = &model.Event{
		ContactName:  "María López",
		ContactPhone: "5512345678",
		Address:      "Av. Siempre Viva 123",
		EventDate:    time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
		StartTime:    "14:00",
		EndTime:      "18:00",
		Status:       model.EventStatusConfirmed,
	}
	require.NoError(t, env.eventRepo.CreateTx(nil, env.event))

	env.vehicle = &model.Vehicle{
		Name:           "Camioneta",
		FuelType:       model.FuelTypeRegular,
		VehicleType:    model.VehicleTypeRegular,
		FuelEfficiency: dec("10"),
		IsActive:       true,
	}
	require.NoError(t, env.vehicleRepo.Create(context.Background(), env.vehicle))

	priceRepo := newStubFuelPriceRepo()
	seedPrice(t, priceRepo, model.FuelTypeRegular, "25")
	vehicles := NewVehicleService(env.vehicleRepo, NewFuelPriceService(priceRepo, nil))

	env.svc = NewUsageService(env.usageRepo, env.expenseRepo, env.categoryRepo,
		env.eventRepo, env.vehicleRepo, vehicles)
	return env
}

func (env *usageTestEnv) record(t *testing.T, km string) *dto.UsageResponse {
	t.Helper()
	resp, err := env.svc.Record(context.Background(), dto.RecordUsageRequest{
		EventID:    env.event.ID.String(),
		VehicleID:  env.vehicle.ID.String(),
		Kilometers: dec(km),
	})
	require.NoError(t, err)
	return resp
}

func (env *usageTestEnv) companion(t *testing.T, usageID string) *model.Expense {
	t.Helper()
	e, err := env.expenseRepo.FindByUsageIDTx(nil, uuid.MustParse(usageID))
	require.NoError(t, err)
	return e
}

func TestRecordUsageCreatesCompanionExpense(t *testing.T) {
	env := newUsageTestEnv(t)

	// 50 km / 10 km/l * $25 = $125
	resp := env.record(t, "50")
	assert.True(t, resp.FuelCost.Equal(dec("125")))
	assert.Equal(t, model.UsageStatusPending, resp.Status)

	expense := env.companion(t, resp.ID)
	assert.True(t, expense.Amount.Equal(dec("125")))
	assert.Equal(t, model.ExpenseStatusPending, expense.Status)
	assert.Equal(t, env.event.ID, *expense.EventID)
	assert.Equal(t, env.event.EventDate, expense.ExpenseDate)
	assert.Contains(t, expense.Concept, "Camioneta")
	assert.Contains(t, expense.Concept, "50 km")
	require.NotNil(t, expense.Description)
	assert.Contains(t, *expense.Description, "María López")
}

func TestUpdateUsageKilometersResyncsExpense(t *testing.T) {
	env := newUsageTestEnv(t)
	created := env.record(t, "50")

	km := dec("80")
	updated, err := env.svc.Update(context.Background(), uuid.MustParse(created.ID),
		dto.UpdateUsageRequest{Kilometers: &km})
	require.NoError(t, err)

	// 80 km / 10 km/l * $25 = $200
	assert.True(t, updated.FuelCost.Equal(dec("200")))
	expense := env.companion(t, created.ID)
	assert.True(t, expense.Amount.Equal(dec("200")))
	assert.Contains(t, expense.Concept, "80 km")
}

func TestMarkPaidSettlesBothRows(t *testing.T) {
	env := newUsageTestEnv(t)
	created := env.record(t, "50")

	paid, err := env.svc.MarkPaid(context.Background(), uuid.MustParse(created.ID))
	require.NoError(t, err)
	assert.Equal(t, model.UsageStatusPaid, paid.Status)

	expense := env.companion(t, created.ID)
	assert.Equal(t, model.ExpenseStatusPaid, expense.Status)
	require.NotNil(t, expense.PaymentDate)
}

func TestRevertToPendingClearsPaymentDate(t *testing.T) {
	env := newUsageTestEnv(t)
	created := env.record(t, "50")
	id := uuid.MustParse(created.ID)

	_, err := env.svc.MarkPaid(context.Background(), id)
	require.NoError(t, err)

	status := model.UsageStatusPending
	_, err = env.svc.Update(context.Background(), id, dto.UpdateUsageRequest{Status: &status})
	require.NoError(t, err)

	expense := env.companion(t, created.ID)
	assert.Equal(t, model.ExpenseStatusPending, expense.Status)
	assert.Nil(t, expense.PaymentDate)
}

func TestDeleteUsageRemovesCompanion(t *testing.T) {
	env := newUsageTestEnv(t)
	created := env.record(t, "50")
	id := uuid.MustParse(created.ID)

	require.NoError(t, env.svc.Delete(context.Background(), id))

	_, err := env.usageRepo.FindByID(context.Background(), id)
	assert.Error(t, err)
	_, err = env.expenseRepo.FindByUsageIDTx(nil, id)
	assert.Error(t, err)
}

// A companion that went missing must not block the usage update.
func TestUpdateUsageSurvivesMissingCompanion(t *testing.T) {
	env := newUsageTestEnv(t)
	created := env.record(t, "50")
	id := uuid.MustParse(created.ID)

	require.NoError(t, env.expenseRepo.DeleteByUsageIDTx(nil, id))

	status := model.UsageStatusPaid
	updated, err := env.svc.Update(context.Background(), id, dto.UpdateUsageRequest{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, model.UsageStatusPaid, updated.Status)
}

// A missing Gasolina category degrades to usage-without-expense instead of
// failing the capture.
func TestRecordUsageWithoutFuelCategory(t *testing.T) {
	env := newUsageTestEnv(t)

	cat, err := env.categoryRepo.FindByName(context.Background(), model.FuelCategoryName)
	require.NoError(t, err)
	require.NoError(t, env.categoryRepo.Delete(context.Background(), cat.ID))

	resp := env.record(t, "50")
	assert.True(t, resp.FuelCost.Equal(dec("125")))

	_, err = env.expenseRepo.FindByUsageIDTx(nil, uuid.MustParse(resp.ID))
	assert.Error(t, err)
}

func TestRecordUsageRejectsBadInput(t *testing.T) {
	env := newUsageTestEnv(t)

	_, err := env.svc.Record(context.Background(), dto.RecordUsageRequest{
		EventID:    env.event.ID.String(),
		VehicleID:  env.vehicle.ID.String(),
		Kilometers: dec("0"),
	})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = env.svc.Record(context.Background(), dto.RecordUsageRequest{
		EventID:    uuid.NewString(),
		VehicleID:  env.vehicle.ID.String(),
		Kilometers: dec("10"),
	})
	assert.ErrorIs(t, err, ErrNotFound)
}
