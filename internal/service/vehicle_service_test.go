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

func seedPrice(t *testing.T, repo *stubFuelPriceRepo, fuelType, price string) {
	t.Helper()
	err := repo.SetPrice(context.Background(), &model.FuelPrice{
		FuelType:      fuelType,
		PricePerLiter: dec(price),
		EffectiveDate: time.Now(),
	})
	require.NoError(t, err)
}

func newTestVehicleService(priceRepo *stubFuelPriceRepo, vehicleRepo *stubVehicleRepo) VehicleService {
	prices := NewFuelPriceService(priceRepo, nil)
	return NewVehicleService(vehicleRepo, prices)
}

func TestCostForRegularVehicle(t *testing.T) {
	priceRepo := newStubFuelPriceRepo()
	seedPrice(t, priceRepo, model.FuelTypeRegular, "25")
	svc := newTestVehicleService(priceRepo, newStubVehicleRepo())

	v := &model.Vehicle{
		Name:           "Camioneta",
		FuelType:       model.FuelTypeRegular,
		VehicleType:    model.VehicleTypeRegular,
		FuelEfficiency: dec("10"),
	}

	// 50 km / 10 km/l = 5 l * $25 = $125
	detail, err := svc.CostFor(context.Background(), v, dec("50"))
	require.NoError(t, err)
	assert.True(t, detail.Cost.Equal(dec("125")), "obtenido %s", detail.Cost)
	assert.True(t, detail.LitersNeeded.Equal(dec("5")))
	assert.True(t, detail.PriceKnown)
}

func TestCostForWithoutRegisteredPriceIsZero(t *testing.T) {
	svc := newTestVehicleService(newStubFuelPriceRepo(), newStubVehicleRepo())

	v := &model.Vehicle{
		Name:           "Camioneta",
		FuelType:       model.FuelTypeDiesel,
		VehicleType:    model.VehicleTypeRegular,
		FuelEfficiency: dec("12"),
	}

	detail, err := svc.CostFor(context.Background(), v, dec("80"))
	require.NoError(t, err)
	assert.True(t, detail.Cost.IsZero())
	assert.False(t, detail.PriceKnown)
}

func hybridFixture() *model.Vehicle {
	return &model.Vehicle{
		Name:                       "Híbrida",
		FuelType:                   model.FuelTypeRegular,
		VehicleType:                model.VehicleTypeHybrid,
		FuelEfficiency:             dec("15"),
		BatteryCapacityKwh:         decPtr("10"),
		ElectricRangeKm:            decPtr("40"),
		BatteryMinPercentage:       dec("25"),
		HybridEfficiencyKmPerLiter: decPtr("10"),
	}
}

// Usable electric range = 40 km * (1 - 25%) = 30 km. A 20 km trip stays
// fully electric: 20/40 * 10 kWh = 5 kWh * $2 = $10.
func TestCostForHybridElectricOnly(t *testing.T) {
	priceRepo := newStubFuelPriceRepo()
	seedPrice(t, priceRepo, model.FuelTypeElectricity, "2")
	seedPrice(t, priceRepo, model.FuelTypeRegular, "10")
	svc := newTestVehicleService(priceRepo, newStubVehicleRepo())

	detail, err := svc.CostFor(context.Background(), hybridFixture(), dec("20"))
	require.NoError(t, err)
	assert.True(t, detail.Cost.Equal(dec("10")), "obtenido %s", detail.Cost)
}

// A 50 km trip: 30 km electric (30/40 * 10 kWh = 7.5 kWh * $2 = $15) plus
// 20 km combustion (20/10 km/l = 2 l * $10 = $20) = $35.
func TestCostForHybridSplitsLegs(t *testing.T) {
	priceRepo := newStubFuelPriceRepo()
	seedPrice(t, priceRepo, model.FuelTypeElectricity, "2")
	seedPrice(t, priceRepo, model.FuelTypeRegular, "10")
	svc := newTestVehicleService(priceRepo, newStubVehicleRepo())

	detail, err := svc.CostFor(context.Background(), hybridFixture(), dec("50"))
	require.NoError(t, err)
	assert.True(t, detail.Cost.Equal(dec("35")), "obtenido %s", detail.Cost)
	assert.True(t, detail.LitersNeeded.Equal(dec("2")))
}

func TestCostForHybridWithIncompleteProfileFails(t *testing.T) {
	svc := newTestVehicleService(newStubFuelPriceRepo(), newStubVehicleRepo())

	v := hybridFixture()
	v.ElectricRangeKm = nil

	_, err := svc.CostFor(context.Background(), v, dec("50"))
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateHybridRequiresBatteryProfile(t *testing.T) {
	svc := newTestVehicleService(newStubFuelPriceRepo(), newStubVehicleRepo())

	_, err := svc.Create(context.Background(), dto.CreateVehicleRequest{
		Name:           "Híbrida incompleta",
		FuelType:       model.FuelTypeRegular,
		VehicleType:    model.VehicleTypeHybrid,
		FuelEfficiency: dec("15"),
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCalculateFuelCostEndpoint(t *testing.T) {
	priceRepo := newStubFuelPriceRepo()
	seedPrice(t, priceRepo, model.FuelTypeRegular, "25")
	vehicleRepo := newStubVehicleRepo()
	svc := newTestVehicleService(priceRepo, vehicleRepo)

	created, err := svc.Create(context.Background(), dto.CreateVehicleRequest{
		Name:           "Camioneta",
		FuelType:       model.FuelTypeRegular,
		FuelEfficiency: dec("10"),
	})
	require.NoError(t, err)

	resp, err := svc.CalculateFuelCost(context.Background(), dto.FuelCostRequest{
		VehicleID:  created.ID,
		Kilometers: dec("100"),
	})
	require.NoError(t, err)
	assert.True(t, resp.FuelCost.Equal(dec("250")))
	assert.True(t, resp.CostPerKilometer.Equal(dec("2.5")))
	assert.True(t, resp.LitersNeeded.Equal(dec("10")))
	assert.True(t, resp.CurrentFuelPrice.Equal(dec("25")))
}

func TestCalculateFuelCostUnknownVehicle(t *testing.T) {
	svc := newTestVehicleService(newStubFuelPriceRepo(), newStubVehicleRepo())

	_, err := svc.CalculateFuelCost(context.Background(), dto.FuelCostRequest{
		VehicleID:  uuid.NewString(),
		Kilometers: dec("10"),
	})
	assert.ErrorIs(t, err, ErrNotFound)
}
