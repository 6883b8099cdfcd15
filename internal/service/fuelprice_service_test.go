package service

import (
	"context"
	"testing"

	"github.com/LuisFernandoFloresSanchez/divertilandia-management-system/internal/dto"
	"github.com/LuisFernandoFloresSanchez/divertilandia-management-system/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetPriceKeepsSingleActiveRow(t *testing.T) {
	repo := newStubFuelPriceRepo()
	svc := NewFuelPriceService(repo, nil)

	for _, price := range []string{"22.10", "23.50", "24.00"} {
		_, err := svc.SetPrice(context.Background(), dto.SetFuelPriceRequest{
			FuelType:      model.FuelTypeRegular,
			PricePerLiter: dec(price),
			EffectiveDate: "2026-08-01",
		})
		require.NoError(t, err)
	}

	assert.Equal(t, 1, repo.activeCount(model.FuelTypeRegular))

	current, err := svc.Current(context.Background(), model.FuelTypeRegular)
	require.NoError(t, err)
	assert.True(t, current.PricePerLiter.Equal(dec("24.00")))
}

func TestSetPriceLeavesOtherTypesAlone(t *testing.T) {
	repo := newStubFuelPriceRepo()
	svc := NewFuelPriceService(repo, nil)

	_, err := svc.SetPrice(context.Background(), dto.SetFuelPriceRequest{
		FuelType:      model.FuelTypeDiesel,
		PricePerLiter: dec("24.90"),
		EffectiveDate: "2026-08-01",
	})
	require.NoError(t, err)

	_, err = svc.SetPrice(context.Background(), dto.SetFuelPriceRequest{
		FuelType:      model.FuelTypeRegular,
		PricePerLiter: dec("23.50"),
		EffectiveDate: "2026-08-01",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, repo.activeCount(model.FuelTypeDiesel))
	assert.Equal(t, 1, repo.activeCount(model.FuelTypeRegular))
}

func TestSetPriceRejectsBadInput(t *testing.T) {
	svc := NewFuelPriceService(newStubFuelPriceRepo(), nil)

	_, err := svc.SetPrice(context.Background(), dto.SetFuelPriceRequest{
		FuelType:      "kerosene",
		PricePerLiter: dec("20"),
		EffectiveDate: "2026-08-01",
	})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.SetPrice(context.Background(), dto.SetFuelPriceRequest{
		FuelType:      model.FuelTypeRegular,
		PricePerLiter: dec("0"),
		EffectiveDate: "2026-08-01",
	})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.SetPrice(context.Background(), dto.SetFuelPriceRequest{
		FuelType:      model.FuelTypeRegular,
		PricePerLiter: dec("20"),
		EffectiveDate: "01/08/2026",
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCurrentWithoutPrice(t *testing.T) {
	svc := NewFuelPriceService(newStubFuelPriceRepo(), nil)

	_, err := svc.Current(context.Background(), model.FuelTypeElectricity)
	assert.ErrorIs(t, err, ErrNotFound)

	// The cost-calculation lookup reports absence without an error.
	price, ok, err := svc.CurrentPriceValue(context.Background(), model.FuelTypeElectricity)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.True(t, price.IsZero())
}

// Re-activating an edited row by hand must retire the current active one.
func TestUpdateActivationRestoresInvariant(t *testing.T) {
	repo := newStubFuelPriceRepo()
	svc := NewFuelPriceService(repo, nil)

	first, err := svc.SetPrice(context.Background(), dto.SetFuelPriceRequest{
		FuelType:      model.FuelTypeRegular,
		PricePerLiter: dec("22.00"),
		EffectiveDate: "2026-07-01",
	})
	require.NoError(t, err)

	_, err = svc.SetPrice(context.Background(), dto.SetFuelPriceRequest{
		FuelType:      model.FuelTypeRegular,
		PricePerLiter: dec("23.00"),
		EffectiveDate: "2026-08-01",
	})
	require.NoError(t, err)

	active := true
	_, err = svc.Update(context.Background(), uuid.MustParse(first.ID), dto.UpdateFuelPriceRequest{
		IsActive: &active,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, repo.activeCount(model.FuelTypeRegular))

	current, err := svc.Current(context.Background(), model.FuelTypeRegular)
	require.NoError(t, err)
	assert.Equal(t, first.ID, current.ID)
}
