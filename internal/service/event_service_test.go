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

func seedPackage(t *testing.T, repo *stubPackageRepo, name, price string) *model.Package {
	t.Helper()
	p := &model.Package{Name: name, Price: dec(price), IsActive: true}
	require.NoError(t, repo.Create(context.Background(), p))
	return p
}

func createEventFixture(t *testing.T, svc EventService, pkgID string) *dto.EventResponse {
	t.Helper()
	resp, err := svc.Create(context.Background(), dto.CreateEventRequest{
		ContactName:  "María López",
		ContactPhone: "5512345678",
		Address:      "Av. Siempre Viva 123",
		EventDate:    "2026-09-12",
		StartTime:    "14:00",
		PackageID:    pkgID,
	})
	require.NoError(t, err)
	return resp
}

func TestCreateEventDerivesColumns(t *testing.T) {
	eventRepo := newStubEventRepo()
	packageRepo := newStubPackageRepo()
	pkg := seedPackage(t, packageRepo, "Fiesta Total", "3000")
	svc := NewEventService(eventRepo, packageRepo)

	discount := dec("10")
	resp, err := svc.Create(context.Background(), dto.CreateEventRequest{
		ContactName:        "María López",
		ContactPhone:       "5512345678",
		Address:            "Av. Siempre Viva 123",
		EventDate:          "2026-09-12",
		StartTime:          "14:00",
		PackageID:          pkg.ID.String(),
		DiscountPercentage: &discount,
		HasAdvancePayment:  true,
		ExtraHoursCount:    2,
		ExtraTables:        3,
		ExtraPlaypens:      9,
	})
	require.NoError(t, err)

	assert.Equal(t, "20:00", resp.EndTime)
	assert.True(t, resp.ExtraHoursCost.Equal(dec("200")))
	assert.True(t, resp.TablesCost.Equal(dec("300")))
	assert.True(t, resp.PlaypensCost.Equal(dec("400")))
	// 200 + 300 + 400
	assert.True(t, resp.TotalExtrasCost.Equal(dec("900")))
	// 3000 * 10% = 300
	assert.True(t, resp.PackageDiscountAmount.Equal(dec("300")))
	// Advance confirmed without amount falls back to the default.
	assert.True(t, resp.AdvancePayment.Equal(dec("300")))
	assert.Equal(t, model.EventStatusPending, resp.Status)
}

func TestCreateEventUnknownPackage(t *testing.T) {
	svc := NewEventService(newStubEventRepo(), newStubPackageRepo())

	_, err := svc.Create(context.Background(), dto.CreateEventRequest{
		ContactName:  "María López",
		ContactPhone: "5512345678",
		Address:      "Av. Siempre Viva 123",
		EventDate:    "2026-09-12",
		StartTime:    "14:00",
		PackageID:    uuid.NewString(),
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

// Changing the start time alone must recompute the end time using the
// stored extra hours.
func TestUpdateEventRecomputesEndTime(t *testing.T) {
	eventRepo := newStubEventRepo()
	packageRepo := newStubPackageRepo()
	pkg := seedPackage(t, packageRepo, "Fiesta Total", "3000")
	svc := NewEventService(eventRepo, packageRepo)

	created := createEventFixture(t, svc, pkg.ID.String())
	id := uuid.MustParse(created.ID)

	hours := 2
	_, err := svc.Update(context.Background(), id, dto.UpdateEventRequest{ExtraHoursCount: &hours})
	require.NoError(t, err)

	start := "22:00"
	updated, err := svc.Update(context.Background(), id, dto.UpdateEventRequest{StartTime: &start})
	require.NoError(t, err)

	assert.Equal(t, "04:00", updated.EndTime)
	assert.Equal(t, 2, updated.ExtraHoursCount)
}

// When the stored package no longer exists, the discount degrades to zero
// instead of blocking the update.
func TestUpdateEventMissingPackageDegradesDiscount(t *testing.T) {
	eventRepo := newStubEventRepo()
	packageRepo := newStubPackageRepo()
	pkg := seedPackage(t, packageRepo, "Fiesta Total", "3000")
	svc := NewEventService(eventRepo, packageRepo)

	created := createEventFixture(t, svc, pkg.ID.String())
	id := uuid.MustParse(created.ID)

	discount := dec("10")
	updated, err := svc.Update(context.Background(), id, dto.UpdateEventRequest{DiscountPercentage: &discount})
	require.NoError(t, err)
	assert.True(t, updated.PackageDiscountAmount.Equal(dec("300")))

	require.NoError(t, packageRepo.Delete(context.Background(), pkg.ID))

	notes := "paquete eliminado del catálogo"
	degraded, err := svc.Update(context.Background(), id, dto.UpdateEventRequest{Notes: &notes})
	require.NoError(t, err)
	assert.True(t, degraded.PackageDiscountAmount.IsZero())
}

func TestUpdateEventMergesOnlySubmittedFields(t *testing.T) {
	eventRepo := newStubEventRepo()
	packageRepo := newStubPackageRepo()
	pkg := seedPackage(t, packageRepo, "Fiesta Total", "3000")
	svc := NewEventService(eventRepo, packageRepo)

	created := createEventFixture(t, svc, pkg.ID.String())
	id := uuid.MustParse(created.ID)

	status := model.EventStatusConfirmed
	updated, err := svc.Update(context.Background(), id, dto.UpdateEventRequest{Status: &status})
	require.NoError(t, err)

	assert.Equal(t, model.EventStatusConfirmed, updated.Status)
	assert.Equal(t, "María López", updated.ContactName)
	assert.Equal(t, "14:00", updated.StartTime)
	assert.Equal(t, "18:00", updated.EndTime)
}

func TestCalculateExtrasQuote(t *testing.T) {
	svc := NewEventService(newStubEventRepo(), newStubPackageRepo())

	resp := svc.CalculateExtras(dto.ExtrasCostRequest{
		ExtraTables:       2,
		ExtraChairs:       5,
		ExtraPlaypens:     1,
		ExtraServicesCost: dec("50"),
	})

	assert.True(t, resp.TablesCost.Equal(dec("200")))
	assert.True(t, resp.ChairsCost.Equal(dec("500")))
	assert.True(t, resp.PlaypensCost.Equal(dec("200")))
	// 200 + 500 + 200 + 50
	assert.True(t, resp.TotalExtrasCost.Equal(dec("950")))
}

func TestDeleteEventNotFound(t *testing.T) {
	svc := NewEventService(newStubEventRepo(), newStubPackageRepo())
	err := svc.Delete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}
