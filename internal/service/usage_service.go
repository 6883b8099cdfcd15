package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/LuisFernandoFloresSanchez/divertilandia-management-system/internal/dto"
	"github.com/LuisFernandoFloresSanchez/divertilandia-management-system/internal/model"
	"github.com/LuisFernandoFloresSanchez/divertilandia-management-system/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// UsageService records vehicle trips for events and keeps each usage's
// companion fuel expense in lockstep: same amount, same payment status,
// created and deleted together.
type UsageService interface {
	Record(ctx context.Context, req dto.RecordUsageRequest) (*dto.UsageResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateUsageRequest) (*dto.UsageResponse, error)
	MarkPaid(ctx context.Context, id uuid.UUID) (*dto.UsageResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.UsageResponse, error)
	List(ctx context.Context, filter dto.UsageFilter) ([]dto.UsageResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type usageService struct {
	repo         repository.UsageRepository
	expenseRepo  repository.ExpenseRepository
	categoryRepo repository.ExpenseCategoryRepository
	eventRepo    repository.EventRepository
	vehicleRepo  repository.VehicleRepository
	vehicles     VehicleService
}

func NewUsageService(
	repo repository.UsageRepository,
	expenseRepo repository.ExpenseRepository,
	categoryRepo repository.ExpenseCategoryRepository,
	eventRepo repository.EventRepository,
	vehicleRepo repository.VehicleRepository,
	vehicles VehicleService,
) UsageService {
	return &usageService{
		repo:         repo,
		expenseRepo:  expenseRepo,
		categoryRepo: categoryRepo,
		eventRepo:    eventRepo,
		vehicleRepo:  vehicleRepo,
		vehicles:     vehicles,
	}
}

func (s *usageService) Record(ctx context.Context, req dto.RecordUsageRequest) (*dto.UsageResponse, error) {
	eventID, err := uuid.Parse(req.EventID)
	if err != nil {
		return nil, fmt.Errorf("%w: event_id inválido", ErrValidation)
	}
	vehicleID, err := uuid.Parse(req.VehicleID)
	if err != nil {
		return nil, fmt.Errorf("%w: vehicle_id inválido", ErrValidation)
	}
	if req.Kilometers.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: kilometers debe ser mayor a cero", ErrValidation)
	}

	event, err := s.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: evento %s", ErrNotFound, req.EventID)
		}
		return nil, err
	}
	vehicle, err := s.vehicleRepo.FindByID(ctx, vehicleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: vehículo %s", ErrNotFound, req.VehicleID)
		}
		return nil, err
	}

	detail, err := s.vehicles.CostFor(ctx, vehicle, req.Kilometers)
	if err != nil {
		return nil, err
	}

	u := &model.EventVehicleUsage{
		EventID:    eventID,
		VehicleID:  vehicleID,
		Kilometers: req.Kilometers,
		FuelCost:   detail.Cost,
		Status:     model.UsageStatusPending,
		Notes:      req.Notes,
	}

	category, err := s.categoryRepo.FindByName(ctx, model.FuelCategoryName)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if err := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.CreateTx(tx, u); err != nil {
			return err
		}
		if category == nil {
			// The bootstrap upsert guarantees the category; a missing one
			// means a degraded install, never a blocked capture.
			log.Warn().
				Str("usage_id", u.ID.String()).
				Msg("categoría de gasolina no encontrada, uso registrado sin gasto")
			return nil
		}
		expense := &model.Expense{
			Concept:           fuelExpenseConcept(vehicle.Name, u.Kilometers),
			Description:       fuelExpenseDescription(event.ContactName, vehicle.Name, u.Kilometers),
			Amount:            detail.Cost,
			ExpenseCategoryID: category.ID,
			EventID:           &eventID,
			UsageID:           &u.ID,
			Status:            model.ExpenseStatusPending,
			ExpenseDate:       event.EventDate,
		}
		return s.expenseRepo.CreateTx(tx, expense)
	}); err != nil {
		return nil, err
	}

	u.Vehicle = vehicle
	return usageToResponse(u), nil
}

func (s *usageService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateUsageRequest) (*dto.UsageResponse, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: uso de vehículo %s", ErrNotFound, id)
		}
		return nil, err
	}

	var concept string
	var description *string
	if req.Kilometers != nil {
		if req.Kilometers.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: kilometers debe ser mayor a cero", ErrValidation)
		}
		u.Kilometers = *req.Kilometers

		vehicle := u.Vehicle
		if vehicle == nil {
			vehicle, err = s.vehicleRepo.FindByID(ctx, u.VehicleID)
			if err != nil {
				return nil, err
			}
		}
		detail, err := s.vehicles.CostFor(ctx, vehicle, u.Kilometers)
		if err != nil {
			return nil, err
		}
		u.FuelCost = detail.Cost

		concept = fuelExpenseConcept(vehicle.Name, u.Kilometers)
		if event, err := s.eventRepo.FindByID(ctx, u.EventID); err == nil {
			description = fuelExpenseDescription(event.ContactName, vehicle.Name, u.Kilometers)
		}
	}
	if req.Notes != nil {
		u.Notes = req.Notes
	}
	if req.Status != nil {
		u.Status = *req.Status
	}

	if err := s.saveWithCompanion(ctx, u, concept, description); err != nil {
		return nil, err
	}
	return usageToResponse(u), nil
}

func (s *usageService) MarkPaid(ctx context.Context, id uuid.UUID) (*dto.UsageResponse, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: uso de vehículo %s", ErrNotFound, id)
		}
		return nil, err
	}
	u.Status = model.UsageStatusPaid

	if err := s.saveWithCompanion(ctx, u, "", nil); err != nil {
		return nil, err
	}
	return usageToResponse(u), nil
}

// saveWithCompanion persists the usage and mirrors amount and status onto
// its companion expense in the same transaction. A non-empty concept (and
// description) refreshes the expense text after a kilometer change. A
// companion that went missing is logged and skipped, never a failure.
func (s *usageService) saveWithCompanion(ctx context.Context, u *model.EventVehicleUsage, concept string, description *string) error {
	return runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.UpdateTx(tx, u); err != nil {
			return err
		}

		expense, err := s.expenseRepo.FindByUsageIDTx(tx, u.ID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				log.Warn().
					Str("usage_id", u.ID.String()).
					Msg("gasto acompañante no encontrado, solo se actualizó el uso")
				return nil
			}
			return err
		}

		if concept != "" {
			expense.Concept = concept
		}
		if description != nil {
			expense.Description = description
		}
		expense.Amount = u.FuelCost
		expense.Status = expenseStatusFor(u.Status)
		if expense.Status == model.ExpenseStatusPaid {
			if expense.PaymentDate == nil {
				now := time.Now()
				expense.PaymentDate = &now
			}
		} else {
			expense.PaymentDate = nil
		}
		return s.expenseRepo.UpdateTx(tx, expense)
	})
}

func fuelExpenseConcept(vehicleName string, km decimal.Decimal) string {
	return fmt.Sprintf("Gasolina - %s - %s km", vehicleName, km)
}

func fuelExpenseDescription(contactName, vehicleName string, km decimal.Decimal) *string {
	d := fmt.Sprintf(
		"Costo de gasolina para el evento %s usando %s. Kilómetros recorridos: %s km.",
		contactName, vehicleName, km,
	)
	return &d
}

func expenseStatusFor(usageStatus string) string {
	if usageStatus == model.UsageStatusPaid {
		return model.ExpenseStatusPaid
	}
	return model.ExpenseStatusPending
}

func (s *usageService) Get(ctx context.Context, id uuid.UUID) (*dto.UsageResponse, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: uso de vehículo %s", ErrNotFound, id)
		}
		return nil, err
	}
	return usageToResponse(u), nil
}

func (s *usageService) List(ctx context.Context, filter dto.UsageFilter) ([]dto.UsageResponse, error) {
	usages, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UsageResponse, 0, len(usages))
	for i := range usages {
		out = append(out, *usageToResponse(&usages[i]))
	}
	return out, nil
}

func (s *usageService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: uso de vehículo %s", ErrNotFound, id)
		}
		return err
	}
	return runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.expenseRepo.DeleteByUsageIDTx(tx, id); err != nil {
			return err
		}
		return s.repo.DeleteTx(tx, id)
	})
}

func usageToResponse(u *model.EventVehicleUsage) *dto.UsageResponse {
	resp := &dto.UsageResponse{
		ID:         u.ID.String(),
		EventID:    u.EventID.String(),
		VehicleID:  u.VehicleID.String(),
		Kilometers: u.Kilometers,
		FuelCost:   u.FuelCost,
		Status:     u.Status,
		Notes:      u.Notes,
		CreatedAt:  u.CreatedAt.Format(time.RFC3339),
	}
	if u.Vehicle != nil {
		resp.Vehicle = vehicleToResponse(u.Vehicle)
	}
	if u.Event != nil {
		resp.Event = eventToResponse(u.Event)
	}
	return resp
}
