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

type EventService interface {
	Create(ctx context.Context, req dto.CreateEventRequest) (*dto.EventResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateEventRequest) (*dto.EventResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.EventResponse, error)
	List(ctx context.Context, filter dto.EventFilter) ([]dto.EventResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// Stateless quoting endpoints used by the booking form.
	CalculateExtras(req dto.ExtrasCostRequest) dto.ExtrasCostResponse
	CalculateEndTime(req dto.EndTimeRequest) (*dto.EndTimeResponse, error)
}

type eventService struct {
	repo        repository.EventRepository
	packageRepo repository.PackageRepository
}

func NewEventService(repo repository.EventRepository, packageRepo repository.PackageRepository) EventService {
	return &eventService{repo: repo, packageRepo: packageRepo}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

func (s *eventService) Create(ctx context.Context, req dto.CreateEventRequest) (*dto.EventResponse, error) {
	pkgID, err := uuid.Parse(req.PackageID)
	if err != nil {
		return nil, fmt.Errorf("%w: package_id inválido", ErrValidation)
	}
	pkg, err := s.packageRepo.FindByID(ctx, pkgID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: paquete %s", ErrNotFound, req.PackageID)
		}
		return nil, err
	}

	eventDate, err := time.Parse("2006-01-02", req.EventDate)
	if err != nil {
		return nil, fmt.Errorf("%w: event_date inválida", ErrValidation)
	}

	e := &model.Event{
		ContactName:    req.ContactName,
		ContactPhone:   req.ContactPhone,
		SecondaryPhone: req.SecondaryPhone,
		Address:        req.Address,
		GoogleMapsURL:  req.GoogleMapsURL,
		Latitude:       req.Latitude,
		Longitude:      req.Longitude,
		EventDate:      eventDate,
		StartTime:      req.StartTime,
		PackageID:      &pkgID,
		Status:         model.EventStatusPending,
		Notes:          req.Notes,
		ChildGender:    req.ChildGender,

		ExtraHoursCount: req.ExtraHoursCount,
		ExtraTables:     req.ExtraTables,
		ExtraChairs:     req.ExtraChairs,
		ExtraPlaypens:   req.ExtraPlaypens,
		ExtraToys:       req.ExtraToys,
		ExtraServices:   req.ExtraServices,
	}
	if req.Status != "" {
		e.Status = req.Status
	}
	if req.DiscountPercentage != nil {
		e.DiscountPercentage = *req.DiscountPercentage
	}
	if req.ExtraServicesCost != nil {
		e.ExtraServicesCost = *req.ExtraServicesCost
	}

	e.HasAdvancePayment = req.HasAdvancePayment
	e.AdvancePaymentAmount = req.AdvancePaymentAmount
	e.AdvancePayment = advanceFor(req.HasAdvancePayment, req.AdvancePaymentAmount)

	if err := s.deriveColumns(e, pkg); err != nil {
		return nil, err
	}

	if err := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		return s.repo.CreateTx(tx, e)
	}); err != nil {
		return nil, err
	}

	e.Package = pkg
	return eventToResponse(e), nil
}

func (s *eventService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateEventRequest) (*dto.EventResponse, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: evento %s", ErrNotFound, id)
		}
		return nil, err
	}

	if err := mergeEvent(e, req); err != nil {
		return nil, err
	}

	// The stored package may have been swapped by the request, or removed
	// from the catalog since the event was created. The discount degrades
	// to zero rather than blocking the update.
	pkg := e.Package
	if e.PackageID != nil && (pkg == nil || pkg.ID != *e.PackageID) {
		pkg, err = s.packageRepo.FindByID(ctx, *e.PackageID)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, err
			}
			log.Warn().
				Str("event_id", id.String()).
				Str("package_id", e.PackageID.String()).
				Msg("paquete no encontrado, descuento degradado a cero")
			pkg = nil
		}
	}

	if err := s.deriveColumns(e, pkg); err != nil {
		return nil, err
	}

	if err := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		return s.repo.UpdateTx(tx, e)
	}); err != nil {
		return nil, err
	}

	e.Package = pkg
	return eventToResponse(e), nil
}

// deriveColumns recomputes every derived column from the event's raw fields:
// extras costs, end time and the package discount amount. Runs on every
// create and update so stored rows never go stale.
func (s *eventService) deriveColumns(e *model.Event, pkg *model.Package) error {
	b := CalcExtras(ExtrasCounts{
		ExtraHours: e.ExtraHoursCount,
		Tables:     e.ExtraTables,
		Chairs:     e.ExtraChairs,
		Playpens:   e.ExtraPlaypens,
		Toys:       e.ExtraToys,
	}, e.ExtraServicesCost)
	e.ExtraHoursCost = b.ExtraHoursCost
	e.TablesCost = b.TablesCost
	e.ChairsCost = b.ChairsCost
	e.PlaypensCost = b.PlaypensCost
	e.ToysCost = b.ToysCost
	e.TotalExtrasCost = b.TotalExtrasCost

	endTime, err := CalcEndTime(e.StartTime, e.ExtraHoursCount)
	if err != nil {
		return err
	}
	e.EndTime = endTime

	if pkg == nil {
		e.PackageDiscountAmount = decimal.Zero
	} else {
		e.PackageDiscountAmount = pkg.Price.
			Mul(e.DiscountPercentage).
			Div(decimal.NewFromInt(100)).
			Round(2)
	}
	return nil
}

// mergeEvent overlays the submitted fields onto the stored row. nil means
// "not submitted" and keeps the stored value.
func mergeEvent(e *model.Event, req dto.UpdateEventRequest) error {
	if req.ContactName != nil {
		e.ContactName = *req.ContactName
	}
	if req.ContactPhone != nil {
		e.ContactPhone = *req.ContactPhone
	}
	if req.SecondaryPhone != nil {
		e.SecondaryPhone = req.SecondaryPhone
	}
	if req.Address != nil {
		e.Address = *req.Address
	}
	if req.GoogleMapsURL != nil {
		e.GoogleMapsURL = req.GoogleMapsURL
	}
	if req.Latitude != nil {
		e.Latitude = req.Latitude
	}
	if req.Longitude != nil {
		e.Longitude = req.Longitude
	}
	if req.EventDate != nil {
		d, err := time.Parse("2006-01-02", *req.EventDate)
		if err != nil {
			return fmt.Errorf("%w: event_date inválida", ErrValidation)
		}
		e.EventDate = d
	}
	if req.StartTime != nil {
		e.StartTime = *req.StartTime
	}
	if req.PackageID != nil {
		pid, err := uuid.Parse(*req.PackageID)
		if err != nil {
			return fmt.Errorf("%w: package_id inválido", ErrValidation)
		}
		e.PackageID = &pid
	}
	if req.DiscountPercentage != nil {
		e.DiscountPercentage = *req.DiscountPercentage
	}
	if req.HasAdvancePayment != nil {
		e.HasAdvancePayment = *req.HasAdvancePayment
	}
	if req.AdvancePaymentAmount != nil {
		e.AdvancePaymentAmount = req.AdvancePaymentAmount
	}
	if req.HasAdvancePayment != nil || req.AdvancePaymentAmount != nil {
		e.AdvancePayment = advanceFor(e.HasAdvancePayment, e.AdvancePaymentAmount)
	}
	if req.ExtraHoursCount != nil {
		e.ExtraHoursCount = *req.ExtraHoursCount
	}
	if req.ExtraTables != nil {
		e.ExtraTables = *req.ExtraTables
	}
	if req.ExtraChairs != nil {
		e.ExtraChairs = *req.ExtraChairs
	}
	if req.ExtraPlaypens != nil {
		e.ExtraPlaypens = *req.ExtraPlaypens
	}
	if req.ExtraToys != nil {
		e.ExtraToys = *req.ExtraToys
	}
	if req.ExtraServices != nil {
		e.ExtraServices = req.ExtraServices
	}
	if req.ExtraServicesCost != nil {
		e.ExtraServicesCost = *req.ExtraServicesCost
	}
	if req.Status != nil {
		e.Status = *req.Status
	}
	if req.Notes != nil {
		e.Notes = req.Notes
	}
	if req.ChildGender != nil {
		e.ChildGender = req.ChildGender
	}
	return nil
}

// advanceFor resolves the effective advance payment: the stated amount when
// given, the default when the client confirmed without an amount, zero when
// there is no advance.
func advanceFor(has bool, amount *decimal.Decimal) decimal.Decimal {
	if !has {
		return decimal.Zero
	}
	if amount != nil {
		return *amount
	}
	return decimal.NewFromInt(DefaultAdvancePayment)
}

func (s *eventService) Get(ctx context.Context, id uuid.UUID) (*dto.EventResponse, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: evento %s", ErrNotFound, id)
		}
		return nil, err
	}
	return eventToResponse(e), nil
}

func (s *eventService) List(ctx context.Context, filter dto.EventFilter) ([]dto.EventResponse, error) {
	events, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EventResponse, 0, len(events))
	for i := range events {
		out = append(out, *eventToResponse(&events[i]))
	}
	return out, nil
}

func (s *eventService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: evento %s", ErrNotFound, id)
		}
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *eventService) CalculateExtras(req dto.ExtrasCostRequest) dto.ExtrasCostResponse {
	b := CalcExtras(ExtrasCounts{
		ExtraHours: req.ExtraHoursCount,
		Tables:     req.ExtraTables,
		Chairs:     req.ExtraChairs,
		Playpens:   req.ExtraPlaypens,
		Toys:       req.ExtraToys,
	}, req.ExtraServicesCost)
	return dto.ExtrasCostResponse{
		TablesCost:      b.TablesCost,
		ChairsCost:      b.ChairsCost,
		PlaypensCost:    b.PlaypensCost,
		ToysCost:        b.ToysCost,
		TotalExtrasCost: b.TotalExtrasCost,
	}
}

func (s *eventService) CalculateEndTime(req dto.EndTimeRequest) (*dto.EndTimeResponse, error) {
	endTime, err := CalcEndTime(req.StartTime, req.ExtraHours)
	if err != nil {
		return nil, err
	}
	return &dto.EndTimeResponse{EndTime: endTime}, nil
}

func eventToResponse(e *model.Event) *dto.EventResponse {
	resp := &dto.EventResponse{
		ID:             e.ID.String(),
		ContactName:    e.ContactName,
		ContactPhone:   e.ContactPhone,
		SecondaryPhone: e.SecondaryPhone,
		Address:        e.Address,
		GoogleMapsURL:  e.GoogleMapsURL,
		Latitude:       e.Latitude,
		Longitude:      e.Longitude,

		EventDate: e.EventDate.Format("2006-01-02"),
		StartTime: e.StartTime,
		EndTime:   e.EndTime,

		DiscountPercentage:    e.DiscountPercentage,
		PackageDiscountAmount: e.PackageDiscountAmount,

		HasAdvancePayment:    e.HasAdvancePayment,
		AdvancePaymentAmount: e.AdvancePaymentAmount,
		AdvancePayment:       e.AdvancePayment,

		ExtraHoursCount:   e.ExtraHoursCount,
		ExtraTables:       e.ExtraTables,
		ExtraChairs:       e.ExtraChairs,
		ExtraPlaypens:     e.ExtraPlaypens,
		ExtraToys:         e.ExtraToys,
		ExtraServices:     e.ExtraServices,
		ExtraServicesCost: e.ExtraServicesCost,

		ExtraHoursCost:  e.ExtraHoursCost,
		TablesCost:      e.TablesCost,
		ChairsCost:      e.ChairsCost,
		PlaypensCost:    e.PlaypensCost,
		ToysCost:        e.ToysCost,
		TotalExtrasCost: e.TotalExtrasCost,

		Status:      e.Status,
		Notes:       e.Notes,
		ChildGender: e.ChildGender,
		CreatedAt:   e.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   e.UpdatedAt.Format(time.RFC3339),
	}
	if e.PackageID != nil {
		pid := e.PackageID.String()
		resp.PackageID = &pid
	}
	if e.Package != nil {
		resp.Package = &dto.EventPackageResponse{
			ID:       e.Package.ID.String(),
			Name:     e.Package.Name,
			Price:    e.Package.Price,
			MaxAge:   e.Package.MaxAge,
			IsActive: e.Package.IsActive,
		}
	}
	return resp
}
