package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/LuisFernandoFloresSanchez/divertilandia-management-system/internal/dto"
	"github.com/LuisFernandoFloresSanchez/divertilandia-management-system/internal/model"
	"github.com/LuisFernandoFloresSanchez/divertilandia-management-system/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var oneHundred = decimal.NewFromInt(100)

// FuelCostDetail is the full breakdown of one cost derivation. For hybrids
// PricePerUnit and LitersNeeded describe the combustion portion only.
type FuelCostDetail struct {
	Cost         decimal.Decimal
	PricePerUnit decimal.Decimal
	LitersNeeded decimal.Decimal
	PriceKnown   bool
}

type VehicleService interface {
	Create(ctx context.Context, req dto.CreateVehicleRequest) (*dto.VehicleResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateVehicleRequest) (*dto.VehicleResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.VehicleResponse, error)
	List(ctx context.Context, filter dto.VehicleFilter) ([]dto.VehicleResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error

	CalculateFuelCost(ctx context.Context, req dto.FuelCostRequest) (*dto.FuelCostResponse, error)

	// CostFor derives the fuel cost of driving km with the vehicle at the
	// current fuel prices. A missing price yields a zero cost, not an error.
	CostFor(ctx context.Context, v *model.Vehicle, km decimal.Decimal) (FuelCostDetail, error)
}

type vehicleService struct {
	repo   repository.VehicleRepository
	prices FuelPriceService
}

func NewVehicleService(repo repository.VehicleRepository, prices FuelPriceService) VehicleService {
	return &vehicleService{repo: repo, prices: prices}
}

func (s *vehicleService) Create(ctx context.Context, req dto.CreateVehicleRequest) (*dto.VehicleResponse, error) {
	vehicleType := req.VehicleType
	if vehicleType == "" {
		vehicleType = model.VehicleTypeRegular
	}

	v := &model.Vehicle{
		Name:        req.Name,
		Model:       req.Model,
		Year:        req.Year,
		PlateNumber: req.PlateNumber,
		FuelType:    req.FuelType,
		VehicleType: vehicleType,

		FuelEfficiency: req.FuelEfficiency,

		BatteryCapacityKwh:         req.BatteryCapacityKwh,
		ElectricRangeKm:            req.ElectricRangeKm,
		HybridEfficiencyKmPerLiter: req.HybridEfficiencyKmPerLiter,

		Color:    req.Color,
		IsActive: true,
	}
	if req.BatteryMinPercentage != nil {
		v.BatteryMinPercentage = *req.BatteryMinPercentage
	} else {
		v.BatteryMinPercentage = decimal.NewFromInt(25)
	}
	if req.IsActive != nil {
		v.IsActive = *req.IsActive
	}

	if err := validateHybridFields(v); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, v); err != nil {
		return nil, err
	}
	return vehicleToResponse(v), nil
}

func (s *vehicleService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateVehicleRequest) (*dto.VehicleResponse, error) {
	v, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: vehículo %s", ErrNotFound, id)
		}
		return nil, err
	}

	if req.Name != nil {
		v.Name = *req.Name
	}
	if req.Model != nil {
		v.Model = req.Model
	}
	if req.Year != nil {
		v.Year = req.Year
	}
	if req.PlateNumber != nil {
		v.PlateNumber = req.PlateNumber
	}
	if req.FuelType != nil {
		v.FuelType = *req.FuelType
	}
	if req.VehicleType != nil {
		v.VehicleType = *req.VehicleType
	}
	if req.FuelEfficiency != nil {
		v.FuelEfficiency = *req.FuelEfficiency
	}
	if req.BatteryCapacityKwh != nil {
		v.BatteryCapacityKwh = req.BatteryCapacityKwh
	}
	if req.ElectricRangeKm != nil {
		v.ElectricRangeKm = req.ElectricRangeKm
	}
	if req.BatteryMinPercentage != nil {
		v.BatteryMinPercentage = *req.BatteryMinPercentage
	}
	if req.HybridEfficiencyKmPerLiter != nil {
		v.HybridEfficiencyKmPerLiter = req.HybridEfficiencyKmPerLiter
	}
	if req.Color != nil {
		v.Color = req.Color
	}
	if req.IsActive != nil {
		v.IsActive = *req.IsActive
	}

	if err := validateHybridFields(v); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, v); err != nil {
		return nil, err
	}
	return vehicleToResponse(v), nil
}

// validateHybridFields requires the full battery profile on hybrid vehicles.
func validateHybridFields(v *model.Vehicle) error {
	if !v.IsHybrid() {
		return nil
	}
	if v.BatteryCapacityKwh == nil || v.ElectricRangeKm == nil || v.HybridEfficiencyKmPerLiter == nil {
		return fmt.Errorf("%w: un vehículo híbrido requiere battery_capacity_kwh, electric_range_km y hybrid_efficiency_km_per_liter", ErrValidation)
	}
	if v.ElectricRangeKm.LessThanOrEqual(decimal.Zero) || v.HybridEfficiencyKmPerLiter.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: los parámetros del híbrido deben ser mayores a cero", ErrValidation)
	}
	return nil
}

func (s *vehicleService) Get(ctx context.Context, id uuid.UUID) (*dto.VehicleResponse, error) {
	v, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: vehículo %s", ErrNotFound, id)
		}
		return nil, err
	}
	return vehicleToResponse(v), nil
}

func (s *vehicleService) List(ctx context.Context, filter dto.VehicleFilter) ([]dto.VehicleResponse, error) {
	vehicles, err := s.repo.List(ctx, filter.Active)
	if err != nil {
		return nil, err
	}
	out := make([]dto.VehicleResponse, 0, len(vehicles))
	for i := range vehicles {
		out = append(out, *vehicleToResponse(&vehicles[i]))
	}
	return out, nil
}

func (s *vehicleService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: vehículo %s", ErrNotFound, id)
		}
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *vehicleService) CalculateFuelCost(ctx context.Context, req dto.FuelCostRequest) (*dto.FuelCostResponse, error) {
	vid, err := uuid.Parse(req.VehicleID)
	if err != nil {
		return nil, fmt.Errorf("%w: vehicle_id inválido", ErrValidation)
	}
	if req.Kilometers.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: kilometers debe ser mayor a cero", ErrValidation)
	}
	v, err := s.repo.FindByID(ctx, vid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: vehículo %s", ErrNotFound, req.VehicleID)
		}
		return nil, err
	}

	detail, err := s.CostFor(ctx, v, req.Kilometers)
	if err != nil {
		return nil, err
	}

	resp := &dto.FuelCostResponse{
		Vehicle:          *vehicleToResponse(v),
		Kilometers:       req.Kilometers,
		FuelCost:         detail.Cost,
		CurrentFuelPrice: detail.PricePerUnit,
		FuelEfficiency:   v.FuelEfficiency,
		LitersNeeded:     detail.LitersNeeded,
	}
	if req.Kilometers.IsPositive() {
		resp.CostPerKilometer = detail.Cost.DivRound(req.Kilometers, 2)
	}
	return resp, nil
}

func (s *vehicleService) CostFor(ctx context.Context, v *model.Vehicle, km decimal.Decimal) (FuelCostDetail, error) {
	if km.LessThanOrEqual(decimal.Zero) {
		return FuelCostDetail{}, nil
	}
	if v.IsHybrid() {
		return s.hybridCost(ctx, v, km)
	}
	return s.combustionCost(ctx, v, km)
}

// combustionCost: kilometers / efficiency = liters, liters * price = cost.
// Without a registered price the cost is zero so usage capture never blocks.
func (s *vehicleService) combustionCost(ctx context.Context, v *model.Vehicle, km decimal.Decimal) (FuelCostDetail, error) {
	if v.FuelEfficiency.LessThanOrEqual(decimal.Zero) {
		return FuelCostDetail{}, fmt.Errorf("%w: el vehículo %s no tiene rendimiento configurado", ErrValidation, v.Name)
	}
	price, ok, err := s.prices.CurrentPriceValue(ctx, v.FuelType)
	if err != nil {
		return FuelCostDetail{}, err
	}
	liters := km.Div(v.FuelEfficiency)
	if !ok {
		return FuelCostDetail{LitersNeeded: liters.Round(2)}, nil
	}
	return FuelCostDetail{
		Cost:         liters.Mul(price).Round(2),
		PricePerUnit: price,
		LitersNeeded: liters.Round(2),
		PriceKnown:   true,
	}, nil
}

// hybridCost splits the trip into an electric leg and a combustion leg.
// The usable electric range discounts the battery reserve the driver never
// taps; energy drawn is proportional to the nominal range, so the reserve
// shortens the leg without cheapening its kilometers.
func (s *vehicleService) hybridCost(ctx context.Context, v *model.Vehicle, km decimal.Decimal) (FuelCostDetail, error) {
	if v.BatteryCapacityKwh == nil || v.ElectricRangeKm == nil || v.HybridEfficiencyKmPerLiter == nil {
		return FuelCostDetail{}, fmt.Errorf("%w: el vehículo %s no tiene el perfil híbrido completo", ErrValidation, v.Name)
	}

	usableRange := v.ElectricRangeKm.Mul(decimal.NewFromInt(1).Sub(v.BatteryMinPercentage.Div(oneHundred)))
	electricKm := km
	if electricKm.GreaterThan(usableRange) {
		electricKm = usableRange
	}

	electricPrice, _, err := s.prices.CurrentPriceValue(ctx, model.FuelTypeElectricity)
	if err != nil {
		return FuelCostDetail{}, err
	}
	kwhUsed := electricKm.Div(*v.ElectricRangeKm).Mul(*v.BatteryCapacityKwh)
	electricCost := kwhUsed.Mul(electricPrice)

	detail := FuelCostDetail{}
	combustionKm := km.Sub(electricKm)
	if combustionKm.IsPositive() {
		fuelPrice, ok, err := s.prices.CurrentPriceValue(ctx, v.FuelType)
		if err != nil {
			return FuelCostDetail{}, err
		}
		liters := combustionKm.Div(*v.HybridEfficiencyKmPerLiter)
		detail.LitersNeeded = liters.Round(2)
		detail.PricePerUnit = fuelPrice
		detail.PriceKnown = ok
		if ok {
			detail.Cost = electricCost.Add(liters.Mul(fuelPrice)).Round(2)
			return detail, nil
		}
	}
	detail.Cost = electricCost.Round(2)
	return detail, nil
}

func vehicleToResponse(v *model.Vehicle) *dto.VehicleResponse {
	return &dto.VehicleResponse{
		ID:          v.ID.String(),
		Name:        v.Name,
		Model:       v.Model,
		Year:        v.Year,
		PlateNumber: v.PlateNumber,
		FuelType:    v.FuelType,
		VehicleType: v.VehicleType,

		FuelEfficiency: v.FuelEfficiency,

		BatteryCapacityKwh:         v.BatteryCapacityKwh,
		ElectricRangeKm:            v.ElectricRangeKm,
		BatteryMinPercentage:       v.BatteryMinPercentage,
		HybridEfficiencyKmPerLiter: v.HybridEfficiencyKmPerLiter,

		Color:    v.Color,
		IsActive: v.IsActive,
	}
}
