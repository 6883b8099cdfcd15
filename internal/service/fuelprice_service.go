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
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// fuelPriceCacheTTL bounds how stale a cached current price can get. Writes
// invalidate eagerly, the TTL only covers out-of-band DB edits.
const fuelPriceCacheTTL = 5 * time.Minute

func fuelPriceCacheKey(fuelType string) string { return "fuel_price:current:" + fuelType }

type FuelPriceService interface {
	SetPrice(ctx context.Context, req dto.SetFuelPriceRequest) (*dto.FuelPriceResponse, error)
	Current(ctx context.Context, fuelType string) (*dto.FuelPriceResponse, error)
	CurrentAll(ctx context.Context) ([]dto.FuelPriceResponse, error)
	List(ctx context.Context) ([]dto.FuelPriceResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateFuelPriceRequest) (*dto.FuelPriceResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// CurrentPriceValue is the lookup used by cost calculations: it returns
	// the active price per liter (per kWh for electricity) and false when no
	// price is registered — never an ErrNotFound.
	CurrentPriceValue(ctx context.Context, fuelType string) (decimal.Decimal, bool, error)
}

type fuelPriceService struct {
	repo  repository.FuelPriceRepository
	cache *redis.Client
}

// NewFuelPriceService builds the fuel price ledger service. cache may be nil;
// lookups then always hit the database.
func NewFuelPriceService(repo repository.FuelPriceRepository, cache *redis.Client) FuelPriceService {
	return &fuelPriceService{repo: repo, cache: cache}
}

func (s *fuelPriceService) SetPrice(ctx context.Context, req dto.SetFuelPriceRequest) (*dto.FuelPriceResponse, error) {
	if !model.ValidFuelType(req.FuelType) {
		return nil, fmt.Errorf("%w: tipo de combustible %q", ErrValidation, req.FuelType)
	}
	if req.PricePerLiter.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: el precio debe ser mayor a cero", ErrValidation)
	}
	effectiveDate, err := time.Parse("2006-01-02", req.EffectiveDate)
	if err != nil {
		return nil, fmt.Errorf("%w: effective_date inválida", ErrValidation)
	}

	p := &model.FuelPrice{
		FuelType:      req.FuelType,
		PricePerLiter: req.PricePerLiter,
		EffectiveDate: effectiveDate,
		Notes:         req.Notes,
	}
	if err := s.repo.SetPrice(ctx, p); err != nil {
		return nil, err
	}
	s.invalidate(ctx, req.FuelType)
	return fuelPriceToResponse(p), nil
}

func (s *fuelPriceService) Current(ctx context.Context, fuelType string) (*dto.FuelPriceResponse, error) {
	if !model.ValidFuelType(fuelType) {
		return nil, fmt.Errorf("%w: tipo de combustible %q", ErrValidation, fuelType)
	}
	p, err := s.repo.CurrentPrice(ctx, fuelType)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: sin precio vigente para %s", ErrNotFound, fuelType)
		}
		return nil, err
	}
	return fuelPriceToResponse(p), nil
}

func (s *fuelPriceService) CurrentPriceValue(ctx context.Context, fuelType string) (decimal.Decimal, bool, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, fuelPriceCacheKey(fuelType)).Result(); err == nil {
			if v, perr := decimal.NewFromString(cached); perr == nil {
				return v, true, nil
			}
		} else if !errors.Is(err, redis.Nil) {
			// Cache down is not fatal, fall through to the database.
			log.Warn().Err(err).Msg("cache de precios no disponible")
		}
	}

	p, err := s.repo.CurrentPrice(ctx, fuelType)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return decimal.Zero, false, nil
		}
		return decimal.Zero, false, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, fuelPriceCacheKey(fuelType), p.PricePerLiter.String(), fuelPriceCacheTTL).Err(); err != nil {
			log.Warn().Err(err).Msg("no se pudo cachear el precio de combustible")
		}
	}
	return p.PricePerLiter, true, nil
}

func (s *fuelPriceService) CurrentAll(ctx context.Context) ([]dto.FuelPriceResponse, error) {
	prices, err := s.repo.CurrentPrices(ctx)
	if err != nil {
		return nil, err
	}
	return fuelPricesToResponse(prices), nil
}

func (s *fuelPriceService) List(ctx context.Context) ([]dto.FuelPriceResponse, error) {
	prices, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return fuelPricesToResponse(prices), nil
}

func (s *fuelPriceService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateFuelPriceRequest) (*dto.FuelPriceResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: precio %s", ErrNotFound, id)
		}
		return nil, err
	}

	if req.FuelType != nil {
		if !model.ValidFuelType(*req.FuelType) {
			return nil, fmt.Errorf("%w: tipo de combustible %q", ErrValidation, *req.FuelType)
		}
		p.FuelType = *req.FuelType
	}
	if req.PricePerLiter != nil {
		if req.PricePerLiter.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: el precio debe ser mayor a cero", ErrValidation)
		}
		p.PricePerLiter = *req.PricePerLiter
	}
	if req.EffectiveDate != nil {
		d, err := time.Parse("2006-01-02", *req.EffectiveDate)
		if err != nil {
			return nil, fmt.Errorf("%w: effective_date inválida", ErrValidation)
		}
		p.EffectiveDate = d
	}
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}
	if req.Notes != nil {
		p.Notes = req.Notes
	}

	// Hand-activating a row must not leave two active prices for the type.
	if p.IsActive {
		if err := s.repo.Activate(ctx, p); err != nil {
			return nil, err
		}
	} else if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	s.invalidate(ctx, p.FuelType)
	return fuelPriceToResponse(p), nil
}

func (s *fuelPriceService) Delete(ctx context.Context, id uuid.UUID) error {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: precio %s", ErrNotFound, id)
		}
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, p.FuelType)
	return nil
}

func (s *fuelPriceService) invalidate(ctx context.Context, fuelType string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, fuelPriceCacheKey(fuelType)).Err(); err != nil {
		log.Warn().Err(err).Str("fuel_type", fuelType).Msg("no se pudo invalidar el cache de precios")
	}
}

func fuelPriceToResponse(p *model.FuelPrice) *dto.FuelPriceResponse {
	return &dto.FuelPriceResponse{
		ID:            p.ID.String(),
		FuelType:      p.FuelType,
		PricePerLiter: p.PricePerLiter,
		EffectiveDate: p.EffectiveDate.Format("2006-01-02"),
		IsActive:      p.IsActive,
		Notes:         p.Notes,
		CreatedAt:     p.CreatedAt.Format(time.RFC3339),
	}
}

func fuelPricesToResponse(prices []model.FuelPrice) []dto.FuelPriceResponse {
	out := make([]dto.FuelPriceResponse, 0, len(prices))
	for i := range prices {
		out = append(out, *fuelPriceToResponse(&prices[i]))
	}
	return out
}
