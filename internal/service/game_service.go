package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/LuisFernandoFloresSanchez/divertilandia-management-system/internal/dto"
	"github.com/LuisFernandoFloresSanchez/divertilandia-management-system/internal/model"
	"github.com/LuisFernandoFloresSanchez/divertilandia-management-system/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GameService interface {
	Create(ctx context.Context, req dto.CreateGameRequest) (*dto.GameResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateGameRequest) (*dto.GameResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.GameResponse, error)
	List(ctx context.Context, filter dto.GameFilter) ([]dto.GameResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// UpdateCounters replaces both unit-count sets. Each set must sum to
	// the game's quantity.
	UpdateCounters(ctx context.Context, id uuid.UUID, req dto.UnitCountersRequest) (*dto.GameResponse, error)
	AssignClauses(ctx context.Context, id uuid.UUID, req dto.AssignClausesRequest) (*dto.GameResponse, error)
}

type gameService struct {
	repo       repository.GameRepository
	toyTypes   repository.ToyTypeRepository
	toyClauses repository.ToyClauseRepository
}

func NewGameService(
	repo repository.GameRepository,
	toyTypes repository.ToyTypeRepository,
	toyClauses repository.ToyClauseRepository,
) GameService {
	return &gameService{repo: repo, toyTypes: toyTypes, toyClauses: toyClauses}
}

func (s *gameService) Create(ctx context.Context, req dto.CreateGameRequest) (*dto.GameResponse, error) {
	g := &model.Game{
		Name:      req.Name,
		Quantity:  req.Quantity,
		UnitPrice: req.UnitPrice,
		IsActive:  true,

		ExcellentCount: req.ExcellentCount,
		GoodCount:      req.GoodCount,
		FairCount:      req.FairCount,
		PoorCount:      req.PoorCount,
		BrokenCount:    req.BrokenCount,

		AvailableCount:   req.AvailableCount,
		InUseCount:       req.InUseCount,
		MaintenanceCount: req.MaintenanceCount,
		RetiredCount:     req.RetiredCount,
	}
	if req.IsActive != nil {
		g.IsActive = *req.IsActive
	}

	// A fresh game with untouched counters starts with every unit
	// excellent and available.
	if g.HealthTotal() == 0 && g.Quantity > 0 {
		g.ExcellentCount = g.Quantity
	}
	if g.AvailabilityTotal() == 0 && g.Quantity > 0 {
		g.AvailableCount = g.Quantity
	}
	if !g.CountersConsistent() {
		return nil, counterMismatchError(g)
	}

	if req.ToyTypeID != nil {
		tid, err := s.resolveToyType(ctx, *req.ToyTypeID)
		if err != nil {
			return nil, err
		}
		g.ToyTypeID = &tid
	}

	if err := s.repo.Create(ctx, g); err != nil {
		return nil, err
	}
	return gameToResponse(g), nil
}

func (s *gameService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateGameRequest) (*dto.GameResponse, error) {
	g, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: juego %s", ErrNotFound, id)
		}
		return nil, err
	}

	if req.Name != nil {
		g.Name = *req.Name
	}
	if req.ToyTypeID != nil {
		tid, err := s.resolveToyType(ctx, *req.ToyTypeID)
		if err != nil {
			return nil, err
		}
		g.ToyTypeID = &tid
		g.ToyType = nil
	}
	if req.Quantity != nil && *req.Quantity != g.Quantity {
		// Growing or shrinking the fleet lands the delta on the
		// excellent/available buckets so the invariant holds.
		delta := *req.Quantity - g.Quantity
		g.ExcellentCount += delta
		g.AvailableCount += delta
		if g.ExcellentCount < 0 || g.AvailableCount < 0 {
			return nil, fmt.Errorf("%w: la cantidad no puede bajar de las unidades ya asignadas, ajuste los contadores primero", ErrValidation)
		}
		g.Quantity = *req.Quantity
	}
	if req.UnitPrice != nil {
		g.UnitPrice = *req.UnitPrice
	}
	if req.IsActive != nil {
		g.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, g); err != nil {
		return nil, err
	}
	return gameToResponse(g), nil
}

func (s *gameService) UpdateCounters(ctx context.Context, id uuid.UUID, req dto.UnitCountersRequest) (*dto.GameResponse, error) {
	g, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: juego %s", ErrNotFound, id)
		}
		return nil, err
	}

	g.ExcellentCount = req.ExcellentCount
	g.GoodCount = req.GoodCount
	g.FairCount = req.FairCount
	g.PoorCount = req.PoorCount
	g.BrokenCount = req.BrokenCount

	g.AvailableCount = req.AvailableCount
	g.InUseCount = req.InUseCount
	g.MaintenanceCount = req.MaintenanceCount
	g.RetiredCount = req.RetiredCount

	if !g.CountersConsistent() {
		return nil, counterMismatchError(g)
	}

	if err := s.repo.Update(ctx, g); err != nil {
		return nil, err
	}
	return gameToResponse(g), nil
}

func (s *gameService) AssignClauses(ctx context.Context, id uuid.UUID, req dto.AssignClausesRequest) (*dto.GameResponse, error) {
	g, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: juego %s", ErrNotFound, id)
		}
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(req.ClauseIDs))
	for _, raw := range req.ClauseIDs {
		cid, err := uuid.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: clause_id inválido %q", ErrValidation, raw)
		}
		ids = append(ids, cid)
	}

	clauses, err := s.toyClauses.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(clauses) != len(ids) {
		return nil, fmt.Errorf("%w: una o más cláusulas no existen", ErrNotFound)
	}

	if err := s.repo.ReplaceClauses(ctx, g, clauses); err != nil {
		return nil, err
	}
	g.ToyClauses = clauses
	return gameToResponse(g), nil
}

func (s *gameService) Get(ctx context.Context, id uuid.UUID) (*dto.GameResponse, error) {
	g, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: juego %s", ErrNotFound, id)
		}
		return nil, err
	}
	return gameToResponse(g), nil
}

func (s *gameService) List(ctx context.Context, filter dto.GameFilter) ([]dto.GameResponse, error) {
	if filter.ToyTypeID != "" {
		if _, err := uuid.Parse(filter.ToyTypeID); err != nil {
			return nil, fmt.Errorf("%w: toy_type_id inválido", ErrValidation)
		}
	}
	games, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.GameResponse, 0, len(games))
	for i := range games {
		out = append(out, *gameToResponse(&games[i]))
	}
	return out, nil
}

func (s *gameService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: juego %s", ErrNotFound, id)
		}
		return err
	}
	n, err := s.repo.CountPackages(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return fmt.Errorf("%w: el juego pertenece a %d paquetes", ErrValidation, n)
	}
	return s.repo.Delete(ctx, id)
}

func (s *gameService) resolveToyType(ctx context.Context, raw string) (uuid.UUID, error) {
	tid, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: toy_type_id inválido", ErrValidation)
	}
	if _, err := s.toyTypes.FindByID(ctx, tid); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, fmt.Errorf("%w: tipo de juguete %s", ErrNotFound, raw)
		}
		return uuid.Nil, err
	}
	return tid, nil
}

func counterMismatchError(g *model.Game) error {
	return fmt.Errorf(
		"%w: los contadores deben sumar la cantidad (%d): estado %d, disponibilidad %d",
		ErrValidation, g.Quantity, g.HealthTotal(), g.AvailabilityTotal(),
	)
}

func gameToResponse(g *model.Game) *dto.GameResponse {
	resp := &dto.GameResponse{
		ID:        g.ID.String(),
		Name:      g.Name,
		Quantity:  g.Quantity,
		UnitPrice: g.UnitPrice,
		IsActive:  g.IsActive,

		ExcellentCount: g.ExcellentCount,
		GoodCount:      g.GoodCount,
		FairCount:      g.FairCount,
		PoorCount:      g.PoorCount,
		BrokenCount:    g.BrokenCount,

		AvailableCount:   g.AvailableCount,
		InUseCount:       g.InUseCount,
		MaintenanceCount: g.MaintenanceCount,
		RetiredCount:     g.RetiredCount,
	}
	if g.ToyTypeID != nil {
		tid := g.ToyTypeID.String()
		resp.ToyTypeID = &tid
	}
	if g.ToyType != nil {
		resp.ToyType = toyTypeToResponse(g.ToyType)
	}
	return resp
}
