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

type PackageService interface {
	Create(ctx context.Context, req dto.CreatePackageRequest) (*dto.PackageResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdatePackageRequest) (*dto.PackageResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.PackageResponse, error)
	List(ctx context.Context, active string) ([]dto.PackageResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type packageService struct {
	repo     repository.PackageRepository
	gameRepo repository.GameRepository
}

func NewPackageService(repo repository.PackageRepository, gameRepo repository.GameRepository) PackageService {
	return &packageService{repo: repo, gameRepo: gameRepo}
}

func (s *packageService) Create(ctx context.Context, req dto.CreatePackageRequest) (*dto.PackageResponse, error) {
	if req.Price.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: el precio debe ser mayor a cero", ErrValidation)
	}

	p := &model.Package{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		MaxAge:      req.MaxAge,
		IsActive:    true,
	}
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}

	games, err := s.resolveGames(ctx, req.Games)
	if err != nil {
		return nil, err
	}
	p.Games = games

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return s.Get(ctx, p.ID)
}

func (s *packageService) Update(ctx context.Context, id uuid.UUID, req dto.UpdatePackageRequest) (*dto.PackageResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: paquete %s", ErrNotFound, id)
		}
		return nil, err
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Description != nil {
		p.Description = req.Description
	}
	if req.Price != nil {
		if req.Price.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: el precio debe ser mayor a cero", ErrValidation)
		}
		p.Price = *req.Price
	}
	if req.MaxAge != nil {
		p.MaxAge = req.MaxAge
	}
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}

	// nil means leave the pairings untouched; an empty slice clears them.
	var games []model.PackageGame
	if req.Games != nil {
		games, err = s.resolveGames(ctx, req.Games)
		if err != nil {
			return nil, err
		}
		for i := range games {
			games[i].PackageID = p.ID
		}
	}

	if err := s.repo.Update(ctx, p, games); err != nil {
		return nil, err
	}
	return s.Get(ctx, p.ID)
}

// resolveGames validates the submitted pairings: existing games, no
// duplicates, positive quantities.
func (s *packageService) resolveGames(ctx context.Context, inputs []dto.PackageGameInput) ([]model.PackageGame, error) {
	if inputs == nil {
		return nil, nil
	}
	games := make([]model.PackageGame, 0, len(inputs))
	seen := make(map[uuid.UUID]bool, len(inputs))
	for _, in := range inputs {
		gid, err := uuid.Parse(in.GameID)
		if err != nil {
			return nil, fmt.Errorf("%w: game_id inválido %q", ErrValidation, in.GameID)
		}
		if seen[gid] {
			return nil, fmt.Errorf("%w: juego repetido %s", ErrValidation, in.GameID)
		}
		seen[gid] = true
		if in.Quantity < 1 {
			return nil, fmt.Errorf("%w: la cantidad debe ser al menos 1", ErrValidation)
		}
		if _, err := s.gameRepo.FindByID(ctx, gid); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: juego %s", ErrNotFound, in.GameID)
			}
			return nil, err
		}
		games = append(games, model.PackageGame{GameID: gid, Quantity: in.Quantity})
	}
	return games, nil
}

func (s *packageService) Get(ctx context.Context, id uuid.UUID) (*dto.PackageResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: paquete %s", ErrNotFound, id)
		}
		return nil, err
	}
	return packageToResponse(p), nil
}

func (s *packageService) List(ctx context.Context, active string) ([]dto.PackageResponse, error) {
	packages, err := s.repo.List(ctx, active)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PackageResponse, 0, len(packages))
	for i := range packages {
		out = append(out, *packageToResponse(&packages[i]))
	}
	return out, nil
}

func (s *packageService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: paquete %s", ErrNotFound, id)
		}
		return err
	}
	n, err := s.repo.CountEvents(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return fmt.Errorf("%w: el paquete tiene %d eventos asociados", ErrValidation, n)
	}
	return s.repo.Delete(ctx, id)
}

func packageToResponse(p *model.Package) *dto.PackageResponse {
	resp := &dto.PackageResponse{
		ID:          p.ID.String(),
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		MaxAge:      p.MaxAge,
		IsActive:    p.IsActive,
		Games:       make([]dto.PackageGameResponse, 0, len(p.Games)),
	}
	for i := range p.Games {
		pg := &p.Games[i]
		item := dto.PackageGameResponse{
			GameID:   pg.GameID.String(),
			Quantity: pg.Quantity,
		}
		if pg.Game != nil {
			item.Game = gameToResponse(pg.Game)
		}
		resp.Games = append(resp.Games, item)
	}
	return resp
}
