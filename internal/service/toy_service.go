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

type ToyTypeService interface {
	Create(ctx context.Context, req dto.CreateToyTypeRequest) (*dto.ToyTypeResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateToyTypeRequest) (*dto.ToyTypeResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.ToyTypeResponse, error)
	List(ctx context.Context, active string) ([]dto.ToyTypeResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type toyTypeService struct {
	repo repository.ToyTypeRepository
}

func NewToyTypeService(repo repository.ToyTypeRepository) ToyTypeService {
	return &toyTypeService{repo: repo}
}

func (s *toyTypeService) Create(ctx context.Context, req dto.CreateToyTypeRequest) (*dto.ToyTypeResponse, error) {
	if _, err := s.repo.FindByName(ctx, req.Name); err == nil {
		return nil, fmt.Errorf("%w: ya existe un tipo llamado %q", ErrValidation, req.Name)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	t := &model.ToyType{
		Name:        req.Name,
		Description: req.Description,
		IsActive:    true,
	}
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	return toyTypeToResponse(t), nil
}

func (s *toyTypeService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateToyTypeRequest) (*dto.ToyTypeResponse, error) {
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: tipo de juguete %s", ErrNotFound, id)
		}
		return nil, err
	}

	if req.Name != nil && *req.Name != t.Name {
		if _, err := s.repo.FindByName(ctx, *req.Name); err == nil {
			return nil, fmt.Errorf("%w: ya existe un tipo llamado %q", ErrValidation, *req.Name)
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		t.Name = *req.Name
	}
	if req.Description != nil {
		t.Description = req.Description
	}
	if req.IsActive != nil {
		t.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, t); err != nil {
		return nil, err
	}
	return toyTypeToResponse(t), nil
}

func (s *toyTypeService) Get(ctx context.Context, id uuid.UUID) (*dto.ToyTypeResponse, error) {
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: tipo de juguete %s", ErrNotFound, id)
		}
		return nil, err
	}
	return toyTypeToResponse(t), nil
}

func (s *toyTypeService) List(ctx context.Context, active string) ([]dto.ToyTypeResponse, error) {
	types, err := s.repo.List(ctx, active)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ToyTypeResponse, 0, len(types))
	for i := range types {
		out = append(out, *toyTypeToResponse(&types[i]))
	}
	return out, nil
}

func (s *toyTypeService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: tipo de juguete %s", ErrNotFound, id)
		}
		return err
	}
	n, err := s.repo.CountGames(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return fmt.Errorf("%w: el tipo tiene %d juegos asociados", ErrValidation, n)
	}
	return s.repo.Delete(ctx, id)
}

func toyTypeToResponse(t *model.ToyType) *dto.ToyTypeResponse {
	return &dto.ToyTypeResponse{
		ID:          t.ID.String(),
		Name:        t.Name,
		Description: t.Description,
		IsActive:    t.IsActive,
	}
}

type ToyClauseService interface {
	Create(ctx context.Context, req dto.CreateToyClauseRequest) (*dto.ToyClauseResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateToyClauseRequest) (*dto.ToyClauseResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.ToyClauseResponse, error)
	List(ctx context.Context, active string) ([]dto.ToyClauseResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type toyClauseService struct {
	repo repository.ToyClauseRepository
}

func NewToyClauseService(repo repository.ToyClauseRepository) ToyClauseService {
	return &toyClauseService{repo: repo}
}

func (s *toyClauseService) Create(ctx context.Context, req dto.CreateToyClauseRequest) (*dto.ToyClauseResponse, error) {
	c := &model.ToyClause{
		Name:        req.Name,
		Description: req.Description,
		IsActive:    true,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return toyClauseToResponse(c), nil
}

func (s *toyClauseService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateToyClauseRequest) (*dto.ToyClauseResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: cláusula %s", ErrNotFound, id)
		}
		return nil, err
	}

	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.Description != nil {
		c.Description = req.Description
	}
	if req.IsActive != nil {
		c.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return toyClauseToResponse(c), nil
}

func (s *toyClauseService) Get(ctx context.Context, id uuid.UUID) (*dto.ToyClauseResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: cláusula %s", ErrNotFound, id)
		}
		return nil, err
	}
	return toyClauseToResponse(c), nil
}

func (s *toyClauseService) List(ctx context.Context, active string) ([]dto.ToyClauseResponse, error) {
	clauses, err := s.repo.List(ctx, active)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ToyClauseResponse, 0, len(clauses))
	for i := range clauses {
		out = append(out, *toyClauseToResponse(&clauses[i]))
	}
	return out, nil
}

func (s *toyClauseService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: cláusula %s", ErrNotFound, id)
		}
		return err
	}
	return s.repo.Delete(ctx, id)
}

func toyClauseToResponse(c *model.ToyClause) *dto.ToyClauseResponse {
	return &dto.ToyClauseResponse{
		ID:          c.ID.String(),
		Name:        c.Name,
		Description: c.Description,
		IsActive:    c.IsActive,
	}
}
