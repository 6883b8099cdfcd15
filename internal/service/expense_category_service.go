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

type ExpenseCategoryService interface {
	Create(ctx context.Context, req dto.CreateExpenseCategoryRequest) (*dto.ExpenseCategoryResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateExpenseCategoryRequest) (*dto.ExpenseCategoryResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.ExpenseCategoryResponse, error)
	List(ctx context.Context) ([]dto.ExpenseCategoryResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type expenseCategoryService struct {
	repo repository.ExpenseCategoryRepository
}

func NewExpenseCategoryService(repo repository.ExpenseCategoryRepository) ExpenseCategoryService {
	return &expenseCategoryService{repo: repo}
}

func (s *expenseCategoryService) Create(ctx context.Context, req dto.CreateExpenseCategoryRequest) (*dto.ExpenseCategoryResponse, error) {
	if _, err := s.repo.FindByName(ctx, req.Name); err == nil {
		return nil, fmt.Errorf("%w: ya existe una categoría llamada %q", ErrValidation, req.Name)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	c := &model.ExpenseCategory{
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
		IsActive:    true,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return expenseCategoryToResponse(c), nil
}

func (s *expenseCategoryService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateExpenseCategoryRequest) (*dto.ExpenseCategoryResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: categoría %s", ErrNotFound, id)
		}
		return nil, err
	}

	if req.Name != nil && *req.Name != c.Name {
		if _, err := s.repo.FindByName(ctx, *req.Name); err == nil {
			return nil, fmt.Errorf("%w: ya existe una categoría llamada %q", ErrValidation, *req.Name)
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		c.Name = *req.Name
	}
	if req.Description != nil {
		c.Description = req.Description
	}
	if req.Color != nil {
		c.Color = req.Color
	}
	if req.IsActive != nil {
		c.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return expenseCategoryToResponse(c), nil
}

func (s *expenseCategoryService) Get(ctx context.Context, id uuid.UUID) (*dto.ExpenseCategoryResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: categoría %s", ErrNotFound, id)
		}
		return nil, err
	}
	return expenseCategoryToResponse(c), nil
}

func (s *expenseCategoryService) List(ctx context.Context) ([]dto.ExpenseCategoryResponse, error) {
	cats, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ExpenseCategoryResponse, 0, len(cats))
	for i := range cats {
		out = append(out, *expenseCategoryToResponse(&cats[i]))
	}
	return out, nil
}

func (s *expenseCategoryService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: categoría %s", ErrNotFound, id)
		}
		return err
	}
	n, err := s.repo.CountExpenses(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return fmt.Errorf("%w: la categoría tiene %d gastos registrados", ErrValidation, n)
	}
	return s.repo.Delete(ctx, id)
}

func expenseCategoryToResponse(c *model.ExpenseCategory) *dto.ExpenseCategoryResponse {
	return &dto.ExpenseCategoryResponse{
		ID:          c.ID.String(),
		Name:        c.Name,
		Description: c.Description,
		Color:       c.Color,
		IsActive:    c.IsActive,
	}
}
