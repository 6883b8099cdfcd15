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
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ExpenseService interface {
	Create(ctx context.Context, req dto.CreateExpenseRequest) (*dto.ExpenseResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateExpenseRequest) (*dto.ExpenseResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.ExpenseResponse, error)
	List(ctx context.Context, filter dto.ExpenseFilter) ([]dto.ExpenseResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error

	MarkPaid(ctx context.Context, id uuid.UUID) (*dto.ExpenseResponse, error)
	Summary(ctx context.Context, dateFrom, dateTo string) (*dto.ExpenseSummaryResponse, error)
}

type expenseService struct {
	repo         repository.ExpenseRepository
	categoryRepo repository.ExpenseCategoryRepository
}

func NewExpenseService(repo repository.ExpenseRepository, categoryRepo repository.ExpenseCategoryRepository) ExpenseService {
	return &expenseService{repo: repo, categoryRepo: categoryRepo}
}

func (s *expenseService) Create(ctx context.Context, req dto.CreateExpenseRequest) (*dto.ExpenseResponse, error) {
	categoryID, err := uuid.Parse(req.ExpenseCategoryID)
	if err != nil {
		return nil, fmt.Errorf("%w: expense_category_id inválido", ErrValidation)
	}
	if _, err := s.categoryRepo.FindByID(ctx, categoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: categoría %s", ErrNotFound, req.ExpenseCategoryID)
		}
		return nil, err
	}
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: el monto debe ser mayor a cero", ErrValidation)
	}
	expenseDate, err := time.Parse("2006-01-02", req.ExpenseDate)
	if err != nil {
		return nil, fmt.Errorf("%w: expense_date inválida", ErrValidation)
	}

	e := &model.Expense{
		Concept:           req.Concept,
		Description:       req.Description,
		Amount:            req.Amount,
		ExpenseCategoryID: categoryID,
		Status:            model.ExpenseStatusPending,
		ExpenseDate:       expenseDate,
	}
	if req.EventID != nil {
		eid, err := uuid.Parse(*req.EventID)
		if err != nil {
			return nil, fmt.Errorf("%w: event_id inválido", ErrValidation)
		}
		e.EventID = &eid
	}
	if req.Status != "" {
		e.Status = req.Status
	}
	if req.PaymentDate != nil {
		d, err := time.Parse("2006-01-02", *req.PaymentDate)
		if err != nil {
			return nil, fmt.Errorf("%w: payment_date inválida", ErrValidation)
		}
		e.PaymentDate = &d
	}

	if err := s.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return expenseToResponse(e), nil
}

func (s *expenseService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateExpenseRequest) (*dto.ExpenseResponse, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: gasto %s", ErrNotFound, id)
		}
		return nil, err
	}

	// Companion expenses belong to the usage sync; editing amounts or
	// status here would silently diverge from the usage row.
	if e.UsageID != nil {
		return nil, fmt.Errorf("%w: el gasto pertenece a un uso de vehículo, edítelo desde el uso", ErrValidation)
	}

	if req.Concept != nil {
		e.Concept = *req.Concept
	}
	if req.Description != nil {
		e.Description = req.Description
	}
	if req.Amount != nil {
		if req.Amount.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: el monto debe ser mayor a cero", ErrValidation)
		}
		e.Amount = *req.Amount
	}
	if req.ExpenseCategoryID != nil {
		cid, err := uuid.Parse(*req.ExpenseCategoryID)
		if err != nil {
			return nil, fmt.Errorf("%w: expense_category_id inválido", ErrValidation)
		}
		if _, err := s.categoryRepo.FindByID(ctx, cid); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: categoría %s", ErrNotFound, *req.ExpenseCategoryID)
			}
			return nil, err
		}
		e.ExpenseCategoryID = cid
		e.Category = nil
	}
	if req.EventID != nil {
		eid, err := uuid.Parse(*req.EventID)
		if err != nil {
			return nil, fmt.Errorf("%w: event_id inválido", ErrValidation)
		}
		e.EventID = &eid
	}
	if req.Status != nil {
		e.Status = *req.Status
		if e.Status == model.ExpenseStatusPending {
			e.PaymentDate = nil
		}
	}
	if req.ExpenseDate != nil {
		d, err := time.Parse("2006-01-02", *req.ExpenseDate)
		if err != nil {
			return nil, fmt.Errorf("%w: expense_date inválida", ErrValidation)
		}
		e.ExpenseDate = d
	}
	if req.PaymentDate != nil {
		d, err := time.Parse("2006-01-02", *req.PaymentDate)
		if err != nil {
			return nil, fmt.Errorf("%w: payment_date inválida", ErrValidation)
		}
		e.PaymentDate = &d
	}

	if err := s.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	return expenseToResponse(e), nil
}

func (s *expenseService) Get(ctx context.Context, id uuid.UUID) (*dto.ExpenseResponse, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: gasto %s", ErrNotFound, id)
		}
		return nil, err
	}
	return expenseToResponse(e), nil
}

func (s *expenseService) List(ctx context.Context, filter dto.ExpenseFilter) ([]dto.ExpenseResponse, error) {
	expenses, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ExpenseResponse, 0, len(expenses))
	for i := range expenses {
		out = append(out, *expenseToResponse(&expenses[i]))
	}
	return out, nil
}

func (s *expenseService) Delete(ctx context.Context, id uuid.UUID) error {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: gasto %s", ErrNotFound, id)
		}
		return err
	}
	if e.UsageID != nil {
		return fmt.Errorf("%w: el gasto pertenece a un uso de vehículo, elimínelo desde el uso", ErrValidation)
	}
	return s.repo.Delete(ctx, id)
}

func (s *expenseService) MarkPaid(ctx context.Context, id uuid.UUID) (*dto.ExpenseResponse, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: gasto %s", ErrNotFound, id)
		}
		return nil, err
	}
	if e.UsageID != nil {
		return nil, fmt.Errorf("%w: el gasto pertenece a un uso de vehículo, márquelo pagado desde el uso", ErrValidation)
	}
	if err := s.repo.MarkPaid(ctx, id, time.Now()); err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

func (s *expenseService) Summary(ctx context.Context, dateFrom, dateTo string) (*dto.ExpenseSummaryResponse, error) {
	rows, err := s.repo.Summary(ctx, dateFrom, dateTo)
	if err != nil {
		return nil, err
	}

	summary := &dto.ExpenseSummaryResponse{
		Total:      decimal.Zero,
		Pending:    decimal.Zero,
		Paid:       decimal.Zero,
		ByCategory: []dto.ExpenseCategorySummary{},
	}
	byCategory := map[uuid.UUID]int{}

	for _, row := range rows {
		summary.Total = summary.Total.Add(row.Total)
		switch row.Status {
		case model.ExpenseStatusPending:
			summary.Pending = summary.Pending.Add(row.Total)
		case model.ExpenseStatusPaid:
			summary.Paid = summary.Paid.Add(row.Total)
		}

		idx, seen := byCategory[row.CategoryID]
		if !seen {
			byCategory[row.CategoryID] = len(summary.ByCategory)
			summary.ByCategory = append(summary.ByCategory, dto.ExpenseCategorySummary{
				CategoryID:   row.CategoryID.String(),
				CategoryName: row.CategoryName,
				Total:        row.Total,
			})
			continue
		}
		summary.ByCategory[idx].Total = summary.ByCategory[idx].Total.Add(row.Total)
	}
	return summary, nil
}

func expenseToResponse(e *model.Expense) *dto.ExpenseResponse {
	resp := &dto.ExpenseResponse{
		ID:                e.ID.String(),
		Concept:           e.Concept,
		Description:       e.Description,
		Amount:            e.Amount,
		ExpenseCategoryID: e.ExpenseCategoryID.String(),
		Status:            e.Status,
		ExpenseDate:       e.ExpenseDate.Format("2006-01-02"),
	}
	if e.EventID != nil {
		eid := e.EventID.String()
		resp.EventID = &eid
	}
	if e.UsageID != nil {
		uid := e.UsageID.String()
		resp.UsageID = &uid
	}
	if e.PaymentDate != nil {
		d := e.PaymentDate.Format("2006-01-02")
		resp.PaymentDate = &d
	}
	if e.Category != nil {
		resp.Category = expenseCategoryToResponse(e.Category)
	}
	return resp
}
