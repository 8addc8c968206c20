package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/bsgti/vendor_budget_app/internal/apperrors"
	"github.com/bsgti/vendor_budget_app/internal/core/domain"
	portsrepo "github.com/bsgti/vendor_budget_app/internal/core/ports/repositories"
	portssvc "github.com/bsgti/vendor_budget_app/internal/core/ports/services"
	"github.com/bsgti/vendor_budget_app/internal/dto"
	"github.com/shopspring/decimal"
)

// budgetService implements the BudgetSvcFacade interface
type budgetService struct {
	BaseService
	budgetRepo  portsrepo.BudgetRepositoryFacade
	vendorRepo  portsrepo.VendorRepositoryFacade
	serviceRepo portsrepo.ServiceRepositoryFacade
}

// NewBudgetService creates a new budget service
func NewBudgetService(budgetRepo portsrepo.BudgetRepositoryFacade, vendorRepo portsrepo.VendorRepositoryFacade, serviceRepo portsrepo.ServiceRepositoryFacade) portssvc.BudgetSvcFacade {
	return &budgetService{
		budgetRepo:  budgetRepo,
		vendorRepo:  vendorRepo,
		serviceRepo: serviceRepo,
	}
}

var _ portssvc.BudgetSvcFacade = (*budgetService)(nil)

func (s *budgetService) ListBudgets(ctx context.Context, year *int) ([]domain.BudgetWithRefs, error) {
	budgets, err := s.budgetRepo.ListBudgets(ctx, year)
	if err != nil {
		s.LogError(ctx, err, "Failed to list budgets")
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}
	if budgets == nil {
		return []domain.BudgetWithRefs{}, nil
	}
	return budgets, nil
}

func (s *budgetService) GetYearSummary(ctx context.Context, year int) (*dto.BudgetYearSummaryResponse, error) {
	budgets, err := s.ListBudgets(ctx, &year)
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	for _, b := range budgets {
		total = total.Add(b.BudgetAmount)
	}

	return &dto.BudgetYearSummaryResponse{
		Year:        year,
		Budgets:     budgets,
		TotalBudget: total,
	}, nil
}

// GetComparison annotates each budget row with remaining and utilization and
// rolls the rows up into a portfolio summary. The summary percentage is
// recomputed from the summed totals rather than averaged from the rows.
func (s *budgetService) GetComparison(ctx context.Context, year int) (*domain.BudgetComparison, error) {
	rows, err := s.budgetRepo.GetBudgetComparison(ctx, year)
	if err != nil {
		s.LogError(ctx, err, "Failed to get budget comparison", slog.Int("year", year))
		return nil, fmt.Errorf("failed to get budget comparison: %w", err)
	}
	if rows == nil {
		rows = []domain.BudgetComparisonRow{}
	}

	summary := domain.BudgetComparisonSummary{
		TotalBudget:  decimal.Zero,
		TotalPaid:    decimal.Zero,
		TotalPending: decimal.Zero,
		TotalActual:  decimal.Zero,
	}
	for i := range rows {
		rows[i].Remaining = rows[i].BudgetAmount.Sub(rows[i].ActualTotal)
		rows[i].UtilizationPercent = domain.PercentOf(rows[i].ActualTotal, rows[i].BudgetAmount)

		summary.TotalBudget = summary.TotalBudget.Add(rows[i].BudgetAmount)
		summary.TotalPaid = summary.TotalPaid.Add(rows[i].ActualPaid)
		summary.TotalPending = summary.TotalPending.Add(rows[i].ActualPending)
		summary.TotalActual = summary.TotalActual.Add(rows[i].ActualTotal)
	}
	summary.Remaining = summary.TotalBudget.Sub(summary.TotalActual)
	summary.UtilizationPercent = domain.PercentOf(summary.TotalActual, summary.TotalBudget)

	return &domain.BudgetComparison{
		Year:       year,
		Comparison: rows,
		Summary:    summary,
	}, nil
}

func (s *budgetService) ListYears(ctx context.Context) ([]int, error) {
	years, err := s.budgetRepo.ListYears(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list budget years")
		return nil, fmt.Errorf("failed to list budget years: %w", err)
	}
	if years == nil {
		return []int{}, nil
	}
	return years, nil
}

// UpsertBudget creates the budget row or, when one already exists for the
// same (year, vendor, service) key, overwrites its amount and description.
func (s *budgetService) UpsertBudget(ctx context.Context, req dto.UpsertBudgetRequest) (*domain.Budget, bool, error) {
	if req.BudgetAmount.IsNegative() {
		return nil, false, fmt.Errorf("%w: budget_amount must not be negative", apperrors.ErrValidation)
	}
	if req.ServiceID != nil && req.VendorID == nil {
		return nil, false, fmt.Errorf("%w: a service budget requires a vendor", apperrors.ErrValidation)
	}
	if req.VendorID != nil {
		exists, err := s.vendorRepo.VendorExists(ctx, *req.VendorID)
		if err != nil {
			return nil, false, err
		}
		if !exists {
			return nil, false, fmt.Errorf("%w: vendor %d does not exist", apperrors.ErrValidation, *req.VendorID)
		}
	}
	if req.ServiceID != nil {
		belongs, err := s.serviceRepo.ServiceBelongsToVendor(ctx, *req.ServiceID, *req.VendorID)
		if err != nil {
			return nil, false, err
		}
		if !belongs {
			return nil, false, fmt.Errorf("%w: service %d does not belong to vendor %d", apperrors.ErrValidation, *req.ServiceID, *req.VendorID)
		}
	}

	now := time.Now()
	budget := domain.Budget{
		Year:         req.Year,
		VendorID:     req.VendorID,
		ServiceID:    req.ServiceID,
		BudgetAmount: req.BudgetAmount,
		Description:  req.Description,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	saved, created, err := s.budgetRepo.UpsertBudget(ctx, budget)
	if err != nil {
		s.LogError(ctx, err, "Failed to upsert budget", slog.Int("year", req.Year))
		return nil, false, err
	}

	s.LogInfo(ctx, "Budget upserted", slog.Int64("budget_id", saved.BudgetID), slog.Int("year", saved.Year), slog.Bool("created", created))
	return saved, created, nil
}

func (s *budgetService) UpdateBudget(ctx context.Context, budgetID int64, req dto.UpdateBudgetRequest) (*domain.Budget, error) {
	budget, err := s.budgetRepo.FindBudgetByID(ctx, budgetID)
	if err != nil {
		return nil, err
	}

	if req.BudgetAmount != nil {
		if req.BudgetAmount.IsNegative() {
			return nil, fmt.Errorf("%w: budget_amount must not be negative", apperrors.ErrValidation)
		}
		budget.BudgetAmount = *req.BudgetAmount
	}
	if req.Description != nil {
		budget.Description = *req.Description
	}
	budget.UpdatedAt = time.Now()

	if err := s.budgetRepo.UpdateBudget(ctx, *budget); err != nil {
		s.LogError(ctx, err, "Failed to update budget", slog.Int64("budget_id", budgetID))
		return nil, err
	}

	return budget, nil
}

func (s *budgetService) DeleteBudget(ctx context.Context, budgetID int64) error {
	if _, err := s.budgetRepo.FindBudgetByID(ctx, budgetID); err != nil {
		return err
	}
	if err := s.budgetRepo.DeleteBudget(ctx, budgetID); err != nil {
		s.LogError(ctx, err, "Failed to delete budget", slog.Int64("budget_id", budgetID))
		return err
	}
	s.LogInfo(ctx, "Budget deleted", slog.Int64("budget_id", budgetID))
	return nil
}
