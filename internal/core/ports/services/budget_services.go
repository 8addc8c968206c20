package services

import (
	"context"

	"github.com/bsgti/vendor_budget_app/internal/core/domain"
	"github.com/bsgti/vendor_budget_app/internal/dto"
)

// BudgetReaderSvc defines read operations for budgets.
type BudgetReaderSvc interface {
	ListBudgets(ctx context.Context, year *int) ([]domain.BudgetWithRefs, error)

	// GetYearSummary retrieves a year's budgets with their grand total.
	GetYearSummary(ctx context.Context, year int) (*dto.BudgetYearSummaryResponse, error)

	// GetComparison computes budget-vs-actual rows and the portfolio summary
	// for a year.
	GetComparison(ctx context.Context, year int) (*domain.BudgetComparison, error)

	// ListYears retrieves every year with budgets or transactions, descending.
	ListYears(ctx context.Context) ([]int, error)
}

// BudgetWriterSvc defines write operations for budgets.
type BudgetWriterSvc interface {
	// UpsertBudget creates the budget or updates the existing row for the same
	// (year, vendor, service) key. The flag reports whether a row was created.
	UpsertBudget(ctx context.Context, req dto.UpsertBudgetRequest) (*domain.Budget, bool, error)

	UpdateBudget(ctx context.Context, budgetID int64, req dto.UpdateBudgetRequest) (*domain.Budget, error)
	DeleteBudget(ctx context.Context, budgetID int64) error
}

// BudgetSvcFacade combines all budget service interfaces.
type BudgetSvcFacade interface {
	BudgetReaderSvc
	BudgetWriterSvc
}
