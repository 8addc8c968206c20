package repositories

import (
	"context"

	"github.com/bsgti/vendor_budget_app/internal/core/domain"
)

// BudgetReader defines read operations for budget data.
type BudgetReader interface {
	// ListBudgets retrieves budgets joined with vendor/service names,
	// optionally limited to one year, ordered year desc then vendor name.
	ListBudgets(ctx context.Context, year *int) ([]domain.BudgetWithRefs, error)

	// FindBudgetByID retrieves one budget row.
	FindBudgetByID(ctx context.Context, budgetID int64) (*domain.Budget, error)

	// GetBudgetComparison retrieves the per-budget actual figures for a year,
	// ordered by vendor name.
	GetBudgetComparison(ctx context.Context, year int) ([]domain.BudgetComparisonRow, error)

	// ListYears retrieves the distinct years present in budgets or transaction
	// periods, descending.
	ListYears(ctx context.Context) ([]int, error)
}

// BudgetWriter defines write operations for budget data.
type BudgetWriter interface {
	// UpsertBudget inserts the budget or, if a row already exists for the same
	// (year, vendor_id, service_id) key, updates its amount and description.
	// It reports whether a new row was created.
	UpsertBudget(ctx context.Context, budget domain.Budget) (*domain.Budget, bool, error)

	// UpdateBudget persists the full budget row.
	UpdateBudget(ctx context.Context, budget domain.Budget) error

	// DeleteBudget removes a budget row.
	DeleteBudget(ctx context.Context, budgetID int64) error
}

// BudgetRepositoryFacade combines all budget repository interfaces.
type BudgetRepositoryFacade interface {
	BudgetReader
	BudgetWriter
}
