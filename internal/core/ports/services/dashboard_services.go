package services

import (
	"context"

	"github.com/bsgti/vendor_budget_app/internal/core/domain"
)

// DashboardSvc aggregates transaction and budget data for the dashboard.
type DashboardSvc interface {
	// GetSummary computes the headline figures for a year: budget, paid,
	// remaining, utilization and the pending/overdue/due-soon buckets.
	GetSummary(ctx context.Context, year int) (*domain.DashboardSummary, error)

	// GetMonthlyTrend returns twelve month buckets for a year with actual
	// spend against the evenly split monthly budget.
	GetMonthlyTrend(ctx context.Context, year int) (*domain.MonthlyTrend, error)

	// GetVendorDistribution returns per-vendor spend shares for a year,
	// ordered by total descending. Vendors without spend are omitted.
	GetVendorDistribution(ctx context.Context, year int) (*domain.VendorDistribution, error)

	// GetBudgetVsActual returns per-vendor budget against actual spend for a
	// year, ordered by budget descending.
	GetBudgetVsActual(ctx context.Context, year int) ([]domain.VendorBudgetActualRow, error)

	// ListRecentTransactions returns the latest transactions for the
	// dashboard activity feed.
	ListRecentTransactions(ctx context.Context, limit int) ([]domain.TransactionWithRefs, error)
}
