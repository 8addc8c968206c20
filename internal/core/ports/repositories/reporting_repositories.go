package repositories

import (
	"context"
	"time"

	"github.com/bsgti/vendor_budget_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportingRepository provides the aggregation queries behind the dashboard
// and the notification deriver. All sums are computed in SQL; derived fields
// (percentages, remaining) are computed by the services on top.
type ReportingRepository interface {
	// GetYearBudgetTotal sums budget_amount over all budgets for the year.
	GetYearBudgetTotal(ctx context.Context, year int) (decimal.Decimal, error)

	// GetPaidTotal sums total over paid transactions whose period is in the year.
	GetPaidTotal(ctx context.Context, year int) (decimal.Decimal, error)

	// GetPendingBucket sums and counts open (pending/approved) transactions in the year.
	GetPendingBucket(ctx context.Context, year int) (domain.StatusBucket, error)

	// GetOverdueBucket sums and counts transactions that are overdue as of the
	// given date: status overdue, or still open with a due date before asOf.
	GetOverdueBucket(ctx context.Context, asOf time.Time) (domain.StatusBucket, error)

	// GetDueSoonBucket sums and counts open transactions due within [from, to].
	GetDueSoonBucket(ctx context.Context, from, to time.Time) (domain.StatusBucket, error)

	// GetMonthlyTotals retrieves per-period paid/pending/total sums for the
	// year. Only periods with transactions appear; callers fabricate the
	// missing months.
	GetMonthlyTotals(ctx context.Context, year int) ([]domain.MonthlyPeriodTotals, error)

	// GetVendorDistribution retrieves per-vendor totals for active vendors
	// with a nonzero total in the year, ordered by total descending.
	GetVendorDistribution(ctx context.Context, year int) ([]domain.VendorDistributionRow, error)

	// GetVendorBudgetActual retrieves per-vendor budget and realization for
	// active vendors with a budget or spend in the year, ordered by budget
	// descending.
	GetVendorBudgetActual(ctx context.Context, year int) ([]domain.VendorBudgetActualRow, error)

	// GetVendorBudgetUsage retrieves budget and realization for every active
	// vendor with a positive budget in the year, regardless of usage level.
	GetVendorBudgetUsage(ctx context.Context, year int) ([]domain.VendorBudgetUsage, error)
}
