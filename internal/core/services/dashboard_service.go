package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/bsgti/vendor_budget_app/internal/core/domain"
	portsrepo "github.com/bsgti/vendor_budget_app/internal/core/ports/repositories"
	portssvc "github.com/bsgti/vendor_budget_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// dueSoonWindowDays is the fixed look-ahead for the dashboard due-soon
// bucket. The notification deriver uses the configurable reminder setting
// instead.
const dueSoonWindowDays = 7

// monthNames holds the Indonesian short month names used on the trend chart.
var monthNames = []string{"Jan", "Feb", "Mar", "Apr", "Mei", "Jun", "Jul", "Agu", "Sep", "Okt", "Nov", "Des"}

var twelve = decimal.NewFromInt(12)

// dashboardService implements the DashboardSvc interface
type dashboardService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
	txnRepo       portsrepo.TransactionRepositoryFacade
	now           func() time.Time
}

// DashboardServiceOption is a functional option for configuring the dashboard service
type DashboardServiceOption func(*dashboardService)

// WithDashboardClock overrides the wall clock, used by tests.
func WithDashboardClock(now func() time.Time) DashboardServiceOption {
	return func(s *dashboardService) {
		s.now = now
	}
}

// NewDashboardService creates a new dashboard service with the provided options
func NewDashboardService(reportingRepo portsrepo.ReportingRepository, txnRepo portsrepo.TransactionRepositoryFacade, options ...DashboardServiceOption) portssvc.DashboardSvc {
	svc := &dashboardService{
		reportingRepo: reportingRepo,
		txnRepo:       txnRepo,
		now:           time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.DashboardSvc = (*dashboardService)(nil)

func (s *dashboardService) today() time.Time {
	now := s.now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

// GetSummary computes the year's headline figures. Remaining and utilization
// are measured against paid realization; pending money is not yet spent.
func (s *dashboardService) GetSummary(ctx context.Context, year int) (*domain.DashboardSummary, error) {
	totalBudget, err := s.reportingRepo.GetYearBudgetTotal(ctx, year)
	if err != nil {
		s.LogError(ctx, err, "Failed to get year budget total", slog.Int("year", year))
		return nil, fmt.Errorf("failed to get year budget total: %w", err)
	}

	paid, err := s.reportingRepo.GetPaidTotal(ctx, year)
	if err != nil {
		s.LogError(ctx, err, "Failed to get paid total", slog.Int("year", year))
		return nil, fmt.Errorf("failed to get paid total: %w", err)
	}

	pending, err := s.reportingRepo.GetPendingBucket(ctx, year)
	if err != nil {
		s.LogError(ctx, err, "Failed to get pending bucket", slog.Int("year", year))
		return nil, fmt.Errorf("failed to get pending bucket: %w", err)
	}

	today := s.today()
	overdue, err := s.reportingRepo.GetOverdueBucket(ctx, today)
	if err != nil {
		s.LogError(ctx, err, "Failed to get overdue bucket", slog.Int("year", year))
		return nil, fmt.Errorf("failed to get overdue bucket: %w", err)
	}

	dueSoon, err := s.reportingRepo.GetDueSoonBucket(ctx, today, today.AddDate(0, 0, dueSoonWindowDays))
	if err != nil {
		s.LogError(ctx, err, "Failed to get due soon bucket", slog.Int("year", year))
		return nil, fmt.Errorf("failed to get due soon bucket: %w", err)
	}

	return &domain.DashboardSummary{
		Year:               year,
		TotalBudget:        totalBudget,
		TotalRealization:   paid,
		Remaining:          totalBudget.Sub(paid),
		UtilizationPercent: domain.PercentOf(paid, totalBudget),
		Pending:            pending,
		Overdue:            overdue,
		DueSoon:            dueSoon,
	}, nil
}

// GetMonthlyTrend always returns twelve buckets, January through December.
// Months without transactions carry zeroes so the chart axis stays complete.
func (s *dashboardService) GetMonthlyTrend(ctx context.Context, year int) (*domain.MonthlyTrend, error) {
	rows, err := s.reportingRepo.GetMonthlyTotals(ctx, year)
	if err != nil {
		s.LogError(ctx, err, "Failed to get monthly totals", slog.Int("year", year))
		return nil, fmt.Errorf("failed to get monthly totals: %w", err)
	}

	byPeriod := make(map[string]domain.MonthlyPeriodTotals, len(rows))
	for _, row := range rows {
		byPeriod[row.Period] = row
	}

	months := make([]domain.MonthBucket, 0, 12)
	for month := 1; month <= 12; month++ {
		period := fmt.Sprintf("%04d-%02d", year, month)
		bucket := domain.MonthBucket{
			Period:    period,
			Month:     month,
			MonthName: monthNames[month-1],
			Paid:      decimal.Zero,
			Pending:   decimal.Zero,
			Total:     decimal.Zero,
		}
		if row, ok := byPeriod[period]; ok {
			bucket.Paid = row.Paid
			bucket.Pending = row.Pending
			bucket.Total = row.Total
			bucket.TransactionCount = row.TransactionCount
		}
		months = append(months, bucket)
	}

	totalBudget, err := s.reportingRepo.GetYearBudgetTotal(ctx, year)
	if err != nil {
		s.LogError(ctx, err, "Failed to get year budget total", slog.Int("year", year))
		return nil, fmt.Errorf("failed to get year budget total: %w", err)
	}

	return &domain.MonthlyTrend{
		Year:          year,
		Months:        months,
		MonthlyBudget: totalBudget.Div(twelve),
	}, nil
}

// GetVendorDistribution shares out the year's spend across vendors. Vendors
// without any transactions in the year do not appear.
func (s *dashboardService) GetVendorDistribution(ctx context.Context, year int) (*domain.VendorDistribution, error) {
	rows, err := s.reportingRepo.GetVendorDistribution(ctx, year)
	if err != nil {
		s.LogError(ctx, err, "Failed to get vendor distribution", slog.Int("year", year))
		return nil, fmt.Errorf("failed to get vendor distribution: %w", err)
	}
	if rows == nil {
		rows = []domain.VendorDistributionRow{}
	}

	grandTotal := decimal.Zero
	for _, row := range rows {
		grandTotal = grandTotal.Add(row.Total)
	}
	for i := range rows {
		rows[i].Percentage = domain.PercentOf(rows[i].Total, grandTotal)
	}

	return &domain.VendorDistribution{
		Year:         year,
		Distribution: rows,
		GrandTotal:   grandTotal,
	}, nil
}

func (s *dashboardService) GetBudgetVsActual(ctx context.Context, year int) ([]domain.VendorBudgetActualRow, error) {
	rows, err := s.reportingRepo.GetVendorBudgetActual(ctx, year)
	if err != nil {
		s.LogError(ctx, err, "Failed to get budget vs actual", slog.Int("year", year))
		return nil, fmt.Errorf("failed to get budget vs actual: %w", err)
	}
	if rows == nil {
		return []domain.VendorBudgetActualRow{}, nil
	}

	for i := range rows {
		rows[i].Remaining = rows[i].Budget.Sub(rows[i].Actual)
		rows[i].UtilizationPercent = domain.PercentOf(rows[i].Actual, rows[i].Budget)
		rows[i].IsOverBudget = rows[i].Actual.GreaterThan(rows[i].Budget)
	}
	return rows, nil
}

func (s *dashboardService) ListRecentTransactions(ctx context.Context, limit int) ([]domain.TransactionWithRefs, error) {
	if limit < 1 {
		limit = vendorRecentTxnLimit
	}
	txns, err := s.txnRepo.ListRecentTransactions(ctx, limit)
	if err != nil {
		s.LogError(ctx, err, "Failed to list recent transactions")
		return nil, fmt.Errorf("failed to list recent transactions: %w", err)
	}
	if txns == nil {
		return []domain.TransactionWithRefs{}, nil
	}
	return txns, nil
}
