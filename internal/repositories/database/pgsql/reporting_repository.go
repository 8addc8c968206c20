package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/bsgti/vendor_budget_app/internal/core/domain"
	portsrepo "github.com/bsgti/vendor_budget_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// PgxReportingRepository runs the aggregation queries behind the dashboard
// and the notification deriver. Sums happen in SQL; derived percentages are
// computed by the services on top.
type PgxReportingRepository struct {
	BaseRepository
}

// newReportingRepository creates a new repository for aggregation queries.
func newReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &PgxReportingRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

func yearPattern(year int) string {
	return fmt.Sprintf("%d-%%", year)
}

// GetYearBudgetTotal sums budget_amount over all budgets for the year.
func (r *PgxReportingRepository) GetYearBudgetTotal(ctx context.Context, year int) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.Pool.QueryRow(ctx, `SELECT COALESCE(SUM(budget_amount), 0) FROM budgets WHERE year = $1;`, year).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum budgets for %d: %w", year, err)
	}
	return total, nil
}

// GetPaidTotal sums total over paid transactions whose period is in the year.
func (r *PgxReportingRepository) GetPaidTotal(ctx context.Context, year int) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.Pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(total), 0) FROM transactions WHERE status = 'paid' AND period LIKE $1;
	`, yearPattern(year)).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum paid transactions for %d: %w", year, err)
	}
	return total, nil
}

// GetPendingBucket sums and counts open transactions in the year.
func (r *PgxReportingRepository) GetPendingBucket(ctx context.Context, year int) (domain.StatusBucket, error) {
	var bucket domain.StatusBucket
	err := r.Pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(total), 0), COUNT(*)
		FROM transactions
		WHERE status IN ('pending', 'approved') AND period LIKE $1;
	`, yearPattern(year)).Scan(&bucket.Total, &bucket.Count)
	if err != nil {
		return domain.StatusBucket{}, fmt.Errorf("failed to sum pending transactions for %d: %w", year, err)
	}
	return bucket, nil
}

// GetOverdueBucket sums and counts transactions overdue as of the given date:
// already marked overdue, or still open with a lapsed due date.
func (r *PgxReportingRepository) GetOverdueBucket(ctx context.Context, asOf time.Time) (domain.StatusBucket, error) {
	var bucket domain.StatusBucket
	err := r.Pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(total), 0), COUNT(*)
		FROM transactions
		WHERE status = 'overdue' OR (status IN ('pending', 'approved') AND due_date < $1);
	`, asOf).Scan(&bucket.Total, &bucket.Count)
	if err != nil {
		return domain.StatusBucket{}, fmt.Errorf("failed to sum overdue transactions: %w", err)
	}
	return bucket, nil
}

// GetDueSoonBucket sums and counts open transactions due within [from, to].
func (r *PgxReportingRepository) GetDueSoonBucket(ctx context.Context, from, to time.Time) (domain.StatusBucket, error) {
	var bucket domain.StatusBucket
	err := r.Pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(total), 0), COUNT(*)
		FROM transactions
		WHERE status IN ('pending', 'approved') AND due_date BETWEEN $1 AND $2;
	`, from, to).Scan(&bucket.Total, &bucket.Count)
	if err != nil {
		return domain.StatusBucket{}, fmt.Errorf("failed to sum due soon transactions: %w", err)
	}
	return bucket, nil
}

// GetMonthlyTotals retrieves per-period paid/pending/total sums for the year.
// Only periods with transactions appear.
func (r *PgxReportingRepository) GetMonthlyTotals(ctx context.Context, year int) ([]domain.MonthlyPeriodTotals, error) {
	query := `
		SELECT period,
		       COALESCE(SUM(total) FILTER (WHERE status = 'paid'), 0) AS paid,
		       COALESCE(SUM(total) FILTER (WHERE status IN ('pending', 'approved')), 0) AS pending,
		       COALESCE(SUM(total), 0) AS total,
		       COUNT(*) AS transaction_count
		FROM transactions
		WHERE period LIKE $1
		GROUP BY period
		ORDER BY period;
	`
	rows, err := r.Pool.Query(ctx, query, yearPattern(year))
	if err != nil {
		return nil, fmt.Errorf("failed to query monthly totals for %d: %w", year, err)
	}
	defer rows.Close()

	totals := []domain.MonthlyPeriodTotals{}
	for rows.Next() {
		var row domain.MonthlyPeriodTotals
		if err := rows.Scan(&row.Period, &row.Paid, &row.Pending, &row.Total, &row.TransactionCount); err != nil {
			return nil, fmt.Errorf("failed to scan monthly totals: %w", err)
		}
		totals = append(totals, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read monthly totals: %w", err)
	}
	return totals, nil
}

// GetVendorDistribution retrieves per-vendor totals for active vendors with
// spend in the year, largest first. Percentages are filled in by the service.
func (r *PgxReportingRepository) GetVendorDistribution(ctx context.Context, year int) ([]domain.VendorDistributionRow, error) {
	query := `
		SELECT v.id, v.name, v.short_name, v.color,
		       COALESCE(SUM(t.total), 0) AS total,
		       COALESCE(SUM(t.total) FILTER (WHERE t.status = 'paid'), 0) AS paid,
		       COALESCE(SUM(t.total) FILTER (WHERE t.status IN ('pending', 'approved')), 0) AS pending,
		       COUNT(t.id) AS transaction_count
		FROM vendors v
		LEFT JOIN transactions t ON t.vendor_id = v.id AND t.period LIKE $1
		WHERE v.is_active = TRUE
		GROUP BY v.id
		HAVING COALESCE(SUM(t.total), 0) > 0
		ORDER BY total DESC;
	`
	rows, err := r.Pool.Query(ctx, query, yearPattern(year))
	if err != nil {
		return nil, fmt.Errorf("failed to query vendor distribution for %d: %w", year, err)
	}
	defer rows.Close()

	distribution := []domain.VendorDistributionRow{}
	for rows.Next() {
		var row domain.VendorDistributionRow
		err := rows.Scan(
			&row.VendorID,
			&row.VendorName,
			&row.ShortName,
			&row.Color,
			&row.Total,
			&row.Paid,
			&row.Pending,
			&row.TransactionCount,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan vendor distribution: %w", err)
		}
		distribution = append(distribution, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read vendor distribution: %w", err)
	}
	return distribution, nil
}

// GetVendorBudgetActual retrieves per-vendor budget and realization for
// active vendors with a budget or spend in the year, largest budget first.
func (r *PgxReportingRepository) GetVendorBudgetActual(ctx context.Context, year int) ([]domain.VendorBudgetActualRow, error) {
	query := `
		SELECT * FROM (
			SELECT v.id, v.name, v.short_name, v.color,
			       COALESCE((SELECT SUM(b.budget_amount) FROM budgets b WHERE b.vendor_id = v.id AND b.year = $1), 0) AS budget,
			       COALESCE(SUM(t.total), 0) AS actual,
			       COALESCE(SUM(t.total) FILTER (WHERE t.status = 'paid'), 0) AS paid,
			       COUNT(t.id) AS transaction_count
			FROM vendors v
			LEFT JOIN transactions t ON t.vendor_id = v.id AND t.period LIKE $2
			WHERE v.is_active = TRUE
			GROUP BY v.id
		) rows
		WHERE budget > 0 OR actual > 0
		ORDER BY budget DESC;
	`
	rows, err := r.Pool.Query(ctx, query, year, yearPattern(year))
	if err != nil {
		return nil, fmt.Errorf("failed to query budget vs actual for %d: %w", year, err)
	}
	defer rows.Close()

	result := []domain.VendorBudgetActualRow{}
	for rows.Next() {
		var row domain.VendorBudgetActualRow
		err := rows.Scan(
			&row.VendorID,
			&row.VendorName,
			&row.ShortName,
			&row.Color,
			&row.Budget,
			&row.Actual,
			&row.Paid,
			&row.TransactionCount,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan budget vs actual: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read budget vs actual: %w", err)
	}
	return result, nil
}

// GetVendorBudgetUsage retrieves budget and realization for every active
// vendor with a positive budget in the year, regardless of usage level.
func (r *PgxReportingRepository) GetVendorBudgetUsage(ctx context.Context, year int) ([]domain.VendorBudgetUsage, error) {
	query := `
		SELECT * FROM (
			SELECT v.id, v.name, v.short_name, v.color,
			       COALESCE((SELECT SUM(b.budget_amount) FROM budgets b WHERE b.vendor_id = v.id AND b.year = $1), 0) AS budget,
			       COALESCE(SUM(t.total), 0) AS actual
			FROM vendors v
			LEFT JOIN transactions t ON t.vendor_id = v.id AND t.period LIKE $2
			WHERE v.is_active = TRUE
			GROUP BY v.id
		) rows
		WHERE budget > 0
		ORDER BY (actual / budget) DESC;
	`
	rows, err := r.Pool.Query(ctx, query, year, yearPattern(year))
	if err != nil {
		return nil, fmt.Errorf("failed to query vendor budget usage for %d: %w", year, err)
	}
	defer rows.Close()

	usage := []domain.VendorBudgetUsage{}
	for rows.Next() {
		var row domain.VendorBudgetUsage
		err := rows.Scan(
			&row.VendorID,
			&row.VendorName,
			&row.ShortName,
			&row.Color,
			&row.Budget,
			&row.Actual,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan vendor budget usage: %w", err)
		}
		usage = append(usage, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read vendor budget usage: %w", err)
	}
	return usage, nil
}
