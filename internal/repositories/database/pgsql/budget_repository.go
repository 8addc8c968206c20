package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/bsgti/vendor_budget_app/internal/apperrors"
	"github.com/bsgti/vendor_budget_app/internal/core/domain"
	portsrepo "github.com/bsgti/vendor_budget_app/internal/core/ports/repositories"
	"github.com/bsgti/vendor_budget_app/internal/models"
	"github.com/bsgti/vendor_budget_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxBudgetRepository struct {
	BaseRepository
}

// newPgxBudgetRepository creates a new repository for budget data.
func newPgxBudgetRepository(pool *pgxpool.Pool) portsrepo.BudgetRepositoryFacade {
	return &PgxBudgetRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.BudgetRepositoryFacade = (*PgxBudgetRepository)(nil)

// ListBudgets retrieves budgets joined with vendor/service display fields,
// optionally limited to one year.
func (r *PgxBudgetRepository) ListBudgets(ctx context.Context, year *int) ([]domain.BudgetWithRefs, error) {
	query := `
		SELECT b.id, b.year, b.vendor_id, b.service_id, b.budget_amount, b.description, b.created_at, b.updated_at,
		       COALESCE(v.name, '') AS vendor_name, COALESCE(v.short_name, '') AS vendor_short_name,
		       COALESCE(v.color, '') AS vendor_color, COALESCE(s.name, '') AS service_name
		FROM budgets b
		LEFT JOIN vendors v ON v.id = b.vendor_id
		LEFT JOIN services s ON s.id = b.service_id
	`
	args := []any{}
	if year != nil {
		args = append(args, *year)
		query += ` WHERE b.year = $1`
	}
	query += ` ORDER BY b.year DESC, vendor_name, service_name;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query budgets: %w", err)
	}
	defer rows.Close()

	budgets := []domain.BudgetWithRefs{}
	for rows.Next() {
		var modelBudget models.Budget
		var withRefs domain.BudgetWithRefs
		err := rows.Scan(
			&modelBudget.BudgetID,
			&modelBudget.Year,
			&modelBudget.VendorID,
			&modelBudget.ServiceID,
			&modelBudget.BudgetAmount,
			&modelBudget.Description,
			&modelBudget.CreatedAt,
			&modelBudget.UpdatedAt,
			&withRefs.VendorName,
			&withRefs.VendorShortName,
			&withRefs.VendorColor,
			&withRefs.ServiceName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan budget: %w", err)
		}
		withRefs.Budget = mapping.ToDomainBudget(modelBudget)
		budgets = append(budgets, withRefs)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read budgets: %w", err)
	}
	return budgets, nil
}

// FindBudgetByID retrieves one budget row.
func (r *PgxBudgetRepository) FindBudgetByID(ctx context.Context, budgetID int64) (*domain.Budget, error) {
	query := `
		SELECT id, year, vendor_id, service_id, budget_amount, description, created_at, updated_at
		FROM budgets
		WHERE id = $1;
	`
	var modelBudget models.Budget
	err := r.Pool.QueryRow(ctx, query, budgetID).Scan(
		&modelBudget.BudgetID,
		&modelBudget.Year,
		&modelBudget.VendorID,
		&modelBudget.ServiceID,
		&modelBudget.BudgetAmount,
		&modelBudget.Description,
		&modelBudget.CreatedAt,
		&modelBudget.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find budget %d: %w", budgetID, err)
	}

	budget := mapping.ToDomainBudget(modelBudget)
	return &budget, nil
}

// GetBudgetComparison retrieves each budget row of the year together with its
// vendor's transaction sums. Every status counts toward the actual total;
// that matches how realization has always been reported here.
func (r *PgxBudgetRepository) GetBudgetComparison(ctx context.Context, year int) ([]domain.BudgetComparisonRow, error) {
	query := `
		SELECT b.id, b.year, b.budget_amount, COALESCE(b.description, '') AS description, b.vendor_id,
		       COALESCE(v.name, '') AS vendor_name, COALESCE(v.short_name, '') AS vendor_short_name,
		       COALESCE(v.color, '') AS vendor_color,
		       COALESCE(SUM(t.total) FILTER (WHERE t.status = 'paid'), 0) AS actual_paid,
		       COALESCE(SUM(t.total) FILTER (WHERE t.status IN ('pending', 'approved')), 0) AS actual_pending,
		       COALESCE(SUM(t.total), 0) AS actual_total,
		       COUNT(t.id) AS transaction_count
		FROM budgets b
		LEFT JOIN vendors v ON v.id = b.vendor_id
		LEFT JOIN transactions t ON t.vendor_id = b.vendor_id AND t.period LIKE $2
		WHERE b.year = $1
		GROUP BY b.id, v.name, v.short_name, v.color
		ORDER BY vendor_name, b.id;
	`
	rows, err := r.Pool.Query(ctx, query, year, fmt.Sprintf("%d-%%", year))
	if err != nil {
		return nil, fmt.Errorf("failed to query budget comparison: %w", err)
	}
	defer rows.Close()

	comparison := []domain.BudgetComparisonRow{}
	for rows.Next() {
		var row domain.BudgetComparisonRow
		err := rows.Scan(
			&row.BudgetID,
			&row.Year,
			&row.BudgetAmount,
			&row.Description,
			&row.VendorID,
			&row.VendorName,
			&row.VendorShortName,
			&row.VendorColor,
			&row.ActualPaid,
			&row.ActualPending,
			&row.ActualTotal,
			&row.TransactionCount,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan budget comparison row: %w", err)
		}
		comparison = append(comparison, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read budget comparison: %w", err)
	}
	return comparison, nil
}

// ListYears retrieves the distinct years present in budgets or transaction
// periods, newest first.
func (r *PgxBudgetRepository) ListYears(ctx context.Context) ([]int, error) {
	query := `
		SELECT year FROM (
			SELECT DISTINCT year FROM budgets
			UNION
			SELECT DISTINCT SUBSTRING(period FROM 1 FOR 4)::INT FROM transactions
		) years
		ORDER BY year DESC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query years: %w", err)
	}
	defer rows.Close()

	years := []int{}
	for rows.Next() {
		var year int
		if err := rows.Scan(&year); err != nil {
			return nil, fmt.Errorf("failed to scan year: %w", err)
		}
		years = append(years, year)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read years: %w", err)
	}
	return years, nil
}

// UpsertBudget inserts the budget or updates the row sharing its
// (year, vendor_id, service_id) key. NULL vendor and service ids take part
// in the key matching.
func (r *PgxBudgetRepository) UpsertBudget(ctx context.Context, budget domain.Budget) (*domain.Budget, bool, error) {
	modelBudget := mapping.ToModelBudget(budget)

	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, false, err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	var existingID int64
	err = tx.QueryRow(ctx, `
		SELECT id FROM budgets
		WHERE year = $1 AND vendor_id IS NOT DISTINCT FROM $2 AND service_id IS NOT DISTINCT FROM $3
		FOR UPDATE;
	`, modelBudget.Year, modelBudget.VendorID, modelBudget.ServiceID).Scan(&existingID)

	switch {
	case err == nil:
		_, err = tx.Exec(ctx, `
			UPDATE budgets SET budget_amount = $2, description = $3, updated_at = $4 WHERE id = $1;
		`, existingID, modelBudget.BudgetAmount, modelBudget.Description, modelBudget.UpdatedAt)
		if err != nil {
			return nil, false, fmt.Errorf("failed to update budget %d: %w", existingID, err)
		}
		budget.BudgetID = existingID
		if err := r.Commit(ctx, tx); err != nil {
			return nil, false, err
		}
		return &budget, false, nil

	case errors.Is(err, pgx.ErrNoRows):
		err = tx.QueryRow(ctx, `
			INSERT INTO budgets (year, vendor_id, service_id, budget_amount, description, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id;
		`, modelBudget.Year, modelBudget.VendorID, modelBudget.ServiceID, modelBudget.BudgetAmount, modelBudget.Description, modelBudget.CreatedAt, modelBudget.UpdatedAt).Scan(&budget.BudgetID)
		if err != nil {
			if isUniqueViolation(err) {
				return nil, false, apperrors.ErrDuplicate
			}
			return nil, false, fmt.Errorf("failed to insert budget: %w", err)
		}
		if err := r.Commit(ctx, tx); err != nil {
			return nil, false, err
		}
		return &budget, true, nil

	default:
		return nil, false, fmt.Errorf("failed to match budget key: %w", err)
	}
}

// UpdateBudget persists the full budget row.
func (r *PgxBudgetRepository) UpdateBudget(ctx context.Context, budget domain.Budget) error {
	modelBudget := mapping.ToModelBudget(budget)
	query := `
		UPDATE budgets
		SET year = $2, vendor_id = $3, service_id = $4, budget_amount = $5, description = $6, updated_at = $7
		WHERE id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		modelBudget.BudgetID,
		modelBudget.Year,
		modelBudget.VendorID,
		modelBudget.ServiceID,
		modelBudget.BudgetAmount,
		modelBudget.Description,
		modelBudget.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update budget %d: %w", budget.BudgetID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteBudget removes a budget row.
func (r *PgxBudgetRepository) DeleteBudget(ctx context.Context, budgetID int64) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM budgets WHERE id = $1;`, budgetID)
	if err != nil {
		return fmt.Errorf("failed to delete budget %d: %w", budgetID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
