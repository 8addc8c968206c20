package pgsql

import (
	"context"
	"fmt"

	"github.com/bsgti/vendor_budget_app/internal/apperrors"
	"github.com/bsgti/vendor_budget_app/internal/core/domain"
	portsrepo "github.com/bsgti/vendor_budget_app/internal/core/ports/repositories"
	"github.com/bsgti/vendor_budget_app/internal/models"
	"github.com/bsgti/vendor_budget_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxGLAccountRepository struct {
	BaseRepository
}

// newPgxGLAccountRepository creates a new repository for GL account reference data.
func newPgxGLAccountRepository(pool *pgxpool.Pool) portsrepo.GLAccountRepositoryFacade {
	return &PgxGLAccountRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.GLAccountRepositoryFacade = (*PgxGLAccountRepository)(nil)

// ListGLAccounts retrieves all GL accounts ordered by code.
func (r *PgxGLAccountRepository) ListGLAccounts(ctx context.Context) ([]domain.GLAccount, error) {
	query := `SELECT id, code, name, category FROM gl_accounts ORDER BY code;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query gl accounts: %w", err)
	}
	defer rows.Close()

	modelAccounts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.GLAccount, error) {
		var account models.GLAccount
		err := row.Scan(&account.GLAccountID, &account.Code, &account.Name, &account.Category)
		return account, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan gl accounts: %w", err)
	}
	return mapping.ToDomainGLAccountSlice(modelAccounts), nil
}

// CreateGLAccount inserts a new GL account. A duplicate code yields
// apperrors.ErrDuplicate.
func (r *PgxGLAccountRepository) CreateGLAccount(ctx context.Context, account domain.GLAccount) (*domain.GLAccount, error) {
	query := `INSERT INTO gl_accounts (code, name, category) VALUES ($1, $2, $3) RETURNING id;`
	var category *string
	if account.Category != "" {
		category = &account.Category
	}
	err := r.Pool.QueryRow(ctx, query, account.Code, account.Name, category).Scan(&account.GLAccountID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.ErrDuplicate
		}
		return nil, fmt.Errorf("failed to create gl account %s: %w", account.Code, err)
	}
	return &account, nil
}
