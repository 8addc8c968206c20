package pgsql

import (
	portsrepo "github.com/bsgti/vendor_budget_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every pgsql repository against the shared pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		VendorRepo:      newPgxVendorRepository(dbPool),
		ServiceRepo:     newPgxServiceRepository(dbPool),
		TransactionRepo: newPgxTransactionRepository(dbPool),
		BudgetRepo:      newPgxBudgetRepository(dbPool),
		SettingRepo:     newPgxSettingRepository(dbPool),
		GLAccountRepo:   newPgxGLAccountRepository(dbPool),
		ReportingRepo:   newReportingRepository(dbPool),
	}
}
