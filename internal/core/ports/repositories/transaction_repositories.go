package repositories

import (
	"context"
	"time"

	"github.com/bsgti/vendor_budget_app/internal/core/domain"
)

// TransactionFilter narrows and pages the transaction listing.
type TransactionFilter struct {
	VendorID  *int64
	ServiceID *int64
	Status    *domain.TransactionStatus
	Period    *string
	Year      *int
	Search    string
	SortBy    string
	SortDesc  bool
	Page      int
	Limit     int
}

// TransactionReader defines read operations for invoice data.
type TransactionReader interface {
	// ListTransactions retrieves a page of transactions matching the filter
	// plus the total match count for pagination.
	ListTransactions(ctx context.Context, filter TransactionFilter) ([]domain.TransactionWithRefs, int64, error)

	// FindTransactionByID retrieves one transaction joined with its references.
	FindTransactionByID(ctx context.Context, transactionID int64) (*domain.TransactionWithRefs, error)

	// FindTransactionByInvoiceNo retrieves a transaction by its unique invoice number.
	FindTransactionByInvoiceNo(ctx context.Context, invoiceNo string) (*domain.Transaction, error)

	// ListRecentTransactions retrieves the most recently created transactions.
	ListRecentTransactions(ctx context.Context, limit int) ([]domain.TransactionWithRefs, error)

	// FindOverdueTransactions retrieves open or overdue transactions whose due
	// date is strictly before asOf, ordered by due date ascending.
	FindOverdueTransactions(ctx context.Context, asOf time.Time) ([]domain.TransactionWithRefs, error)

	// FindDueSoonTransactions retrieves open transactions due within [from, to]
	// inclusive, ordered by due date ascending.
	FindDueSoonTransactions(ctx context.Context, from, to time.Time) ([]domain.TransactionWithRefs, error)
}

// TransactionWriter defines write operations for invoice data.
type TransactionWriter interface {
	CreateTransaction(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error)
	UpdateTransaction(ctx context.Context, txn domain.Transaction) error
	DeleteTransaction(ctx context.Context, transactionID int64) error

	// UpdateTransactionStatus sets the status of one transaction, stamping the
	// pay date and payment reference when provided.
	UpdateTransactionStatus(ctx context.Context, transactionID int64, status domain.TransactionStatus, payDate *time.Time, paymentRef string) error

	// BulkUpdateStatus sets the status of every listed transaction in one
	// statement and returns the number of rows changed. IDs without a matching
	// row are ignored.
	BulkUpdateStatus(ctx context.Context, ids []int64, status domain.TransactionStatus, payDate *time.Time) (int64, error)

	// MarkOverdue transitions open transactions due strictly before the given
	// date to overdue and returns the number of rows changed.
	MarkOverdue(ctx context.Context, before time.Time) (int64, error)
}

// TransactionRepositoryFacade combines all transaction repository interfaces.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
