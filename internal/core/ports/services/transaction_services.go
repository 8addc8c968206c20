package services

import (
	"context"

	"github.com/bsgti/vendor_budget_app/internal/core/domain"
	"github.com/bsgti/vendor_budget_app/internal/dto"
)

// TransactionReaderSvc defines read operations for invoices.
type TransactionReaderSvc interface {
	ListTransactions(ctx context.Context, query dto.ListTransactionsQuery) (*dto.PaginatedTransactionsResponse, error)
	GetTransactionByID(ctx context.Context, transactionID int64) (*domain.TransactionWithRefs, error)
	ListRecentTransactions(ctx context.Context, limit int) ([]domain.TransactionWithRefs, error)
}

// TransactionWriterSvc defines write operations for invoices.
type TransactionWriterSvc interface {
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.TransactionWithRefs, error)
	UpdateTransaction(ctx context.Context, transactionID int64, req dto.UpdateTransactionRequest) (*domain.TransactionWithRefs, error)
	DeleteTransaction(ctx context.Context, transactionID int64) error
}

// TransactionStatusSvc manages the invoice status lifecycle.
type TransactionStatusSvc interface {
	// SetStatus changes one transaction's status. A paid target stamps the
	// submitted pay date and optional payment reference.
	SetStatus(ctx context.Context, transactionID int64, req dto.UpdateStatusRequest) (*domain.TransactionWithRefs, error)

	// BulkSetStatus changes the status of every listed transaction atomically
	// and returns how many rows changed. Unknown ids are silently skipped.
	BulkSetStatus(ctx context.Context, req dto.BulkStatusRequest) (int64, error)

	// SweepOverdue transitions open transactions past their due date to
	// overdue. Idempotent: a second run with no new lapses returns 0.
	SweepOverdue(ctx context.Context) (int64, error)
}

// TransactionSvcFacade combines all transaction service interfaces.
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
	TransactionStatusSvc
}
