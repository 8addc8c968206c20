package services

import (
	"context"

	"github.com/bsgti/vendor_budget_app/internal/dto"
)

// ReportSvc produces downloadable report files.
type ReportSvc interface {
	// ExportTransactionsCSV renders the filtered transaction list as CSV.
	// Returns the file contents and a suggested filename.
	ExportTransactionsCSV(ctx context.Context, query dto.ListTransactionsQuery) ([]byte, string, error)

	// ExportTransactionsExcel renders the filtered transaction list as an
	// Excel workbook.
	ExportTransactionsExcel(ctx context.Context, query dto.ListTransactionsQuery) ([]byte, string, error)

	// ExportBudgetExcel renders the budget comparison for a year as an Excel
	// workbook.
	ExportBudgetExcel(ctx context.Context, year int) ([]byte, string, error)

	// ExportPaymentProofPDF renders a payment proof document for a single
	// transaction.
	ExportPaymentProofPDF(ctx context.Context, transactionID int64) ([]byte, string, error)
}
