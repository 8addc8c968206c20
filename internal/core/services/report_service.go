package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/bsgti/vendor_budget_app/internal/core/domain"
	portsrepo "github.com/bsgti/vendor_budget_app/internal/core/ports/repositories"
	portssvc "github.com/bsgti/vendor_budget_app/internal/core/ports/services"
	"github.com/bsgti/vendor_budget_app/internal/dto"
	"github.com/bsgti/vendor_budget_app/internal/export"
)

// exportRowLimit caps how many transactions one export may carry.
const exportRowLimit = 100000

// reportService implements the ReportSvc interface
type reportService struct {
	BaseService
	txnRepo      portsrepo.TransactionRepositoryFacade
	dashboardSvc portssvc.DashboardSvc
	settingSvc   portssvc.SettingReaderSvc
	now          func() time.Time
}

// ReportServiceOption is a functional option for configuring the report service
type ReportServiceOption func(*reportService)

// WithReportClock overrides the wall clock, used by tests.
func WithReportClock(now func() time.Time) ReportServiceOption {
	return func(s *reportService) {
		s.now = now
	}
}

// NewReportService creates a new report service with the provided options
func NewReportService(txnRepo portsrepo.TransactionRepositoryFacade, dashboardSvc portssvc.DashboardSvc, settingSvc portssvc.SettingReaderSvc, options ...ReportServiceOption) portssvc.ReportSvc {
	svc := &reportService{
		txnRepo:      txnRepo,
		dashboardSvc: dashboardSvc,
		settingSvc:   settingSvc,
		now:          time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ReportSvc = (*reportService)(nil)

func (s *reportService) ExportTransactionsCSV(ctx context.Context, query dto.ListTransactionsQuery) ([]byte, string, error) {
	txns, err := s.listForExport(ctx, query)
	if err != nil {
		return nil, "", err
	}

	data, err := export.TransactionsCSV(txns)
	if err != nil {
		s.LogError(ctx, err, "Failed to render transactions CSV")
		return nil, "", fmt.Errorf("failed to render transactions CSV: %w", err)
	}

	filename := fmt.Sprintf("transaksi_%s_%s.csv", yearLabel(query.Year), s.now().Format("2006-01-02"))
	s.LogInfo(ctx, "Transactions CSV exported", slog.Int("row_count", len(txns)), slog.String("filename", filename))
	return data, filename, nil
}

func (s *reportService) ExportTransactionsExcel(ctx context.Context, query dto.ListTransactionsQuery) ([]byte, string, error) {
	txns, err := s.listForExport(ctx, query)
	if err != nil {
		return nil, "", err
	}

	label := "Semua Tahun"
	if query.Year != nil {
		label = fmt.Sprintf("%d", *query.Year)
	}

	data, err := export.TransactionsWorkbook(txns, label, s.now())
	if err != nil {
		s.LogError(ctx, err, "Failed to render transactions workbook")
		return nil, "", fmt.Errorf("failed to render transactions workbook: %w", err)
	}

	filename := fmt.Sprintf("transaksi_%s_%s.xlsx", yearLabel(query.Year), s.now().Format("2006-01-02"))
	s.LogInfo(ctx, "Transactions workbook exported", slog.Int("row_count", len(txns)), slog.String("filename", filename))
	return data, filename, nil
}

func (s *reportService) ExportBudgetExcel(ctx context.Context, year int) ([]byte, string, error) {
	rows, err := s.dashboardSvc.GetBudgetVsActual(ctx, year)
	if err != nil {
		return nil, "", err
	}

	data, err := export.BudgetWorkbook(rows, year, s.now())
	if err != nil {
		s.LogError(ctx, err, "Failed to render budget workbook", slog.Int("year", year))
		return nil, "", fmt.Errorf("failed to render budget workbook: %w", err)
	}

	filename := fmt.Sprintf("anggaran_%d_%s.xlsx", year, s.now().Format("2006-01-02"))
	s.LogInfo(ctx, "Budget workbook exported", slog.Int("row_count", len(rows)), slog.String("filename", filename))
	return data, filename, nil
}

func (s *reportService) ExportPaymentProofPDF(ctx context.Context, transactionID int64) ([]byte, string, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, "", err
	}

	settings, err := s.settingSvc.ListSettings(ctx)
	if err != nil {
		return nil, "", err
	}
	companyName := settings[domain.SettingCompanyName].Value
	if companyName == "" {
		companyName = "Bank SulutGo"
	}
	divisionName := settings[domain.SettingDivisionName].Value
	if divisionName == "" {
		divisionName = "Divisi Teknologi Informasi"
	}

	data, err := export.PaymentProofPDF(*txn, companyName, divisionName, s.now())
	if err != nil {
		s.LogError(ctx, err, "Failed to render payment proof", slog.Int64("transaction_id", transactionID))
		return nil, "", fmt.Errorf("failed to render payment proof: %w", err)
	}

	filename := fmt.Sprintf("invoice_%s.pdf", txn.InvoiceNo)
	s.LogInfo(ctx, "Payment proof exported", slog.Int64("transaction_id", transactionID), slog.String("filename", filename))
	return data, filename, nil
}

// listForExport fetches every transaction matching the filters, capped at the
// export row limit, newest invoice first.
func (s *reportService) listForExport(ctx context.Context, query dto.ListTransactionsQuery) ([]domain.TransactionWithRefs, error) {
	filter := portsrepo.TransactionFilter{
		VendorID:  query.VendorID,
		ServiceID: query.ServiceID,
		Period:    query.Period,
		Year:      query.Year,
		Search:    query.Search,
		SortBy:    "invoice_date",
		SortDesc:  true,
		Page:      1,
		Limit:     exportRowLimit,
	}
	if query.Status != nil {
		status := domain.TransactionStatus(*query.Status)
		filter.Status = &status
	}

	txns, _, err := s.txnRepo.ListTransactions(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions for export")
		return nil, fmt.Errorf("failed to list transactions for export: %w", err)
	}
	if txns == nil {
		txns = []domain.TransactionWithRefs{}
	}
	return txns, nil
}

func yearLabel(year *int) string {
	if year == nil {
		return "all"
	}
	return fmt.Sprintf("%d", *year)
}
