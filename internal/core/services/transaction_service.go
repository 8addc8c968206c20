package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/bsgti/vendor_budget_app/internal/apperrors"
	"github.com/bsgti/vendor_budget_app/internal/core/domain"
	portsrepo "github.com/bsgti/vendor_budget_app/internal/core/ports/repositories"
	portssvc "github.com/bsgti/vendor_budget_app/internal/core/ports/services"
	"github.com/bsgti/vendor_budget_app/internal/dto"
)

const (
	defaultPage  = 1
	defaultLimit = 20
)

// transactionService implements the TransactionSvcFacade interface
type transactionService struct {
	BaseService
	txnRepo     portsrepo.TransactionRepositoryFacade
	vendorRepo  portsrepo.VendorRepositoryFacade
	serviceRepo portsrepo.ServiceRepositoryFacade
	now         func() time.Time
}

// TransactionServiceOption is a functional option for configuring the transaction service
type TransactionServiceOption func(*transactionService)

// WithTransactionClock overrides the wall clock, used by tests.
func WithTransactionClock(now func() time.Time) TransactionServiceOption {
	return func(s *transactionService) {
		s.now = now
	}
}

// NewTransactionService creates a new transaction service with the provided options
func NewTransactionService(txnRepo portsrepo.TransactionRepositoryFacade, vendorRepo portsrepo.VendorRepositoryFacade, serviceRepo portsrepo.ServiceRepositoryFacade, options ...TransactionServiceOption) portssvc.TransactionSvcFacade {
	svc := &transactionService{
		txnRepo:     txnRepo,
		vendorRepo:  vendorRepo,
		serviceRepo: serviceRepo,
		now:         time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// today truncates the clock to midnight local time. Due date comparisons are
// whole-day comparisons.
func (s *transactionService) today() time.Time {
	now := s.now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

func (s *transactionService) ListTransactions(ctx context.Context, query dto.ListTransactionsQuery) (*dto.PaginatedTransactionsResponse, error) {
	filter := portsrepo.TransactionFilter{
		VendorID:  query.VendorID,
		ServiceID: query.ServiceID,
		Period:    query.Period,
		Year:      query.Year,
		Search:    query.Search,
		SortBy:    query.SortBy,
		SortDesc:  query.SortOrder != "asc",
		Page:      query.Page,
		Limit:     query.Limit,
	}
	if query.Status != nil {
		status := domain.TransactionStatus(*query.Status)
		filter.Status = &status
	}
	if filter.Page < 1 {
		filter.Page = defaultPage
	}
	if filter.Limit < 1 {
		filter.Limit = defaultLimit
	}

	txns, total, err := s.txnRepo.ListTransactions(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions")
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	if txns == nil {
		txns = []domain.TransactionWithRefs{}
	}

	totalPages := int((total + int64(filter.Limit) - 1) / int64(filter.Limit))
	return &dto.PaginatedTransactionsResponse{
		Data: txns,
		Pagination: dto.PaginationInfo{
			Page:       filter.Page,
			Limit:      filter.Limit,
			Total:      total,
			TotalPages: totalPages,
		},
	}, nil
}

func (s *transactionService) GetTransactionByID(ctx context.Context, transactionID int64) (*domain.TransactionWithRefs, error) {
	return s.txnRepo.FindTransactionByID(ctx, transactionID)
}

func (s *transactionService) ListRecentTransactions(ctx context.Context, limit int) ([]domain.TransactionWithRefs, error) {
	if limit < 1 {
		limit = vendorRecentTxnLimit
	}
	txns, err := s.txnRepo.ListRecentTransactions(ctx, limit)
	if err != nil {
		s.LogError(ctx, err, "Failed to list recent transactions")
		return nil, fmt.Errorf("failed to list recent transactions: %w", err)
	}
	if txns == nil {
		txns = []domain.TransactionWithRefs{}
	}
	return txns, nil
}

func (s *transactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.TransactionWithRefs, error) {
	if req.Nominal.IsNegative() || req.PPN.IsNegative() || req.Total.IsNegative() {
		return nil, fmt.Errorf("%w: amounts must not be negative", apperrors.ErrValidation)
	}

	status := domain.StatusPending
	if req.Status != nil {
		status = domain.TransactionStatus(*req.Status)
	}

	exists, err := s.vendorRepo.VendorExists(ctx, req.VendorID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: vendor %d does not exist", apperrors.ErrValidation, req.VendorID)
	}

	belongs, err := s.serviceRepo.ServiceBelongsToVendor(ctx, req.ServiceID, req.VendorID)
	if err != nil {
		return nil, err
	}
	if !belongs {
		return nil, fmt.Errorf("%w: service %d does not belong to vendor %d", apperrors.ErrValidation, req.ServiceID, req.VendorID)
	}

	if existing, err := s.txnRepo.FindTransactionByInvoiceNo(ctx, req.InvoiceNo); err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	} else if existing != nil {
		return nil, fmt.Errorf("%w: invoice number %q already exists", apperrors.ErrDuplicate, req.InvoiceNo)
	}

	invoiceDate, err := dto.ParseDate(req.InvoiceDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}
	dueDate, err := dto.ParseDate(req.DueDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}
	receivedDate, err := dto.ParseOptionalDate(req.ReceivedDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}
	memoDate, err := dto.ParseOptionalDate(req.MemoDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}
	payDate, err := dto.ParseOptionalDate(req.PayDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}
	if status == domain.StatusPaid && payDate == nil {
		today := s.today()
		payDate = &today
	}

	now := s.now()
	txn := domain.Transaction{
		VendorID:     req.VendorID,
		ServiceID:    req.ServiceID,
		InvoiceNo:    req.InvoiceNo,
		Period:       req.Period,
		Nominal:      req.Nominal,
		PPN:          req.PPN,
		Total:        req.Total,
		Status:       status,
		InvoiceDate:  invoiceDate,
		ReceivedDate: receivedDate,
		DueDate:      dueDate,
		MemoDate:     memoDate,
		PayDate:      payDate,
		PaymentRef:   req.PaymentRef,
		Notes:        req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	created, err := s.txnRepo.CreateTransaction(ctx, txn)
	if err != nil {
		s.LogError(ctx, err, "Failed to create transaction", slog.String("invoice_no", req.InvoiceNo))
		return nil, err
	}

	s.LogInfo(ctx, "Transaction created", slog.Int64("transaction_id", created.TransactionID), slog.String("invoice_no", created.InvoiceNo))
	return s.txnRepo.FindTransactionByID(ctx, created.TransactionID)
}

func (s *transactionService) UpdateTransaction(ctx context.Context, transactionID int64, req dto.UpdateTransactionRequest) (*domain.TransactionWithRefs, error) {
	existing, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	txn := existing.Transaction
	if req.VendorID != nil {
		txn.VendorID = *req.VendorID
	}
	if req.ServiceID != nil {
		txn.ServiceID = *req.ServiceID
	}
	if req.VendorID != nil || req.ServiceID != nil {
		belongs, err := s.serviceRepo.ServiceBelongsToVendor(ctx, txn.ServiceID, txn.VendorID)
		if err != nil {
			return nil, err
		}
		if !belongs {
			return nil, fmt.Errorf("%w: service %d does not belong to vendor %d", apperrors.ErrValidation, txn.ServiceID, txn.VendorID)
		}
	}
	if req.InvoiceNo != nil && *req.InvoiceNo != txn.InvoiceNo {
		if other, err := s.txnRepo.FindTransactionByInvoiceNo(ctx, *req.InvoiceNo); err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		} else if other != nil {
			return nil, fmt.Errorf("%w: invoice number %q already exists", apperrors.ErrDuplicate, *req.InvoiceNo)
		}
		txn.InvoiceNo = *req.InvoiceNo
	}
	if req.Period != nil {
		txn.Period = *req.Period
	}
	if req.Nominal != nil {
		txn.Nominal = *req.Nominal
	}
	if req.PPN != nil {
		txn.PPN = *req.PPN
	}
	if req.Total != nil {
		txn.Total = *req.Total
	}
	if txn.Nominal.IsNegative() || txn.PPN.IsNegative() || txn.Total.IsNegative() {
		return nil, fmt.Errorf("%w: amounts must not be negative", apperrors.ErrValidation)
	}
	if req.Status != nil {
		txn.Status = domain.TransactionStatus(*req.Status)
	}
	if req.InvoiceDate != nil {
		d, err := dto.ParseDate(*req.InvoiceDate)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		txn.InvoiceDate = d
	}
	if req.DueDate != nil {
		d, err := dto.ParseDate(*req.DueDate)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		txn.DueDate = d
	}
	if req.ReceivedDate != nil {
		d, err := dto.ParseOptionalDate(req.ReceivedDate)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		txn.ReceivedDate = d
	}
	if req.MemoDate != nil {
		d, err := dto.ParseOptionalDate(req.MemoDate)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		txn.MemoDate = d
	}
	if req.PayDate != nil {
		d, err := dto.ParseOptionalDate(req.PayDate)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		txn.PayDate = d
	}
	if req.PaymentRef != nil {
		txn.PaymentRef = *req.PaymentRef
	}
	if req.Notes != nil {
		txn.Notes = *req.Notes
	}
	txn.UpdatedAt = s.now()

	if err := s.txnRepo.UpdateTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to update transaction", slog.Int64("transaction_id", transactionID))
		return nil, err
	}

	return s.txnRepo.FindTransactionByID(ctx, transactionID)
}

func (s *transactionService) DeleteTransaction(ctx context.Context, transactionID int64) error {
	if _, err := s.txnRepo.FindTransactionByID(ctx, transactionID); err != nil {
		return err
	}
	if err := s.txnRepo.DeleteTransaction(ctx, transactionID); err != nil {
		s.LogError(ctx, err, "Failed to delete transaction", slog.Int64("transaction_id", transactionID))
		return err
	}
	s.LogInfo(ctx, "Transaction deleted", slog.Int64("transaction_id", transactionID))
	return nil
}

// SetStatus moves one invoice through its lifecycle. Marking an invoice paid
// stamps the pay date, defaulting to today when none is submitted.
func (s *transactionService) SetStatus(ctx context.Context, transactionID int64, req dto.UpdateStatusRequest) (*domain.TransactionWithRefs, error) {
	status := domain.TransactionStatus(req.Status)
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: invalid status %q", apperrors.ErrValidation, req.Status)
	}

	if _, err := s.txnRepo.FindTransactionByID(ctx, transactionID); err != nil {
		return nil, err
	}

	var payDate *time.Time
	paymentRef := ""
	if status == domain.StatusPaid {
		parsed, err := dto.ParseOptionalDate(req.PayDate)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		if parsed == nil {
			today := s.today()
			parsed = &today
		}
		payDate = parsed
		if req.PaymentRef != nil {
			paymentRef = *req.PaymentRef
		}
	}

	if err := s.txnRepo.UpdateTransactionStatus(ctx, transactionID, status, payDate, paymentRef); err != nil {
		s.LogError(ctx, err, "Failed to update transaction status", slog.Int64("transaction_id", transactionID), slog.String("status", req.Status))
		return nil, err
	}

	s.LogInfo(ctx, "Transaction status updated", slog.Int64("transaction_id", transactionID), slog.String("status", req.Status))
	return s.txnRepo.FindTransactionByID(ctx, transactionID)
}

// BulkSetStatus applies one status to many invoices in a single statement.
// IDs that match no row are skipped; the returned count reflects actual rows
// changed.
func (s *transactionService) BulkSetStatus(ctx context.Context, req dto.BulkStatusRequest) (int64, error) {
	status := domain.TransactionStatus(req.Status)
	if !status.IsValid() {
		return 0, fmt.Errorf("%w: invalid status %q", apperrors.ErrValidation, req.Status)
	}

	var payDate *time.Time
	if status == domain.StatusPaid {
		parsed, err := dto.ParseOptionalDate(req.PayDate)
		if err != nil {
			return 0, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		if parsed == nil {
			today := s.today()
			parsed = &today
		}
		payDate = parsed
	}

	updated, err := s.txnRepo.BulkUpdateStatus(ctx, req.IDs, status, payDate)
	if err != nil {
		s.LogError(ctx, err, "Failed to bulk update transaction status", slog.String("status", req.Status), slog.Int("id_count", len(req.IDs)))
		return 0, err
	}

	s.LogInfo(ctx, "Transactions bulk updated", slog.String("status", req.Status), slog.Int64("updated", updated))
	return updated, nil
}

// SweepOverdue transitions every open invoice whose due date has passed to
// overdue. Running it twice in a row changes nothing the second time.
func (s *transactionService) SweepOverdue(ctx context.Context) (int64, error) {
	marked, err := s.txnRepo.MarkOverdue(ctx, s.today())
	if err != nil {
		s.LogError(ctx, err, "Failed to mark overdue transactions")
		return 0, err
	}
	if marked > 0 {
		s.LogInfo(ctx, "Transactions marked overdue", slog.Int64("marked", marked))
	}
	return marked, nil
}
