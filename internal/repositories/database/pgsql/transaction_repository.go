package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bsgti/vendor_budget_app/internal/apperrors"
	"github.com/bsgti/vendor_budget_app/internal/core/domain"
	portsrepo "github.com/bsgti/vendor_budget_app/internal/core/ports/repositories"
	"github.com/bsgti/vendor_budget_app/internal/models"
	"github.com/bsgti/vendor_budget_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// transactionSortColumns whitelists the sortable columns of the listing.
// Anything else falls back to the invoice date.
var transactionSortColumns = map[string]string{
	"invoice_date": "t.invoice_date",
	"due_date":     "t.due_date",
	"pay_date":     "t.pay_date",
	"period":       "t.period",
	"total":        "t.total",
	"status":       "t.status",
	"invoice_no":   "t.invoice_no",
	"vendor_name":  "v.name",
	"created_at":   "t.created_at",
}

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for invoice data.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

const transactionWithRefsSelect = `
	SELECT t.id, t.vendor_id, t.service_id, t.invoice_no, t.period, t.nominal, t.ppn, t.total, t.status,
	       t.invoice_date, t.received_date, t.due_date, t.memo_date, t.pay_date, t.payment_ref, t.notes,
	       t.created_at, t.updated_at,
	       v.name AS vendor_name, v.short_name AS vendor_short_name, v.color AS vendor_color,
	       v.address AS vendor_address, v.npwp AS vendor_npwp,
	       s.name AS service_name, s.type AS service_type
	FROM transactions t
	JOIN vendors v ON v.id = t.vendor_id
	JOIN services s ON s.id = t.service_id
`

func scanTransactionWithRefs(row pgx.Row) (domain.TransactionWithRefs, error) {
	var modelTxn models.Transaction
	var withRefs domain.TransactionWithRefs
	var serviceType string
	err := row.Scan(
		&modelTxn.TransactionID,
		&modelTxn.VendorID,
		&modelTxn.ServiceID,
		&modelTxn.InvoiceNo,
		&modelTxn.Period,
		&modelTxn.Nominal,
		&modelTxn.PPN,
		&modelTxn.Total,
		&modelTxn.Status,
		&modelTxn.InvoiceDate,
		&modelTxn.ReceivedDate,
		&modelTxn.DueDate,
		&modelTxn.MemoDate,
		&modelTxn.PayDate,
		&modelTxn.PaymentRef,
		&modelTxn.Notes,
		&modelTxn.CreatedAt,
		&modelTxn.UpdatedAt,
		&withRefs.VendorName,
		&withRefs.VendorShortName,
		&withRefs.VendorColor,
		&withRefs.VendorAddress,
		&withRefs.VendorNPWP,
		&withRefs.ServiceName,
		&serviceType,
	)
	if err != nil {
		return domain.TransactionWithRefs{}, err
	}
	withRefs.Transaction = mapping.ToDomainTransaction(modelTxn)
	withRefs.ServiceType = domain.ServiceType(serviceType)
	return withRefs, nil
}

// buildListFilter renders the filter into a WHERE fragment and its arguments.
func buildListFilter(filter portsrepo.TransactionFilter) (string, []any) {
	where := ` WHERE 1=1`
	args := []any{}

	if filter.VendorID != nil {
		args = append(args, *filter.VendorID)
		where += fmt.Sprintf(` AND t.vendor_id = $%d`, len(args))
	}
	if filter.ServiceID != nil {
		args = append(args, *filter.ServiceID)
		where += fmt.Sprintf(` AND t.service_id = $%d`, len(args))
	}
	if filter.Status != nil {
		args = append(args, string(*filter.Status))
		where += fmt.Sprintf(` AND t.status = $%d`, len(args))
	}
	if filter.Period != nil {
		args = append(args, *filter.Period)
		where += fmt.Sprintf(` AND t.period = $%d`, len(args))
	}
	if filter.Year != nil {
		args = append(args, fmt.Sprintf("%d-%%", *filter.Year))
		where += fmt.Sprintf(` AND t.period LIKE $%d`, len(args))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		where += fmt.Sprintf(` AND (t.invoice_no ILIKE $%d OR v.name ILIKE $%d OR s.name ILIKE $%d)`, n, n, n)
	}
	return where, args
}

// ListTransactions retrieves a page of transactions matching the filter plus
// the total match count.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, filter portsrepo.TransactionFilter) ([]domain.TransactionWithRefs, int64, error) {
	where, args := buildListFilter(filter)

	countQuery := `
		SELECT COUNT(*)
		FROM transactions t
		JOIN vendors v ON v.id = t.vendor_id
		JOIN services s ON s.id = t.service_id
	` + where + `;`
	var total int64
	if err := r.Pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count transactions: %w", err)
	}

	sortColumn, ok := transactionSortColumns[filter.SortBy]
	if !ok {
		sortColumn = "t.invoice_date"
	}
	direction := "ASC"
	if filter.SortDesc {
		direction = "DESC"
	}

	args = append(args, filter.Limit)
	limitArg := len(args)
	args = append(args, (filter.Page-1)*filter.Limit)
	offsetArg := len(args)

	query := transactionWithRefsSelect + where +
		fmt.Sprintf(` ORDER BY %s %s, t.id %s LIMIT $%d OFFSET $%d;`, sortColumn, direction, direction, limitArg, offsetArg)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	txns := []domain.TransactionWithRefs{}
	for rows.Next() {
		txn, err := scanTransactionWithRefs(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan transaction: %w", err)
		}
		txns = append(txns, txn)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read transactions: %w", err)
	}
	return txns, total, nil
}

// FindTransactionByID retrieves one transaction with its references.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID int64) (*domain.TransactionWithRefs, error) {
	query := transactionWithRefsSelect + ` WHERE t.id = $1;`
	txn, err := scanTransactionWithRefs(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction %d: %w", transactionID, err)
	}
	return &txn, nil
}

// FindTransactionByInvoiceNo retrieves a transaction by its unique invoice number.
func (r *PgxTransactionRepository) FindTransactionByInvoiceNo(ctx context.Context, invoiceNo string) (*domain.Transaction, error) {
	query := `
		SELECT id, vendor_id, service_id, invoice_no, period, nominal, ppn, total, status,
		       invoice_date, received_date, due_date, memo_date, pay_date, payment_ref, notes, created_at, updated_at
		FROM transactions
		WHERE invoice_no = $1;
	`
	var modelTxn models.Transaction
	err := r.Pool.QueryRow(ctx, query, invoiceNo).Scan(
		&modelTxn.TransactionID,
		&modelTxn.VendorID,
		&modelTxn.ServiceID,
		&modelTxn.InvoiceNo,
		&modelTxn.Period,
		&modelTxn.Nominal,
		&modelTxn.PPN,
		&modelTxn.Total,
		&modelTxn.Status,
		&modelTxn.InvoiceDate,
		&modelTxn.ReceivedDate,
		&modelTxn.DueDate,
		&modelTxn.MemoDate,
		&modelTxn.PayDate,
		&modelTxn.PaymentRef,
		&modelTxn.Notes,
		&modelTxn.CreatedAt,
		&modelTxn.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction by invoice %q: %w", invoiceNo, err)
	}
	txn := mapping.ToDomainTransaction(modelTxn)
	return &txn, nil
}

// ListRecentTransactions retrieves the most recently created transactions.
func (r *PgxTransactionRepository) ListRecentTransactions(ctx context.Context, limit int) ([]domain.TransactionWithRefs, error) {
	query := transactionWithRefsSelect + ` ORDER BY t.created_at DESC, t.id DESC LIMIT $1;`
	return r.queryWithRefs(ctx, query, limit)
}

// FindOverdueTransactions retrieves open or overdue transactions whose due
// date is strictly before asOf.
func (r *PgxTransactionRepository) FindOverdueTransactions(ctx context.Context, asOf time.Time) ([]domain.TransactionWithRefs, error) {
	query := transactionWithRefsSelect + `
		WHERE t.status IN ('pending', 'approved', 'overdue') AND t.due_date < $1
		ORDER BY t.due_date ASC;
	`
	return r.queryWithRefs(ctx, query, asOf)
}

// FindDueSoonTransactions retrieves open transactions due within [from, to].
func (r *PgxTransactionRepository) FindDueSoonTransactions(ctx context.Context, from, to time.Time) ([]domain.TransactionWithRefs, error) {
	query := transactionWithRefsSelect + `
		WHERE t.status IN ('pending', 'approved') AND t.due_date BETWEEN $1 AND $2
		ORDER BY t.due_date ASC;
	`
	return r.queryWithRefs(ctx, query, from, to)
}

func (r *PgxTransactionRepository) queryWithRefs(ctx context.Context, query string, args ...any) ([]domain.TransactionWithRefs, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	txns := []domain.TransactionWithRefs{}
	for rows.Next() {
		txn, err := scanTransactionWithRefs(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		txns = append(txns, txn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read transactions: %w", err)
	}
	return txns, nil
}

// CreateTransaction inserts a new transaction and returns it with its assigned ID.
func (r *PgxTransactionRepository) CreateTransaction(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error) {
	modelTxn := mapping.ToModelTransaction(txn)
	query := `
		INSERT INTO transactions (vendor_id, service_id, invoice_no, period, nominal, ppn, total, status,
		                          invoice_date, received_date, due_date, memo_date, pay_date, payment_ref, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING id;
	`
	err := r.Pool.QueryRow(ctx, query,
		modelTxn.VendorID,
		modelTxn.ServiceID,
		modelTxn.InvoiceNo,
		modelTxn.Period,
		modelTxn.Nominal,
		modelTxn.PPN,
		modelTxn.Total,
		modelTxn.Status,
		modelTxn.InvoiceDate,
		modelTxn.ReceivedDate,
		modelTxn.DueDate,
		modelTxn.MemoDate,
		modelTxn.PayDate,
		modelTxn.PaymentRef,
		modelTxn.Notes,
		modelTxn.CreatedAt,
		modelTxn.UpdatedAt,
	).Scan(&txn.TransactionID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.ErrDuplicate
		}
		return nil, fmt.Errorf("failed to create transaction %s: %w", txn.InvoiceNo, err)
	}
	return &txn, nil
}

// UpdateTransaction persists the full transaction row.
func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	modelTxn := mapping.ToModelTransaction(txn)
	query := `
		UPDATE transactions
		SET vendor_id = $2, service_id = $3, invoice_no = $4, period = $5, nominal = $6, ppn = $7, total = $8,
		    status = $9, invoice_date = $10, received_date = $11, due_date = $12, memo_date = $13, pay_date = $14,
		    payment_ref = $15, notes = $16, updated_at = $17
		WHERE id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		modelTxn.TransactionID,
		modelTxn.VendorID,
		modelTxn.ServiceID,
		modelTxn.InvoiceNo,
		modelTxn.Period,
		modelTxn.Nominal,
		modelTxn.PPN,
		modelTxn.Total,
		modelTxn.Status,
		modelTxn.InvoiceDate,
		modelTxn.ReceivedDate,
		modelTxn.DueDate,
		modelTxn.MemoDate,
		modelTxn.PayDate,
		modelTxn.PaymentRef,
		modelTxn.Notes,
		modelTxn.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to update transaction %d: %w", txn.TransactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteTransaction removes a transaction row.
func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, transactionID int64) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM transactions WHERE id = $1;`, transactionID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %d: %w", transactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpdateTransactionStatus sets the status of one transaction. A non-nil pay
// date stamps the payment fields; otherwise they are left untouched.
func (r *PgxTransactionRepository) UpdateTransactionStatus(ctx context.Context, transactionID int64, status domain.TransactionStatus, payDate *time.Time, paymentRef string) error {
	var (
		query string
		args  []any
	)
	if payDate != nil {
		query = `
			UPDATE transactions
			SET status = $2, pay_date = $3, payment_ref = COALESCE(NULLIF($4, ''), payment_ref), updated_at = NOW()
			WHERE id = $1;
		`
		args = []any{transactionID, string(status), *payDate, paymentRef}
	} else {
		query = `UPDATE transactions SET status = $2, updated_at = NOW() WHERE id = $1;`
		args = []any{transactionID, string(status)}
	}

	tag, err := r.Pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update transaction %d status: %w", transactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// BulkUpdateStatus sets the status of every listed transaction in one
// statement. IDs without a matching row are skipped; the returned count is
// the number of rows actually changed.
func (r *PgxTransactionRepository) BulkUpdateStatus(ctx context.Context, ids []int64, status domain.TransactionStatus, payDate *time.Time) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	if payDate != nil {
		query := `UPDATE transactions SET status = $1, pay_date = $2, updated_at = NOW() WHERE id = ANY($3);`
		tag, err := r.Pool.Exec(ctx, query, string(status), *payDate, ids)
		if err != nil {
			return 0, fmt.Errorf("failed to bulk update transactions: %w", err)
		}
		return tag.RowsAffected(), nil
	}

	query := `UPDATE transactions SET status = $1, updated_at = NOW() WHERE id = ANY($2);`
	tag, err := r.Pool.Exec(ctx, query, string(status), ids)
	if err != nil {
		return 0, fmt.Errorf("failed to bulk update transactions: %w", err)
	}
	return tag.RowsAffected(), nil
}

// MarkOverdue transitions open transactions due strictly before the given
// date to overdue.
func (r *PgxTransactionRepository) MarkOverdue(ctx context.Context, before time.Time) (int64, error) {
	query := `
		UPDATE transactions
		SET status = 'overdue', updated_at = NOW()
		WHERE status IN ('pending', 'approved') AND due_date < $1;
	`
	tag, err := r.Pool.Exec(ctx, query, before)
	if err != nil {
		return 0, fmt.Errorf("failed to mark overdue transactions: %w", err)
	}
	return tag.RowsAffected(), nil
}
