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

type PgxVendorRepository struct {
	BaseRepository
}

// newPgxVendorRepository creates a new repository for vendor data.
func newPgxVendorRepository(pool *pgxpool.Pool) portsrepo.VendorRepositoryFacade {
	return &PgxVendorRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.VendorRepositoryFacade = (*PgxVendorRepository)(nil)

// ListVendors retrieves all active vendors with per-vendor transaction tallies.
func (r *PgxVendorRepository) ListVendors(ctx context.Context) ([]domain.VendorSummary, error) {
	query := `
		SELECT v.id, v.name, v.short_name, v.color, v.contact_person, v.email, v.phone, v.address, v.npwp, v.is_active, v.created_at, v.updated_at,
		       COUNT(t.id) AS transaction_count,
		       COALESCE(SUM(t.total), 0) AS total_transactions,
		       COUNT(t.id) FILTER (WHERE t.status = 'paid') AS paid_count,
		       COUNT(t.id) FILTER (WHERE t.status IN ('pending', 'approved')) AS pending_count
		FROM vendors v
		LEFT JOIN transactions t ON t.vendor_id = v.id
		WHERE v.is_active = TRUE
		GROUP BY v.id
		ORDER BY v.name;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query vendors: %w", err)
	}
	defer rows.Close()

	summaries := []domain.VendorSummary{}
	for rows.Next() {
		var modelVendor models.Vendor
		var summary domain.VendorSummary
		err := rows.Scan(
			&modelVendor.VendorID,
			&modelVendor.Name,
			&modelVendor.ShortName,
			&modelVendor.Color,
			&modelVendor.ContactPerson,
			&modelVendor.Email,
			&modelVendor.Phone,
			&modelVendor.Address,
			&modelVendor.NPWP,
			&modelVendor.IsActive,
			&modelVendor.CreatedAt,
			&modelVendor.UpdatedAt,
			&summary.TransactionCount,
			&summary.TotalTransactions,
			&summary.PaidCount,
			&summary.PendingCount,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan vendor: %w", err)
		}
		summary.Vendor = mapping.ToDomainVendor(modelVendor)
		summaries = append(summaries, summary)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read vendors: %w", err)
	}
	return summaries, nil
}

// FindVendorByID retrieves one vendor with its paid/pending figures.
func (r *PgxVendorRepository) FindVendorByID(ctx context.Context, vendorID int64) (*domain.VendorDetail, error) {
	query := `
		SELECT v.id, v.name, v.short_name, v.color, v.contact_person, v.email, v.phone, v.address, v.npwp, v.is_active, v.created_at, v.updated_at,
		       COUNT(t.id) AS transaction_count,
		       COALESCE(SUM(t.total) FILTER (WHERE t.status = 'paid'), 0) AS total_paid,
		       COALESCE(SUM(t.total) FILTER (WHERE t.status IN ('pending', 'approved')), 0) AS total_pending
		FROM vendors v
		LEFT JOIN transactions t ON t.vendor_id = v.id
		WHERE v.id = $1
		GROUP BY v.id;
	`
	var modelVendor models.Vendor
	var detail domain.VendorDetail
	err := r.Pool.QueryRow(ctx, query, vendorID).Scan(
		&modelVendor.VendorID,
		&modelVendor.Name,
		&modelVendor.ShortName,
		&modelVendor.Color,
		&modelVendor.ContactPerson,
		&modelVendor.Email,
		&modelVendor.Phone,
		&modelVendor.Address,
		&modelVendor.NPWP,
		&modelVendor.IsActive,
		&modelVendor.CreatedAt,
		&modelVendor.UpdatedAt,
		&detail.TransactionCount,
		&detail.TotalPaid,
		&detail.TotalPending,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find vendor %d: %w", vendorID, err)
	}

	detail.Vendor = mapping.ToDomainVendor(modelVendor)
	return &detail, nil
}

// VendorExists reports whether a vendor row exists, active or not.
func (r *PgxVendorRepository) VendorExists(ctx context.Context, vendorID int64) (bool, error) {
	var exists bool
	err := r.Pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM vendors WHERE id = $1);`, vendorID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check vendor %d: %w", vendorID, err)
	}
	return exists, nil
}

// CountTransactionsByVendor counts all transactions referencing the vendor.
func (r *PgxVendorRepository) CountTransactionsByVendor(ctx context.Context, vendorID int64) (int64, error) {
	var count int64
	err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM transactions WHERE vendor_id = $1;`, vendorID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count vendor %d transactions: %w", vendorID, err)
	}
	return count, nil
}

// CreateVendor inserts a new vendor and returns it with its assigned ID.
func (r *PgxVendorRepository) CreateVendor(ctx context.Context, vendor domain.Vendor) (*domain.Vendor, error) {
	modelVendor := mapping.ToModelVendor(vendor)
	query := `
		INSERT INTO vendors (name, short_name, color, contact_person, email, phone, address, npwp, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id;
	`
	err := r.Pool.QueryRow(ctx, query,
		modelVendor.Name,
		modelVendor.ShortName,
		modelVendor.Color,
		modelVendor.ContactPerson,
		modelVendor.Email,
		modelVendor.Phone,
		modelVendor.Address,
		modelVendor.NPWP,
		modelVendor.IsActive,
		modelVendor.CreatedAt,
		modelVendor.UpdatedAt,
	).Scan(&vendor.VendorID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.ErrDuplicate
		}
		return nil, fmt.Errorf("failed to create vendor %s: %w", vendor.Name, err)
	}
	return &vendor, nil
}

// UpdateVendor persists the full vendor row.
func (r *PgxVendorRepository) UpdateVendor(ctx context.Context, vendor domain.Vendor) error {
	modelVendor := mapping.ToModelVendor(vendor)
	query := `
		UPDATE vendors
		SET name = $2, short_name = $3, color = $4, contact_person = $5, email = $6, phone = $7, address = $8, npwp = $9, is_active = $10, updated_at = $11
		WHERE id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		modelVendor.VendorID,
		modelVendor.Name,
		modelVendor.ShortName,
		modelVendor.Color,
		modelVendor.ContactPerson,
		modelVendor.Email,
		modelVendor.Phone,
		modelVendor.Address,
		modelVendor.NPWP,
		modelVendor.IsActive,
		modelVendor.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update vendor %d: %w", vendor.VendorID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeactivateVendor soft-deletes a vendor that still has transactions.
func (r *PgxVendorRepository) DeactivateVendor(ctx context.Context, vendorID int64) error {
	tag, err := r.Pool.Exec(ctx, `UPDATE vendors SET is_active = FALSE, updated_at = NOW() WHERE id = $1;`, vendorID)
	if err != nil {
		return fmt.Errorf("failed to deactivate vendor %d: %w", vendorID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteVendor hard-deletes a vendor with no transactions.
func (r *PgxVendorRepository) DeleteVendor(ctx context.Context, vendorID int64) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM vendors WHERE id = $1;`, vendorID)
	if err != nil {
		return fmt.Errorf("failed to delete vendor %d: %w", vendorID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
