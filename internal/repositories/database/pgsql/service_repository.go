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

type PgxServiceRepository struct {
	BaseRepository
}

// newPgxServiceRepository creates a new repository for vendor service data.
func newPgxServiceRepository(pool *pgxpool.Pool) portsrepo.ServiceRepositoryFacade {
	return &PgxServiceRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ServiceRepositoryFacade = (*PgxServiceRepository)(nil)

const serviceWithRefsSelect = `
	SELECT s.id, s.vendor_id, s.name, s.description, s.monthly_fee, s.type, s.gl_account_id,
	       s.contract_number, s.contract_start, s.contract_end, s.is_active, s.created_at, s.updated_at,
	       v.name AS vendor_name, v.short_name AS vendor_short_name, v.color AS vendor_color,
	       COALESCE(g.code, '') AS gl_code, COALESCE(g.name, '') AS gl_name
	FROM services s
	JOIN vendors v ON v.id = s.vendor_id
	LEFT JOIN gl_accounts g ON g.id = s.gl_account_id
`

func scanServiceWithRefs(row pgx.Row) (domain.ServiceWithRefs, error) {
	var modelService models.Service
	var withRefs domain.ServiceWithRefs
	err := row.Scan(
		&modelService.ServiceID,
		&modelService.VendorID,
		&modelService.Name,
		&modelService.Description,
		&modelService.MonthlyFee,
		&modelService.Type,
		&modelService.GLAccountID,
		&modelService.ContractNumber,
		&modelService.ContractStart,
		&modelService.ContractEnd,
		&modelService.IsActive,
		&modelService.CreatedAt,
		&modelService.UpdatedAt,
		&withRefs.VendorName,
		&withRefs.VendorShortName,
		&withRefs.VendorColor,
		&withRefs.GLCode,
		&withRefs.GLName,
	)
	if err != nil {
		return domain.ServiceWithRefs{}, err
	}
	withRefs.Service = mapping.ToDomainService(modelService)
	return withRefs, nil
}

// ListServices retrieves services matching the filter, joined with their
// vendor and GL account display fields.
func (r *PgxServiceRepository) ListServices(ctx context.Context, filter portsrepo.ServiceFilter) ([]domain.ServiceWithRefs, error) {
	query := serviceWithRefsSelect + ` WHERE 1=1`
	args := []any{}

	if !filter.IncludeInactive {
		query += ` AND s.is_active = TRUE`
	}
	if filter.VendorID != nil {
		args = append(args, *filter.VendorID)
		query += fmt.Sprintf(` AND s.vendor_id = $%d`, len(args))
	}
	if filter.Type != nil {
		args = append(args, string(*filter.Type))
		query += fmt.Sprintf(` AND s.type = $%d`, len(args))
	}
	query += ` ORDER BY v.name, s.name;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query services: %w", err)
	}
	defer rows.Close()

	services := []domain.ServiceWithRefs{}
	for rows.Next() {
		service, err := scanServiceWithRefs(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan service: %w", err)
		}
		services = append(services, service)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read services: %w", err)
	}
	return services, nil
}

// FindServiceByID retrieves a single service with its references.
func (r *PgxServiceRepository) FindServiceByID(ctx context.Context, serviceID int64) (*domain.ServiceWithRefs, error) {
	query := serviceWithRefsSelect + ` WHERE s.id = $1;`
	service, err := scanServiceWithRefs(r.Pool.QueryRow(ctx, query, serviceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find service %d: %w", serviceID, err)
	}
	return &service, nil
}

// ServiceBelongsToVendor reports whether the service exists under the vendor.
func (r *PgxServiceRepository) ServiceBelongsToVendor(ctx context.Context, serviceID, vendorID int64) (bool, error) {
	var belongs bool
	err := r.Pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM services WHERE id = $1 AND vendor_id = $2);`, serviceID, vendorID).Scan(&belongs)
	if err != nil {
		return false, fmt.Errorf("failed to check service %d ownership: %w", serviceID, err)
	}
	return belongs, nil
}

// CountTransactionsByService counts all transactions referencing the service.
func (r *PgxServiceRepository) CountTransactionsByService(ctx context.Context, serviceID int64) (int64, error) {
	var count int64
	err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM transactions WHERE service_id = $1;`, serviceID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count service %d transactions: %w", serviceID, err)
	}
	return count, nil
}

// CreateService inserts a new service and returns it with its assigned ID.
func (r *PgxServiceRepository) CreateService(ctx context.Context, service domain.Service) (*domain.Service, error) {
	modelService := mapping.ToModelService(service)
	query := `
		INSERT INTO services (vendor_id, name, description, monthly_fee, type, gl_account_id, contract_number, contract_start, contract_end, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id;
	`
	err := r.Pool.QueryRow(ctx, query,
		modelService.VendorID,
		modelService.Name,
		modelService.Description,
		modelService.MonthlyFee,
		modelService.Type,
		modelService.GLAccountID,
		modelService.ContractNumber,
		modelService.ContractStart,
		modelService.ContractEnd,
		modelService.IsActive,
		modelService.CreatedAt,
		modelService.UpdatedAt,
	).Scan(&service.ServiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to create service %s: %w", service.Name, err)
	}
	return &service, nil
}

// UpdateService persists the full service row.
func (r *PgxServiceRepository) UpdateService(ctx context.Context, service domain.Service) error {
	modelService := mapping.ToModelService(service)
	query := `
		UPDATE services
		SET vendor_id = $2, name = $3, description = $4, monthly_fee = $5, type = $6, gl_account_id = $7,
		    contract_number = $8, contract_start = $9, contract_end = $10, is_active = $11, updated_at = $12
		WHERE id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		modelService.ServiceID,
		modelService.VendorID,
		modelService.Name,
		modelService.Description,
		modelService.MonthlyFee,
		modelService.Type,
		modelService.GLAccountID,
		modelService.ContractNumber,
		modelService.ContractStart,
		modelService.ContractEnd,
		modelService.IsActive,
		modelService.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update service %d: %w", service.ServiceID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeactivateService soft-deletes a service that still has transactions.
func (r *PgxServiceRepository) DeactivateService(ctx context.Context, serviceID int64) error {
	tag, err := r.Pool.Exec(ctx, `UPDATE services SET is_active = FALSE, updated_at = NOW() WHERE id = $1;`, serviceID)
	if err != nil {
		return fmt.Errorf("failed to deactivate service %d: %w", serviceID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteService hard-deletes a service with no transactions.
func (r *PgxServiceRepository) DeleteService(ctx context.Context, serviceID int64) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM services WHERE id = $1;`, serviceID)
	if err != nil {
		return fmt.Errorf("failed to delete service %d: %w", serviceID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
