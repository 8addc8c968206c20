package repositories

import (
	"context"

	"github.com/bsgti/vendor_budget_app/internal/core/domain"
)

// ServiceFilter narrows the service listing.
type ServiceFilter struct {
	VendorID *int64
	Type     *domain.ServiceType
	// IncludeInactive lifts the default active-only restriction.
	IncludeInactive bool
}

// ServiceReader defines read operations for vendor service data.
type ServiceReader interface {
	// ListServices retrieves services matching the filter, joined with vendor
	// and GL account display fields, ordered by vendor name then service name.
	ListServices(ctx context.Context, filter ServiceFilter) ([]domain.ServiceWithRefs, error)

	// FindServiceByID retrieves a single service with its references.
	FindServiceByID(ctx context.Context, serviceID int64) (*domain.ServiceWithRefs, error)

	// ServiceBelongsToVendor reports whether the service exists under the vendor.
	ServiceBelongsToVendor(ctx context.Context, serviceID, vendorID int64) (bool, error)

	// CountTransactionsByService counts all transactions referencing the service.
	CountTransactionsByService(ctx context.Context, serviceID int64) (int64, error)
}

// ServiceWriter defines write operations for vendor service data.
type ServiceWriter interface {
	CreateService(ctx context.Context, service domain.Service) (*domain.Service, error)
	UpdateService(ctx context.Context, service domain.Service) error
	DeactivateService(ctx context.Context, serviceID int64) error
	DeleteService(ctx context.Context, serviceID int64) error
}

// ServiceRepositoryFacade combines all service repository interfaces.
type ServiceRepositoryFacade interface {
	ServiceReader
	ServiceWriter
}
