package repositories

import (
	"context"

	"github.com/bsgti/vendor_budget_app/internal/core/domain"
)

// VendorReader defines read operations for vendor data.
type VendorReader interface {
	// ListVendors retrieves all active vendors with their transaction tallies.
	ListVendors(ctx context.Context) ([]domain.VendorSummary, error)

	// FindVendorByID retrieves a single vendor with its paid/pending figures.
	FindVendorByID(ctx context.Context, vendorID int64) (*domain.VendorDetail, error)

	// VendorExists reports whether a vendor row exists, active or not.
	VendorExists(ctx context.Context, vendorID int64) (bool, error)

	// CountTransactionsByVendor counts all transactions referencing the vendor.
	CountTransactionsByVendor(ctx context.Context, vendorID int64) (int64, error)
}

// VendorWriter defines write operations for vendor data.
type VendorWriter interface {
	// CreateVendor persists a new vendor and returns it with its assigned ID.
	CreateVendor(ctx context.Context, vendor domain.Vendor) (*domain.Vendor, error)

	// UpdateVendor persists the full vendor row.
	UpdateVendor(ctx context.Context, vendor domain.Vendor) error

	// DeactivateVendor soft-deletes a vendor that still has transactions.
	DeactivateVendor(ctx context.Context, vendorID int64) error

	// DeleteVendor hard-deletes a vendor with no transactions.
	DeleteVendor(ctx context.Context, vendorID int64) error
}

// VendorRepositoryFacade combines all vendor repository interfaces.
type VendorRepositoryFacade interface {
	VendorReader
	VendorWriter
}
