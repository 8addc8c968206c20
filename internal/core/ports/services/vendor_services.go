package services

import (
	"context"

	"github.com/bsgti/vendor_budget_app/internal/core/domain"
	"github.com/bsgti/vendor_budget_app/internal/dto"
)

// VendorReaderSvc defines read operations for vendor data.
type VendorReaderSvc interface {
	// ListVendors retrieves all active vendors with transaction tallies.
	ListVendors(ctx context.Context) ([]domain.VendorSummary, error)

	// GetVendorByID retrieves one vendor together with its active services and
	// most recent transactions.
	GetVendorByID(ctx context.Context, vendorID int64) (*dto.VendorDetailResponse, error)
}

// VendorWriterSvc defines write operations for vendor data.
type VendorWriterSvc interface {
	CreateVendor(ctx context.Context, req dto.CreateVendorRequest) (*domain.Vendor, error)
	UpdateVendor(ctx context.Context, vendorID int64, req dto.UpdateVendorRequest) (*domain.Vendor, error)

	// DeleteVendor removes a vendor. Vendors with transactions are deactivated
	// instead of removed; the returned flag reports which happened.
	DeleteVendor(ctx context.Context, vendorID int64) (deactivated bool, err error)
}

// VendorSvcFacade combines all vendor service interfaces.
type VendorSvcFacade interface {
	VendorReaderSvc
	VendorWriterSvc
}
